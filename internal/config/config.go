package config

import (
	"os"
	"strconv"

	"github.com/plurimot/motus-backend/internal"
)

// Config is the process configuration, read once from the environment
// at startup (a .env file is loaded by main in development).
type Config struct {
	Port      string
	LogLevel  string
	StaticDir string

	// GuessValidation selects guess acceptance policy: "strict"
	// requires corpus membership, "loose" accepts any well-formed word.
	GuessValidation string

	MaxRounds   int
	MaxAttempts int
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "3000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StaticDir:       getEnv("STATIC_DIR", "./public"),
		GuessValidation: getEnv("GUESS_VALIDATION", "strict"),
		MaxRounds:       getEnvInt("MAX_ROUNDS", internal.DefaultMaxRounds),
		MaxAttempts:     getEnvInt("MAX_ATTEMPTS", internal.DefaultMaxAttempts),
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

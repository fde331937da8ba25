package server

import (
	"net/http"
	"time"

	"github.com/plurimot/motus-backend/internal/config"
	"github.com/plurimot/motus-backend/internal/game"
)

type Server struct {
	registry  *game.Registry
	staticDir string
}

// NewServer wires the registry into the router and returns a ready
// http.Server. Read/write timeouts stay unset: websocket connections
// are long-lived and must not be cut by the HTTP layer.
func NewServer(cfg config.Config, registry *game.Registry) *http.Server {
	s := &Server{
		registry:  registry,
		staticDir: cfg.StaticDir,
	}

	return &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     s.RegisterRoutes(),
		IdleTimeout: time.Minute,
	}
}

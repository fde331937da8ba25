package internal

import (
	"sync"
	"time"
)

const (
	MinLetters         = 6
	MaxLetters         = 10
	DefaultMaxRounds   = 10
	DefaultMaxAttempts = 6

	// Room codes are typed by hand from invite links, so the alphabet
	// drops the visually confusable I, O, 0 and 1.
	RoomCodeLength   = 5
	RoomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	DefaultNickname = "Joueur"
)

// LetterStatus classifies one position of a scored guess.
type LetterStatus string

const (
	StatusCorrect LetterStatus = "correct"
	StatusPresent LetterStatus = "present"
	StatusAbsent  LetterStatus = "absent"
)

// Conn is the subset of a websocket connection the game code writes to.
// The gateway hands out write-serialized wrappers around
// *websocket.Conn; tests substitute recorders. Implementations must be
// safe for concurrent WriteJSON calls.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

type Room struct {
	Code        string
	SecretWord  string
	WordLength  int
	MaxAttempts int
	RoundIndex  int // 0-based
	MaxRounds   int
	CreatedAt   time.Time

	// Keyed by connection id. Guarded by Mu, like all fields above.
	Players map[string]*Player

	Mu sync.Mutex
}

type Player struct {
	Id       string
	Conn     Conn
	Nickname string

	// Per-round state, reset when the room moves to the next word.
	Attempts  int
	Finished  bool
	Won       bool
	StartTime time.Time
	EndTime   time.Time // zero until the player solves
}

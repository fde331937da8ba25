package internal

import "time"

// Message is the wire envelope for every inbound command and outbound
// event: a type tag plus a payload whose shape is fixed per tag.
type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

// Inbound command tags (client -> server).
const (
	CmdCreateRoom  = "createRoom"
	CmdJoinRoom    = "joinRoom"
	CmdSubmitGuess = "submitGuess"
	CmdNewGame     = "newGame"
)

// Outbound event tags (server -> client or -> room).
const (
	EventRoomCreated      = "roomCreated"
	EventRoomJoined       = "roomJoined"
	EventJoinError        = "joinError"
	EventPlayerListUpdate = "playerListUpdate"
	EventGuessError       = "guessError"
	EventGuessResult      = "guessResult"
	EventPlayerSolved     = "playerSolved"
	EventPlayerFailed     = "playerFailed"
	EventAllSolved        = "allSolved"
	EventNewGameStarted   = "newGameStarted"
	EventNewGameError     = "newGameError"
)

type CreateRoomData struct {
	Nickname string `json:"nickname"`
}

type JoinRoomData struct {
	RoomCode string `json:"roomCode"`
	Nickname string `json:"nickname"`
}

type SubmitGuessData struct {
	RoomCode string `json:"roomCode"`
	Guess    string `json:"guess"`
}

type NewGameData struct {
	RoomCode string `json:"roomCode"`
}

// RoomSnapshotData answers createRoom/joinRoom and announces a new
// round. The secret never leaves the server except its first letter.
type RoomSnapshotData struct {
	RoomCode    string `json:"roomCode"`
	WordLength  int    `json:"wordLength"`
	MaxAttempts int    `json:"maxAttempts"`
	FirstLetter string `json:"firstLetter"`
	RoundNumber int    `json:"roundNumber"` // 1-based on the wire
	MaxRounds   int    `json:"maxRounds"`
}

type ErrorData struct {
	Message string `json:"message"`
}

// PlayerSummary is the per-player line of playerListUpdate.
// DurationSeconds stays null until the player has solved.
type PlayerSummary struct {
	Id              string `json:"id"`
	Nickname        string `json:"nickname"`
	Attempts        int    `json:"attempts"`
	Finished        bool   `json:"finished"`
	Won             bool   `json:"won"`
	DurationSeconds *int64 `json:"durationSeconds"`
}

type PlayerListData struct {
	Players []PlayerSummary `json:"players"`
}

type GuessResultData struct {
	PlayerId  string         `json:"playerId"`
	Nickname  string         `json:"nickname"`
	Guess     string         `json:"guess"`
	Statuses  []LetterStatus `json:"statuses"`
	Attempts  int            `json:"attempts"`
	IsCorrect bool           `json:"isCorrect"`
}

type PlayerSolvedData struct {
	PlayerId        string `json:"playerId"`
	Nickname        string `json:"nickname"`
	Attempts        int    `json:"attempts"`
	DurationSeconds int64  `json:"durationSeconds"`
	SecretWord      string `json:"secretWord"`
}

type PlayerFailedData struct {
	SecretWord string `json:"secretWord"`
}

type AllSolvedData struct {
	SecretWord  string `json:"secretWord"`
	RoundNumber int    `json:"roundNumber"`
}

// RoomInfoData is the sanitized HTTP view of a room (GET /rooms/{code}),
// used by the invite flow to verify a code before joining.
type RoomInfoData struct {
	RoomCode    string          `json:"roomCode"`
	RoundNumber int             `json:"roundNumber"`
	MaxRounds   int             `json:"maxRounds"`
	WordLength  int             `json:"wordLength"`
	MaxAttempts int             `json:"maxAttempts"`
	CreatedAt   time.Time       `json:"createdAt"`
	Players     []PlayerSummary `json:"players"`
}

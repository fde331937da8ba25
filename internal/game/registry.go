package game

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/plurimot/motus-backend/internal"
	"github.com/plurimot/motus-backend/internal/words"
	"github.com/rs/zerolog/log"
)

// =============================================================================
// ROOM REGISTRY & SESSION STATE MACHINE
// =============================================================================

// Registry owns every live room. The registry lock guards the room
// table; each room's own lock guards its state, so unrelated rooms
// never block each other. Lock order is always registry before room.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*internal.Room

	provider    *words.Provider
	maxRounds   int
	maxAttempts int
}

func NewRegistry(provider *words.Provider, maxRounds, maxAttempts int) *Registry {
	return &Registry{
		rooms:       make(map[string]*internal.Room),
		provider:    provider,
		maxRounds:   maxRounds,
		maxAttempts: maxAttempts,
	}
}

// CreateRoom allocates a room with a fresh code, seats the founding
// player and replies with the round snapshot. Returns the room code,
// or "" when no secret word could be drawn.
func (reg *Registry) CreateRoom(conn internal.Conn, connID, nickname string) string {
	length := words.LengthForRound(0)
	secret, err := reg.provider.WordFor(length)
	if err != nil {
		log.Error().Err(err).Int("length", length).Msg("create room: no secret word")
		sendEvent(conn, internal.EventJoinError, internal.ErrorData{
			Message: "Aucun mot disponible, réessayez plus tard.",
		})
		return ""
	}

	now := time.Now()
	player := &internal.Player{
		Id:        connID,
		Conn:      conn,
		Nickname:  cleanNickname(nickname),
		StartTime: now,
	}

	reg.mu.Lock()
	code := reg.newRoomCodeLocked()
	room := &internal.Room{
		Code:        code,
		SecretWord:  secret,
		WordLength:  length,
		MaxAttempts: reg.maxAttempts,
		RoundIndex:  0,
		MaxRounds:   reg.maxRounds,
		CreatedAt:   now,
		Players:     map[string]*internal.Player{connID: player},
	}
	reg.rooms[code] = room
	reg.mu.Unlock()

	room.Mu.Lock()
	snap := room.Snapshot()
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("player", connID).
		Int("wordLength", length).Msg("room created")

	sendToPlayer(player, internal.EventRoomCreated, snap)
	broadcastPlayerList(room)
	return code
}

// JoinRoom seats a new player in an existing room. A player joining
// mid-round starts the current word from zero attempts with a fresh
// personal timer.
func (reg *Registry) JoinRoom(conn internal.Conn, connID, roomCode, nickname string) {
	code := normalizeRoomCode(roomCode)

	reg.mu.RLock()
	room := reg.rooms[code]
	if room == nil {
		reg.mu.RUnlock()
		sendEvent(conn, internal.EventJoinError, internal.ErrorData{Message: "Salle introuvable."})
		return
	}

	player := &internal.Player{
		Id:        connID,
		Conn:      conn,
		Nickname:  cleanNickname(nickname),
		StartTime: time.Now(),
	}
	room.Mu.Lock()
	room.Players[connID] = player
	snap := room.Snapshot()
	room.Mu.Unlock()
	// The registry read lock is held across the insert so a concurrent
	// disconnect cannot evict the room while we are joining it.
	reg.mu.RUnlock()

	log.Info().Str("room", code).Str("player", connID).
		Str("nickname", player.Nickname).Msg("player joined")

	sendToPlayer(player, internal.EventRoomJoined, snap)
	broadcastPlayerList(room)
}

// SubmitGuess runs the full guess pipeline. An unknown room or player,
// or a player who already finished, is a silent no-op: duplicate and
// late deliveries are expected and must not surface errors.
func (reg *Registry) SubmitGuess(connID, roomCode, rawGuess string) {
	code := normalizeRoomCode(roomCode)

	reg.mu.RLock()
	room := reg.rooms[code]
	reg.mu.RUnlock()
	if room == nil {
		return
	}

	room.Mu.Lock()
	player := room.Players[connID]
	if player == nil || player.Finished {
		room.Mu.Unlock()
		return
	}

	// Validation rejections: reported to the sender only, no attempt
	// consumed, room state untouched.
	guess := words.Normalize(rawGuess)
	if len(guess) != room.WordLength {
		msg := fmt.Sprintf("Le mot doit faire %d lettres.", room.WordLength)
		room.Mu.Unlock()
		sendToPlayer(player, internal.EventGuessError, internal.ErrorData{Message: msg})
		return
	}
	if guess[:1] != room.FirstLetter() {
		msg := fmt.Sprintf("Le mot doit commencer par \"%s\".", room.FirstLetter())
		room.Mu.Unlock()
		sendToPlayer(player, internal.EventGuessError, internal.ErrorData{Message: msg})
		return
	}
	if !reg.provider.IsAcceptable(guess, room.WordLength) {
		room.Mu.Unlock()
		sendToPlayer(player, internal.EventGuessError, internal.ErrorData{
			Message: "Ce mot n'est pas dans le dictionnaire (il ne compte pas comme un essai).",
		})
		return
	}

	// The guess is playable: it consumes an attempt.
	player.Attempts++
	statuses := Evaluate(room.SecretWord, guess)
	isCorrect := guess == room.SecretWord

	var solved *internal.PlayerSolvedData
	var everyoneSolved *internal.AllSolvedData
	var failed *internal.PlayerFailedData

	if isCorrect {
		now := time.Now()
		player.Won = true
		player.Finished = true
		player.EndTime = now
		solved = &internal.PlayerSolvedData{
			PlayerId:        player.Id,
			Nickname:        player.Nickname,
			Attempts:        player.Attempts,
			DurationSeconds: int64(now.Sub(player.StartTime) / time.Second),
			SecretWord:      room.SecretWord,
		}
		if room.AllSolved() {
			everyoneSolved = &internal.AllSolvedData{
				SecretWord:  room.SecretWord,
				RoundNumber: room.RoundIndex + 1,
			}
		}
	} else if player.Attempts >= room.MaxAttempts {
		// Out of attempts: a normal transition, notified privately.
		player.Finished = true
		failed = &internal.PlayerFailedData{SecretWord: room.SecretWord}
	}

	result := internal.GuessResultData{
		PlayerId:  player.Id,
		Nickname:  player.Nickname,
		Guess:     guess,
		Statuses:  statuses,
		Attempts:  player.Attempts,
		IsCorrect: isCorrect,
	}
	listPayload := internal.PlayerListData{Players: room.PlayerSummaries()}
	room.Mu.Unlock()

	log.Info().Str("room", room.Code).Str("player", player.Id).
		Str("guess", guess).Bool("correct", isCorrect).
		Int("attempts", result.Attempts).Msg("guess scored")

	if solved != nil {
		broadcastToRoom(room, internal.Message[internal.PlayerSolvedData]{
			Type: internal.EventPlayerSolved, Data: *solved,
		})
	}
	if everyoneSolved != nil {
		log.Info().Str("room", room.Code).Int("round", everyoneSolved.RoundNumber).
			Msg("all players solved the word")
		broadcastToRoom(room, internal.Message[internal.AllSolvedData]{
			Type: internal.EventAllSolved, Data: *everyoneSolved,
		})
	}
	if failed != nil {
		sendToPlayer(player, internal.EventPlayerFailed, *failed)
	}
	broadcastToRoom(room, internal.Message[internal.GuessResultData]{
		Type: internal.EventGuessResult, Data: result,
	})
	broadcastToRoom(room, internal.Message[internal.PlayerListData]{
		Type: internal.EventPlayerListUpdate, Data: listPayload,
	})
}

// NewGame advances the room to the next word. Only legal once every
// current player has won, and only while rounds remain.
func (reg *Registry) NewGame(conn internal.Conn, connID, roomCode string) {
	code := normalizeRoomCode(roomCode)

	reg.mu.RLock()
	room := reg.rooms[code]
	reg.mu.RUnlock()
	if room == nil {
		sendEvent(conn, internal.EventNewGameError, internal.ErrorData{Message: "Salle introuvable."})
		return
	}

	room.Mu.Lock()
	if !room.AllSolved() {
		room.Mu.Unlock()
		sendEvent(conn, internal.EventNewGameError, internal.ErrorData{
			Message: "Tous les joueurs n'ont pas encore trouvé le mot.",
		})
		return
	}
	if room.RoundIndex+1 >= room.MaxRounds {
		msg := fmt.Sprintf("Nombre maximum de mots atteint pour cette partie (%d).", room.MaxRounds)
		room.Mu.Unlock()
		sendEvent(conn, internal.EventNewGameError, internal.ErrorData{Message: msg})
		return
	}

	// Draw the next word before touching any state, so a corpus gap
	// leaves the room exactly as it was.
	nextLength := words.LengthForRound(room.RoundIndex + 1)
	secret, err := reg.provider.WordFor(nextLength)
	if err != nil {
		room.Mu.Unlock()
		log.Error().Err(err).Str("room", code).Int("length", nextLength).
			Msg("new game: no secret word")
		sendEvent(conn, internal.EventNewGameError, internal.ErrorData{
			Message: "Aucun mot disponible pour la manche suivante.",
		})
		return
	}

	now := time.Now()
	room.RoundIndex++
	room.WordLength = nextLength
	room.SecretWord = secret
	room.CreatedAt = now
	for _, p := range room.Players {
		p.ResetForRound(now)
	}
	snap := room.Snapshot()
	listPayload := internal.PlayerListData{Players: room.PlayerSummaries()}
	room.Mu.Unlock()

	log.Info().Str("room", code).Str("player", connID).
		Int("round", snap.RoundNumber).Int("wordLength", nextLength).
		Msg("next round started")

	broadcastToRoom(room, internal.Message[internal.RoomSnapshotData]{
		Type: internal.EventNewGameStarted, Data: snap,
	})
	broadcastToRoom(room, internal.Message[internal.PlayerListData]{
		Type: internal.EventPlayerListUpdate, Data: listPayload,
	})
}

// Disconnect removes the connection's player from every room holding
// it and deletes rooms left empty; their in-progress round is gone.
func (reg *Registry) Disconnect(connID string) {
	var affected []*internal.Room

	reg.mu.Lock()
	for code, room := range reg.rooms {
		room.Mu.Lock()
		if _, ok := room.Players[connID]; !ok {
			room.Mu.Unlock()
			continue
		}
		delete(room.Players, connID)
		empty := len(room.Players) == 0
		room.Mu.Unlock()

		if empty {
			delete(reg.rooms, code)
			log.Info().Str("room", code).Msg("room deleted (empty)")
			continue
		}
		affected = append(affected, room)
	}
	reg.mu.Unlock()

	for _, room := range affected {
		broadcastPlayerList(room)
	}
}

// RoomInfo returns the sanitized HTTP view of a room.
func (reg *Registry) RoomInfo(roomCode string) (internal.RoomInfoData, bool) {
	code := normalizeRoomCode(roomCode)

	reg.mu.RLock()
	room := reg.rooms[code]
	reg.mu.RUnlock()
	if room == nil {
		return internal.RoomInfoData{}, false
	}

	room.Mu.Lock()
	defer room.Mu.Unlock()
	return internal.RoomInfoData{
		RoomCode:    room.Code,
		RoundNumber: room.RoundIndex + 1,
		MaxRounds:   room.MaxRounds,
		WordLength:  room.WordLength,
		MaxAttempts: room.MaxAttempts,
		CreatedAt:   room.CreatedAt,
		Players:     room.PlayerSummaries(),
	}, true
}

// newRoomCodeLocked draws fresh codes until one is unused. The caller
// holds the registry write lock.
func (reg *Registry) newRoomCodeLocked() string {
	buf := make([]byte, internal.RoomCodeLength)
	for {
		for i := range buf {
			buf[i] = internal.RoomCodeAlphabet[rand.Intn(len(internal.RoomCodeAlphabet))]
		}
		code := string(buf)
		if _, taken := reg.rooms[code]; !taken {
			return code
		}
	}
}

func normalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func cleanNickname(nickname string) string {
	if s := strings.TrimSpace(nickname); s != "" {
		return s
	}
	return internal.DefaultNickname
}

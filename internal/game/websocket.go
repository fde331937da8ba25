package game

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/plurimot/motus-backend/internal"
	"github.com/rs/zerolog/log"
)

// =============================================================================
// WEBSOCKET CONNECTION GATEWAY
// =============================================================================

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// safeConn serializes writes to one websocket connection. gorilla
// allows a single concurrent writer, and a connection can be reached by
// broadcasts from several rooms at once, so serialization lives here
// rather than per player.
type safeConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *safeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

func (c *safeConn) Close() error { return c.conn.Close() }

// HandleWebSocket upgrades the HTTP request and starts the per-
// connection reader. Each connection gets an ephemeral id that doubles
// as the player identity inside rooms.
func HandleWebSocket(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warn().Err(err).Msg("websocket upgrade failed")
			return
		}
		connID := uuid.NewString()
		log.Info().Str("conn", connID).Str("remote", r.RemoteAddr).Msg("client connected")

		go handleMessages(reg, connID, &safeConn{conn: conn})
	}
}

// handleMessages reads commands off one connection until it drops,
// dispatching on the envelope's type tag. Malformed envelopes and
// unknown tags are logged and skipped; the connection stays up.
func handleMessages(reg *Registry, connID string, conn *safeConn) {
	defer func() {
		conn.Close()
		reg.Disconnect(connID)
		log.Info().Str("conn", connID).Msg("client disconnected")
	}()

	for {
		_, raw, err := conn.conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Str("conn", connID).Msg("websocket read ended")
			return
		}

		var baseMsg internal.Message[json.RawMessage]
		if err := json.Unmarshal(raw, &baseMsg); err != nil {
			log.Warn().Err(err).Str("conn", connID).Msg("unparseable message envelope")
			continue
		}

		switch baseMsg.Type {
		case internal.CmdCreateRoom:
			var d internal.CreateRoomData
			if err := json.Unmarshal(baseMsg.Data, &d); err != nil {
				log.Warn().Err(err).Str("conn", connID).Msg("bad createRoom payload")
				continue
			}
			reg.CreateRoom(conn, connID, d.Nickname)

		case internal.CmdJoinRoom:
			var d internal.JoinRoomData
			if err := json.Unmarshal(baseMsg.Data, &d); err != nil {
				log.Warn().Err(err).Str("conn", connID).Msg("bad joinRoom payload")
				continue
			}
			reg.JoinRoom(conn, connID, d.RoomCode, d.Nickname)

		case internal.CmdSubmitGuess:
			var d internal.SubmitGuessData
			if err := json.Unmarshal(baseMsg.Data, &d); err != nil {
				log.Warn().Err(err).Str("conn", connID).Msg("bad submitGuess payload")
				continue
			}
			reg.SubmitGuess(connID, d.RoomCode, d.Guess)

		case internal.CmdNewGame:
			var d internal.NewGameData
			if err := json.Unmarshal(baseMsg.Data, &d); err != nil {
				log.Warn().Err(err).Str("conn", connID).Msg("bad newGame payload")
				continue
			}
			reg.NewGame(conn, connID, d.RoomCode)

		default:
			log.Warn().Str("conn", connID).Str("type", baseMsg.Type).Msg("unknown command")
		}
	}
}

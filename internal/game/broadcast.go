package game

import (
	"github.com/plurimot/motus-backend/internal"
	"github.com/rs/zerolog/log"
)

// =============================================================================
// BROADCASTING & MESSAGING
// =============================================================================

// broadcastToRoom fans one event out to every player in the room. The
// recipient set is snapshotted under the room lock, then the writes run
// lock-free; a slow or dead connection only costs its own send.
func broadcastToRoom[T any](room *internal.Room, msg internal.Message[T]) {
	room.Mu.Lock()
	players := make([]*internal.Player, 0, len(room.Players))
	for _, p := range room.Players {
		players = append(players, p)
	}
	room.Mu.Unlock()

	for _, p := range players {
		if err := p.SafeWriteJSON(msg); err != nil {
			log.Debug().Err(err).
				Str("room", room.Code).
				Str("player", p.Id).
				Str("event", msg.Type).
				Msg("broadcast send failed")
		}
	}
}

// broadcastPlayerList pushes the refreshed player summary to the whole
// room. The summary never contains the secret word.
func broadcastPlayerList(room *internal.Room) {
	room.Mu.Lock()
	payload := internal.PlayerListData{Players: room.PlayerSummaries()}
	room.Mu.Unlock()

	broadcastToRoom(room, internal.Message[internal.PlayerListData]{
		Type: internal.EventPlayerListUpdate,
		Data: payload,
	})
}

// sendEvent writes one event to a bare connection, for replies that
// must reach a sender who has no player yet (join errors and such).
func sendEvent[T any](conn internal.Conn, event string, data T) {
	if err := conn.WriteJSON(internal.Message[T]{Type: event, Data: data}); err != nil {
		log.Debug().Err(err).Str("event", event).Msg("direct send failed")
	}
}

// sendToPlayer writes one event to a single player.
func sendToPlayer[T any](p *internal.Player, event string, data T) {
	if err := p.SafeWriteJSON(internal.Message[T]{Type: event, Data: data}); err != nil {
		log.Debug().Err(err).Str("player", p.Id).Str("event", event).Msg("private send failed")
	}
}

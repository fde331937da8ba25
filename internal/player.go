package internal

import "time"

// SafeWriteJSON sends one event to this player's connection. Write
// serialization lives in the Conn implementation, so broadcasting
// goroutines can call this without further coordination.
func (p *Player) SafeWriteJSON(v any) error {
	return p.Conn.WriteJSON(v)
}

// ResetForRound puts the player back to round-start state with a fresh
// personal timer.
func (p *Player) ResetForRound(now time.Time) {
	p.Attempts = 0
	p.Finished = false
	p.Won = false
	p.StartTime = now
	p.EndTime = time.Time{}
}

// Summary converts the player to its playerListUpdate line. The caller
// must hold the room lock.
func (p *Player) Summary() PlayerSummary {
	s := PlayerSummary{
		Id:       p.Id,
		Nickname: p.Nickname,
		Attempts: p.Attempts,
		Finished: p.Finished,
		Won:      p.Won,
	}
	if !p.EndTime.IsZero() {
		d := int64(p.EndTime.Sub(p.StartTime) / time.Second)
		s.DurationSeconds = &d
	}
	return s
}

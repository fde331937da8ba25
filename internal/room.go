package internal

// Methods (Room struct). Callers hold r.Mu; none of these take it.

// AllSolved reports whether every current player has won the round.
// It is recomputed on demand rather than cached, and an empty room is
// never "all solved" (guards the vacuous-truth case).
func (r *Room) AllSolved() bool {
	if len(r.Players) == 0 {
		return false
	}
	for _, p := range r.Players {
		if !p.Won {
			return false
		}
	}
	return true
}

// FirstLetter returns the pre-revealed opening letter of the secret.
func (r *Room) FirstLetter() string {
	if r.SecretWord == "" {
		return ""
	}
	return r.SecretWord[:1]
}

// Snapshot builds the roomCreated/roomJoined/newGameStarted payload.
func (r *Room) Snapshot() RoomSnapshotData {
	return RoomSnapshotData{
		RoomCode:    r.Code,
		WordLength:  r.WordLength,
		MaxAttempts: r.MaxAttempts,
		FirstLetter: r.FirstLetter(),
		RoundNumber: r.RoundIndex + 1,
		MaxRounds:   r.MaxRounds,
	}
}

// PlayerSummaries collects the playerListUpdate lines. Map iteration
// order is irrelevant to the game logic; the client sorts for display.
func (r *Room) PlayerSummaries() []PlayerSummary {
	summaries := make([]PlayerSummary, 0, len(r.Players))
	for _, p := range r.Players {
		summaries = append(summaries, p.Summary())
	}
	return summaries
}

package game

import "github.com/plurimot/motus-backend/internal"

// Evaluate scores a guess against the secret with the classic two-pass
// algorithm. Both strings must be normalized (A-Z) and the same length;
// that is the caller's responsibility.
//
// Pass 1 marks exact matches and counts the remaining secret letters.
// Pass 2 resolves present/absent from the remaining counts. Running the
// passes in this order makes exact matches consume a copy of their
// letter before any out-of-place occurrence can claim it, which is what
// keeps duplicate-letter feedback honest.
func Evaluate(secret, guess string) []internal.LetterStatus {
	n := len(guess)
	statuses := make([]internal.LetterStatus, n)

	var remaining [26]int
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			statuses[i] = internal.StatusCorrect
		} else {
			remaining[secret[i]-'A']++
		}
	}

	for i := 0; i < n; i++ {
		if statuses[i] == internal.StatusCorrect {
			continue
		}
		j := int(guess[i] - 'A')
		if j >= 0 && j < 26 && remaining[j] > 0 {
			statuses[i] = internal.StatusPresent
			remaining[j]--
		} else {
			statuses[i] = internal.StatusAbsent
		}
	}
	return statuses
}

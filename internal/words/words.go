// Package words supplies secret words and validates guesses.
//
// The corpus is embedded so the server runs with no external files:
// one word per line, pre-normalized (uppercase, accents stripped),
// bucketed by length at load time. Only lengths the round progression
// can request (MinLetters..MaxLetters) are kept.
package words

import (
	"errors"
	"math/rand"
	"strings"
	"unicode"

	_ "embed"

	"github.com/plurimot/motus-backend/internal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

//go:embed french.txt
var embeddedWords string

var ErrNoWordAvailable = errors.New("no word available for requested length")

// Mode selects the guess acceptance policy.
type Mode string

const (
	// ModeStrict accepts only corpus members of the expected length.
	ModeStrict Mode = "strict"
	// ModeLoose accepts any well-formed word of the expected length.
	ModeLoose Mode = "loose"
)

// ParseMode maps a config string to a Mode, defaulting to strict.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, string(ModeLoose)) {
		return ModeLoose
	}
	return ModeStrict
}

// Provider draws secret words and checks guess acceptability. It is
// immutable after construction and safe for concurrent use apart from
// the shared math/rand source, which is itself locked.
type Provider struct {
	mode    Mode
	buckets map[int][]string
	sets    map[int]map[string]struct{}
}

func NewProvider(mode Mode) (*Provider, error) {
	p := &Provider{
		mode:    mode,
		buckets: make(map[int][]string),
		sets:    make(map[int]map[string]struct{}),
	}
	for _, line := range strings.Split(embeddedWords, "\n") {
		w := Normalize(line)
		n := len(w)
		if n < internal.MinLetters || n > internal.MaxLetters || !isUpperAlpha(w) {
			continue
		}
		if p.sets[n] == nil {
			p.sets[n] = make(map[string]struct{})
		}
		if _, dup := p.sets[n][w]; dup {
			continue
		}
		p.sets[n][w] = struct{}{}
		p.buckets[n] = append(p.buckets[n], w)
	}
	if len(p.buckets) == 0 {
		return nil, errors.New("words: embedded corpus is empty")
	}
	return p, nil
}

// WordFor returns a uniform-random word of the requested length.
func (p *Provider) WordFor(length int) (string, error) {
	list := p.buckets[length]
	if len(list) == 0 {
		return "", ErrNoWordAvailable
	}
	return list[rand.Intn(len(list))], nil
}

// IsAcceptable reports whether candidate is a playable guess for the
// given length: right length and all letters after normalization, plus
// corpus membership in strict mode.
func (p *Provider) IsAcceptable(candidate string, length int) bool {
	w := Normalize(candidate)
	if len(w) != length || !isUpperAlpha(w) {
		return false
	}
	if p.mode == ModeLoose {
		return true
	}
	_, ok := p.sets[length][w]
	return ok
}

// deaccent folds accented letters onto their base Latin letter
// (decompose, drop combining marks, recompose).
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize trims, strips accents and uppercases, producing the
// canonical form every comparison in the game runs on.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if folded, _, err := transform.String(deaccent, s); err == nil {
		s = folded
	}
	return strings.ToUpper(s)
}

// LengthForRound derives the word length for a 0-based round index:
// rounds start at MinLetters and grow one letter per round, capped at
// MaxLetters.
func LengthForRound(roundIndex int) int {
	n := internal.MinLetters + roundIndex
	if n > internal.MaxLetters {
		return internal.MaxLetters
	}
	return n
}

func isUpperAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

package words

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  pommés ", "POMMES"},
		{"Éléphant", "ELEPHANT"},
		{"àâîôû", "AAIOU"},
		{"VOITURE", "VOITURE"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Normalize(tc.in), "Normalize(%q)", tc.in)
	}
}

func TestLengthForRound(t *testing.T) {
	cases := []struct {
		round int
		want  int
	}{
		{0, 6},
		{1, 7},
		{3, 9},
		{4, 10},
		{9, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LengthForRound(tc.round), "round %d", tc.round)
	}
}

func TestWordFor(t *testing.T) {
	p, err := NewProvider(ModeStrict)
	require.NoError(t, err)

	for length := 6; length <= 10; length++ {
		w, err := p.WordFor(length)
		require.NoError(t, err, "length %d", length)
		assert.Len(t, w, length)
		assert.True(t, p.IsAcceptable(w, length), "drawn word %q must be acceptable", w)
	}

	_, err = p.WordFor(5)
	assert.True(t, errors.Is(err, ErrNoWordAvailable))
	_, err = p.WordFor(11)
	assert.True(t, errors.Is(err, ErrNoWordAvailable))
}

func TestIsAcceptableStrict(t *testing.T) {
	p, err := NewProvider(ModeStrict)
	require.NoError(t, err)

	assert.True(t, p.IsAcceptable("POMMES", 6))
	assert.True(t, p.IsAcceptable(" pommés ", 6), "normalization happens before the lookup")
	assert.False(t, p.IsAcceptable("ZZZZZZ", 6), "well-formed but not in the corpus")
	assert.False(t, p.IsAcceptable("POMMES", 7), "length mismatch")
	assert.False(t, p.IsAcceptable("POMME1", 6), "non-letter characters")
	assert.False(t, p.IsAcceptable("", 6))
}

func TestIsAcceptableLoose(t *testing.T) {
	p, err := NewProvider(ModeLoose)
	require.NoError(t, err)

	assert.True(t, p.IsAcceptable("ZZZZZZ", 6), "loose mode only requires well-formedness")
	assert.False(t, p.IsAcceptable("ZZZZZ", 6), "length still enforced")
	assert.False(t, p.IsAcceptable("POMME1", 6), "letters still enforced")
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeLoose, ParseMode("loose"))
	assert.Equal(t, ModeLoose, ParseMode("LOOSE"))
	assert.Equal(t, ModeStrict, ParseMode("strict"))
	assert.Equal(t, ModeStrict, ParseMode(""), "strict is the default")
	assert.Equal(t, ModeStrict, ParseMode("whatever"))
}

package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42, testNow)
	b := NewSource(42, testNow)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.UUID(), b.UUID())
	assert.Equal(t, a.HexToken(32), b.HexToken(32))
	assert.Equal(t, a.FirstName(), b.FirstName())
	assert.Equal(t, a.TimeWithinDays(365, 0), b.TimeWithinDays(365, 0))
}

func TestSourceSeedSensitivity(t *testing.T) {
	a := NewSource(42, testNow)
	b := NewSource(43, testNow)

	same := true
	for i := 0; i < 20; i++ {
		if a.Intn(1 << 30) != b.Intn(1 << 30) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge")
}

func TestIntBetweenInclusive(t *testing.T) {
	src := NewSource(1, testNow)
	seenLo, seenHi := false, false
	for i := 0; i < 1000; i++ {
		v := src.IntBetween(1, 3)
		require.GreaterOrEqual(t, v, 1)
		require.LessOrEqual(t, v, 3)
		if v == 1 {
			seenLo = true
		}
		if v == 3 {
			seenHi = true
		}
	}
	assert.True(t, seenLo)
	assert.True(t, seenHi)
}

func TestTimeBetweenRange(t *testing.T) {
	src := NewSource(7, testNow)
	start := testNow.AddDate(0, 0, -30)
	for i := 0; i < 100; i++ {
		v := src.TimeBetween(start, testNow)
		assert.False(t, v.Before(start))
		assert.True(t, v.Before(testNow))
	}

	// Degenerate range collapses to its start.
	assert.Equal(t, testNow, src.TimeBetween(testNow, testNow))
}

func TestUUIDShape(t *testing.T) {
	src := NewSource(9, testNow)
	id := src.UUID()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, src.UUID())
}

func TestHexToken(t *testing.T) {
	src := NewSource(9, testNow)
	assert.Len(t, src.HexToken(32), 64)
}

func TestValueProviders(t *testing.T) {
	src := NewSource(11, testNow)

	assert.NotEmpty(t, src.FirstName())
	assert.NotEmpty(t, src.Username())
	assert.Regexp(t, `^\(\d{3}\) \d{3}-\d{4}$`, src.PhoneNumber())
	assert.Regexp(t, `^\d{5}$`, src.ZipCode())
	assert.Regexp(t, `^\d+ \w+ \w+$`, src.StreetAddress())

	sentence := src.Sentence(12)
	assert.Equal(t, 12, len(splitWords(sentence)))
}

func splitWords(s string) []string {
	var words []string
	word := ""
	for _, r := range s {
		if r == ' ' {
			words = append(words, word)
			word = ""
			continue
		}
		word += string(r)
	}
	return append(words, word)
}

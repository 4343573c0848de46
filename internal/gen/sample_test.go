package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleWithoutReplacement(t *testing.T) {
	src := NewSource(42, testNow)
	population := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	sample, err := SampleWithoutReplacement(src, population, 4)
	require.NoError(t, err)
	require.Len(t, sample, 4)

	seen := make(map[int]bool)
	for _, v := range sample {
		assert.False(t, seen[v], "duplicate element %d in sample", v)
		assert.Contains(t, population, v)
		seen[v] = true
	}

	// Input slice must not be reordered.
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, population)
}

func TestSampleSizeExceedsPopulation(t *testing.T) {
	src := NewSource(42, testNow)
	_, err := SampleWithoutReplacement(src, []int{1, 2}, 3)
	assert.Error(t, err)

	_, err = SampleWithoutReplacement(src, []int{1, 2}, -1)
	assert.Error(t, err)
}

func TestSampleFullAndEmpty(t *testing.T) {
	src := NewSource(42, testNow)

	sample, err := SampleWithoutReplacement(src, []string{"a", "b"}, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b"}, sample)

	sample, err = SampleWithoutReplacement(src, []string{"a", "b"}, 0)
	require.NoError(t, err)
	assert.Empty(t, sample)
}

func TestWeightedChoice(t *testing.T) {
	src := NewSource(42, testNow)

	// A zero weight can never be drawn.
	for i := 0; i < 200; i++ {
		assert.Equal(t, "always", WeightedChoice(src, []string{"always", "never"}, []int{1, 0}))
	}

	// Heavily skewed weights should dominate the draw.
	heavy := 0
	for i := 0; i < 1000; i++ {
		if WeightedChoice(src, []string{"heavy", "light"}, []int{95, 5}) == "heavy" {
			heavy++
		}
	}
	assert.Greater(t, heavy, 850)
}

func TestWeightedChoiceMismatchedTables(t *testing.T) {
	src := NewSource(42, testNow)
	assert.Panics(t, func() {
		WeightedChoice(src, []string{"a", "b"}, []int{1})
	})
}

func TestChoiceCoversAllElements(t *testing.T) {
	src := NewSource(42, testNow)
	items := []string{"x", "y", "z"}
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		seen[Choice(src, items)] = true
	}
	assert.Len(t, seen, 3)
}

package gen

import "fmt"

// Choice returns one uniformly drawn element. items must be non-empty.
func Choice[T any](s *Source, items []T) T {
	return items[s.Intn(len(items))]
}

// WeightedChoice returns one element drawn according to integer weights.
// items and weights must have the same non-zero length and a positive total
// weight; the call sites use fixed static tables.
func WeightedChoice[T any](s *Source, items []T, weights []int) T {
	if len(items) != len(weights) {
		panic(fmt.Sprintf("weighted choice: %d items vs %d weights", len(items), len(weights)))
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	pick := s.Intn(total)
	for i, w := range weights {
		if pick < w {
			return items[i]
		}
		pick -= w
	}
	return items[len(items)-1]
}

// SampleWithoutReplacement returns n distinct elements drawn from items.
// The input slice is not modified. n must not exceed the population size.
func SampleWithoutReplacement[T any](s *Source, items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample size %d is negative", n)
	}
	if n > len(items) {
		return nil, fmt.Errorf("sample size %d exceeds population size %d", n, len(items))
	}

	// Partial Fisher-Yates over a copy: the first n positions end up holding
	// the sample.
	pool := make([]T, len(items))
	copy(pool, items)
	for i := 0; i < n; i++ {
		j := i + s.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n], nil
}

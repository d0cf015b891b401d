package core

import (
	"fmt"
	"math/rand"
)

// Shuffle permutes the slice in place using an unbiased Fisher-Yates swap.
// Works for any length, including 0 and 1.
func Shuffle[T any](rng *rand.Rand, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// ShuffledRange returns the values [1..n] in uniformly random order.
func ShuffledRange(rng *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 1
	}
	Shuffle(rng, values)
	return values
}

// DistinctIndices returns count distinct indices in [0, rangeSize), drawn by
// random draw with membership rejection. Requesting more indices than the
// range holds is a programming error and panics rather than looping forever.
func DistinctIndices(rng *rand.Rand, count, rangeSize int) []int {
	if count > rangeSize {
		panic(fmt.Sprintf("core: DistinctIndices(%d, %d): count exceeds range", count, rangeSize))
	}

	seen := make(map[int]bool, count)
	indices := make([]int, 0, count)
	for len(indices) < count {
		idx := rng.Intn(rangeSize)
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices
}

package core

import (
	"math/rand"
	"testing"
)

func TestShuffleKeepsElements(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	values := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(rng, values)

	if len(values) != 8 {
		t.Fatalf("Shuffle changed length: got %d", len(values))
	}

	seen := make(map[int]bool)
	for _, v := range values {
		seen[v] = true
	}
	for i := 1; i <= 8; i++ {
		if !seen[i] {
			t.Errorf("Shuffle lost element %d", i)
		}
	}
}

func TestShuffleShortSlices(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	// Must not panic on length 0 and 1
	Shuffle(rng, []int{})
	one := []int{42}
	Shuffle(rng, one)
	if one[0] != 42 {
		t.Errorf("Shuffle of single element changed it: %d", one[0])
	}
}

func TestShuffledRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	values := ShuffledRange(rng, 25)
	if len(values) != 25 {
		t.Fatalf("Expected 25 values, got %d", len(values))
	}

	seen := make(map[int]bool)
	for _, v := range values {
		if v < 1 || v > 25 {
			t.Errorf("Value %d out of range [1, 25]", v)
		}
		if seen[v] {
			t.Errorf("Duplicate value %d", v)
		}
		seen[v] = true
	}
}

func TestDistinctIndices(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	indices := DistinctIndices(rng, 6, 9)
	if len(indices) != 6 {
		t.Fatalf("Expected 6 indices, got %d", len(indices))
	}

	seen := make(map[int]bool)
	for _, idx := range indices {
		if idx < 0 || idx >= 9 {
			t.Errorf("Index %d out of range [0, 9)", idx)
		}
		if seen[idx] {
			t.Errorf("Duplicate index %d", idx)
		}
		seen[idx] = true
	}
}

func TestDistinctIndicesFullRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	// count == rangeSize must terminate (every index drawn exactly once)
	indices := DistinctIndices(rng, 16, 16)
	if len(indices) != 16 {
		t.Fatalf("Expected 16 indices, got %d", len(indices))
	}
}

func TestDistinctIndicesPanicsOnBadPrecondition(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	defer func() {
		if recover() == nil {
			t.Error("DistinctIndices(5, 4) should panic instead of looping")
		}
	}()
	DistinctIndices(rng, 5, 4)
}

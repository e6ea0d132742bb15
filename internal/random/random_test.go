package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPCG_StaysInBounds(t *testing.T) {
	src := NewPCG(42)
	bounds := []struct{ lo, hi int }{
		{-10, 10},
		{-5, 5},
		{0, 1},
		{3, 3},
	}

	for _, b := range bounds {
		seen := make(map[int]bool)
		for i := 0; i < 5000; i++ {
			v := src.IntRange(b.lo, b.hi)
			if v < b.lo || v > b.hi {
				t.Fatalf("IntRange(%d, %d) = %d, out of range", b.lo, b.hi, v)
			}
			seen[v] = true
		}
		assert.Len(t, seen, b.hi-b.lo+1, "every value in [%d, %d] should appear", b.lo, b.hi)
	}
}

func TestPCG_SeedReproducible(t *testing.T) {
	a := NewPCG(7)
	b := NewPCG(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntRange(-10, 10), b.IntRange(-10, 10))
	}
	assert.Equal(t, uint64(7), a.Seed())
}

func TestPCG_ZeroSeedReplaced(t *testing.T) {
	assert.NotZero(t, NewPCG(0).Seed())
}

func TestSequence_Cycles(t *testing.T) {
	s := NewSequence(1, 2, 3)
	got := []int{s.IntRange(0, 9), s.IntRange(0, 9), s.IntRange(0, 9), s.IntRange(0, 9)}
	assert.Equal(t, []int{1, 2, 3, 1}, got)
	assert.Equal(t, 4, s.Calls)
}

func TestSequence_EmptyReturnsLow(t *testing.T) {
	s := NewSequence()
	assert.Equal(t, -5, s.IntRange(-5, 5))
}

package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"slidesolve/puzzle"
)

func TestRandomWalkZeroStepsIsGoal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := RandomWalk(3, 0, rng, true)
	assert.Equal(t, puzzle.Goal(3).Packed(), b.Packed())
}

func TestRandomWalkProducesValidPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{3, 4} {
		b := RandomWalk(n, 30, rng, true)
		seen := make(map[uint8]bool)
		for i := 0; i < n*n; i++ {
			seen[b.Get(i)] = true
		}
		assert.Len(t, seen, n*n, "scrambled board must remain a permutation")
	}
}

func TestRandomWalkDeterministicWithSeed(t *testing.T) {
	seed := int64(7)
	a := RandomPuzzle(4, 50, &seed, true)
	b := RandomPuzzle(4, 50, &seed, true)
	assert.Equal(t, a.Packed(), b.Packed(), "same seed must produce the same scramble")
}

func TestRandomWalkAvoidsImmediateBacktrack(t *testing.T) {
	// With avoidBacktrack, the board after 2 steps should generally differ
	// from goal (a 2-step walk that isn't allowed to undo itself can't
	// return to goal on a solvable, non-trivial puzzle, except by a
	// coincidental 2-cycle that Manhattan-distance-preserving moves don't
	// produce here).
	rng := rand.New(rand.NewSource(3))
	b := RandomWalk(3, 2, rng, true)
	assert.NotEqual(t, puzzle.Goal(3).Packed(), b.Packed())
}

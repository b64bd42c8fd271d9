// Package generator produces scrambled boards by a random walk from goal,
// mirroring original_source/cpp/puzzle15/generator15.hpp and
// cpp/puzzle8/generator.hpp: every walk stays on legal moves, so every
// generated board is solvable by construction.
package generator

import (
	"math/rand"
	"time"

	"slidesolve/puzzle"
)

// RandomWalk scrambles Goal(n) with steps random legal moves using rng. When
// avoidBacktrack is true, the move that would immediately undo the previous
// one is excluded from consideration at each step (unless it is the only
// legal move), which avoids wasting steps on a direct back-and-forth.
func RandomWalk(n, steps int, rng *rand.Rand, avoidBacktrack bool) puzzle.Board {
	cur := puzzle.Goal(n)
	if steps <= 0 {
		return cur
	}

	var last puzzle.Move
	hasLast := false
	var buf [4]puzzle.Neighbor

	for step := 0; step < steps; step++ {
		count := cur.NeighborsInto(buf[:])
		candidates := buf[:count]

		if avoidBacktrack && hasLast {
			ban := puzzle.Inverse(last)
			filtered := candidates[:0]
			for _, nb := range candidates {
				if nb.Move != ban {
					filtered = append(filtered, nb)
				}
			}
			if len(filtered) > 0 {
				candidates = filtered
			}
		}

		pick := candidates[rng.Intn(len(candidates))]
		cur = pick.Board
		last = pick.Move
		hasLast = true
	}
	return cur
}

// RandomPuzzle scrambles Goal(n) with steps random legal moves. If seed is
// non-nil the walk is deterministic; otherwise it is seeded from the wall
// clock.
func RandomPuzzle(n, steps int, seed *int64, avoidBacktrack bool) puzzle.Board {
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return RandomWalk(n, steps, rng, avoidBacktrack)
}

package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalInvariants(t *testing.T) {
	for _, n := range []int{3, 4} {
		g := Goal(n)
		assert.Equal(t, uint8(0), g.Get(g.BlankIndex()), "blank cell must decode to 0")
		seen := make(map[uint8]bool)
		for i := 0; i < n*n; i++ {
			seen[g.Get(i)] = true
		}
		assert.Len(t, seen, n*n, "goal board must be a permutation")
	}
}

func TestFromTilesRejectsNonPermutation(t *testing.T) {
	_, err := FromTiles(3, []uint8{1, 2, 3, 4, 5, 6, 7, 8, 8})
	require.ErrorIs(t, err, ErrInvalidBoard)

	_, err = FromTiles(3, []uint8{1, 2, 3, 4, 5, 6, 7, 8})
	require.ErrorIs(t, err, ErrInvalidBoard)
}

func TestFromTilesRoundTrip(t *testing.T) {
	tiles := []uint8{1, 2, 3, 4, 5, 6, 7, 0, 8}
	b, err := FromTiles(3, tiles)
	require.NoError(t, err)
	for i, want := range tiles {
		assert.Equal(t, want, b.Get(i))
	}
	assert.Equal(t, 7, b.BlankIndex())
}

func TestNeighborsFixedOrder(t *testing.T) {
	// Blank at the center of a 3x3 grid can move in all four directions,
	// in the order Up, Down, Left, Right.
	tiles := []uint8{1, 2, 3, 4, 0, 6, 7, 8, 5}
	b, err := FromTiles(3, tiles)
	require.NoError(t, err)

	neighbors := b.Neighbors()
	require.Len(t, neighbors, 4)
	wantOrder := []Move{Up, Down, Left, Right}
	for i, nb := range neighbors {
		assert.Equal(t, wantOrder[i], nb.Move)
	}
}

func TestNeighborsAtCorner(t *testing.T) {
	// Blank in the top-left corner can only move Down or Right.
	tiles := []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}
	b, err := FromTiles(3, tiles)
	require.NoError(t, err)

	neighbors := b.Neighbors()
	require.Len(t, neighbors, 2)
	assert.Equal(t, Down, neighbors[0].Move)
	assert.Equal(t, Right, neighbors[1].Move)
}

func TestApplyUndoRoundTrip(t *testing.T) {
	for _, n := range []int{3, 4} {
		b := Goal(n)
		for _, m := range AllMoves {
			if !b.CanMove(m) {
				continue
			}
			before := b
			tile, oldBlank, err := b.ApplyMoveInPlace(m)
			require.NoError(t, err)
			assert.NotEqual(t, before.Packed(), b.Packed(), "apply must change state")
			b.UndoMoveInPlace(tile, oldBlank)
			assert.Equal(t, before.Packed(), b.Packed(), "undo must restore packed value")
			assert.Equal(t, before.BlankIndex(), b.BlankIndex(), "undo must restore blank index")
		}
	}
}

func TestApplyIllegalMove(t *testing.T) {
	// Blank in top-left corner: Up and Left are illegal.
	tiles := []uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}
	b, err := FromTiles(3, tiles)
	require.NoError(t, err)

	_, _, err = b.ApplyMoveInPlace(Up)
	require.ErrorIs(t, err, ErrIllegalMove)

	_, _, err = b.ApplyMoveInPlace(Left)
	require.ErrorIs(t, err, ErrIllegalMove)
}

func TestInverse(t *testing.T) {
	assert.Equal(t, Down, Inverse(Up))
	assert.Equal(t, Up, Inverse(Down))
	assert.Equal(t, Right, Inverse(Left))
	assert.Equal(t, Left, Inverse(Right))
}

func TestMovedMatchesApplyInPlace(t *testing.T) {
	b := Goal(4)
	for _, m := range AllMoves {
		if !b.CanMove(m) {
			continue
		}
		viaMoved, ok := b.Moved(m)
		require.True(t, ok)

		viaApply := b
		viaApply.ApplyMoveInPlace(m)

		assert.Equal(t, viaApply.Packed(), viaMoved.Packed())
		assert.Equal(t, viaApply.BlankIndex(), viaMoved.BlankIndex())
	}
}

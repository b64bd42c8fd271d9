// Package puzzle implements the bit-packed sliding-tile board shared by the
// 8-puzzle (3×3) and 15-puzzle (4×4): a permutation of tiles {0,...,n²-1}
// packed 4 bits per cell into a uint64, the blank tracked by its linear
// index, and O(1) move/undo in place.
package puzzle

import "github.com/pkg/errors"

// Move is the direction the blank tile travels.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

// AllMoves is the fixed enumeration order used by Neighbors, NeighborsInto,
// and every searcher: Up, Down, Left, Right.
var AllMoves = [4]Move{Up, Down, Left, Right}

func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Inverse returns the opposite direction: Up↔Down, Left↔Right.
func Inverse(m Move) Move {
	switch m {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return m
	}
}

// ErrInvalidBoard is returned when constructing a board from tiles that are
// not a permutation of {0,...,n²-1}.
var ErrInvalidBoard = errors.New("puzzle: not a permutation of 0..n*n-1")

// ErrIllegalMove is returned by ApplyMoveInPlace when CanMove is false for
// the requested direction. It signals a caller contract violation, not a
// recoverable condition.
var ErrIllegalMove = errors.New("puzzle: illegal move for current blank position")

// Board is a permutation of {0,...,n²-1} over n² cells (0 is the blank),
// packed 4 bits per cell into a single uint64. n must be 3 or 4. Equality
// and hashing are defined on the packed value alone (I1); blank always
// equals the cell whose decoded tile is 0 (I2).
type Board struct {
	n      int
	packed uint64
	blank  int
}

const cellBits = 4
const cellMask = uint64(0xF)

// Size returns the grid dimension n (3 or 4).
func (b Board) Size() int { return b.n }

// Packed returns the raw packed encoding. Equality between boards of the
// same size is Packed() equality.
func (b Board) Packed() uint64 { return b.packed }

// BlankIndex returns the blank's current linear index.
func (b Board) BlankIndex() int { return b.blank }

// Get reads the tile at linear index i, an O(1) bit-field extraction.
func (b Board) Get(i int) uint8 {
	return uint8((b.packed >> (uint(i) * cellBits)) & cellMask)
}

func (b *Board) set(i int, v uint8) {
	shift := uint(i) * cellBits
	mask := cellMask << shift
	b.packed = (b.packed &^ mask) | (uint64(v&0xF) << shift)
}

// Goal returns the canonical goal board for an n×n grid: tiles 1..n²-1 in
// cells 0..n²-2, blank in the last cell.
func Goal(n int) Board {
	b := Board{n: n}
	last := n*n - 1
	for i := 0; i < last; i++ {
		b.set(i, uint8(i+1))
	}
	b.set(last, 0)
	b.blank = last
	return b
}

// FromTiles constructs a board from an explicit row-major permutation of
// {0,...,n²-1}. Returns ErrInvalidBoard if tiles is not such a permutation.
func FromTiles(n int, tiles []uint8) (Board, error) {
	want := n * n
	if len(tiles) != want {
		return Board{}, errors.Wrapf(ErrInvalidBoard, "expected %d tiles, got %d", want, len(tiles))
	}
	seen := make([]bool, want)
	blank := -1
	for i, v := range tiles {
		if int(v) >= want || seen[v] {
			return Board{}, errors.Wrapf(ErrInvalidBoard, "duplicate or out-of-range tile %d at index %d", v, i)
		}
		seen[v] = true
		if v == 0 {
			blank = i
		}
	}
	if blank < 0 {
		return Board{}, errors.Wrap(ErrInvalidBoard, "no blank tile present")
	}
	b := Board{n: n}
	for i, v := range tiles {
		b.set(i, v)
	}
	b.blank = blank
	return b, nil
}

func rowCol(n, idx int) (int, int) { return idx / n, idx % n }

// CanMove reports whether the blank can travel in direction m from its
// current position, a pure function of the blank's row/column.
func (b Board) CanMove(m Move) bool {
	r, c := rowCol(b.n, b.blank)
	switch m {
	case Up:
		return r > 0
	case Down:
		return r < b.n-1
	case Left:
		return c > 0
	case Right:
		return c < b.n-1
	default:
		return false
	}
}

// neighborIndex returns the linear index the blank moves to for direction m,
// assuming CanMove(m) already holds.
func neighborIndex(n, blank int, m Move) int {
	r, c := rowCol(n, blank)
	switch m {
	case Up:
		r--
	case Down:
		r++
	case Left:
		c--
	case Right:
		c++
	}
	return r*n + c
}

// ApplyMoveInPlace mutates the board by sliding the blank in direction m. It
// returns the tile that slid into the blank's old position (movedTile) and
// the blank's index before the move (oldBlank) — exactly what
// UndoMoveInPlace needs to reverse it, and what heuristic.ManhattanDelta
// needs for an incremental update. Returns ErrIllegalMove if !CanMove(m).
func (b *Board) ApplyMoveInPlace(m Move) (movedTile uint8, oldBlank int, err error) {
	if !b.CanMove(m) {
		return 0, 0, ErrIllegalMove
	}
	oldBlank = b.blank
	target := neighborIndex(b.n, oldBlank, m)
	movedTile = b.Get(target)
	b.set(target, 0)
	b.set(oldBlank, movedTile)
	b.blank = target
	return movedTile, oldBlank, nil
}

// UndoMoveInPlace is the exact inverse of the ApplyMoveInPlace call that
// produced (movedTile, oldBlank): it restores the packed encoding and blank
// index bit-for-bit.
func (b *Board) UndoMoveInPlace(movedTile uint8, oldBlank int) {
	newBlank := b.blank
	b.set(oldBlank, 0)
	b.set(newBlank, movedTile)
	b.blank = oldBlank
}

// Moved returns a fresh board after applying m, or ok=false if m is illegal.
func (b Board) Moved(m Move) (moved Board, ok bool) {
	if !b.CanMove(m) {
		return Board{}, false
	}
	next := b
	next.ApplyMoveInPlace(m)
	return next, true
}

// Neighbor pairs a successor board with the move that produced it.
type Neighbor struct {
	Board Board
	Move  Move
}

// Neighbors enumerates legal successors in the fixed order Up, Down, Left,
// Right.
func (b Board) Neighbors() []Neighbor {
	var buf [4]Neighbor
	n := b.NeighborsInto(buf[:])
	out := make([]Neighbor, n)
	copy(out, buf[:n])
	return out
}

// NeighborsInto enumerates legal successors into buf (capacity >= 4) and
// returns the count written, avoiding an allocation per call.
func (b Board) NeighborsInto(buf []Neighbor) int {
	n := 0
	for _, m := range AllMoves {
		if next, ok := b.Moved(m); ok {
			buf[n] = Neighbor{Board: next, Move: m}
			n++
		}
	}
	return n
}

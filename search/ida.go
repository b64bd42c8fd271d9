package search

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"slidesolve/heuristic"
	"slidesolve/puzzle"
)

// ErrOutOfCapacity is returned when IDA*'s preallocated path stack would be
// exceeded — a configuration bug for pathologically deep bounds, not a
// recoverable search outcome.
var ErrOutOfCapacity = errors.New("search: ida* path exceeds configured max depth")

// dfsOutcome is the recursive DFS's return value: either the goal was found
// (in which case the path is already recorded on the searcher), or the
// smallest f that exceeded the current bound, to become the next bound.
type dfsOutcome struct {
	found     bool
	minExceed int
}

type idaSearcher struct {
	table     *heuristic.Table
	customH   HeuristicFunc
	useCustom bool
	maxDepth  int
	generated int
	pathMoves []puzzle.Move
	onPath    map[uint64]bool
}

// IDAStar runs iterative-deepening A* from start to goal: depth-first search
// bounded by an increasing f-threshold, in-place move/undo, and an on-path
// set guarding against cycles within one iteration. No persistent closed set
// across iterations — IDA* trades time (re-expansion) for O(depth) memory.
func IDAStar(start, goal puzzle.Board, opts ...Option) (Result, error) {
	t0 := time.Now()
	o := resolveOptions(start.Size(), opts)

	if start.Packed() == goal.Packed() {
		return Result{Path: []puzzle.Move{}, Generated: 0, ElapsedMS: elapsedMS(t0)}, nil
	}

	s := &idaSearcher{
		table:     heuristic.ForSize(start.Size()),
		customH:   o.heuristic,
		useCustom: o.custom,
		maxDepth:  o.cfg.MaxDepthFor(start.Size()),
		onPath:    make(map[uint64]bool, o.cfg.MaxDepthFor(start.Size())+1),
	}

	h0 := o.heuristic(start)
	bound := h0
	goalPacked := goal.Packed()

	for {
		s.pathMoves = s.pathMoves[:0]
		for k := range s.onPath {
			delete(s.onPath, k)
		}
		board := start
		s.onPath[board.Packed()] = true

		outcome, err := s.dfs(&board, goalPacked, 0, bound, h0, 0, false)
		if err != nil {
			return Result{}, err
		}
		if outcome.found {
			path := make([]puzzle.Move, len(s.pathMoves))
			copy(path, s.pathMoves)
			return Result{Path: path, Generated: s.generated, ElapsedMS: elapsedMS(t0)}, nil
		}
		if outcome.minExceed == math.MaxInt {
			return Result{Path: nil, Generated: s.generated, ElapsedMS: elapsedMS(t0)}, nil
		}
		bound = outcome.minExceed
	}
}

// dfs searches from board (mutated and restored in place) at depth g under
// the given bound, with h the board's current heuristic value and prevMove
// the move that produced board (ignored if hasPrev is false).
func (s *idaSearcher) dfs(board *puzzle.Board, goalPacked uint64, g, bound, h int, prevMove puzzle.Move, hasPrev bool) (dfsOutcome, error) {
	f := g + h
	if f > bound {
		return dfsOutcome{minExceed: f}, nil
	}
	if board.Packed() == goalPacked {
		return dfsOutcome{found: true}, nil
	}

	minNext := math.MaxInt
	for _, m := range puzzle.AllMoves {
		if hasPrev && m == puzzle.Inverse(prevMove) {
			continue
		}
		if !board.CanMove(m) {
			continue
		}
		oldBlank := board.BlankIndex()
		movedTile, _, err := board.ApplyMoveInPlace(m)
		if err != nil {
			return dfsOutcome{}, errors.Wrap(err, "search: apply move")
		}
		newBlank := board.BlankIndex()
		s.generated++

		childPacked := board.Packed()
		if s.onPath[childPacked] {
			board.UndoMoveInPlace(movedTile, oldBlank)
			continue
		}

		var hChild int
		if s.useCustom {
			hChild = s.customH(*board)
		} else {
			hChild = s.table.ManhattanDelta(h, movedTile, newBlank, oldBlank)
		}
		fChild := g + 1 + hChild

		if fChild > bound {
			if fChild < minNext {
				minNext = fChild
			}
			board.UndoMoveInPlace(movedTile, oldBlank)
			continue
		}

		if len(s.pathMoves) >= s.maxDepth {
			board.UndoMoveInPlace(movedTile, oldBlank)
			return dfsOutcome{}, ErrOutOfCapacity
		}

		s.pathMoves = append(s.pathMoves, m)
		s.onPath[childPacked] = true

		outcome, err := s.dfs(board, goalPacked, g+1, bound, hChild, m, true)
		if err != nil {
			return dfsOutcome{}, err
		}
		delete(s.onPath, childPacked)

		if outcome.found {
			// Leave pathMoves intact: the caller copies it once the
			// top-level loop sees found=true.
			board.UndoMoveInPlace(movedTile, oldBlank)
			return outcome, nil
		}
		s.pathMoves = s.pathMoves[:len(s.pathMoves)-1]
		if outcome.minExceed < minNext {
			minNext = outcome.minExceed
		}
		board.UndoMoveInPlace(movedTile, oldBlank)
	}
	return dfsOutcome{minExceed: minNext}, nil
}

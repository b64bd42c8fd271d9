package search

import (
	"time"

	"github.com/pkg/errors"
	"slidesolve/heuristic"
	"slidesolve/pqueue"
	"slidesolve/puzzle"
)

type metaEntry struct {
	g, h   int
	closed bool
}

// parentEntry is the A* Parent Map's value: the board's packed predecessor,
// the move taken to reach it, and the predecessor's blank index (kept for
// the data model's invariant P2, not needed by path reconstruction itself).
type parentEntry struct {
	prev      uint64
	move      puzzle.Move
	prevBlank int
}

type aStarNode struct {
	board puzzle.Board
	g, h  int
}

const initialMapCapacity = 1 << 16

// AStar runs best-first search from start to goal: memory-based, a bucket
// priority queue keyed on (f, h), and lazy duplicate detection via a
// closed/meta map. Because Manhattan distance is consistent, the first time
// a node is popped with closed=false its g-value is optimal.
func AStar(start, goal puzzle.Board, opts ...Option) (Result, error) {
	t0 := time.Now()
	o := resolveOptions(start.Size(), opts)

	if start.Packed() == goal.Packed() {
		return Result{Path: []puzzle.Move{}, Generated: 0, ElapsedMS: elapsedMS(t0)}, nil
	}

	bounds := o.cfg.BoundsFor(start.Size())
	q := pqueue.New[aStarNode](0, bounds.FMax, 0, bounds.HMax)

	meta := make(map[uint64]*metaEntry, initialMapCapacity)
	parent := make(map[uint64]parentEntry, initialMapCapacity)

	h0 := o.heuristic(start)
	meta[start.Packed()] = &metaEntry{g: 0, h: h0}
	if err := q.Push(aStarNode{board: start, g: 0, h: h0}, h0, h0); err != nil {
		return Result{}, errors.Wrap(err, "search: push start node")
	}

	generated := 0
	startPacked, goalPacked := start.Packed(), goal.Packed()

	for {
		cur, ok := q.Pop()
		if !ok {
			break
		}
		curPacked := cur.board.Packed()
		cm := meta[curPacked]
		if cm.closed {
			continue // lazy duplicate detection
		}

		if curPacked == goalPacked {
			path := reconstructPath(parent, startPacked, goalPacked)
			return Result{Path: path, Generated: generated, ElapsedMS: elapsedMS(t0)}, nil
		}
		cm.closed = true

		// Skip the move that would immediately retrace the edge we arrived
		// on: any optimal path using m then Inverse(m) could be shortened,
		// and in A* this never removes a shorter path because Inverse(m)
		// returns to a state already in meta with g <= current g + 1.
		var skip puzzle.Move
		hasSkip := false
		if p, ok := parent[curPacked]; ok {
			skip = puzzle.Inverse(p.move)
			hasSkip = true
		}

		board := cur.board
		for _, m := range puzzle.AllMoves {
			if hasSkip && m == skip {
				continue
			}
			if !board.CanMove(m) {
				continue
			}
			movedTile, oldBlank, err := board.ApplyMoveInPlace(m)
			if err != nil {
				return Result{}, errors.Wrap(err, "search: apply move")
			}

			childPacked := board.Packed()
			gPrime := cur.g + 1

			if existing, ok := meta[childPacked]; ok && existing.g <= gPrime {
				board.UndoMoveInPlace(movedTile, oldBlank)
				continue
			}

			var hPrime int
			if o.custom {
				hPrime = o.heuristic(board)
			} else {
				newBlank := board.BlankIndex()
				hPrime = heuristic.ForSize(start.Size()).ManhattanDelta(cur.h, movedTile, newBlank, oldBlank)
			}
			fPrime := gPrime + hPrime

			parent[childPacked] = parentEntry{prev: curPacked, move: m, prevBlank: oldBlank}
			meta[childPacked] = &metaEntry{g: gPrime, h: hPrime}
			generated++

			if err := q.Push(aStarNode{board: board, g: gPrime, h: hPrime}, fPrime, hPrime); err != nil {
				board.UndoMoveInPlace(movedTile, oldBlank)
				return Result{}, errors.Wrap(err, "search: push child node")
			}
			board.UndoMoveInPlace(movedTile, oldBlank)
		}
	}

	return Result{Path: nil, Generated: generated, ElapsedMS: elapsedMS(t0)}, nil
}

func reconstructPath(parent map[uint64]parentEntry, startPacked, goalPacked uint64) []puzzle.Move {
	var reversed []puzzle.Move
	cur := goalPacked
	for cur != startPacked {
		p, ok := parent[cur]
		if !ok {
			break
		}
		reversed = append(reversed, p.move)
		cur = p.prev
	}
	path := make([]puzzle.Move, len(reversed))
	for i, m := range reversed {
		path[len(reversed)-1-i] = m
	}
	return path
}

// Package search implements the memory-based A* (bucket priority queue,
// lazy duplicate detection) and memory-frugal IDA* (iterative deepening on
// an admissible bound) searchers over puzzle.Board.
package search

import (
	"time"

	"slidesolve/config"
	"slidesolve/heuristic"
	"slidesolve/puzzle"
)

// HeuristicFunc is an admissible lower bound on moves-to-goal for a board of
// a fixed grid size.
type HeuristicFunc func(puzzle.Board) int

// Result carries a searcher's outcome: Path is nil if the frontier (A*) or
// search tree (IDA*) was exhausted without reaching goal; it is a non-nil,
// zero-length slice if start already equals goal.
type Result struct {
	Path      []puzzle.Move
	Generated int
	ElapsedMS int64
}

// options bundles the per-call overrides available via Option.
type options struct {
	heuristic HeuristicFunc
	cfg       *config.SearchConfig
	// custom is true when the caller supplied WithHeuristic. The
	// incremental ManhattanDelta update is only proven correct for
	// Manhattan distance (spec.md §4.2): when the caller overrides the
	// heuristic, every child's h is recomputed from scratch via
	// o.heuristic instead of delta-updated.
	custom bool
}

// Option configures a single AStar or IDAStar call.
type Option func(*options)

// WithHeuristic overrides the default Manhattan-distance heuristic. Because
// the incremental delta update only holds for Manhattan distance, supplying
// a custom heuristic disables it for that call: every child's h is
// recomputed from scratch instead.
func WithHeuristic(h HeuristicFunc) Option {
	return func(o *options) {
		o.heuristic = h
		o.custom = true
	}
}

// WithConfig overrides the default bucket bounds / IDA* depth caps.
func WithConfig(cfg *config.SearchConfig) Option {
	return func(o *options) { o.cfg = cfg }
}

func resolveOptions(n int, opts []Option) options {
	o := options{cfg: config.Default()}
	for _, apply := range opts {
		apply(&o)
	}
	if o.heuristic == nil {
		table := heuristic.ForSize(n)
		o.heuristic = table.Manhattan
	}
	return o
}

func elapsedMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}

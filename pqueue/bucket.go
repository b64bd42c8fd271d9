// Package pqueue implements a two-level bucket priority queue keyed on a
// primary integer (e.g. A*'s f-cost) and a secondary integer (e.g. h, for
// tie-breaking): items with identical (primary, secondary) live in the same
// FIFO bucket, and popping scans forward from a cached minimum instead of
// maintaining a general heap. This beats container/heap on this problem
// shape because f and h are small non-negative integers and search
// generates millions of nodes — O(1) push, cache-friendly sequential
// storage, and no log-n heap rebalancing on the hot path.
package pqueue

import "github.com/pkg/errors"

// ErrOutOfRange is returned by Push when primary or secondary falls outside
// the queue's configured window. It signals a configuration bug — the
// bucket bounds were sized too small for the search — not a recoverable
// condition.
var ErrOutOfRange = errors.New("pqueue: priority outside configured bucket range")

type bucket[T any] struct {
	items []T
	head  int
}

func (b *bucket[T]) empty() bool { return b.head >= len(b.items) }

// Queue is a min-priority structure over primary in [pMin,pMax] and
// secondary in [sMin,sMax]. The zero value is not usable; construct with
// New.
type Queue[T any] struct {
	pMin, pMax int
	sMin, sMax int
	sSpan      int
	buckets    []bucket[T]
	size       int
	curP, curS int // cached scan cursor, advances monotonically on Pop
}

// New builds a bucket queue over the inclusive ranges [pMin,pMax] (primary)
// and [sMin,sMax] (secondary). Both ranges must be sized generously enough
// by the caller — values outside them are a fatal misconfiguration (Q3),
// reported as ErrOutOfRange from Push rather than silently clamped.
func New[T any](pMin, pMax, sMin, sMax int) *Queue[T] {
	sSpan := sMax - sMin + 1
	pSpan := pMax - pMin + 1
	return &Queue[T]{
		pMin: pMin, pMax: pMax,
		sMin: sMin, sMax: sMax,
		sSpan:   sSpan,
		buckets: make([]bucket[T], pSpan*sSpan),
		curP:    pMin, curS: sMin,
	}
}

func (q *Queue[T]) index(primary, secondary int) int {
	return (primary-q.pMin)*q.sSpan + (secondary - q.sMin)
}

func (q *Queue[T]) inRange(primary, secondary int) bool {
	return primary >= q.pMin && primary <= q.pMax && secondary >= q.sMin && secondary <= q.sMax
}

// Push appends item to the bucket at (primary, secondary), preserving FIFO
// order within that bucket (Q1). O(1) amortized (Q2).
func (q *Queue[T]) Push(item T, primary, secondary int) error {
	if !q.inRange(primary, secondary) {
		return errors.Wrapf(ErrOutOfRange, "primary=%d secondary=%d (want [%d,%d]x[%d,%d])",
			primary, secondary, q.pMin, q.pMax, q.sMin, q.sMax)
	}
	idx := q.index(primary, secondary)
	q.buckets[idx].items = append(q.buckets[idx].items, item)
	q.size++
	if primary < q.curP || (primary == q.curP && secondary < q.curS) {
		// Defensive: under a consistent heuristic this never moves the
		// cursor backward in practice, but correctness shouldn't depend on
		// that holding for every caller.
		q.curP, q.curS = primary, secondary
	}
	return nil
}

// advance moves the cursor forward (never backward) to the first non-empty
// bucket at or after (curP, curS), scanning in lexicographic (primary,
// secondary) order. Returns false if no such bucket exists.
func (q *Queue[T]) advance() bool {
	for p := q.curP; p <= q.pMax; p++ {
		sStart := q.sMin
		if p == q.curP {
			sStart = q.curS
		}
		for s := sStart; s <= q.sMax; s++ {
			if !q.buckets[q.index(p, s)].empty() {
				q.curP, q.curS = p, s
				return true
			}
		}
	}
	return false
}

// Top returns the item with smallest primary, ties broken by smallest
// secondary, without removing it.
func (q *Queue[T]) Top() (item T, ok bool) {
	if q.size == 0 || !q.advance() {
		return item, false
	}
	b := &q.buckets[q.index(q.curP, q.curS)]
	return b.items[b.head], true
}

// Pop removes and returns the item Top would have returned.
func (q *Queue[T]) Pop() (item T, ok bool) {
	if q.size == 0 || !q.advance() {
		return item, false
	}
	b := &q.buckets[q.index(q.curP, q.curS)]
	item = b.items[b.head]
	b.head++
	q.size--
	return item, true
}

// Empty reports whether any bucket has items.
func (q *Queue[T]) Empty() bool { return q.size == 0 }

// Len returns the total number of items currently queued.
func (q *Queue[T]) Len() int { return q.size }

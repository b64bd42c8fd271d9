package pqueue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopOrderWithExplicitKeys(t *testing.T) {
	type entry struct {
		val  string
		p, s int
	}
	q := New[entry](0, 10, 0, 10)
	items := []entry{
		{"e1", 4, 3}, {"e2", 4, 1}, {"e3", 2, 0}, {"e4", 7, 5}, {"e5", 2, 2},
	}
	for _, it := range items {
		require.NoError(t, q.Push(it, it.p, it.s))
	}

	var lastP, lastS = -1, -1
	count := 0
	for !q.Empty() {
		item, ok := q.Pop()
		require.True(t, ok)
		if item.p == lastP {
			assert.GreaterOrEqual(t, item.s, lastS, "ties on primary must be non-decreasing on secondary")
		} else {
			assert.Greater(t, item.p, lastP)
		}
		lastP, lastS = item.p, item.s
		count++
	}
	assert.Equal(t, len(items), count)
}

func TestFIFOWithinBucket(t *testing.T) {
	q := New[string](0, 5, 0, 5)
	require.NoError(t, q.Push("first", 3, 3))
	require.NoError(t, q.Push("second", 3, 3))
	require.NoError(t, q.Push("third", 3, 3))

	first, _ := q.Pop()
	second, _ := q.Pop()
	third, _ := q.Pop()
	assert.Equal(t, []string{"first", "second", "third"}, []string{first, second, third})
}

func TestPushOutOfRange(t *testing.T) {
	q := New[int](0, 10, 0, 10)
	err := q.Push(1, 11, 0)
	require.ErrorIs(t, err, ErrOutOfRange)

	err = q.Push(1, 0, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestEmptyAndTop(t *testing.T) {
	q := New[int](0, 5, 0, 5)
	assert.True(t, q.Empty())
	_, ok := q.Top()
	assert.False(t, ok)

	require.NoError(t, q.Push(42, 2, 2))
	assert.False(t, q.Empty())
	top, ok := q.Top()
	require.True(t, ok)
	assert.Equal(t, 42, top)
	// Top must not remove.
	assert.False(t, q.Empty())
}

func TestRandomizedOrderingInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := New[int](0, 99, 0, 99)
	type pushed struct{ p, s int }
	var all []pushed
	for i := 0; i < 500; i++ {
		p, s := rng.Intn(100), rng.Intn(100)
		all = append(all, pushed{p, s})
		require.NoError(t, q.Push(p*1000+s, p, s))
	}

	lastP, lastS := -1, -1
	for !q.Empty() {
		v, ok := q.Pop()
		require.True(t, ok)
		p, s := v/1000, v%1000
		if p == lastP {
			assert.GreaterOrEqual(t, s, lastS)
		} else {
			assert.Greater(t, p, lastP)
		}
		lastP, lastS = p, s
	}
}

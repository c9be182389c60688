// Package ring provides a fixed-capacity circular queue that is kept full at
// all times: every removal is paired with a refill.
package ring

import (
	"github.com/huynhanx03/go-tetris/pkg/utils"
)

// Full is a circular queue that always holds exactly Cap() values.
// Callers address slots relative to the front, never by raw index.
type Full[T any] struct {
	slots  []T
	head   int // logical front
	refill func() T
}

// NewFull creates a queue of the given capacity and fills every slot with
// refill, front first. It panics if capacity < 1 or refill is nil.
func NewFull[T any](capacity int, refill func() T) *Full[T] {
	if capacity < 1 {
		panic("ring: capacity must be >= 1")
	}
	if refill == nil {
		panic("ring: nil refill")
	}

	r := &Full[T]{
		slots:  make([]T, capacity),
		refill: refill,
	}
	r.Reset()
	return r
}

// Reset discards the current contents and refills every slot, front first.
func (r *Full[T]) Reset() {
	r.head = 0
	for i := range r.slots {
		r.slots[i] = r.refill()
	}
}

// Shift removes and returns the front value. The freed slot receives a fresh
// value, which becomes the new back of the queue.
func (r *Full[T]) Shift() T {
	v := r.slots[r.head]
	r.slots[r.head] = r.refill()
	r.head = utils.WrapIndex(r.head+1, len(r.slots))
	return v
}

// Front returns the value that the next Shift will remove.
func (r *Full[T]) Front() T {
	return r.slots[r.head]
}

// At returns the value offset positions behind the front.
// It panics unless 0 <= offset < Cap().
func (r *Full[T]) At(offset int) T {
	return r.slots[r.index(offset)]
}

// Replace stores v at offset positions behind the front and returns the
// value it displaced. It panics unless 0 <= offset < Cap().
func (r *Full[T]) Replace(offset int, v T) T {
	i := r.index(offset)
	old := r.slots[i]
	r.slots[i] = v
	return old
}

// Items returns the contents in front-to-back order.
func (r *Full[T]) Items() []T {
	out := make([]T, len(r.slots))
	for i := range out {
		out[i] = r.slots[utils.WrapIndex(r.head+i, len(r.slots))]
	}
	return out
}

// Len is always equal to Cap.
func (r *Full[T]) Len() int { return len(r.slots) }

// Cap returns the fixed capacity.
func (r *Full[T]) Cap() int { return len(r.slots) }

func (r *Full[T]) index(offset int) int {
	if !utils.InRange(offset, len(r.slots)) {
		panic("ring: offset out of range")
	}
	return utils.WrapIndex(r.head+offset, len(r.slots))
}

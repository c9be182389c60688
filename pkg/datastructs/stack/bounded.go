// Package stack provides a fixed-capacity LIFO container.
package stack

import (
	"github.com/pkg/errors"

	"github.com/huynhanx03/go-tetris/pkg/utils"
)

var (
	// ErrCapacityExceeded is returned when pushing onto a full stack.
	ErrCapacityExceeded = errors.New("stack capacity exceeded")
	// ErrUnderflow is returned when popping an empty stack.
	ErrUnderflow = errors.New("stack underflow")
)

// Bounded is a LIFO stack of at most Cap() values.
// Slots above top keep whatever they last held; they are never read.
type Bounded[T any] struct {
	slots []T
	top   int // -1 when empty, len(slots)-1 when full
}

// New creates an empty stack. It panics if capacity < 1.
func New[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		panic("stack: capacity must be >= 1")
	}
	return &Bounded[T]{
		slots: make([]T, capacity),
		top:   -1,
	}
}

// IsEmpty reports whether the stack holds no values.
func (s *Bounded[T]) IsEmpty() bool { return s.top == -1 }

// IsFull reports whether a Push would fail.
func (s *Bounded[T]) IsFull() bool { return s.top == len(s.slots)-1 }

// Len returns the number of values on the stack.
func (s *Bounded[T]) Len() int { return s.top + 1 }

// Cap returns the fixed capacity.
func (s *Bounded[T]) Cap() int { return len(s.slots) }

// Push places v on top of the stack.
func (s *Bounded[T]) Push(v T) error {
	if s.IsFull() {
		return ErrCapacityExceeded
	}
	s.top++
	s.slots[s.top] = v
	return nil
}

// Pop removes and returns the top value.
func (s *Bounded[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrUnderflow
	}
	v := s.slots[s.top]
	s.top--
	return v, nil
}

// At returns the value depth positions below the top.
// It panics unless 0 <= depth < Len().
func (s *Bounded[T]) At(depth int) T {
	return s.slots[s.index(depth)]
}

// Replace stores v depth positions below the top and returns the value it
// displaced. It panics unless 0 <= depth < Len().
func (s *Bounded[T]) Replace(depth int, v T) T {
	i := s.index(depth)
	old := s.slots[i]
	s.slots[i] = v
	return old
}

// Items returns the contents in top-to-bottom order.
func (s *Bounded[T]) Items() []T {
	out := make([]T, 0, s.Len())
	for i := s.top; i >= 0; i-- {
		out = append(out, s.slots[i])
	}
	return out
}

func (s *Bounded[T]) index(depth int) int {
	if !utils.InRange(depth, s.Len()) {
		panic("stack: depth out of range")
	}
	return s.top - depth
}

package queue

import "github.com/huynhanx03/go-tetris/pkg/utils"

var _ Queue[int] = (*Bounded[int])(nil)

// Bounded is a fixed-capacity circular FIFO that tracks its element count.
// Unlike ring.Full it may be empty, partially filled or full.
type Bounded[T any] struct {
	items []T
	head  int // next position to read from
	tail  int // next position to write to
	count int
}

// NewBounded creates an empty queue. Capacities below 1 are raised to 1.
func NewBounded[T any](capacity int) *Bounded[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Bounded[T]{items: make([]T, capacity)}
}

// Enqueue adds an item at the back. Returns false if the queue is full.
func (q *Bounded[T]) Enqueue(item T) bool {
	if q.IsFull() {
		return false
	}
	q.items[q.tail] = item
	q.tail = utils.WrapIndex(q.tail+1, len(q.items))
	q.count++
	return true
}

// Dequeue removes the front item. Returns false if the queue is empty.
func (q *Bounded[T]) Dequeue() (T, bool) {
	var zero T
	if q.IsEmpty() {
		return zero, false
	}
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head = utils.WrapIndex(q.head+1, len(q.items))
	q.count--
	return item, true
}

// Items returns the contents in front-to-back order.
func (q *Bounded[T]) Items() []T {
	out := make([]T, q.count)
	for i := range out {
		out[i] = q.items[utils.WrapIndex(q.head+i, len(q.items))]
	}
	return out
}

// Len returns the number of queued items.
func (q *Bounded[T]) Len() int { return q.count }

// IsEmpty returns true if the queue holds no items.
func (q *Bounded[T]) IsEmpty() bool { return q.count == 0 }

// IsFull returns true if no more items can be enqueued.
func (q *Bounded[T]) IsFull() bool { return q.count == len(q.items) }

// Capacity returns maximum queue size.
func (q *Bounded[T]) Capacity() uint64 { return uint64(len(q.items)) }

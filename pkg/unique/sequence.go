package unique

import "sync"

// Sequence hands out strictly increasing identifiers starting at zero.
// Values are never reused and there are no gaps between consecutive calls.
type Sequence struct {
	mu   sync.Mutex
	next uint64
}

// NewSequence creates a sequence whose first value is 0.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the current value and advances the sequence.
func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.next
	s.next++
	return id
}

// Peek returns the value the next call to Next will hand out.
func (s *Sequence) Peek() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}

package timer

import "time"

type Timer interface {
	Now() time.Time
}

// SystemTimer reads the wall clock.
type SystemTimer struct{}

func (SystemTimer) Now() time.Time {
	return time.Now()
}

// FixedTimer always reports the same instant.
type FixedTimer struct {
	At time.Time
}

func (t FixedTimer) Now() time.Time {
	return t.At
}

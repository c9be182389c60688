package ring

import (
	"testing"
)

var sizes = []struct {
	name     string
	capacity int
}{
	{"Cap5", 5},
	{"Cap64", 64},
	{"Cap1K", 1024},
}

// =============================================================================
// BenchmarkShift - removal paired with refill
// =============================================================================

func BenchmarkShift(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			r := NewFull(size.capacity, counter())
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.Shift()
			}
		})
	}
}

// =============================================================================
// BenchmarkReplace - front-relative writes
// =============================================================================

func BenchmarkReplace(b *testing.B) {
	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			r := NewFull(size.capacity, counter())
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.Replace(i%size.capacity, i)
			}
		})
	}
}

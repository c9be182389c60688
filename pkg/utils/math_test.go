package utils

import "testing"

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want int
	}{
		{"zero", 0, 5, 0},
		{"inside", 3, 5, 3},
		{"exact_capacity", 5, 5, 0},
		{"past_capacity", 7, 5, 2},
		{"many_laps", 23, 5, 3},
		{"minus_one", -1, 5, 4},
		{"negative_lap", -6, 5, 4},
		{"single_slot", 9, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapIndex(tt.i, tt.n); got != tt.want {
				t.Errorf("WrapIndex(%d, %d) = %d; want %d", tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		i, n int
		want bool
	}{
		{0, 3, true},
		{2, 3, true},
		{3, 3, false},
		{-1, 3, false},
		{0, 0, false},
	}

	for _, tt := range tests {
		if got := InRange(tt.i, tt.n); got != tt.want {
			t.Errorf("InRange(%d, %d) = %v; want %v", tt.i, tt.n, got, tt.want)
		}
	}
}

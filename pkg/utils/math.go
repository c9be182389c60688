package utils

// WrapIndex maps i onto [0, n) as if the range were circular.
// Negative values wrap from the end. n must be positive.
func WrapIndex(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// InRange reports whether 0 <= i < n.
func InRange(i, n int) bool {
	return i >= 0 && i < n
}

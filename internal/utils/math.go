// internal/utils/math.go
package utils

import "math"

// Distance — евклидово расстояние между двумя точками сетки.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x1-x2, y1-y2)
}

// SaturatingSub returns max(0, a-b).
func SaturatingSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Mean returns the arithmetic mean of a and b.
func Mean(a, b float64) float64 {
	return (a + b) / 2
}

// MaxInt returns the larger of a and b.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

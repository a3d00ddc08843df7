// pkg/utils/math.go
package utils

import "math"

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv returns floor(v / size) as an int.
func FloorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}

// Dist returns the euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

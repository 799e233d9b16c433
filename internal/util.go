package internal

import "math"

// Lexicographic order: smaller X first, ties broken by smaller Y. This is the
// order used to canonicalize segments and to pick overlap endpoints.
func (p Point) Less(other Point) bool {
	if p.X == other.X {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func MaxPoint(a, b Point) Point {
	if a.Less(b) {
		return b
	}
	return a
}

func MinPoint(a, b Point) Point {
	if b.Less(a) {
		return b
	}
	return a
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// validatePoints panics with an InvalidInputError if any of the points has a NaN or
// infinite coordinate.
func validatePoints(points ...Point) {
	for i, p := range points {
		if !p.IsFinite() {
			throwInvalidInput(i, p)
		}
	}
}

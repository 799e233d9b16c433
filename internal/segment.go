package internal

import "math"

func (s Segment) Reverse() Segment {
	return Segment{s.End, s.Start}
}

// A zero length segment behaves as a single point everywhere in this package.
func (s Segment) IsDegenerate() bool {
	return s.Start.Equal(s.End)
}

// Canonical returns the segment with its lexicographically smaller endpoint
// first. Geometrically this is the same segment.
func (s Segment) Canonical() Segment {
	if s.End.Less(s.Start) {
		return s.Reverse()
	}
	return s
}

// Line returns the standard form of the line through the segment. For a
// degenerate segment, A and B are both zero, so any determinant involving it
// is zero.
func (s Segment) Line() Line {
	a := s.End.Y - s.Start.Y
	b := s.Start.X - s.End.X
	return Line{
		A: a,
		B: b,
		C: a*s.Start.X + b*s.Start.Y,
	}
}

// Determinant of the 2x2 system formed by two lines. Zero means the lines are
// parallel or coincident (or one of them came from a degenerate segment).
func Determinant(l1, l2 Line) float64 {
	return l1.A*l2.B - l2.A*l1.B
}

// Multiply every coordinate by 2^exp.
func (s Segment) scale(exp int) Segment {
	return Segment{
		Start: Point{math.Ldexp(s.Start.X, exp), math.Ldexp(s.Start.Y, exp)},
		End:   Point{math.Ldexp(s.End.X, exp), math.Ldexp(s.End.Y, exp)},
	}
}

package internal

import "math"

// A Classifier runs the segment predicates with an explicit tolerance. The
// zero value compares against zero exactly, which is what the package level
// functions use.
//
// With a positive Epsilon, orientation values and determinants whose absolute
// value is at most Epsilon are treated as zero, and the on-segment bounding
// box is widened by Epsilon on every side. This is an opt-in deviation from
// exact comparison for near-degenerate input.
type Classifier struct {
	Epsilon float64
}

var exact Classifier

func (c Classifier) isZero(v float64) bool {
	if c.Epsilon <= 0 {
		return v == 0
	}
	return math.Abs(v) <= c.Epsilon
}

// Turn direction of the ordered triple a, b, p. The sign convention is fixed:
// a positive cross value is Clockwise.
func (c Classifier) Orient(a, b, p Point) Orientation {
	d := (b.Y-a.Y)*(p.X-b.X) - (b.X-a.X)*(p.Y-b.Y)
	if c.isZero(d) {
		return Collinear
	}
	if d > 0 {
		return Clockwise
	}
	return CounterClockwise
}

// Check if b lies inside the bounding box of a and p, bounds inclusive. This
// only looks at the box; callers are expected to have established that the
// three points are collinear.
func (c Classifier) OnSegment(a, b, p Point) bool {
	eps := math.Max(c.Epsilon, 0)
	return b.X <= math.Max(a.X, p.X)+eps && b.X >= math.Min(a.X, p.X)-eps &&
		b.Y <= math.Max(a.Y, p.Y)+eps && b.Y >= math.Min(a.Y, p.Y)-eps
}

// Decide whether segments p1q1 and p2q2 share at least one point.
func (c Classifier) SegmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := c.Orient(p1, q1, p2)
	o2 := c.Orient(p1, q1, q2)
	o3 := c.Orient(p2, q2, p1)
	o4 := c.Orient(p2, q2, q1)

	// General case: each segment's endpoints are on opposite sides of the
	// other's line
	if o1 != o2 && o3 != o4 {
		return true
	}

	// Degenerate cases: an endpoint is collinear with the other segment and
	// inside its extent
	if o1 == Collinear && c.OnSegment(p1, p2, q1) {
		return true
	}
	if o2 == Collinear && c.OnSegment(p1, q2, q1) {
		return true
	}
	if o3 == Collinear && c.OnSegment(p2, p1, q2) {
		return true
	}
	if o4 == Collinear && c.OnSegment(p2, q1, q2) {
		return true
	}
	return false
}

// Crossing point of two lines by Cramer's rule. The second return value is
// false when the determinant is zero, in which case no division happens.
func (c Classifier) Crossing(l1, l2 Line) (Point, bool) {
	det := Determinant(l1, l2)
	if c.isZero(det) {
		return Point{}, false
	}
	return Point{
		X: (l2.B*l1.C - l1.B*l2.C) / det,
		Y: (l1.A*l2.C - l2.A*l1.C) / det,
	}, true
}

// Overlap of two segments already known to lie on one line. Both segments
// are canonicalized first, so Start <= End in the result.
func (c Classifier) Overlap(s1, s2 Segment) Outcome {
	s1 = s1.Canonical()
	s2 = s2.Canonical()
	// Either start point inside the other segment's box means the extents
	// meet. Checking both directions keeps the result independent of which
	// segment comes first.
	if !c.OnSegment(s1.Start, s2.Start, s1.End) && !c.OnSegment(s2.Start, s1.Start, s2.End) {
		return CollinearDisjoint{}
	}
	start := MaxPoint(s1.Start, s2.Start)
	end := MinPoint(s1.End, s2.End)
	// A widened box lets segments separated by a gap within Epsilon through.
	// They touch, as far as the tolerance can tell.
	if end.Less(start) {
		end = start
	}
	return CollinearOverlap{Start: start, End: end}
}

// Cramer's rule squares the coordinates, so finite input near the float64
// limit can overflow the determinant and give a NaN point even though the
// crossing is representable. In that case the point is recomputed on copies
// scaled down by a power of two, which is exact.
func (c Classifier) crossingPoint(s1, s2 Segment) (Point, bool) {
	point, ok := c.Crossing(s1.Line(), s2.Line())
	if !ok || point.IsFinite() {
		return point, ok
	}
	_, exp := math.Frexp(maxAbs(s1, s2))
	scaled, scaledOk := c.Crossing(s1.scale(-exp).Line(), s2.scale(-exp).Line())
	if !scaledOk {
		return point, ok
	}
	return Point{math.Ldexp(scaled.X, exp), math.Ldexp(scaled.Y, exp)}, true
}

func maxAbs(s1, s2 Segment) float64 {
	m := 0.0
	for _, p := range []Point{s1.Start, s1.End, s2.Start, s2.End} {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return m
}

// Check whether the two segments lie on a single infinite line. Only
// meaningful when the determinant of their lines is zero.
func (c Classifier) sameLine(s1, s2 Segment) bool {
	switch {
	case s1.IsDegenerate() && s2.IsDegenerate():
		// Two points always share some line
		return true
	case s1.IsDegenerate():
		return c.Orient(s2.Start, s2.End, s1.Start) == Collinear
	default:
		return c.Orient(s1.Start, s1.End, s2.Start) == Collinear &&
			c.Orient(s1.Start, s1.End, s2.End) == Collinear
	}
}

// Classify the relationship between segments p1q1 and p2q2. Panics with an
// *InvalidInputError if a coordinate is not finite.
func (c Classifier) Classify(p1, q1, p2, q2 Point) Outcome {
	validatePoints(p1, q1, p2, q2)
	s1 := Segment{p1, q1}
	s2 := Segment{p2, q2}
	point, crosses := c.crossingPoint(s1, s2)

	if !c.SegmentsIntersect(p1, q1, p2, q2) {
		switch {
		case crosses:
			return NoIntersection{}
		case c.sameLine(s1, s2):
			return CollinearDisjoint{}
		default:
			return ParallelNoIntersection{}
		}
	}

	if crosses {
		return PointIntersection{point}
	}
	return c.Overlap(s1, s2)
}

func (c Classifier) ClassifySegments(s1, s2 Segment) Outcome {
	return c.Classify(s1.Start, s1.End, s2.Start, s2.End)
}

func (c Classifier) ClassifyPair(pair Pair) Outcome {
	return c.ClassifySegments(pair.First, pair.Second)
}

// Package level functions use exact comparison.

func Orient(a, b, c Point) Orientation {
	return exact.Orient(a, b, c)
}

func OnSegment(a, b, c Point) bool {
	return exact.OnSegment(a, b, c)
}

func SegmentsIntersect(p1, q1, p2, q2 Point) bool {
	return exact.SegmentsIntersect(p1, q1, p2, q2)
}

func Crossing(l1, l2 Line) (Point, bool) {
	return exact.Crossing(l1, l2)
}

func Overlap(s1, s2 Segment) Outcome {
	return exact.Overlap(s1, s2)
}

func Classify(p1, q1, p2, q2 Point) Outcome {
	return exact.Classify(p1, q1, p2, q2)
}

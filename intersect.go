// Two-segment intersection for the plane.
//
// This package decides whether two line segments meet and classifies how:
// a single crossing point, a collinear overlap (possibly a single shared
// point), collinear but disjoint, parallel, or simply not meeting. All
// arithmetic is float64, and by default every zero test is exact. A
// Classifier with a positive Epsilon trades that for tolerance.
package intersect

import "github.com/osuushi/intersect/internal"

type Point = internal.Point
type Segment = internal.Segment
type Pair = internal.Pair
type Orientation = internal.Orientation
type Classifier = internal.Classifier
type InvalidInputError = internal.InvalidInputError

type Outcome = internal.Outcome
type Kind = internal.Kind
type NoIntersection = internal.NoIntersection
type PointIntersection = internal.PointIntersection
type CollinearOverlap = internal.CollinearOverlap
type CollinearDisjoint = internal.CollinearDisjoint
type ParallelNoIntersection = internal.ParallelNoIntersection

const (
	Collinear        = internal.Collinear
	Clockwise        = internal.Clockwise
	CounterClockwise = internal.CounterClockwise
)

const (
	KindNoIntersection    = internal.KindNoIntersection
	KindPoint             = internal.KindPoint
	KindOverlap           = internal.KindOverlap
	KindCollinearDisjoint = internal.KindCollinearDisjoint
	KindParallel          = internal.KindParallel
)

var ErrNonFinite = internal.ErrNonFinite

func ParseKind(s string) (Kind, bool) {
	return internal.ParseKind(s)
}

// Classify the relationship between segment p1-q1 and segment p2-q2.
//
// The only error is an *InvalidInputError, returned when a coordinate is NaN
// or infinite.
func Classify(p1, q1, p2, q2 Point) (Outcome, error) {
	return ClassifyWithTolerance(0, p1, q1, p2, q2)
}

func ClassifySegments(a, b Segment) (Outcome, error) {
	return Classify(a.Start, a.End, b.Start, b.End)
}

func ClassifyPair(pair Pair, epsilon float64) (Outcome, error) {
	return ClassifyWithTolerance(epsilon, pair.First.Start, pair.First.End, pair.Second.Start, pair.Second.End)
}

// Like Classify, but values within epsilon of zero count as zero. See
// Classifier.
func ClassifyWithTolerance(epsilon float64, p1, q1, p2, q2 Point) (result Outcome, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return Classifier{Epsilon: epsilon}.Classify(p1, q1, p2, q2), nil
}

// Turn direction of three points. Exact.
func Orient(a, b, c Point) Orientation {
	return internal.Orient(a, b, c)
}

// Whether the segments share a point. Exact, and assumes finite input.
func Intersects(p1, q1, p2, q2 Point) bool {
	return internal.SegmentsIntersect(p1, q1, p2, q2)
}

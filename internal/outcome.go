package internal

import "fmt"

// Outcome is the result of classifying a pair of segments. The concrete types
// are enumerated below; switch on the type (or on Kind()) to interpret it.
type Outcome interface {
	Kind() Kind
	String() string

	// Dummy method so that only the types in this file satisfy Outcome.
	outcomeTypeHint()
}

func (NoIntersection) outcomeTypeHint()         {}
func (PointIntersection) outcomeTypeHint()      {}
func (CollinearOverlap) outcomeTypeHint()       {}
func (CollinearDisjoint) outcomeTypeHint()      {}
func (ParallelNoIntersection) outcomeTypeHint() {}

type Kind int

const (
	KindNoIntersection Kind = iota
	KindPoint
	KindOverlap
	KindCollinearDisjoint
	KindParallel
)

var kindNames = map[Kind]string{
	KindNoIntersection:    "none",
	KindPoint:             "point",
	KindOverlap:           "overlap",
	KindCollinearDisjoint: "collinear-disjoint",
	KindParallel:          "parallel",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// Lines cross, but outside of at least one of the segments.
type NoIntersection struct{}

func (NoIntersection) Kind() Kind { return KindNoIntersection }

func (NoIntersection) String() string { return "no intersection" }

// The segments cross at exactly one point. Segments touching at an endpoint
// land here too, as long as they are not collinear.
type PointIntersection struct {
	Point Point
}

func (PointIntersection) Kind() Kind { return KindPoint }

func (o PointIntersection) String() string {
	return fmt.Sprintf("intersection at (%v, %v)", o.Point.X, o.Point.Y)
}

// The segments share a line and a sub-segment. Start is lexicographically
// less than or equal to End. When they are equal, the segments only share a
// single point.
type CollinearOverlap struct {
	Start, End Point
}

func (CollinearOverlap) Kind() Kind { return KindOverlap }

func (o CollinearOverlap) IsPoint() bool {
	return o.Start.Equal(o.End)
}

func (o CollinearOverlap) Segment() Segment {
	return Segment{o.Start, o.End}
}

func (o CollinearOverlap) String() string {
	if o.IsPoint() {
		return fmt.Sprintf("collinear, touching at (%v, %v)", o.Start.X, o.Start.Y)
	}
	return fmt.Sprintf("collinear overlap from (%v, %v) to (%v, %v)",
		o.Start.X, o.Start.Y, o.End.X, o.End.Y)
}

// Same infinite line, but the extents don't meet.
type CollinearDisjoint struct{}

func (CollinearDisjoint) Kind() Kind { return KindCollinearDisjoint }

func (CollinearDisjoint) String() string { return "collinear, no overlap" }

// Distinct parallel lines.
type ParallelNoIntersection struct{}

func (ParallelNoIntersection) Kind() Kind { return KindParallel }

func (ParallelNoIntersection) String() string { return "parallel, no intersection" }

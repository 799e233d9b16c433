package internal

// Points are plain values. Nothing in this package keeps a reference to a
// point after a call returns, so callers are free to reuse them.
type Point struct {
	X float64
	Y float64
}

// A segment has no direction geometrically, but Start and End are kept as
// given. Canonical() gives the lexicographically ordered form.
type Segment struct {
	Start Point
	End   Point
}

// Standard form of the line through a segment: A*x + B*y = C
type Line struct {
	A, B, C float64
}

type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

func (o Orientation) String() string {
	switch o {
	case Collinear:
		return "collinear"
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counterclockwise"
	}
	return "invalid orientation"
}

// Reverse flips the rotational sense. Collinear stays collinear.
func (o Orientation) Reverse() Orientation {
	switch o {
	case Clockwise:
		return CounterClockwise
	case CounterClockwise:
		return Clockwise
	}
	return o
}

// The two segments of one calculation.
type Pair struct {
	First, Second Segment
}

func (p Pair) Points() [4]Point {
	return [4]Point{p.First.Start, p.First.End, p.Second.Start, p.Second.End}
}

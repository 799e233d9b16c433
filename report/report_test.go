package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/intersect"
	"github.com/osuushi/intersect/history"
)

func TestMessage(t *testing.T) {
	cases := []struct {
		outcome  intersect.Outcome
		expected string
	}{
		{intersect.PointIntersection{Point: intersect.Point{X: 2, Y: 2.5}}, "The segments intersect at X: 2 Y: 2.5"},
		{
			intersect.CollinearOverlap{Start: intersect.Point{X: 2, Y: 0}, End: intersect.Point{X: 4, Y: 0}},
			"The segments are collinear and overlap from (2, 0) to (4, 0)",
		},
		{
			intersect.CollinearOverlap{Start: intersect.Point{X: 2, Y: 0}, End: intersect.Point{X: 2, Y: 0}},
			"The segments are collinear and touch at X: 2 Y: 0",
		},
		{intersect.CollinearDisjoint{}, "The segments are collinear but do not overlap"},
		{intersect.ParallelNoIntersection{}, "The segments are parallel and do not intersect"},
		{intersect.NoIntersection{}, "The segments do not intersect"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, Message(tc.outcome))
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	require.NoError(t, p.Outcome(intersect.NoIntersection{}))
	assert.Equal(t, "The segments do not intersect\n", buf.String())

	buf.Reset()
	colored := NewPrinter(&buf, true)
	require.NoError(t, colored.Outcome(intersect.NoIntersection{}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "The segments do not intersect")
}

func TestPrinter_History(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	h := history.New(0)
	require.NoError(t, p.History(h))
	assert.Equal(t, "No calculations yet\n", buf.String())

	pair := intersect.Pair{
		First:  intersect.Segment{Start: intersect.Point{X: 0, Y: 0}, End: intersect.Point{X: 4, Y: 4}},
		Second: intersect.Segment{Start: intersect.Point{X: 0, Y: 4}, End: intersect.Point{X: 4, Y: 0}},
	}
	outcome, err := intersect.ClassifyPair(pair, 0)
	require.NoError(t, err)
	entry := h.Add(pair, outcome)

	buf.Reset()
	require.NoError(t, p.History(h))
	assert.Equal(t, entry.Label+"  (0, 0) - (4, 4) and (0, 4) - (4, 0) -> intersection at (2, 2)\n", buf.String())
}

// Package report renders outcomes as sentences for people, optionally in
// color.
package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/intersect"
	"github.com/osuushi/intersect/history"
)

// Message is the human readable description of an outcome.
func Message(outcome intersect.Outcome) string {
	switch o := outcome.(type) {
	case intersect.PointIntersection:
		return fmt.Sprintf("The segments intersect at X: %v Y: %v", o.Point.X, o.Point.Y)
	case intersect.CollinearOverlap:
		if o.IsPoint() {
			return fmt.Sprintf("The segments are collinear and touch at X: %v Y: %v", o.Start.X, o.Start.Y)
		}
		return fmt.Sprintf("The segments are collinear and overlap from %s to %s",
			formatPoint(o.Start), formatPoint(o.End))
	case intersect.CollinearDisjoint:
		return "The segments are collinear but do not overlap"
	case intersect.ParallelNoIntersection:
		return "The segments are parallel and do not intersect"
	case intersect.NoIntersection:
		return "The segments do not intersect"
	}
	return fmt.Sprintf("Unknown outcome %v", outcome)
}

func formatPoint(p intersect.Point) string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func formatSegment(s intersect.Segment) string {
	return formatPoint(s.Start) + " - " + formatPoint(s.End)
}

// Printer writes messages and history lines to a terminal.
type Printer struct {
	Out   io.Writer
	color aurora.Aurora
}

func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{Out: out, color: aurora.NewAurora(color)}
}

// Color an outcome by how much the segments share: green for any shared
// points, yellow for the collinear and parallel near misses, red for none.
func (p *Printer) colorize(outcome intersect.Outcome, s string) aurora.Value {
	switch outcome.(type) {
	case intersect.PointIntersection, intersect.CollinearOverlap:
		return p.color.Green(s)
	case intersect.CollinearDisjoint, intersect.ParallelNoIntersection:
		return p.color.Yellow(s)
	}
	return p.color.Red(s)
}

func (p *Printer) Outcome(outcome intersect.Outcome) error {
	_, err := fmt.Fprintln(p.Out, p.colorize(outcome, Message(outcome)))
	return err
}

// Entry prints one history line: label, the two segments, and the result.
func (p *Printer) Entry(entry history.Entry) error {
	outcome, err := entry.Outcome()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.Out, "%s  %s and %s -> %s\n",
		p.color.Cyan(entry.Label),
		formatSegment(entry.First),
		formatSegment(entry.Second),
		p.colorize(outcome, outcome.String()),
	)
	return err
}

func (p *Printer) History(h *history.History) error {
	if h.Len() == 0 {
		_, err := fmt.Fprintln(p.Out, p.color.Bold("No calculations yet"))
		return err
	}
	for _, entry := range h.Entries {
		if err := p.Entry(entry); err != nil {
			return err
		}
	}
	return nil
}

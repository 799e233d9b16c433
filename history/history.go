// Package history keeps the list of past calculations, and can persist it as
// YAML.
package history

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/intersect"
)

// Entry is a flat record of one calculation. Point is set for point
// intersections and Overlap for collinear overlaps; both are nil otherwise.
type Entry struct {
	Label   string             `yaml:"label"`
	First   intersect.Segment  `yaml:"first"`
	Second  intersect.Segment  `yaml:"second"`
	Kind    string             `yaml:"kind"`
	Point   *intersect.Point   `yaml:"point,omitempty"`
	Overlap *intersect.Segment `yaml:"overlap,omitempty"`
}

func NewEntry(label string, pair intersect.Pair, outcome intersect.Outcome) Entry {
	entry := Entry{
		Label:  label,
		First:  pair.First,
		Second: pair.Second,
		Kind:   outcome.Kind().String(),
	}
	switch o := outcome.(type) {
	case intersect.PointIntersection:
		p := o.Point
		entry.Point = &p
	case intersect.CollinearOverlap:
		s := o.Segment()
		entry.Overlap = &s
	}
	return entry
}

func (e Entry) Pair() intersect.Pair {
	return intersect.Pair{First: e.First, Second: e.Second}
}

// Outcome rebuilds the outcome the entry was made from.
func (e Entry) Outcome() (intersect.Outcome, error) {
	kind, ok := intersect.ParseKind(e.Kind)
	if !ok {
		return nil, errors.Errorf("entry %q: unknown kind %q", e.Label, e.Kind)
	}
	switch kind {
	case intersect.KindPoint:
		if e.Point == nil {
			return nil, errors.Errorf("entry %q: point intersection without a point", e.Label)
		}
		return intersect.PointIntersection{Point: *e.Point}, nil
	case intersect.KindOverlap:
		if e.Overlap == nil {
			return nil, errors.Errorf("entry %q: overlap without a segment", e.Label)
		}
		return intersect.CollinearOverlap{Start: e.Overlap.Start, End: e.Overlap.End}, nil
	case intersect.KindCollinearDisjoint:
		return intersect.CollinearDisjoint{}, nil
	case intersect.KindParallel:
		return intersect.ParallelNoIntersection{}, nil
	}
	return intersect.NoIntersection{}, nil
}

// A History holds entries oldest first. When Limit is positive, adding past
// the limit drops the oldest entries.
type History struct {
	Limit   int     `yaml:"limit,omitempty"`
	Entries []Entry `yaml:"entries"`

	namer *Namer
}

func New(limit int) *History {
	return &History{Limit: limit, namer: NewNamer()}
}

// Add records a calculation and returns the new entry.
func (h *History) Add(pair intersect.Pair, outcome intersect.Outcome) Entry {
	if h.namer == nil {
		h.namer = NewNamer()
	}
	entry := NewEntry(h.namer.Name(pairKey(pair)), pair, outcome)
	h.Entries = append(h.Entries, entry)
	if h.Limit > 0 && len(h.Entries) > h.Limit {
		h.Entries = h.Entries[len(h.Entries)-h.Limit:]
	}
	return entry
}

func (h *History) Len() int {
	return len(h.Entries)
}

// Last returns the most recent entry, if any.
func (h *History) Last() (Entry, bool) {
	if len(h.Entries) == 0 {
		return Entry{}, false
	}
	return h.Entries[len(h.Entries)-1], true
}

func (h *History) Clear() {
	h.Entries = nil
}

func (h *History) Save(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(h); err != nil {
		return errors.Wrap(err, "encoding history")
	}
	return errors.Wrap(encoder.Close(), "encoding history")
}

// Load reads a history written by Save. Labels of the loaded entries are kept,
// so pairs calculated again keep their old label.
func Load(r io.Reader) (*History, error) {
	h := New(0)
	if err := yaml.NewDecoder(r).Decode(h); err != nil {
		if err == io.EOF { // Empty document
			return h, nil
		}
		return nil, errors.Wrap(err, "decoding history")
	}
	for _, entry := range h.Entries {
		if _, err := entry.Outcome(); err != nil {
			return nil, err
		}
		h.namer.remember(pairKey(entry.Pair()), entry.Label)
	}
	if h.Limit > 0 && len(h.Entries) > h.Limit {
		h.Entries = h.Entries[len(h.Entries)-h.Limit:]
	}
	return h, nil
}

// LoadFile is Load for a path. A missing file is an empty history.
func LoadFile(path string) (*History, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return New(0), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "opening history")
	}
	defer f.Close()
	return Load(f)
}

func (h *History) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating history")
	}
	if err := h.Save(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing history")
}

func pairKey(pair intersect.Pair) string {
	return fmt.Sprintf("%v", pair.Points())
}

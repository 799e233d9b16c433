package input

import (
	"io"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/intersect"
)

// This is not a full svg reader. It parses the document, finds the first two
// <line> elements anywhere in it, and uses their x1/y1/x2/y2 attributes as
// the two segments. Transforms and units are ignored.

// ReadSVG reads a pair from an SVG document.
func ReadSVG(r io.Reader) (intersect.Pair, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return intersect.Pair{}, errors.Wrap(err, "parsing svg")
	}

	lines := root.FindAll("line")
	if len(lines) < 2 {
		return intersect.Pair{}, errors.Errorf("svg has %d <line> elements, need 2", len(lines))
	}

	var fields []string
	for _, line := range lines[:2] {
		for _, attr := range []string{"x1", "y1", "x2", "y2"} {
			fields = append(fields, line.Attributes[attr])
		}
	}

	pair, err := ParseFields(fields)
	if err != nil {
		return intersect.Pair{}, errors.Wrap(err, "svg line attributes")
	}
	return pair, nil
}

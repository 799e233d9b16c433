package input

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/intersect"
)

// ReadPairs reads newline separated points in the form "x y". Every four
// points make a pair (first segment, then second). Pairs may be separated by
// blank lines, and lines starting with '#' are ignored.
//
// A blank line in the middle of a pair, or a trailing partial pair, is an
// error.
func ReadPairs(r io.Reader) ([]intersect.Pair, error) {
	var pairs []intersect.Pair
	var fields []string
	lineNumber := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		if line == "" {
			if len(fields) > 0 {
				return nil, errors.Errorf("line %d: pair ended after %d of 4 points", lineNumber, len(fields)/2)
			}
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			return nil, errors.Errorf("line %d: expected \"x y\", got %q", lineNumber, line)
		}
		fields = append(fields, parts...)

		if len(fields) == len(FieldNames) {
			pair, err := ParseFields(fields)
			if err != nil {
				return nil, errors.Wrapf(err, "pair ending on line %d", lineNumber)
			}
			pairs = append(pairs, pair)
			fields = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing partial pair if any
	if len(fields) > 0 {
		return nil, errors.Errorf("input ended after %d of 4 points", len(fields)/2)
	}
	return pairs, nil
}

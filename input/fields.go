// Package input turns untrusted text into validated segment pairs. Nothing
// reaches the geometry with an empty, non-numeric or non-finite coordinate.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/intersect"
)

var (
	ErrEmptyField = errors.New("value is empty")
	ErrNotNumeric = errors.New("value is not a number")
	ErrNotFinite  = errors.New("value is not finite")
)

// Names of the eight coordinates of a pair, in input order.
var FieldNames = [8]string{"x1", "y1", "x2", "y2", "x3", "y3", "x4", "y4"}

// FieldError names the coordinate that failed to parse. Cause() is one of the
// Err* values above.
type FieldError struct {
	Field string
	Value string
	cause error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.cause)
	}
	return fmt.Sprintf("%s: %q: %v", e.Field, e.Value, e.cause)
}

func (e *FieldError) Cause() error  { return e.cause }
func (e *FieldError) Unwrap() error { return e.cause }

func ParseCoordinate(name, raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &FieldError{Field: name, cause: ErrEmptyField}
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		// ParseFloat reports out of range values as ±Inf with ErrRange
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, &FieldError{Field: name, Value: trimmed, cause: ErrNotFinite}
		}
		return 0, &FieldError{Field: name, Value: trimmed, cause: ErrNotNumeric}
	}
	// "NaN" and "Inf" parse fine, but the geometry can't take them
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Field: name, Value: trimmed, cause: ErrNotFinite}
	}
	return v, nil
}

func ParsePoint(xName, yName, x, y string) (intersect.Point, error) {
	px, err := ParseCoordinate(xName, x)
	if err != nil {
		return intersect.Point{}, err
	}
	py, err := ParseCoordinate(yName, y)
	if err != nil {
		return intersect.Point{}, err
	}
	return intersect.Point{X: px, Y: py}, nil
}

// ParseFields reads a pair from exactly eight fields in FieldNames order.
// Every field is checked for emptiness before any is parsed, so a form with
// blanks is reported as such instead of failing on the first bad number.
func ParseFields(fields []string) (intersect.Pair, error) {
	if len(fields) != len(FieldNames) {
		return intersect.Pair{}, errors.Errorf("expected %d coordinates, got %d", len(FieldNames), len(fields))
	}
	var missing []string
	for i, field := range fields {
		if strings.TrimSpace(field) == "" {
			missing = append(missing, FieldNames[i])
		}
	}
	if len(missing) > 0 {
		return intersect.Pair{}, &FieldError{Field: strings.Join(missing, ", "), cause: ErrEmptyField}
	}

	var points [4]intersect.Point
	for i := range points {
		p, err := ParsePoint(FieldNames[2*i], FieldNames[2*i+1], fields[2*i], fields[2*i+1])
		if err != nil {
			return intersect.Pair{}, err
		}
		points[i] = p
	}
	return intersect.Pair{
		First:  intersect.Segment{Start: points[0], End: points[1]},
		Second: intersect.Segment{Start: points[2], End: points[3]},
	}, nil
}

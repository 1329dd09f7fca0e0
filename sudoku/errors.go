package sudoku

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Validation failure kinds. Every error returned by this package wraps one
// of these sentinels, so callers can dispatch with errors.Is.
var (
	ErrSizeMismatch  = errors.New("wrong number of values")
	ErrMissingDigits = errors.New("missing digits")
)

// ValidationError describes why a group or board was rejected. Kind tags the
// failure, Label names the failed group ("line0", "column3", "sudoku12", or
// "external" for the outer board check) and is empty when the caller gave
// none. Actual is set for size mismatches, Missing for missing-digit
// failures.
type ValidationError struct {
	Kind    error
	Label   string
	Actual  int
	Missing []int
}

func (e *ValidationError) Error() string {
	msg := e.Kind.Error()
	switch e.Kind {
	case ErrSizeMismatch:
		msg = fmt.Sprintf("%s: got %d, want %d", msg, e.Actual, GroupSize)
	case ErrMissingDigits:
		msg = fmt.Sprintf("%s: %s", msg, joinDigits(e.Missing))
	}
	if e.Label == "" {
		return msg
	}
	return e.Label + ": " + msg
}

func (e *ValidationError) Unwrap() error { return e.Kind }

func joinDigits(digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ")
}

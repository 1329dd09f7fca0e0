package gridservice

import (
	"context"
	"errors"

	"github.com/nestorgt/sudoku-validator/sudoku"
)

// GridService represent the grid validation service.
type GridService interface {
	// ValidateBoard checks a full 9x9 board.
	ValidateBoard(ctx context.Context, req *ValidateBoardRequest) (*ValidateResponse, error)
	// ValidateGroup checks a single group of nine cells.
	ValidateGroup(ctx context.Context, req *ValidateGroupRequest) (*ValidateResponse, error)
}

type ValidateBoardRequest struct {
	Board [][]int `json:"board"` // the 9*9 board
}

type ValidateGroupRequest struct {
	Numbers []int  `json:"numbers"`
	Label   string `json:"label,omitempty"`
}

// ValidateResponse reports the outcome of a validation. An invalid grid is a
// successful response: Valid is false and Error holds the first failure.
type ValidateResponse struct {
	Valid bool        `json:"valid"`
	Error *GroupError `json:"error,omitempty"`
}

// Failure kinds carried on the wire.
const (
	KindSizeMismatch  = "size_mismatch"
	KindMissingDigits = "missing_digits"
)

// GroupError is the wire form of a sudoku.ValidationError.
type GroupError struct {
	Kind    string `json:"kind"`
	Label   string `json:"label,omitempty"`
	Actual  int    `json:"actual,omitempty"`
	Missing []int  `json:"missing,omitempty"`
	Message string `json:"message"`
}

// Err converts the wire form back to a *sudoku.ValidationError, so remote
// failures unwrap the same way local ones do. Unknown kinds degrade to a
// plain error carrying the server message.
func (e *GroupError) Err() error {
	if e == nil {
		return nil
	}

	verr := &sudoku.ValidationError{Label: e.Label, Actual: e.Actual, Missing: e.Missing}
	switch e.Kind {
	case KindSizeMismatch:
		verr.Kind = sudoku.ErrSizeMismatch
	case KindMissingDigits:
		verr.Kind = sudoku.ErrMissingDigits
	default:
		return errors.New(e.Message)
	}
	return verr
}

// NewGroupError converts a validation error to its wire form. It returns nil
// when err is nil or not a *sudoku.ValidationError.
func NewGroupError(err error) *GroupError {
	var verr *sudoku.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}

	ge := &GroupError{
		Label:   verr.Label,
		Message: verr.Error(),
	}
	switch {
	case errors.Is(err, sudoku.ErrSizeMismatch):
		ge.Kind = KindSizeMismatch
		ge.Actual = verr.Actual
	case errors.Is(err, sudoku.ErrMissingDigits):
		ge.Kind = KindMissingDigits
		ge.Missing = verr.Missing
	}
	return ge
}

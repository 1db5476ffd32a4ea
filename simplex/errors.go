package simplex

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by *ValidationError. Match them with errors.Is.
var (
	// ErrEmptyObjective is returned when the model declares no variables.
	ErrEmptyObjective = errors.New("simplex: empty objective")

	// ErrRowLength is returned when a constraint row length differs from the
	// number of variables.
	ErrRowLength = errors.New("simplex: row length mismatch")

	// ErrInvertedBounds is returned when a variable's lower bound exceeds its
	// upper bound.
	ErrInvertedBounds = errors.New("simplex: lower bound exceeds upper bound")

	// ErrNonFinite is returned for NaN or infinite coefficients and for
	// bounds pointing the wrong way (lower = +∞ or upper = -∞).
	ErrNonFinite = errors.New("simplex: NaN or Inf encountered")

	// ErrBoundsLength is returned when Bounds is non-empty but not one per variable.
	ErrBoundsLength = errors.New("simplex: bounds length mismatch")

	// ErrNamesLength is returned when VarNames is non-empty but not one per variable.
	ErrNamesLength = errors.New("simplex: variable names length mismatch")
)

// Error represents a solver error with context about which operation failed.
type Error struct {
	Op  string // Operation that failed (e.g., "Solve", "WithTolerance")
	Msg string // Additional context
}

func (e *Error) Error() string {
	return fmt.Sprintf("simplex: %s failed: %s", e.Op, e.Msg)
}

// newErrorMsg creates a new Error with an additional message.
func newErrorMsg(op, msg string) error {
	return &Error{Op: op, Msg: msg}
}

// ValidationError reports malformed input detected before any solving
// begins. It unwraps to one of the package sentinel errors.
type ValidationError struct {
	Field string // Model field holding the bad value
	Index int    // Row or variable index, -1 when not applicable
	Msg   string
	err   error
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s: %s[%d]: %s", e.err, e.Field, e.Index, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.err, e.Field, e.Msg)
}

// Unwrap returns the sentinel error describing the failure class.
func (e *ValidationError) Unwrap() error {
	return e.err
}

func newValidationError(sentinel error, field string, index int, msg string) error {
	return &ValidationError{Field: field, Index: index, Msg: msg, err: sentinel}
}

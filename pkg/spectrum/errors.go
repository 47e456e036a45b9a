package spectrum

import "fmt"

// InvalidInputError reports a degenerate sequence passed to a transform
// operation. The parser never produces such sequences, so this is a
// programming error on the caller's side, not a recoverable file condition.
type InvalidInputError struct {
	Op     string `json:"op"`
	Reason string `json:"reason"`
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: invalid input: %s", e.Op, e.Reason)
}

// NewInvalidInputError creates a new invalid input error for operation op.
func NewInvalidInputError(op, reason string) *InvalidInputError {
	return &InvalidInputError{Op: op, Reason: reason}
}

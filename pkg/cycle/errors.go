package cycle

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("cycle: invalid input")

// InvalidInputError reports an input that is non-numeric or outside the
// physical domain of the cycle. It is the only error Solve and ParseForm return.
type InvalidInputError struct {
	// Field names the offending input (for example "rp" or "tmax").
	Field string

	// Reason is a short human-readable explanation.
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, a ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, a...)}
}

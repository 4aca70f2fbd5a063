package retry

import (
	"errors"
	"fmt"
)

// ErrExhausted matches any ExhaustedError via errors.Is.
var ErrExhausted = errors.New("verily: retries exhausted")

// ExhaustedError is the terminal failure when verification never confirmed
// within the attempt budget, across all attempts. It carries the action
// label and the attempt count; the per-attempt timeouts that triggered it
// are not errors themselves and are not wrapped here.
type ExhaustedError struct {
	Name     string
	Attempts int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("verily: action %q not confirmed after %d attempts", e.Name, e.Attempts)
}

func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}

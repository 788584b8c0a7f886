package pendulum

import (
	"errors"
	"fmt"
)

// Domain errors for simulation requests.
var (
	// ErrInvalidParams indicates a parameter value outside its valid range.
	ErrInvalidParams = errors.New("pendulum: invalid parameters")

	// ErrUnknownKind indicates a model name or enum value that does not resolve.
	ErrUnknownKind = errors.New("pendulum: unknown model kind")

	// ErrUnstable indicates the integration produced NaN or Inf values.
	ErrUnstable = errors.New("pendulum: simulation unstable (state diverged)")
)

// InstabilityError locates the first non-finite sample of a run.
// It wraps [ErrUnstable].
type InstabilityError struct {
	Step int
	Time float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, ErrUnstable)
}

func (e *InstabilityError) Unwrap() error {
	return ErrUnstable
}

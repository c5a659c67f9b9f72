package internal

import (
	"errors"
	"fmt"
)

// InfrastructureError is a failure of the SDL layer itself (window, renderer,
// fonts). These are not something a screen can recover from.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "create_window", "open_font")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("marquee: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("marquee: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfraError creates a new infrastructure error.
func NewInfraError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfraError checks if an error is an infrastructure error.
func IsInfraError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

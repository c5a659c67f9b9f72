package marquee

import (
	"errors"

	"github.com/BrandonKowalski/marquee/pkg/marquee/internal"
)

// ErrCancelled indicates the user closed the window. It is normal flow
// control, not a failure.
var ErrCancelled = errors.New("operation cancelled by user")

// InfrastructureError is a failure of the SDL layer (window, renderer, font)
// that no screen can recover from.
type InfrastructureError = internal.InfrastructureError

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return internal.NewInfraError(op, err)
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	return internal.IsInfraError(err)
}

// IsCancelled checks if an error indicates user cancellation.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for collision resolution.
var (
	// ErrDegenerateGeometry indicates the contact points could not be computed
	// (coincident or contained circles produce NaN coordinates).
	ErrDegenerateGeometry = errors.New("dynamo: degenerate geometry (NaN contact points)")

	// ErrZeroMass indicates both bodies have zero area, so no mass proxy exists.
	ErrZeroMass = errors.New("dynamo: zero total mass")

	// ErrNonFinite indicates the resolved velocities contain NaN or Inf.
	ErrNonFinite = errors.New("dynamo: non-finite velocity (NaN or Inf detected)")
)

// ResolutionError wraps an error with the stage of resolution that produced it.
type ResolutionError struct {
	Stage   string
	Before  [2]Velocity
	Wrapped error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage, e.Wrapped.Error())
}

func (e *ResolutionError) Unwrap() error {
	return e.Wrapped
}

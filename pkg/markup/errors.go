package markup

import (
	"errors"
	"fmt"
)

// ErrCapability is wrapped by every *CapabilityError.
var ErrCapability = errors.New("capability violation")

// ErrNilNode is returned when a nil node is placed where content is required.
var ErrNilNode = errors.New("nil node")

// CapabilityError reports a node placed in a context requiring a capability it lacks.
type CapabilityError struct {
	Expected Capability
	Actual   Capability
	Node     string // dynamic type of the offending node
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s requires %s, got %s", ErrCapability, e.Node, e.Expected, e.Actual)
}

// Unwrap allows errors.Is(err, ErrCapability).
func (e *CapabilityError) Unwrap() error {
	return ErrCapability
}

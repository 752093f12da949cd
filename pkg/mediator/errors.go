package mediator

import (
	"errors"
	"fmt"
)

var (
	ErrNoHandlerRegistered      = errors.New("no handler registered")
	ErrDuplicateSingleHandler   = errors.New("single-result message already has a handler")
	ErrHandlerInvocationFailure = errors.New("handler invocation failed")
	ErrInvalidHandler           = errors.New("invalid handler descriptor")
	ErrObjectNotComparable      = errors.New("object is not comparable")
	ErrMediatorClosed           = errors.New("mediator closed")
)

// Panic is returned inside ErrHandlerInvocationFailure when a handler panics.
type Panic struct {
	Message    any
	Stacktrace []byte
}

func (p *Panic) Error() string {
	return fmt.Sprintf("handler panic: %v", p.Message)
}

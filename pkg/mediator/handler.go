package mediator

import (
	"context"
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

type Kind int

const (
	KindMulticast Kind = iota
	KindSingleResult
)

func (k Kind) String() string {
	switch k {
	case KindMulticast:
		return "multicast"
	case KindSingleResult:
		return "single"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

type (
	multicastInvoker func(ctx context.Context, msg any) error
	singleInvoker    func(ctx context.Context, msg any) (any, error)
)

// Descriptor describes one handler method of an object before it is bound to the mediator.
// Build it with OnMulticast or OnSingle.
type Descriptor struct {
	kind        Kind
	messageType MessageType
	resultType  reflect.Type
	multicast   multicastInvoker
	single      singleInvoker
}

func (d Descriptor) Kind() Kind {
	return d.kind
}

func (d Descriptor) MessageType() MessageType {
	return d.messageType
}

// ResultType is nil for multicast handlers.
func (d Descriptor) ResultType() reflect.Type {
	return d.resultType
}

func (d Descriptor) valid() bool {
	switch d.kind {
	case KindMulticast:
		return d.messageType != nil && d.multicast != nil
	case KindSingleResult:
		return d.messageType != nil && d.resultType != nil && d.single != nil
	default:
		return false
	}
}

func OnMulticast[T MulticastMessage](handler func(ctx context.Context, msg T) error) Descriptor {
	return Descriptor{
		kind:        KindMulticast,
		messageType: reflect.TypeFor[T](),
		multicast: func(ctx context.Context, msg any) error {
			concreteMsg, ok := msg.(T)
			if !ok {
				return fmt.Errorf("invalid message %T passed to handler of %v", msg, reflect.TypeFor[T]())
			}
			return handler(ctx, concreteMsg)
		},
	}
}

func OnSingle[T SingleMessage[R], R any](handler func(ctx context.Context, msg T) (R, error)) Descriptor {
	return Descriptor{
		kind:        KindSingleResult,
		messageType: reflect.TypeFor[T](),
		resultType:  reflect.TypeFor[R](),
		single: func(ctx context.Context, msg any) (any, error) {
			concreteMsg, ok := msg.(T)
			if !ok {
				return nil, fmt.Errorf("invalid message %T passed to handler of %v", msg, reflect.TypeFor[T]())
			}
			return handler(ctx, concreteMsg)
		},
	}
}

// handler is a Descriptor bound to its owning object.
type handler struct {
	Descriptor
	id    uuid.UUID
	owner any
}

func newHandler(owner any, d Descriptor) *handler {
	return &handler{
		Descriptor: d,
		id:         uuid.New(),
		owner:      owner,
	}
}

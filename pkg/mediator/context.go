package mediator

import (
	"context"
)

type contextKey int

const mediatorContextKey contextKey = iota

func WithMediator(ctx context.Context, m *Mediator) context.Context {
	return context.WithValue(ctx, mediatorContextKey, m)
}

func FromContext(ctx context.Context) (*Mediator, bool) {
	m, ok := ctx.Value(mediatorContextKey).(*Mediator)
	return m, ok && m != nil
}

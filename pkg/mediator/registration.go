package mediator

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Registration is returned by Register. Closing it removes the handlers cached by that Register call,
// the object is deactivated once it has no handlers left.
//
//	reg, err := m.Register(ctx, counter)
//	if err != nil {
//		return err
//	}
//	defer reg.Close()
type Registration struct {
	mediator   *Mediator
	object     any
	activation *activation
	handlerIDs []uuid.UUID
	once       *sync.Once
}

func (r *Registration) Object() any {
	return r.object
}

// HandlersCount is the number of handlers cached by the Register call.
func (r *Registration) HandlersCount() int {
	return len(r.handlerIDs)
}

// Close is idempotent and never fails, it returns error to satisfy io.Closer.
// Handlers already removed by deactivation are skipped.
func (r *Registration) Close() error {
	if r.mediator == nil {
		return nil
	}

	r.once.Do(func() {
		r.mediator.release(context.Background(), r.object, r.activation, r.handlerIDs)
	})
	return nil
}

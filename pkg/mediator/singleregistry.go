package mediator

import (
	"fmt"

	"github.com/google/uuid"
)

// singleRegistry holds at most one handler per single-result message type.
// A second registration for an occupied type is rejected, the first handler stays.
// It is not safe for concurrent use, Mediator guards it.
type singleRegistry struct {
	handlers map[MessageType]*handler
}

func newSingleRegistry() *singleRegistry {
	return &singleRegistry{
		handlers: make(map[MessageType]*handler),
	}
}

func (r *singleRegistry) register(h *handler) error {
	if current, ok := r.handlers[h.messageType]; ok {
		return fmt.Errorf(
			"%w: %v already handled by %T, rejected handler of %T",
			ErrDuplicateSingleHandler,
			typeName(h.messageType),
			current.owner,
			h.owner,
		)
	}

	r.handlers[h.messageType] = h
	return nil
}

func (r *singleRegistry) lookup(messageType MessageType) (*handler, bool) {
	h, ok := r.handlers[messageType]
	return h, ok
}

// remove deletes the handler only while it is the one registered for the type,
// so a stale remover never drops a handler registered later.
func (r *singleRegistry) remove(messageType MessageType, id uuid.UUID) bool {
	h, ok := r.handlers[messageType]
	if !ok || h.id != id {
		return false
	}

	delete(r.handlers, messageType)
	return true
}

func (r *singleRegistry) len() int {
	return len(r.handlers)
}

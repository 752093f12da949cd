package mediator

import (
	"slices"

	"github.com/google/uuid"
)

// multicastRegistry keeps handlers of multicast messages in registration order.
// It is not safe for concurrent use, Mediator guards it.
type multicastRegistry struct {
	handlers map[MessageType][]*handler
}

func newMulticastRegistry() *multicastRegistry {
	return &multicastRegistry{
		handlers: make(map[MessageType][]*handler),
	}
}

func (r *multicastRegistry) register(h *handler) {
	r.handlers[h.messageType] = append(r.handlers[h.messageType], h)
}

// snapshot returns a copy, so handlers may add or remove registrations while it is iterated.
func (r *multicastRegistry) snapshot(messageType MessageType) []*handler {
	return slices.Clone(r.handlers[messageType])
}

func (r *multicastRegistry) remove(messageType MessageType, id uuid.UUID) bool {
	handlers := r.handlers[messageType]
	i := slices.IndexFunc(handlers, func(h *handler) bool { return h.id == id })
	if i < 0 {
		return false
	}

	handlers = slices.Delete(handlers, i, i+1)
	if len(handlers) == 0 {
		delete(r.handlers, messageType)
		return true
	}
	r.handlers[messageType] = handlers
	return true
}

func (r *multicastRegistry) len() int {
	count := 0
	for _, handlers := range r.handlers {
		count += len(handlers)
	}
	return count
}

package mediator

import (
	"github.com/google/uuid"
)

// remover deletes one handler from one registry, it reports false when the handler was already gone.
type remover func() bool

// activation lives from the first cached handler of an object until the object has no handlers left.
// stop ends the lifecycle observation of the activation.
type activation struct {
	removers map[uuid.UUID]remover
	stop     func()
}

// activeObjects tracks removers of every object that owns registered handlers.
// It is not safe for concurrent use, Mediator guards it.
type activeObjects struct {
	activations map[any]*activation
}

func newActiveObjects() *activeObjects {
	return &activeObjects{
		activations: make(map[any]*activation),
	}
}

func (a *activeObjects) contains(obj any) bool {
	_, ok := a.activations[obj]
	return ok
}

// current returns the activation of the object, nil when the object is not active.
func (a *activeObjects) current(obj any) *activation {
	return a.activations[obj]
}

func (a *activeObjects) addActiveObject(obj any, handlerID uuid.UUID, r remover) *activation {
	act, ok := a.activations[obj]
	if !ok {
		act = &activation{
			removers: make(map[uuid.UUID]remover),
			stop:     func() {},
		}
		a.activations[obj] = act
	}
	act.removers[handlerID] = r
	return act
}

// setStop binds stop to the activation. It reports false when the activation is already over.
func (a *activeObjects) setStop(obj any, act *activation, stop func()) bool {
	if a.activations[obj] != act {
		return false
	}
	act.stop = stop
	return true
}

// triggerRemovalFor runs removers of the object once and forgets it.
// It returns the number of handlers actually removed and the stop of the finished activation.
// Unknown objects are ignored, stop is nil then.
func (a *activeObjects) triggerRemovalFor(obj any) (int, func()) {
	act, ok := a.activations[obj]
	if !ok {
		return 0, nil
	}
	delete(a.activations, obj)

	removed := 0
	for _, r := range act.removers {
		if r() {
			removed++
		}
	}
	return removed, act.stop
}

// release runs removers of the given handlers while act is the current activation of the object.
// The object is forgotten when no handlers are left, the stop of the activation is returned then.
func (a *activeObjects) release(obj any, act *activation, handlerIDs []uuid.UUID) (int, func()) {
	if act == nil || a.activations[obj] != act {
		return 0, nil
	}

	removed := 0
	for _, id := range handlerIDs {
		r, ok := act.removers[id]
		if !ok {
			continue
		}
		delete(act.removers, id)
		if r() {
			removed++
		}
	}
	if len(act.removers) > 0 {
		return removed, nil
	}

	delete(a.activations, obj)
	return removed, act.stop
}

func (a *activeObjects) objects() []any {
	result := make([]any, 0, len(a.activations))
	for obj := range a.activations {
		result = append(result, obj)
	}
	return result
}

func (a *activeObjects) len() int {
	return len(a.activations)
}

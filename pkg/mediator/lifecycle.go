//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "LifecycleNotifier=LifecycleNotifier"
package mediator

import (
	"sync"
)

// LifecycleNotifier observes the end of an object's lifetime.
// Mediator calls Observe once per activation, when the object gets its first handler,
// and expects deactivate to be called when the object is gone.
// Mediator calls stop when the activation ends by other means, stop must be idempotent.
type LifecycleNotifier interface {
	Observe(obj any, deactivate func()) (stop func())
	Close()
}

// Lifecycle is implemented by objects that signal the end of their lifetime by closing the channel.
type Lifecycle interface {
	Done() <-chan struct{}
}

type nopNotifier struct{}

func NewNopNotifier() LifecycleNotifier {
	return nopNotifier{}
}

func (nopNotifier) Observe(any, func()) func() {
	return func() {}
}

func (nopNotifier) Close() {}

type doneNotifier struct {
	mutex    sync.Mutex
	closed   bool
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

// NewDoneNotifier watches objects implementing Lifecycle, other objects are ignored.
// Close stops the watchers and waits for them.
func NewDoneNotifier() LifecycleNotifier {
	return &doneNotifier{
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (n *doneNotifier) Observe(obj any, deactivate func()) func() {
	lifecycle, ok := obj.(Lifecycle)
	if !ok {
		return func() {}
	}

	n.mutex.Lock()
	defer n.mutex.Unlock()
	if n.closed {
		return func() {}
	}

	done := lifecycle.Done()
	stopChan := make(chan struct{})
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		select {
		case <-done:
			deactivate()
		case <-stopChan:
		case <-n.stopChan:
		}
	}()

	once := &sync.Once{}
	return func() {
		once.Do(func() {
			close(stopChan)
		})
	}
}

func (n *doneNotifier) Close() {
	n.mutex.Lock()
	if !n.closed {
		n.closed = true
		close(n.stopChan)
	}
	n.mutex.Unlock()

	n.wg.Wait()
}

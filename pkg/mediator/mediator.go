package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/klwxsrx/go-mediator/pkg/log"
	"github.com/klwxsrx/go-mediator/pkg/metric"
	pkgstrings "github.com/klwxsrx/go-mediator/pkg/strings"
)

type Option func(*Mediator)

// Mediator routes multicast messages to every registered handler and single-result messages
// to the only registered handler. Handlers are removed when their owning object is deactivated.
//
// Registry mutations, lookups and snapshots are serialized by one mutex.
// Handlers are called outside of it, so they may publish, send, register and deactivate.
type Mediator struct {
	mutex     sync.Mutex
	closed    bool
	multicast *multicastRegistry
	single    *singleRegistry
	active    *activeObjects

	extractor HandlerExtractor
	notifier  LifecycleNotifier
	logger    log.Logger
	metrics   metric.Metrics
}

func WithLogger(logger log.Logger) Option {
	return func(m *Mediator) {
		m.logger = logger
	}
}

func WithMetrics(metrics metric.Metrics) Option {
	return func(m *Mediator) {
		m.metrics = metrics
	}
}

func WithExtractor(extractor HandlerExtractor) Option {
	return func(m *Mediator) {
		m.extractor = extractor
	}
}

// WithLifecycleNotifier replaces the default notifier, Mediator closes it on Close.
func WithLifecycleNotifier(notifier LifecycleNotifier) Option {
	return func(m *Mediator) {
		m.notifier = notifier
	}
}

func New(opts ...Option) *Mediator {
	m := &Mediator{
		multicast: newMulticastRegistry(),
		single:    newSingleRegistry(),
		active:    newActiveObjects(),
		extractor: NewCapabilityExtractor(),
		notifier:  NewDoneNotifier(),
		logger:    log.NewStub(),
		metrics:   metric.NewMetricsStub(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Register caches every handler the extractor finds on obj.
// Registration is atomic: when any handler is rejected nothing is registered.
// An object without handlers is not an error, the returned Registration is empty then.
func (m *Mediator) Register(ctx context.Context, obj any) (*Registration, error) {
	descriptors := m.extractor.Extract(obj)
	if len(descriptors) == 0 {
		return &Registration{}, nil
	}

	logger := m.logger.WithField("objectType", fmt.Sprintf("%T", obj))
	if !isComparable(obj) {
		return nil, fmt.Errorf("%w: %T", ErrObjectNotComparable, obj)
	}

	handlers := make([]*handler, 0, len(descriptors))
	for _, d := range descriptors {
		if !d.valid() {
			return nil, fmt.Errorf("%w: object %T", ErrInvalidHandler, obj)
		}
		handlers = append(handlers, newHandler(obj, d))
	}

	m.mutex.Lock()
	if m.closed {
		m.mutex.Unlock()
		return nil, ErrMediatorClosed
	}

	err := m.checkSingleHandlers(handlers)
	if err != nil {
		m.mutex.Unlock()
		logger.WithError(err).Warn(ctx, "object registration rejected")
		m.metrics.Increment("mediator_rejected_registrations_total")
		return nil, err
	}

	observe := !m.active.contains(obj)
	var act *activation
	handlerIDs := make([]uuid.UUID, 0, len(handlers))
	for _, h := range handlers {
		act = m.cacheHandler(h)
		handlerIDs = append(handlerIDs, h.id)
	}
	m.reportState()
	m.mutex.Unlock()

	if observe {
		m.observe(obj, act)
	}

	logger.WithField("handlersCount", len(handlers)).Debug(ctx, "object registered")
	return &Registration{
		mediator:   m,
		object:     obj,
		activation: act,
		handlerIDs: handlerIDs,
		once:       &sync.Once{},
	}, nil
}

// observe attaches the notifier to a new activation.
// The watcher is stopped at once when the activation ended before it was bound.
func (m *Mediator) observe(obj any, act *activation) {
	stop := m.notifier.Observe(obj, func() {
		m.deactivate(context.Background(), obj, act)
	})
	if stop == nil {
		return
	}

	m.mutex.Lock()
	bound := m.active.setStop(obj, act, stop)
	m.mutex.Unlock()
	if !bound {
		stop()
	}
}

// Scan registers every object and reports all failures together.
func (m *Mediator) Scan(ctx context.Context, objs ...any) error {
	var result *multierror.Error
	for _, obj := range objs {
		_, err := m.Register(ctx, obj)
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Publish calls every handler registered for the message type in registration order.
// Handlers are taken from a snapshot made before the first call, a failing or panicking handler
// does not stop the rest. All failures are returned together.
func (m *Mediator) Publish(ctx context.Context, msg MulticastMessage) error {
	messageType := messageTypeOf(msg)

	m.mutex.Lock()
	handlers := m.multicast.snapshot(messageType)
	m.mutex.Unlock()

	m.metrics.WithLabel("message", metricName(messageType)).Increment("mediator_publish_total")

	var result *multierror.Error
	for _, h := range handlers {
		_, err := m.invoke(ctx, h, msg)
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Send calls the only handler registered for the message type and returns its result.
// It fails with ErrNoHandlerRegistered when there is no handler.
func Send[R any](ctx context.Context, m *Mediator, msg SingleMessage[R]) (R, error) {
	var blank R
	result, err := m.send(ctx, msg)
	if err != nil || result == nil {
		return blank, err
	}

	typedResult, ok := result.(R)
	if !ok {
		return blank, fmt.Errorf("%w: unexpected result %T of %T", ErrHandlerInvocationFailure, result, msg)
	}
	return typedResult, nil
}

func (m *Mediator) send(ctx context.Context, msg any) (any, error) {
	messageType := messageTypeOf(msg)
	metrics := m.metrics.WithLabel("message", metricName(messageType))

	m.mutex.Lock()
	h, ok := m.single.lookup(messageType)
	m.mutex.Unlock()
	if !ok {
		metrics.Increment("mediator_send_unhandled_total")
		return nil, fmt.Errorf("%w: %v", ErrNoHandlerRegistered, typeName(messageType))
	}

	started := time.Now()
	result, err := m.invoke(ctx, h, msg)
	metrics.Duration("mediator_send_duration_seconds", time.Since(started))
	return result, err
}

// Deactivate removes every handler of the object. Unknown objects are ignored,
// so the host may report the same object more than once.
func (m *Mediator) Deactivate(ctx context.Context, obj any) {
	if !isComparable(obj) {
		return
	}
	m.deactivate(ctx, obj, nil)
}

// deactivate ends the current activation of the object.
// A non-nil act restricts it to that activation, so a stale watcher never removes newer handlers.
func (m *Mediator) deactivate(ctx context.Context, obj any, act *activation) {
	m.mutex.Lock()
	current := m.active.current(obj)
	if current == nil || (act != nil && current != act) {
		m.mutex.Unlock()
		return
	}
	removed, stop := m.active.triggerRemovalFor(obj)
	m.reportState()
	m.mutex.Unlock()

	stop()
	m.logger.WithField("objectType", fmt.Sprintf("%T", obj)).
		WithField("handlersCount", removed).
		Debug(ctx, "object deactivated")
}

// release removes handlers cached by one Register call.
// The object is deactivated when it has no handlers left.
func (m *Mediator) release(ctx context.Context, obj any, act *activation, handlerIDs []uuid.UUID) {
	m.mutex.Lock()
	removed, stop := m.active.release(obj, act, handlerIDs)
	m.reportState()
	m.mutex.Unlock()

	if stop != nil {
		stop()
	}
	m.logger.WithField("objectType", fmt.Sprintf("%T", obj)).
		WithField("handlersCount", removed).
		WithField("deactivated", stop != nil).
		Debug(ctx, "object handlers released")
}

// IsActive reports whether the object still owns registered handlers.
func (m *Mediator) IsActive(obj any) bool {
	if !isComparable(obj) {
		return false
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.active.contains(obj)
}

// Close drops every handler and stops lifecycle observation.
// Publish and Send on a closed mediator behave as if nothing was registered.
func (m *Mediator) Close() {
	m.notifier.Close()

	m.mutex.Lock()
	if m.closed {
		m.mutex.Unlock()
		return
	}

	m.closed = true
	objects := m.active.objects()
	stops := make([]func(), 0, len(objects))
	for _, obj := range objects {
		_, stop := m.active.triggerRemovalFor(obj)
		stops = append(stops, stop)
	}
	m.reportState()
	m.mutex.Unlock()

	for _, stop := range stops {
		stop()
	}
}

func (m *Mediator) checkSingleHandlers(handlers []*handler) error {
	declared := make(map[MessageType]struct{})
	for _, h := range handlers {
		if h.kind != KindSingleResult {
			continue
		}

		if current, ok := m.single.lookup(h.messageType); ok {
			return fmt.Errorf(
				"%w: %v already handled by %T",
				ErrDuplicateSingleHandler,
				typeName(h.messageType),
				current.owner,
			)
		}
		if _, ok := declared[h.messageType]; ok {
			return fmt.Errorf(
				"%w: %v declared twice by %T",
				ErrDuplicateSingleHandler,
				typeName(h.messageType),
				h.owner,
			)
		}
		declared[h.messageType] = struct{}{}
	}
	return nil
}

func (m *Mediator) cacheHandler(h *handler) *activation {
	if h.kind == KindSingleResult {
		// checked by checkSingleHandlers under the same lock
		_ = m.single.register(h)
		return m.active.addActiveObject(h.owner, h.id, func() bool {
			return m.single.remove(h.messageType, h.id)
		})
	}

	m.multicast.register(h)
	return m.active.addActiveObject(h.owner, h.id, func() bool {
		return m.multicast.remove(h.messageType, h.id)
	})
}

func (m *Mediator) invoke(ctx context.Context, h *handler, msg any) (result any, err error) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}

		err = m.handlerFailed(ctx, h, &Panic{
			Message:    p,
			Stacktrace: debug.Stack(),
		})
	}()

	switch h.kind {
	case KindMulticast:
		err = h.multicast(ctx, msg)
	case KindSingleResult:
		result, err = h.single(ctx, msg)
	}
	if err != nil {
		return nil, m.handlerFailed(ctx, h, err)
	}
	return result, nil
}

func (m *Mediator) handlerFailed(ctx context.Context, h *handler, err error) error {
	err = fmt.Errorf(
		"%w: %v handler of %T: %w",
		ErrHandlerInvocationFailure,
		typeName(h.messageType),
		h.owner,
		err,
	)

	logger := m.logger.WithError(err).
		WithField("messageType", typeName(h.messageType)).
		WithField("handlerID", h.id)
	var p *Panic
	if errors.As(err, &p) {
		logger = logger.WithField("panic", log.Fields{
			"message": fmt.Sprintf("%v", p.Message),
			"stack":   string(p.Stacktrace),
		})
	}
	logger.Error(ctx, "handler failed")
	m.metrics.With(metric.Labels{
		"kind":    h.kind.String(),
		"message": metricName(h.messageType),
	}).Increment("mediator_handler_failures_total")
	return err
}

func (m *Mediator) reportState() {
	m.metrics.WithLabel("kind", KindMulticast.String()).Gauge("mediator_registered_handlers", m.multicast.len())
	m.metrics.WithLabel("kind", KindSingleResult.String()).Gauge("mediator_registered_handlers", m.single.len())
	m.metrics.Gauge("mediator_active_objects", m.active.len())
}

func isComparable(obj any) bool {
	return obj == nil || reflect.ValueOf(obj).Comparable()
}

func metricName(t MessageType) string {
	return pkgstrings.ToSnakeCase(typeName(t))
}

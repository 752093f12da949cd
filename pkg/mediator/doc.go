// Package mediator dispatches in-process messages to handlers declared by objects.
//
// Multicast messages embed Notification and reach every handler of their type.
// Single-result messages embed Request[R] and reach exactly one handler, which returns R:
//
//	type Ping struct{ mediator.Notification }
//
//	type GetCount struct{ mediator.Request[int] }
//
//	type Counter struct{ pings int }
//
//	func (c *Counter) MediatorHandlers() []mediator.Descriptor {
//		return []mediator.Descriptor{
//			mediator.OnMulticast(func(context.Context, Ping) error { c.pings++; return nil }),
//			mediator.OnSingle(func(context.Context, GetCount) (int, error) { return c.pings, nil }),
//		}
//	}
//
//	m := mediator.New()
//	defer m.Close()
//	_, _ = m.Register(ctx, &Counter{})
//	_ = m.Publish(ctx, Ping{})
//	count, err := mediator.Send[int](ctx, m, GetCount{})
//
// Handlers of an object are removed by Deactivate, by closing the Registration returned from
// Register, or automatically when the object implements Lifecycle and its Done channel is closed.
package mediator

package mediator

// HandlerExtractor finds handlers of an object. Mediator queries it once per Register call.
type HandlerExtractor interface {
	Extract(obj any) []Descriptor
}

type ExtractorFunc func(obj any) []Descriptor

func (f ExtractorFunc) Extract(obj any) []Descriptor {
	return f(obj)
}

// Mediated is implemented by objects that declare their handlers:
//
//	func (c *Counter) MediatorHandlers() []mediator.Descriptor {
//		return []mediator.Descriptor{
//			mediator.OnMulticast(c.onIncrement),
//			mediator.OnSingle(c.count),
//		}
//	}
type Mediated interface {
	MediatorHandlers() []Descriptor
}

type capabilityExtractor struct{}

// NewCapabilityExtractor returns handlers of objects implementing Mediated and nothing for the rest.
func NewCapabilityExtractor() HandlerExtractor {
	return capabilityExtractor{}
}

func (capabilityExtractor) Extract(obj any) []Descriptor {
	mediated, ok := obj.(Mediated)
	if !ok {
		return nil
	}
	return mediated.MediatorHandlers()
}

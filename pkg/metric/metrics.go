package metric

import "time"

type Labels map[string]any

type Metrics interface {
	With(labels Labels) Metrics
	WithLabel(name string, value any) Metrics
	Increment(key string)
	Count(key string, value int)
	Gauge(key string, value int)
	Duration(key string, duration time.Duration)
}

package metric

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type collectorKind int

const (
	collectorCounter collectorKind = iota
	collectorGauge
	collectorHistogram
)

type collector struct {
	kind       collectorKind
	labelNames []string
	impl       prometheus.Collector
}

type collectorRegistry struct {
	mutex      sync.Mutex
	registerer prometheus.Registerer
	namespace  string
	collectors map[string]collector
}

type prometheusMetrics struct {
	registry *collectorRegistry
	labels   Labels
}

// NewPrometheus creates collectors lazily on first use of a key.
// A key keeps the label names it was first used with, observations with other label names are dropped.
func NewPrometheus(registerer prometheus.Registerer, namespace string) Metrics {
	return prometheusMetrics{
		registry: &collectorRegistry{
			registerer: registerer,
			namespace:  namespace,
			collectors: make(map[string]collector),
		},
		labels: nil,
	}
}

func (m prometheusMetrics) With(labels Labels) Metrics {
	if len(labels) == 0 {
		return m
	}

	result := make(Labels, len(m.labels)+len(labels))
	maps.Copy(result, m.labels)
	maps.Copy(result, labels)
	m.labels = result
	return m
}

func (m prometheusMetrics) WithLabel(name string, value any) Metrics {
	return m.With(Labels{name: value})
}

func (m prometheusMetrics) Increment(key string) {
	m.Count(key, 1)
}

func (m prometheusMetrics) Count(key string, value int) {
	c, labels, ok := m.registry.get(key, collectorCounter, m.labels)
	if !ok {
		return
	}
	c.(*prometheus.CounterVec).With(labels).Add(float64(value))
}

func (m prometheusMetrics) Gauge(key string, value int) {
	c, labels, ok := m.registry.get(key, collectorGauge, m.labels)
	if !ok {
		return
	}
	c.(*prometheus.GaugeVec).With(labels).Set(float64(value))
}

func (m prometheusMetrics) Duration(key string, duration time.Duration) {
	c, labels, ok := m.registry.get(key, collectorHistogram, m.labels)
	if !ok {
		return
	}
	c.(*prometheus.HistogramVec).With(labels).Observe(duration.Seconds())
}

func (r *collectorRegistry) get(key string, kind collectorKind, labels Labels) (prometheus.Collector, prometheus.Labels, bool) {
	labelNames := make([]string, 0, len(labels))
	promLabels := make(prometheus.Labels, len(labels))
	for name, value := range labels {
		labelNames = append(labelNames, name)
		promLabels[name] = fmt.Sprint(value)
	}
	slices.Sort(labelNames)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	c, ok := r.collectors[key]
	if ok {
		if c.kind != kind || !slices.Equal(c.labelNames, labelNames) {
			return nil, nil, false
		}
		return c.impl, promLabels, true
	}

	impl := r.newCollector(key, kind, labelNames)
	err := r.registerer.Register(impl)
	if err != nil {
		return nil, nil, false
	}

	r.collectors[key] = collector{
		kind:       kind,
		labelNames: labelNames,
		impl:       impl,
	}
	return impl, promLabels, true
}

func (r *collectorRegistry) newCollector(key string, kind collectorKind, labelNames []string) prometheus.Collector {
	switch kind {
	case collectorGauge:
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: r.namespace,
			Name:      key,
			Help:      key,
		}, labelNames)
	case collectorHistogram:
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: r.namespace,
			Name:      key,
			Help:      key,
			Buckets:   prometheus.DefBuckets,
		}, labelNames)
	default:
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: r.namespace,
			Name:      key,
			Help:      key,
		}, labelNames)
	}
}

package monitoring

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus collectors for the chat pipeline.
var (
	chatRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chat_requests_total",
			Help: "Chat requests served, by role and response source",
		},
		[]string{"role", "source"},
	)

	categoryMatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "knowledge_matches_total",
			Help: "Knowledge categories matched by incoming queries",
		},
		[]string{"category"},
	)

	upstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_failures_total",
			Help: "External provider failures that triggered a fallback",
		},
		[]string{"provider"},
	)

	responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "chat_response_time_seconds",
			Help:    "Time taken to produce a chat response",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(chatRequests, categoryMatches, upstreamFailures, responseTime)
}

// RecordChat counts a served chat request.
func RecordChat(role, source string, seconds float64) {
	chatRequests.WithLabelValues(role, source).Inc()
	responseTime.WithLabelValues(source).Observe(seconds)
}

// RecordMatch counts a matched knowledge category.
func RecordMatch(category string) {
	categoryMatches.WithLabelValues(category).Inc()
}

// RecordUpstreamFailure counts a provider failure absorbed by the fallback
// chain.
func RecordUpstreamFailure(provider string) {
	upstreamFailures.WithLabelValues(provider).Inc()
}

// Monitor collects ad-hoc runtime metrics for the stats endpoints.
type Monitor struct {
	metrics      map[string]interface{}
	metricsMutex sync.RWMutex
	startTime    time.Time
}

// NewMonitor creates a new monitoring instance
func NewMonitor() *Monitor {
	return &Monitor{
		metrics:   make(map[string]interface{}),
		startTime: time.Now(),
	}
}

// RecordMetric records a metric value
func (m *Monitor) RecordMetric(name string, value interface{}) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics[name] = value
}

// IncrementMetric bumps an integer metric by one.
func (m *Monitor) IncrementMetric(name string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	if current, ok := m.metrics[name].(int); ok {
		m.metrics[name] = current + 1
		return
	}
	m.metrics[name] = 1
}

// GetMetric returns a specific metric value
func (m *Monitor) GetMetric(name string) (interface{}, bool) {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()
	value, exists := m.metrics[name]
	return value, exists
}

// GetMetrics returns all current metrics
func (m *Monitor) GetMetrics() map[string]interface{} {
	m.metricsMutex.RLock()
	defer m.metricsMutex.RUnlock()

	// Create a copy to avoid concurrent map access
	metrics := make(map[string]interface{}, len(m.metrics))
	for k, v := range m.metrics {
		metrics[k] = v
	}

	// Add system metrics
	metrics["uptime_seconds"] = time.Since(m.startTime).Seconds()

	return metrics
}

// Reset clears all metrics
func (m *Monitor) Reset() {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()
	m.metrics = make(map[string]interface{})
}

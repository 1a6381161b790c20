package monitoring

import (
	"sync"
	"time"
)

// Monitor collects and provides runtime metrics for the service
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

// RecordEntityChange records a create/update/delete against an entity
// collection and keeps a running count per entity and action.
func (m *Monitor) RecordEntityChange(entity string, action string) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	key := entity + "_" + action + "_total"
	count, _ := m.metrics[key].(int64)
	m.metrics[key] = count + 1

	m.metrics[entity+"_last_changed"] = time.Now().Format(time.RFC3339)
}

// RecordRequest records a completed HTTP request
func (m *Monitor) RecordRequest(method, path string, status int, duration time.Duration) {
	m.metricsMutex.Lock()
	defer m.metricsMutex.Unlock()

	key := "requests_" + method + "_" + path
	count, _ := m.metrics[key].(int64)
	m.metrics[key] = count + 1

	m.metrics["last_request_duration_ms"] = duration.Milliseconds()
	m.metrics["last_request_status"] = status
}

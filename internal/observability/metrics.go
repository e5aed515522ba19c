package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics keeps in-memory request and error counters for the booking API,
// keyed by route, method and outcome.
type Metrics struct {
	mu       sync.Mutex
	requests map[string]int64
	errors   map[string]int64
}

// NewMetrics initializes empty counters.
func NewMetrics() *Metrics {
	return &Metrics{
		requests: make(map[string]int64),
		errors:   make(map[string]int64),
	}
}

// RecordRequest counts a finished request by route and status.
func (m *Metrics) RecordRequest(path, method string, status int, _ time.Duration) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests[counterKey(method, path, strconv.Itoa(status))]++
}

// RecordError counts a failed request by route and domain error code, so
// spikes in e.g. INVALID_TRANSITION or FORBIDDEN are visible per endpoint.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[counterKey(method, path, code)]++
}

func counterKey(method, path, outcome string) string {
	return method + " " + path + " " + outcome
}

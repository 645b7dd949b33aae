package observability

import (
	"strconv"
	"sync"
	"time"
)

// Refresh outcomes recorded per pipeline run.
const (
	RefreshOutcomeOK        = "ok"
	RefreshOutcomeStale     = "stale"
	RefreshOutcomeSynthetic = "synthetic"
)

// Metrics provides basic in-memory counters for HTTP traffic and for the
// aggregation pipeline.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	errorCount   map[string]int64
	refreshCount map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
		refreshCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordRefresh increments pipeline refresh counters per team and outcome.
func (m *Metrics) RecordRefresh(team, outcome string) {
	if m == nil {
		return
	}
	key := team + "|" + outcome
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCount[key]++
}

// RefreshCount returns the counter for a team/outcome pair.
func (m *Metrics) RefreshCount(team, outcome string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshCount[team+"|"+outcome]
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}

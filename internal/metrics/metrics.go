package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	EntriesProcessed   int64
	DuplicatesFiltered int64
	EntriesFilteredOut int64
	TimestampFallbacks int64
	SourcesFailed      int64
	FeedsWritten       int64

	// Timings
	LastRunDuration time.Duration

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) IncrementEntriesProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesProcessed++
}

func (m *Metrics) IncrementDuplicatesFiltered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesFiltered++
}

func (m *Metrics) IncrementEntriesFilteredOut() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EntriesFilteredOut++
}

func (m *Metrics) IncrementTimestampFallbacks() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TimestampFallbacks++
}

func (m *Metrics) IncrementSourcesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFailed++
}

func (m *Metrics) IncrementFeedsWritten() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FeedsWritten++
}

func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunDuration = duration
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"entries_processed":    m.EntriesProcessed,
		"duplicates_filtered":  m.DuplicatesFiltered,
		"entries_filtered_out": m.EntriesFilteredOut,
		"timestamp_fallbacks":  m.TimestampFallbacks,
		"sources_failed":       m.SourcesFailed,
		"feeds_written":        m.FeedsWritten,
		"last_run_duration_ms": m.LastRunDuration.Milliseconds(),
		"last_run_time":        m.LastRunTime.Format(time.RFC3339),
		"last_error_time":      m.LastErrorTime.Format(time.RFC3339),
		"last_error":           m.LastError,
		"is_healthy":           m.IsHealthy,
	}
}

package observability

import (
	"sync"

	"go.uber.org/zap"
)

// RunStats provides basic in-memory counters for one report run.
type RunStats struct {
	mu       sync.Mutex
	counters map[string]int64
}

// Counter names recorded by the pipeline.
const (
	StatRecordsRead     = "records_read"
	StatRecordsSkipped  = "records_skipped"
	StatRecordsInWindow = "records_in_window"
	StatLookups         = "ticket_lookups"
	StatLookupFailures  = "ticket_lookup_failures"
	StatCacheHits       = "ticket_cache_hits"
	StatEnriched        = "records_enriched"
)

// NewRunStats initializes counter storage.
func NewRunStats() *RunStats {
	return &RunStats{counters: make(map[string]int64)}
}

// Inc increments the named counter by one.
func (s *RunStats) Inc(name string) {
	s.Add(name, 1)
}

// Add increments the named counter by delta.
func (s *RunStats) Add(name string, delta int64) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[name] += delta
}

// Get returns the current value of the named counter.
func (s *RunStats) Get(name string) int64 {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters[name]
}

// Log emits every non-zero counter on the given logger.
func (s *RunStats) Log(logger *zap.Logger) {
	if s == nil || logger == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fields := make([]zap.Field, 0, len(s.counters))
	for name, v := range s.counters {
		if v != 0 {
			fields = append(fields, zap.Int64(name, v))
		}
	}
	logger.Info("run complete", fields...)
}

package upstream

import (
	"sync/atomic"
	"time"
)

// Metrics tracks upstream call counters
type Metrics struct {
	calls   atomic.Int64
	errors  atomic.Int64
	latency atomic.Int64 // total latency in nanoseconds
}

// Snapshot is a point-in-time copy of Metrics.
type Snapshot struct {
	Calls          int64   `json:"calls"`
	Errors         int64   `json:"errors"`
	AvgLatencyMs   float64 `json:"avg_latency_ms"`
	ErrorRatePct   float64 `json:"error_rate_pct"`
	totalLatencyNs int64
}

func (m *Metrics) record(duration time.Duration, err error) {
	m.calls.Add(1)
	m.latency.Add(duration.Nanoseconds())
	if err != nil {
		m.errors.Add(1)
	}
}

func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		Calls:          m.calls.Load(),
		Errors:         m.errors.Load(),
		totalLatencyNs: m.latency.Load(),
	}
	if s.Calls > 0 {
		s.AvgLatencyMs = float64(s.totalLatencyNs) / float64(s.Calls) / 1e6
		s.ErrorRatePct = float64(s.Errors) / float64(s.Calls) * 100
	}
	return s
}

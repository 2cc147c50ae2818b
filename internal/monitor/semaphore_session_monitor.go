package monitor

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// SemaphoreSessionMonitor implements SessionMonitor using a weighted
// semaphore. Session slots are acquired without blocking; a saturated
// device rejects new sessions immediately instead of queueing them.
type SemaphoreSessionMonitor struct {
	sem       *semaphore.Weighted
	maxWeight int64
	activeCnt atomic.Int64
}

// NewSemaphoreSessionMonitor creates a semaphore-backed session monitor.
// maxSessions is the number of concurrent benchmark sessions allowed on
// the device (one, unless measurements are known not to interfere).
func NewSemaphoreSessionMonitor(maxSessions int64) *SemaphoreSessionMonitor {
	return &SemaphoreSessionMonitor{
		sem:       semaphore.NewWeighted(maxSessions),
		maxWeight: maxSessions,
	}
}

// GetMetrics returns current usage statistics
func (m *SemaphoreSessionMonitor) GetMetrics() SessionMetrics {
	active := m.activeCnt.Load()
	loadPct := 0.0
	if m.maxWeight > 0 {
		loadPct = float64(active) / float64(m.maxWeight) * 100.0
	}

	return SessionMetrics{
		ActiveSessions: active,
		MaxSessions:    m.maxWeight,
		LoadPercentage: loadPct,
	}
}

// TryAcquire attempts to acquire a session slot. Returns true if successful.
// The caller MUST call Release() when the session completes.
func (m *SemaphoreSessionMonitor) TryAcquire() bool {
	if m.sem.TryAcquire(1) {
		m.activeCnt.Add(1)
		return true
	}
	return false
}

// Release releases a session slot, allowing another session to start
func (m *SemaphoreSessionMonitor) Release() {
	m.activeCnt.Add(-1)
	m.sem.Release(1)
}

var _ SessionMonitor = (*SemaphoreSessionMonitor)(nil)

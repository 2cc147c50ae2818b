package monitor

// SessionMetrics represents current device usage statistics
type SessionMetrics struct {
	// ActiveSessions is the number of benchmark sessions currently running
	ActiveSessions int64
	// MaxSessions is the maximum number of concurrent sessions allowed
	MaxSessions int64
	// LoadPercentage is the current usage as a percentage (0-100)
	LoadPercentage float64
}

// SessionMonitor guards access to the device. A benchmark pushes files,
// pins CPUs and times iterations, so overlapping sessions corrupt each
// other's measurements; the monitor bounds how many may run at once
// (normally one).
type SessionMonitor interface {
	// GetMetrics returns current usage statistics
	GetMetrics() SessionMetrics

	// TryAcquire attempts to acquire a session slot. Returns true if successful.
	// The caller MUST call Release() when the session completes.
	TryAcquire() bool

	// Release releases a session slot, allowing another session to start
	Release()
}

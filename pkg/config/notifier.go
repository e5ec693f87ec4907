package config

import "time"

// NotifierConfig controls alert delivery and suppression.
type NotifierConfig struct {
	// DedupWindow is how long a (event_id, band, remediation outcome) key
	// suppresses repeat alerts (default: 5m).
	DedupWindow time.Duration

	// DedupSize is the number of dedup keys tracked before the oldest is
	// evicted (default: 10000, also the minimum).
	DedupSize int

	// Breaker tunes the circuit breaker around alert delivery.
	Breaker BreakerConfig
}

// BreakerConfig tunes the circuit breaker wrapped around outbound alert
// delivery. Delivery is best-effort; the breaker keeps a dead Slack
// workspace from adding latency to every event.
type BreakerConfig struct {
	ConsecutiveFailures uint32        // failures before the breaker opens (default: 5)
	OpenTimeout         time.Duration // how long the breaker stays open (default: 30s)
}

// DefaultNotifierConfig returns the built-in notifier defaults.
func DefaultNotifierConfig() *NotifierConfig {
	return &NotifierConfig{
		DedupWindow: 5 * time.Minute,
		DedupSize:   10000,
		Breaker: BreakerConfig{
			ConsecutiveFailures: 5,
			OpenTimeout:         30 * time.Second,
		},
	}
}

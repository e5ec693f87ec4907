package config

import "time"

// RetentionConfig controls how long stored threats live and how often the
// sweeper runs.
type RetentionConfig struct {
	// RecordTTL is stamped onto every record at write time as expires_at.
	// Later TTL changes never move existing expiry stamps.
	RecordTTL time.Duration `yaml:"record_ttl"`

	// CleanupInterval is how often the cleanup loop deletes expired rows.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`

	// SweepBatchSize bounds how many rows one delete statement removes, so a
	// large backlog cannot hold row locks for the whole sweep.
	SweepBatchSize int `yaml:"sweep_batch_size"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		RecordTTL:       30 * 24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
		SweepBatchSize:  1000,
	}
}

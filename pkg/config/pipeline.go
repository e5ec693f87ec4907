package config

import "time"

// PipelineConfig contains event bus and worker pool configuration.
// These values control how many events can be queued, how many are
// processed at once, and how long one event may hold a worker.
type PipelineConfig struct {
	// BusCapacity is the total number of events the bus will hold across
	// all partitions before submissions are rejected with Backpressure.
	BusCapacity int `yaml:"bus_capacity"`

	// MaxConcurrentEvents is the number of pipeline workers. It is also
	// the bus partition count: each worker drains exactly one partition,
	// which is what keeps per-event ordering.
	MaxConcurrentEvents int `yaml:"max_concurrent_events"`

	// OracleConcurrency caps in-flight calls per oracle (scorer, analyst)
	// across all workers.
	OracleConcurrency int `yaml:"oracle_concurrency"`

	// EventDeadline is the end-to-end budget from dequeue to terminal
	// state. Past it the event is force-stored without analysis,
	// remediation or notification.
	EventDeadline time.Duration `yaml:"event_deadline"`

	// BusRetention is the maximum age of a queued event. Older entries are
	// dropped at dequeue and counted, never processed.
	BusRetention time.Duration `yaml:"bus_retention"`

	// GracefulShutdownTimeout is the max time to wait for in-flight events
	// to reach a terminal state during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// DLQCapacity bounds the in-memory dead letter ring. A full ring evicts
	// its oldest entry to admit the new one.
	DLQCapacity int `yaml:"dlq_capacity"`
}

// DefaultPipelineConfig returns the built-in pipeline defaults.
func DefaultPipelineConfig() *PipelineConfig {
	return &PipelineConfig{
		BusCapacity:             1000,
		MaxConcurrentEvents:     64,
		OracleConcurrency:       16,
		EventDeadline:           60 * time.Second,
		BusRetention:            24 * time.Hour,
		GracefulShutdownTimeout: 30 * time.Second,
		DLQCapacity:             500,
	}
}

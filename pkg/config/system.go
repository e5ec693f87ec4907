package config

import "time"

// SlackConfig holds resolved Slack notification configuration.
type SlackConfig struct {
	Enabled  bool
	TokenEnv string // Env var name for Slack bot token (default: "SLACK_BOT_TOKEN")
	Channel  string // Slack channel ID (e.g., "C12345678")
}

// RedisConfig holds resolved Redis stream publishing configuration.
// Terminal events are published to a stream for dashboards and SIEM
// forwarders; disabled means the pipeline runs without a broker.
type RedisConfig struct {
	Enabled     bool
	Addr        string // host:port (default: "localhost:6379")
	PasswordEnv string // env var name for the password (empty = no auth)
	Stream      string // stream key (default: "argus:threats")
	MaxLen      int64  // approximate stream cap, 0 = unbounded (default: 10000)
}

// StoreConfig holds resolved threat store write behavior. Writes share the
// scorer's backoff schedule; exhausting it journals the record to the
// on-disk DLQ for operator replay.
type StoreConfig struct {
	WriteTimeout     time.Duration // per-attempt bound (default: 5s)
	RetryInitial     time.Duration // first backoff delay (default: 200ms)
	RetryFactor      float64       // backoff multiplier (default: 2.0)
	RetryMaxAttempts int           // attempts before journaling (default: 4)
	JournalPath      string        // store DLQ journal file (default: "data/store-dlq.jsonl")
}

// PlaybookConfig holds resolved response playbook configuration. Playbooks
// are fetched by finding kind and handed to the analyst as context.
type PlaybookConfig struct {
	BaseURL        string        // base URL for playbook lookups (empty = disabled)
	CacheTTL       time.Duration // cache duration (default: 5m)
	AllowedDomains []string      // allowed URL domains (default: ["github.com", "raw.githubusercontent.com"])
}

// DefaultStoreConfig returns the built-in store write defaults.
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		WriteTimeout:     5 * time.Second,
		RetryInitial:     200 * time.Millisecond,
		RetryFactor:      2.0,
		RetryMaxAttempts: 4,
		JournalPath:      "data/store-dlq.jsonl",
	}
}

package config

// Config is the umbrella configuration object that encapsulates all
// resolved sections and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Pipeline sizing and deadlines
	Pipeline *PipelineConfig

	// Triage thresholds and initial action policy
	Triage *TriageConfig

	// Model backends
	Oracles *OracleConfig

	// Effector action table
	Remediation *RemediationConfig

	// Alert delivery and suppression
	Notifier *NotifierConfig

	// Infrastructure integrations
	Slack     *SlackConfig
	Redis     *RedisConfig
	Store     *StoreConfig
	Playbooks *PlaybookConfig
	Retention *RetentionConfig

	// DashboardURL is the base URL used to build record links in alerts.
	DashboardURL string
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	ActionRules    int
	ActionPolicy   ActionPolicy
	BusCapacity    int
	Workers        int
	MaskingEnabled bool
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Remediation != nil {
		s.ActionRules = len(c.Remediation.Actions)
	}
	if c.Triage != nil {
		s.ActionPolicy = c.Triage.ActionPolicy
	}
	if c.Pipeline != nil {
		s.BusCapacity = c.Pipeline.BusCapacity
		s.Workers = c.Pipeline.MaxConcurrentEvents
	}
	if c.Defaults != nil && c.Defaults.Masking != nil {
		s.MaskingEnabled = c.Defaults.Masking.Enabled
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// ActionFor retrieves the configured effector action for a finding.
// This is a convenience method that wraps RemediationConfig.ActionFor().
func (c *Config) ActionFor(source, kind string) ActionKind {
	return c.Remediation.ActionFor(source, kind)
}

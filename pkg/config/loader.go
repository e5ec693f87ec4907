package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ArgusYAMLConfig represents the complete argus.yaml file structure
type ArgusYAMLConfig struct {
	System   *SystemYAMLConfig   `yaml:"system"`
	Pipeline *PipelineConfig     `yaml:"pipeline"`
	Triage   *TriageConfig       `yaml:"triage"`
	Oracles  *OraclesYAMLConfig  `yaml:"oracles"`
	Notifier *NotifierYAMLConfig `yaml:"notifier"`
	Defaults *Defaults           `yaml:"defaults"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	DashboardURL string               `yaml:"dashboard_url"`
	Slack        *SlackYAMLConfig     `yaml:"slack"`
	Redis        *RedisYAMLConfig     `yaml:"redis"`
	Store        *StoreYAMLConfig     `yaml:"store"`
	Playbooks    *PlaybooksYAMLConfig `yaml:"playbooks"`
	Retention    *RetentionConfig     `yaml:"retention"`
}

// SlackYAMLConfig holds Slack notification settings from YAML.
type SlackYAMLConfig struct {
	Enabled  *bool  `yaml:"enabled,omitempty"`
	TokenEnv string `yaml:"token_env,omitempty"`
	Channel  string `yaml:"channel,omitempty"`
}

// RedisYAMLConfig holds Redis stream settings from YAML.
type RedisYAMLConfig struct {
	Enabled     *bool  `yaml:"enabled,omitempty"`
	Addr        string `yaml:"addr,omitempty"`
	PasswordEnv string `yaml:"password_env,omitempty"`
	Stream      string `yaml:"stream,omitempty"`
	MaxLen      int64  `yaml:"max_len,omitempty"`
}

// StoreYAMLConfig holds threat store write settings from YAML.
type StoreYAMLConfig struct {
	WriteTimeout     string  `yaml:"write_timeout,omitempty"` // Parsed to time.Duration
	RetryInitial     string  `yaml:"retry_initial,omitempty"` // Parsed to time.Duration
	RetryFactor      float64 `yaml:"retry_factor,omitempty"`
	RetryMaxAttempts int     `yaml:"retry_max_attempts,omitempty"`
	JournalPath      string  `yaml:"journal_path,omitempty"`
}

// PlaybooksYAMLConfig holds response playbook settings from YAML.
type PlaybooksYAMLConfig struct {
	BaseURL        string   `yaml:"base_url,omitempty"`
	CacheTTL       string   `yaml:"cache_ttl,omitempty"` // Parsed to time.Duration
	AllowedDomains []string `yaml:"allowed_domains,omitempty"`
}

// OraclesYAMLConfig groups model backend settings from YAML.
type OraclesYAMLConfig struct {
	Scorer  *ScorerYAMLConfig  `yaml:"scorer"`
	Analyst *AnalystYAMLConfig `yaml:"analyst"`
}

// ScorerYAMLConfig holds ML scorer settings from YAML.
type ScorerYAMLConfig struct {
	Endpoint         string  `yaml:"endpoint"`
	Timeout          string  `yaml:"timeout,omitempty"`       // Parsed to time.Duration
	RetryInitial     string  `yaml:"retry_initial,omitempty"` // Parsed to time.Duration
	RetryFactor      float64 `yaml:"retry_factor,omitempty"`
	RetryMaxAttempts int     `yaml:"retry_max_attempts,omitempty"`
	FeatureVersion   string  `yaml:"feature_version,omitempty"`
}

// AnalystYAMLConfig holds deep-analysis settings from YAML.
type AnalystYAMLConfig struct {
	Model     string `yaml:"model,omitempty"`
	APIKeyEnv string `yaml:"api_key_env,omitempty"` // Defaults to "ANTHROPIC_API_KEY" if omitted
	BaseURL   string `yaml:"base_url,omitempty"`
	Timeout   string `yaml:"timeout,omitempty"` // Parsed to time.Duration
	MaxTokens int    `yaml:"max_tokens,omitempty"`
	Retries   *int   `yaml:"retries,omitempty"`
}

// NotifierYAMLConfig holds alert delivery settings from YAML.
type NotifierYAMLConfig struct {
	DedupWindow string             `yaml:"dedup_window,omitempty"` // Parsed to time.Duration
	DedupSize   int                `yaml:"dedup_size,omitempty"`
	Breaker     *BreakerYAMLConfig `yaml:"breaker,omitempty"`
}

// BreakerYAMLConfig holds circuit breaker settings from YAML.
type BreakerYAMLConfig struct {
	ConsecutiveFailures uint32 `yaml:"consecutive_failures,omitempty"`
	OpenTimeout         string `yaml:"open_timeout,omitempty"` // Parsed to time.Duration
}

// ActionsYAMLConfig represents the complete actions.yaml file structure
type ActionsYAMLConfig struct {
	Endpoint        string       `yaml:"endpoint,omitempty"` // automation runner URL
	EffectorTimeout string       `yaml:"effector_timeout,omitempty"` // Parsed to time.Duration
	Actions         []ActionRule `yaml:"actions"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Merge user-defined sections over built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"action_rules", stats.ActionRules,
		"action_policy", stats.ActionPolicy,
		"bus_capacity", stats.BusCapacity,
		"workers", stats.Workers,
		"masking_enabled", stats.MaskingEnabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load argus.yaml (contains system, pipeline, triage, oracles, notifier, defaults)
	argusConfig, err := loader.loadArgusYAML()
	if err != nil {
		return nil, NewLoadError("argus.yaml", err)
	}

	// 2. Load actions.yaml (remediation action table; optional)
	actionsConfig, err := loader.loadActionsYAML()
	if err != nil {
		return nil, NewLoadError("actions.yaml", err)
	}

	// 3. Resolve pipeline config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	pipeline := DefaultPipelineConfig()
	if argusConfig.Pipeline != nil {
		if err := mergo.Merge(pipeline, argusConfig.Pipeline, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge pipeline config: %w", err)
		}
	}

	// 4. Resolve triage config the same way
	triage := DefaultTriageConfig()
	if argusConfig.Triage != nil {
		if err := mergo.Merge(triage, argusConfig.Triage, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge triage config: %w", err)
		}
	}

	// 5. Resolve defaults (YAML overrides built-in)
	defaults := argusConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.Masking == nil {
		defaults.Masking = &MaskingDefaults{
			Enabled:      true,
			PatternGroup: "security",
		}
	}

	// 6. Resolve remaining sections, applying built-in defaults per field
	oracles := &OracleConfig{
		Scorer:  resolveScorerConfig(argusConfig.Oracles),
		Analyst: resolveAnalystConfig(argusConfig.Oracles),
	}

	return &Config{
		configDir:    configDir,
		Defaults:     defaults,
		Pipeline:     pipeline,
		Triage:       triage,
		Oracles:      oracles,
		Remediation:  resolveRemediationConfig(actionsConfig),
		Notifier:     resolveNotifierConfig(argusConfig.Notifier),
		Slack:        resolveSlackConfig(argusConfig.System),
		Redis:        resolveRedisConfig(argusConfig.System),
		Store:        resolveStoreConfig(argusConfig.System),
		Playbooks:    resolvePlaybookConfig(argusConfig.System),
		Retention:    resolveRetentionConfig(argusConfig.System),
		DashboardURL: resolveDashboardURL(argusConfig.System),
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadArgusYAML() (*ArgusYAMLConfig, error) {
	var config ArgusYAMLConfig

	if err := l.loadYAML("argus.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// loadActionsYAML loads the remediation action table. A missing file is not
// an error: with no rules every finding maps to NONE and remediation is
// skipped rather than guessed.
func (l *configLoader) loadActionsYAML() (*ActionsYAMLConfig, error) {
	var config ActionsYAMLConfig

	if err := l.loadYAML("actions.yaml", &config); err != nil {
		if errors.Is(err, ErrConfigNotFound) {
			slog.Warn("No actions.yaml found, remediation action table is empty")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}

// parseDurationField parses a duration string from YAML, falling back to
// the default on empty or invalid input.
func parseDurationField(section, field, value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"section", section,
			"field", field,
			"value", value,
			"default", fallback,
			"error", err)
		return fallback
	}
	return d
}

// resolveScorerConfig resolves ML scorer configuration from YAML, applying defaults.
func resolveScorerConfig(oracles *OraclesYAMLConfig) *ScorerConfig {
	cfg := DefaultScorerConfig()

	if oracles == nil || oracles.Scorer == nil {
		return cfg
	}

	s := oracles.Scorer
	cfg.Endpoint = s.Endpoint
	cfg.Timeout = parseDurationField("oracles.scorer", "timeout", s.Timeout, cfg.Timeout)
	cfg.RetryInitial = parseDurationField("oracles.scorer", "retry_initial", s.RetryInitial, cfg.RetryInitial)
	if s.RetryFactor > 0 {
		cfg.RetryFactor = s.RetryFactor
	}
	if s.RetryMaxAttempts > 0 {
		cfg.RetryMaxAttempts = s.RetryMaxAttempts
	}
	if s.FeatureVersion != "" {
		cfg.FeatureVersion = s.FeatureVersion
	}

	return cfg
}

// resolveAnalystConfig resolves deep-analysis configuration from YAML, applying defaults.
func resolveAnalystConfig(oracles *OraclesYAMLConfig) *AnalystConfig {
	cfg := DefaultAnalystConfig()

	if oracles == nil || oracles.Analyst == nil {
		return cfg
	}

	a := oracles.Analyst
	if a.Model != "" {
		cfg.Model = a.Model
	}
	if a.APIKeyEnv != "" {
		cfg.APIKeyEnv = a.APIKeyEnv
	}
	if a.BaseURL != "" {
		cfg.BaseURL = a.BaseURL
	}
	cfg.Timeout = parseDurationField("oracles.analyst", "timeout", a.Timeout, cfg.Timeout)
	if a.MaxTokens > 0 {
		cfg.MaxTokens = a.MaxTokens
	}
	if a.Retries != nil && *a.Retries >= 0 {
		cfg.Retries = *a.Retries
	}

	return cfg
}

// resolveRemediationConfig resolves the action table from actions.yaml, applying defaults.
func resolveRemediationConfig(actions *ActionsYAMLConfig) *RemediationConfig {
	cfg := DefaultRemediationConfig()

	if actions == nil {
		return cfg
	}

	cfg.Endpoint = actions.Endpoint
	cfg.EffectorTimeout = parseDurationField("remediation", "effector_timeout", actions.EffectorTimeout, cfg.EffectorTimeout)
	cfg.Actions = actions.Actions

	return cfg
}

// resolveNotifierConfig resolves alert delivery configuration from YAML, applying defaults.
func resolveNotifierConfig(n *NotifierYAMLConfig) *NotifierConfig {
	cfg := DefaultNotifierConfig()

	if n == nil {
		return cfg
	}

	cfg.DedupWindow = parseDurationField("notifier", "dedup_window", n.DedupWindow, cfg.DedupWindow)
	if n.DedupSize > 0 {
		cfg.DedupSize = n.DedupSize
	}
	if n.Breaker != nil {
		if n.Breaker.ConsecutiveFailures > 0 {
			cfg.Breaker.ConsecutiveFailures = n.Breaker.ConsecutiveFailures
		}
		cfg.Breaker.OpenTimeout = parseDurationField("notifier.breaker", "open_timeout", n.Breaker.OpenTimeout, cfg.Breaker.OpenTimeout)
	}

	return cfg
}

// resolveSlackConfig resolves Slack configuration from system YAML, applying defaults.
func resolveSlackConfig(sys *SystemYAMLConfig) *SlackConfig {
	cfg := &SlackConfig{
		Enabled:  false,
		TokenEnv: "SLACK_BOT_TOKEN",
	}

	if sys == nil || sys.Slack == nil {
		return cfg
	}

	s := sys.Slack
	if s.Enabled != nil {
		cfg.Enabled = *s.Enabled
	}
	if s.TokenEnv != "" {
		cfg.TokenEnv = s.TokenEnv
	}
	if s.Channel != "" {
		cfg.Channel = s.Channel
	}

	return cfg
}

// resolveRedisConfig resolves Redis stream configuration from system YAML, applying defaults.
func resolveRedisConfig(sys *SystemYAMLConfig) *RedisConfig {
	cfg := &RedisConfig{
		Enabled: false,
		Addr:    "localhost:6379",
		Stream:  "argus:threats",
		MaxLen:  10000,
	}

	if sys == nil || sys.Redis == nil {
		return cfg
	}

	r := sys.Redis
	if r.Enabled != nil {
		cfg.Enabled = *r.Enabled
	}
	if r.Addr != "" {
		cfg.Addr = r.Addr
	}
	if r.PasswordEnv != "" {
		cfg.PasswordEnv = r.PasswordEnv
	}
	if r.Stream != "" {
		cfg.Stream = r.Stream
	}
	if r.MaxLen > 0 {
		cfg.MaxLen = r.MaxLen
	}

	return cfg
}

// resolveStoreConfig resolves threat store write configuration from system YAML, applying defaults.
func resolveStoreConfig(sys *SystemYAMLConfig) *StoreConfig {
	cfg := DefaultStoreConfig()

	if sys == nil || sys.Store == nil {
		return cfg
	}

	s := sys.Store
	cfg.WriteTimeout = parseDurationField("system.store", "write_timeout", s.WriteTimeout, cfg.WriteTimeout)
	cfg.RetryInitial = parseDurationField("system.store", "retry_initial", s.RetryInitial, cfg.RetryInitial)
	if s.RetryFactor > 0 {
		cfg.RetryFactor = s.RetryFactor
	}
	if s.RetryMaxAttempts > 0 {
		cfg.RetryMaxAttempts = s.RetryMaxAttempts
	}
	if s.JournalPath != "" {
		cfg.JournalPath = s.JournalPath
	}

	return cfg
}

// resolvePlaybookConfig resolves playbook configuration from system YAML, applying defaults.
func resolvePlaybookConfig(sys *SystemYAMLConfig) *PlaybookConfig {
	cfg := &PlaybookConfig{
		CacheTTL:       5 * time.Minute,
		AllowedDomains: []string{"github.com", "raw.githubusercontent.com"},
	}

	if sys == nil || sys.Playbooks == nil {
		return cfg
	}

	pb := sys.Playbooks
	if pb.BaseURL != "" {
		cfg.BaseURL = pb.BaseURL
	}
	cfg.CacheTTL = parseDurationField("system.playbooks", "cache_ttl", pb.CacheTTL, cfg.CacheTTL)
	if len(pb.AllowedDomains) > 0 {
		cfg.AllowedDomains = pb.AllowedDomains
	}

	return cfg
}

// resolveRetentionConfig resolves retention configuration from system YAML, applying defaults.
func resolveRetentionConfig(sys *SystemYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if sys == nil || sys.Retention == nil {
		return cfg
	}

	r := sys.Retention
	if r.RecordTTL > 0 {
		cfg.RecordTTL = r.RecordTTL
	}
	if r.CleanupInterval > 0 {
		cfg.CleanupInterval = r.CleanupInterval
	}
	if r.SweepBatchSize > 0 {
		cfg.SweepBatchSize = r.SweepBatchSize
	}

	return cfg
}

// resolveDashboardURL resolves the dashboard base URL from system YAML, applying defaults.
func resolveDashboardURL(sys *SystemYAMLConfig) string {
	if sys != nil && sys.DashboardURL != "" {
		return sys.DashboardURL
	}
	return "http://localhost:5173"
}

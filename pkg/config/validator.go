package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validatePipeline(); err != nil {
		return fmt.Errorf("pipeline validation failed: %w", err)
	}

	if err := v.validateTriage(); err != nil {
		return fmt.Errorf("triage validation failed: %w", err)
	}

	if err := v.validateOracles(); err != nil {
		return fmt.Errorf("oracle validation failed: %w", err)
	}

	if err := v.validateRemediation(); err != nil {
		return fmt.Errorf("remediation validation failed: %w", err)
	}

	if err := v.validateNotifier(); err != nil {
		return fmt.Errorf("notifier validation failed: %w", err)
	}

	if err := v.validateSystem(); err != nil {
		return fmt.Errorf("system validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validatePipeline() error {
	p := v.cfg.Pipeline
	if p == nil {
		return fmt.Errorf("pipeline configuration is nil")
	}

	if p.BusCapacity < 1 {
		return fmt.Errorf("bus_capacity must be at least 1")
	}

	if p.MaxConcurrentEvents < 1 || p.MaxConcurrentEvents > 1024 {
		return fmt.Errorf("max_concurrent_events must be between 1 and 1024")
	}

	if p.OracleConcurrency < 1 {
		return fmt.Errorf("oracle_concurrency must be at least 1")
	}

	if p.EventDeadline <= 0 {
		return fmt.Errorf("event_deadline must be positive")
	}

	if p.BusRetention <= 0 {
		return fmt.Errorf("bus_retention must be positive")
	}

	if p.GracefulShutdownTimeout <= 0 {
		return fmt.Errorf("graceful_shutdown_timeout must be positive")
	}

	return nil
}

func (v *ConfigValidator) validateTriage() error {
	t := v.cfg.Triage
	if t == nil {
		return fmt.Errorf("triage configuration is nil")
	}

	if t.WarnThreshold < 0 || t.WarnThreshold > 100 {
		return fmt.Errorf("warn_threshold must be between 0 and 100")
	}

	if t.RemediateThreshold < 0 || t.RemediateThreshold > 100 {
		return fmt.Errorf("remediate_threshold must be between 0 and 100")
	}

	// A remediation line at or below the warning line would let the
	// pipeline execute actions for events nobody was warned about.
	// This is fatal at startup, never coerced.
	if t.RemediateThreshold <= t.WarnThreshold {
		return NewValidationError("triage", "thresholds", "remediate_threshold",
			fmt.Errorf("%w: remediate_threshold (%.1f) must be strictly greater than warn_threshold (%.1f)",
				ErrPolicyViolation, t.RemediateThreshold, t.WarnThreshold))
	}

	if t.HumanReviewThreshold < 0 || t.HumanReviewThreshold > 100 {
		return fmt.Errorf("human_review_threshold must be between 0 and 100")
	}

	if !t.ActionPolicy.IsValid() {
		return NewValidationError("triage", "policy", "action_policy",
			fmt.Errorf("%w: %s", ErrInvalidValue, t.ActionPolicy))
	}

	return nil
}

func (v *ConfigValidator) validateOracles() error {
	o := v.cfg.Oracles
	if o == nil || o.Scorer == nil || o.Analyst == nil {
		return fmt.Errorf("oracle configuration is nil")
	}

	s := o.Scorer
	if s.Endpoint == "" {
		return NewValidationError("oracle", "scorer", "endpoint",
			fmt.Errorf("%w: scorer endpoint required", ErrMissingRequiredField))
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("scorer timeout must be positive")
	}
	if s.RetryInitial <= 0 {
		return fmt.Errorf("scorer retry_initial must be positive")
	}
	if s.RetryFactor < 1 {
		return fmt.Errorf("scorer retry_factor must be at least 1")
	}
	if s.RetryMaxAttempts < 1 {
		return fmt.Errorf("scorer retry_max_attempts must be at least 1")
	}

	a := o.Analyst
	if a.Model == "" {
		return NewValidationError("oracle", "analyst", "model",
			fmt.Errorf("%w: model required", ErrMissingRequiredField))
	}
	if a.APIKeyEnv != "" && a.BaseURL == "" {
		if value := os.Getenv(a.APIKeyEnv); value == "" {
			return NewValidationError("oracle", "analyst", "api_key_env",
				fmt.Errorf("environment variable %s is not set", a.APIKeyEnv))
		}
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("analyst timeout must be positive")
	}
	if a.MaxTokens < 1 {
		return fmt.Errorf("analyst max_tokens must be at least 1")
	}
	if a.Retries < 0 {
		return fmt.Errorf("analyst retries must be non-negative")
	}

	return nil
}

func (v *ConfigValidator) validateRemediation() error {
	r := v.cfg.Remediation
	if r == nil {
		return fmt.Errorf("remediation configuration is nil")
	}

	if r.EffectorTimeout <= 0 {
		return fmt.Errorf("effector_timeout must be positive")
	}

	for i, rule := range r.Actions {
		id := fmt.Sprintf("actions[%d]", i)

		if rule.Source == "" {
			return NewValidationError("action_rule", id, "source",
				fmt.Errorf("%w: source required", ErrMissingRequiredField))
		}

		if rule.Action == "" {
			return NewValidationError("action_rule", id, "action",
				fmt.Errorf("%w: action required", ErrMissingRequiredField))
		}

		if !rule.Action.IsValid() {
			return NewValidationError("action_rule", id, "action",
				fmt.Errorf("%w: unknown action kind: %s", ErrInvalidValue, rule.Action))
		}
	}

	return nil
}

func (v *ConfigValidator) validateNotifier() error {
	n := v.cfg.Notifier
	if n == nil {
		return fmt.Errorf("notifier configuration is nil")
	}

	if n.DedupWindow <= 0 {
		return fmt.Errorf("dedup_window must be positive")
	}

	// The suppression cache must be large enough that eviction, not the
	// window, is never the reason a duplicate slipped through.
	if n.DedupSize < 10000 {
		return fmt.Errorf("dedup_size must be at least 10000")
	}

	if n.Breaker.ConsecutiveFailures < 1 {
		return fmt.Errorf("breaker consecutive_failures must be at least 1")
	}

	if n.Breaker.OpenTimeout <= 0 {
		return fmt.Errorf("breaker open_timeout must be positive")
	}

	return nil
}

func (v *ConfigValidator) validateSystem() error {
	if v.cfg.Slack != nil && v.cfg.Slack.Enabled && v.cfg.Slack.Channel == "" {
		return NewValidationError("system", "slack", "channel",
			fmt.Errorf("%w: channel required when slack is enabled", ErrMissingRequiredField))
	}

	if v.cfg.Redis != nil && v.cfg.Redis.Enabled && v.cfg.Redis.Addr == "" {
		return NewValidationError("system", "redis", "addr",
			fmt.Errorf("%w: addr required when redis is enabled", ErrMissingRequiredField))
	}

	if s := v.cfg.Store; s != nil {
		if s.WriteTimeout <= 0 {
			return fmt.Errorf("store write_timeout must be positive")
		}
		if s.RetryFactor < 1 {
			return fmt.Errorf("store retry_factor must be at least 1")
		}
		if s.RetryMaxAttempts < 1 {
			return fmt.Errorf("store retry_max_attempts must be at least 1")
		}
	}

	if p := v.cfg.Playbooks; p != nil && p.BaseURL != "" && len(p.AllowedDomains) == 0 {
		return NewValidationError("system", "playbooks", "allowed_domains",
			fmt.Errorf("%w: allowed_domains required when base_url is set", ErrMissingRequiredField))
	}

	if r := v.cfg.Retention; r != nil {
		if r.RecordTTL <= 0 {
			return fmt.Errorf("record_ttl must be positive")
		}
		if r.CleanupInterval <= 0 {
			return fmt.Errorf("cleanup_interval must be positive")
		}
	}

	if d := v.cfg.Defaults; d != nil && d.Masking != nil && d.Masking.Enabled {
		if _, ok := GetBuiltinConfig().PatternGroups[d.Masking.PatternGroup]; !ok {
			return NewValidationError("defaults", "masking", "pattern_group",
				fmt.Errorf("%w: unknown pattern group: %s", ErrInvalidValue, d.Masking.PatternGroup))
		}
	}

	return nil
}

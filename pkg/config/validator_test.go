package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTriage(t *testing.T) {
	tests := []struct {
		name    string
		triage  *TriageConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid defaults",
			triage:  DefaultTriageConfig(),
			wantErr: false,
		},
		{
			name:    "nil triage",
			triage:  nil,
			wantErr: true,
			errMsg:  "triage configuration is nil",
		},
		{
			name: "warn threshold above 100",
			triage: func() *TriageConfig {
				c := DefaultTriageConfig()
				c.WarnThreshold = 101
				return c
			}(),
			wantErr: true,
			errMsg:  "warn_threshold must be between 0 and 100",
		},
		{
			name: "negative remediate threshold",
			triage: func() *TriageConfig {
				c := DefaultTriageConfig()
				c.RemediateThreshold = -1
				return c
			}(),
			wantErr: true,
			errMsg:  "remediate_threshold must be between 0 and 100",
		},
		{
			name: "remediate threshold equal to warn threshold",
			triage: func() *TriageConfig {
				c := DefaultTriageConfig()
				c.WarnThreshold = 70
				c.RemediateThreshold = 70
				return c
			}(),
			wantErr: true,
			errMsg:  "strictly greater",
		},
		{
			name: "remediate threshold below warn threshold",
			triage: func() *TriageConfig {
				c := DefaultTriageConfig()
				c.WarnThreshold = 80
				c.RemediateThreshold = 60
				return c
			}(),
			wantErr: true,
			errMsg:  "strictly greater",
		},
		{
			name: "invalid action policy",
			triage: func() *TriageConfig {
				c := DefaultTriageConfig()
				c.ActionPolicy = "AUTO"
				return c
			}(),
			wantErr: true,
			errMsg:  "action_policy",
		},
		{
			name: "human review threshold above 100",
			triage: func() *TriageConfig {
				c := DefaultTriageConfig()
				c.HumanReviewThreshold = 500
				return c
			}(),
			wantErr: true,
			errMsg:  "human_review_threshold must be between 0 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Triage: tt.triage}
			v := NewValidator(cfg)
			err := v.validateTriage()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateTriageThresholdsArePolicyViolation(t *testing.T) {
	triage := DefaultTriageConfig()
	triage.WarnThreshold = 90
	triage.RemediateThreshold = 70

	v := NewValidator(&Config{Triage: triage})
	err := v.validateTriage()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPolicyViolation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "triage", verr.Component)
}

func TestValidateOracles(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	validOracles := func() *OracleConfig {
		s := DefaultScorerConfig()
		s.Endpoint = "http://scorer:8500/v1/score"
		return &OracleConfig{Scorer: s, Analyst: DefaultAnalystConfig()}
	}

	tests := []struct {
		name    string
		oracles *OracleConfig
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid",
			oracles: validOracles(),
			wantErr: false,
		},
		{
			name:    "nil oracles",
			oracles: nil,
			wantErr: true,
			errMsg:  "oracle configuration is nil",
		},
		{
			name: "missing scorer endpoint",
			oracles: func() *OracleConfig {
				o := validOracles()
				o.Scorer.Endpoint = ""
				return o
			}(),
			wantErr: true,
			errMsg:  "scorer endpoint required",
		},
		{
			name: "scorer retry factor below 1",
			oracles: func() *OracleConfig {
				o := validOracles()
				o.Scorer.RetryFactor = 0.5
				return o
			}(),
			wantErr: true,
			errMsg:  "retry_factor must be at least 1",
		},
		{
			name: "scorer retry attempts zero",
			oracles: func() *OracleConfig {
				o := validOracles()
				o.Scorer.RetryMaxAttempts = 0
				return o
			}(),
			wantErr: true,
			errMsg:  "retry_max_attempts must be at least 1",
		},
		{
			name: "missing analyst model",
			oracles: func() *OracleConfig {
				o := validOracles()
				o.Analyst.Model = ""
				return o
			}(),
			wantErr: true,
			errMsg:  "model required",
		},
		{
			name: "analyst max tokens zero",
			oracles: func() *OracleConfig {
				o := validOracles()
				o.Analyst.MaxTokens = 0
				return o
			}(),
			wantErr: true,
			errMsg:  "max_tokens must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Oracles: tt.oracles}
			v := NewValidator(cfg)
			err := v.validateOracles()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateOraclesMissingAPIKey(t *testing.T) {
	t.Setenv("ARGUS_TEST_MISSING_KEY", "")

	scorer := DefaultScorerConfig()
	scorer.Endpoint = "http://scorer:8500/v1/score"
	analyst := DefaultAnalystConfig()
	analyst.APIKeyEnv = "ARGUS_TEST_MISSING_KEY"

	v := NewValidator(&Config{Oracles: &OracleConfig{Scorer: scorer, Analyst: analyst}})
	err := v.validateOracles()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ARGUS_TEST_MISSING_KEY is not set")
}

func TestValidateOraclesSkipsAPIKeyCheckWithBaseURL(t *testing.T) {
	t.Setenv("ARGUS_TEST_MISSING_KEY", "")

	scorer := DefaultScorerConfig()
	scorer.Endpoint = "http://scorer:8500/v1/score"
	analyst := DefaultAnalystConfig()
	analyst.APIKeyEnv = "ARGUS_TEST_MISSING_KEY"
	analyst.BaseURL = "http://llm-gateway:8080"

	v := NewValidator(&Config{Oracles: &OracleConfig{Scorer: scorer, Analyst: analyst}})
	require.NoError(t, v.validateOracles())
}

func TestValidateNotifier(t *testing.T) {
	tests := []struct {
		name     string
		notifier *NotifierConfig
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid defaults",
			notifier: DefaultNotifierConfig(),
			wantErr:  false,
		},
		{
			name:     "nil notifier",
			notifier: nil,
			wantErr:  true,
			errMsg:   "notifier configuration is nil",
		},
		{
			name: "dedup window zero",
			notifier: func() *NotifierConfig {
				n := DefaultNotifierConfig()
				n.DedupWindow = 0
				return n
			}(),
			wantErr: true,
			errMsg:  "dedup_window must be positive",
		},
		{
			name: "dedup size below minimum",
			notifier: func() *NotifierConfig {
				n := DefaultNotifierConfig()
				n.DedupSize = 500
				return n
			}(),
			wantErr: true,
			errMsg:  "dedup_size must be at least 10000",
		},
		{
			name: "breaker consecutive failures zero",
			notifier: func() *NotifierConfig {
				n := DefaultNotifierConfig()
				n.Breaker.ConsecutiveFailures = 0
				return n
			}(),
			wantErr: true,
			errMsg:  "consecutive_failures must be at least 1",
		},
		{
			name: "breaker open timeout zero",
			notifier: func() *NotifierConfig {
				n := DefaultNotifierConfig()
				n.Breaker.OpenTimeout = 0
				return n
			}(),
			wantErr: true,
			errMsg:  "open_timeout must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Notifier: tt.notifier}
			v := NewValidator(cfg)
			err := v.validateNotifier()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateSystem(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty system sections",
			cfg:     &Config{},
			wantErr: false,
		},
		{
			name: "slack enabled without channel",
			cfg: &Config{
				Slack: &SlackConfig{Enabled: true, TokenEnv: "SLACK_BOT_TOKEN"},
			},
			wantErr: true,
			errMsg:  "channel required when slack is enabled",
		},
		{
			name: "slack disabled without channel is fine",
			cfg: &Config{
				Slack: &SlackConfig{Enabled: false},
			},
			wantErr: false,
		},
		{
			name: "redis enabled without addr",
			cfg: &Config{
				Redis: &RedisConfig{Enabled: true},
			},
			wantErr: true,
			errMsg:  "addr required when redis is enabled",
		},
		{
			name: "store retry factor below 1",
			cfg: &Config{
				Store: func() *StoreConfig {
					s := DefaultStoreConfig()
					s.RetryFactor = 0
					return s
				}(),
			},
			wantErr: true,
			errMsg:  "retry_factor must be at least 1",
		},
		{
			name: "playbooks base url without allowed domains",
			cfg: &Config{
				Playbooks: &PlaybookConfig{BaseURL: "https://github.com/acme/playbooks"},
			},
			wantErr: true,
			errMsg:  "allowed_domains required",
		},
		{
			name: "retention ttl zero",
			cfg: &Config{
				Retention: &RetentionConfig{RecordTTL: 0, CleanupInterval: 1},
			},
			wantErr: true,
			errMsg:  "record_ttl must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(tt.cfg)
			err := v.validateSystem()

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

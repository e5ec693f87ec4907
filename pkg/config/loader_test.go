package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	// Create temporary config directory with valid config files
	configDir := setupTestConfigDir(t)

	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify sections are resolved
	assert.NotNil(t, cfg.Pipeline)
	assert.NotNil(t, cfg.Triage)
	assert.NotNil(t, cfg.Oracles)
	assert.NotNil(t, cfg.Remediation)
	assert.NotNil(t, cfg.Notifier)
	assert.NotNil(t, cfg.Defaults)
	assert.NotNil(t, cfg.Retention)

	// Verify built-in defaults survive a sparse config
	assert.Equal(t, 1000, cfg.Pipeline.BusCapacity)
	assert.Equal(t, 64, cfg.Pipeline.MaxConcurrentEvents)
	assert.Equal(t, 16, cfg.Pipeline.OracleConcurrency)
	assert.Equal(t, 60*time.Second, cfg.Pipeline.EventDeadline)
	assert.Equal(t, float64(70), cfg.Triage.WarnThreshold)
	assert.Equal(t, float64(90), cfg.Triage.RemediateThreshold)
	assert.Equal(t, PolicyNotifyOnly, cfg.Triage.ActionPolicy)
	assert.Equal(t, 5*time.Second, cfg.Oracles.Scorer.Timeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Oracles.Scorer.RetryInitial)
	assert.Equal(t, 4, cfg.Oracles.Scorer.RetryMaxAttempts)
	assert.Equal(t, "cloudtrail-rf-v1", cfg.Oracles.Scorer.FeatureVersion)
	assert.Equal(t, 15*time.Second, cfg.Oracles.Analyst.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Notifier.DedupWindow)
	assert.Equal(t, 30*24*time.Hour, cfg.Retention.RecordTTL)

	// Verify stats
	stats := cfg.Stats()
	assert.Equal(t, 2, stats.ActionRules)
	assert.Equal(t, PolicyNotifyOnly, stats.ActionPolicy)
	assert.Equal(t, 1000, stats.BusCapacity)
	assert.True(t, stats.MaskingEnabled)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	// Write invalid YAML
	invalidYAML := `{{{`
	err := os.WriteFile(filepath.Join(configDir, "argus.yaml"), []byte(invalidYAML), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeThresholdPolicyViolation(t *testing.T) {
	configDir := t.TempDir()

	// Remediation line at the warning line must abort startup
	config := `
triage:
  warn_threshold: 70
  remediate_threshold: 70

oracles:
  scorer:
    endpoint: "http://localhost:8500/v1/score"
`
	err := os.WriteFile(filepath.Join(configDir, "argus.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPolicyViolation)
	assert.Contains(t, err.Error(), "strictly greater")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "triage", verr.Component)
	assert.Equal(t, "remediate_threshold", verr.Field)
}

func TestInitializeMissingScorerEndpoint(t *testing.T) {
	configDir := t.TempDir()

	err := os.WriteFile(filepath.Join(configDir, "argus.yaml"), []byte("system: {}"), 0644)
	require.NoError(t, err)

	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingRequiredField)
	assert.Contains(t, err.Error(), "scorer endpoint required")
}

func TestLoadArgusYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
system:
  dashboard_url: "https://soc.example.com"
  slack:
    enabled: true
    channel: "C0SECOPS"
  redis:
    enabled: true
    addr: "redis:6379"

pipeline:
  bus_capacity: 500

triage:
  warn_threshold: 60
  remediate_threshold: 85
  action_policy: "FULL"

oracles:
  scorer:
    endpoint: "http://scorer:8500/v1/score"
    timeout: "3s"
    retry_max_attempts: 2
  analyst:
    model: "claude-sonnet-4-5"
    timeout: "10s"

notifier:
  dedup_window: "10m"
`
	err := os.WriteFile(filepath.Join(configDir, "argus.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	argusConfig, err := loader.loadArgusYAML()

	require.NoError(t, err)
	require.NotNil(t, argusConfig.System)
	assert.Equal(t, "https://soc.example.com", argusConfig.System.DashboardURL)
	require.NotNil(t, argusConfig.Pipeline)
	assert.Equal(t, 500, argusConfig.Pipeline.BusCapacity)
	require.NotNil(t, argusConfig.Triage)
	assert.Equal(t, PolicyFull, argusConfig.Triage.ActionPolicy)
	require.NotNil(t, argusConfig.Oracles)
	assert.Equal(t, "3s", argusConfig.Oracles.Scorer.Timeout)
}

func TestLoadAndResolve(t *testing.T) {
	configDir := t.TempDir()

	config := `
pipeline:
  bus_capacity: 500
  max_concurrent_events: 8

triage:
  warn_threshold: 60
  remediate_threshold: 85

oracles:
  scorer:
    endpoint: "http://scorer:8500/v1/score"
    timeout: "3s"
    retry_max_attempts: 2
  analyst:
    timeout: "10s"
    max_tokens: 2048
`
	err := os.WriteFile(filepath.Join(configDir, "argus.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	cfg, err := load(context.Background(), configDir)
	require.NoError(t, err)

	// User values override, unset values keep built-in defaults
	assert.Equal(t, 500, cfg.Pipeline.BusCapacity)
	assert.Equal(t, 8, cfg.Pipeline.MaxConcurrentEvents)
	assert.Equal(t, 16, cfg.Pipeline.OracleConcurrency)
	assert.Equal(t, float64(60), cfg.Triage.WarnThreshold)
	assert.Equal(t, float64(85), cfg.Triage.RemediateThreshold)
	assert.Equal(t, 3*time.Second, cfg.Oracles.Scorer.Timeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Oracles.Scorer.RetryInitial)
	assert.Equal(t, 2, cfg.Oracles.Scorer.RetryMaxAttempts)
	assert.Equal(t, 10*time.Second, cfg.Oracles.Analyst.Timeout)
	assert.Equal(t, 2048, cfg.Oracles.Analyst.MaxTokens)
	assert.Equal(t, 1, cfg.Oracles.Analyst.Retries)
}

func TestLoadActionsYAML(t *testing.T) {
	configDir := t.TempDir()

	config := `
effector_timeout: "8s"
actions:
  - source: "aws.guardduty"
    kind_prefix: "UnauthorizedAccess:"
    action: "DISABLE_CREDENTIAL"
  - source: "aws.securityhub"
    kind_prefix: ""
    action: "NONE"
`
	err := os.WriteFile(filepath.Join(configDir, "actions.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	loader := &configLoader{configDir: configDir}
	actionsConfig, err := loader.loadActionsYAML()

	require.NoError(t, err)
	assert.Equal(t, "8s", actionsConfig.EffectorTimeout)
	require.Len(t, actionsConfig.Actions, 2)
	assert.Equal(t, ActionDisableCredential, actionsConfig.Actions[0].Action)
}

func TestLoadActionsYAMLMissingFile(t *testing.T) {
	configDir := t.TempDir()

	loader := &configLoader{configDir: configDir}
	actionsConfig, err := loader.loadActionsYAML()

	// Missing table is not an error: every finding maps to NONE
	require.NoError(t, err)
	assert.Empty(t, actionsConfig.Actions)
}

func TestEnvironmentVariableInterpolationInConfig(t *testing.T) {
	configDir := t.TempDir()

	config := `
oracles:
  scorer:
    endpoint: "{{.SCORER_ENDPOINT}}"
  analyst:
    model: "claude-sonnet-4-5"
`
	err := os.WriteFile(filepath.Join(configDir, "argus.yaml"), []byte(config), 0644)
	require.NoError(t, err)

	t.Setenv("SCORER_ENDPOINT", "http://scorer.internal:8500/v1/score")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "http://scorer.internal:8500/v1/score", cfg.Oracles.Scorer.Endpoint)
}

// Helper function to set up test config directory
func setupTestConfigDir(t *testing.T) string {
	dir := t.TempDir()

	// Create minimal valid argus.yaml
	argusYAML := `
system:
  dashboard_url: "http://localhost:5173"

oracles:
  scorer:
    endpoint: "http://localhost:8500/v1/score"
  analyst:
    model: "claude-sonnet-4-5"
`
	err := os.WriteFile(filepath.Join(dir, "argus.yaml"), []byte(argusYAML), 0644)
	require.NoError(t, err)

	// Create minimal valid actions.yaml
	actionsYAML := `
actions:
  - source: "aws.guardduty"
    kind_prefix: "UnauthorizedAccess:"
    action: "DISABLE_CREDENTIAL"
  - source: "aws.guardduty"
    kind_prefix: "Recon:"
    action: "BLOCK_ADDRESS"
`
	err = os.WriteFile(filepath.Join(dir, "actions.yaml"), []byte(actionsYAML), 0644)
	require.NoError(t, err)

	return dir
}

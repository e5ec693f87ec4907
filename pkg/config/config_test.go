package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Literal values of models.SourceGuardDuty / models.SourceSecurityHub;
// importing pkg/models here would create an import cycle in tests.
const (
	sourceGuardDuty   = "aws.guardduty"
	sourceSecurityHub = "aws.securityhub"
)

// TestConfigConvenienceMethods tests the convenience methods on Config
func TestConfigConvenienceMethods(t *testing.T) {
	cfg := &Config{
		configDir: "/test/config",
		Remediation: &RemediationConfig{
			Actions: []ActionRule{
				{Source: sourceGuardDuty, KindPrefix: "UnauthorizedAccess", Action: ActionDisableCredential},
				{Source: sourceGuardDuty, KindPrefix: "UnauthorizedAccess:EC2", Action: ActionQuarantineInstance},
			},
		},
	}

	t.Run("ConfigDir", func(t *testing.T) {
		assert.Equal(t, "/test/config", cfg.ConfigDir())
	})

	t.Run("ActionFor longest prefix wins", func(t *testing.T) {
		action := cfg.ActionFor(sourceGuardDuty, "UnauthorizedAccess:EC2/SSHBruteForce")
		assert.Equal(t, ActionQuarantineInstance, action)
	})

	t.Run("ActionFor shorter prefix", func(t *testing.T) {
		action := cfg.ActionFor(sourceGuardDuty, "UnauthorizedAccess:IAMUser/TorIPCaller")
		assert.Equal(t, ActionDisableCredential, action)
	})

	t.Run("ActionFor unmapped kind", func(t *testing.T) {
		action := cfg.ActionFor(sourceGuardDuty, "Recon:IAMUser/MaliciousIPCaller")
		assert.Equal(t, ActionNone, action)
	})

	t.Run("ActionFor wrong source", func(t *testing.T) {
		action := cfg.ActionFor(sourceSecurityHub, "UnauthorizedAccess:EC2/SSHBruteForce")
		assert.Equal(t, ActionNone, action)
	})
}

func TestConfigStats(t *testing.T) {
	cfg := &Config{
		Pipeline: &PipelineConfig{BusCapacity: 256, MaxConcurrentEvents: 8},
		Triage:   &TriageConfig{ActionPolicy: PolicyNotifyOnly},
		Remediation: &RemediationConfig{
			Actions: []ActionRule{
				{Source: sourceGuardDuty, KindPrefix: "UnauthorizedAccess", Action: ActionDisableCredential},
			},
		},
		Defaults: &Defaults{Masking: &MaskingDefaults{Enabled: true}},
	}

	stats := cfg.Stats()
	assert.Equal(t, 1, stats.ActionRules)
	assert.Equal(t, PolicyNotifyOnly, stats.ActionPolicy)
	assert.Equal(t, 256, stats.BusCapacity)
	assert.Equal(t, 8, stats.Workers)
	assert.True(t, stats.MaskingEnabled)

	// Sections may be absent; stats never panics on a partial config.
	empty := (&Config{}).Stats()
	assert.Equal(t, 0, empty.ActionRules)
	assert.Equal(t, 0, empty.BusCapacity)
}

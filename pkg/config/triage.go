package config

// TriageConfig contains the decision thresholds the orchestrator gates on.
// Both gates compare strictly: an event sitting exactly on a threshold does
// not cross it.
type TriageConfig struct {
	// WarnThreshold is the priority above which deep analysis runs and a
	// notification is sent.
	WarnThreshold float64 `yaml:"warn_threshold"`

	// RemediateThreshold is the priority above which remediation is
	// considered. Must be strictly greater than WarnThreshold.
	RemediateThreshold float64 `yaml:"remediate_threshold"`

	// HumanReviewThreshold is the priority above which a stored threat is
	// flagged for human review.
	HumanReviewThreshold float64 `yaml:"human_review_threshold"`

	// ActionPolicy is the initial remediation policy. The live value is
	// held by a PolicyStore and may be changed at runtime.
	ActionPolicy ActionPolicy `yaml:"action_policy"`
}

// DefaultTriageConfig returns the built-in triage defaults. Remediation
// defaults to NOTIFY_ONLY: executing actions against infrastructure is an
// explicit operator choice.
func DefaultTriageConfig() *TriageConfig {
	return &TriageConfig{
		WarnThreshold:        70,
		RemediateThreshold:   90,
		HumanReviewThreshold: 80,
		ActionPolicy:         PolicyNotifyOnly,
	}
}

package config

import (
	"strings"
	"time"
)

// ActionRule maps findings to an effector action by source tag and kind
// prefix. An empty KindPrefix matches every kind from the source.
type ActionRule struct {
	Source     string     `yaml:"source"`
	KindPrefix string     `yaml:"kind_prefix"`
	Action     ActionKind `yaml:"action"`
}

// RemediationConfig holds the action table and effector limits.
type RemediationConfig struct {
	// Endpoint is the automation runner URL mutating actions are posted
	// to. Empty means no effector is wired: mutating actions fail and the
	// failure is surfaced through notification.
	Endpoint string

	// EffectorTimeout bounds a single effector invocation (default: 10s).
	EffectorTimeout time.Duration

	// Actions is the routing table. Order does not matter; the longest
	// matching prefix wins.
	Actions []ActionRule
}

// DefaultRemediationConfig returns an empty action table: with no rules
// every event maps to NONE and remediation is skipped.
func DefaultRemediationConfig() *RemediationConfig {
	return &RemediationConfig{
		EffectorTimeout: 10 * time.Second,
	}
}

// ActionFor returns the configured action for a finding. Rules match on
// exact source and kind prefix; when several prefixes match, the longest
// wins. A miss returns ActionNone: the pipeline never invents an action
// for an unmapped finding.
func (c *RemediationConfig) ActionFor(source, kind string) ActionKind {
	best := ActionNone
	bestLen := -1
	for _, r := range c.Actions {
		if r.Source != source {
			continue
		}
		if !strings.HasPrefix(kind, r.KindPrefix) {
			continue
		}
		if len(r.KindPrefix) > bestLen {
			best = r.Action
			bestLen = len(r.KindPrefix)
		}
	}
	return best
}

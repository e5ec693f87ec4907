// Package triage blends the ML verdict, severity band and source context
// into a deterministic priority score. The weights are fixed constants:
// changing them is a redeploy, not a config edit, so every environment
// scores identically.
package triage

import (
	"strings"
	"time"

	"github.com/argus-soc/argus/pkg/config"
	"github.com/argus-soc/argus/pkg/models"
)

const (
	threatWeight = 0.6
	kindBoost    = 1.3
)

var severityWeights = map[models.SeverityBand]float64{
	models.SeverityLow:      10,
	models.SeverityMedium:   20,
	models.SeverityHigh:     30,
	models.SeverityCritical: 40,
}

// Source trust multipliers. Sources not listed score at 1.0.
var sourceWeights = map[string]float64{
	models.SourceGuardDuty:   1.2,
	models.SourceSecurityHub: 1.1,
}

// Kinds containing any of these tokens get the boost multiplier. The token
// list mirrors the finding families that historically preceded incidents.
var boostTokens = []string{"UnauthorizedAccess", "Recon", "Trojan", "Finding"}

// Recommended action playbooks per priority band, most urgent first.
var recommendedActions = map[models.SeverityBand][]string{
	models.SeverityCritical: {"IMMEDIATE_ISOLATION", "DISABLE_CREDENTIALS", "NOTIFY_SECURITY_TEAM"},
	models.SeverityHigh:     {"INVESTIGATE", "MONITOR_CLOSELY", "NOTIFY_SECURITY_TEAM"},
	models.SeverityMedium:   {"LOG_AND_MONITOR", "SCHEDULE_REVIEW"},
	models.SeverityLow:      {"LOG_ONLY"},
}

// Engine computes triage results. Only the human-review threshold comes
// from config; the scoring weights are constants above.
type Engine struct {
	cfg *config.TriageConfig
}

// NewEngine creates a triage engine.
func NewEngine(cfg *config.TriageConfig) *Engine {
	if cfg == nil {
		panic("NewEngine: cfg must not be nil")
	}
	return &Engine{cfg: cfg}
}

// Evaluate computes the priority for one scored event:
//
//	base     = threat_score*0.6 + severity_weight
//	adjusted = base * source_weight * kind_boost
//	priority = clamp(adjusted, 0, 100)
//
// A nil or degraded verdict contributes a zero threat score; triage never
// fails, it only scores with what it has.
func (e *Engine) Evaluate(event *models.NormalizedEvent, ml *models.MLVerdict) *models.TriageResult {
	var threatScore float64
	if ml != nil {
		threatScore = ml.ThreatScore
	}

	sevWeight, ok := severityWeights[event.Severity]
	if !ok {
		sevWeight = severityWeights[models.SeverityLow]
	}

	srcWeight, ok := sourceWeights[event.Source]
	if !ok {
		srcWeight = 1.0
	}

	boosted := kindIsBoosted(event.Kind)

	base := threatScore*threatWeight + sevWeight
	adjusted := base * srcWeight
	if boosted {
		adjusted *= kindBoost
	}
	priority := clamp(adjusted, 0, 100)

	band := bandForPriority(priority)

	return &models.TriageResult{
		Priority:            priority,
		Band:                band,
		BaseScore:           base,
		SourceWeight:        srcWeight,
		KindBoosted:         boosted,
		RecommendedActions:  append([]string(nil), recommendedActions[band]...),
		RequiresHumanReview: priority > e.cfg.HumanReviewThreshold,
		TriagedAt:           time.Now().UTC(),
	}
}

func kindIsBoosted(kind string) bool {
	for _, token := range boostTokens {
		if strings.Contains(kind, token) {
			return true
		}
	}
	return false
}

func bandForPriority(priority float64) models.SeverityBand {
	switch {
	case priority >= 90:
		return models.SeverityCritical
	case priority >= 70:
		return models.SeverityHigh
	case priority >= 40:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

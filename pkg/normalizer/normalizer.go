// Package normalizer converts detector-specific findings into the canonical
// event shape the rest of the pipeline consumes. Normalization is a pure
// function of (payload, source tag, mapping table); the only side effects
// are metric counters.
package normalizer

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/argus-soc/argus/pkg/metrics"
	"github.com/argus-soc/argus/pkg/models"
)

// envelope is the EventBridge-style wrapper both reference detectors emit.
// Detector-specific content stays inside Detail untouched.
type envelope struct {
	ID         string         `json:"id"`
	Time       string         `json:"time"`
	Source     string         `json:"source"`
	Account    string         `json:"account"`
	Region     string         `json:"region"`
	DetailType string         `json:"detail-type"`
	Detail     map[string]any `json:"detail"`
}

// severityScale holds the band cutoffs for one detector's native scale.
// Scores below the medium cutoff are LOW.
type severityScale struct {
	critical float64
	high     float64
	medium   float64
}

// Native severity scales per source. GuardDuty scores findings 0-10,
// Security Hub normalizes to 0-100. Sources not listed here band to MEDIUM.
var severityScales = map[string]severityScale{
	models.SourceGuardDuty:   {critical: 7, high: 4, medium: 1},
	models.SourceSecurityHub: {critical: 70, high: 40, medium: 1},
}

// Normalizer turns raw findings into canonical events.
type Normalizer struct {
	metrics *metrics.PipelineMetrics
}

// NewNormalizer creates a Normalizer. metrics may be nil in tests.
func NewNormalizer(m *metrics.PipelineMetrics) *Normalizer {
	return &Normalizer{metrics: m}
}

// Normalize parses one raw finding into a canonical event. It fails with a
// MalformedSource classification when the envelope fields every event needs
// (id, time, account, region, kind) cannot be extracted. A missing or
// unparseable native severity does not fail normalization; the event bands
// to MEDIUM and a warning counter increments.
func (n *Normalizer) Normalize(raw models.RawFinding) (*models.NormalizedEvent, error) {
	var env envelope
	if err := json.Unmarshal(raw.Payload, &env); err != nil {
		return nil, models.Classify(models.FailureMalformedSource, fmt.Errorf("finding is not a JSON envelope: %w", err))
	}

	if env.ID == "" {
		return nil, models.Classify(models.FailureMalformedSource, fmt.Errorf("finding missing required field \"id\""))
	}
	if env.Time == "" {
		return nil, models.Classify(models.FailureMalformedSource, fmt.Errorf("finding missing required field \"time\""))
	}
	if env.Account == "" {
		return nil, models.Classify(models.FailureMalformedSource, fmt.Errorf("finding missing required field \"account\""))
	}
	if env.Region == "" {
		return nil, models.Classify(models.FailureMalformedSource, fmt.Errorf("finding missing required field \"region\""))
	}
	if env.DetailType == "" {
		return nil, models.Classify(models.FailureMalformedSource, fmt.Errorf("finding missing required field \"detail-type\""))
	}

	observedAt, err := time.Parse(time.RFC3339Nano, env.Time)
	if err != nil {
		return nil, models.Classify(models.FailureMalformedSource, fmt.Errorf("finding time %q is not RFC 3339: %w", env.Time, err))
	}

	receivedAt := raw.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = time.Now().UTC()
	}

	band, rawSeverity := n.extractSeverity(raw.SourceTag, env.ID, env.Detail)
	resourceType, resourceID := extractResource(raw.SourceTag, env.Detail)

	return &models.NormalizedEvent{
		EventID:      env.ID,
		Source:       raw.SourceTag,
		AccountID:    env.Account,
		Region:       env.Region,
		Kind:         env.DetailType,
		Severity:     band,
		RawSeverity:  rawSeverity,
		ObservedAt:   observedAt.UTC(),
		ReceivedAt:   receivedAt.UTC(),
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      env.Detail,
	}, nil
}

// extractSeverity maps the detector-native severity number onto the band
// ladder. Unknown sources band to MEDIUM without a warning; known sources
// missing their native field band to MEDIUM with one.
func (n *Normalizer) extractSeverity(source, eventID string, detail map[string]any) (models.SeverityBand, *float64) {
	scale, known := severityScales[source]
	if !known {
		return models.SeverityMedium, nil
	}

	score, found := nativeSeverity(source, detail)
	if !found {
		slog.Warn("Finding has no native severity, defaulting to MEDIUM",
			"source", source,
			"event_id", eventID)
		n.metrics.RecordSeverityMissing(source)
		return models.SeverityMedium, nil
	}

	return bandFromScore(score, scale), &score
}

func bandFromScore(score float64, scale severityScale) models.SeverityBand {
	switch {
	case score >= scale.critical:
		return models.SeverityCritical
	case score >= scale.high:
		return models.SeverityHigh
	case score >= scale.medium:
		return models.SeverityMedium
	default:
		return models.SeverityLow
	}
}

// nativeSeverity digs the severity number out of the detector payload.
// GuardDuty carries a top-level "severity"; Security Hub nests
// Severity.Normalized inside each finding, usually under a "findings" array.
func nativeSeverity(source string, detail map[string]any) (float64, bool) {
	if detail == nil {
		return 0, false
	}

	switch source {
	case models.SourceGuardDuty:
		score, ok := detail["severity"].(float64)
		return score, ok

	case models.SourceSecurityHub:
		target := detail
		if first, ok := firstFinding(detail); ok {
			target = first
		}
		sev, ok := target["Severity"].(map[string]any)
		if !ok {
			return 0, false
		}
		score, ok := sev["Normalized"].(float64)
		return score, ok
	}

	return 0, false
}

// firstFinding unwraps the "findings" array Security Hub events arrive in.
// Events that carry the finding fields directly pass through unchanged.
func firstFinding(detail map[string]any) (map[string]any, bool) {
	findings, ok := detail["findings"].([]any)
	if !ok || len(findings) == 0 {
		return nil, false
	}
	first, ok := findings[0].(map[string]any)
	return first, ok
}

// extractResource pulls the affected resource out of the payload when the
// detector names one. Best effort; events without a recognizable resource
// keep empty fields.
func extractResource(source string, detail map[string]any) (resourceType, resourceID string) {
	if detail == nil {
		return "", ""
	}

	switch source {
	case models.SourceGuardDuty:
		resource, ok := detail["resource"].(map[string]any)
		if !ok {
			return "", ""
		}
		resourceType, _ = resource["resourceType"].(string)
		if instance, ok := resource["instanceDetails"].(map[string]any); ok {
			resourceID, _ = instance["instanceId"].(string)
		} else if key, ok := resource["accessKeyDetails"].(map[string]any); ok {
			resourceID, _ = key["accessKeyId"].(string)
		}
		return resourceType, resourceID

	case models.SourceSecurityHub:
		target := detail
		if first, ok := firstFinding(detail); ok {
			target = first
		}
		resources, ok := target["Resources"].([]any)
		if !ok || len(resources) == 0 {
			return "", ""
		}
		first, ok := resources[0].(map[string]any)
		if !ok {
			return "", ""
		}
		resourceType, _ = first["Type"].(string)
		resourceID, _ = first["Id"].(string)
		return resourceType, resourceID
	}

	return "", ""
}

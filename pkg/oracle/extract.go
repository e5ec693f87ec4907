package oracle

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/argus-soc/argus/pkg/models"
)

// errParseFailed marks analyst responses that contained no usable report.
// Callers pick the degradation marker off this sentinel.
var errParseFailed = errors.New("no parseable analysis in response")

// analysisWire is the JSON shape the analyst is instructed to produce.
// risk_score arrives as a number (models are asked for an integer 0-10)
// and stays float64 from here on; coercing it to int is what previously
// truncated scores in the store.
type analysisWire struct {
	RiskScore          float64  `json:"risk_score"`
	AttackVector       string   `json:"attack_vector"`
	RecommendedActions []string `json:"recommended_actions"`
	BusinessImpact     string   `json:"business_impact"`
	Confidence         float64  `json:"confidence"`
	Summary            string   `json:"summary"`
}

// parseAnalysisReport turns raw model output into an AnalysisReport.
// Tolerates markdown fences and prose around the JSON object.
func parseAnalysisReport(raw string) (*models.AnalysisReport, error) {
	obj, err := extractJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errParseFailed, err)
	}
	var wire analysisWire
	if err := json.Unmarshal([]byte(obj), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", errParseFailed, err)
	}

	report := &models.AnalysisReport{
		RiskScore:          clamp(wire.RiskScore, 0, 10),
		AttackVector:       wire.AttackVector,
		RecommendedActions: wire.RecommendedActions,
		BusinessImpact:     wire.BusinessImpact,
		Confidence:         clamp(wire.Confidence, 0, 1),
		Summary:            wire.Summary,
		AnalyzedAt:         time.Now(),
	}
	if report.AttackVector == "" {
		report.AttackVector = "unknown"
	}
	if report.RecommendedActions == nil {
		report.RecommendedActions = []string{}
	}
	return report, nil
}

// extractJSONObject returns the first balanced JSON object in s. Models
// wrap answers in ```json fences or lead with prose often enough that
// strict unmarshalling of the whole response is a losing game.
func extractJSONObject(s string) (string, error) {
	s = stripFences(s)

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", errors.New("no JSON object found")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
			// Braces inside strings don't count.
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", errors.New("unbalanced JSON object")
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, leaving the inner text.
func stripFences(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	// Drop the opening fence line (``` or ```json).
	if idx := strings.IndexByte(trimmed, '\n'); idx >= 0 {
		trimmed = trimmed[idx+1:]
	} else {
		return trimmed
	}
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
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

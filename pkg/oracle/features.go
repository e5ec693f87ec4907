package oracle

import (
	"encoding/json"

	"github.com/argus-soc/argus/pkg/models"
)

// FeatureVector is the fixed input to the threat scorer. The field list is
// part of the feature version: adding, removing or reordering a feature
// requires a new version tag so the scorer can reject stale payloads.
type FeatureVector struct {
	APICallCount       float64 `json:"api_call_count"`
	ErrorRate          float64 `json:"error_rate"`
	SourceIPReputation float64 `json:"source_ip_reputation"`
	TimeOfDay          float64 `json:"time_of_day"`
	UserHistoryScore   float64 `json:"user_history_score"`
}

// ExtractFeatures maps a normalized event onto the feature vector. Missing
// detail fields fall back to neutral defaults rather than failing: the
// scorer is expected to cope with partial evidence, the pipeline is not
// expected to drop events over it.
func ExtractFeatures(event *models.NormalizedEvent) FeatureVector {
	fv := FeatureVector{
		APICallCount:       detailNumber(event.Details, "apiCallCount", 1),
		SourceIPReputation: detailNumber(event.Details, "ipReputation", 0.5),
		TimeOfDay:          float64(event.ObservedAt.UTC().Hour()),
		UserHistoryScore:   detailNumber(event.Details, "userHistoryScore", 0.7),
	}
	// Any error code at all counts as a failed call, matching the upstream
	// CloudTrail convention where the field is absent on success.
	if v, ok := event.Details["errorCode"]; ok && v != nil {
		fv.ErrorRate = 1
	}
	return fv
}

// detailNumber reads a numeric detail field, tolerating the types JSON
// decoding and tests actually produce.
func detailNumber(details map[string]any, key string, fallback float64) float64 {
	v, ok := details[key]
	if !ok || v == nil {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return fallback
}

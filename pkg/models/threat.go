package models

import (
	"encoding/json"
	"time"

	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/pkg/config"
)

// SubmitFindingRequest is the ingress payload: one raw detector finding
// plus the source tag it should be normalized under.
type SubmitFindingRequest struct {
	Source  string          `json:"source" binding:"required"`
	Finding json.RawMessage `json:"finding" binding:"required"`
}

// SubmitFindingResponse reports the synchronous accept/reject decision.
// Reason is a FailureClass name and is only set on rejection.
type SubmitFindingResponse struct {
	Accepted bool   `json:"accepted"`
	EventID  string `json:"event_id,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// ThreatFilters contains filtering options for listing stored threats
type ThreatFilters struct {
	Status         string     `json:"status,omitempty"`
	Severity       string     `json:"severity,omitempty"`
	Band           string     `json:"band,omitempty"`
	Source         string     `json:"source,omitempty"`
	AccountID      string     `json:"account_id,omitempty"`
	MinPriority    *float64   `json:"min_priority,omitempty"`
	ObservedAfter  *time.Time `json:"observed_after,omitempty"`
	ObservedBefore *time.Time `json:"observed_before,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
}

// ThreatResponse wraps a stored ThreatRecord. Analyzed reports whether a
// deep analysis envelope is attached; records that never crossed the warn
// gate render analyzed: false rather than erroring.
type ThreatResponse struct {
	*ent.ThreatRecord
	Analyzed bool `json:"analyzed"`
}

// ThreatListResponse contains a paginated threat list ordered by priority
type ThreatListResponse struct {
	Threats    []*ThreatResponse `json:"threats"`
	TotalCount int               `json:"total_count"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
}

// ThreatStatsResponse mirrors the dashboard counters.
type ThreatStatsResponse struct {
	TotalThreats        int            `json:"total_threats"`
	BySeverity          map[string]int `json:"by_severity"`
	ByStatus            map[string]int `json:"by_status"`
	AutoRemediated      int            `json:"auto_remediated"`
	HumanReviewRequired int            `json:"human_review_required"`
	DeadLettered        int            `json:"dead_lettered"`
}

// LatencyQuantiles reports per-stage latency percentiles in milliseconds.
type LatencyQuantiles struct {
	P50 float64 `json:"p50_ms"`
	P95 float64 `json:"p95_ms"`
	P99 float64 `json:"p99_ms"`
}

// HealthResponse is the health surface: readiness plus queue depths and
// stage latency quantiles.
type HealthResponse struct {
	Ready          bool                        `json:"ready"`
	InFlight       int64                       `json:"in_flight"`
	BusDepth       int64                       `json:"bus_depth"`
	DLQDepth       int64                       `json:"dlq_depth"`
	StageLatencies map[string]LatencyQuantiles `json:"stage_latencies"`
}

// PolicyResponse reports the live action policy.
type PolicyResponse struct {
	ActionPolicy config.ActionPolicy `json:"action_policy"`
}

// UpdatePolicyRequest switches the live action policy.
type UpdatePolicyRequest struct {
	ActionPolicy config.ActionPolicy `json:"action_policy" binding:"required"`
}

// DLQListResponse contains the current dead letter entries.
type DLQListResponse struct {
	Entries []DeadLetter `json:"entries"`
	Total   int          `json:"total"`
}

// ReplayResponse reports how many journaled records were written back to
// the database and how many stayed journaled for the next attempt.
type ReplayResponse struct {
	Replayed  int `json:"replayed"`
	Remaining int `json:"remaining"`
}

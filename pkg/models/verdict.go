package models

import (
	"time"

	"github.com/argus-soc/argus/pkg/config"
)

// MLVerdict is the scorer's verdict for one event. A zero score with Error
// set means the scorer was unreachable and the pipeline degraded rather
// than stalled.
type MLVerdict struct {
	ThreatScore    float64   `json:"threat_score"`
	Confidence     float64   `json:"confidence"`
	ModelVersion   string    `json:"model_version,omitempty"`
	FeatureVersion string    `json:"feature_version,omitempty"`
	ScoredAt       time.Time `json:"scored_at"`
	Error          string    `json:"error,omitempty"`
}

// TriageResult carries the deterministic priority computation and the
// operator-facing recommendations derived from it.
type TriageResult struct {
	Priority            float64      `json:"priority"`
	Band                SeverityBand `json:"band"`
	BaseScore           float64      `json:"base_score"`
	SourceWeight        float64      `json:"source_weight"`
	KindBoosted         bool         `json:"kind_boosted"`
	RecommendedActions  []string     `json:"recommended_actions,omitempty"`
	RequiresHumanReview bool         `json:"requires_human_review"`
	TriagedAt           time.Time    `json:"triaged_at"`
}

// Analysis error markers recorded when deep analysis degrades instead of
// blocking the event.
const (
	AnalysisErrorTimeout     = "timeout"
	AnalysisErrorParseFailed = "parse_failed"
)

// AnalysisReport is the deep-analysis verdict. Degraded reports carry
// zeroed scores, AttackVector "unknown" and a non-empty Error.
type AnalysisReport struct {
	RiskScore          float64   `json:"risk_score"`
	AttackVector       string    `json:"attack_vector"`
	RecommendedActions []string  `json:"recommended_actions"`
	BusinessImpact     string    `json:"business_impact,omitempty"`
	Confidence         float64   `json:"confidence"`
	Summary            string    `json:"summary,omitempty"`
	AnalyzedAt         time.Time `json:"analyzed_at"`
	Error              string    `json:"error,omitempty"`
}

// RemediationStatus is the terminal state of one remediation attempt chain.
type RemediationStatus string

const (
	RemediationSucceeded RemediationStatus = "SUCCEEDED"
	RemediationFailed    RemediationStatus = "FAILED"
	RemediationSkipped   RemediationStatus = "SKIPPED"
)

// RemediationOutcome records what the effector did, or why it declined.
type RemediationOutcome struct {
	Action      config.ActionKind `json:"action"`
	Status      RemediationStatus `json:"status"`
	Attempts    int               `json:"attempts"`
	Error       string            `json:"error,omitempty"`
	CompletedAt time.Time         `json:"completed_at"`
}

// ThreatStatus is the stored disposition of an event.
type ThreatStatus string

const (
	StatusStoredOnly   ThreatStatus = "STORED_ONLY"
	StatusNotified     ThreatStatus = "NOTIFIED"
	StatusRemediated   ThreatStatus = "REMEDIATED"
	StatusDeadLettered ThreatStatus = "DEAD_LETTERED"
)

// statusRank orders the ladder statuses. DEAD_LETTERED sits outside the
// ladder and is handled explicitly by MergeStatus.
var statusRank = map[ThreatStatus]int{
	StatusStoredOnly: 1,
	StatusNotified:   2,
	StatusRemediated: 3,
}

// MergeStatus resolves the status of a record that is written more than
// once. Within the ladder the higher status wins, so out-of-order writes
// never walk a record backwards. DEAD_LETTERED overwrites any ladder status
// and is itself overwritten only by a later processing outcome, which is
// how a replayed event sheds its dead-letter disposition.
func MergeStatus(current, incoming ThreatStatus) ThreatStatus {
	if incoming == "" {
		return current
	}
	if current == "" {
		return incoming
	}
	if incoming == StatusDeadLettered || current == StatusDeadLettered {
		return incoming
	}
	if statusRank[incoming] > statusRank[current] {
		return incoming
	}
	return current
}

// Enrichment accumulates per-stage verdicts for one event as it moves down
// the pipeline. Stages only add fields; nothing here is ever cleared.
type Enrichment struct {
	ML          *MLVerdict          `json:"ml,omitempty"`
	Triage      *TriageResult       `json:"triage,omitempty"`
	Analysis    *AnalysisReport     `json:"analysis,omitempty"`
	Remediation *RemediationOutcome `json:"remediation,omitempty"`
	NotifiedAt  *time.Time          `json:"notified_at,omitempty"`
	Status      ThreatStatus        `json:"status,omitempty"`
}

// Threat is a normalized event plus everything the pipeline has learned
// about it: the unit the store persists and the APIs serve.
type Threat struct {
	NormalizedEvent
	Enrichment
}

// Alert is the payload handed to notification channels.
type Alert struct {
	EventID           string       `json:"event_id"`
	Source            string       `json:"source"`
	Kind              string       `json:"kind"`
	Severity          SeverityBand `json:"severity"`
	Band              SeverityBand `json:"band"`
	Priority          float64      `json:"priority"`
	ThreatScore       float64      `json:"threat_score"`
	RiskScore         *float64     `json:"risk_score,omitempty"`
	Summary           string       `json:"summary"`
	RecordKey         string       `json:"record_key"`
	RemediationFailed bool         `json:"remediation_failed"`
}

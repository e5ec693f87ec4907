// Code generated by ent, DO NOT EDIT.

package threatrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the threatrecord type in the database.
	Label = "threat_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "record_id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldObservedAt holds the string denoting the observed_at field in the database.
	FieldObservedAt = "observed_at"
	// FieldReceivedAt holds the string denoting the received_at field in the database.
	FieldReceivedAt = "received_at"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldAccountID holds the string denoting the account_id field in the database.
	FieldAccountID = "account_id"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldRawSeverity holds the string denoting the raw_severity field in the database.
	FieldRawSeverity = "raw_severity"
	// FieldResourceType holds the string denoting the resource_type field in the database.
	FieldResourceType = "resource_type"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldDetails holds the string denoting the details field in the database.
	FieldDetails = "details"
	// FieldMlThreatScore holds the string denoting the ml_threat_score field in the database.
	FieldMlThreatScore = "ml_threat_score"
	// FieldMlConfidence holds the string denoting the ml_confidence field in the database.
	FieldMlConfidence = "ml_confidence"
	// FieldMlModelVersion holds the string denoting the ml_model_version field in the database.
	FieldMlModelVersion = "ml_model_version"
	// FieldMlFeatureVersion holds the string denoting the ml_feature_version field in the database.
	FieldMlFeatureVersion = "ml_feature_version"
	// FieldMlError holds the string denoting the ml_error field in the database.
	FieldMlError = "ml_error"
	// FieldTriagePriority holds the string denoting the triage_priority field in the database.
	FieldTriagePriority = "triage_priority"
	// FieldTriageBand holds the string denoting the triage_band field in the database.
	FieldTriageBand = "triage_band"
	// FieldRecommendedActions holds the string denoting the recommended_actions field in the database.
	FieldRecommendedActions = "recommended_actions"
	// FieldRequiresHumanReview holds the string denoting the requires_human_review field in the database.
	FieldRequiresHumanReview = "requires_human_review"
	// FieldAnalysisRiskScore holds the string denoting the analysis_risk_score field in the database.
	FieldAnalysisRiskScore = "analysis_risk_score"
	// FieldAnalysisAttackVector holds the string denoting the analysis_attack_vector field in the database.
	FieldAnalysisAttackVector = "analysis_attack_vector"
	// FieldAnalysisConfidence holds the string denoting the analysis_confidence field in the database.
	FieldAnalysisConfidence = "analysis_confidence"
	// FieldAnalysisBusinessImpact holds the string denoting the analysis_business_impact field in the database.
	FieldAnalysisBusinessImpact = "analysis_business_impact"
	// FieldAnalysisSummary holds the string denoting the analysis_summary field in the database.
	FieldAnalysisSummary = "analysis_summary"
	// FieldAnalysisError holds the string denoting the analysis_error field in the database.
	FieldAnalysisError = "analysis_error"
	// FieldRemediationAction holds the string denoting the remediation_action field in the database.
	FieldRemediationAction = "remediation_action"
	// FieldRemediationStatus holds the string denoting the remediation_status field in the database.
	FieldRemediationStatus = "remediation_status"
	// FieldRemediationAttempts holds the string denoting the remediation_attempts field in the database.
	FieldRemediationAttempts = "remediation_attempts"
	// FieldRemediationError holds the string denoting the remediation_error field in the database.
	FieldRemediationError = "remediation_error"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldNotifiedAt holds the string denoting the notified_at field in the database.
	FieldNotifiedAt = "notified_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the threatrecord in the database.
	Table = "threat_records"
)

// Columns holds all SQL columns for threatrecord fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldObservedAt,
	FieldReceivedAt,
	FieldSource,
	FieldAccountID,
	FieldRegion,
	FieldKind,
	FieldSeverity,
	FieldRawSeverity,
	FieldResourceType,
	FieldResourceID,
	FieldDetails,
	FieldMlThreatScore,
	FieldMlConfidence,
	FieldMlModelVersion,
	FieldMlFeatureVersion,
	FieldMlError,
	FieldTriagePriority,
	FieldTriageBand,
	FieldRecommendedActions,
	FieldRequiresHumanReview,
	FieldAnalysisRiskScore,
	FieldAnalysisAttackVector,
	FieldAnalysisConfidence,
	FieldAnalysisBusinessImpact,
	FieldAnalysisSummary,
	FieldAnalysisError,
	FieldRemediationAction,
	FieldRemediationStatus,
	FieldRemediationAttempts,
	FieldRemediationError,
	FieldStatus,
	FieldNotifiedAt,
	FieldExpiresAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRequiresHumanReview holds the default value on creation for the "requires_human_review" field.
	DefaultRequiresHumanReview bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Severity defines the type for the "severity" enum field.
type Severity string

// Severity values.
const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityValidator is a validator for the "severity" field enum values. It is called by the builders before save.
func SeverityValidator(s Severity) error {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return nil
	default:
		return fmt.Errorf("threatrecord: invalid enum value for severity field: %q", s)
	}
}

// TriageBand defines the type for the "triage_band" enum field.
type TriageBand string

// TriageBand values.
const (
	TriageBandLow      TriageBand = "LOW"
	TriageBandMedium   TriageBand = "MEDIUM"
	TriageBandHigh     TriageBand = "HIGH"
	TriageBandCritical TriageBand = "CRITICAL"
)

func (tb TriageBand) String() string {
	return string(tb)
}

// TriageBandValidator is a validator for the "triage_band" field enum values. It is called by the builders before save.
func TriageBandValidator(tb TriageBand) error {
	switch tb {
	case TriageBandLow, TriageBandMedium, TriageBandHigh, TriageBandCritical:
		return nil
	default:
		return fmt.Errorf("threatrecord: invalid enum value for triage_band field: %q", tb)
	}
}

// RemediationStatus defines the type for the "remediation_status" enum field.
type RemediationStatus string

// RemediationStatus values.
const (
	RemediationStatusSucceeded RemediationStatus = "SUCCEEDED"
	RemediationStatusFailed    RemediationStatus = "FAILED"
	RemediationStatusSkipped   RemediationStatus = "SKIPPED"
)

func (rs RemediationStatus) String() string {
	return string(rs)
}

// RemediationStatusValidator is a validator for the "remediation_status" field enum values. It is called by the builders before save.
func RemediationStatusValidator(rs RemediationStatus) error {
	switch rs {
	case RemediationStatusSucceeded, RemediationStatusFailed, RemediationStatusSkipped:
		return nil
	default:
		return fmt.Errorf("threatrecord: invalid enum value for remediation_status field: %q", rs)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusStoredOnly is the default value of the Status enum.
const DefaultStatus = StatusStoredOnly

// Status values.
const (
	StatusStoredOnly   Status = "STORED_ONLY"
	StatusNotified     Status = "NOTIFIED"
	StatusRemediated   Status = "REMEDIATED"
	StatusDeadLettered Status = "DEAD_LETTERED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusStoredOnly, StatusNotified, StatusRemediated, StatusDeadLettered:
		return nil
	default:
		return fmt.Errorf("threatrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ThreatRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByObservedAt orders the results by the observed_at field.
func ByObservedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldObservedAt, opts...).ToFunc()
}

// ByReceivedAt orders the results by the received_at field.
func ByReceivedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReceivedAt, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByAccountID orders the results by the account_id field.
func ByAccountID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccountID, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByRawSeverity orders the results by the raw_severity field.
func ByRawSeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawSeverity, opts...).ToFunc()
}

// ByResourceType orders the results by the resource_type field.
func ByResourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceType, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByMlThreatScore orders the results by the ml_threat_score field.
func ByMlThreatScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlThreatScore, opts...).ToFunc()
}

// ByMlConfidence orders the results by the ml_confidence field.
func ByMlConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlConfidence, opts...).ToFunc()
}

// ByMlModelVersion orders the results by the ml_model_version field.
func ByMlModelVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlModelVersion, opts...).ToFunc()
}

// ByMlFeatureVersion orders the results by the ml_feature_version field.
func ByMlFeatureVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlFeatureVersion, opts...).ToFunc()
}

// ByMlError orders the results by the ml_error field.
func ByMlError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMlError, opts...).ToFunc()
}

// ByTriagePriority orders the results by the triage_priority field.
func ByTriagePriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriagePriority, opts...).ToFunc()
}

// ByTriageBand orders the results by the triage_band field.
func ByTriageBand(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriageBand, opts...).ToFunc()
}

// ByRequiresHumanReview orders the results by the requires_human_review field.
func ByRequiresHumanReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequiresHumanReview, opts...).ToFunc()
}

// ByAnalysisRiskScore orders the results by the analysis_risk_score field.
func ByAnalysisRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisRiskScore, opts...).ToFunc()
}

// ByAnalysisAttackVector orders the results by the analysis_attack_vector field.
func ByAnalysisAttackVector(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisAttackVector, opts...).ToFunc()
}

// ByAnalysisConfidence orders the results by the analysis_confidence field.
func ByAnalysisConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisConfidence, opts...).ToFunc()
}

// ByAnalysisBusinessImpact orders the results by the analysis_business_impact field.
func ByAnalysisBusinessImpact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisBusinessImpact, opts...).ToFunc()
}

// ByAnalysisSummary orders the results by the analysis_summary field.
func ByAnalysisSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisSummary, opts...).ToFunc()
}

// ByAnalysisError orders the results by the analysis_error field.
func ByAnalysisError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnalysisError, opts...).ToFunc()
}

// ByRemediationAction orders the results by the remediation_action field.
func ByRemediationAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemediationAction, opts...).ToFunc()
}

// ByRemediationStatus orders the results by the remediation_status field.
func ByRemediationStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemediationStatus, opts...).ToFunc()
}

// ByRemediationAttempts orders the results by the remediation_attempts field.
func ByRemediationAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemediationAttempts, opts...).ToFunc()
}

// ByRemediationError orders the results by the remediation_error field.
func ByRemediationError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRemediationError, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByNotifiedAt orders the results by the notified_at field.
func ByNotifiedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotifiedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

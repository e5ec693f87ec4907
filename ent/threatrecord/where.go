// Code generated by ent, DO NOT EDIT.

package threatrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/argus-soc/argus/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldID, id))
}

// EventID applies equality check predicate on the "event_id" field. It's identical to EventIDEQ.
func EventID(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldEventID, v))
}

// ObservedAt applies equality check predicate on the "observed_at" field. It's identical to ObservedAtEQ.
func ObservedAt(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldObservedAt, v))
}

// ReceivedAt applies equality check predicate on the "received_at" field. It's identical to ReceivedAtEQ.
func ReceivedAt(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldReceivedAt, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldSource, v))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAccountID, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRegion, v))
}

// Kind applies equality check predicate on the "kind" field. It's identical to KindEQ.
func Kind(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldKind, v))
}

// RawSeverity applies equality check predicate on the "raw_severity" field. It's identical to RawSeverityEQ.
func RawSeverity(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRawSeverity, v))
}

// ResourceType applies equality check predicate on the "resource_type" field. It's identical to ResourceTypeEQ.
func ResourceType(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldResourceType, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldResourceID, v))
}

// MlThreatScore applies equality check predicate on the "ml_threat_score" field. It's identical to MlThreatScoreEQ.
func MlThreatScore(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlThreatScore, v))
}

// MlConfidence applies equality check predicate on the "ml_confidence" field. It's identical to MlConfidenceEQ.
func MlConfidence(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlConfidence, v))
}

// MlModelVersion applies equality check predicate on the "ml_model_version" field. It's identical to MlModelVersionEQ.
func MlModelVersion(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlModelVersion, v))
}

// MlFeatureVersion applies equality check predicate on the "ml_feature_version" field. It's identical to MlFeatureVersionEQ.
func MlFeatureVersion(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlFeatureVersion, v))
}

// MlError applies equality check predicate on the "ml_error" field. It's identical to MlErrorEQ.
func MlError(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlError, v))
}

// TriagePriority applies equality check predicate on the "triage_priority" field. It's identical to TriagePriorityEQ.
func TriagePriority(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldTriagePriority, v))
}

// RequiresHumanReview applies equality check predicate on the "requires_human_review" field. It's identical to RequiresHumanReviewEQ.
func RequiresHumanReview(v bool) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRequiresHumanReview, v))
}

// AnalysisRiskScore applies equality check predicate on the "analysis_risk_score" field. It's identical to AnalysisRiskScoreEQ.
func AnalysisRiskScore(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisRiskScore, v))
}

// AnalysisAttackVector applies equality check predicate on the "analysis_attack_vector" field. It's identical to AnalysisAttackVectorEQ.
func AnalysisAttackVector(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisAttackVector, v))
}

// AnalysisConfidence applies equality check predicate on the "analysis_confidence" field. It's identical to AnalysisConfidenceEQ.
func AnalysisConfidence(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisConfidence, v))
}

// AnalysisBusinessImpact applies equality check predicate on the "analysis_business_impact" field. It's identical to AnalysisBusinessImpactEQ.
func AnalysisBusinessImpact(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisBusinessImpact, v))
}

// AnalysisSummary applies equality check predicate on the "analysis_summary" field. It's identical to AnalysisSummaryEQ.
func AnalysisSummary(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisSummary, v))
}

// AnalysisError applies equality check predicate on the "analysis_error" field. It's identical to AnalysisErrorEQ.
func AnalysisError(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisError, v))
}

// RemediationAction applies equality check predicate on the "remediation_action" field. It's identical to RemediationActionEQ.
func RemediationAction(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRemediationAction, v))
}

// RemediationAttempts applies equality check predicate on the "remediation_attempts" field. It's identical to RemediationAttemptsEQ.
func RemediationAttempts(v int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRemediationAttempts, v))
}

// RemediationError applies equality check predicate on the "remediation_error" field. It's identical to RemediationErrorEQ.
func RemediationError(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRemediationError, v))
}

// NotifiedAt applies equality check predicate on the "notified_at" field. It's identical to NotifiedAtEQ.
func NotifiedAt(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldNotifiedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// EventIDEQ applies the EQ predicate on the "event_id" field.
func EventIDEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldEventID, v))
}

// EventIDNEQ applies the NEQ predicate on the "event_id" field.
func EventIDNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldEventID, v))
}

// EventIDIn applies the In predicate on the "event_id" field.
func EventIDIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldEventID, vs...))
}

// EventIDNotIn applies the NotIn predicate on the "event_id" field.
func EventIDNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldEventID, vs...))
}

// EventIDGT applies the GT predicate on the "event_id" field.
func EventIDGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldEventID, v))
}

// EventIDGTE applies the GTE predicate on the "event_id" field.
func EventIDGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldEventID, v))
}

// EventIDLT applies the LT predicate on the "event_id" field.
func EventIDLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldEventID, v))
}

// EventIDLTE applies the LTE predicate on the "event_id" field.
func EventIDLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldEventID, v))
}

// EventIDContains applies the Contains predicate on the "event_id" field.
func EventIDContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldEventID, v))
}

// EventIDHasPrefix applies the HasPrefix predicate on the "event_id" field.
func EventIDHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldEventID, v))
}

// EventIDHasSuffix applies the HasSuffix predicate on the "event_id" field.
func EventIDHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldEventID, v))
}

// EventIDEqualFold applies the EqualFold predicate on the "event_id" field.
func EventIDEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldEventID, v))
}

// EventIDContainsFold applies the ContainsFold predicate on the "event_id" field.
func EventIDContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldEventID, v))
}

// ObservedAtEQ applies the EQ predicate on the "observed_at" field.
func ObservedAtEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldObservedAt, v))
}

// ObservedAtNEQ applies the NEQ predicate on the "observed_at" field.
func ObservedAtNEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldObservedAt, v))
}

// ObservedAtIn applies the In predicate on the "observed_at" field.
func ObservedAtIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldObservedAt, vs...))
}

// ObservedAtNotIn applies the NotIn predicate on the "observed_at" field.
func ObservedAtNotIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldObservedAt, vs...))
}

// ObservedAtGT applies the GT predicate on the "observed_at" field.
func ObservedAtGT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldObservedAt, v))
}

// ObservedAtGTE applies the GTE predicate on the "observed_at" field.
func ObservedAtGTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldObservedAt, v))
}

// ObservedAtLT applies the LT predicate on the "observed_at" field.
func ObservedAtLT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldObservedAt, v))
}

// ObservedAtLTE applies the LTE predicate on the "observed_at" field.
func ObservedAtLTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldObservedAt, v))
}

// ReceivedAtEQ applies the EQ predicate on the "received_at" field.
func ReceivedAtEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldReceivedAt, v))
}

// ReceivedAtNEQ applies the NEQ predicate on the "received_at" field.
func ReceivedAtNEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldReceivedAt, v))
}

// ReceivedAtIn applies the In predicate on the "received_at" field.
func ReceivedAtIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldReceivedAt, vs...))
}

// ReceivedAtNotIn applies the NotIn predicate on the "received_at" field.
func ReceivedAtNotIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldReceivedAt, vs...))
}

// ReceivedAtGT applies the GT predicate on the "received_at" field.
func ReceivedAtGT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldReceivedAt, v))
}

// ReceivedAtGTE applies the GTE predicate on the "received_at" field.
func ReceivedAtGTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldReceivedAt, v))
}

// ReceivedAtLT applies the LT predicate on the "received_at" field.
func ReceivedAtLT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldReceivedAt, v))
}

// ReceivedAtLTE applies the LTE predicate on the "received_at" field.
func ReceivedAtLTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldReceivedAt, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldSource, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldAccountID, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldRegion, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldKind, vs...))
}

// KindGT applies the GT predicate on the "kind" field.
func KindGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldKind, v))
}

// KindGTE applies the GTE predicate on the "kind" field.
func KindGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldKind, v))
}

// KindLT applies the LT predicate on the "kind" field.
func KindLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldKind, v))
}

// KindLTE applies the LTE predicate on the "kind" field.
func KindLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldKind, v))
}

// KindContains applies the Contains predicate on the "kind" field.
func KindContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldKind, v))
}

// KindHasPrefix applies the HasPrefix predicate on the "kind" field.
func KindHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldKind, v))
}

// KindHasSuffix applies the HasSuffix predicate on the "kind" field.
func KindHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldKind, v))
}

// KindEqualFold applies the EqualFold predicate on the "kind" field.
func KindEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldKind, v))
}

// KindContainsFold applies the ContainsFold predicate on the "kind" field.
func KindContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldKind, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldSeverity, vs...))
}

// RawSeverityEQ applies the EQ predicate on the "raw_severity" field.
func RawSeverityEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRawSeverity, v))
}

// RawSeverityNEQ applies the NEQ predicate on the "raw_severity" field.
func RawSeverityNEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldRawSeverity, v))
}

// RawSeverityIn applies the In predicate on the "raw_severity" field.
func RawSeverityIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldRawSeverity, vs...))
}

// RawSeverityNotIn applies the NotIn predicate on the "raw_severity" field.
func RawSeverityNotIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldRawSeverity, vs...))
}

// RawSeverityGT applies the GT predicate on the "raw_severity" field.
func RawSeverityGT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldRawSeverity, v))
}

// RawSeverityGTE applies the GTE predicate on the "raw_severity" field.
func RawSeverityGTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldRawSeverity, v))
}

// RawSeverityLT applies the LT predicate on the "raw_severity" field.
func RawSeverityLT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldRawSeverity, v))
}

// RawSeverityLTE applies the LTE predicate on the "raw_severity" field.
func RawSeverityLTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldRawSeverity, v))
}

// RawSeverityIsNil applies the IsNil predicate on the "raw_severity" field.
func RawSeverityIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldRawSeverity))
}

// RawSeverityNotNil applies the NotNil predicate on the "raw_severity" field.
func RawSeverityNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldRawSeverity))
}

// ResourceTypeEQ applies the EQ predicate on the "resource_type" field.
func ResourceTypeEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldResourceType, v))
}

// ResourceTypeNEQ applies the NEQ predicate on the "resource_type" field.
func ResourceTypeNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldResourceType, v))
}

// ResourceTypeIn applies the In predicate on the "resource_type" field.
func ResourceTypeIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldResourceType, vs...))
}

// ResourceTypeNotIn applies the NotIn predicate on the "resource_type" field.
func ResourceTypeNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldResourceType, vs...))
}

// ResourceTypeGT applies the GT predicate on the "resource_type" field.
func ResourceTypeGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldResourceType, v))
}

// ResourceTypeGTE applies the GTE predicate on the "resource_type" field.
func ResourceTypeGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldResourceType, v))
}

// ResourceTypeLT applies the LT predicate on the "resource_type" field.
func ResourceTypeLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldResourceType, v))
}

// ResourceTypeLTE applies the LTE predicate on the "resource_type" field.
func ResourceTypeLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldResourceType, v))
}

// ResourceTypeContains applies the Contains predicate on the "resource_type" field.
func ResourceTypeContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldResourceType, v))
}

// ResourceTypeHasPrefix applies the HasPrefix predicate on the "resource_type" field.
func ResourceTypeHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldResourceType, v))
}

// ResourceTypeHasSuffix applies the HasSuffix predicate on the "resource_type" field.
func ResourceTypeHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldResourceType, v))
}

// ResourceTypeIsNil applies the IsNil predicate on the "resource_type" field.
func ResourceTypeIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldResourceType))
}

// ResourceTypeNotNil applies the NotNil predicate on the "resource_type" field.
func ResourceTypeNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldResourceType))
}

// ResourceTypeEqualFold applies the EqualFold predicate on the "resource_type" field.
func ResourceTypeEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldResourceType, v))
}

// ResourceTypeContainsFold applies the ContainsFold predicate on the "resource_type" field.
func ResourceTypeContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldResourceType, v))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldResourceID, vs...))
}

// ResourceIDGT applies the GT predicate on the "resource_id" field.
func ResourceIDGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldResourceID, v))
}

// ResourceIDGTE applies the GTE predicate on the "resource_id" field.
func ResourceIDGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldResourceID, v))
}

// ResourceIDLT applies the LT predicate on the "resource_id" field.
func ResourceIDLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldResourceID, v))
}

// ResourceIDLTE applies the LTE predicate on the "resource_id" field.
func ResourceIDLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldResourceID, v))
}

// ResourceIDContains applies the Contains predicate on the "resource_id" field.
func ResourceIDContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldResourceID, v))
}

// ResourceIDHasPrefix applies the HasPrefix predicate on the "resource_id" field.
func ResourceIDHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldResourceID, v))
}

// ResourceIDHasSuffix applies the HasSuffix predicate on the "resource_id" field.
func ResourceIDHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldResourceID, v))
}

// ResourceIDIsNil applies the IsNil predicate on the "resource_id" field.
func ResourceIDIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldResourceID))
}

// ResourceIDNotNil applies the NotNil predicate on the "resource_id" field.
func ResourceIDNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldResourceID))
}

// ResourceIDEqualFold applies the EqualFold predicate on the "resource_id" field.
func ResourceIDEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldResourceID, v))
}

// ResourceIDContainsFold applies the ContainsFold predicate on the "resource_id" field.
func ResourceIDContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldResourceID, v))
}

// DetailsIsNil applies the IsNil predicate on the "details" field.
func DetailsIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldDetails))
}

// DetailsNotNil applies the NotNil predicate on the "details" field.
func DetailsNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldDetails))
}

// MlThreatScoreEQ applies the EQ predicate on the "ml_threat_score" field.
func MlThreatScoreEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlThreatScore, v))
}

// MlThreatScoreNEQ applies the NEQ predicate on the "ml_threat_score" field.
func MlThreatScoreNEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldMlThreatScore, v))
}

// MlThreatScoreIn applies the In predicate on the "ml_threat_score" field.
func MlThreatScoreIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldMlThreatScore, vs...))
}

// MlThreatScoreNotIn applies the NotIn predicate on the "ml_threat_score" field.
func MlThreatScoreNotIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldMlThreatScore, vs...))
}

// MlThreatScoreGT applies the GT predicate on the "ml_threat_score" field.
func MlThreatScoreGT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldMlThreatScore, v))
}

// MlThreatScoreGTE applies the GTE predicate on the "ml_threat_score" field.
func MlThreatScoreGTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldMlThreatScore, v))
}

// MlThreatScoreLT applies the LT predicate on the "ml_threat_score" field.
func MlThreatScoreLT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldMlThreatScore, v))
}

// MlThreatScoreLTE applies the LTE predicate on the "ml_threat_score" field.
func MlThreatScoreLTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldMlThreatScore, v))
}

// MlThreatScoreIsNil applies the IsNil predicate on the "ml_threat_score" field.
func MlThreatScoreIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldMlThreatScore))
}

// MlThreatScoreNotNil applies the NotNil predicate on the "ml_threat_score" field.
func MlThreatScoreNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldMlThreatScore))
}

// MlConfidenceEQ applies the EQ predicate on the "ml_confidence" field.
func MlConfidenceEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlConfidence, v))
}

// MlConfidenceNEQ applies the NEQ predicate on the "ml_confidence" field.
func MlConfidenceNEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldMlConfidence, v))
}

// MlConfidenceIn applies the In predicate on the "ml_confidence" field.
func MlConfidenceIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldMlConfidence, vs...))
}

// MlConfidenceNotIn applies the NotIn predicate on the "ml_confidence" field.
func MlConfidenceNotIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldMlConfidence, vs...))
}

// MlConfidenceGT applies the GT predicate on the "ml_confidence" field.
func MlConfidenceGT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldMlConfidence, v))
}

// MlConfidenceGTE applies the GTE predicate on the "ml_confidence" field.
func MlConfidenceGTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldMlConfidence, v))
}

// MlConfidenceLT applies the LT predicate on the "ml_confidence" field.
func MlConfidenceLT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldMlConfidence, v))
}

// MlConfidenceLTE applies the LTE predicate on the "ml_confidence" field.
func MlConfidenceLTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldMlConfidence, v))
}

// MlConfidenceIsNil applies the IsNil predicate on the "ml_confidence" field.
func MlConfidenceIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldMlConfidence))
}

// MlConfidenceNotNil applies the NotNil predicate on the "ml_confidence" field.
func MlConfidenceNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldMlConfidence))
}

// MlModelVersionEQ applies the EQ predicate on the "ml_model_version" field.
func MlModelVersionEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlModelVersion, v))
}

// MlModelVersionNEQ applies the NEQ predicate on the "ml_model_version" field.
func MlModelVersionNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldMlModelVersion, v))
}

// MlModelVersionIn applies the In predicate on the "ml_model_version" field.
func MlModelVersionIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldMlModelVersion, vs...))
}

// MlModelVersionNotIn applies the NotIn predicate on the "ml_model_version" field.
func MlModelVersionNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldMlModelVersion, vs...))
}

// MlModelVersionGT applies the GT predicate on the "ml_model_version" field.
func MlModelVersionGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldMlModelVersion, v))
}

// MlModelVersionGTE applies the GTE predicate on the "ml_model_version" field.
func MlModelVersionGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldMlModelVersion, v))
}

// MlModelVersionLT applies the LT predicate on the "ml_model_version" field.
func MlModelVersionLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldMlModelVersion, v))
}

// MlModelVersionLTE applies the LTE predicate on the "ml_model_version" field.
func MlModelVersionLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldMlModelVersion, v))
}

// MlModelVersionContains applies the Contains predicate on the "ml_model_version" field.
func MlModelVersionContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldMlModelVersion, v))
}

// MlModelVersionHasPrefix applies the HasPrefix predicate on the "ml_model_version" field.
func MlModelVersionHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldMlModelVersion, v))
}

// MlModelVersionHasSuffix applies the HasSuffix predicate on the "ml_model_version" field.
func MlModelVersionHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldMlModelVersion, v))
}

// MlModelVersionIsNil applies the IsNil predicate on the "ml_model_version" field.
func MlModelVersionIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldMlModelVersion))
}

// MlModelVersionNotNil applies the NotNil predicate on the "ml_model_version" field.
func MlModelVersionNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldMlModelVersion))
}

// MlModelVersionEqualFold applies the EqualFold predicate on the "ml_model_version" field.
func MlModelVersionEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldMlModelVersion, v))
}

// MlModelVersionContainsFold applies the ContainsFold predicate on the "ml_model_version" field.
func MlModelVersionContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldMlModelVersion, v))
}

// MlFeatureVersionEQ applies the EQ predicate on the "ml_feature_version" field.
func MlFeatureVersionEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlFeatureVersion, v))
}

// MlFeatureVersionNEQ applies the NEQ predicate on the "ml_feature_version" field.
func MlFeatureVersionNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldMlFeatureVersion, v))
}

// MlFeatureVersionIn applies the In predicate on the "ml_feature_version" field.
func MlFeatureVersionIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldMlFeatureVersion, vs...))
}

// MlFeatureVersionNotIn applies the NotIn predicate on the "ml_feature_version" field.
func MlFeatureVersionNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldMlFeatureVersion, vs...))
}

// MlFeatureVersionGT applies the GT predicate on the "ml_feature_version" field.
func MlFeatureVersionGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldMlFeatureVersion, v))
}

// MlFeatureVersionGTE applies the GTE predicate on the "ml_feature_version" field.
func MlFeatureVersionGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldMlFeatureVersion, v))
}

// MlFeatureVersionLT applies the LT predicate on the "ml_feature_version" field.
func MlFeatureVersionLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldMlFeatureVersion, v))
}

// MlFeatureVersionLTE applies the LTE predicate on the "ml_feature_version" field.
func MlFeatureVersionLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldMlFeatureVersion, v))
}

// MlFeatureVersionContains applies the Contains predicate on the "ml_feature_version" field.
func MlFeatureVersionContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldMlFeatureVersion, v))
}

// MlFeatureVersionHasPrefix applies the HasPrefix predicate on the "ml_feature_version" field.
func MlFeatureVersionHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldMlFeatureVersion, v))
}

// MlFeatureVersionHasSuffix applies the HasSuffix predicate on the "ml_feature_version" field.
func MlFeatureVersionHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldMlFeatureVersion, v))
}

// MlFeatureVersionIsNil applies the IsNil predicate on the "ml_feature_version" field.
func MlFeatureVersionIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldMlFeatureVersion))
}

// MlFeatureVersionNotNil applies the NotNil predicate on the "ml_feature_version" field.
func MlFeatureVersionNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldMlFeatureVersion))
}

// MlFeatureVersionEqualFold applies the EqualFold predicate on the "ml_feature_version" field.
func MlFeatureVersionEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldMlFeatureVersion, v))
}

// MlFeatureVersionContainsFold applies the ContainsFold predicate on the "ml_feature_version" field.
func MlFeatureVersionContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldMlFeatureVersion, v))
}

// MlErrorEQ applies the EQ predicate on the "ml_error" field.
func MlErrorEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldMlError, v))
}

// MlErrorNEQ applies the NEQ predicate on the "ml_error" field.
func MlErrorNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldMlError, v))
}

// MlErrorIn applies the In predicate on the "ml_error" field.
func MlErrorIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldMlError, vs...))
}

// MlErrorNotIn applies the NotIn predicate on the "ml_error" field.
func MlErrorNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldMlError, vs...))
}

// MlErrorGT applies the GT predicate on the "ml_error" field.
func MlErrorGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldMlError, v))
}

// MlErrorGTE applies the GTE predicate on the "ml_error" field.
func MlErrorGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldMlError, v))
}

// MlErrorLT applies the LT predicate on the "ml_error" field.
func MlErrorLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldMlError, v))
}

// MlErrorLTE applies the LTE predicate on the "ml_error" field.
func MlErrorLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldMlError, v))
}

// MlErrorContains applies the Contains predicate on the "ml_error" field.
func MlErrorContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldMlError, v))
}

// MlErrorHasPrefix applies the HasPrefix predicate on the "ml_error" field.
func MlErrorHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldMlError, v))
}

// MlErrorHasSuffix applies the HasSuffix predicate on the "ml_error" field.
func MlErrorHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldMlError, v))
}

// MlErrorIsNil applies the IsNil predicate on the "ml_error" field.
func MlErrorIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldMlError))
}

// MlErrorNotNil applies the NotNil predicate on the "ml_error" field.
func MlErrorNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldMlError))
}

// MlErrorEqualFold applies the EqualFold predicate on the "ml_error" field.
func MlErrorEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldMlError, v))
}

// MlErrorContainsFold applies the ContainsFold predicate on the "ml_error" field.
func MlErrorContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldMlError, v))
}

// TriagePriorityEQ applies the EQ predicate on the "triage_priority" field.
func TriagePriorityEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldTriagePriority, v))
}

// TriagePriorityNEQ applies the NEQ predicate on the "triage_priority" field.
func TriagePriorityNEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldTriagePriority, v))
}

// TriagePriorityIn applies the In predicate on the "triage_priority" field.
func TriagePriorityIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldTriagePriority, vs...))
}

// TriagePriorityNotIn applies the NotIn predicate on the "triage_priority" field.
func TriagePriorityNotIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldTriagePriority, vs...))
}

// TriagePriorityGT applies the GT predicate on the "triage_priority" field.
func TriagePriorityGT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldTriagePriority, v))
}

// TriagePriorityGTE applies the GTE predicate on the "triage_priority" field.
func TriagePriorityGTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldTriagePriority, v))
}

// TriagePriorityLT applies the LT predicate on the "triage_priority" field.
func TriagePriorityLT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldTriagePriority, v))
}

// TriagePriorityLTE applies the LTE predicate on the "triage_priority" field.
func TriagePriorityLTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldTriagePriority, v))
}

// TriagePriorityIsNil applies the IsNil predicate on the "triage_priority" field.
func TriagePriorityIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldTriagePriority))
}

// TriagePriorityNotNil applies the NotNil predicate on the "triage_priority" field.
func TriagePriorityNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldTriagePriority))
}

// TriageBandEQ applies the EQ predicate on the "triage_band" field.
func TriageBandEQ(v TriageBand) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldTriageBand, v))
}

// TriageBandNEQ applies the NEQ predicate on the "triage_band" field.
func TriageBandNEQ(v TriageBand) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldTriageBand, v))
}

// TriageBandIn applies the In predicate on the "triage_band" field.
func TriageBandIn(vs ...TriageBand) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldTriageBand, vs...))
}

// TriageBandNotIn applies the NotIn predicate on the "triage_band" field.
func TriageBandNotIn(vs ...TriageBand) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldTriageBand, vs...))
}

// TriageBandIsNil applies the IsNil predicate on the "triage_band" field.
func TriageBandIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldTriageBand))
}

// TriageBandNotNil applies the NotNil predicate on the "triage_band" field.
func TriageBandNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldTriageBand))
}

// RecommendedActionsIsNil applies the IsNil predicate on the "recommended_actions" field.
func RecommendedActionsIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldRecommendedActions))
}

// RecommendedActionsNotNil applies the NotNil predicate on the "recommended_actions" field.
func RecommendedActionsNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldRecommendedActions))
}

// RequiresHumanReviewEQ applies the EQ predicate on the "requires_human_review" field.
func RequiresHumanReviewEQ(v bool) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRequiresHumanReview, v))
}

// RequiresHumanReviewNEQ applies the NEQ predicate on the "requires_human_review" field.
func RequiresHumanReviewNEQ(v bool) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldRequiresHumanReview, v))
}

// AnalysisRiskScoreEQ applies the EQ predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisRiskScore, v))
}

// AnalysisRiskScoreNEQ applies the NEQ predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreNEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldAnalysisRiskScore, v))
}

// AnalysisRiskScoreIn applies the In predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldAnalysisRiskScore, vs...))
}

// AnalysisRiskScoreNotIn applies the NotIn predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreNotIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldAnalysisRiskScore, vs...))
}

// AnalysisRiskScoreGT applies the GT predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreGT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldAnalysisRiskScore, v))
}

// AnalysisRiskScoreGTE applies the GTE predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreGTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldAnalysisRiskScore, v))
}

// AnalysisRiskScoreLT applies the LT predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreLT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldAnalysisRiskScore, v))
}

// AnalysisRiskScoreLTE applies the LTE predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreLTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldAnalysisRiskScore, v))
}

// AnalysisRiskScoreIsNil applies the IsNil predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldAnalysisRiskScore))
}

// AnalysisRiskScoreNotNil applies the NotNil predicate on the "analysis_risk_score" field.
func AnalysisRiskScoreNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldAnalysisRiskScore))
}

// AnalysisAttackVectorEQ applies the EQ predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorNEQ applies the NEQ predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorIn applies the In predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldAnalysisAttackVector, vs...))
}

// AnalysisAttackVectorNotIn applies the NotIn predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldAnalysisAttackVector, vs...))
}

// AnalysisAttackVectorGT applies the GT predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorGTE applies the GTE predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorLT applies the LT predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorLTE applies the LTE predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorContains applies the Contains predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorHasPrefix applies the HasPrefix predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorHasSuffix applies the HasSuffix predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorIsNil applies the IsNil predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldAnalysisAttackVector))
}

// AnalysisAttackVectorNotNil applies the NotNil predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldAnalysisAttackVector))
}

// AnalysisAttackVectorEqualFold applies the EqualFold predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldAnalysisAttackVector, v))
}

// AnalysisAttackVectorContainsFold applies the ContainsFold predicate on the "analysis_attack_vector" field.
func AnalysisAttackVectorContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldAnalysisAttackVector, v))
}

// AnalysisConfidenceEQ applies the EQ predicate on the "analysis_confidence" field.
func AnalysisConfidenceEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceNEQ applies the NEQ predicate on the "analysis_confidence" field.
func AnalysisConfidenceNEQ(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceIn applies the In predicate on the "analysis_confidence" field.
func AnalysisConfidenceIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldAnalysisConfidence, vs...))
}

// AnalysisConfidenceNotIn applies the NotIn predicate on the "analysis_confidence" field.
func AnalysisConfidenceNotIn(vs ...float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldAnalysisConfidence, vs...))
}

// AnalysisConfidenceGT applies the GT predicate on the "analysis_confidence" field.
func AnalysisConfidenceGT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceGTE applies the GTE predicate on the "analysis_confidence" field.
func AnalysisConfidenceGTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceLT applies the LT predicate on the "analysis_confidence" field.
func AnalysisConfidenceLT(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceLTE applies the LTE predicate on the "analysis_confidence" field.
func AnalysisConfidenceLTE(v float64) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldAnalysisConfidence, v))
}

// AnalysisConfidenceIsNil applies the IsNil predicate on the "analysis_confidence" field.
func AnalysisConfidenceIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldAnalysisConfidence))
}

// AnalysisConfidenceNotNil applies the NotNil predicate on the "analysis_confidence" field.
func AnalysisConfidenceNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldAnalysisConfidence))
}

// AnalysisBusinessImpactEQ applies the EQ predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactNEQ applies the NEQ predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactIn applies the In predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldAnalysisBusinessImpact, vs...))
}

// AnalysisBusinessImpactNotIn applies the NotIn predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldAnalysisBusinessImpact, vs...))
}

// AnalysisBusinessImpactGT applies the GT predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactGTE applies the GTE predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactLT applies the LT predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactLTE applies the LTE predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactContains applies the Contains predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactHasPrefix applies the HasPrefix predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactHasSuffix applies the HasSuffix predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactIsNil applies the IsNil predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldAnalysisBusinessImpact))
}

// AnalysisBusinessImpactNotNil applies the NotNil predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldAnalysisBusinessImpact))
}

// AnalysisBusinessImpactEqualFold applies the EqualFold predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldAnalysisBusinessImpact, v))
}

// AnalysisBusinessImpactContainsFold applies the ContainsFold predicate on the "analysis_business_impact" field.
func AnalysisBusinessImpactContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldAnalysisBusinessImpact, v))
}

// AnalysisSummaryEQ applies the EQ predicate on the "analysis_summary" field.
func AnalysisSummaryEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisSummary, v))
}

// AnalysisSummaryNEQ applies the NEQ predicate on the "analysis_summary" field.
func AnalysisSummaryNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldAnalysisSummary, v))
}

// AnalysisSummaryIn applies the In predicate on the "analysis_summary" field.
func AnalysisSummaryIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldAnalysisSummary, vs...))
}

// AnalysisSummaryNotIn applies the NotIn predicate on the "analysis_summary" field.
func AnalysisSummaryNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldAnalysisSummary, vs...))
}

// AnalysisSummaryGT applies the GT predicate on the "analysis_summary" field.
func AnalysisSummaryGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldAnalysisSummary, v))
}

// AnalysisSummaryGTE applies the GTE predicate on the "analysis_summary" field.
func AnalysisSummaryGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldAnalysisSummary, v))
}

// AnalysisSummaryLT applies the LT predicate on the "analysis_summary" field.
func AnalysisSummaryLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldAnalysisSummary, v))
}

// AnalysisSummaryLTE applies the LTE predicate on the "analysis_summary" field.
func AnalysisSummaryLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldAnalysisSummary, v))
}

// AnalysisSummaryContains applies the Contains predicate on the "analysis_summary" field.
func AnalysisSummaryContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldAnalysisSummary, v))
}

// AnalysisSummaryHasPrefix applies the HasPrefix predicate on the "analysis_summary" field.
func AnalysisSummaryHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldAnalysisSummary, v))
}

// AnalysisSummaryHasSuffix applies the HasSuffix predicate on the "analysis_summary" field.
func AnalysisSummaryHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldAnalysisSummary, v))
}

// AnalysisSummaryIsNil applies the IsNil predicate on the "analysis_summary" field.
func AnalysisSummaryIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldAnalysisSummary))
}

// AnalysisSummaryNotNil applies the NotNil predicate on the "analysis_summary" field.
func AnalysisSummaryNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldAnalysisSummary))
}

// AnalysisSummaryEqualFold applies the EqualFold predicate on the "analysis_summary" field.
func AnalysisSummaryEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldAnalysisSummary, v))
}

// AnalysisSummaryContainsFold applies the ContainsFold predicate on the "analysis_summary" field.
func AnalysisSummaryContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldAnalysisSummary, v))
}

// AnalysisErrorEQ applies the EQ predicate on the "analysis_error" field.
func AnalysisErrorEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldAnalysisError, v))
}

// AnalysisErrorNEQ applies the NEQ predicate on the "analysis_error" field.
func AnalysisErrorNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldAnalysisError, v))
}

// AnalysisErrorIn applies the In predicate on the "analysis_error" field.
func AnalysisErrorIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldAnalysisError, vs...))
}

// AnalysisErrorNotIn applies the NotIn predicate on the "analysis_error" field.
func AnalysisErrorNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldAnalysisError, vs...))
}

// AnalysisErrorGT applies the GT predicate on the "analysis_error" field.
func AnalysisErrorGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldAnalysisError, v))
}

// AnalysisErrorGTE applies the GTE predicate on the "analysis_error" field.
func AnalysisErrorGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldAnalysisError, v))
}

// AnalysisErrorLT applies the LT predicate on the "analysis_error" field.
func AnalysisErrorLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldAnalysisError, v))
}

// AnalysisErrorLTE applies the LTE predicate on the "analysis_error" field.
func AnalysisErrorLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldAnalysisError, v))
}

// AnalysisErrorContains applies the Contains predicate on the "analysis_error" field.
func AnalysisErrorContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldAnalysisError, v))
}

// AnalysisErrorHasPrefix applies the HasPrefix predicate on the "analysis_error" field.
func AnalysisErrorHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldAnalysisError, v))
}

// AnalysisErrorHasSuffix applies the HasSuffix predicate on the "analysis_error" field.
func AnalysisErrorHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldAnalysisError, v))
}

// AnalysisErrorIsNil applies the IsNil predicate on the "analysis_error" field.
func AnalysisErrorIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldAnalysisError))
}

// AnalysisErrorNotNil applies the NotNil predicate on the "analysis_error" field.
func AnalysisErrorNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldAnalysisError))
}

// AnalysisErrorEqualFold applies the EqualFold predicate on the "analysis_error" field.
func AnalysisErrorEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldAnalysisError, v))
}

// AnalysisErrorContainsFold applies the ContainsFold predicate on the "analysis_error" field.
func AnalysisErrorContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldAnalysisError, v))
}

// RemediationActionEQ applies the EQ predicate on the "remediation_action" field.
func RemediationActionEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRemediationAction, v))
}

// RemediationActionNEQ applies the NEQ predicate on the "remediation_action" field.
func RemediationActionNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldRemediationAction, v))
}

// RemediationActionIn applies the In predicate on the "remediation_action" field.
func RemediationActionIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldRemediationAction, vs...))
}

// RemediationActionNotIn applies the NotIn predicate on the "remediation_action" field.
func RemediationActionNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldRemediationAction, vs...))
}

// RemediationActionGT applies the GT predicate on the "remediation_action" field.
func RemediationActionGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldRemediationAction, v))
}

// RemediationActionGTE applies the GTE predicate on the "remediation_action" field.
func RemediationActionGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldRemediationAction, v))
}

// RemediationActionLT applies the LT predicate on the "remediation_action" field.
func RemediationActionLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldRemediationAction, v))
}

// RemediationActionLTE applies the LTE predicate on the "remediation_action" field.
func RemediationActionLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldRemediationAction, v))
}

// RemediationActionContains applies the Contains predicate on the "remediation_action" field.
func RemediationActionContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldRemediationAction, v))
}

// RemediationActionHasPrefix applies the HasPrefix predicate on the "remediation_action" field.
func RemediationActionHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldRemediationAction, v))
}

// RemediationActionHasSuffix applies the HasSuffix predicate on the "remediation_action" field.
func RemediationActionHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldRemediationAction, v))
}

// RemediationActionIsNil applies the IsNil predicate on the "remediation_action" field.
func RemediationActionIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldRemediationAction))
}

// RemediationActionNotNil applies the NotNil predicate on the "remediation_action" field.
func RemediationActionNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldRemediationAction))
}

// RemediationActionEqualFold applies the EqualFold predicate on the "remediation_action" field.
func RemediationActionEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldRemediationAction, v))
}

// RemediationActionContainsFold applies the ContainsFold predicate on the "remediation_action" field.
func RemediationActionContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldRemediationAction, v))
}

// RemediationStatusEQ applies the EQ predicate on the "remediation_status" field.
func RemediationStatusEQ(v RemediationStatus) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRemediationStatus, v))
}

// RemediationStatusNEQ applies the NEQ predicate on the "remediation_status" field.
func RemediationStatusNEQ(v RemediationStatus) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldRemediationStatus, v))
}

// RemediationStatusIn applies the In predicate on the "remediation_status" field.
func RemediationStatusIn(vs ...RemediationStatus) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldRemediationStatus, vs...))
}

// RemediationStatusNotIn applies the NotIn predicate on the "remediation_status" field.
func RemediationStatusNotIn(vs ...RemediationStatus) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldRemediationStatus, vs...))
}

// RemediationStatusIsNil applies the IsNil predicate on the "remediation_status" field.
func RemediationStatusIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldRemediationStatus))
}

// RemediationStatusNotNil applies the NotNil predicate on the "remediation_status" field.
func RemediationStatusNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldRemediationStatus))
}

// RemediationAttemptsEQ applies the EQ predicate on the "remediation_attempts" field.
func RemediationAttemptsEQ(v int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRemediationAttempts, v))
}

// RemediationAttemptsNEQ applies the NEQ predicate on the "remediation_attempts" field.
func RemediationAttemptsNEQ(v int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldRemediationAttempts, v))
}

// RemediationAttemptsIn applies the In predicate on the "remediation_attempts" field.
func RemediationAttemptsIn(vs ...int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldRemediationAttempts, vs...))
}

// RemediationAttemptsNotIn applies the NotIn predicate on the "remediation_attempts" field.
func RemediationAttemptsNotIn(vs ...int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldRemediationAttempts, vs...))
}

// RemediationAttemptsGT applies the GT predicate on the "remediation_attempts" field.
func RemediationAttemptsGT(v int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldRemediationAttempts, v))
}

// RemediationAttemptsGTE applies the GTE predicate on the "remediation_attempts" field.
func RemediationAttemptsGTE(v int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldRemediationAttempts, v))
}

// RemediationAttemptsLT applies the LT predicate on the "remediation_attempts" field.
func RemediationAttemptsLT(v int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldRemediationAttempts, v))
}

// RemediationAttemptsLTE applies the LTE predicate on the "remediation_attempts" field.
func RemediationAttemptsLTE(v int) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldRemediationAttempts, v))
}

// RemediationAttemptsIsNil applies the IsNil predicate on the "remediation_attempts" field.
func RemediationAttemptsIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldRemediationAttempts))
}

// RemediationAttemptsNotNil applies the NotNil predicate on the "remediation_attempts" field.
func RemediationAttemptsNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldRemediationAttempts))
}

// RemediationErrorEQ applies the EQ predicate on the "remediation_error" field.
func RemediationErrorEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldRemediationError, v))
}

// RemediationErrorNEQ applies the NEQ predicate on the "remediation_error" field.
func RemediationErrorNEQ(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldRemediationError, v))
}

// RemediationErrorIn applies the In predicate on the "remediation_error" field.
func RemediationErrorIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldRemediationError, vs...))
}

// RemediationErrorNotIn applies the NotIn predicate on the "remediation_error" field.
func RemediationErrorNotIn(vs ...string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldRemediationError, vs...))
}

// RemediationErrorGT applies the GT predicate on the "remediation_error" field.
func RemediationErrorGT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldRemediationError, v))
}

// RemediationErrorGTE applies the GTE predicate on the "remediation_error" field.
func RemediationErrorGTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldRemediationError, v))
}

// RemediationErrorLT applies the LT predicate on the "remediation_error" field.
func RemediationErrorLT(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldRemediationError, v))
}

// RemediationErrorLTE applies the LTE predicate on the "remediation_error" field.
func RemediationErrorLTE(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldRemediationError, v))
}

// RemediationErrorContains applies the Contains predicate on the "remediation_error" field.
func RemediationErrorContains(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContains(FieldRemediationError, v))
}

// RemediationErrorHasPrefix applies the HasPrefix predicate on the "remediation_error" field.
func RemediationErrorHasPrefix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasPrefix(FieldRemediationError, v))
}

// RemediationErrorHasSuffix applies the HasSuffix predicate on the "remediation_error" field.
func RemediationErrorHasSuffix(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldHasSuffix(FieldRemediationError, v))
}

// RemediationErrorIsNil applies the IsNil predicate on the "remediation_error" field.
func RemediationErrorIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldRemediationError))
}

// RemediationErrorNotNil applies the NotNil predicate on the "remediation_error" field.
func RemediationErrorNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldRemediationError))
}

// RemediationErrorEqualFold applies the EqualFold predicate on the "remediation_error" field.
func RemediationErrorEqualFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEqualFold(FieldRemediationError, v))
}

// RemediationErrorContainsFold applies the ContainsFold predicate on the "remediation_error" field.
func RemediationErrorContainsFold(v string) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldContainsFold(FieldRemediationError, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// NotifiedAtEQ applies the EQ predicate on the "notified_at" field.
func NotifiedAtEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldNotifiedAt, v))
}

// NotifiedAtNEQ applies the NEQ predicate on the "notified_at" field.
func NotifiedAtNEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldNotifiedAt, v))
}

// NotifiedAtIn applies the In predicate on the "notified_at" field.
func NotifiedAtIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldNotifiedAt, vs...))
}

// NotifiedAtNotIn applies the NotIn predicate on the "notified_at" field.
func NotifiedAtNotIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldNotifiedAt, vs...))
}

// NotifiedAtGT applies the GT predicate on the "notified_at" field.
func NotifiedAtGT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldNotifiedAt, v))
}

// NotifiedAtGTE applies the GTE predicate on the "notified_at" field.
func NotifiedAtGTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldNotifiedAt, v))
}

// NotifiedAtLT applies the LT predicate on the "notified_at" field.
func NotifiedAtLT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldNotifiedAt, v))
}

// NotifiedAtLTE applies the LTE predicate on the "notified_at" field.
func NotifiedAtLTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldNotifiedAt, v))
}

// NotifiedAtIsNil applies the IsNil predicate on the "notified_at" field.
func NotifiedAtIsNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIsNull(FieldNotifiedAt))
}

// NotifiedAtNotNil applies the NotNil predicate on the "notified_at" field.
func NotifiedAtNotNil() predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotNull(FieldNotifiedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ThreatRecord) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ThreatRecord) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ThreatRecord) predicate.ThreatRecord {
	return predicate.ThreatRecord(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/argus-soc/argus/ent/predicate"
	"github.com/argus-soc/argus/ent/threatrecord"
)

// ThreatRecordUpdate is the builder for updating ThreatRecord entities.
type ThreatRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ThreatRecordMutation
}

// Where appends a list predicates to the ThreatRecordUpdate builder.
func (_u *ThreatRecordUpdate) Where(ps ...predicate.ThreatRecord) *ThreatRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReceivedAt sets the "received_at" field.
func (_u *ThreatRecordUpdate) SetReceivedAt(v time.Time) *ThreatRecordUpdate {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableReceivedAt(v *time.Time) *ThreatRecordUpdate {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ThreatRecordUpdate) SetSource(v string) *ThreatRecordUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableSource(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ThreatRecordUpdate) SetAccountID(v string) *ThreatRecordUpdate {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableAccountID(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ThreatRecordUpdate) SetRegion(v string) *ThreatRecordUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableRegion(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ThreatRecordUpdate) SetKind(v string) *ThreatRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableKind(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ThreatRecordUpdate) SetSeverity(v threatrecord.Severity) *ThreatRecordUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableSeverity(v *threatrecord.Severity) *ThreatRecordUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetRawSeverity sets the "raw_severity" field.
func (_u *ThreatRecordUpdate) SetRawSeverity(v float64) *ThreatRecordUpdate {
	_u.mutation.ResetRawSeverity()
	_u.mutation.SetRawSeverity(v)
	return _u
}

// SetNillableRawSeverity sets the "raw_severity" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableRawSeverity(v *float64) *ThreatRecordUpdate {
	if v != nil {
		_u.SetRawSeverity(*v)
	}
	return _u
}

// AddRawSeverity adds value to the "raw_severity" field.
func (_u *ThreatRecordUpdate) AddRawSeverity(v float64) *ThreatRecordUpdate {
	_u.mutation.AddRawSeverity(v)
	return _u
}

// ClearRawSeverity clears the value of the "raw_severity" field.
func (_u *ThreatRecordUpdate) ClearRawSeverity() *ThreatRecordUpdate {
	_u.mutation.ClearRawSeverity()
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ThreatRecordUpdate) SetResourceType(v string) *ThreatRecordUpdate {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableResourceType(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// ClearResourceType clears the value of the "resource_type" field.
func (_u *ThreatRecordUpdate) ClearResourceType() *ThreatRecordUpdate {
	_u.mutation.ClearResourceType()
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *ThreatRecordUpdate) SetResourceID(v string) *ThreatRecordUpdate {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableResourceID(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *ThreatRecordUpdate) ClearResourceID() *ThreatRecordUpdate {
	_u.mutation.ClearResourceID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ThreatRecordUpdate) SetDetails(v map[string]interface{}) *ThreatRecordUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ThreatRecordUpdate) ClearDetails() *ThreatRecordUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// SetMlThreatScore sets the "ml_threat_score" field.
func (_u *ThreatRecordUpdate) SetMlThreatScore(v float64) *ThreatRecordUpdate {
	_u.mutation.ResetMlThreatScore()
	_u.mutation.SetMlThreatScore(v)
	return _u
}

// SetNillableMlThreatScore sets the "ml_threat_score" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableMlThreatScore(v *float64) *ThreatRecordUpdate {
	if v != nil {
		_u.SetMlThreatScore(*v)
	}
	return _u
}

// AddMlThreatScore adds value to the "ml_threat_score" field.
func (_u *ThreatRecordUpdate) AddMlThreatScore(v float64) *ThreatRecordUpdate {
	_u.mutation.AddMlThreatScore(v)
	return _u
}

// ClearMlThreatScore clears the value of the "ml_threat_score" field.
func (_u *ThreatRecordUpdate) ClearMlThreatScore() *ThreatRecordUpdate {
	_u.mutation.ClearMlThreatScore()
	return _u
}

// SetMlConfidence sets the "ml_confidence" field.
func (_u *ThreatRecordUpdate) SetMlConfidence(v float64) *ThreatRecordUpdate {
	_u.mutation.ResetMlConfidence()
	_u.mutation.SetMlConfidence(v)
	return _u
}

// SetNillableMlConfidence sets the "ml_confidence" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableMlConfidence(v *float64) *ThreatRecordUpdate {
	if v != nil {
		_u.SetMlConfidence(*v)
	}
	return _u
}

// AddMlConfidence adds value to the "ml_confidence" field.
func (_u *ThreatRecordUpdate) AddMlConfidence(v float64) *ThreatRecordUpdate {
	_u.mutation.AddMlConfidence(v)
	return _u
}

// ClearMlConfidence clears the value of the "ml_confidence" field.
func (_u *ThreatRecordUpdate) ClearMlConfidence() *ThreatRecordUpdate {
	_u.mutation.ClearMlConfidence()
	return _u
}

// SetMlModelVersion sets the "ml_model_version" field.
func (_u *ThreatRecordUpdate) SetMlModelVersion(v string) *ThreatRecordUpdate {
	_u.mutation.SetMlModelVersion(v)
	return _u
}

// SetNillableMlModelVersion sets the "ml_model_version" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableMlModelVersion(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetMlModelVersion(*v)
	}
	return _u
}

// ClearMlModelVersion clears the value of the "ml_model_version" field.
func (_u *ThreatRecordUpdate) ClearMlModelVersion() *ThreatRecordUpdate {
	_u.mutation.ClearMlModelVersion()
	return _u
}

// SetMlFeatureVersion sets the "ml_feature_version" field.
func (_u *ThreatRecordUpdate) SetMlFeatureVersion(v string) *ThreatRecordUpdate {
	_u.mutation.SetMlFeatureVersion(v)
	return _u
}

// SetNillableMlFeatureVersion sets the "ml_feature_version" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableMlFeatureVersion(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetMlFeatureVersion(*v)
	}
	return _u
}

// ClearMlFeatureVersion clears the value of the "ml_feature_version" field.
func (_u *ThreatRecordUpdate) ClearMlFeatureVersion() *ThreatRecordUpdate {
	_u.mutation.ClearMlFeatureVersion()
	return _u
}

// SetMlError sets the "ml_error" field.
func (_u *ThreatRecordUpdate) SetMlError(v string) *ThreatRecordUpdate {
	_u.mutation.SetMlError(v)
	return _u
}

// SetNillableMlError sets the "ml_error" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableMlError(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetMlError(*v)
	}
	return _u
}

// ClearMlError clears the value of the "ml_error" field.
func (_u *ThreatRecordUpdate) ClearMlError() *ThreatRecordUpdate {
	_u.mutation.ClearMlError()
	return _u
}

// SetTriagePriority sets the "triage_priority" field.
func (_u *ThreatRecordUpdate) SetTriagePriority(v float64) *ThreatRecordUpdate {
	_u.mutation.ResetTriagePriority()
	_u.mutation.SetTriagePriority(v)
	return _u
}

// SetNillableTriagePriority sets the "triage_priority" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableTriagePriority(v *float64) *ThreatRecordUpdate {
	if v != nil {
		_u.SetTriagePriority(*v)
	}
	return _u
}

// AddTriagePriority adds value to the "triage_priority" field.
func (_u *ThreatRecordUpdate) AddTriagePriority(v float64) *ThreatRecordUpdate {
	_u.mutation.AddTriagePriority(v)
	return _u
}

// ClearTriagePriority clears the value of the "triage_priority" field.
func (_u *ThreatRecordUpdate) ClearTriagePriority() *ThreatRecordUpdate {
	_u.mutation.ClearTriagePriority()
	return _u
}

// SetTriageBand sets the "triage_band" field.
func (_u *ThreatRecordUpdate) SetTriageBand(v threatrecord.TriageBand) *ThreatRecordUpdate {
	_u.mutation.SetTriageBand(v)
	return _u
}

// SetNillableTriageBand sets the "triage_band" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableTriageBand(v *threatrecord.TriageBand) *ThreatRecordUpdate {
	if v != nil {
		_u.SetTriageBand(*v)
	}
	return _u
}

// ClearTriageBand clears the value of the "triage_band" field.
func (_u *ThreatRecordUpdate) ClearTriageBand() *ThreatRecordUpdate {
	_u.mutation.ClearTriageBand()
	return _u
}

// SetRecommendedActions sets the "recommended_actions" field.
func (_u *ThreatRecordUpdate) SetRecommendedActions(v []string) *ThreatRecordUpdate {
	_u.mutation.SetRecommendedActions(v)
	return _u
}

// AppendRecommendedActions appends value to the "recommended_actions" field.
func (_u *ThreatRecordUpdate) AppendRecommendedActions(v []string) *ThreatRecordUpdate {
	_u.mutation.AppendRecommendedActions(v)
	return _u
}

// ClearRecommendedActions clears the value of the "recommended_actions" field.
func (_u *ThreatRecordUpdate) ClearRecommendedActions() *ThreatRecordUpdate {
	_u.mutation.ClearRecommendedActions()
	return _u
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_u *ThreatRecordUpdate) SetRequiresHumanReview(v bool) *ThreatRecordUpdate {
	_u.mutation.SetRequiresHumanReview(v)
	return _u
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableRequiresHumanReview(v *bool) *ThreatRecordUpdate {
	if v != nil {
		_u.SetRequiresHumanReview(*v)
	}
	return _u
}

// SetAnalysisRiskScore sets the "analysis_risk_score" field.
func (_u *ThreatRecordUpdate) SetAnalysisRiskScore(v float64) *ThreatRecordUpdate {
	_u.mutation.ResetAnalysisRiskScore()
	_u.mutation.SetAnalysisRiskScore(v)
	return _u
}

// SetNillableAnalysisRiskScore sets the "analysis_risk_score" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableAnalysisRiskScore(v *float64) *ThreatRecordUpdate {
	if v != nil {
		_u.SetAnalysisRiskScore(*v)
	}
	return _u
}

// AddAnalysisRiskScore adds value to the "analysis_risk_score" field.
func (_u *ThreatRecordUpdate) AddAnalysisRiskScore(v float64) *ThreatRecordUpdate {
	_u.mutation.AddAnalysisRiskScore(v)
	return _u
}

// ClearAnalysisRiskScore clears the value of the "analysis_risk_score" field.
func (_u *ThreatRecordUpdate) ClearAnalysisRiskScore() *ThreatRecordUpdate {
	_u.mutation.ClearAnalysisRiskScore()
	return _u
}

// SetAnalysisAttackVector sets the "analysis_attack_vector" field.
func (_u *ThreatRecordUpdate) SetAnalysisAttackVector(v string) *ThreatRecordUpdate {
	_u.mutation.SetAnalysisAttackVector(v)
	return _u
}

// SetNillableAnalysisAttackVector sets the "analysis_attack_vector" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableAnalysisAttackVector(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetAnalysisAttackVector(*v)
	}
	return _u
}

// ClearAnalysisAttackVector clears the value of the "analysis_attack_vector" field.
func (_u *ThreatRecordUpdate) ClearAnalysisAttackVector() *ThreatRecordUpdate {
	_u.mutation.ClearAnalysisAttackVector()
	return _u
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (_u *ThreatRecordUpdate) SetAnalysisConfidence(v float64) *ThreatRecordUpdate {
	_u.mutation.ResetAnalysisConfidence()
	_u.mutation.SetAnalysisConfidence(v)
	return _u
}

// SetNillableAnalysisConfidence sets the "analysis_confidence" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableAnalysisConfidence(v *float64) *ThreatRecordUpdate {
	if v != nil {
		_u.SetAnalysisConfidence(*v)
	}
	return _u
}

// AddAnalysisConfidence adds value to the "analysis_confidence" field.
func (_u *ThreatRecordUpdate) AddAnalysisConfidence(v float64) *ThreatRecordUpdate {
	_u.mutation.AddAnalysisConfidence(v)
	return _u
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (_u *ThreatRecordUpdate) ClearAnalysisConfidence() *ThreatRecordUpdate {
	_u.mutation.ClearAnalysisConfidence()
	return _u
}

// SetAnalysisBusinessImpact sets the "analysis_business_impact" field.
func (_u *ThreatRecordUpdate) SetAnalysisBusinessImpact(v string) *ThreatRecordUpdate {
	_u.mutation.SetAnalysisBusinessImpact(v)
	return _u
}

// SetNillableAnalysisBusinessImpact sets the "analysis_business_impact" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableAnalysisBusinessImpact(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetAnalysisBusinessImpact(*v)
	}
	return _u
}

// ClearAnalysisBusinessImpact clears the value of the "analysis_business_impact" field.
func (_u *ThreatRecordUpdate) ClearAnalysisBusinessImpact() *ThreatRecordUpdate {
	_u.mutation.ClearAnalysisBusinessImpact()
	return _u
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (_u *ThreatRecordUpdate) SetAnalysisSummary(v string) *ThreatRecordUpdate {
	_u.mutation.SetAnalysisSummary(v)
	return _u
}

// SetNillableAnalysisSummary sets the "analysis_summary" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableAnalysisSummary(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetAnalysisSummary(*v)
	}
	return _u
}

// ClearAnalysisSummary clears the value of the "analysis_summary" field.
func (_u *ThreatRecordUpdate) ClearAnalysisSummary() *ThreatRecordUpdate {
	_u.mutation.ClearAnalysisSummary()
	return _u
}

// SetAnalysisError sets the "analysis_error" field.
func (_u *ThreatRecordUpdate) SetAnalysisError(v string) *ThreatRecordUpdate {
	_u.mutation.SetAnalysisError(v)
	return _u
}

// SetNillableAnalysisError sets the "analysis_error" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableAnalysisError(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetAnalysisError(*v)
	}
	return _u
}

// ClearAnalysisError clears the value of the "analysis_error" field.
func (_u *ThreatRecordUpdate) ClearAnalysisError() *ThreatRecordUpdate {
	_u.mutation.ClearAnalysisError()
	return _u
}

// SetRemediationAction sets the "remediation_action" field.
func (_u *ThreatRecordUpdate) SetRemediationAction(v string) *ThreatRecordUpdate {
	_u.mutation.SetRemediationAction(v)
	return _u
}

// SetNillableRemediationAction sets the "remediation_action" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableRemediationAction(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetRemediationAction(*v)
	}
	return _u
}

// ClearRemediationAction clears the value of the "remediation_action" field.
func (_u *ThreatRecordUpdate) ClearRemediationAction() *ThreatRecordUpdate {
	_u.mutation.ClearRemediationAction()
	return _u
}

// SetRemediationStatus sets the "remediation_status" field.
func (_u *ThreatRecordUpdate) SetRemediationStatus(v threatrecord.RemediationStatus) *ThreatRecordUpdate {
	_u.mutation.SetRemediationStatus(v)
	return _u
}

// SetNillableRemediationStatus sets the "remediation_status" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableRemediationStatus(v *threatrecord.RemediationStatus) *ThreatRecordUpdate {
	if v != nil {
		_u.SetRemediationStatus(*v)
	}
	return _u
}

// ClearRemediationStatus clears the value of the "remediation_status" field.
func (_u *ThreatRecordUpdate) ClearRemediationStatus() *ThreatRecordUpdate {
	_u.mutation.ClearRemediationStatus()
	return _u
}

// SetRemediationAttempts sets the "remediation_attempts" field.
func (_u *ThreatRecordUpdate) SetRemediationAttempts(v int) *ThreatRecordUpdate {
	_u.mutation.ResetRemediationAttempts()
	_u.mutation.SetRemediationAttempts(v)
	return _u
}

// SetNillableRemediationAttempts sets the "remediation_attempts" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableRemediationAttempts(v *int) *ThreatRecordUpdate {
	if v != nil {
		_u.SetRemediationAttempts(*v)
	}
	return _u
}

// AddRemediationAttempts adds value to the "remediation_attempts" field.
func (_u *ThreatRecordUpdate) AddRemediationAttempts(v int) *ThreatRecordUpdate {
	_u.mutation.AddRemediationAttempts(v)
	return _u
}

// ClearRemediationAttempts clears the value of the "remediation_attempts" field.
func (_u *ThreatRecordUpdate) ClearRemediationAttempts() *ThreatRecordUpdate {
	_u.mutation.ClearRemediationAttempts()
	return _u
}

// SetRemediationError sets the "remediation_error" field.
func (_u *ThreatRecordUpdate) SetRemediationError(v string) *ThreatRecordUpdate {
	_u.mutation.SetRemediationError(v)
	return _u
}

// SetNillableRemediationError sets the "remediation_error" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableRemediationError(v *string) *ThreatRecordUpdate {
	if v != nil {
		_u.SetRemediationError(*v)
	}
	return _u
}

// ClearRemediationError clears the value of the "remediation_error" field.
func (_u *ThreatRecordUpdate) ClearRemediationError() *ThreatRecordUpdate {
	_u.mutation.ClearRemediationError()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ThreatRecordUpdate) SetStatus(v threatrecord.Status) *ThreatRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableStatus(v *threatrecord.Status) *ThreatRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotifiedAt sets the "notified_at" field.
func (_u *ThreatRecordUpdate) SetNotifiedAt(v time.Time) *ThreatRecordUpdate {
	_u.mutation.SetNotifiedAt(v)
	return _u
}

// SetNillableNotifiedAt sets the "notified_at" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableNotifiedAt(v *time.Time) *ThreatRecordUpdate {
	if v != nil {
		_u.SetNotifiedAt(*v)
	}
	return _u
}

// ClearNotifiedAt clears the value of the "notified_at" field.
func (_u *ThreatRecordUpdate) ClearNotifiedAt() *ThreatRecordUpdate {
	_u.mutation.ClearNotifiedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ThreatRecordUpdate) SetExpiresAt(v time.Time) *ThreatRecordUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ThreatRecordUpdate) SetNillableExpiresAt(v *time.Time) *ThreatRecordUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThreatRecordUpdate) SetUpdatedAt(v time.Time) *ThreatRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ThreatRecordMutation object of the builder.
func (_u *ThreatRecordUpdate) Mutation() *ThreatRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ThreatRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreatRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ThreatRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreatRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ThreatRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := threatrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreatRecordUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := threatrecord.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriageBand(); ok {
		if err := threatrecord.TriageBandValidator(v); err != nil {
			return &ValidationError{Name: "triage_band", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.triage_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RemediationStatus(); ok {
		if err := threatrecord.RemediationStatusValidator(v); err != nil {
			return &ValidationError{Name: "remediation_status", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.remediation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := threatrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreatRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(threatrecord.Table, threatrecord.Columns, sqlgraph.NewFieldSpec(threatrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(threatrecord.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(threatrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(threatrecord.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(threatrecord.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(threatrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(threatrecord.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RawSeverity(); ok {
		_spec.SetField(threatrecord.FieldRawSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawSeverity(); ok {
		_spec.AddField(threatrecord.FieldRawSeverity, field.TypeFloat64, value)
	}
	if _u.mutation.RawSeverityCleared() {
		_spec.ClearField(threatrecord.FieldRawSeverity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(threatrecord.FieldResourceType, field.TypeString, value)
	}
	if _u.mutation.ResourceTypeCleared() {
		_spec.ClearField(threatrecord.FieldResourceType, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(threatrecord.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(threatrecord.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(threatrecord.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(threatrecord.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.MlThreatScore(); ok {
		_spec.SetField(threatrecord.FieldMlThreatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMlThreatScore(); ok {
		_spec.AddField(threatrecord.FieldMlThreatScore, field.TypeFloat64, value)
	}
	if _u.mutation.MlThreatScoreCleared() {
		_spec.ClearField(threatrecord.FieldMlThreatScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MlConfidence(); ok {
		_spec.SetField(threatrecord.FieldMlConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMlConfidence(); ok {
		_spec.AddField(threatrecord.FieldMlConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MlConfidenceCleared() {
		_spec.ClearField(threatrecord.FieldMlConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MlModelVersion(); ok {
		_spec.SetField(threatrecord.FieldMlModelVersion, field.TypeString, value)
	}
	if _u.mutation.MlModelVersionCleared() {
		_spec.ClearField(threatrecord.FieldMlModelVersion, field.TypeString)
	}
	if value, ok := _u.mutation.MlFeatureVersion(); ok {
		_spec.SetField(threatrecord.FieldMlFeatureVersion, field.TypeString, value)
	}
	if _u.mutation.MlFeatureVersionCleared() {
		_spec.ClearField(threatrecord.FieldMlFeatureVersion, field.TypeString)
	}
	if value, ok := _u.mutation.MlError(); ok {
		_spec.SetField(threatrecord.FieldMlError, field.TypeString, value)
	}
	if _u.mutation.MlErrorCleared() {
		_spec.ClearField(threatrecord.FieldMlError, field.TypeString)
	}
	if value, ok := _u.mutation.TriagePriority(); ok {
		_spec.SetField(threatrecord.FieldTriagePriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTriagePriority(); ok {
		_spec.AddField(threatrecord.FieldTriagePriority, field.TypeFloat64, value)
	}
	if _u.mutation.TriagePriorityCleared() {
		_spec.ClearField(threatrecord.FieldTriagePriority, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TriageBand(); ok {
		_spec.SetField(threatrecord.FieldTriageBand, field.TypeEnum, value)
	}
	if _u.mutation.TriageBandCleared() {
		_spec.ClearField(threatrecord.FieldTriageBand, field.TypeEnum)
	}
	if value, ok := _u.mutation.RecommendedActions(); ok {
		_spec.SetField(threatrecord.FieldRecommendedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, threatrecord.FieldRecommendedActions, value)
		})
	}
	if _u.mutation.RecommendedActionsCleared() {
		_spec.ClearField(threatrecord.FieldRecommendedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiresHumanReview(); ok {
		_spec.SetField(threatrecord.FieldRequiresHumanReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnalysisRiskScore(); ok {
		_spec.SetField(threatrecord.FieldAnalysisRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnalysisRiskScore(); ok {
		_spec.AddField(threatrecord.FieldAnalysisRiskScore, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisRiskScoreCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisRiskScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnalysisAttackVector(); ok {
		_spec.SetField(threatrecord.FieldAnalysisAttackVector, field.TypeString, value)
	}
	if _u.mutation.AnalysisAttackVectorCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisAttackVector, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisConfidence(); ok {
		_spec.SetField(threatrecord.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnalysisConfidence(); ok {
		_spec.AddField(threatrecord.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisConfidenceCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnalysisBusinessImpact(); ok {
		_spec.SetField(threatrecord.FieldAnalysisBusinessImpact, field.TypeString, value)
	}
	if _u.mutation.AnalysisBusinessImpactCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisBusinessImpact, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisSummary(); ok {
		_spec.SetField(threatrecord.FieldAnalysisSummary, field.TypeString, value)
	}
	if _u.mutation.AnalysisSummaryCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisError(); ok {
		_spec.SetField(threatrecord.FieldAnalysisError, field.TypeString, value)
	}
	if _u.mutation.AnalysisErrorCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisError, field.TypeString)
	}
	if value, ok := _u.mutation.RemediationAction(); ok {
		_spec.SetField(threatrecord.FieldRemediationAction, field.TypeString, value)
	}
	if _u.mutation.RemediationActionCleared() {
		_spec.ClearField(threatrecord.FieldRemediationAction, field.TypeString)
	}
	if value, ok := _u.mutation.RemediationStatus(); ok {
		_spec.SetField(threatrecord.FieldRemediationStatus, field.TypeEnum, value)
	}
	if _u.mutation.RemediationStatusCleared() {
		_spec.ClearField(threatrecord.FieldRemediationStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.RemediationAttempts(); ok {
		_spec.SetField(threatrecord.FieldRemediationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemediationAttempts(); ok {
		_spec.AddField(threatrecord.FieldRemediationAttempts, field.TypeInt, value)
	}
	if _u.mutation.RemediationAttemptsCleared() {
		_spec.ClearField(threatrecord.FieldRemediationAttempts, field.TypeInt)
	}
	if value, ok := _u.mutation.RemediationError(); ok {
		_spec.SetField(threatrecord.FieldRemediationError, field.TypeString, value)
	}
	if _u.mutation.RemediationErrorCleared() {
		_spec.ClearField(threatrecord.FieldRemediationError, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(threatrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NotifiedAt(); ok {
		_spec.SetField(threatrecord.FieldNotifiedAt, field.TypeTime, value)
	}
	if _u.mutation.NotifiedAtCleared() {
		_spec.ClearField(threatrecord.FieldNotifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(threatrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(threatrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threatrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ThreatRecordUpdateOne is the builder for updating a single ThreatRecord entity.
type ThreatRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ThreatRecordMutation
}

// SetReceivedAt sets the "received_at" field.
func (_u *ThreatRecordUpdateOne) SetReceivedAt(v time.Time) *ThreatRecordUpdateOne {
	_u.mutation.SetReceivedAt(v)
	return _u
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableReceivedAt(v *time.Time) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetReceivedAt(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *ThreatRecordUpdateOne) SetSource(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableSource(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetAccountID sets the "account_id" field.
func (_u *ThreatRecordUpdateOne) SetAccountID(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetAccountID(v)
	return _u
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableAccountID(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetAccountID(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *ThreatRecordUpdateOne) SetRegion(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableRegion(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ThreatRecordUpdateOne) SetKind(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableKind(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *ThreatRecordUpdateOne) SetSeverity(v threatrecord.Severity) *ThreatRecordUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableSeverity(v *threatrecord.Severity) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetRawSeverity sets the "raw_severity" field.
func (_u *ThreatRecordUpdateOne) SetRawSeverity(v float64) *ThreatRecordUpdateOne {
	_u.mutation.ResetRawSeverity()
	_u.mutation.SetRawSeverity(v)
	return _u
}

// SetNillableRawSeverity sets the "raw_severity" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableRawSeverity(v *float64) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetRawSeverity(*v)
	}
	return _u
}

// AddRawSeverity adds value to the "raw_severity" field.
func (_u *ThreatRecordUpdateOne) AddRawSeverity(v float64) *ThreatRecordUpdateOne {
	_u.mutation.AddRawSeverity(v)
	return _u
}

// ClearRawSeverity clears the value of the "raw_severity" field.
func (_u *ThreatRecordUpdateOne) ClearRawSeverity() *ThreatRecordUpdateOne {
	_u.mutation.ClearRawSeverity()
	return _u
}

// SetResourceType sets the "resource_type" field.
func (_u *ThreatRecordUpdateOne) SetResourceType(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetResourceType(v)
	return _u
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableResourceType(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetResourceType(*v)
	}
	return _u
}

// ClearResourceType clears the value of the "resource_type" field.
func (_u *ThreatRecordUpdateOne) ClearResourceType() *ThreatRecordUpdateOne {
	_u.mutation.ClearResourceType()
	return _u
}

// SetResourceID sets the "resource_id" field.
func (_u *ThreatRecordUpdateOne) SetResourceID(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetResourceID(v)
	return _u
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableResourceID(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetResourceID(*v)
	}
	return _u
}

// ClearResourceID clears the value of the "resource_id" field.
func (_u *ThreatRecordUpdateOne) ClearResourceID() *ThreatRecordUpdateOne {
	_u.mutation.ClearResourceID()
	return _u
}

// SetDetails sets the "details" field.
func (_u *ThreatRecordUpdateOne) SetDetails(v map[string]interface{}) *ThreatRecordUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ThreatRecordUpdateOne) ClearDetails() *ThreatRecordUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// SetMlThreatScore sets the "ml_threat_score" field.
func (_u *ThreatRecordUpdateOne) SetMlThreatScore(v float64) *ThreatRecordUpdateOne {
	_u.mutation.ResetMlThreatScore()
	_u.mutation.SetMlThreatScore(v)
	return _u
}

// SetNillableMlThreatScore sets the "ml_threat_score" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableMlThreatScore(v *float64) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetMlThreatScore(*v)
	}
	return _u
}

// AddMlThreatScore adds value to the "ml_threat_score" field.
func (_u *ThreatRecordUpdateOne) AddMlThreatScore(v float64) *ThreatRecordUpdateOne {
	_u.mutation.AddMlThreatScore(v)
	return _u
}

// ClearMlThreatScore clears the value of the "ml_threat_score" field.
func (_u *ThreatRecordUpdateOne) ClearMlThreatScore() *ThreatRecordUpdateOne {
	_u.mutation.ClearMlThreatScore()
	return _u
}

// SetMlConfidence sets the "ml_confidence" field.
func (_u *ThreatRecordUpdateOne) SetMlConfidence(v float64) *ThreatRecordUpdateOne {
	_u.mutation.ResetMlConfidence()
	_u.mutation.SetMlConfidence(v)
	return _u
}

// SetNillableMlConfidence sets the "ml_confidence" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableMlConfidence(v *float64) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetMlConfidence(*v)
	}
	return _u
}

// AddMlConfidence adds value to the "ml_confidence" field.
func (_u *ThreatRecordUpdateOne) AddMlConfidence(v float64) *ThreatRecordUpdateOne {
	_u.mutation.AddMlConfidence(v)
	return _u
}

// ClearMlConfidence clears the value of the "ml_confidence" field.
func (_u *ThreatRecordUpdateOne) ClearMlConfidence() *ThreatRecordUpdateOne {
	_u.mutation.ClearMlConfidence()
	return _u
}

// SetMlModelVersion sets the "ml_model_version" field.
func (_u *ThreatRecordUpdateOne) SetMlModelVersion(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetMlModelVersion(v)
	return _u
}

// SetNillableMlModelVersion sets the "ml_model_version" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableMlModelVersion(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetMlModelVersion(*v)
	}
	return _u
}

// ClearMlModelVersion clears the value of the "ml_model_version" field.
func (_u *ThreatRecordUpdateOne) ClearMlModelVersion() *ThreatRecordUpdateOne {
	_u.mutation.ClearMlModelVersion()
	return _u
}

// SetMlFeatureVersion sets the "ml_feature_version" field.
func (_u *ThreatRecordUpdateOne) SetMlFeatureVersion(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetMlFeatureVersion(v)
	return _u
}

// SetNillableMlFeatureVersion sets the "ml_feature_version" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableMlFeatureVersion(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetMlFeatureVersion(*v)
	}
	return _u
}

// ClearMlFeatureVersion clears the value of the "ml_feature_version" field.
func (_u *ThreatRecordUpdateOne) ClearMlFeatureVersion() *ThreatRecordUpdateOne {
	_u.mutation.ClearMlFeatureVersion()
	return _u
}

// SetMlError sets the "ml_error" field.
func (_u *ThreatRecordUpdateOne) SetMlError(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetMlError(v)
	return _u
}

// SetNillableMlError sets the "ml_error" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableMlError(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetMlError(*v)
	}
	return _u
}

// ClearMlError clears the value of the "ml_error" field.
func (_u *ThreatRecordUpdateOne) ClearMlError() *ThreatRecordUpdateOne {
	_u.mutation.ClearMlError()
	return _u
}

// SetTriagePriority sets the "triage_priority" field.
func (_u *ThreatRecordUpdateOne) SetTriagePriority(v float64) *ThreatRecordUpdateOne {
	_u.mutation.ResetTriagePriority()
	_u.mutation.SetTriagePriority(v)
	return _u
}

// SetNillableTriagePriority sets the "triage_priority" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableTriagePriority(v *float64) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetTriagePriority(*v)
	}
	return _u
}

// AddTriagePriority adds value to the "triage_priority" field.
func (_u *ThreatRecordUpdateOne) AddTriagePriority(v float64) *ThreatRecordUpdateOne {
	_u.mutation.AddTriagePriority(v)
	return _u
}

// ClearTriagePriority clears the value of the "triage_priority" field.
func (_u *ThreatRecordUpdateOne) ClearTriagePriority() *ThreatRecordUpdateOne {
	_u.mutation.ClearTriagePriority()
	return _u
}

// SetTriageBand sets the "triage_band" field.
func (_u *ThreatRecordUpdateOne) SetTriageBand(v threatrecord.TriageBand) *ThreatRecordUpdateOne {
	_u.mutation.SetTriageBand(v)
	return _u
}

// SetNillableTriageBand sets the "triage_band" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableTriageBand(v *threatrecord.TriageBand) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetTriageBand(*v)
	}
	return _u
}

// ClearTriageBand clears the value of the "triage_band" field.
func (_u *ThreatRecordUpdateOne) ClearTriageBand() *ThreatRecordUpdateOne {
	_u.mutation.ClearTriageBand()
	return _u
}

// SetRecommendedActions sets the "recommended_actions" field.
func (_u *ThreatRecordUpdateOne) SetRecommendedActions(v []string) *ThreatRecordUpdateOne {
	_u.mutation.SetRecommendedActions(v)
	return _u
}

// AppendRecommendedActions appends value to the "recommended_actions" field.
func (_u *ThreatRecordUpdateOne) AppendRecommendedActions(v []string) *ThreatRecordUpdateOne {
	_u.mutation.AppendRecommendedActions(v)
	return _u
}

// ClearRecommendedActions clears the value of the "recommended_actions" field.
func (_u *ThreatRecordUpdateOne) ClearRecommendedActions() *ThreatRecordUpdateOne {
	_u.mutation.ClearRecommendedActions()
	return _u
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_u *ThreatRecordUpdateOne) SetRequiresHumanReview(v bool) *ThreatRecordUpdateOne {
	_u.mutation.SetRequiresHumanReview(v)
	return _u
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableRequiresHumanReview(v *bool) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetRequiresHumanReview(*v)
	}
	return _u
}

// SetAnalysisRiskScore sets the "analysis_risk_score" field.
func (_u *ThreatRecordUpdateOne) SetAnalysisRiskScore(v float64) *ThreatRecordUpdateOne {
	_u.mutation.ResetAnalysisRiskScore()
	_u.mutation.SetAnalysisRiskScore(v)
	return _u
}

// SetNillableAnalysisRiskScore sets the "analysis_risk_score" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableAnalysisRiskScore(v *float64) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetAnalysisRiskScore(*v)
	}
	return _u
}

// AddAnalysisRiskScore adds value to the "analysis_risk_score" field.
func (_u *ThreatRecordUpdateOne) AddAnalysisRiskScore(v float64) *ThreatRecordUpdateOne {
	_u.mutation.AddAnalysisRiskScore(v)
	return _u
}

// ClearAnalysisRiskScore clears the value of the "analysis_risk_score" field.
func (_u *ThreatRecordUpdateOne) ClearAnalysisRiskScore() *ThreatRecordUpdateOne {
	_u.mutation.ClearAnalysisRiskScore()
	return _u
}

// SetAnalysisAttackVector sets the "analysis_attack_vector" field.
func (_u *ThreatRecordUpdateOne) SetAnalysisAttackVector(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetAnalysisAttackVector(v)
	return _u
}

// SetNillableAnalysisAttackVector sets the "analysis_attack_vector" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableAnalysisAttackVector(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetAnalysisAttackVector(*v)
	}
	return _u
}

// ClearAnalysisAttackVector clears the value of the "analysis_attack_vector" field.
func (_u *ThreatRecordUpdateOne) ClearAnalysisAttackVector() *ThreatRecordUpdateOne {
	_u.mutation.ClearAnalysisAttackVector()
	return _u
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (_u *ThreatRecordUpdateOne) SetAnalysisConfidence(v float64) *ThreatRecordUpdateOne {
	_u.mutation.ResetAnalysisConfidence()
	_u.mutation.SetAnalysisConfidence(v)
	return _u
}

// SetNillableAnalysisConfidence sets the "analysis_confidence" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableAnalysisConfidence(v *float64) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetAnalysisConfidence(*v)
	}
	return _u
}

// AddAnalysisConfidence adds value to the "analysis_confidence" field.
func (_u *ThreatRecordUpdateOne) AddAnalysisConfidence(v float64) *ThreatRecordUpdateOne {
	_u.mutation.AddAnalysisConfidence(v)
	return _u
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (_u *ThreatRecordUpdateOne) ClearAnalysisConfidence() *ThreatRecordUpdateOne {
	_u.mutation.ClearAnalysisConfidence()
	return _u
}

// SetAnalysisBusinessImpact sets the "analysis_business_impact" field.
func (_u *ThreatRecordUpdateOne) SetAnalysisBusinessImpact(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetAnalysisBusinessImpact(v)
	return _u
}

// SetNillableAnalysisBusinessImpact sets the "analysis_business_impact" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableAnalysisBusinessImpact(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetAnalysisBusinessImpact(*v)
	}
	return _u
}

// ClearAnalysisBusinessImpact clears the value of the "analysis_business_impact" field.
func (_u *ThreatRecordUpdateOne) ClearAnalysisBusinessImpact() *ThreatRecordUpdateOne {
	_u.mutation.ClearAnalysisBusinessImpact()
	return _u
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (_u *ThreatRecordUpdateOne) SetAnalysisSummary(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetAnalysisSummary(v)
	return _u
}

// SetNillableAnalysisSummary sets the "analysis_summary" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableAnalysisSummary(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetAnalysisSummary(*v)
	}
	return _u
}

// ClearAnalysisSummary clears the value of the "analysis_summary" field.
func (_u *ThreatRecordUpdateOne) ClearAnalysisSummary() *ThreatRecordUpdateOne {
	_u.mutation.ClearAnalysisSummary()
	return _u
}

// SetAnalysisError sets the "analysis_error" field.
func (_u *ThreatRecordUpdateOne) SetAnalysisError(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetAnalysisError(v)
	return _u
}

// SetNillableAnalysisError sets the "analysis_error" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableAnalysisError(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetAnalysisError(*v)
	}
	return _u
}

// ClearAnalysisError clears the value of the "analysis_error" field.
func (_u *ThreatRecordUpdateOne) ClearAnalysisError() *ThreatRecordUpdateOne {
	_u.mutation.ClearAnalysisError()
	return _u
}

// SetRemediationAction sets the "remediation_action" field.
func (_u *ThreatRecordUpdateOne) SetRemediationAction(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetRemediationAction(v)
	return _u
}

// SetNillableRemediationAction sets the "remediation_action" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableRemediationAction(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetRemediationAction(*v)
	}
	return _u
}

// ClearRemediationAction clears the value of the "remediation_action" field.
func (_u *ThreatRecordUpdateOne) ClearRemediationAction() *ThreatRecordUpdateOne {
	_u.mutation.ClearRemediationAction()
	return _u
}

// SetRemediationStatus sets the "remediation_status" field.
func (_u *ThreatRecordUpdateOne) SetRemediationStatus(v threatrecord.RemediationStatus) *ThreatRecordUpdateOne {
	_u.mutation.SetRemediationStatus(v)
	return _u
}

// SetNillableRemediationStatus sets the "remediation_status" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableRemediationStatus(v *threatrecord.RemediationStatus) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetRemediationStatus(*v)
	}
	return _u
}

// ClearRemediationStatus clears the value of the "remediation_status" field.
func (_u *ThreatRecordUpdateOne) ClearRemediationStatus() *ThreatRecordUpdateOne {
	_u.mutation.ClearRemediationStatus()
	return _u
}

// SetRemediationAttempts sets the "remediation_attempts" field.
func (_u *ThreatRecordUpdateOne) SetRemediationAttempts(v int) *ThreatRecordUpdateOne {
	_u.mutation.ResetRemediationAttempts()
	_u.mutation.SetRemediationAttempts(v)
	return _u
}

// SetNillableRemediationAttempts sets the "remediation_attempts" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableRemediationAttempts(v *int) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetRemediationAttempts(*v)
	}
	return _u
}

// AddRemediationAttempts adds value to the "remediation_attempts" field.
func (_u *ThreatRecordUpdateOne) AddRemediationAttempts(v int) *ThreatRecordUpdateOne {
	_u.mutation.AddRemediationAttempts(v)
	return _u
}

// ClearRemediationAttempts clears the value of the "remediation_attempts" field.
func (_u *ThreatRecordUpdateOne) ClearRemediationAttempts() *ThreatRecordUpdateOne {
	_u.mutation.ClearRemediationAttempts()
	return _u
}

// SetRemediationError sets the "remediation_error" field.
func (_u *ThreatRecordUpdateOne) SetRemediationError(v string) *ThreatRecordUpdateOne {
	_u.mutation.SetRemediationError(v)
	return _u
}

// SetNillableRemediationError sets the "remediation_error" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableRemediationError(v *string) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetRemediationError(*v)
	}
	return _u
}

// ClearRemediationError clears the value of the "remediation_error" field.
func (_u *ThreatRecordUpdateOne) ClearRemediationError() *ThreatRecordUpdateOne {
	_u.mutation.ClearRemediationError()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ThreatRecordUpdateOne) SetStatus(v threatrecord.Status) *ThreatRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableStatus(v *threatrecord.Status) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotifiedAt sets the "notified_at" field.
func (_u *ThreatRecordUpdateOne) SetNotifiedAt(v time.Time) *ThreatRecordUpdateOne {
	_u.mutation.SetNotifiedAt(v)
	return _u
}

// SetNillableNotifiedAt sets the "notified_at" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableNotifiedAt(v *time.Time) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetNotifiedAt(*v)
	}
	return _u
}

// ClearNotifiedAt clears the value of the "notified_at" field.
func (_u *ThreatRecordUpdateOne) ClearNotifiedAt() *ThreatRecordUpdateOne {
	_u.mutation.ClearNotifiedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *ThreatRecordUpdateOne) SetExpiresAt(v time.Time) *ThreatRecordUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *ThreatRecordUpdateOne) SetNillableExpiresAt(v *time.Time) *ThreatRecordUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ThreatRecordUpdateOne) SetUpdatedAt(v time.Time) *ThreatRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ThreatRecordMutation object of the builder.
func (_u *ThreatRecordUpdateOne) Mutation() *ThreatRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ThreatRecordUpdate builder.
func (_u *ThreatRecordUpdateOne) Where(ps ...predicate.ThreatRecord) *ThreatRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ThreatRecordUpdateOne) Select(field string, fields ...string) *ThreatRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ThreatRecord entity.
func (_u *ThreatRecordUpdateOne) Save(ctx context.Context) (*ThreatRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ThreatRecordUpdateOne) SaveX(ctx context.Context) *ThreatRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ThreatRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ThreatRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ThreatRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := threatrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ThreatRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := threatrecord.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.severity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TriageBand(); ok {
		if err := threatrecord.TriageBandValidator(v); err != nil {
			return &ValidationError{Name: "triage_band", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.triage_band": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RemediationStatus(); ok {
		if err := threatrecord.RemediationStatusValidator(v); err != nil {
			return &ValidationError{Name: "remediation_status", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.remediation_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := threatrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ThreatRecordUpdateOne) sqlSave(ctx context.Context) (_node *ThreatRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(threatrecord.Table, threatrecord.Columns, sqlgraph.NewFieldSpec(threatrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ThreatRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, threatrecord.FieldID)
		for _, f := range fields {
			if !threatrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != threatrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReceivedAt(); ok {
		_spec.SetField(threatrecord.FieldReceivedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(threatrecord.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccountID(); ok {
		_spec.SetField(threatrecord.FieldAccountID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(threatrecord.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(threatrecord.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(threatrecord.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RawSeverity(); ok {
		_spec.SetField(threatrecord.FieldRawSeverity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRawSeverity(); ok {
		_spec.AddField(threatrecord.FieldRawSeverity, field.TypeFloat64, value)
	}
	if _u.mutation.RawSeverityCleared() {
		_spec.ClearField(threatrecord.FieldRawSeverity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ResourceType(); ok {
		_spec.SetField(threatrecord.FieldResourceType, field.TypeString, value)
	}
	if _u.mutation.ResourceTypeCleared() {
		_spec.ClearField(threatrecord.FieldResourceType, field.TypeString)
	}
	if value, ok := _u.mutation.ResourceID(); ok {
		_spec.SetField(threatrecord.FieldResourceID, field.TypeString, value)
	}
	if _u.mutation.ResourceIDCleared() {
		_spec.ClearField(threatrecord.FieldResourceID, field.TypeString)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(threatrecord.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(threatrecord.FieldDetails, field.TypeJSON)
	}
	if value, ok := _u.mutation.MlThreatScore(); ok {
		_spec.SetField(threatrecord.FieldMlThreatScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMlThreatScore(); ok {
		_spec.AddField(threatrecord.FieldMlThreatScore, field.TypeFloat64, value)
	}
	if _u.mutation.MlThreatScoreCleared() {
		_spec.ClearField(threatrecord.FieldMlThreatScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MlConfidence(); ok {
		_spec.SetField(threatrecord.FieldMlConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMlConfidence(); ok {
		_spec.AddField(threatrecord.FieldMlConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.MlConfidenceCleared() {
		_spec.ClearField(threatrecord.FieldMlConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MlModelVersion(); ok {
		_spec.SetField(threatrecord.FieldMlModelVersion, field.TypeString, value)
	}
	if _u.mutation.MlModelVersionCleared() {
		_spec.ClearField(threatrecord.FieldMlModelVersion, field.TypeString)
	}
	if value, ok := _u.mutation.MlFeatureVersion(); ok {
		_spec.SetField(threatrecord.FieldMlFeatureVersion, field.TypeString, value)
	}
	if _u.mutation.MlFeatureVersionCleared() {
		_spec.ClearField(threatrecord.FieldMlFeatureVersion, field.TypeString)
	}
	if value, ok := _u.mutation.MlError(); ok {
		_spec.SetField(threatrecord.FieldMlError, field.TypeString, value)
	}
	if _u.mutation.MlErrorCleared() {
		_spec.ClearField(threatrecord.FieldMlError, field.TypeString)
	}
	if value, ok := _u.mutation.TriagePriority(); ok {
		_spec.SetField(threatrecord.FieldTriagePriority, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTriagePriority(); ok {
		_spec.AddField(threatrecord.FieldTriagePriority, field.TypeFloat64, value)
	}
	if _u.mutation.TriagePriorityCleared() {
		_spec.ClearField(threatrecord.FieldTriagePriority, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TriageBand(); ok {
		_spec.SetField(threatrecord.FieldTriageBand, field.TypeEnum, value)
	}
	if _u.mutation.TriageBandCleared() {
		_spec.ClearField(threatrecord.FieldTriageBand, field.TypeEnum)
	}
	if value, ok := _u.mutation.RecommendedActions(); ok {
		_spec.SetField(threatrecord.FieldRecommendedActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRecommendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, threatrecord.FieldRecommendedActions, value)
		})
	}
	if _u.mutation.RecommendedActionsCleared() {
		_spec.ClearField(threatrecord.FieldRecommendedActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequiresHumanReview(); ok {
		_spec.SetField(threatrecord.FieldRequiresHumanReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AnalysisRiskScore(); ok {
		_spec.SetField(threatrecord.FieldAnalysisRiskScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnalysisRiskScore(); ok {
		_spec.AddField(threatrecord.FieldAnalysisRiskScore, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisRiskScoreCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisRiskScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnalysisAttackVector(); ok {
		_spec.SetField(threatrecord.FieldAnalysisAttackVector, field.TypeString, value)
	}
	if _u.mutation.AnalysisAttackVectorCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisAttackVector, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisConfidence(); ok {
		_spec.SetField(threatrecord.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAnalysisConfidence(); ok {
		_spec.AddField(threatrecord.FieldAnalysisConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.AnalysisConfidenceCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.AnalysisBusinessImpact(); ok {
		_spec.SetField(threatrecord.FieldAnalysisBusinessImpact, field.TypeString, value)
	}
	if _u.mutation.AnalysisBusinessImpactCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisBusinessImpact, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisSummary(); ok {
		_spec.SetField(threatrecord.FieldAnalysisSummary, field.TypeString, value)
	}
	if _u.mutation.AnalysisSummaryCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisSummary, field.TypeString)
	}
	if value, ok := _u.mutation.AnalysisError(); ok {
		_spec.SetField(threatrecord.FieldAnalysisError, field.TypeString, value)
	}
	if _u.mutation.AnalysisErrorCleared() {
		_spec.ClearField(threatrecord.FieldAnalysisError, field.TypeString)
	}
	if value, ok := _u.mutation.RemediationAction(); ok {
		_spec.SetField(threatrecord.FieldRemediationAction, field.TypeString, value)
	}
	if _u.mutation.RemediationActionCleared() {
		_spec.ClearField(threatrecord.FieldRemediationAction, field.TypeString)
	}
	if value, ok := _u.mutation.RemediationStatus(); ok {
		_spec.SetField(threatrecord.FieldRemediationStatus, field.TypeEnum, value)
	}
	if _u.mutation.RemediationStatusCleared() {
		_spec.ClearField(threatrecord.FieldRemediationStatus, field.TypeEnum)
	}
	if value, ok := _u.mutation.RemediationAttempts(); ok {
		_spec.SetField(threatrecord.FieldRemediationAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemediationAttempts(); ok {
		_spec.AddField(threatrecord.FieldRemediationAttempts, field.TypeInt, value)
	}
	if _u.mutation.RemediationAttemptsCleared() {
		_spec.ClearField(threatrecord.FieldRemediationAttempts, field.TypeInt)
	}
	if value, ok := _u.mutation.RemediationError(); ok {
		_spec.SetField(threatrecord.FieldRemediationError, field.TypeString, value)
	}
	if _u.mutation.RemediationErrorCleared() {
		_spec.ClearField(threatrecord.FieldRemediationError, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(threatrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.NotifiedAt(); ok {
		_spec.SetField(threatrecord.FieldNotifiedAt, field.TypeTime, value)
	}
	if _u.mutation.NotifiedAtCleared() {
		_spec.ClearField(threatrecord.FieldNotifiedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(threatrecord.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(threatrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ThreatRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{threatrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

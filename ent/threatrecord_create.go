// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/argus-soc/argus/ent/threatrecord"
)

// ThreatRecordCreate is the builder for creating a ThreatRecord entity.
type ThreatRecordCreate struct {
	config
	mutation *ThreatRecordMutation
	hooks    []Hook
}

// SetEventID sets the "event_id" field.
func (_c *ThreatRecordCreate) SetEventID(v string) *ThreatRecordCreate {
	_c.mutation.SetEventID(v)
	return _c
}

// SetObservedAt sets the "observed_at" field.
func (_c *ThreatRecordCreate) SetObservedAt(v time.Time) *ThreatRecordCreate {
	_c.mutation.SetObservedAt(v)
	return _c
}

// SetReceivedAt sets the "received_at" field.
func (_c *ThreatRecordCreate) SetReceivedAt(v time.Time) *ThreatRecordCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *ThreatRecordCreate) SetSource(v string) *ThreatRecordCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *ThreatRecordCreate) SetAccountID(v string) *ThreatRecordCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetRegion sets the "region" field.
func (_c *ThreatRecordCreate) SetRegion(v string) *ThreatRecordCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ThreatRecordCreate) SetKind(v string) *ThreatRecordCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *ThreatRecordCreate) SetSeverity(v threatrecord.Severity) *ThreatRecordCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetRawSeverity sets the "raw_severity" field.
func (_c *ThreatRecordCreate) SetRawSeverity(v float64) *ThreatRecordCreate {
	_c.mutation.SetRawSeverity(v)
	return _c
}

// SetNillableRawSeverity sets the "raw_severity" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableRawSeverity(v *float64) *ThreatRecordCreate {
	if v != nil {
		_c.SetRawSeverity(*v)
	}
	return _c
}

// SetResourceType sets the "resource_type" field.
func (_c *ThreatRecordCreate) SetResourceType(v string) *ThreatRecordCreate {
	_c.mutation.SetResourceType(v)
	return _c
}

// SetNillableResourceType sets the "resource_type" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableResourceType(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetResourceType(*v)
	}
	return _c
}

// SetResourceID sets the "resource_id" field.
func (_c *ThreatRecordCreate) SetResourceID(v string) *ThreatRecordCreate {
	_c.mutation.SetResourceID(v)
	return _c
}

// SetNillableResourceID sets the "resource_id" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableResourceID(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetResourceID(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *ThreatRecordCreate) SetDetails(v map[string]interface{}) *ThreatRecordCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetMlThreatScore sets the "ml_threat_score" field.
func (_c *ThreatRecordCreate) SetMlThreatScore(v float64) *ThreatRecordCreate {
	_c.mutation.SetMlThreatScore(v)
	return _c
}

// SetNillableMlThreatScore sets the "ml_threat_score" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableMlThreatScore(v *float64) *ThreatRecordCreate {
	if v != nil {
		_c.SetMlThreatScore(*v)
	}
	return _c
}

// SetMlConfidence sets the "ml_confidence" field.
func (_c *ThreatRecordCreate) SetMlConfidence(v float64) *ThreatRecordCreate {
	_c.mutation.SetMlConfidence(v)
	return _c
}

// SetNillableMlConfidence sets the "ml_confidence" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableMlConfidence(v *float64) *ThreatRecordCreate {
	if v != nil {
		_c.SetMlConfidence(*v)
	}
	return _c
}

// SetMlModelVersion sets the "ml_model_version" field.
func (_c *ThreatRecordCreate) SetMlModelVersion(v string) *ThreatRecordCreate {
	_c.mutation.SetMlModelVersion(v)
	return _c
}

// SetNillableMlModelVersion sets the "ml_model_version" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableMlModelVersion(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetMlModelVersion(*v)
	}
	return _c
}

// SetMlFeatureVersion sets the "ml_feature_version" field.
func (_c *ThreatRecordCreate) SetMlFeatureVersion(v string) *ThreatRecordCreate {
	_c.mutation.SetMlFeatureVersion(v)
	return _c
}

// SetNillableMlFeatureVersion sets the "ml_feature_version" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableMlFeatureVersion(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetMlFeatureVersion(*v)
	}
	return _c
}

// SetMlError sets the "ml_error" field.
func (_c *ThreatRecordCreate) SetMlError(v string) *ThreatRecordCreate {
	_c.mutation.SetMlError(v)
	return _c
}

// SetNillableMlError sets the "ml_error" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableMlError(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetMlError(*v)
	}
	return _c
}

// SetTriagePriority sets the "triage_priority" field.
func (_c *ThreatRecordCreate) SetTriagePriority(v float64) *ThreatRecordCreate {
	_c.mutation.SetTriagePriority(v)
	return _c
}

// SetNillableTriagePriority sets the "triage_priority" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableTriagePriority(v *float64) *ThreatRecordCreate {
	if v != nil {
		_c.SetTriagePriority(*v)
	}
	return _c
}

// SetTriageBand sets the "triage_band" field.
func (_c *ThreatRecordCreate) SetTriageBand(v threatrecord.TriageBand) *ThreatRecordCreate {
	_c.mutation.SetTriageBand(v)
	return _c
}

// SetNillableTriageBand sets the "triage_band" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableTriageBand(v *threatrecord.TriageBand) *ThreatRecordCreate {
	if v != nil {
		_c.SetTriageBand(*v)
	}
	return _c
}

// SetRecommendedActions sets the "recommended_actions" field.
func (_c *ThreatRecordCreate) SetRecommendedActions(v []string) *ThreatRecordCreate {
	_c.mutation.SetRecommendedActions(v)
	return _c
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_c *ThreatRecordCreate) SetRequiresHumanReview(v bool) *ThreatRecordCreate {
	_c.mutation.SetRequiresHumanReview(v)
	return _c
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableRequiresHumanReview(v *bool) *ThreatRecordCreate {
	if v != nil {
		_c.SetRequiresHumanReview(*v)
	}
	return _c
}

// SetAnalysisRiskScore sets the "analysis_risk_score" field.
func (_c *ThreatRecordCreate) SetAnalysisRiskScore(v float64) *ThreatRecordCreate {
	_c.mutation.SetAnalysisRiskScore(v)
	return _c
}

// SetNillableAnalysisRiskScore sets the "analysis_risk_score" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableAnalysisRiskScore(v *float64) *ThreatRecordCreate {
	if v != nil {
		_c.SetAnalysisRiskScore(*v)
	}
	return _c
}

// SetAnalysisAttackVector sets the "analysis_attack_vector" field.
func (_c *ThreatRecordCreate) SetAnalysisAttackVector(v string) *ThreatRecordCreate {
	_c.mutation.SetAnalysisAttackVector(v)
	return _c
}

// SetNillableAnalysisAttackVector sets the "analysis_attack_vector" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableAnalysisAttackVector(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetAnalysisAttackVector(*v)
	}
	return _c
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (_c *ThreatRecordCreate) SetAnalysisConfidence(v float64) *ThreatRecordCreate {
	_c.mutation.SetAnalysisConfidence(v)
	return _c
}

// SetNillableAnalysisConfidence sets the "analysis_confidence" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableAnalysisConfidence(v *float64) *ThreatRecordCreate {
	if v != nil {
		_c.SetAnalysisConfidence(*v)
	}
	return _c
}

// SetAnalysisBusinessImpact sets the "analysis_business_impact" field.
func (_c *ThreatRecordCreate) SetAnalysisBusinessImpact(v string) *ThreatRecordCreate {
	_c.mutation.SetAnalysisBusinessImpact(v)
	return _c
}

// SetNillableAnalysisBusinessImpact sets the "analysis_business_impact" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableAnalysisBusinessImpact(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetAnalysisBusinessImpact(*v)
	}
	return _c
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (_c *ThreatRecordCreate) SetAnalysisSummary(v string) *ThreatRecordCreate {
	_c.mutation.SetAnalysisSummary(v)
	return _c
}

// SetNillableAnalysisSummary sets the "analysis_summary" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableAnalysisSummary(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetAnalysisSummary(*v)
	}
	return _c
}

// SetAnalysisError sets the "analysis_error" field.
func (_c *ThreatRecordCreate) SetAnalysisError(v string) *ThreatRecordCreate {
	_c.mutation.SetAnalysisError(v)
	return _c
}

// SetNillableAnalysisError sets the "analysis_error" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableAnalysisError(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetAnalysisError(*v)
	}
	return _c
}

// SetRemediationAction sets the "remediation_action" field.
func (_c *ThreatRecordCreate) SetRemediationAction(v string) *ThreatRecordCreate {
	_c.mutation.SetRemediationAction(v)
	return _c
}

// SetNillableRemediationAction sets the "remediation_action" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableRemediationAction(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetRemediationAction(*v)
	}
	return _c
}

// SetRemediationStatus sets the "remediation_status" field.
func (_c *ThreatRecordCreate) SetRemediationStatus(v threatrecord.RemediationStatus) *ThreatRecordCreate {
	_c.mutation.SetRemediationStatus(v)
	return _c
}

// SetNillableRemediationStatus sets the "remediation_status" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableRemediationStatus(v *threatrecord.RemediationStatus) *ThreatRecordCreate {
	if v != nil {
		_c.SetRemediationStatus(*v)
	}
	return _c
}

// SetRemediationAttempts sets the "remediation_attempts" field.
func (_c *ThreatRecordCreate) SetRemediationAttempts(v int) *ThreatRecordCreate {
	_c.mutation.SetRemediationAttempts(v)
	return _c
}

// SetNillableRemediationAttempts sets the "remediation_attempts" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableRemediationAttempts(v *int) *ThreatRecordCreate {
	if v != nil {
		_c.SetRemediationAttempts(*v)
	}
	return _c
}

// SetRemediationError sets the "remediation_error" field.
func (_c *ThreatRecordCreate) SetRemediationError(v string) *ThreatRecordCreate {
	_c.mutation.SetRemediationError(v)
	return _c
}

// SetNillableRemediationError sets the "remediation_error" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableRemediationError(v *string) *ThreatRecordCreate {
	if v != nil {
		_c.SetRemediationError(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ThreatRecordCreate) SetStatus(v threatrecord.Status) *ThreatRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableStatus(v *threatrecord.Status) *ThreatRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetNotifiedAt sets the "notified_at" field.
func (_c *ThreatRecordCreate) SetNotifiedAt(v time.Time) *ThreatRecordCreate {
	_c.mutation.SetNotifiedAt(v)
	return _c
}

// SetNillableNotifiedAt sets the "notified_at" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableNotifiedAt(v *time.Time) *ThreatRecordCreate {
	if v != nil {
		_c.SetNotifiedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ThreatRecordCreate) SetExpiresAt(v time.Time) *ThreatRecordCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThreatRecordCreate) SetCreatedAt(v time.Time) *ThreatRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableCreatedAt(v *time.Time) *ThreatRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ThreatRecordCreate) SetUpdatedAt(v time.Time) *ThreatRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ThreatRecordCreate) SetNillableUpdatedAt(v *time.Time) *ThreatRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThreatRecordCreate) SetID(v string) *ThreatRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ThreatRecordMutation object of the builder.
func (_c *ThreatRecordCreate) Mutation() *ThreatRecordMutation {
	return _c.mutation
}

// Save creates the ThreatRecord in the database.
func (_c *ThreatRecordCreate) Save(ctx context.Context) (*ThreatRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreatRecordCreate) SaveX(ctx context.Context) *ThreatRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreatRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreatRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreatRecordCreate) defaults() {
	if _, ok := _c.mutation.RequiresHumanReview(); !ok {
		v := threatrecord.DefaultRequiresHumanReview
		_c.mutation.SetRequiresHumanReview(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := threatrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := threatrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := threatrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreatRecordCreate) check() error {
	if _, ok := _c.mutation.EventID(); !ok {
		return &ValidationError{Name: "event_id", err: errors.New(`ent: missing required field "ThreatRecord.event_id"`)}
	}
	if _, ok := _c.mutation.ObservedAt(); !ok {
		return &ValidationError{Name: "observed_at", err: errors.New(`ent: missing required field "ThreatRecord.observed_at"`)}
	}
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "ThreatRecord.received_at"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "ThreatRecord.source"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "ThreatRecord.account_id"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "ThreatRecord.region"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ThreatRecord.kind"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "ThreatRecord.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := threatrecord.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.severity": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TriageBand(); ok {
		if err := threatrecord.TriageBandValidator(v); err != nil {
			return &ValidationError{Name: "triage_band", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.triage_band": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiresHumanReview(); !ok {
		return &ValidationError{Name: "requires_human_review", err: errors.New(`ent: missing required field "ThreatRecord.requires_human_review"`)}
	}
	if v, ok := _c.mutation.RemediationStatus(); ok {
		if err := threatrecord.RemediationStatusValidator(v); err != nil {
			return &ValidationError{Name: "remediation_status", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.remediation_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ThreatRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := threatrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ThreatRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ThreatRecord.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ThreatRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ThreatRecord.updated_at"`)}
	}
	return nil
}

func (_c *ThreatRecordCreate) sqlSave(ctx context.Context) (*ThreatRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ThreatRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThreatRecordCreate) createSpec() (*ThreatRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ThreatRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(threatrecord.Table, sqlgraph.NewFieldSpec(threatrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EventID(); ok {
		_spec.SetField(threatrecord.FieldEventID, field.TypeString, value)
		_node.EventID = value
	}
	if value, ok := _c.mutation.ObservedAt(); ok {
		_spec.SetField(threatrecord.FieldObservedAt, field.TypeTime, value)
		_node.ObservedAt = value
	}
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(threatrecord.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(threatrecord.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(threatrecord.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(threatrecord.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(threatrecord.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(threatrecord.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.RawSeverity(); ok {
		_spec.SetField(threatrecord.FieldRawSeverity, field.TypeFloat64, value)
		_node.RawSeverity = &value
	}
	if value, ok := _c.mutation.ResourceType(); ok {
		_spec.SetField(threatrecord.FieldResourceType, field.TypeString, value)
		_node.ResourceType = value
	}
	if value, ok := _c.mutation.ResourceID(); ok {
		_spec.SetField(threatrecord.FieldResourceID, field.TypeString, value)
		_node.ResourceID = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(threatrecord.FieldDetails, field.TypeJSON, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.MlThreatScore(); ok {
		_spec.SetField(threatrecord.FieldMlThreatScore, field.TypeFloat64, value)
		_node.MlThreatScore = &value
	}
	if value, ok := _c.mutation.MlConfidence(); ok {
		_spec.SetField(threatrecord.FieldMlConfidence, field.TypeFloat64, value)
		_node.MlConfidence = &value
	}
	if value, ok := _c.mutation.MlModelVersion(); ok {
		_spec.SetField(threatrecord.FieldMlModelVersion, field.TypeString, value)
		_node.MlModelVersion = &value
	}
	if value, ok := _c.mutation.MlFeatureVersion(); ok {
		_spec.SetField(threatrecord.FieldMlFeatureVersion, field.TypeString, value)
		_node.MlFeatureVersion = &value
	}
	if value, ok := _c.mutation.MlError(); ok {
		_spec.SetField(threatrecord.FieldMlError, field.TypeString, value)
		_node.MlError = &value
	}
	if value, ok := _c.mutation.TriagePriority(); ok {
		_spec.SetField(threatrecord.FieldTriagePriority, field.TypeFloat64, value)
		_node.TriagePriority = &value
	}
	if value, ok := _c.mutation.TriageBand(); ok {
		_spec.SetField(threatrecord.FieldTriageBand, field.TypeEnum, value)
		_node.TriageBand = value
	}
	if value, ok := _c.mutation.RecommendedActions(); ok {
		_spec.SetField(threatrecord.FieldRecommendedActions, field.TypeJSON, value)
		_node.RecommendedActions = value
	}
	if value, ok := _c.mutation.RequiresHumanReview(); ok {
		_spec.SetField(threatrecord.FieldRequiresHumanReview, field.TypeBool, value)
		_node.RequiresHumanReview = value
	}
	if value, ok := _c.mutation.AnalysisRiskScore(); ok {
		_spec.SetField(threatrecord.FieldAnalysisRiskScore, field.TypeFloat64, value)
		_node.AnalysisRiskScore = &value
	}
	if value, ok := _c.mutation.AnalysisAttackVector(); ok {
		_spec.SetField(threatrecord.FieldAnalysisAttackVector, field.TypeString, value)
		_node.AnalysisAttackVector = &value
	}
	if value, ok := _c.mutation.AnalysisConfidence(); ok {
		_spec.SetField(threatrecord.FieldAnalysisConfidence, field.TypeFloat64, value)
		_node.AnalysisConfidence = &value
	}
	if value, ok := _c.mutation.AnalysisBusinessImpact(); ok {
		_spec.SetField(threatrecord.FieldAnalysisBusinessImpact, field.TypeString, value)
		_node.AnalysisBusinessImpact = &value
	}
	if value, ok := _c.mutation.AnalysisSummary(); ok {
		_spec.SetField(threatrecord.FieldAnalysisSummary, field.TypeString, value)
		_node.AnalysisSummary = &value
	}
	if value, ok := _c.mutation.AnalysisError(); ok {
		_spec.SetField(threatrecord.FieldAnalysisError, field.TypeString, value)
		_node.AnalysisError = &value
	}
	if value, ok := _c.mutation.RemediationAction(); ok {
		_spec.SetField(threatrecord.FieldRemediationAction, field.TypeString, value)
		_node.RemediationAction = &value
	}
	if value, ok := _c.mutation.RemediationStatus(); ok {
		_spec.SetField(threatrecord.FieldRemediationStatus, field.TypeEnum, value)
		_node.RemediationStatus = value
	}
	if value, ok := _c.mutation.RemediationAttempts(); ok {
		_spec.SetField(threatrecord.FieldRemediationAttempts, field.TypeInt, value)
		_node.RemediationAttempts = value
	}
	if value, ok := _c.mutation.RemediationError(); ok {
		_spec.SetField(threatrecord.FieldRemediationError, field.TypeString, value)
		_node.RemediationError = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(threatrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.NotifiedAt(); ok {
		_spec.SetField(threatrecord.FieldNotifiedAt, field.TypeTime, value)
		_node.NotifiedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(threatrecord.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(threatrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(threatrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ThreatRecordCreateBulk is the builder for creating many ThreatRecord entities in bulk.
type ThreatRecordCreateBulk struct {
	config
	err      error
	builders []*ThreatRecordCreate
}

// Save creates the ThreatRecord entities in the database.
func (_c *ThreatRecordCreateBulk) Save(ctx context.Context) ([]*ThreatRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThreatRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreatRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ThreatRecordCreateBulk) SaveX(ctx context.Context) []*ThreatRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreatRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreatRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

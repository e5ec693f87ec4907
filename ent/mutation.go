// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/argus-soc/argus/ent/predicate"
	"github.com/argus-soc/argus/ent/threatrecord"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeThreatRecord = "ThreatRecord"
)

// ThreatRecordMutation represents an operation that mutates the ThreatRecord nodes in the graph.
type ThreatRecordMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	event_id                  *string
	observed_at               *time.Time
	received_at               *time.Time
	source                    *string
	account_id                *string
	region                    *string
	kind                      *string
	severity                  *threatrecord.Severity
	raw_severity              *float64
	addraw_severity           *float64
	resource_type             *string
	resource_id               *string
	details                   *map[string]interface{}
	ml_threat_score           *float64
	addml_threat_score        *float64
	ml_confidence             *float64
	addml_confidence          *float64
	ml_model_version          *string
	ml_feature_version        *string
	ml_error                  *string
	triage_priority           *float64
	addtriage_priority        *float64
	triage_band               *threatrecord.TriageBand
	recommended_actions       *[]string
	appendrecommended_actions []string
	requires_human_review     *bool
	analysis_risk_score       *float64
	addanalysis_risk_score    *float64
	analysis_attack_vector    *string
	analysis_confidence       *float64
	addanalysis_confidence    *float64
	analysis_business_impact  *string
	analysis_summary          *string
	analysis_error            *string
	remediation_action        *string
	remediation_status        *threatrecord.RemediationStatus
	remediation_attempts      *int
	addremediation_attempts   *int
	remediation_error         *string
	status                    *threatrecord.Status
	notified_at               *time.Time
	expires_at                *time.Time
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	done                      bool
	oldValue                  func(context.Context) (*ThreatRecord, error)
	predicates                []predicate.ThreatRecord
}

var _ ent.Mutation = (*ThreatRecordMutation)(nil)

// threatrecordOption allows management of the mutation configuration using functional options.
type threatrecordOption func(*ThreatRecordMutation)

// newThreatRecordMutation creates new mutation for the ThreatRecord entity.
func newThreatRecordMutation(c config, op Op, opts ...threatrecordOption) *ThreatRecordMutation {
	m := &ThreatRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeThreatRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withThreatRecordID sets the ID field of the mutation.
func withThreatRecordID(id string) threatrecordOption {
	return func(m *ThreatRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ThreatRecord
		)
		m.oldValue = func(ctx context.Context) (*ThreatRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ThreatRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withThreatRecord sets the old ThreatRecord of the mutation.
func withThreatRecord(node *ThreatRecord) threatrecordOption {
	return func(m *ThreatRecordMutation) {
		m.oldValue = func(context.Context) (*ThreatRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ThreatRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ThreatRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ThreatRecord entities.
func (m *ThreatRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ThreatRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ThreatRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ThreatRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEventID sets the "event_id" field.
func (m *ThreatRecordMutation) SetEventID(s string) {
	m.event_id = &s
}

// EventID returns the value of the "event_id" field in the mutation.
func (m *ThreatRecordMutation) EventID() (r string, exists bool) {
	v := m.event_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEventID returns the old "event_id" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldEventID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventID: %w", err)
	}
	return oldValue.EventID, nil
}

// ResetEventID resets all changes to the "event_id" field.
func (m *ThreatRecordMutation) ResetEventID() {
	m.event_id = nil
}

// SetObservedAt sets the "observed_at" field.
func (m *ThreatRecordMutation) SetObservedAt(t time.Time) {
	m.observed_at = &t
}

// ObservedAt returns the value of the "observed_at" field in the mutation.
func (m *ThreatRecordMutation) ObservedAt() (r time.Time, exists bool) {
	v := m.observed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldObservedAt returns the old "observed_at" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldObservedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservedAt: %w", err)
	}
	return oldValue.ObservedAt, nil
}

// ResetObservedAt resets all changes to the "observed_at" field.
func (m *ThreatRecordMutation) ResetObservedAt() {
	m.observed_at = nil
}

// SetReceivedAt sets the "received_at" field.
func (m *ThreatRecordMutation) SetReceivedAt(t time.Time) {
	m.received_at = &t
}

// ReceivedAt returns the value of the "received_at" field in the mutation.
func (m *ThreatRecordMutation) ReceivedAt() (r time.Time, exists bool) {
	v := m.received_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReceivedAt returns the old "received_at" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldReceivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReceivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReceivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReceivedAt: %w", err)
	}
	return oldValue.ReceivedAt, nil
}

// ResetReceivedAt resets all changes to the "received_at" field.
func (m *ThreatRecordMutation) ResetReceivedAt() {
	m.received_at = nil
}

// SetSource sets the "source" field.
func (m *ThreatRecordMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *ThreatRecordMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *ThreatRecordMutation) ResetSource() {
	m.source = nil
}

// SetAccountID sets the "account_id" field.
func (m *ThreatRecordMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ThreatRecordMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ThreatRecordMutation) ResetAccountID() {
	m.account_id = nil
}

// SetRegion sets the "region" field.
func (m *ThreatRecordMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *ThreatRecordMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRegion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ResetRegion resets all changes to the "region" field.
func (m *ThreatRecordMutation) ResetRegion() {
	m.region = nil
}

// SetKind sets the "kind" field.
func (m *ThreatRecordMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ThreatRecordMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ThreatRecordMutation) ResetKind() {
	m.kind = nil
}

// SetSeverity sets the "severity" field.
func (m *ThreatRecordMutation) SetSeverity(t threatrecord.Severity) {
	m.severity = &t
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ThreatRecordMutation) Severity() (r threatrecord.Severity, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldSeverity(ctx context.Context) (v threatrecord.Severity, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ThreatRecordMutation) ResetSeverity() {
	m.severity = nil
}

// SetRawSeverity sets the "raw_severity" field.
func (m *ThreatRecordMutation) SetRawSeverity(f float64) {
	m.raw_severity = &f
	m.addraw_severity = nil
}

// RawSeverity returns the value of the "raw_severity" field in the mutation.
func (m *ThreatRecordMutation) RawSeverity() (r float64, exists bool) {
	v := m.raw_severity
	if v == nil {
		return
	}
	return *v, true
}

// OldRawSeverity returns the old "raw_severity" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRawSeverity(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawSeverity: %w", err)
	}
	return oldValue.RawSeverity, nil
}

// AddRawSeverity adds f to the "raw_severity" field.
func (m *ThreatRecordMutation) AddRawSeverity(f float64) {
	if m.addraw_severity != nil {
		*m.addraw_severity += f
	} else {
		m.addraw_severity = &f
	}
}

// AddedRawSeverity returns the value that was added to the "raw_severity" field in this mutation.
func (m *ThreatRecordMutation) AddedRawSeverity() (r float64, exists bool) {
	v := m.addraw_severity
	if v == nil {
		return
	}
	return *v, true
}

// ClearRawSeverity clears the value of the "raw_severity" field.
func (m *ThreatRecordMutation) ClearRawSeverity() {
	m.raw_severity = nil
	m.addraw_severity = nil
	m.clearedFields[threatrecord.FieldRawSeverity] = struct{}{}
}

// RawSeverityCleared returns if the "raw_severity" field was cleared in this mutation.
func (m *ThreatRecordMutation) RawSeverityCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldRawSeverity]
	return ok
}

// ResetRawSeverity resets all changes to the "raw_severity" field.
func (m *ThreatRecordMutation) ResetRawSeverity() {
	m.raw_severity = nil
	m.addraw_severity = nil
	delete(m.clearedFields, threatrecord.FieldRawSeverity)
}

// SetResourceType sets the "resource_type" field.
func (m *ThreatRecordMutation) SetResourceType(s string) {
	m.resource_type = &s
}

// ResourceType returns the value of the "resource_type" field in the mutation.
func (m *ThreatRecordMutation) ResourceType() (r string, exists bool) {
	v := m.resource_type
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceType returns the old "resource_type" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldResourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceType: %w", err)
	}
	return oldValue.ResourceType, nil
}

// ClearResourceType clears the value of the "resource_type" field.
func (m *ThreatRecordMutation) ClearResourceType() {
	m.resource_type = nil
	m.clearedFields[threatrecord.FieldResourceType] = struct{}{}
}

// ResourceTypeCleared returns if the "resource_type" field was cleared in this mutation.
func (m *ThreatRecordMutation) ResourceTypeCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldResourceType]
	return ok
}

// ResetResourceType resets all changes to the "resource_type" field.
func (m *ThreatRecordMutation) ResetResourceType() {
	m.resource_type = nil
	delete(m.clearedFields, threatrecord.FieldResourceType)
}

// SetResourceID sets the "resource_id" field.
func (m *ThreatRecordMutation) SetResourceID(s string) {
	m.resource_id = &s
}

// ResourceID returns the value of the "resource_id" field in the mutation.
func (m *ThreatRecordMutation) ResourceID() (r string, exists bool) {
	v := m.resource_id
	if v == nil {
		return
	}
	return *v, true
}

// OldResourceID returns the old "resource_id" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldResourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResourceID: %w", err)
	}
	return oldValue.ResourceID, nil
}

// ClearResourceID clears the value of the "resource_id" field.
func (m *ThreatRecordMutation) ClearResourceID() {
	m.resource_id = nil
	m.clearedFields[threatrecord.FieldResourceID] = struct{}{}
}

// ResourceIDCleared returns if the "resource_id" field was cleared in this mutation.
func (m *ThreatRecordMutation) ResourceIDCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldResourceID]
	return ok
}

// ResetResourceID resets all changes to the "resource_id" field.
func (m *ThreatRecordMutation) ResetResourceID() {
	m.resource_id = nil
	delete(m.clearedFields, threatrecord.FieldResourceID)
}

// SetDetails sets the "details" field.
func (m *ThreatRecordMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *ThreatRecordMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ThreatRecordMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[threatrecord.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ThreatRecordMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ThreatRecordMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, threatrecord.FieldDetails)
}

// SetMlThreatScore sets the "ml_threat_score" field.
func (m *ThreatRecordMutation) SetMlThreatScore(f float64) {
	m.ml_threat_score = &f
	m.addml_threat_score = nil
}

// MlThreatScore returns the value of the "ml_threat_score" field in the mutation.
func (m *ThreatRecordMutation) MlThreatScore() (r float64, exists bool) {
	v := m.ml_threat_score
	if v == nil {
		return
	}
	return *v, true
}

// OldMlThreatScore returns the old "ml_threat_score" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldMlThreatScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlThreatScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlThreatScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlThreatScore: %w", err)
	}
	return oldValue.MlThreatScore, nil
}

// AddMlThreatScore adds f to the "ml_threat_score" field.
func (m *ThreatRecordMutation) AddMlThreatScore(f float64) {
	if m.addml_threat_score != nil {
		*m.addml_threat_score += f
	} else {
		m.addml_threat_score = &f
	}
}

// AddedMlThreatScore returns the value that was added to the "ml_threat_score" field in this mutation.
func (m *ThreatRecordMutation) AddedMlThreatScore() (r float64, exists bool) {
	v := m.addml_threat_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearMlThreatScore clears the value of the "ml_threat_score" field.
func (m *ThreatRecordMutation) ClearMlThreatScore() {
	m.ml_threat_score = nil
	m.addml_threat_score = nil
	m.clearedFields[threatrecord.FieldMlThreatScore] = struct{}{}
}

// MlThreatScoreCleared returns if the "ml_threat_score" field was cleared in this mutation.
func (m *ThreatRecordMutation) MlThreatScoreCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldMlThreatScore]
	return ok
}

// ResetMlThreatScore resets all changes to the "ml_threat_score" field.
func (m *ThreatRecordMutation) ResetMlThreatScore() {
	m.ml_threat_score = nil
	m.addml_threat_score = nil
	delete(m.clearedFields, threatrecord.FieldMlThreatScore)
}

// SetMlConfidence sets the "ml_confidence" field.
func (m *ThreatRecordMutation) SetMlConfidence(f float64) {
	m.ml_confidence = &f
	m.addml_confidence = nil
}

// MlConfidence returns the value of the "ml_confidence" field in the mutation.
func (m *ThreatRecordMutation) MlConfidence() (r float64, exists bool) {
	v := m.ml_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldMlConfidence returns the old "ml_confidence" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldMlConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlConfidence: %w", err)
	}
	return oldValue.MlConfidence, nil
}

// AddMlConfidence adds f to the "ml_confidence" field.
func (m *ThreatRecordMutation) AddMlConfidence(f float64) {
	if m.addml_confidence != nil {
		*m.addml_confidence += f
	} else {
		m.addml_confidence = &f
	}
}

// AddedMlConfidence returns the value that was added to the "ml_confidence" field in this mutation.
func (m *ThreatRecordMutation) AddedMlConfidence() (r float64, exists bool) {
	v := m.addml_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearMlConfidence clears the value of the "ml_confidence" field.
func (m *ThreatRecordMutation) ClearMlConfidence() {
	m.ml_confidence = nil
	m.addml_confidence = nil
	m.clearedFields[threatrecord.FieldMlConfidence] = struct{}{}
}

// MlConfidenceCleared returns if the "ml_confidence" field was cleared in this mutation.
func (m *ThreatRecordMutation) MlConfidenceCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldMlConfidence]
	return ok
}

// ResetMlConfidence resets all changes to the "ml_confidence" field.
func (m *ThreatRecordMutation) ResetMlConfidence() {
	m.ml_confidence = nil
	m.addml_confidence = nil
	delete(m.clearedFields, threatrecord.FieldMlConfidence)
}

// SetMlModelVersion sets the "ml_model_version" field.
func (m *ThreatRecordMutation) SetMlModelVersion(s string) {
	m.ml_model_version = &s
}

// MlModelVersion returns the value of the "ml_model_version" field in the mutation.
func (m *ThreatRecordMutation) MlModelVersion() (r string, exists bool) {
	v := m.ml_model_version
	if v == nil {
		return
	}
	return *v, true
}

// OldMlModelVersion returns the old "ml_model_version" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldMlModelVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlModelVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlModelVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlModelVersion: %w", err)
	}
	return oldValue.MlModelVersion, nil
}

// ClearMlModelVersion clears the value of the "ml_model_version" field.
func (m *ThreatRecordMutation) ClearMlModelVersion() {
	m.ml_model_version = nil
	m.clearedFields[threatrecord.FieldMlModelVersion] = struct{}{}
}

// MlModelVersionCleared returns if the "ml_model_version" field was cleared in this mutation.
func (m *ThreatRecordMutation) MlModelVersionCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldMlModelVersion]
	return ok
}

// ResetMlModelVersion resets all changes to the "ml_model_version" field.
func (m *ThreatRecordMutation) ResetMlModelVersion() {
	m.ml_model_version = nil
	delete(m.clearedFields, threatrecord.FieldMlModelVersion)
}

// SetMlFeatureVersion sets the "ml_feature_version" field.
func (m *ThreatRecordMutation) SetMlFeatureVersion(s string) {
	m.ml_feature_version = &s
}

// MlFeatureVersion returns the value of the "ml_feature_version" field in the mutation.
func (m *ThreatRecordMutation) MlFeatureVersion() (r string, exists bool) {
	v := m.ml_feature_version
	if v == nil {
		return
	}
	return *v, true
}

// OldMlFeatureVersion returns the old "ml_feature_version" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldMlFeatureVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlFeatureVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlFeatureVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlFeatureVersion: %w", err)
	}
	return oldValue.MlFeatureVersion, nil
}

// ClearMlFeatureVersion clears the value of the "ml_feature_version" field.
func (m *ThreatRecordMutation) ClearMlFeatureVersion() {
	m.ml_feature_version = nil
	m.clearedFields[threatrecord.FieldMlFeatureVersion] = struct{}{}
}

// MlFeatureVersionCleared returns if the "ml_feature_version" field was cleared in this mutation.
func (m *ThreatRecordMutation) MlFeatureVersionCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldMlFeatureVersion]
	return ok
}

// ResetMlFeatureVersion resets all changes to the "ml_feature_version" field.
func (m *ThreatRecordMutation) ResetMlFeatureVersion() {
	m.ml_feature_version = nil
	delete(m.clearedFields, threatrecord.FieldMlFeatureVersion)
}

// SetMlError sets the "ml_error" field.
func (m *ThreatRecordMutation) SetMlError(s string) {
	m.ml_error = &s
}

// MlError returns the value of the "ml_error" field in the mutation.
func (m *ThreatRecordMutation) MlError() (r string, exists bool) {
	v := m.ml_error
	if v == nil {
		return
	}
	return *v, true
}

// OldMlError returns the old "ml_error" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldMlError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMlError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMlError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMlError: %w", err)
	}
	return oldValue.MlError, nil
}

// ClearMlError clears the value of the "ml_error" field.
func (m *ThreatRecordMutation) ClearMlError() {
	m.ml_error = nil
	m.clearedFields[threatrecord.FieldMlError] = struct{}{}
}

// MlErrorCleared returns if the "ml_error" field was cleared in this mutation.
func (m *ThreatRecordMutation) MlErrorCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldMlError]
	return ok
}

// ResetMlError resets all changes to the "ml_error" field.
func (m *ThreatRecordMutation) ResetMlError() {
	m.ml_error = nil
	delete(m.clearedFields, threatrecord.FieldMlError)
}

// SetTriagePriority sets the "triage_priority" field.
func (m *ThreatRecordMutation) SetTriagePriority(f float64) {
	m.triage_priority = &f
	m.addtriage_priority = nil
}

// TriagePriority returns the value of the "triage_priority" field in the mutation.
func (m *ThreatRecordMutation) TriagePriority() (r float64, exists bool) {
	v := m.triage_priority
	if v == nil {
		return
	}
	return *v, true
}

// OldTriagePriority returns the old "triage_priority" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldTriagePriority(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriagePriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriagePriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriagePriority: %w", err)
	}
	return oldValue.TriagePriority, nil
}

// AddTriagePriority adds f to the "triage_priority" field.
func (m *ThreatRecordMutation) AddTriagePriority(f float64) {
	if m.addtriage_priority != nil {
		*m.addtriage_priority += f
	} else {
		m.addtriage_priority = &f
	}
}

// AddedTriagePriority returns the value that was added to the "triage_priority" field in this mutation.
func (m *ThreatRecordMutation) AddedTriagePriority() (r float64, exists bool) {
	v := m.addtriage_priority
	if v == nil {
		return
	}
	return *v, true
}

// ClearTriagePriority clears the value of the "triage_priority" field.
func (m *ThreatRecordMutation) ClearTriagePriority() {
	m.triage_priority = nil
	m.addtriage_priority = nil
	m.clearedFields[threatrecord.FieldTriagePriority] = struct{}{}
}

// TriagePriorityCleared returns if the "triage_priority" field was cleared in this mutation.
func (m *ThreatRecordMutation) TriagePriorityCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldTriagePriority]
	return ok
}

// ResetTriagePriority resets all changes to the "triage_priority" field.
func (m *ThreatRecordMutation) ResetTriagePriority() {
	m.triage_priority = nil
	m.addtriage_priority = nil
	delete(m.clearedFields, threatrecord.FieldTriagePriority)
}

// SetTriageBand sets the "triage_band" field.
func (m *ThreatRecordMutation) SetTriageBand(tb threatrecord.TriageBand) {
	m.triage_band = &tb
}

// TriageBand returns the value of the "triage_band" field in the mutation.
func (m *ThreatRecordMutation) TriageBand() (r threatrecord.TriageBand, exists bool) {
	v := m.triage_band
	if v == nil {
		return
	}
	return *v, true
}

// OldTriageBand returns the old "triage_band" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldTriageBand(ctx context.Context) (v threatrecord.TriageBand, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriageBand is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriageBand requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriageBand: %w", err)
	}
	return oldValue.TriageBand, nil
}

// ClearTriageBand clears the value of the "triage_band" field.
func (m *ThreatRecordMutation) ClearTriageBand() {
	m.triage_band = nil
	m.clearedFields[threatrecord.FieldTriageBand] = struct{}{}
}

// TriageBandCleared returns if the "triage_band" field was cleared in this mutation.
func (m *ThreatRecordMutation) TriageBandCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldTriageBand]
	return ok
}

// ResetTriageBand resets all changes to the "triage_band" field.
func (m *ThreatRecordMutation) ResetTriageBand() {
	m.triage_band = nil
	delete(m.clearedFields, threatrecord.FieldTriageBand)
}

// SetRecommendedActions sets the "recommended_actions" field.
func (m *ThreatRecordMutation) SetRecommendedActions(s []string) {
	m.recommended_actions = &s
	m.appendrecommended_actions = nil
}

// RecommendedActions returns the value of the "recommended_actions" field in the mutation.
func (m *ThreatRecordMutation) RecommendedActions() (r []string, exists bool) {
	v := m.recommended_actions
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendedActions returns the old "recommended_actions" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRecommendedActions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendedActions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendedActions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendedActions: %w", err)
	}
	return oldValue.RecommendedActions, nil
}

// AppendRecommendedActions adds s to the "recommended_actions" field.
func (m *ThreatRecordMutation) AppendRecommendedActions(s []string) {
	m.appendrecommended_actions = append(m.appendrecommended_actions, s...)
}

// AppendedRecommendedActions returns the list of values that were appended to the "recommended_actions" field in this mutation.
func (m *ThreatRecordMutation) AppendedRecommendedActions() ([]string, bool) {
	if len(m.appendrecommended_actions) == 0 {
		return nil, false
	}
	return m.appendrecommended_actions, true
}

// ClearRecommendedActions clears the value of the "recommended_actions" field.
func (m *ThreatRecordMutation) ClearRecommendedActions() {
	m.recommended_actions = nil
	m.appendrecommended_actions = nil
	m.clearedFields[threatrecord.FieldRecommendedActions] = struct{}{}
}

// RecommendedActionsCleared returns if the "recommended_actions" field was cleared in this mutation.
func (m *ThreatRecordMutation) RecommendedActionsCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldRecommendedActions]
	return ok
}

// ResetRecommendedActions resets all changes to the "recommended_actions" field.
func (m *ThreatRecordMutation) ResetRecommendedActions() {
	m.recommended_actions = nil
	m.appendrecommended_actions = nil
	delete(m.clearedFields, threatrecord.FieldRecommendedActions)
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (m *ThreatRecordMutation) SetRequiresHumanReview(b bool) {
	m.requires_human_review = &b
}

// RequiresHumanReview returns the value of the "requires_human_review" field in the mutation.
func (m *ThreatRecordMutation) RequiresHumanReview() (r bool, exists bool) {
	v := m.requires_human_review
	if v == nil {
		return
	}
	return *v, true
}

// OldRequiresHumanReview returns the old "requires_human_review" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRequiresHumanReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequiresHumanReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequiresHumanReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequiresHumanReview: %w", err)
	}
	return oldValue.RequiresHumanReview, nil
}

// ResetRequiresHumanReview resets all changes to the "requires_human_review" field.
func (m *ThreatRecordMutation) ResetRequiresHumanReview() {
	m.requires_human_review = nil
}

// SetAnalysisRiskScore sets the "analysis_risk_score" field.
func (m *ThreatRecordMutation) SetAnalysisRiskScore(f float64) {
	m.analysis_risk_score = &f
	m.addanalysis_risk_score = nil
}

// AnalysisRiskScore returns the value of the "analysis_risk_score" field in the mutation.
func (m *ThreatRecordMutation) AnalysisRiskScore() (r float64, exists bool) {
	v := m.analysis_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisRiskScore returns the old "analysis_risk_score" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldAnalysisRiskScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisRiskScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisRiskScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisRiskScore: %w", err)
	}
	return oldValue.AnalysisRiskScore, nil
}

// AddAnalysisRiskScore adds f to the "analysis_risk_score" field.
func (m *ThreatRecordMutation) AddAnalysisRiskScore(f float64) {
	if m.addanalysis_risk_score != nil {
		*m.addanalysis_risk_score += f
	} else {
		m.addanalysis_risk_score = &f
	}
}

// AddedAnalysisRiskScore returns the value that was added to the "analysis_risk_score" field in this mutation.
func (m *ThreatRecordMutation) AddedAnalysisRiskScore() (r float64, exists bool) {
	v := m.addanalysis_risk_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnalysisRiskScore clears the value of the "analysis_risk_score" field.
func (m *ThreatRecordMutation) ClearAnalysisRiskScore() {
	m.analysis_risk_score = nil
	m.addanalysis_risk_score = nil
	m.clearedFields[threatrecord.FieldAnalysisRiskScore] = struct{}{}
}

// AnalysisRiskScoreCleared returns if the "analysis_risk_score" field was cleared in this mutation.
func (m *ThreatRecordMutation) AnalysisRiskScoreCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldAnalysisRiskScore]
	return ok
}

// ResetAnalysisRiskScore resets all changes to the "analysis_risk_score" field.
func (m *ThreatRecordMutation) ResetAnalysisRiskScore() {
	m.analysis_risk_score = nil
	m.addanalysis_risk_score = nil
	delete(m.clearedFields, threatrecord.FieldAnalysisRiskScore)
}

// SetAnalysisAttackVector sets the "analysis_attack_vector" field.
func (m *ThreatRecordMutation) SetAnalysisAttackVector(s string) {
	m.analysis_attack_vector = &s
}

// AnalysisAttackVector returns the value of the "analysis_attack_vector" field in the mutation.
func (m *ThreatRecordMutation) AnalysisAttackVector() (r string, exists bool) {
	v := m.analysis_attack_vector
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisAttackVector returns the old "analysis_attack_vector" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldAnalysisAttackVector(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisAttackVector is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisAttackVector requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisAttackVector: %w", err)
	}
	return oldValue.AnalysisAttackVector, nil
}

// ClearAnalysisAttackVector clears the value of the "analysis_attack_vector" field.
func (m *ThreatRecordMutation) ClearAnalysisAttackVector() {
	m.analysis_attack_vector = nil
	m.clearedFields[threatrecord.FieldAnalysisAttackVector] = struct{}{}
}

// AnalysisAttackVectorCleared returns if the "analysis_attack_vector" field was cleared in this mutation.
func (m *ThreatRecordMutation) AnalysisAttackVectorCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldAnalysisAttackVector]
	return ok
}

// ResetAnalysisAttackVector resets all changes to the "analysis_attack_vector" field.
func (m *ThreatRecordMutation) ResetAnalysisAttackVector() {
	m.analysis_attack_vector = nil
	delete(m.clearedFields, threatrecord.FieldAnalysisAttackVector)
}

// SetAnalysisConfidence sets the "analysis_confidence" field.
func (m *ThreatRecordMutation) SetAnalysisConfidence(f float64) {
	m.analysis_confidence = &f
	m.addanalysis_confidence = nil
}

// AnalysisConfidence returns the value of the "analysis_confidence" field in the mutation.
func (m *ThreatRecordMutation) AnalysisConfidence() (r float64, exists bool) {
	v := m.analysis_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisConfidence returns the old "analysis_confidence" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldAnalysisConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisConfidence: %w", err)
	}
	return oldValue.AnalysisConfidence, nil
}

// AddAnalysisConfidence adds f to the "analysis_confidence" field.
func (m *ThreatRecordMutation) AddAnalysisConfidence(f float64) {
	if m.addanalysis_confidence != nil {
		*m.addanalysis_confidence += f
	} else {
		m.addanalysis_confidence = &f
	}
}

// AddedAnalysisConfidence returns the value that was added to the "analysis_confidence" field in this mutation.
func (m *ThreatRecordMutation) AddedAnalysisConfidence() (r float64, exists bool) {
	v := m.addanalysis_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearAnalysisConfidence clears the value of the "analysis_confidence" field.
func (m *ThreatRecordMutation) ClearAnalysisConfidence() {
	m.analysis_confidence = nil
	m.addanalysis_confidence = nil
	m.clearedFields[threatrecord.FieldAnalysisConfidence] = struct{}{}
}

// AnalysisConfidenceCleared returns if the "analysis_confidence" field was cleared in this mutation.
func (m *ThreatRecordMutation) AnalysisConfidenceCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldAnalysisConfidence]
	return ok
}

// ResetAnalysisConfidence resets all changes to the "analysis_confidence" field.
func (m *ThreatRecordMutation) ResetAnalysisConfidence() {
	m.analysis_confidence = nil
	m.addanalysis_confidence = nil
	delete(m.clearedFields, threatrecord.FieldAnalysisConfidence)
}

// SetAnalysisBusinessImpact sets the "analysis_business_impact" field.
func (m *ThreatRecordMutation) SetAnalysisBusinessImpact(s string) {
	m.analysis_business_impact = &s
}

// AnalysisBusinessImpact returns the value of the "analysis_business_impact" field in the mutation.
func (m *ThreatRecordMutation) AnalysisBusinessImpact() (r string, exists bool) {
	v := m.analysis_business_impact
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisBusinessImpact returns the old "analysis_business_impact" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldAnalysisBusinessImpact(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisBusinessImpact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisBusinessImpact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisBusinessImpact: %w", err)
	}
	return oldValue.AnalysisBusinessImpact, nil
}

// ClearAnalysisBusinessImpact clears the value of the "analysis_business_impact" field.
func (m *ThreatRecordMutation) ClearAnalysisBusinessImpact() {
	m.analysis_business_impact = nil
	m.clearedFields[threatrecord.FieldAnalysisBusinessImpact] = struct{}{}
}

// AnalysisBusinessImpactCleared returns if the "analysis_business_impact" field was cleared in this mutation.
func (m *ThreatRecordMutation) AnalysisBusinessImpactCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldAnalysisBusinessImpact]
	return ok
}

// ResetAnalysisBusinessImpact resets all changes to the "analysis_business_impact" field.
func (m *ThreatRecordMutation) ResetAnalysisBusinessImpact() {
	m.analysis_business_impact = nil
	delete(m.clearedFields, threatrecord.FieldAnalysisBusinessImpact)
}

// SetAnalysisSummary sets the "analysis_summary" field.
func (m *ThreatRecordMutation) SetAnalysisSummary(s string) {
	m.analysis_summary = &s
}

// AnalysisSummary returns the value of the "analysis_summary" field in the mutation.
func (m *ThreatRecordMutation) AnalysisSummary() (r string, exists bool) {
	v := m.analysis_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisSummary returns the old "analysis_summary" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldAnalysisSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisSummary: %w", err)
	}
	return oldValue.AnalysisSummary, nil
}

// ClearAnalysisSummary clears the value of the "analysis_summary" field.
func (m *ThreatRecordMutation) ClearAnalysisSummary() {
	m.analysis_summary = nil
	m.clearedFields[threatrecord.FieldAnalysisSummary] = struct{}{}
}

// AnalysisSummaryCleared returns if the "analysis_summary" field was cleared in this mutation.
func (m *ThreatRecordMutation) AnalysisSummaryCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldAnalysisSummary]
	return ok
}

// ResetAnalysisSummary resets all changes to the "analysis_summary" field.
func (m *ThreatRecordMutation) ResetAnalysisSummary() {
	m.analysis_summary = nil
	delete(m.clearedFields, threatrecord.FieldAnalysisSummary)
}

// SetAnalysisError sets the "analysis_error" field.
func (m *ThreatRecordMutation) SetAnalysisError(s string) {
	m.analysis_error = &s
}

// AnalysisError returns the value of the "analysis_error" field in the mutation.
func (m *ThreatRecordMutation) AnalysisError() (r string, exists bool) {
	v := m.analysis_error
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisError returns the old "analysis_error" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldAnalysisError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisError: %w", err)
	}
	return oldValue.AnalysisError, nil
}

// ClearAnalysisError clears the value of the "analysis_error" field.
func (m *ThreatRecordMutation) ClearAnalysisError() {
	m.analysis_error = nil
	m.clearedFields[threatrecord.FieldAnalysisError] = struct{}{}
}

// AnalysisErrorCleared returns if the "analysis_error" field was cleared in this mutation.
func (m *ThreatRecordMutation) AnalysisErrorCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldAnalysisError]
	return ok
}

// ResetAnalysisError resets all changes to the "analysis_error" field.
func (m *ThreatRecordMutation) ResetAnalysisError() {
	m.analysis_error = nil
	delete(m.clearedFields, threatrecord.FieldAnalysisError)
}

// SetRemediationAction sets the "remediation_action" field.
func (m *ThreatRecordMutation) SetRemediationAction(s string) {
	m.remediation_action = &s
}

// RemediationAction returns the value of the "remediation_action" field in the mutation.
func (m *ThreatRecordMutation) RemediationAction() (r string, exists bool) {
	v := m.remediation_action
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediationAction returns the old "remediation_action" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRemediationAction(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediationAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediationAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediationAction: %w", err)
	}
	return oldValue.RemediationAction, nil
}

// ClearRemediationAction clears the value of the "remediation_action" field.
func (m *ThreatRecordMutation) ClearRemediationAction() {
	m.remediation_action = nil
	m.clearedFields[threatrecord.FieldRemediationAction] = struct{}{}
}

// RemediationActionCleared returns if the "remediation_action" field was cleared in this mutation.
func (m *ThreatRecordMutation) RemediationActionCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldRemediationAction]
	return ok
}

// ResetRemediationAction resets all changes to the "remediation_action" field.
func (m *ThreatRecordMutation) ResetRemediationAction() {
	m.remediation_action = nil
	delete(m.clearedFields, threatrecord.FieldRemediationAction)
}

// SetRemediationStatus sets the "remediation_status" field.
func (m *ThreatRecordMutation) SetRemediationStatus(ts threatrecord.RemediationStatus) {
	m.remediation_status = &ts
}

// RemediationStatus returns the value of the "remediation_status" field in the mutation.
func (m *ThreatRecordMutation) RemediationStatus() (r threatrecord.RemediationStatus, exists bool) {
	v := m.remediation_status
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediationStatus returns the old "remediation_status" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRemediationStatus(ctx context.Context) (v threatrecord.RemediationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediationStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediationStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediationStatus: %w", err)
	}
	return oldValue.RemediationStatus, nil
}

// ClearRemediationStatus clears the value of the "remediation_status" field.
func (m *ThreatRecordMutation) ClearRemediationStatus() {
	m.remediation_status = nil
	m.clearedFields[threatrecord.FieldRemediationStatus] = struct{}{}
}

// RemediationStatusCleared returns if the "remediation_status" field was cleared in this mutation.
func (m *ThreatRecordMutation) RemediationStatusCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldRemediationStatus]
	return ok
}

// ResetRemediationStatus resets all changes to the "remediation_status" field.
func (m *ThreatRecordMutation) ResetRemediationStatus() {
	m.remediation_status = nil
	delete(m.clearedFields, threatrecord.FieldRemediationStatus)
}

// SetRemediationAttempts sets the "remediation_attempts" field.
func (m *ThreatRecordMutation) SetRemediationAttempts(i int) {
	m.remediation_attempts = &i
	m.addremediation_attempts = nil
}

// RemediationAttempts returns the value of the "remediation_attempts" field in the mutation.
func (m *ThreatRecordMutation) RemediationAttempts() (r int, exists bool) {
	v := m.remediation_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediationAttempts returns the old "remediation_attempts" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRemediationAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediationAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediationAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediationAttempts: %w", err)
	}
	return oldValue.RemediationAttempts, nil
}

// AddRemediationAttempts adds i to the "remediation_attempts" field.
func (m *ThreatRecordMutation) AddRemediationAttempts(i int) {
	if m.addremediation_attempts != nil {
		*m.addremediation_attempts += i
	} else {
		m.addremediation_attempts = &i
	}
}

// AddedRemediationAttempts returns the value that was added to the "remediation_attempts" field in this mutation.
func (m *ThreatRecordMutation) AddedRemediationAttempts() (r int, exists bool) {
	v := m.addremediation_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ClearRemediationAttempts clears the value of the "remediation_attempts" field.
func (m *ThreatRecordMutation) ClearRemediationAttempts() {
	m.remediation_attempts = nil
	m.addremediation_attempts = nil
	m.clearedFields[threatrecord.FieldRemediationAttempts] = struct{}{}
}

// RemediationAttemptsCleared returns if the "remediation_attempts" field was cleared in this mutation.
func (m *ThreatRecordMutation) RemediationAttemptsCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldRemediationAttempts]
	return ok
}

// ResetRemediationAttempts resets all changes to the "remediation_attempts" field.
func (m *ThreatRecordMutation) ResetRemediationAttempts() {
	m.remediation_attempts = nil
	m.addremediation_attempts = nil
	delete(m.clearedFields, threatrecord.FieldRemediationAttempts)
}

// SetRemediationError sets the "remediation_error" field.
func (m *ThreatRecordMutation) SetRemediationError(s string) {
	m.remediation_error = &s
}

// RemediationError returns the value of the "remediation_error" field in the mutation.
func (m *ThreatRecordMutation) RemediationError() (r string, exists bool) {
	v := m.remediation_error
	if v == nil {
		return
	}
	return *v, true
}

// OldRemediationError returns the old "remediation_error" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldRemediationError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemediationError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemediationError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemediationError: %w", err)
	}
	return oldValue.RemediationError, nil
}

// ClearRemediationError clears the value of the "remediation_error" field.
func (m *ThreatRecordMutation) ClearRemediationError() {
	m.remediation_error = nil
	m.clearedFields[threatrecord.FieldRemediationError] = struct{}{}
}

// RemediationErrorCleared returns if the "remediation_error" field was cleared in this mutation.
func (m *ThreatRecordMutation) RemediationErrorCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldRemediationError]
	return ok
}

// ResetRemediationError resets all changes to the "remediation_error" field.
func (m *ThreatRecordMutation) ResetRemediationError() {
	m.remediation_error = nil
	delete(m.clearedFields, threatrecord.FieldRemediationError)
}

// SetStatus sets the "status" field.
func (m *ThreatRecordMutation) SetStatus(t threatrecord.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *ThreatRecordMutation) Status() (r threatrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldStatus(ctx context.Context) (v threatrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ThreatRecordMutation) ResetStatus() {
	m.status = nil
}

// SetNotifiedAt sets the "notified_at" field.
func (m *ThreatRecordMutation) SetNotifiedAt(t time.Time) {
	m.notified_at = &t
}

// NotifiedAt returns the value of the "notified_at" field in the mutation.
func (m *ThreatRecordMutation) NotifiedAt() (r time.Time, exists bool) {
	v := m.notified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNotifiedAt returns the old "notified_at" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldNotifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotifiedAt: %w", err)
	}
	return oldValue.NotifiedAt, nil
}

// ClearNotifiedAt clears the value of the "notified_at" field.
func (m *ThreatRecordMutation) ClearNotifiedAt() {
	m.notified_at = nil
	m.clearedFields[threatrecord.FieldNotifiedAt] = struct{}{}
}

// NotifiedAtCleared returns if the "notified_at" field was cleared in this mutation.
func (m *ThreatRecordMutation) NotifiedAtCleared() bool {
	_, ok := m.clearedFields[threatrecord.FieldNotifiedAt]
	return ok
}

// ResetNotifiedAt resets all changes to the "notified_at" field.
func (m *ThreatRecordMutation) ResetNotifiedAt() {
	m.notified_at = nil
	delete(m.clearedFields, threatrecord.FieldNotifiedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *ThreatRecordMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ThreatRecordMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ThreatRecordMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ThreatRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ThreatRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ThreatRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ThreatRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ThreatRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ThreatRecord entity.
// If the ThreatRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ThreatRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ThreatRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ThreatRecordMutation builder.
func (m *ThreatRecordMutation) Where(ps ...predicate.ThreatRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ThreatRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ThreatRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ThreatRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ThreatRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ThreatRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ThreatRecord).
func (m *ThreatRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ThreatRecordMutation) Fields() []string {
	fields := make([]string, 0, 36)
	if m.event_id != nil {
		fields = append(fields, threatrecord.FieldEventID)
	}
	if m.observed_at != nil {
		fields = append(fields, threatrecord.FieldObservedAt)
	}
	if m.received_at != nil {
		fields = append(fields, threatrecord.FieldReceivedAt)
	}
	if m.source != nil {
		fields = append(fields, threatrecord.FieldSource)
	}
	if m.account_id != nil {
		fields = append(fields, threatrecord.FieldAccountID)
	}
	if m.region != nil {
		fields = append(fields, threatrecord.FieldRegion)
	}
	if m.kind != nil {
		fields = append(fields, threatrecord.FieldKind)
	}
	if m.severity != nil {
		fields = append(fields, threatrecord.FieldSeverity)
	}
	if m.raw_severity != nil {
		fields = append(fields, threatrecord.FieldRawSeverity)
	}
	if m.resource_type != nil {
		fields = append(fields, threatrecord.FieldResourceType)
	}
	if m.resource_id != nil {
		fields = append(fields, threatrecord.FieldResourceID)
	}
	if m.details != nil {
		fields = append(fields, threatrecord.FieldDetails)
	}
	if m.ml_threat_score != nil {
		fields = append(fields, threatrecord.FieldMlThreatScore)
	}
	if m.ml_confidence != nil {
		fields = append(fields, threatrecord.FieldMlConfidence)
	}
	if m.ml_model_version != nil {
		fields = append(fields, threatrecord.FieldMlModelVersion)
	}
	if m.ml_feature_version != nil {
		fields = append(fields, threatrecord.FieldMlFeatureVersion)
	}
	if m.ml_error != nil {
		fields = append(fields, threatrecord.FieldMlError)
	}
	if m.triage_priority != nil {
		fields = append(fields, threatrecord.FieldTriagePriority)
	}
	if m.triage_band != nil {
		fields = append(fields, threatrecord.FieldTriageBand)
	}
	if m.recommended_actions != nil {
		fields = append(fields, threatrecord.FieldRecommendedActions)
	}
	if m.requires_human_review != nil {
		fields = append(fields, threatrecord.FieldRequiresHumanReview)
	}
	if m.analysis_risk_score != nil {
		fields = append(fields, threatrecord.FieldAnalysisRiskScore)
	}
	if m.analysis_attack_vector != nil {
		fields = append(fields, threatrecord.FieldAnalysisAttackVector)
	}
	if m.analysis_confidence != nil {
		fields = append(fields, threatrecord.FieldAnalysisConfidence)
	}
	if m.analysis_business_impact != nil {
		fields = append(fields, threatrecord.FieldAnalysisBusinessImpact)
	}
	if m.analysis_summary != nil {
		fields = append(fields, threatrecord.FieldAnalysisSummary)
	}
	if m.analysis_error != nil {
		fields = append(fields, threatrecord.FieldAnalysisError)
	}
	if m.remediation_action != nil {
		fields = append(fields, threatrecord.FieldRemediationAction)
	}
	if m.remediation_status != nil {
		fields = append(fields, threatrecord.FieldRemediationStatus)
	}
	if m.remediation_attempts != nil {
		fields = append(fields, threatrecord.FieldRemediationAttempts)
	}
	if m.remediation_error != nil {
		fields = append(fields, threatrecord.FieldRemediationError)
	}
	if m.status != nil {
		fields = append(fields, threatrecord.FieldStatus)
	}
	if m.notified_at != nil {
		fields = append(fields, threatrecord.FieldNotifiedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, threatrecord.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, threatrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, threatrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ThreatRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case threatrecord.FieldEventID:
		return m.EventID()
	case threatrecord.FieldObservedAt:
		return m.ObservedAt()
	case threatrecord.FieldReceivedAt:
		return m.ReceivedAt()
	case threatrecord.FieldSource:
		return m.Source()
	case threatrecord.FieldAccountID:
		return m.AccountID()
	case threatrecord.FieldRegion:
		return m.Region()
	case threatrecord.FieldKind:
		return m.Kind()
	case threatrecord.FieldSeverity:
		return m.Severity()
	case threatrecord.FieldRawSeverity:
		return m.RawSeverity()
	case threatrecord.FieldResourceType:
		return m.ResourceType()
	case threatrecord.FieldResourceID:
		return m.ResourceID()
	case threatrecord.FieldDetails:
		return m.Details()
	case threatrecord.FieldMlThreatScore:
		return m.MlThreatScore()
	case threatrecord.FieldMlConfidence:
		return m.MlConfidence()
	case threatrecord.FieldMlModelVersion:
		return m.MlModelVersion()
	case threatrecord.FieldMlFeatureVersion:
		return m.MlFeatureVersion()
	case threatrecord.FieldMlError:
		return m.MlError()
	case threatrecord.FieldTriagePriority:
		return m.TriagePriority()
	case threatrecord.FieldTriageBand:
		return m.TriageBand()
	case threatrecord.FieldRecommendedActions:
		return m.RecommendedActions()
	case threatrecord.FieldRequiresHumanReview:
		return m.RequiresHumanReview()
	case threatrecord.FieldAnalysisRiskScore:
		return m.AnalysisRiskScore()
	case threatrecord.FieldAnalysisAttackVector:
		return m.AnalysisAttackVector()
	case threatrecord.FieldAnalysisConfidence:
		return m.AnalysisConfidence()
	case threatrecord.FieldAnalysisBusinessImpact:
		return m.AnalysisBusinessImpact()
	case threatrecord.FieldAnalysisSummary:
		return m.AnalysisSummary()
	case threatrecord.FieldAnalysisError:
		return m.AnalysisError()
	case threatrecord.FieldRemediationAction:
		return m.RemediationAction()
	case threatrecord.FieldRemediationStatus:
		return m.RemediationStatus()
	case threatrecord.FieldRemediationAttempts:
		return m.RemediationAttempts()
	case threatrecord.FieldRemediationError:
		return m.RemediationError()
	case threatrecord.FieldStatus:
		return m.Status()
	case threatrecord.FieldNotifiedAt:
		return m.NotifiedAt()
	case threatrecord.FieldExpiresAt:
		return m.ExpiresAt()
	case threatrecord.FieldCreatedAt:
		return m.CreatedAt()
	case threatrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ThreatRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case threatrecord.FieldEventID:
		return m.OldEventID(ctx)
	case threatrecord.FieldObservedAt:
		return m.OldObservedAt(ctx)
	case threatrecord.FieldReceivedAt:
		return m.OldReceivedAt(ctx)
	case threatrecord.FieldSource:
		return m.OldSource(ctx)
	case threatrecord.FieldAccountID:
		return m.OldAccountID(ctx)
	case threatrecord.FieldRegion:
		return m.OldRegion(ctx)
	case threatrecord.FieldKind:
		return m.OldKind(ctx)
	case threatrecord.FieldSeverity:
		return m.OldSeverity(ctx)
	case threatrecord.FieldRawSeverity:
		return m.OldRawSeverity(ctx)
	case threatrecord.FieldResourceType:
		return m.OldResourceType(ctx)
	case threatrecord.FieldResourceID:
		return m.OldResourceID(ctx)
	case threatrecord.FieldDetails:
		return m.OldDetails(ctx)
	case threatrecord.FieldMlThreatScore:
		return m.OldMlThreatScore(ctx)
	case threatrecord.FieldMlConfidence:
		return m.OldMlConfidence(ctx)
	case threatrecord.FieldMlModelVersion:
		return m.OldMlModelVersion(ctx)
	case threatrecord.FieldMlFeatureVersion:
		return m.OldMlFeatureVersion(ctx)
	case threatrecord.FieldMlError:
		return m.OldMlError(ctx)
	case threatrecord.FieldTriagePriority:
		return m.OldTriagePriority(ctx)
	case threatrecord.FieldTriageBand:
		return m.OldTriageBand(ctx)
	case threatrecord.FieldRecommendedActions:
		return m.OldRecommendedActions(ctx)
	case threatrecord.FieldRequiresHumanReview:
		return m.OldRequiresHumanReview(ctx)
	case threatrecord.FieldAnalysisRiskScore:
		return m.OldAnalysisRiskScore(ctx)
	case threatrecord.FieldAnalysisAttackVector:
		return m.OldAnalysisAttackVector(ctx)
	case threatrecord.FieldAnalysisConfidence:
		return m.OldAnalysisConfidence(ctx)
	case threatrecord.FieldAnalysisBusinessImpact:
		return m.OldAnalysisBusinessImpact(ctx)
	case threatrecord.FieldAnalysisSummary:
		return m.OldAnalysisSummary(ctx)
	case threatrecord.FieldAnalysisError:
		return m.OldAnalysisError(ctx)
	case threatrecord.FieldRemediationAction:
		return m.OldRemediationAction(ctx)
	case threatrecord.FieldRemediationStatus:
		return m.OldRemediationStatus(ctx)
	case threatrecord.FieldRemediationAttempts:
		return m.OldRemediationAttempts(ctx)
	case threatrecord.FieldRemediationError:
		return m.OldRemediationError(ctx)
	case threatrecord.FieldStatus:
		return m.OldStatus(ctx)
	case threatrecord.FieldNotifiedAt:
		return m.OldNotifiedAt(ctx)
	case threatrecord.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case threatrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case threatrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ThreatRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreatRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case threatrecord.FieldEventID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventID(v)
		return nil
	case threatrecord.FieldObservedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservedAt(v)
		return nil
	case threatrecord.FieldReceivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReceivedAt(v)
		return nil
	case threatrecord.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case threatrecord.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case threatrecord.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case threatrecord.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case threatrecord.FieldSeverity:
		v, ok := value.(threatrecord.Severity)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case threatrecord.FieldRawSeverity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawSeverity(v)
		return nil
	case threatrecord.FieldResourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceType(v)
		return nil
	case threatrecord.FieldResourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResourceID(v)
		return nil
	case threatrecord.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case threatrecord.FieldMlThreatScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlThreatScore(v)
		return nil
	case threatrecord.FieldMlConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlConfidence(v)
		return nil
	case threatrecord.FieldMlModelVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlModelVersion(v)
		return nil
	case threatrecord.FieldMlFeatureVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlFeatureVersion(v)
		return nil
	case threatrecord.FieldMlError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMlError(v)
		return nil
	case threatrecord.FieldTriagePriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriagePriority(v)
		return nil
	case threatrecord.FieldTriageBand:
		v, ok := value.(threatrecord.TriageBand)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriageBand(v)
		return nil
	case threatrecord.FieldRecommendedActions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendedActions(v)
		return nil
	case threatrecord.FieldRequiresHumanReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequiresHumanReview(v)
		return nil
	case threatrecord.FieldAnalysisRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisRiskScore(v)
		return nil
	case threatrecord.FieldAnalysisAttackVector:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisAttackVector(v)
		return nil
	case threatrecord.FieldAnalysisConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisConfidence(v)
		return nil
	case threatrecord.FieldAnalysisBusinessImpact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisBusinessImpact(v)
		return nil
	case threatrecord.FieldAnalysisSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisSummary(v)
		return nil
	case threatrecord.FieldAnalysisError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisError(v)
		return nil
	case threatrecord.FieldRemediationAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediationAction(v)
		return nil
	case threatrecord.FieldRemediationStatus:
		v, ok := value.(threatrecord.RemediationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediationStatus(v)
		return nil
	case threatrecord.FieldRemediationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediationAttempts(v)
		return nil
	case threatrecord.FieldRemediationError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemediationError(v)
		return nil
	case threatrecord.FieldStatus:
		v, ok := value.(threatrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case threatrecord.FieldNotifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotifiedAt(v)
		return nil
	case threatrecord.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case threatrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case threatrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ThreatRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ThreatRecordMutation) AddedFields() []string {
	var fields []string
	if m.addraw_severity != nil {
		fields = append(fields, threatrecord.FieldRawSeverity)
	}
	if m.addml_threat_score != nil {
		fields = append(fields, threatrecord.FieldMlThreatScore)
	}
	if m.addml_confidence != nil {
		fields = append(fields, threatrecord.FieldMlConfidence)
	}
	if m.addtriage_priority != nil {
		fields = append(fields, threatrecord.FieldTriagePriority)
	}
	if m.addanalysis_risk_score != nil {
		fields = append(fields, threatrecord.FieldAnalysisRiskScore)
	}
	if m.addanalysis_confidence != nil {
		fields = append(fields, threatrecord.FieldAnalysisConfidence)
	}
	if m.addremediation_attempts != nil {
		fields = append(fields, threatrecord.FieldRemediationAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ThreatRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case threatrecord.FieldRawSeverity:
		return m.AddedRawSeverity()
	case threatrecord.FieldMlThreatScore:
		return m.AddedMlThreatScore()
	case threatrecord.FieldMlConfidence:
		return m.AddedMlConfidence()
	case threatrecord.FieldTriagePriority:
		return m.AddedTriagePriority()
	case threatrecord.FieldAnalysisRiskScore:
		return m.AddedAnalysisRiskScore()
	case threatrecord.FieldAnalysisConfidence:
		return m.AddedAnalysisConfidence()
	case threatrecord.FieldRemediationAttempts:
		return m.AddedRemediationAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ThreatRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case threatrecord.FieldRawSeverity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRawSeverity(v)
		return nil
	case threatrecord.FieldMlThreatScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMlThreatScore(v)
		return nil
	case threatrecord.FieldMlConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMlConfidence(v)
		return nil
	case threatrecord.FieldTriagePriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTriagePriority(v)
		return nil
	case threatrecord.FieldAnalysisRiskScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnalysisRiskScore(v)
		return nil
	case threatrecord.FieldAnalysisConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnalysisConfidence(v)
		return nil
	case threatrecord.FieldRemediationAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRemediationAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown ThreatRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ThreatRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(threatrecord.FieldRawSeverity) {
		fields = append(fields, threatrecord.FieldRawSeverity)
	}
	if m.FieldCleared(threatrecord.FieldResourceType) {
		fields = append(fields, threatrecord.FieldResourceType)
	}
	if m.FieldCleared(threatrecord.FieldResourceID) {
		fields = append(fields, threatrecord.FieldResourceID)
	}
	if m.FieldCleared(threatrecord.FieldDetails) {
		fields = append(fields, threatrecord.FieldDetails)
	}
	if m.FieldCleared(threatrecord.FieldMlThreatScore) {
		fields = append(fields, threatrecord.FieldMlThreatScore)
	}
	if m.FieldCleared(threatrecord.FieldMlConfidence) {
		fields = append(fields, threatrecord.FieldMlConfidence)
	}
	if m.FieldCleared(threatrecord.FieldMlModelVersion) {
		fields = append(fields, threatrecord.FieldMlModelVersion)
	}
	if m.FieldCleared(threatrecord.FieldMlFeatureVersion) {
		fields = append(fields, threatrecord.FieldMlFeatureVersion)
	}
	if m.FieldCleared(threatrecord.FieldMlError) {
		fields = append(fields, threatrecord.FieldMlError)
	}
	if m.FieldCleared(threatrecord.FieldTriagePriority) {
		fields = append(fields, threatrecord.FieldTriagePriority)
	}
	if m.FieldCleared(threatrecord.FieldTriageBand) {
		fields = append(fields, threatrecord.FieldTriageBand)
	}
	if m.FieldCleared(threatrecord.FieldRecommendedActions) {
		fields = append(fields, threatrecord.FieldRecommendedActions)
	}
	if m.FieldCleared(threatrecord.FieldAnalysisRiskScore) {
		fields = append(fields, threatrecord.FieldAnalysisRiskScore)
	}
	if m.FieldCleared(threatrecord.FieldAnalysisAttackVector) {
		fields = append(fields, threatrecord.FieldAnalysisAttackVector)
	}
	if m.FieldCleared(threatrecord.FieldAnalysisConfidence) {
		fields = append(fields, threatrecord.FieldAnalysisConfidence)
	}
	if m.FieldCleared(threatrecord.FieldAnalysisBusinessImpact) {
		fields = append(fields, threatrecord.FieldAnalysisBusinessImpact)
	}
	if m.FieldCleared(threatrecord.FieldAnalysisSummary) {
		fields = append(fields, threatrecord.FieldAnalysisSummary)
	}
	if m.FieldCleared(threatrecord.FieldAnalysisError) {
		fields = append(fields, threatrecord.FieldAnalysisError)
	}
	if m.FieldCleared(threatrecord.FieldRemediationAction) {
		fields = append(fields, threatrecord.FieldRemediationAction)
	}
	if m.FieldCleared(threatrecord.FieldRemediationStatus) {
		fields = append(fields, threatrecord.FieldRemediationStatus)
	}
	if m.FieldCleared(threatrecord.FieldRemediationAttempts) {
		fields = append(fields, threatrecord.FieldRemediationAttempts)
	}
	if m.FieldCleared(threatrecord.FieldRemediationError) {
		fields = append(fields, threatrecord.FieldRemediationError)
	}
	if m.FieldCleared(threatrecord.FieldNotifiedAt) {
		fields = append(fields, threatrecord.FieldNotifiedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ThreatRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ThreatRecordMutation) ClearField(name string) error {
	switch name {
	case threatrecord.FieldRawSeverity:
		m.ClearRawSeverity()
		return nil
	case threatrecord.FieldResourceType:
		m.ClearResourceType()
		return nil
	case threatrecord.FieldResourceID:
		m.ClearResourceID()
		return nil
	case threatrecord.FieldDetails:
		m.ClearDetails()
		return nil
	case threatrecord.FieldMlThreatScore:
		m.ClearMlThreatScore()
		return nil
	case threatrecord.FieldMlConfidence:
		m.ClearMlConfidence()
		return nil
	case threatrecord.FieldMlModelVersion:
		m.ClearMlModelVersion()
		return nil
	case threatrecord.FieldMlFeatureVersion:
		m.ClearMlFeatureVersion()
		return nil
	case threatrecord.FieldMlError:
		m.ClearMlError()
		return nil
	case threatrecord.FieldTriagePriority:
		m.ClearTriagePriority()
		return nil
	case threatrecord.FieldTriageBand:
		m.ClearTriageBand()
		return nil
	case threatrecord.FieldRecommendedActions:
		m.ClearRecommendedActions()
		return nil
	case threatrecord.FieldAnalysisRiskScore:
		m.ClearAnalysisRiskScore()
		return nil
	case threatrecord.FieldAnalysisAttackVector:
		m.ClearAnalysisAttackVector()
		return nil
	case threatrecord.FieldAnalysisConfidence:
		m.ClearAnalysisConfidence()
		return nil
	case threatrecord.FieldAnalysisBusinessImpact:
		m.ClearAnalysisBusinessImpact()
		return nil
	case threatrecord.FieldAnalysisSummary:
		m.ClearAnalysisSummary()
		return nil
	case threatrecord.FieldAnalysisError:
		m.ClearAnalysisError()
		return nil
	case threatrecord.FieldRemediationAction:
		m.ClearRemediationAction()
		return nil
	case threatrecord.FieldRemediationStatus:
		m.ClearRemediationStatus()
		return nil
	case threatrecord.FieldRemediationAttempts:
		m.ClearRemediationAttempts()
		return nil
	case threatrecord.FieldRemediationError:
		m.ClearRemediationError()
		return nil
	case threatrecord.FieldNotifiedAt:
		m.ClearNotifiedAt()
		return nil
	}
	return fmt.Errorf("unknown ThreatRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ThreatRecordMutation) ResetField(name string) error {
	switch name {
	case threatrecord.FieldEventID:
		m.ResetEventID()
		return nil
	case threatrecord.FieldObservedAt:
		m.ResetObservedAt()
		return nil
	case threatrecord.FieldReceivedAt:
		m.ResetReceivedAt()
		return nil
	case threatrecord.FieldSource:
		m.ResetSource()
		return nil
	case threatrecord.FieldAccountID:
		m.ResetAccountID()
		return nil
	case threatrecord.FieldRegion:
		m.ResetRegion()
		return nil
	case threatrecord.FieldKind:
		m.ResetKind()
		return nil
	case threatrecord.FieldSeverity:
		m.ResetSeverity()
		return nil
	case threatrecord.FieldRawSeverity:
		m.ResetRawSeverity()
		return nil
	case threatrecord.FieldResourceType:
		m.ResetResourceType()
		return nil
	case threatrecord.FieldResourceID:
		m.ResetResourceID()
		return nil
	case threatrecord.FieldDetails:
		m.ResetDetails()
		return nil
	case threatrecord.FieldMlThreatScore:
		m.ResetMlThreatScore()
		return nil
	case threatrecord.FieldMlConfidence:
		m.ResetMlConfidence()
		return nil
	case threatrecord.FieldMlModelVersion:
		m.ResetMlModelVersion()
		return nil
	case threatrecord.FieldMlFeatureVersion:
		m.ResetMlFeatureVersion()
		return nil
	case threatrecord.FieldMlError:
		m.ResetMlError()
		return nil
	case threatrecord.FieldTriagePriority:
		m.ResetTriagePriority()
		return nil
	case threatrecord.FieldTriageBand:
		m.ResetTriageBand()
		return nil
	case threatrecord.FieldRecommendedActions:
		m.ResetRecommendedActions()
		return nil
	case threatrecord.FieldRequiresHumanReview:
		m.ResetRequiresHumanReview()
		return nil
	case threatrecord.FieldAnalysisRiskScore:
		m.ResetAnalysisRiskScore()
		return nil
	case threatrecord.FieldAnalysisAttackVector:
		m.ResetAnalysisAttackVector()
		return nil
	case threatrecord.FieldAnalysisConfidence:
		m.ResetAnalysisConfidence()
		return nil
	case threatrecord.FieldAnalysisBusinessImpact:
		m.ResetAnalysisBusinessImpact()
		return nil
	case threatrecord.FieldAnalysisSummary:
		m.ResetAnalysisSummary()
		return nil
	case threatrecord.FieldAnalysisError:
		m.ResetAnalysisError()
		return nil
	case threatrecord.FieldRemediationAction:
		m.ResetRemediationAction()
		return nil
	case threatrecord.FieldRemediationStatus:
		m.ResetRemediationStatus()
		return nil
	case threatrecord.FieldRemediationAttempts:
		m.ResetRemediationAttempts()
		return nil
	case threatrecord.FieldRemediationError:
		m.ResetRemediationError()
		return nil
	case threatrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case threatrecord.FieldNotifiedAt:
		m.ResetNotifiedAt()
		return nil
	case threatrecord.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case threatrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case threatrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ThreatRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ThreatRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ThreatRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ThreatRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ThreatRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ThreatRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ThreatRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ThreatRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ThreatRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ThreatRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ThreatRecord edge %s", name)
}

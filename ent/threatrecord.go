// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/argus-soc/argus/ent/threatrecord"
)

// ThreatRecord is the model entity for the ThreatRecord schema.
type ThreatRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Upstream event identifier (not unique on its own; sources recycle IDs across time)
	EventID string `json:"event_id,omitempty"`
	// When the source observed the activity
	ObservedAt time.Time `json:"observed_at,omitempty"`
	// When ingest accepted the raw finding
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// Canonical source tag (e.g. 'aws.guardduty')
	Source string `json:"source,omitempty"`
	// AccountID holds the value of the "account_id" field.
	AccountID string `json:"account_id,omitempty"`
	// Region holds the value of the "region" field.
	Region string `json:"region,omitempty"`
	// Source-native finding type
	Kind string `json:"kind,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity threatrecord.Severity `json:"severity,omitempty"`
	// Source-native severity before band mapping
	RawSeverity *float64 `json:"raw_severity,omitempty"`
	// ResourceType holds the value of the "resource_type" field.
	ResourceType string `json:"resource_type,omitempty"`
	// ResourceID holds the value of the "resource_id" field.
	ResourceID string `json:"resource_id,omitempty"`
	// Masked source detail payload
	Details map[string]interface{} `json:"details,omitempty"`
	// MlThreatScore holds the value of the "ml_threat_score" field.
	MlThreatScore *float64 `json:"ml_threat_score,omitempty"`
	// MlConfidence holds the value of the "ml_confidence" field.
	MlConfidence *float64 `json:"ml_confidence,omitempty"`
	// MlModelVersion holds the value of the "ml_model_version" field.
	MlModelVersion *string `json:"ml_model_version,omitempty"`
	// MlFeatureVersion holds the value of the "ml_feature_version" field.
	MlFeatureVersion *string `json:"ml_feature_version,omitempty"`
	// MlError holds the value of the "ml_error" field.
	MlError *string `json:"ml_error,omitempty"`
	// 0-100 composite priority
	TriagePriority *float64 `json:"triage_priority,omitempty"`
	// TriageBand holds the value of the "triage_band" field.
	TriageBand threatrecord.TriageBand `json:"triage_band,omitempty"`
	// RecommendedActions holds the value of the "recommended_actions" field.
	RecommendedActions []string `json:"recommended_actions,omitempty"`
	// RequiresHumanReview holds the value of the "requires_human_review" field.
	RequiresHumanReview bool `json:"requires_human_review,omitempty"`
	// AnalysisRiskScore holds the value of the "analysis_risk_score" field.
	AnalysisRiskScore *float64 `json:"analysis_risk_score,omitempty"`
	// AnalysisAttackVector holds the value of the "analysis_attack_vector" field.
	AnalysisAttackVector *string `json:"analysis_attack_vector,omitempty"`
	// AnalysisConfidence holds the value of the "analysis_confidence" field.
	AnalysisConfidence *float64 `json:"analysis_confidence,omitempty"`
	// AnalysisBusinessImpact holds the value of the "analysis_business_impact" field.
	AnalysisBusinessImpact *string `json:"analysis_business_impact,omitempty"`
	// AnalysisSummary holds the value of the "analysis_summary" field.
	AnalysisSummary *string `json:"analysis_summary,omitempty"`
	// 'timeout' or 'parse_failed' when the analyst degraded
	AnalysisError *string `json:"analysis_error,omitempty"`
	// RemediationAction holds the value of the "remediation_action" field.
	RemediationAction *string `json:"remediation_action,omitempty"`
	// RemediationStatus holds the value of the "remediation_status" field.
	RemediationStatus threatrecord.RemediationStatus `json:"remediation_status,omitempty"`
	// RemediationAttempts holds the value of the "remediation_attempts" field.
	RemediationAttempts int `json:"remediation_attempts,omitempty"`
	// RemediationError holds the value of the "remediation_error" field.
	RemediationError *string `json:"remediation_error,omitempty"`
	// Status holds the value of the "status" field.
	Status threatrecord.Status `json:"status,omitempty"`
	// NotifiedAt holds the value of the "notified_at" field.
	NotifiedAt *time.Time `json:"notified_at,omitempty"`
	// Hard-delete horizon enforced by the retention sweeper
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ThreatRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case threatrecord.FieldDetails, threatrecord.FieldRecommendedActions:
			values[i] = new([]byte)
		case threatrecord.FieldRequiresHumanReview:
			values[i] = new(sql.NullBool)
		case threatrecord.FieldRawSeverity, threatrecord.FieldMlThreatScore, threatrecord.FieldMlConfidence, threatrecord.FieldTriagePriority, threatrecord.FieldAnalysisRiskScore, threatrecord.FieldAnalysisConfidence:
			values[i] = new(sql.NullFloat64)
		case threatrecord.FieldRemediationAttempts:
			values[i] = new(sql.NullInt64)
		case threatrecord.FieldID, threatrecord.FieldEventID, threatrecord.FieldSource, threatrecord.FieldAccountID, threatrecord.FieldRegion, threatrecord.FieldKind, threatrecord.FieldSeverity, threatrecord.FieldResourceType, threatrecord.FieldResourceID, threatrecord.FieldMlModelVersion, threatrecord.FieldMlFeatureVersion, threatrecord.FieldMlError, threatrecord.FieldTriageBand, threatrecord.FieldAnalysisAttackVector, threatrecord.FieldAnalysisBusinessImpact, threatrecord.FieldAnalysisSummary, threatrecord.FieldAnalysisError, threatrecord.FieldRemediationAction, threatrecord.FieldRemediationStatus, threatrecord.FieldRemediationError, threatrecord.FieldStatus:
			values[i] = new(sql.NullString)
		case threatrecord.FieldObservedAt, threatrecord.FieldReceivedAt, threatrecord.FieldNotifiedAt, threatrecord.FieldExpiresAt, threatrecord.FieldCreatedAt, threatrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ThreatRecord fields.
func (_m *ThreatRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case threatrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case threatrecord.FieldEventID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field event_id", values[i])
			} else if value.Valid {
				_m.EventID = value.String
			}
		case threatrecord.FieldObservedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field observed_at", values[i])
			} else if value.Valid {
				_m.ObservedAt = value.Time
			}
		case threatrecord.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case threatrecord.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case threatrecord.FieldAccountID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field account_id", values[i])
			} else if value.Valid {
				_m.AccountID = value.String
			}
		case threatrecord.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = value.String
			}
		case threatrecord.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case threatrecord.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = threatrecord.Severity(value.String)
			}
		case threatrecord.FieldRawSeverity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field raw_severity", values[i])
			} else if value.Valid {
				_m.RawSeverity = new(float64)
				*_m.RawSeverity = value.Float64
			}
		case threatrecord.FieldResourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_type", values[i])
			} else if value.Valid {
				_m.ResourceType = value.String
			}
		case threatrecord.FieldResourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value.Valid {
				_m.ResourceID = value.String
			}
		case threatrecord.FieldDetails:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field details", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Details); err != nil {
					return fmt.Errorf("unmarshal field details: %w", err)
				}
			}
		case threatrecord.FieldMlThreatScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ml_threat_score", values[i])
			} else if value.Valid {
				_m.MlThreatScore = new(float64)
				*_m.MlThreatScore = value.Float64
			}
		case threatrecord.FieldMlConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ml_confidence", values[i])
			} else if value.Valid {
				_m.MlConfidence = new(float64)
				*_m.MlConfidence = value.Float64
			}
		case threatrecord.FieldMlModelVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ml_model_version", values[i])
			} else if value.Valid {
				_m.MlModelVersion = new(string)
				*_m.MlModelVersion = value.String
			}
		case threatrecord.FieldMlFeatureVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ml_feature_version", values[i])
			} else if value.Valid {
				_m.MlFeatureVersion = new(string)
				*_m.MlFeatureVersion = value.String
			}
		case threatrecord.FieldMlError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ml_error", values[i])
			} else if value.Valid {
				_m.MlError = new(string)
				*_m.MlError = value.String
			}
		case threatrecord.FieldTriagePriority:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field triage_priority", values[i])
			} else if value.Valid {
				_m.TriagePriority = new(float64)
				*_m.TriagePriority = value.Float64
			}
		case threatrecord.FieldTriageBand:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field triage_band", values[i])
			} else if value.Valid {
				_m.TriageBand = threatrecord.TriageBand(value.String)
			}
		case threatrecord.FieldRecommendedActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecommendedActions); err != nil {
					return fmt.Errorf("unmarshal field recommended_actions: %w", err)
				}
			}
		case threatrecord.FieldRequiresHumanReview:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field requires_human_review", values[i])
			} else if value.Valid {
				_m.RequiresHumanReview = value.Bool
			}
		case threatrecord.FieldAnalysisRiskScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_risk_score", values[i])
			} else if value.Valid {
				_m.AnalysisRiskScore = new(float64)
				*_m.AnalysisRiskScore = value.Float64
			}
		case threatrecord.FieldAnalysisAttackVector:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_attack_vector", values[i])
			} else if value.Valid {
				_m.AnalysisAttackVector = new(string)
				*_m.AnalysisAttackVector = value.String
			}
		case threatrecord.FieldAnalysisConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_confidence", values[i])
			} else if value.Valid {
				_m.AnalysisConfidence = new(float64)
				*_m.AnalysisConfidence = value.Float64
			}
		case threatrecord.FieldAnalysisBusinessImpact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_business_impact", values[i])
			} else if value.Valid {
				_m.AnalysisBusinessImpact = new(string)
				*_m.AnalysisBusinessImpact = value.String
			}
		case threatrecord.FieldAnalysisSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_summary", values[i])
			} else if value.Valid {
				_m.AnalysisSummary = new(string)
				*_m.AnalysisSummary = value.String
			}
		case threatrecord.FieldAnalysisError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field analysis_error", values[i])
			} else if value.Valid {
				_m.AnalysisError = new(string)
				*_m.AnalysisError = value.String
			}
		case threatrecord.FieldRemediationAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_action", values[i])
			} else if value.Valid {
				_m.RemediationAction = new(string)
				*_m.RemediationAction = value.String
			}
		case threatrecord.FieldRemediationStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_status", values[i])
			} else if value.Valid {
				_m.RemediationStatus = threatrecord.RemediationStatus(value.String)
			}
		case threatrecord.FieldRemediationAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_attempts", values[i])
			} else if value.Valid {
				_m.RemediationAttempts = int(value.Int64)
			}
		case threatrecord.FieldRemediationError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field remediation_error", values[i])
			} else if value.Valid {
				_m.RemediationError = new(string)
				*_m.RemediationError = value.String
			}
		case threatrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = threatrecord.Status(value.String)
			}
		case threatrecord.FieldNotifiedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field notified_at", values[i])
			} else if value.Valid {
				_m.NotifiedAt = new(time.Time)
				*_m.NotifiedAt = value.Time
			}
		case threatrecord.FieldExpiresAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field expires_at", values[i])
			} else if value.Valid {
				_m.ExpiresAt = value.Time
			}
		case threatrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case threatrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ThreatRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ThreatRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ThreatRecord.
// Note that you need to call ThreatRecord.Unwrap() before calling this method if this ThreatRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ThreatRecord) Update() *ThreatRecordUpdateOne {
	return NewThreatRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ThreatRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ThreatRecord) Unwrap() *ThreatRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ThreatRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ThreatRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ThreatRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("event_id=")
	builder.WriteString(_m.EventID)
	builder.WriteString(", ")
	builder.WriteString("observed_at=")
	builder.WriteString(_m.ObservedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("account_id=")
	builder.WriteString(_m.AccountID)
	builder.WriteString(", ")
	builder.WriteString("region=")
	builder.WriteString(_m.Region)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	if v := _m.RawSeverity; v != nil {
		builder.WriteString("raw_severity=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("resource_type=")
	builder.WriteString(_m.ResourceType)
	builder.WriteString(", ")
	builder.WriteString("resource_id=")
	builder.WriteString(_m.ResourceID)
	builder.WriteString(", ")
	builder.WriteString("details=")
	builder.WriteString(fmt.Sprintf("%v", _m.Details))
	builder.WriteString(", ")
	if v := _m.MlThreatScore; v != nil {
		builder.WriteString("ml_threat_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MlConfidence; v != nil {
		builder.WriteString("ml_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MlModelVersion; v != nil {
		builder.WriteString("ml_model_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MlFeatureVersion; v != nil {
		builder.WriteString("ml_feature_version=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MlError; v != nil {
		builder.WriteString("ml_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TriagePriority; v != nil {
		builder.WriteString("triage_priority=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("triage_band=")
	builder.WriteString(fmt.Sprintf("%v", _m.TriageBand))
	builder.WriteString(", ")
	builder.WriteString("recommended_actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecommendedActions))
	builder.WriteString(", ")
	builder.WriteString("requires_human_review=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequiresHumanReview))
	builder.WriteString(", ")
	if v := _m.AnalysisRiskScore; v != nil {
		builder.WriteString("analysis_risk_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AnalysisAttackVector; v != nil {
		builder.WriteString("analysis_attack_vector=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnalysisConfidence; v != nil {
		builder.WriteString("analysis_confidence=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.AnalysisBusinessImpact; v != nil {
		builder.WriteString("analysis_business_impact=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnalysisSummary; v != nil {
		builder.WriteString("analysis_summary=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.AnalysisError; v != nil {
		builder.WriteString("analysis_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RemediationAction; v != nil {
		builder.WriteString("remediation_action=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("remediation_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemediationStatus))
	builder.WriteString(", ")
	builder.WriteString("remediation_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemediationAttempts))
	builder.WriteString(", ")
	if v := _m.RemediationError; v != nil {
		builder.WriteString("remediation_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.NotifiedAt; v != nil {
		builder.WriteString("notified_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("expires_at=")
	builder.WriteString(_m.ExpiresAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ThreatRecords is a parsable slice of ThreatRecord.
type ThreatRecords []*ThreatRecord

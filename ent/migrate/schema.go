// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ThreatRecordsColumns holds the columns for the "threat_records" table.
	ThreatRecordsColumns = []*schema.Column{
		{Name: "record_id", Type: field.TypeString, Unique: true},
		{Name: "event_id", Type: field.TypeString},
		{Name: "observed_at", Type: field.TypeTime},
		{Name: "received_at", Type: field.TypeTime},
		{Name: "source", Type: field.TypeString},
		{Name: "account_id", Type: field.TypeString},
		{Name: "region", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "severity", Type: field.TypeEnum, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}},
		{Name: "raw_severity", Type: field.TypeFloat64, Nullable: true},
		{Name: "resource_type", Type: field.TypeString, Nullable: true},
		{Name: "resource_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeJSON, Nullable: true},
		{Name: "ml_threat_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "ml_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "ml_model_version", Type: field.TypeString, Nullable: true},
		{Name: "ml_feature_version", Type: field.TypeString, Nullable: true},
		{Name: "ml_error", Type: field.TypeString, Nullable: true},
		{Name: "triage_priority", Type: field.TypeFloat64, Nullable: true},
		{Name: "triage_band", Type: field.TypeEnum, Nullable: true, Enums: []string{"LOW", "MEDIUM", "HIGH", "CRITICAL"}},
		{Name: "recommended_actions", Type: field.TypeJSON, Nullable: true},
		{Name: "requires_human_review", Type: field.TypeBool, Default: false},
		{Name: "analysis_risk_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "analysis_attack_vector", Type: field.TypeString, Nullable: true},
		{Name: "analysis_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "analysis_business_impact", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "analysis_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "analysis_error", Type: field.TypeString, Nullable: true},
		{Name: "remediation_action", Type: field.TypeString, Nullable: true},
		{Name: "remediation_status", Type: field.TypeEnum, Nullable: true, Enums: []string{"SUCCEEDED", "FAILED", "SKIPPED"}},
		{Name: "remediation_attempts", Type: field.TypeInt, Nullable: true},
		{Name: "remediation_error", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"STORED_ONLY", "NOTIFIED", "REMEDIATED", "DEAD_LETTERED"}, Default: "STORED_ONLY"},
		{Name: "notified_at", Type: field.TypeTime, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ThreatRecordsTable holds the schema information for the "threat_records" table.
	ThreatRecordsTable = &schema.Table{
		Name:       "threat_records",
		Columns:    ThreatRecordsColumns,
		PrimaryKey: []*schema.Column{ThreatRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "threatrecord_event_id_observed_at",
				Unique:  true,
				Columns: []*schema.Column{ThreatRecordsColumns[1], ThreatRecordsColumns[2]},
			},
			{
				Name:    "threatrecord_status",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[32]},
			},
			{
				Name:    "threatrecord_severity",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[8]},
			},
			{
				Name:    "threatrecord_source",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[4]},
			},
			{
				Name:    "threatrecord_account_id",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[5]},
			},
			{
				Name:    "threatrecord_severity_created_at",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[8], ThreatRecordsColumns[35]},
			},
			{
				Name:    "threatrecord_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[32], ThreatRecordsColumns[35]},
			},
			{
				Name:    "threatrecord_expires_at",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[34]},
			},
			{
				Name:    "threatrecord_requires_human_review",
				Unique:  false,
				Columns: []*schema.Column{ThreatRecordsColumns[21]},
				Annotation: &entsql.IndexAnnotation{
					Where: "requires_human_review",
				},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ThreatRecordsTable,
	}
)

func init() {
}

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ThreatRecord holds the schema definition for the ThreatRecord entity.
// One row per (event_id, observed_at) pair; redeliveries of the same event
// merge into the existing row instead of creating duplicates.
type ThreatRecord struct {
	ent.Schema
}

// Fields of the ThreatRecord.
func (ThreatRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),

		// Identity of the normalized event.
		field.String("event_id").
			Immutable().
			Comment("Upstream event identifier (not unique on its own; sources recycle IDs across time)"),
		field.Time("observed_at").
			Immutable().
			Comment("When the source observed the activity"),
		field.Time("received_at").
			Comment("When ingest accepted the raw finding"),
		field.String("source").
			Comment("Canonical source tag (e.g. 'aws.guardduty')"),
		field.String("account_id"),
		field.String("region"),
		field.String("kind").
			Comment("Source-native finding type"),
		field.Enum("severity").
			NamedValues(
				"Low", "LOW",
				"Medium", "MEDIUM",
				"High", "HIGH",
				"Critical", "CRITICAL",
			),
		field.Float("raw_severity").
			Optional().
			Nillable().
			Comment("Source-native severity before band mapping"),
		field.String("resource_type").
			Optional(),
		field.String("resource_id").
			Optional(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Comment("Masked source detail payload"),

		// ML scoring outcome (zeroed with ml_error set when the scorer degraded).
		field.Float("ml_threat_score").
			Optional().
			Nillable(),
		field.Float("ml_confidence").
			Optional().
			Nillable(),
		field.String("ml_model_version").
			Optional().
			Nillable(),
		field.String("ml_feature_version").
			Optional().
			Nillable(),
		field.String("ml_error").
			Optional().
			Nillable(),

		// Triage outcome.
		field.Float("triage_priority").
			Optional().
			Nillable().
			Comment("0-100 composite priority"),
		field.Enum("triage_band").
			NamedValues(
				"Low", "LOW",
				"Medium", "MEDIUM",
				"High", "HIGH",
				"Critical", "CRITICAL",
			).
			Optional(),
		field.JSON("recommended_actions", []string{}).
			Optional(),
		field.Bool("requires_human_review").
			Default(false),

		// Deep analysis outcome (only present when priority crossed the warn gate).
		field.Float("analysis_risk_score").
			Optional().
			Nillable(),
		field.String("analysis_attack_vector").
			Optional().
			Nillable(),
		field.Float("analysis_confidence").
			Optional().
			Nillable(),
		field.Text("analysis_business_impact").
			Optional().
			Nillable(),
		field.Text("analysis_summary").
			Optional().
			Nillable(),
		field.String("analysis_error").
			Optional().
			Nillable().
			Comment("'timeout' or 'parse_failed' when the analyst degraded"),

		// Remediation outcome.
		field.String("remediation_action").
			Optional().
			Nillable(),
		field.Enum("remediation_status").
			NamedValues(
				"Succeeded", "SUCCEEDED",
				"Failed", "FAILED",
				"Skipped", "SKIPPED",
			).
			Optional(),
		field.Int("remediation_attempts").
			Optional(),
		field.String("remediation_error").
			Optional().
			Nillable(),

		// Lifecycle.
		field.Enum("status").
			NamedValues(
				"StoredOnly", "STORED_ONLY",
				"Notified", "NOTIFIED",
				"Remediated", "REMEDIATED",
				"DeadLettered", "DEAD_LETTERED",
			).
			Default("STORED_ONLY"),
		field.Time("notified_at").
			Optional().
			Nillable(),
		field.Time("expires_at").
			Comment("Hard-delete horizon enforced by the retention sweeper"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ThreatRecord.
func (ThreatRecord) Indexes() []ent.Index {
	return []ent.Index{
		// Idempotency key: redeliveries upsert into this row.
		index.Fields("event_id", "observed_at").
			Unique(),

		// Single field indexes for dashboard filters.
		index.Fields("status"),
		index.Fields("severity"),
		index.Fields("source"),
		index.Fields("account_id"),

		// Composite indexes for list queries and the retention sweep.
		index.Fields("severity", "created_at"),
		index.Fields("status", "created_at"),
		index.Fields("expires_at"),

		// Partial index for the human-review queue.
		index.Fields("requires_human_review").
			Annotations(entsql.IndexWhere("requires_human_review")),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: the GIN index over details is created via migration hooks
// in pkg/database/migrations.go
func (ThreatRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}

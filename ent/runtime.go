// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/argus-soc/argus/ent/schema"
	"github.com/argus-soc/argus/ent/threatrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	threatrecordFields := schema.ThreatRecord{}.Fields()
	_ = threatrecordFields
	// threatrecordDescRequiresHumanReview is the schema descriptor for requires_human_review field.
	threatrecordDescRequiresHumanReview := threatrecordFields[21].Descriptor()
	// threatrecord.DefaultRequiresHumanReview holds the default value on creation for the requires_human_review field.
	threatrecord.DefaultRequiresHumanReview = threatrecordDescRequiresHumanReview.Default.(bool)
	// threatrecordDescCreatedAt is the schema descriptor for created_at field.
	threatrecordDescCreatedAt := threatrecordFields[35].Descriptor()
	// threatrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	threatrecord.DefaultCreatedAt = threatrecordDescCreatedAt.Default.(func() time.Time)
	// threatrecordDescUpdatedAt is the schema descriptor for updated_at field.
	threatrecordDescUpdatedAt := threatrecordFields[36].Descriptor()
	// threatrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	threatrecord.DefaultUpdatedAt = threatrecordDescUpdatedAt.Default.(func() time.Time)
	// threatrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	threatrecord.UpdateDefaultUpdatedAt = threatrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ThreatRecord is the predicate function for threatrecord builders.
type ThreatRecord func(*sql.Selector)

package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL GIN indexes that Ent's schema DSL cannot express.
// These back the dashboard's detail-payload filters and free-text search over analyst
// summaries.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Containment queries over the masked detail payload (details @> '{...}')
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_threat_records_details_gin
		ON threat_records USING gin(details jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create details GIN index: %w", err)
	}

	// Full-text search over analyst summaries
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_threat_records_analysis_summary_gin
		ON threat_records USING gin(to_tsvector('english', COALESCE(analysis_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create analysis_summary GIN index: %w", err)
	}

	return nil
}

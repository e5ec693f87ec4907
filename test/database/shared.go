package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/argus-soc/argus/ent"
	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/test/util"
	"github.com/stretchr/testify/require"
)

// SharedTestDB is one migrated schema that several app instances attach to
// through independent pools. Restart and multi-replica tests use it: a
// second instance must see rows the first one wrote, and redelivered
// events must upsert into them.
type SharedTestDB struct {
	baseConnStr   string
	schemaConnStr string
	schema        string
}

// NewSharedTestDB provisions the schema, migrates it once, and schedules
// the drop for after every attached client has been cleaned up (t.Cleanup
// runs LIFO, so register app cleanups after this call).
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()

	s := &SharedTestDB{
		baseConnStr: util.GetBaseConnectionString(t),
		schema:      util.GenerateSchemaName(t),
	}
	s.schemaConnStr = util.AddSearchPathToConnString(s.baseConnStr, s.schema)

	db, err := stdsql.Open("pgx", s.baseConnStr)
	require.NoError(t, err, "connecting to create shared schema")
	_, err = db.ExecContext(context.Background(), fmt.Sprintf("CREATE SCHEMA %s", s.schema))
	_ = db.Close()
	require.NoError(t, err, "creating shared schema %s", s.schema)
	t.Logf("SharedTestDB: created schema %s", s.schema)

	t.Cleanup(func() {
		s.dropSchema(t)
	})

	s.migrate(t)
	return s
}

// NewClient attaches a fresh pool to the shared schema. Closing one
// client's pool never affects another's, which is what lets a test kill
// replica A's database access while replica B keeps writing.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()

	db, entClient := s.open(t)
	t.Cleanup(func() {
		_ = entClient.Close()
		_ = db.Close()
	})
	return database.NewClientFromEnt(entClient, db)
}

// migrate brings the schema up with ent's diff plus the GIN index DDL,
// using a throwaway pool.
func (s *SharedTestDB) migrate(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	db, entClient := s.open(t)
	defer func() {
		_ = entClient.Close()
		_ = db.Close()
	}()

	require.NoError(t, entClient.Schema.Create(ctx), "migrating shared schema")

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(ctx, drv), "creating GIN indexes")
}

func (s *SharedTestDB) open(t *testing.T) (*stdsql.DB, *ent.Client) {
	t.Helper()

	db, err := stdsql.Open("pgx", s.schemaConnStr)
	require.NoError(t, err, "opening pool on shared schema")
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return db, ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
}

// dropSchema tears the shared schema down on a base connection. Failures
// are logged, not fatal: the test has already passed or failed on its own
// merits by the time cleanup runs.
func (s *SharedTestDB) dropSchema(t *testing.T) {
	db, err := stdsql.Open("pgx", s.baseConnStr)
	if err != nil {
		t.Logf("SharedTestDB: connecting to drop schema %s: %v", s.schema, err)
		return
	}
	defer func() { _ = db.Close() }()

	if _, err := db.ExecContext(context.Background(),
		fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", s.schema)); err != nil {
		t.Logf("SharedTestDB: dropping schema %s: %v", s.schema, err)
	}
}

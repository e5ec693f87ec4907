// Package database wires the test-schema provisioning from test/util into
// ready-to-use *database.Client values for store and API tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/argus-soc/argus/pkg/database"
	"github.com/argus-soc/argus/test/util"
	"github.com/stretchr/testify/require"
)

// NewTestClient returns a client on a fresh, fully migrated schema,
// including the GIN indexes the production boot path creates. Teardown
// rides on the cleanups SetupTestDatabase registered.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(context.Background(), drv),
		"creating GIN indexes on test schema")

	return database.NewClientFromEnt(entClient, db)
}

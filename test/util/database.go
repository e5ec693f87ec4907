// Package util provisions disposable Postgres schemas for database-backed
// tests. One Postgres instance is shared per test binary; every test gets
// its own schema so parallel tests never see each other's rows.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/argus-soc/argus/ent"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	pgOnce    sync.Once
	pgConnStr string
	pgErr     error
)

// SetupTestDatabase gives the test a migrated, isolated schema and returns
// the ent client plus the underlying pool. The schema is created fresh,
// migrated with ent's schema diff, and dropped when the test finishes.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()
	ctx := context.Background()

	base := GetBaseConnectionString(t)
	schema := GenerateSchemaName(t)
	createSchema(t, base, schema)

	// Bake the schema into the pool's search_path so every pooled
	// connection lands in it, not just the one that ran SET.
	db, err := stdsql.Open("pgx", AddSearchPathToConnString(base, schema))
	require.NoError(t, err, "opening schema-scoped pool")
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.Postgres, db)))
	require.NoError(t, entClient.Schema.Create(ctx), "migrating schema %s", schema)

	t.Cleanup(func() {
		dropSchema(t, db, schema)
		_ = entClient.Close()
		_ = db.Close()
	})

	return entClient, db
}

// GetBaseConnectionString returns the shared Postgres connection string
// without any search_path. Harnesses that manage their own schemas and
// pools build on this.
func GetBaseConnectionString(t *testing.T) string {
	t.Helper()

	// CI provides a service container; local runs boot one on demand.
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		return url
	}

	pgOnce.Do(func() { pgConnStr, pgErr = startPostgres(t) })
	require.NoError(t, pgErr, "shared Postgres container")
	return pgConnStr
}

func startPostgres(t *testing.T) (string, error) {
	ctx := context.Background()
	t.Log("Starting shared Postgres container")

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("argus_test"),
		postgres.WithUsername("argus"),
		postgres.WithPassword("argus"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("starting postgres container: %w", err)
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("reading container connection string: %w", err)
	}
	return connStr, nil
}

func createSchema(t *testing.T, connStr, schema string) {
	t.Helper()

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err, "connecting to create schema")
	defer db.Close()

	_, err = db.ExecContext(context.Background(), fmt.Sprintf("CREATE SCHEMA %s", schema))
	require.NoError(t, err, "creating schema %s", schema)
	t.Logf("Created test schema %s", schema)
}

func dropSchema(t *testing.T, db *stdsql.DB, schema string) {
	_, err := db.ExecContext(context.Background(),
		fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema))
	if err != nil {
		t.Logf("dropping schema %s: %v", schema, err)
	}
}

// GenerateSchemaName derives a Postgres-safe schema name from the test name
// plus a random suffix, bounded well under the 63-byte identifier limit.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("generating schema suffix: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path parameter so every
// connection opened from the string lands in the given schema.
func AddSearchPathToConnString(connStr, schema string) string {
	sep := "?"
	if strings.Contains(connStr, "?") {
		sep = "&"
	}
	return connStr + sep + "search_path=" + schema
}

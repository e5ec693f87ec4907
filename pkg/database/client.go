// Package database owns the Postgres connection: pool setup over pgx,
// startup migrations from the embedded SQL files, and the ent client the
// store and dashboard queries run on.
package database

import (
	"context"
	stdsql "database/sql"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/argus-soc/argus/ent"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
)

// Migrations ship inside the binary so a deployment never depends on SQL
// files being present next to it. Schema changes start in ent/schema, get
// rendered to versioned SQL under migrations/, and are applied here at boot.
//
//go:embed migrations
var migrationsFS embed.FS

// Config holds connection and pool settings.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Client is the ent client plus a handle on the raw pool for the pieces
// ent does not cover: health pings and index DDL.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// DB exposes the underlying pool.
func (c *Client) DB() *stdsql.DB {
	return c.db
}

// NewClientFromEnt wraps an already-open ent client. Test harnesses that
// provision their own schemas use this instead of NewClient.
func NewClientFromEnt(entClient *ent.Client, db *stdsql.DB) *Client {
	return &Client{Client: entClient, db: db}
}

// NewClient opens the pool, verifies connectivity and brings the schema up
// to date before handing the client out. A client that fails any of these
// steps is never returned half-initialized.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
	)

	db, err := stdsql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := applyMigrations(ctx, db, cfg.Database, drv); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	return &Client{Client: entClient, db: db}, nil
}

// applyMigrations runs every pending embedded migration, then the GIN index
// DDL that ent's schema language cannot express.
func applyMigrations(ctx context.Context, db *stdsql.DB, dbName string, drv *entsql.Driver) error {
	if err := requireEmbeddedMigrations(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("creating postgres migrate driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("reading embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dbName, driver)
	if err != nil {
		return fmt.Errorf("creating migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("running migrations: %w", err)
	}

	// Close only the source. m.Close() would also close the database driver,
	// and with it the shared *sql.DB the ent client is running on.
	if err := source.Close(); err != nil {
		return fmt.Errorf("closing migration source: %w", err)
	}

	return CreateGINIndexes(ctx, drv)
}

// requireEmbeddedMigrations guards against a binary built without the
// migrations directory, which would otherwise boot against a bare schema.
func requireEmbeddedMigrations() error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("reading embedded migrations directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			return nil
		}
	}
	return fmt.Errorf("no embedded migration files found; binary may be built incorrectly")
}

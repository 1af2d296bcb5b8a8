package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"runtime"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/nais/tenant-rollout/internal/database/gensql"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/0*.sql
var embedMigrations embed.FS

// NewDB creates a new database connection pool and runs migrations
func NewDB(ctx context.Context, dsn string, log logrus.FieldLogger) (*pgxpool.Pool, error) {
	if err := Migrate(dsn, log); err != nil {
		return nil, err
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pgx config: %w", err)
	}

	if runtime.NumCPU() < 5 {
		config.MaxConns = 5
	}

	conn, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return conn, nil
}

// Migrate runs database migrations
func Migrate(dsn string, log logrus.FieldLogger) error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.WithError(err).Error("closing database migration connection")
		}
	}()

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// Open connects to the audit store at dsn. The returned function closes the connection pool.
func Open(ctx context.Context, dsn string, log logrus.FieldLogger) (*Repo, func(), error) {
	pool, err := NewDB(ctx, dsn, log)
	if err != nil {
		return nil, nil, err
	}
	return New(gensql.New(pool), log), pool.Close, nil
}

// DSNSource reads a database connection string from a named secret
type DSNSource interface {
	DSN(ctx context.Context, name string) (string, error)
}

// OpenConfigured opens the audit store at dsn, or at the connection string stored in the named
// secret when a secret is given. A nil repo is returned when neither is given.
func OpenConfigured(ctx context.Context, dsn, secret string, source DSNSource, log logrus.FieldLogger) (*Repo, func(), error) {
	if secret != "" {
		var err error
		dsn, err = source.DSN(ctx, secret)
		if err != nil {
			return nil, nil, fmt.Errorf("reading audit store connection: %w", err)
		}
	}

	if dsn == "" {
		log.Debug("audit store not configured")
		return nil, func() {}, nil
	}

	return Open(ctx, dsn, log)
}

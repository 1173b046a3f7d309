// Package migrations contains the embedded PostgreSQL schema and seeds.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var FS embed.FS

const (
	queryCreateVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
		version     VARCHAR(255) PRIMARY KEY,
		applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	queryVersionApplied = `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`
	queryMarkApplied    = `INSERT INTO schema_migrations (version) VALUES ($1)`
	queryAdvisoryLock   = `SELECT pg_advisory_xact_lock(7301202601)`
)

// Apply runs every pending *.sql file in lexical order. Each file runs in its
// own transaction together with its schema_migrations row.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, queryCreateVersionTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	names, err := fs.Glob(FS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		if err := applyOne(ctx, pool, name); err != nil {
			return fmt.Errorf("apply %s: %w", name, err)
		}
	}

	return nil
}

func applyOne(ctx context.Context, pool *pgxpool.Pool, name string) error {
	body, err := FS.ReadFile(name)
	if err != nil {
		return err
	}

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, queryAdvisoryLock); err != nil {
			return err
		}

		var applied bool
		if err := tx.QueryRow(ctx, queryVersionApplied, name).Scan(&applied); err != nil {
			return err
		}
		if applied {
			return nil
		}

		if _, err := tx.Exec(ctx, string(body)); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, queryMarkApplied, name)
		return err
	})
}

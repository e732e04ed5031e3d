package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"careergps/internal/logger"
)

//go:embed sql/*.sql
var embedded embed.FS

// pg_advisory_lock key shared by every instance migrating the same database
const lockKey int64 = 746295114

var (
	ErrNilDB            = errors.New("nil db")
	ErrChecksumMismatch = errors.New("migration checksum mismatch")
)

// Runner applies versioned SQL files named V<n>__<name>.sql. Dir takes
// precedence over Source; with neither set the embedded migrations are used.
type Runner struct {
	Dir    string
	Source fs.FS
	Log    logger.Logger
}

func (r Runner) Run(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}
	log := r.Log
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	src, err := r.source()
	if err != nil {
		return err
	}
	migs, err := Load(src)
	if err != nil || len(migs) == 0 {
		return err
	}

	l := ledger{db: db}
	if err := l.init(ctx); err != nil {
		return fmt.Errorf("schema_migrations: %w", err)
	}
	if err := l.lock(ctx); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	defer l.unlock()

	seen, err := l.applied(ctx)
	if err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}

	for _, m := range migs {
		sum, done := seen[m.Version]
		if done {
			if sum != m.Checksum {
				return fmt.Errorf("%w: version=%d name=%s", ErrChecksumMismatch, m.Version, m.Name)
			}
			continue
		}
		if err := l.apply(ctx, m); err != nil {
			return err
		}
		log.Info("migration applied", map[string]interface{}{"version": m.Version, "name": m.Name})
	}
	return nil
}

func (r Runner) source() (fs.FS, error) {
	switch {
	case strings.TrimSpace(r.Dir) != "":
		return os.DirFS(r.Dir), nil
	case r.Source != nil:
		return r.Source, nil
	default:
		return fs.Sub(embedded, "sql")
	}
}

// ledger is the schema_migrations bookkeeping table.
type ledger struct {
	db *sql.DB
}

func (l ledger) init(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version BIGINT PRIMARY KEY,
	name TEXT NOT NULL,
	checksum TEXT NOT NULL,
	applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	return err
}

func (l ledger) lock(ctx context.Context) error {
	_, err := l.db.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, lockKey)
	return err
}

// unlock runs even after ctx is cancelled.
func (l ledger) unlock() {
	_, _ = l.db.ExecContext(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
}

// applied maps version to checksum.
func (l ledger) applied(ctx context.Context) (map[int64]string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT version, checksum FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int64]string)
	for rows.Next() {
		var (
			v   int64
			sum string
		)
		if err := rows.Scan(&v, &sum); err != nil {
			return nil, err
		}
		out[v] = sum
	}
	return out, rows.Err()
}

// apply runs m and records it in one transaction.
func (l ledger) apply(ctx context.Context, m Migration) (err error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("apply migration failed: version=%d file=%s: %w", m.Version, m.Filename, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, name, checksum, applied_at) VALUES ($1, $2, $3, $4)`,
		m.Version, m.Name, m.Checksum, nowUTC(),
	); err != nil {
		return fmt.Errorf("record migration %d: %w", m.Version, err)
	}
	return tx.Commit()
}

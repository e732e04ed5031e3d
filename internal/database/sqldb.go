package database

import (
	"context"
	"database/sql"
)

type sqlDB struct {
	db *sql.DB
}

// FromSQL adapts a database/sql handle to DB.
func FromSQL(db *sql.DB) DB {
	return &sqlDB{db: db}
}

func (s *sqlDB) Ping(ctx context.Context) error {
	if s.db == nil {
		return ErrNilDB
	}
	return s.db.PingContext(ctx)
}

func (s *sqlDB) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *sqlDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if s.db == nil {
		return 0, ErrNilDB
	}
	return execResult(s.db.ExecContext(ctx, query, args...))
}

func (s *sqlDB) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	if s.db == nil {
		return nil, ErrNilDB
	}
	r, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (s *sqlDB) QueryRow(ctx context.Context, query string, args ...any) Row {
	if s.db == nil {
		return errRow{err: ErrNilDB}
	}
	return s.db.QueryRowContext(ctx, query, args...)
}

func (s *sqlDB) Begin(ctx context.Context) (Tx, error) {
	if s.db == nil {
		return nil, ErrNilDB
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return sqlTx{tx: tx}, nil
}

func (s *sqlDB) SQLDB() *sql.DB {
	return s.db
}

type sqlTx struct {
	tx *sql.Tx
}

func (t sqlTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return execResult(t.tx.ExecContext(ctx, query, args...))
}

func (t sqlTx) Query(ctx context.Context, query string, args ...any) (Rows, error) {
	r, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return sqlRows{rows: r}, nil
}

func (t sqlTx) QueryRow(ctx context.Context, query string, args ...any) Row {
	return t.tx.QueryRowContext(ctx, query, args...)
}

func (t sqlTx) Commit(context.Context) error {
	return t.tx.Commit()
}

func (t sqlTx) Rollback(context.Context) error {
	return t.tx.Rollback()
}

type sqlRows struct {
	rows *sql.Rows
}

func (r sqlRows) Close()                 { _ = r.rows.Close() }
func (r sqlRows) Next() bool             { return r.rows.Next() }
func (r sqlRows) Scan(dest ...any) error { return r.rows.Scan(dest...) }
func (r sqlRows) Err() error             { return r.rows.Err() }

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error { return r.err }

func execResult(res sql.Result, err error) (int64, error) {
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return n, nil
}

package sqlist

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// openSQLite opens the database file and pins the pool to a single
// connection so transactions and session pragmas own the whole handle.
func openSQLite(ctx context.Context, path, journalMode string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// One logical owner, one connection. A second pooled connection would
	// see :memory: databases as empty and break transaction scoping.
	db.SetMaxOpenConns(1)

	err = db.PingContext(ctx)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	_, err = db.ExecContext(ctx, "PRAGMA journal_mode = "+journalMode)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("apply journal mode %q: %w", journalMode, err)
	}

	return db, nil
}

// createSchema creates the two-column row shape and its key index.
// The table name is identifier-validated before this is called.
func createSchema(ctx context.Context, db *sql.DB, table string) error {
	statements := []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (key BLOB, value BLOB NOT NULL)", table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s_key_idx ON %s (key)", table, table),
	}

	for _, stmt := range statements {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}

	return nil
}

// dropTable removes the table so Open can start a fresh sequence.
func dropTable(ctx context.Context, db *sql.DB, table string) error {
	_, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table)
	if err != nil {
		return fmt.Errorf("drop table: %w", err)
	}

	return nil
}

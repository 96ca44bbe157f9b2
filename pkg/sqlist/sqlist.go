package sqlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/calvinalkan/sqlist/internal/orderkey"
	"github.com/calvinalkan/sqlist/pkg/sqlist/codec"
)

// List is a persistent sequence of values stored in a SQLite table.
//
// A List owns its database handle exclusively. Methods are synchronous
// blocking calls; every mutation commits before returning. Concurrent
// callers on the same List are not supported.
type List struct {
	db    *sql.DB
	table string
	key   KeyFunc
	codec codec.Codec
}

// dbtx is the subset of *sql.DB and *sql.Tx the sequence engine uses, so
// rank lookups and counts run identically inside and outside transactions.
type dbtx interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Open binds a sequence to the storage location described by cfg.
//
// With cfg.Wipe, any existing table is dropped first; otherwise existing
// rows are reused as-is and cfg.Key applies only to future writes.
func Open(ctx context.Context, cfg Config) (*List, error) {
	if ctx == nil {
		return nil, errors.New("open: context is nil")
	}

	cfg = cfg.withDefaults()

	err := cfg.validate()
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	db, err := openSQLite(ctx, cfg.Path, cfg.JournalMode)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}

	if cfg.Wipe {
		err = dropTable(ctx, db, cfg.Table)
		if err != nil {
			_ = db.Close()

			return nil, fmt.Errorf("open: %w", err)
		}
	}

	err = createSchema(ctx, db, cfg.Table)
	if err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("open: %w", err)
	}

	return &List{
		db:    db,
		table: cfg.Table,
		key:   cfg.Key,
		codec: cfg.Codec,
	}, nil
}

// Close releases the database handle. The sequence's rows stay on disk.
func (l *List) Close() error {
	if l == nil || l.db == nil {
		return nil
	}

	err := l.db.Close()
	if err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}

	return nil
}

// Len returns the number of elements.
func (l *List) Len(ctx context.Context) (int, error) {
	if ctx == nil {
		return 0, errors.New("len: context is nil")
	}

	if l == nil || l.db == nil {
		return 0, errors.New("len: list is not open")
	}

	length, err := l.length(ctx, l.db)
	if err != nil {
		return 0, fmt.Errorf("len: %w", err)
	}

	return length, nil
}

// Empty reports whether the sequence has no elements. Cheaper than Len on
// large sequences: it probes for a single row instead of counting.
func (l *List) Empty(ctx context.Context) (bool, error) {
	if ctx == nil {
		return false, errors.New("empty: context is nil")
	}

	if l == nil || l.db == nil {
		return false, errors.New("empty: list is not open")
	}

	row := l.db.QueryRowContext(ctx, "SELECT rowid FROM "+l.table+" LIMIT 1")

	var rowid int64

	err := row.Scan(&rowid)
	if errors.Is(err, sql.ErrNoRows) {
		return true, nil
	}

	if err != nil {
		return false, fmt.Errorf("empty: %w", err)
	}

	return false, nil
}

// Clear removes every element.
func (l *List) Clear(ctx context.Context) error {
	if ctx == nil {
		return errors.New("clear: context is nil")
	}

	if l == nil || l.db == nil {
		return errors.New("clear: list is not open")
	}

	_, err := l.db.ExecContext(ctx, "DELETE FROM "+l.table)
	if err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	return nil
}

// length counts rows through q so callers inside a transaction observe the
// transaction's snapshot.
func (l *List) length(ctx context.Context, q dbtx) (int, error) {
	row := q.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+l.table)

	var count int

	err := row.Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}

	return count, nil
}

// rankRowID resolves the zero-based rank in ascending-key order to the
// physical row identity. Returns [ErrIndexOutOfRange] when no row exists at
// that rank.
func (l *List) rankRowID(ctx context.Context, q dbtx, offset int) (int64, error) {
	row := q.QueryRowContext(ctx,
		"SELECT rowid FROM "+l.table+" ORDER BY key ASC LIMIT 1 OFFSET ?", offset)

	var rowid int64

	err := row.Scan(&rowid)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: rank %d has no row", ErrIndexOutOfRange, offset)
	}

	if err != nil {
		return 0, fmt.Errorf("rank lookup: %w", err)
	}

	return rowid, nil
}

// encodeKey runs the key function and encodes its output into the sortable
// BLOB stored in the key column. Returns nil (stored as NULL) when the
// sequence has no key function or the key function returns nil.
func (l *List) encodeKey(value any) (any, error) {
	if l.key == nil {
		return nil, nil
	}

	key, err := l.key(value)
	if err != nil {
		return nil, fmt.Errorf("key function: %w", err)
	}

	if key == nil {
		return nil, nil
	}

	encoded, err := orderkey.Encode(key)
	if err != nil {
		return nil, fmt.Errorf("encode key: %w", err)
	}

	return encoded, nil
}

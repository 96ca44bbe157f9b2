package sqlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Set overwrites the element at the given logical index in place. The row
// keeps its physical identity: key and value are updated on the existing
// row, never via delete+insert. The new order key is computed from the
// configured key function, so a Set can move the element's logical position.
//
// Runs as a single transaction: the rank lookup and the update observe the
// same snapshot.
func (l *List) Set(ctx context.Context, index int, value any) error {
	if ctx == nil {
		return errors.New("set: context is nil")
	}

	if l == nil || l.db == nil {
		return errors.New("set: list is not open")
	}

	key, err := l.encodeKey(value)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	raw, err := l.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("set: encode value: %w", err)
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("set: begin: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	rowid, err := l.resolveRank(ctx, tx, index)
	if err != nil {
		return fmt.Errorf("set: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE "+l.table+" SET key = ?, value = ? WHERE rowid = ?", key, raw, rowid)
	if err != nil {
		return fmt.Errorf("set: update: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("set: commit: %w", err)
	}

	return nil
}

// Delete removes the element at the given logical index and commits.
func (l *List) Delete(ctx context.Context, index int) error {
	if ctx == nil {
		return errors.New("delete: context is nil")
	}

	if l == nil || l.db == nil {
		return errors.New("delete: list is not open")
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("delete: begin: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	rowid, err := l.resolveRank(ctx, tx, index)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM "+l.table+" WHERE rowid = ?", rowid)
	if err != nil {
		return fmt.Errorf("delete: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("delete: commit: %w", err)
	}

	return nil
}

// Pop removes and returns the element at the given logical index. Pass -1 to
// pop the last element in logical order. Lookup, decode, and delete run as
// one all-or-nothing transaction; a failure on any step leaves the sequence
// unchanged.
func (l *List) Pop(ctx context.Context, index int) (any, error) {
	if ctx == nil {
		return nil, errors.New("pop: context is nil")
	}

	if l == nil || l.db == nil {
		return nil, errors.New("pop: list is not open")
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("pop: begin: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	length, err := l.length(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("pop: %w", err)
	}

	offset, err := normalizeIndex(index, length)
	if err != nil {
		return nil, fmt.Errorf("pop: %w", err)
	}

	row := tx.QueryRowContext(ctx,
		"SELECT rowid, value FROM "+l.table+" ORDER BY key ASC LIMIT 1 OFFSET ?", offset)

	var (
		rowid int64
		raw   []byte
	)

	err = row.Scan(&rowid, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pop: %w: index %d", ErrIndexOutOfRange, index)
	}

	if err != nil {
		return nil, fmt.Errorf("pop: %w", err)
	}

	value, err := l.codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("pop: decode value: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM "+l.table+" WHERE rowid = ?", rowid)
	if err != nil {
		return nil, fmt.Errorf("pop: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return nil, fmt.Errorf("pop: commit: %w", err)
	}

	return value, nil
}

// resolveRank normalizes a logical index against the transaction's snapshot
// and resolves it to a physical row identity.
func (l *List) resolveRank(ctx context.Context, tx *sql.Tx, index int) (int64, error) {
	length, err := l.length(ctx, tx)
	if err != nil {
		return 0, err
	}

	offset, err := normalizeIndex(index, length)
	if err != nil {
		return 0, err
	}

	return l.rankRowID(ctx, tx, offset)
}

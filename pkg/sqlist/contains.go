package sqlist

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Contains reports whether any element equals value. Equality is on the
// encoded form: two values are equal exactly when their encodings are
// byte-identical.
func (l *List) Contains(ctx context.Context, value any) (bool, error) {
	if ctx == nil {
		return false, errors.New("contains: context is nil")
	}

	if l == nil || l.db == nil {
		return false, errors.New("contains: list is not open")
	}

	raw, err := l.codec.Encode(value)
	if err != nil {
		return false, fmt.Errorf("contains: encode value: %w", err)
	}

	row := l.db.QueryRowContext(ctx,
		"SELECT rowid FROM "+l.table+" WHERE value = ? LIMIT 1", raw)

	var rowid int64

	err = row.Scan(&rowid)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("contains: %w", err)
	}

	return true, nil
}

// Equal reports whether the sequence holds the same elements as other, in
// the same logical order. Mismatched lengths are unequal; equal lengths are
// compared pairwise on the encoded form (like [List.Contains]),
// short-circuiting at the first divergence.
func (l *List) Equal(ctx context.Context, other []any) (bool, error) {
	if ctx == nil {
		return false, errors.New("equal: context is nil")
	}

	if l == nil || l.db == nil {
		return false, errors.New("equal: list is not open")
	}

	length, err := l.length(ctx, l.db)
	if err != nil {
		return false, fmt.Errorf("equal: %w", err)
	}

	if length != len(other) {
		return false, nil
	}

	rows, err := l.db.QueryContext(ctx,
		"SELECT value FROM "+l.table+" ORDER BY key ASC")
	if err != nil {
		return false, fmt.Errorf("equal: %w", err)
	}

	defer func() { _ = rows.Close() }()

	i := 0

	for rows.Next() {
		var raw []byte

		scanErr := rows.Scan(&raw)
		if scanErr != nil {
			return false, fmt.Errorf("equal: scan: %w", scanErr)
		}

		if i >= len(other) {
			return false, nil
		}

		want, encErr := l.codec.Encode(other[i])
		if encErr != nil {
			return false, fmt.Errorf("equal: encode value: %w", encErr)
		}

		if !bytes.Equal(raw, want) {
			return false, nil
		}

		i++
	}

	err = rows.Err()
	if err != nil {
		return false, fmt.Errorf("equal: rows: %w", err)
	}

	return i == len(other), nil
}

package sqlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Get returns the element at the given logical index. Negative indices count
// from the end, Python-style: the valid range is [-len, len-1]. Indices
// outside that range wrap [ErrIndexOutOfRange].
func (l *List) Get(ctx context.Context, index int) (any, error) {
	if ctx == nil {
		return nil, errors.New("get: context is nil")
	}

	if l == nil || l.db == nil {
		return nil, errors.New("get: list is not open")
	}

	length, err := l.length(ctx, l.db)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}

	offset, err := normalizeIndex(index, length)
	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}

	row := l.db.QueryRowContext(ctx,
		"SELECT value FROM "+l.table+" ORDER BY key ASC LIMIT 1 OFFSET ?", offset)

	var raw []byte

	err = row.Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get: %w: index %d", ErrIndexOutOfRange, index)
	}

	if err != nil {
		return nil, fmt.Errorf("get: %w", err)
	}

	value, err := l.codec.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("get: decode value: %w", err)
	}

	return value, nil
}

// Slice returns the contiguous block of elements selected by
// [start, stop) in logical order. Bounds follow standard slice semantics:
// negative bounds count from the end and both clamp to the sequence length.
// Pass [End] as stop to slice through the last element.
//
// The step argument is accepted for slice-notation parity but is not
// applied: any non-zero step returns the same contiguous block as step 1.
// Only step 0 is rejected.
func (l *List) Slice(ctx context.Context, start, stop, step int) ([]any, error) {
	if ctx == nil {
		return nil, errors.New("slice: context is nil")
	}

	if l == nil || l.db == nil {
		return nil, errors.New("slice: list is not open")
	}

	if step == 0 {
		return nil, errors.New("slice: step must be non-zero")
	}

	length, err := l.length(ctx, l.db)
	if err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}

	offset, limit := normalizeSlice(start, stop, length)

	values := make([]any, 0, limit)
	if limit == 0 {
		return values, nil
	}

	rows, err := l.db.QueryContext(ctx,
		"SELECT value FROM "+l.table+" ORDER BY key ASC LIMIT ? OFFSET ?", limit, offset)
	if err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}

	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var raw []byte

		scanErr := rows.Scan(&raw)
		if scanErr != nil {
			return nil, fmt.Errorf("slice: scan: %w", scanErr)
		}

		value, decErr := l.codec.Decode(raw)
		if decErr != nil {
			return nil, fmt.Errorf("slice: decode value: %w", decErr)
		}

		values = append(values, value)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("slice: rows: %w", err)
	}

	return values, nil
}

// Values returns every element in logical order. Equivalent to a full
// slice; intended for small sequences and tests.
func (l *List) Values(ctx context.Context) ([]any, error) {
	return l.Slice(ctx, 0, End, 1)
}

package sqlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/calvinalkan/sqlist/pkg/sqlist/codec"
)

// Iterator is a lazy pull over a live cursor in logical order. It is finite
// and non-restartable; each [List.Iter] call opens a fresh scan reflecting
// the store's state at that time, not a snapshot taken earlier.
//
// Callers must call [Iterator.Close] when done and should check
// [Iterator.Err] after Next returns false. The list holds a single database
// connection, so close an open iterator before issuing other operations on
// the same list.
type Iterator struct {
	rows  rowsCursor
	codec codec.Codec
	value any
	err   error
}

// rowsCursor is the *sql.Rows surface the iterator pulls from.
type rowsCursor interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

// Iter opens a scan over all elements in ascending key order.
func (l *List) Iter(ctx context.Context) (*Iterator, error) {
	if ctx == nil {
		return nil, errors.New("iter: context is nil")
	}

	if l == nil || l.db == nil {
		return nil, errors.New("iter: list is not open")
	}

	rows, err := l.db.QueryContext(ctx,
		"SELECT value FROM "+l.table+" ORDER BY key ASC")
	if err != nil {
		return nil, fmt.Errorf("iter: %w", err)
	}

	return &Iterator{rows: rows, codec: l.codec}, nil
}

// Next advances to the next element. It returns false when the scan is
// exhausted or a decode/scan error occurred; check Err to tell them apart.
func (it *Iterator) Next() bool {
	if it == nil || it.rows == nil || it.err != nil {
		return false
	}

	if !it.rows.Next() {
		it.err = it.rows.Err()

		return false
	}

	var raw []byte

	err := it.rows.Scan(&raw)
	if err != nil {
		it.err = fmt.Errorf("iter: scan: %w", err)
		_ = it.rows.Close()

		return false
	}

	value, err := it.codec.Decode(raw)
	if err != nil {
		it.err = fmt.Errorf("iter: decode value: %w", err)
		_ = it.rows.Close()

		return false
	}

	it.value = value

	return true
}

// Value returns the element at the current position.
func (it *Iterator) Value() any {
	return it.value
}

// Err returns the first error encountered while iterating, if any.
func (it *Iterator) Err() error {
	if it == nil {
		return nil
	}

	return it.err
}

// Close releases the underlying cursor. Safe to call more than once.
func (it *Iterator) Close() error {
	if it == nil || it.rows == nil {
		return nil
	}

	return it.rows.Close()
}

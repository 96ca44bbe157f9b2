package sqlist

import (
	"context"
	"errors"
	"fmt"
)

// Append adds value to the sequence and commits. The order key is computed
// from the configured key function, or left NULL in unordered mode. There is
// no uniqueness constraint on keys or values.
func (l *List) Append(ctx context.Context, value any) error {
	if ctx == nil {
		return errors.New("append: context is nil")
	}

	if l == nil || l.db == nil {
		return errors.New("append: list is not open")
	}

	key, err := l.encodeKey(value)
	if err != nil {
		return fmt.Errorf("append: %w", err)
	}

	raw, err := l.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("append: encode value: %w", err)
	}

	_, err = l.db.ExecContext(ctx,
		"INSERT INTO "+l.table+" (key, value) VALUES (?, ?)", key, raw)
	if err != nil {
		return fmt.Errorf("append: %w", err)
	}

	return nil
}

// Extend appends all values in one transaction: either every value is added
// or none are.
func (l *List) Extend(ctx context.Context, values ...any) error {
	if ctx == nil {
		return errors.New("extend: context is nil")
	}

	if l == nil || l.db == nil {
		return errors.New("extend: list is not open")
	}

	if len(values) == 0 {
		return nil
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("extend: begin: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO "+l.table+" (key, value) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("extend: prepare: %w", err)
	}

	defer func() { _ = stmt.Close() }()

	for _, value := range values {
		key, keyErr := l.encodeKey(value)
		if keyErr != nil {
			return fmt.Errorf("extend: %w", keyErr)
		}

		raw, encErr := l.codec.Encode(value)
		if encErr != nil {
			return fmt.Errorf("extend: encode value: %w", encErr)
		}

		_, execErr := stmt.ExecContext(ctx, key, raw)
		if execErr != nil {
			return fmt.Errorf("extend: insert: %w", execErr)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("extend: commit: %w", err)
	}

	return nil
}

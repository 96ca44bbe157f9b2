package sqlist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SortOptions controls [List.Sort].
type SortOptions struct {
	// Key derives the comparison key for each element. nil compares the
	// elements themselves.
	Key KeyFunc

	// Reverse sorts in descending order.
	Reverse bool
}

// Sort reorders all elements in place using bounded two-row windows: at any
// moment at most two rows are held in memory, and each step costs one
// two-row read plus at most one two-row write. The cost is O(n²) swaps in
// the worst case.
//
// Sorting first clears every row's order key and disables the sequence's
// key function for good: afterwards logical order is defined purely by
// physical row arrangement, and later appends insert without a key.
// Elements with equal comparison keys may not keep their relative order.
//
// The whole operation runs in one transaction. If two comparison keys have
// no defined order, Sort rolls everything back, including the cleared order
// keys and any swaps already applied, and returns [ErrNotComparable]; the
// sequence is left exactly as before the call.
func (l *List) Sort(ctx context.Context, opts SortOptions) error {
	if ctx == nil {
		return errors.New("sort: context is nil")
	}

	if l == nil || l.db == nil {
		return errors.New("sort: list is not open")
	}

	keyFn := opts.Key
	if keyFn == nil {
		keyFn = func(v any) (any, error) { return v, nil }
	}

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("sort: begin: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	// From here on, physical arrangement is the only order.
	_, err = tx.ExecContext(ctx, "UPDATE "+l.table+" SET key = NULL")
	if err != nil {
		return fmt.Errorf("sort: clear keys: %w", err)
	}

	position := 0

	for {
		first, second, ok, winErr := l.fetchWindow(ctx, tx, position)
		if winErr != nil {
			return fmt.Errorf("sort: %w", winErr)
		}

		if !ok {
			break
		}

		swap, cmpErr := l.swapRequired(first.raw, second.raw, keyFn, opts.Reverse)
		if cmpErr != nil {
			return fmt.Errorf("sort: %w", cmpErr)
		}

		if !swap {
			position++

			continue
		}

		err = l.swapValues(ctx, tx, first, second)
		if err != nil {
			return fmt.Errorf("sort: %w", err)
		}

		// Retreat so the value that just moved left keeps bubbling
		// against its new left neighbor.
		if position > 0 {
			position--
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("sort: commit: %w", err)
	}

	l.key = nil

	return nil
}

// windowRow pairs a physical row identity with its raw value payload.
type windowRow struct {
	rowid int64
	raw   []byte
}

// fetchWindow reads the two rows at the given position in physical order.
// ok is false when fewer than two rows remain, which terminates the sort.
func (l *List) fetchWindow(ctx context.Context, tx *sql.Tx, position int) (first, second windowRow, ok bool, err error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT rowid, value FROM "+l.table+" ORDER BY rowid LIMIT 2 OFFSET ?", position)
	if err != nil {
		return windowRow{}, windowRow{}, false, fmt.Errorf("fetch window: %w", err)
	}

	defer func() { _ = rows.Close() }()

	window := make([]windowRow, 0, 2)

	for rows.Next() {
		var row windowRow

		scanErr := rows.Scan(&row.rowid, &row.raw)
		if scanErr != nil {
			return windowRow{}, windowRow{}, false, fmt.Errorf("fetch window: scan: %w", scanErr)
		}

		window = append(window, row)
	}

	err = rows.Err()
	if err != nil {
		return windowRow{}, windowRow{}, false, fmt.Errorf("fetch window: rows: %w", err)
	}

	if len(window) < 2 {
		return windowRow{}, windowRow{}, false, nil
	}

	return window[0], window[1], true, nil
}

// swapRequired decodes both payloads, applies the comparison key, and
// reports whether the pair is out of order.
func (l *List) swapRequired(firstRaw, secondRaw []byte, keyFn KeyFunc, reverse bool) (bool, error) {
	a, err := l.codec.Decode(firstRaw)
	if err != nil {
		return false, fmt.Errorf("decode value: %w", err)
	}

	b, err := l.codec.Decode(secondRaw)
	if err != nil {
		return false, fmt.Errorf("decode value: %w", err)
	}

	ka, err := keyFn(a)
	if err != nil {
		return false, fmt.Errorf("key function: %w", err)
	}

	kb, err := keyFn(b)
	if err != nil {
		return false, fmt.Errorf("key function: %w", err)
	}

	cmp, err := compareValues(ka, kb)
	if err != nil {
		return false, err
	}

	if reverse {
		return cmp < 0, nil
	}

	return cmp > 0, nil
}

// swapValues exchanges the value payloads of two rows. Row identities stay
// put; only the payloads move.
func (l *List) swapValues(ctx context.Context, tx *sql.Tx, first, second windowRow) error {
	_, err := tx.ExecContext(ctx,
		"UPDATE "+l.table+" SET value = ? WHERE rowid = ?", second.raw, first.rowid)
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE "+l.table+" SET value = ? WHERE rowid = ?", first.raw, second.rowid)
	if err != nil {
		return fmt.Errorf("swap: %w", err)
	}

	return nil
}

package sqlist

import (
	"bytes"
	"fmt"
	"strings"
)

// compareValues orders two dynamic values for [List.Sort]. Numbers (all
// integer kinds, floats, and bools as 0/1) compare numerically across kinds;
// strings compare with strings, []byte with []byte, and []any element-wise
// with shorter prefixes ordering first. Any other pairing, including nil,
// wraps [ErrNotComparable].
func compareValues(a, b any) (int, error) {
	fa, aNum := toNumber(a)
	fb, bNum := toNumber(b)

	if aNum && bNum {
		switch {
		case fa < fb:
			return -1, nil
		case fa > fb:
			return 1, nil
		default:
			return 0, nil
		}
	}

	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return strings.Compare(sa, sb), nil
		}
	}

	if ba, ok := a.([]byte); ok {
		if bb, ok := b.([]byte); ok {
			return bytes.Compare(ba, bb), nil
		}
	}

	if la, ok := a.([]any); ok {
		if lb, ok := b.([]any); ok {
			return compareLists(la, lb)
		}
	}

	return 0, fmt.Errorf("%w: %T and %T", ErrNotComparable, a, b)
}

// compareLists orders two lists element-wise; an exhausted prefix is less.
func compareLists(a, b []any) (int, error) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := range n {
		cmp, err := compareValues(a[i], b[i])
		if err != nil {
			return 0, err
		}

		if cmp != 0 {
			return cmp, nil
		}
	}

	switch {
	case len(a) < len(b):
		return -1, nil
	case len(a) > len(b):
		return 1, nil
	default:
		return 0, nil
	}
}

// toNumber folds every numeric kind onto float64. Integers beyond 2^53 lose
// precision in this comparison, same as the key column encoding.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case bool:
		if n {
			return 1, true
		}

		return 0, true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

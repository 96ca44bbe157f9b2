// Package orderkey encodes key-function outputs into BLOBs whose raw byte
// order under memcmp matches the keys' logical order. SQLite compares BLOB
// columns bytewise, so an ascending index scan over these encodings yields
// elements in key order.
//
// Kinds are ranked by a leading tag byte, numbers before strings before raw
// bytes, mirroring how SQLite ranks column affinities. Within a kind:
//   - numbers (all integer kinds, floats, bools as 0/1) encode as a
//     sign-flipped big-endian IEEE 754 double, so negative < zero < positive;
//     integers beyond 2^53 sort with float64 precision
//   - strings and []byte encode verbatim; a shorter prefix sorts first
package orderkey

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Kind tags, in sort order.
const (
	tagNumber byte = 0x10
	tagString byte = 0x20
	tagBytes  byte = 0x30
)

// ErrUnsupportedKey reports a key function output that has no defined
// encoding.
var ErrUnsupportedKey = errors.New("orderkey: unsupported key type")

// Encode turns a non-nil key into its sortable representation. Callers map
// nil keys to an absent (NULL) column instead of calling Encode.
func Encode(key any) ([]byte, error) {
	switch k := key.(type) {
	case string:
		return append([]byte{tagString}, k...), nil
	case []byte:
		return append([]byte{tagBytes}, k...), nil
	default:
		f, ok := toFloat(key)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnsupportedKey, key)
		}

		buf := make([]byte, 9)
		buf[0] = tagNumber
		binary.BigEndian.PutUint64(buf[1:], sortableBits(f))

		return buf, nil
	}
}

// sortableBits maps IEEE 754 bits so that unsigned bytewise comparison
// matches numeric order: flip all bits of negatives, flip only the sign bit
// of non-negatives.
func sortableBits(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&(1<<63) != 0 {
		return ^bits
	}

	return bits | 1<<63
}

func toFloat(v any) (float64, bool) {
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

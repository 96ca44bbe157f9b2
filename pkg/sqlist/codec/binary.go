package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sort"
)

// Value tags. Every encoded value starts with one of these.
const (
	tagNil    byte = 0x00
	tagFalse  byte = 0x01
	tagTrue   byte = 0x02
	tagInt    byte = 0x03 // zigzag varint
	tagUint   byte = 0x04 // uvarint
	tagFloat  byte = 0x05 // 8-byte big-endian IEEE 754
	tagString byte = 0x06 // uvarint length + bytes
	tagBytes  byte = 0x07 // uvarint length + bytes
	tagList   byte = 0x08 // uvarint count + values
	tagMap    byte = 0x09 // uvarint count + (string key, value) pairs, keys sorted
)

var (
	// ErrUnsupportedType reports a value the binary codec cannot encode.
	ErrUnsupportedType = errors.New("codec: unsupported type")

	// ErrCorrupt reports bytes that do not decode as a single value.
	ErrCorrupt = errors.New("codec: corrupt data")
)

// Binary is the default codec: a self-describing tagged binary format for
// dynamic values.
//
// Supported values: nil, bool, all integer kinds, float32/float64, string,
// []byte, []any, and map[string]any (nested arbitrarily). Decoding returns
// canonical kinds: signed integers come back as int64, uint/uint64 beyond
// int64 range as uint64, floats as float64. Encoding is deterministic (map
// keys are sorted), so equal values always produce identical bytes; sqlist
// relies on that for encoded-form membership and equality.
type Binary struct{}

// Encode serializes value into the tagged binary format.
func (Binary) Encode(value any) ([]byte, error) {
	return appendValue(make([]byte, 0, 16), value)
}

// Decode deserializes exactly one value. Trailing bytes mean corruption.
func (Binary) Decode(data []byte) (any, error) {
	value, rest, err := readValue(data)
	if err != nil {
		return nil, err
	}

	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(rest))
	}

	return value, nil
}

func appendValue(buf []byte, value any) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return append(buf, tagNil), nil
	case bool:
		if v {
			return append(buf, tagTrue), nil
		}

		return append(buf, tagFalse), nil
	case int:
		return appendInt(buf, int64(v)), nil
	case int8:
		return appendInt(buf, int64(v)), nil
	case int16:
		return appendInt(buf, int64(v)), nil
	case int32:
		return appendInt(buf, int64(v)), nil
	case int64:
		return appendInt(buf, v), nil
	case uint:
		return appendUint(buf, uint64(v)), nil
	case uint8:
		return appendUint(buf, uint64(v)), nil
	case uint16:
		return appendUint(buf, uint64(v)), nil
	case uint32:
		return appendUint(buf, uint64(v)), nil
	case uint64:
		return appendUint(buf, v), nil
	case float32:
		return appendFloat(buf, float64(v)), nil
	case float64:
		return appendFloat(buf, v), nil
	case string:
		buf = append(buf, tagString)
		buf = binary.AppendUvarint(buf, uint64(len(v)))

		return append(buf, v...), nil
	case []byte:
		buf = append(buf, tagBytes)
		buf = binary.AppendUvarint(buf, uint64(len(v)))

		return append(buf, v...), nil
	case []any:
		return appendList(buf, v)
	case map[string]any:
		return appendMap(buf, v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

func appendInt(buf []byte, v int64) []byte {
	buf = append(buf, tagInt)

	return binary.AppendVarint(buf, v)
}

func appendUint(buf []byte, v uint64) []byte {
	// Small unsigned values canonicalize to the signed form so that, e.g.,
	// uint(5) and int(5) encode identically.
	if v <= math.MaxInt64 {
		return appendInt(buf, int64(v))
	}

	buf = append(buf, tagUint)

	return binary.AppendUvarint(buf, v)
}

func appendFloat(buf []byte, v float64) []byte {
	buf = append(buf, tagFloat)

	return binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
}

func appendList(buf []byte, list []any) ([]byte, error) {
	buf = append(buf, tagList)
	buf = binary.AppendUvarint(buf, uint64(len(list)))

	var err error

	for _, elem := range list {
		buf, err = appendValue(buf, elem)
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func appendMap(buf []byte, m map[string]any) ([]byte, error) {
	buf = append(buf, tagMap)
	buf = binary.AppendUvarint(buf, uint64(len(m)))

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var err error

	for _, k := range keys {
		buf = binary.AppendUvarint(buf, uint64(len(k)))
		buf = append(buf, k...)

		buf, err = appendValue(buf, m[k])
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

func readValue(data []byte) (any, []byte, error) {
	if len(data) == 0 {
		return nil, nil, fmt.Errorf("%w: empty input", ErrCorrupt)
	}

	tag, rest := data[0], data[1:]

	switch tag {
	case tagNil:
		return nil, rest, nil
	case tagFalse:
		return false, rest, nil
	case tagTrue:
		return true, rest, nil
	case tagInt:
		v, n := binary.Varint(rest)
		if n <= 0 {
			return nil, nil, fmt.Errorf("%w: bad varint", ErrCorrupt)
		}

		return v, rest[n:], nil
	case tagUint:
		v, n := binary.Uvarint(rest)
		if n <= 0 {
			return nil, nil, fmt.Errorf("%w: bad uvarint", ErrCorrupt)
		}

		return v, rest[n:], nil
	case tagFloat:
		if len(rest) < 8 {
			return nil, nil, fmt.Errorf("%w: truncated float", ErrCorrupt)
		}

		return math.Float64frombits(binary.BigEndian.Uint64(rest[:8])), rest[8:], nil
	case tagString:
		raw, tail, err := readBlob(rest)
		if err != nil {
			return nil, nil, err
		}

		return string(raw), tail, nil
	case tagBytes:
		raw, tail, err := readBlob(rest)
		if err != nil {
			return nil, nil, err
		}

		out := make([]byte, len(raw))
		copy(out, raw)

		return out, tail, nil
	case tagList:
		return readList(rest)
	case tagMap:
		return readMap(rest)
	default:
		return nil, nil, fmt.Errorf("%w: unknown tag 0x%02x", ErrCorrupt, tag)
	}
}

func readBlob(data []byte) ([]byte, []byte, error) {
	size, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: bad length", ErrCorrupt)
	}

	data = data[n:]
	if uint64(len(data)) < size {
		return nil, nil, fmt.Errorf("%w: truncated payload", ErrCorrupt)
	}

	return data[:size], data[size:], nil
}

func readList(data []byte) (any, []byte, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: bad list count", ErrCorrupt)
	}

	data = data[n:]
	list := make([]any, 0, count)

	for range count {
		elem, rest, err := readValue(data)
		if err != nil {
			return nil, nil, err
		}

		list = append(list, elem)
		data = rest
	}

	return list, data, nil
}

func readMap(data []byte) (any, []byte, error) {
	count, n := binary.Uvarint(data)
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: bad map count", ErrCorrupt)
	}

	data = data[n:]
	m := make(map[string]any, count)

	for range count {
		key, rest, err := readBlob(data)
		if err != nil {
			return nil, nil, err
		}

		value, tail, err := readValue(rest)
		if err != nil {
			return nil, nil, err
		}

		m[string(key)] = value
		data = tail
	}

	return m, data, nil
}

// Package codec turns sequence elements into storable bytes and back.
package codec

// Codec encodes domain values into bytes for storage and decodes them back.
// Implementations must round-trip: Decode(Encode(v)) == v for every v in the
// caller's domain. Codec errors surface to sqlist callers unmodified.
type Codec interface {
	Encode(value any) ([]byte, error)
	Decode(data []byte) (any, error)
}

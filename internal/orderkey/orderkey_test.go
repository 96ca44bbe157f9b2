package orderkey_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calvinalkan/sqlist/internal/orderkey"
)

func Test_Encode_Byte_Order_Matches_Numeric_Order(t *testing.T) {
	t.Parallel()

	// Ascending numeric order across kinds, including bool as 0/1.
	keys := []any{-1e9, int64(-7), -0.5, false, true, int(2), 2.5, uint8(3), 1e18}

	encoded := make([][]byte, len(keys))

	for i, key := range keys {
		var err error

		encoded[i], err = orderkey.Encode(key)
		require.NoError(t, err, "%T", key)
	}

	for i := 1; i < len(encoded); i++ {
		assert.Negative(t, bytes.Compare(encoded[i-1], encoded[i]),
			"encoding of %v should sort before %v", keys[i-1], keys[i])
	}
}

func Test_Encode_Byte_Order_Matches_String_Order(t *testing.T) {
	t.Parallel()

	keys := []string{"", "a", "ab", "b"}

	prevKey := keys[0]

	prev, err := orderkey.Encode(prevKey)
	require.NoError(t, err)

	for _, key := range keys[1:] {
		next, err := orderkey.Encode(key)
		require.NoError(t, err)

		assert.Negative(t, bytes.Compare(prev, next), "%q should sort before %q", prevKey, key)

		prev, prevKey = next, key
	}
}

func Test_Encode_Ranks_Numbers_Before_Strings_Before_Bytes(t *testing.T) {
	t.Parallel()

	number, err := orderkey.Encode(1e300)
	require.NoError(t, err)

	str, err := orderkey.Encode("")
	require.NoError(t, err)

	blob, err := orderkey.Encode([]byte{})
	require.NoError(t, err)

	assert.Negative(t, bytes.Compare(number, str))
	assert.Negative(t, bytes.Compare(str, blob))
}

func Test_Encode_Rejects_Unsupported_Keys(t *testing.T) {
	t.Parallel()

	for _, key := range []any{nil, []any{1}, map[string]any{}, struct{}{}} {
		_, err := orderkey.Encode(key)
		assert.ErrorIs(t, err, orderkey.ErrUnsupportedKey, "%T", key)
	}
}

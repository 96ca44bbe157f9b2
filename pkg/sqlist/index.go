package sqlist

import (
	"fmt"
	"math"
)

// End can be passed as the stop bound of [List.Slice] to mean "through the
// last element"; bounds are clamped to the sequence length.
const End = math.MaxInt

// normalizeIndex converts a possibly negative logical index into the
// zero-based rank of the target element. The valid range is
// [-length, length-1]; anything else wraps [ErrIndexOutOfRange].
func normalizeIndex(index, length int) (int, error) {
	offset := index
	if offset < 0 {
		offset += length
	}

	if offset < 0 || offset >= length {
		return 0, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, index, length)
	}

	return offset, nil
}

// normalizeSlice converts slice bounds into an (offset, limit) range request
// using standard slice semantics: negative bounds count from the end, and
// both bounds clamp to [0, length]. An inverted range yields limit 0.
func normalizeSlice(start, stop, length int) (offset, limit int) {
	offset = clampBound(start, length)
	end := clampBound(stop, length)

	limit = end - offset
	if limit < 0 {
		limit = 0
	}

	return offset, limit
}

func clampBound(bound, length int) int {
	if bound < 0 {
		bound += length
		if bound < 0 {
			return 0
		}

		return bound
	}

	if bound > length {
		return length
	}

	return bound
}

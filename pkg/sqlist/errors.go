package sqlist

import "errors"

// ErrInvalidConfig reports an unusable [Config], such as an unsupported
// journal mode or a table name that is not a plain identifier.
var ErrInvalidConfig = errors.New("invalid config")

// ErrIndexOutOfRange reports a logical index that resolves to no physical row.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrNotComparable reports a sort comparison between two values that have no
// defined order relative to each other.
var ErrNotComparable = errors.New("values not comparable")

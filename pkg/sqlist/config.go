package sqlist

import (
	"fmt"

	"github.com/calvinalkan/sqlist/pkg/sqlist/codec"
)

// KeyFunc derives the order key for a value. The returned key must be nil
// (no key for this value) or one of: bool, any integer kind, float32/float64,
// string, []byte. Keys across all values in a sequence must be mutually
// orderable; mixing kinds orders by kind, mirroring how SQLite orders mixed
// column affinities.
//
// A KeyFunc must be pure: the same value always yields the same key.
type KeyFunc func(value any) (any, error)

// DefaultTable is the table name used when [Config.Table] is empty.
const DefaultTable = "data"

// DefaultJournalMode is used when [Config.JournalMode] is empty.
const DefaultJournalMode = "DELETE"

// journalModes is the set of SQLite journal modes accepted at Open.
var journalModes = map[string]struct{}{
	"WAL":      {},
	"OFF":      {},
	"DELETE":   {},
	"TRUNCATE": {},
	"PERSIST":  {},
	"MEMORY":   {},
}

// Config provides all settings for opening a sequence.
type Config struct {
	// Path is the SQLite database file. ":memory:" opens a throwaway
	// in-memory database. Required.
	Path string

	// Table is the collection name the sequence lives under. Defaults to
	// [DefaultTable]. Must be a plain identifier (letters, digits,
	// underscores, not starting with a digit) because it is interpolated
	// into SQL statements.
	Table string

	// Wipe drops any existing table at Path before creating a fresh one.
	// When false, existing rows are reused; the key function is reapplied
	// on new writes only, never rewritten onto existing rows.
	Wipe bool

	// JournalMode selects the SQLite journaling mode. One of WAL, OFF,
	// DELETE, TRUNCATE, PERSIST, MEMORY. Defaults to [DefaultJournalMode].
	// Unknown values are rejected with [ErrInvalidConfig].
	JournalMode string

	// Key derives each appended value's order key. nil means unordered
	// mode: the key column stays NULL and logical order degrades to
	// insertion order.
	Key KeyFunc

	// Codec encodes elements for storage. Defaults to [codec.Binary].
	Codec codec.Codec
}

// withDefaults returns a copy of the config with empty optional fields filled.
func (c Config) withDefaults() Config {
	if c.Table == "" {
		c.Table = DefaultTable
	}

	if c.JournalMode == "" {
		c.JournalMode = DefaultJournalMode
	}

	if c.Codec == nil {
		c.Codec = codec.Binary{}
	}

	return c
}

// validate checks a defaulted config. All violations wrap [ErrInvalidConfig].
func (c Config) validate() error {
	if c.Path == "" {
		return fmt.Errorf("%w: path is empty", ErrInvalidConfig)
	}

	if !validTableName(c.Table) {
		return fmt.Errorf("%w: table name %q is not a valid identifier", ErrInvalidConfig, c.Table)
	}

	if _, ok := journalModes[c.JournalMode]; !ok {
		return fmt.Errorf("%w: unsupported journal mode %q", ErrInvalidConfig, c.JournalMode)
	}

	return nil
}

// validTableName reports whether name is safe to interpolate into SQL.
func validTableName(name string) bool {
	if name == "" {
		return false
	}

	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

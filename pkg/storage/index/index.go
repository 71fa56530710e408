// Package index provides the in-memory primary-key index behind a table.
// The default implementation keeps keys ordered and supports both point
// and range lookups; a hash implementation is available when only point
// lookups are needed.
package index

import (
	"fmt"
	"strings"

	"tabula/pkg/key"
	"tabula/pkg/tuple"
)

type IndexType string

const (
	OrderedIndexType IndexType = "ORDERED"
	HashIndexType    IndexType = "HASH"
)

// ParseIndexType resolves an index type name, case-insensitively.
func ParseIndexType(str string) (IndexType, error) {
	switch strings.ToUpper(str) {
	case "ORDERED":
		return OrderedIndexType, nil

	case "HASH":
		return HashIndexType, nil

	default:
		return "", fmt.Errorf("unknown index type %q", str)
	}
}

// Entry is a single key-to-tuple mapping in an index.
type Entry struct {
	Key   *key.KeyType
	Tuple *tuple.Tuple
}

// Index maps primary-key values to tuples. Put overwrites an existing
// entry for an equal key (last write wins), so an index holds exactly one
// entry per distinct key value.
type Index interface {
	// Put inserts or overwrites the entry for k.
	Put(k *key.KeyType, t *tuple.Tuple) error

	// Get returns the current entry for k, if any.
	Get(k *key.KeyType) (*tuple.Tuple, bool)

	// Range returns the tuples whose key falls in [from, to] inclusive,
	// in ascending key order. An inverted range yields an empty result.
	// Implementations without key ordering report an error.
	Range(from, to *key.KeyType) ([]*tuple.Tuple, error)

	// Len returns the number of distinct keys present.
	Len() int

	// Entries returns all entries; ordered implementations return them
	// in ascending key order.
	Entries() []Entry
}

// New creates an empty index of the given type.
func New(t IndexType) (Index, error) {
	switch t {
	case OrderedIndexType:
		return NewOrdered(), nil

	case HashIndexType:
		return NewHash(), nil

	default:
		return nil, fmt.Errorf("unknown index type %q", t)
	}
}

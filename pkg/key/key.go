// Package key implements the composite primary-key value used by the
// table index: an ordered sequence of scalar fields compared
// component-wise, lexicographically.
package key

import (
	"strings"

	"tabula/pkg/dberr"
	"tabula/pkg/types"
)

// KeyType is a composite key built from one or more field values. Two
// keys are equal iff all components compare equal by value; ordering is
// lexicographic over the components' natural scalar orderings.
type KeyType struct {
	fields []types.Field
}

// New constructs a key from the given components. A zero-length key is a
// configuration error.
func New(fields ...types.Field) (*KeyType, error) {
	if len(fields) == 0 {
		return nil, dberr.New(dberr.CodeConfiguration, "key must have at least one component")
	}
	copied := make([]types.Field, len(fields))
	copy(copied, fields)
	return &KeyType{fields: copied}, nil
}

// Fields returns the key components in order.
func (k *KeyType) Fields() []types.Field {
	out := make([]types.Field, len(k.fields))
	copy(out, k.fields)
	return out
}

// Len returns the number of components.
func (k *KeyType) Len() int {
	return len(k.fields)
}

// Compare orders two keys lexicographically, returning -1, 0 or 1.
// Comparing keys of different arity or component domains is a
// configuration error; keys derived from one table never disagree.
func (k *KeyType) Compare(other *KeyType) (int, error) {
	if other == nil || len(k.fields) != len(other.fields) {
		return 0, dberr.New(dberr.CodeConfiguration, "cannot compare keys of different arity")
	}

	for i, f := range k.fields {
		c, err := types.Order(f, other.fields[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// Equals reports component-wise value equality.
func (k *KeyType) Equals(other *KeyType) bool {
	if other == nil || len(k.fields) != len(other.fields) {
		return false
	}
	for i, f := range k.fields {
		if !f.Equals(other.fields[i]) {
			return false
		}
	}
	return true
}

// Hash combines the component hashes positionally, consistent with
// Equals: equal keys always hash identically.
func (k *KeyType) Hash() (types.HashCode, error) {
	var hash types.HashCode
	for _, f := range k.fields {
		fieldHash, err := f.Hash()
		if err != nil {
			return 0, err
		}
		hash = hash*31 + fieldHash
	}
	return hash, nil
}

// String renders the key components for tracing.
func (k *KeyType) String() string {
	parts := make([]string, len(k.fields))
	for i, f := range k.fields {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

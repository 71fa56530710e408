package types

import "io"

// HashCode is the hash of a field value. Equal fields hash identically.
type HashCode uint32

// Field is a single domain-typed scalar value. Implementations are
// immutable; every mutation-looking helper returns a new value.
//
// Compare never coerces across domains: comparing a field against a field
// of a different concrete type reports false for every predicate.
type Field interface {
	// Serialize writes the field's binary representation (big-endian).
	Serialize(w io.Writer) error

	// Compare evaluates op between this field and other.
	Compare(op Predicate, other Field) (bool, error)

	// Type returns the field's domain tag.
	Type() Type

	// String renders the value for tracing and display.
	String() string

	// Equals reports value equality with another field of the same domain.
	Equals(other Field) bool

	// Hash returns a hash consistent with Equals.
	Hash() (HashCode, error)
}

// Order compares two fields of the same domain, returning -1, 0 or 1.
// Ordering values of different domains is a configuration error.
func Order(a, b Field) (int, error) {
	if a.Type() != b.Type() {
		return 0, orderMismatch(a, b)
	}

	eq, err := a.Compare(Equals, b)
	if err != nil {
		return 0, err
	}
	if eq {
		return 0, nil
	}

	less, err := a.Compare(LessThan, b)
	if err != nil {
		return 0, err
	}
	if less {
		return -1, nil
	}
	return 1, nil
}

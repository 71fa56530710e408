package types

import (
	"encoding/binary"
	"hash/fnv"
	"io"
	"strings"
)

// StringField represents a variable-length string field.
type StringField struct {
	Value string
}

func NewStringField(value string) *StringField {
	return &StringField{Value: value}
}

// Serialize writes the string as a 4-byte big-endian length prefix
// followed by the raw bytes.
func (s *StringField) Serialize(w io.Writer) error {
	lengthBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(lengthBytes, uint32(len(s.Value))) // #nosec G115

	if _, err := w.Write(lengthBytes); err != nil {
		return err
	}

	_, err := w.Write([]byte(s.Value))
	return err
}

// Compare evaluates op lexicographically against another string field.
func (s *StringField) Compare(op Predicate, other Field) (bool, error) {
	otherField, ok := other.(*StringField)
	if !ok {
		return false, nil
	}

	cmp := strings.Compare(s.Value, otherField.Value)

	switch op {
	case Equals:
		return cmp == 0, nil

	case LessThan:
		return cmp < 0, nil

	case GreaterThan:
		return cmp > 0, nil

	case LessThanOrEqual:
		return cmp <= 0, nil

	case GreaterThanOrEqual:
		return cmp >= 0, nil

	case NotEqual:
		return cmp != 0, nil

	default:
		return false, nil
	}
}

func (s *StringField) Type() Type {
	return StringType
}

func (s *StringField) String() string {
	return s.Value
}

func (s *StringField) Equals(other Field) bool {
	otherField, ok := other.(*StringField)
	if !ok {
		return false
	}
	return s.Value == otherField.Value
}

func (s *StringField) Hash() (HashCode, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s.Value))
	return HashCode(h.Sum32()), nil
}

package types

import (
	"encoding/binary"
	"io"
)

// CharField represents a single character field. The value is a rune so
// any Unicode code point fits in the fixed 4-byte encoding.
type CharField struct {
	Value rune
}

func NewCharField(value rune) *CharField {
	return &CharField{Value: value}
}

func (f *CharField) Serialize(w io.Writer) error {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(f.Value)) // #nosec G115
	_, err := w.Write(bytes)
	return err
}

func (f *CharField) Compare(op Predicate, other Field) (bool, error) {
	otherField, ok := other.(*CharField)
	if !ok {
		return false, nil
	}
	return compareOrdered(f.Value, otherField.Value, op), nil
}

func (f *CharField) Type() Type {
	return CharType
}

func (f *CharField) String() string {
	return string(f.Value)
}

func (f *CharField) Equals(other Field) bool {
	otherField, ok := other.(*CharField)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *CharField) Hash() (HashCode, error) {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, uint32(f.Value)) // #nosec G115
	return hashBytes(bytes)
}

package types

import (
	"encoding/binary"
	"io"
	"math"
	"strconv"
)

// Float32Field represents a 32-bit IEEE 754 floating-point field
type Float32Field struct {
	Value float32
}

func NewFloat32Field(value float32) *Float32Field {
	return &Float32Field{Value: value}
}

func (f *Float32Field) Serialize(w io.Writer) error {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, math.Float32bits(f.Value))
	_, err := w.Write(bytes)
	return err
}

func (f *Float32Field) Compare(op Predicate, other Field) (bool, error) {
	otherField, ok := other.(*Float32Field)
	if !ok {
		return false, nil
	}
	return compareOrdered(f.Value, otherField.Value, op), nil
}

func (f *Float32Field) Type() Type {
	return Float32Type
}

func (f *Float32Field) String() string {
	return strconv.FormatFloat(float64(f.Value), 'g', -1, 32)
}

func (f *Float32Field) Equals(other Field) bool {
	otherField, ok := other.(*Float32Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Float32Field) Hash() (HashCode, error) {
	bytes := make([]byte, 4)
	binary.BigEndian.PutUint32(bytes, math.Float32bits(f.Value))
	return hashBytes(bytes)
}

// Float64Field represents a 64-bit IEEE 754 floating-point field
type Float64Field struct {
	Value float64
}

func NewFloat64Field(value float64) *Float64Field {
	return &Float64Field{Value: value}
}

func (f *Float64Field) Serialize(w io.Writer) error {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, math.Float64bits(f.Value))
	_, err := w.Write(bytes)
	return err
}

func (f *Float64Field) Compare(op Predicate, other Field) (bool, error) {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false, nil
	}
	return compareOrdered(f.Value, otherField.Value, op), nil
}

func (f *Float64Field) Type() Type {
	return Float64Type
}

func (f *Float64Field) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (f *Float64Field) Equals(other Field) bool {
	otherField, ok := other.(*Float64Field)
	if !ok {
		return false
	}
	return f.Value == otherField.Value
}

func (f *Float64Field) Hash() (HashCode, error) {
	bytes := make([]byte, 8)
	binary.BigEndian.PutUint64(bytes, math.Float64bits(f.Value))
	return hashBytes(bytes)
}

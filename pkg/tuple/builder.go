package tuple

import (
	"fmt"

	"tabula/pkg/types"
)

// Builder provides a fluent interface for constructing tuples. The first
// error encountered is remembered and returned by Build.
type Builder struct {
	tuple        *Tuple
	currentIndex int
	err          error
}

// NewBuilder creates a tuple builder for the given schema.
func NewBuilder(td *TupleDescription) *Builder {
	return &Builder{tuple: NewTuple(td)}
}

// Add places any field at the current index.
func (b *Builder) Add(field types.Field) *Builder {
	if b.err != nil {
		return b
	}
	if err := b.tuple.SetField(b.currentIndex, field); err != nil {
		b.err = fmt.Errorf("field %d: %w", b.currentIndex, err)
		return b
	}
	b.currentIndex++
	return b
}

// AddInt8 adds an 8-bit integer field at the current index
func (b *Builder) AddInt8(value int8) *Builder {
	return b.Add(types.NewInt8Field(value))
}

// AddInt16 adds a 16-bit integer field at the current index
func (b *Builder) AddInt16(value int16) *Builder {
	return b.Add(types.NewInt16Field(value))
}

// AddInt32 adds a 32-bit integer field at the current index
func (b *Builder) AddInt32(value int32) *Builder {
	return b.Add(types.NewInt32Field(value))
}

// AddInt64 adds a 64-bit integer field at the current index
func (b *Builder) AddInt64(value int64) *Builder {
	return b.Add(types.NewInt64Field(value))
}

// AddFloat32 adds a 32-bit float field at the current index
func (b *Builder) AddFloat32(value float32) *Builder {
	return b.Add(types.NewFloat32Field(value))
}

// AddFloat64 adds a 64-bit float field at the current index
func (b *Builder) AddFloat64(value float64) *Builder {
	return b.Add(types.NewFloat64Field(value))
}

// AddChar adds a character field at the current index
func (b *Builder) AddChar(value rune) *Builder {
	return b.Add(types.NewCharField(value))
}

// AddString adds a string field at the current index
func (b *Builder) AddString(value string) *Builder {
	return b.Add(types.NewStringField(value))
}

// Build returns the constructed tuple, or the first error encountered.
// Every column of the schema must have been populated.
func (b *Builder) Build() (*Tuple, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.currentIndex != b.tuple.TupleDesc.NumFields() {
		return nil, fmt.Errorf("tuple incomplete: %d of %d fields set",
			b.currentIndex, b.tuple.TupleDesc.NumFields())
	}
	return b.tuple, nil
}

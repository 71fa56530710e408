package types

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ParseField reads one serialized field of the given domain from r. It is
// the inverse of Field.Serialize and dispatches on the domain tag.
func ParseField(r io.Reader, fieldType Type) (Field, error) {
	switch fieldType {
	case Int8Type:
		return parseInt8Field(r)

	case Int16Type:
		return parseInt16Field(r)

	case Int32Type:
		return parseInt32Field(r)

	case Int64Type:
		return parseInt64Field(r)

	case Float32Type:
		return parseFloat32Field(r)

	case Float64Type:
		return parseFloat64Field(r)

	case CharType:
		return parseCharField(r)

	case StringType:
		return parseStringField(r)

	default:
		return nil, fmt.Errorf("unsupported field type: %v", fieldType)
	}
}

func parseInt8Field(r io.Reader) (*Int8Field, error) {
	bytes := make([]byte, 1)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return NewInt8Field(int8(bytes[0])), nil
}

func parseInt16Field(r io.Reader) (*Int16Field, error) {
	bytes := make([]byte, 2)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return NewInt16Field(int16(binary.BigEndian.Uint16(bytes))), nil
}

func parseInt32Field(r io.Reader) (*Int32Field, error) {
	bytes := make([]byte, 4)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return NewInt32Field(int32(binary.BigEndian.Uint32(bytes))), nil
}

func parseInt64Field(r io.Reader) (*Int64Field, error) {
	bytes := make([]byte, 8)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return NewInt64Field(int64(binary.BigEndian.Uint64(bytes))), nil
}

func parseFloat32Field(r io.Reader) (*Float32Field, error) {
	bytes := make([]byte, 4)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return NewFloat32Field(math.Float32frombits(binary.BigEndian.Uint32(bytes))), nil
}

func parseFloat64Field(r io.Reader) (*Float64Field, error) {
	bytes := make([]byte, 8)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return NewFloat64Field(math.Float64frombits(binary.BigEndian.Uint64(bytes))), nil
}

func parseCharField(r io.Reader) (*CharField, error) {
	bytes := make([]byte, 4)
	if _, err := io.ReadFull(r, bytes); err != nil {
		return nil, err
	}
	return NewCharField(rune(binary.BigEndian.Uint32(bytes))), nil
}

func parseStringField(r io.Reader) (*StringField, error) {
	lengthBytes := make([]byte, 4)
	if _, err := io.ReadFull(r, lengthBytes); err != nil {
		return nil, err
	}

	length := binary.BigEndian.Uint32(lengthBytes)
	strBytes := make([]byte, length)
	if _, err := io.ReadFull(r, strBytes); err != nil {
		return nil, err
	}

	return NewStringField(string(strBytes)), nil
}

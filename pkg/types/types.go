package types

import (
	"strings"

	"tabula/pkg/dberr"
)

// Type is the domain tag of an attribute. A domain is declared once per
// attribute at table creation and never changes.
type Type int

const (
	Int8Type Type = iota
	Int16Type
	Int32Type
	Int64Type
	Float32Type
	Float64Type
	CharType
	StringType
)

// String returns the canonical domain name, as accepted by ParseType.
func (t Type) String() string {
	switch t {
	case Int8Type:
		return "int8"
	case Int16Type:
		return "int16"
	case Int32Type:
		return "int32"
	case Int64Type:
		return "int64"
	case Float32Type:
		return "float32"
	case Float64Type:
		return "float64"
	case CharType:
		return "char"
	case StringType:
		return "string"
	default:
		return "unknown"
	}
}

// ParseType resolves a domain name to its Type. Matching is
// case-insensitive. An unrecognized name is a schema error.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "int8":
		return Int8Type, nil
	case "int16":
		return Int16Type, nil
	case "int32":
		return Int32Type, nil
	case "int64":
		return Int64Type, nil
	case "float32":
		return Float32Type, nil
	case "float64":
		return Float64Type, nil
	case "char":
		return CharType, nil
	case "string":
		return StringType, nil
	default:
		return 0, dberr.Newf(dberr.CodeSchema, "unrecognized domain name %q", name)
	}
}

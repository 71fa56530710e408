package types

import (
	"testing"

	"tabula/pkg/dberr"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		name     string
		expected Type
	}{
		{"int8", Int8Type},
		{"int16", Int16Type},
		{"int32", Int32Type},
		{"int64", Int64Type},
		{"float32", Float32Type},
		{"float64", Float64Type},
		{"char", CharType},
		{"string", StringType},
		{"INT64", Int64Type},
		{"String", StringType},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.name)
		if err != nil {
			t.Fatalf("ParseType(%q) returned error: %v", tt.name, err)
		}
		if got != tt.expected {
			t.Errorf("ParseType(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestParseType_Unknown(t *testing.T) {
	_, err := ParseType("integer")
	if err == nil {
		t.Fatal("expected error for unrecognized domain name")
	}
	if !dberr.IsSchema(err) {
		t.Errorf("expected schema error, got %v", err)
	}
}

func TestTypeString_RoundTrip(t *testing.T) {
	all := []Type{Int8Type, Int16Type, Int32Type, Int64Type,
		Float32Type, Float64Type, CharType, StringType}

	for _, fieldType := range all {
		parsed, err := ParseType(fieldType.String())
		if err != nil {
			t.Fatalf("ParseType(%q) returned error: %v", fieldType.String(), err)
		}
		if parsed != fieldType {
			t.Errorf("round trip of %v produced %v", fieldType, parsed)
		}
	}
}

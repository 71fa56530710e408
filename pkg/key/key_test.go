package key

import (
	"testing"

	"tabula/pkg/dberr"
	"tabula/pkg/types"
)

func mustKey(t *testing.T, fields ...types.Field) *KeyType {
	t.Helper()
	k, err := New(fields...)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return k
}

func TestNew_EmptyKey(t *testing.T) {
	_, err := New()
	if err == nil {
		t.Fatal("expected error constructing a zero-length key")
	}
	if !dberr.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestCompare_Lexicographic(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *KeyType
		expected int
	}{
		{
			"first component decides",
			mustKey(t, types.NewInt64Field(1), types.NewStringField("z")),
			mustKey(t, types.NewInt64Field(2), types.NewStringField("a")),
			-1,
		},
		{
			"tie broken by second component",
			mustKey(t, types.NewInt64Field(1), types.NewStringField("b")),
			mustKey(t, types.NewInt64Field(1), types.NewStringField("a")),
			1,
		},
		{
			"all components equal",
			mustKey(t, types.NewInt64Field(1), types.NewStringField("a")),
			mustKey(t, types.NewInt64Field(1), types.NewStringField("a")),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Compare(tt.b)
			if err != nil {
				t.Fatalf("Compare returned error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Compare = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestCompare_ArityMismatch(t *testing.T) {
	a := mustKey(t, types.NewInt64Field(1))
	b := mustKey(t, types.NewInt64Field(1), types.NewInt64Field(2))

	if _, err := a.Compare(b); err == nil {
		t.Fatal("expected error comparing keys of different arity")
	}
}

func TestEquals_And_Hash(t *testing.T) {
	a := mustKey(t, types.NewInt64Field(7), types.NewStringField("x"))
	b := mustKey(t, types.NewInt64Field(7), types.NewStringField("x"))
	c := mustKey(t, types.NewInt64Field(7), types.NewStringField("y"))

	if !a.Equals(b) {
		t.Error("independently constructed equal keys must be Equals")
	}
	if a.Equals(c) {
		t.Error("keys differing in one component must not be Equals")
	}

	ha, err := a.Hash()
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	hb, err := b.Hash()
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if ha != hb {
		t.Error("equal keys must hash identically")
	}
}

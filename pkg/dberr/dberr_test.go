package dberr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := Newf(CodeDomain, "column %d rejected", 2).
		WithDetail("declared int64, got string").
		WithOperation("Insert")

	msg := err.Error()
	for _, want := range []string{"DOMAIN_ERROR", "column 2 rejected", "declared int64", "Insert"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestWrap_PreservesCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Wrap(cause, CodeNotFound, "Load", "snapshot")

	if !errors.Is(err, cause) {
		t.Error("wrapped error must match its cause via errors.Is")
	}
	if !IsNotFound(err) {
		t.Error("wrapped error must carry the assigned code")
	}
}

func TestWrap_EnrichesExisting(t *testing.T) {
	inner := New(CodeSchema, "unknown attribute")
	err := Wrap(inner, CodeConfiguration, "NewTable", "table")

	// The original code wins; only missing context is filled in.
	if !IsSchema(err) {
		t.Errorf("expected schema code to survive wrapping, got %v", err)
	}
	if err.Operation != "NewTable" || err.Component != "table" {
		t.Errorf("context not attached: operation=%q component=%q", err.Operation, err.Component)
	}
}

func TestWrap_LeavesOriginalUntouched(t *testing.T) {
	inner := New(CodeSchema, "unknown attribute")
	_ = Wrap(inner, CodeConfiguration, "NewTable", "table")

	if inner.Operation != "" || inner.Component != "" {
		t.Errorf("wrapping mutated the original: operation=%q component=%q",
			inner.Operation, inner.Component)
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, CodeSchema, "op", "comp") != nil {
		t.Error("wrapping nil must yield nil")
	}
}

func TestHasCode_ThroughChain(t *testing.T) {
	inner := New(CodeCompatibility, "arity mismatch")
	outer := fmt.Errorf("union failed: %w", inner)

	if !IsCompatibility(outer) {
		t.Error("code must be detectable through a fmt.Errorf %w chain")
	}
	if IsDomain(outer) {
		t.Error("predicate matched the wrong code")
	}
}

package tuple

import (
	"testing"

	"tabula/pkg/dberr"
	"tabula/pkg/types"
)

func movieTuple(t *testing.T, id int64, title string, year int64) *Tuple {
	t.Helper()
	tup, err := NewBuilder(movieDesc(t)).
		AddInt64(id).
		AddString(title).
		AddInt64(year).
		Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	return tup
}

func TestSetField_DomainMismatch(t *testing.T) {
	tup := NewTuple(movieDesc(t))

	err := tup.SetField(0, types.NewStringField("x"))
	if err == nil {
		t.Fatal("expected error setting string into int64 column")
	}
	if !dberr.IsDomain(err) {
		t.Errorf("expected domain error, got %v", err)
	}

	// No narrower integer sneaks into a wider column.
	if err := tup.SetField(0, types.NewInt32Field(1)); err == nil {
		t.Fatal("expected error setting int32 into int64 column")
	}
}

func TestEquals_ValueEquality(t *testing.T) {
	a := movieTuple(t, 1, "Alpha", 2001)
	b := movieTuple(t, 1, "Alpha", 2001)
	c := movieTuple(t, 1, "Alpha", 2002)

	if !a.Equals(b) {
		t.Error("independently constructed tuples with matching content must be equal")
	}
	if a.Equals(c) {
		t.Error("tuples differing in one column must not be equal")
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
		t.Error("equal tuples must hash identically")
	}
}

func TestBuilder_Incomplete(t *testing.T) {
	_, err := NewBuilder(movieDesc(t)).AddInt64(1).Build()
	if err == nil {
		t.Fatal("expected error building a partially populated tuple")
	}
}

func TestBuilder_WrongDomain(t *testing.T) {
	_, err := NewBuilder(movieDesc(t)).
		AddString("not an id").
		AddString("Alpha").
		AddInt64(2001).
		Build()
	if err == nil {
		t.Fatal("expected error from mismatched first column")
	}
}

func TestCombineTuples(t *testing.T) {
	left := movieTuple(t, 1, "Alpha", 2001)

	rightDesc, err := NewTupleDesc(
		[]types.Type{types.Int64Type, types.StringType},
		[]string{"id", "name"})
	if err != nil {
		t.Fatalf("NewTupleDesc returned error: %v", err)
	}
	right, err := NewBuilder(rightDesc).AddInt64(10).AddString("Fox").Build()
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	combined, err := CombineTuples(left, right)
	if err != nil {
		t.Fatalf("CombineTuples returned error: %v", err)
	}

	if combined.TupleDesc.NumFields() != 5 {
		t.Fatalf("combined arity = %d, want 5", combined.TupleDesc.NumFields())
	}

	f, err := combined.GetField(3)
	if err != nil {
		t.Fatalf("GetField returned error: %v", err)
	}
	if !f.Equals(types.NewInt64Field(10)) {
		t.Errorf("combined field 3 = %v, want 10", f)
	}
}

func TestExtract(t *testing.T) {
	tup := movieTuple(t, 2, "Beta", 2002)

	desc := movieDesc(t)
	proj, err := desc.Project([]int{1})
	if err != nil {
		t.Fatalf("Project returned error: %v", err)
	}

	row, err := tup.Extract(proj, []int{1})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	f, err := row.GetField(0)
	if err != nil {
		t.Fatalf("GetField returned error: %v", err)
	}
	if !f.Equals(types.NewStringField("Beta")) {
		t.Errorf("extracted field = %v, want Beta", f)
	}
}

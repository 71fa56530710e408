package table

import (
	"testing"

	"tabula/pkg/dberr"
	"tabula/pkg/storage/index"
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

func yearIs(year int64) Predicate {
	return func(tup *tuple.Tuple) bool {
		f, err := tup.GetField(2)
		if err != nil {
			return false
		}
		return f.Equals(types.NewInt64Field(year))
	}
}

func TestSelect_Predicate(t *testing.T) {
	tbl := movieTable(t)
	addMovie(t, tbl, 1, "Alpha", 2001, 10)
	addMovie(t, tbl, 2, "Beta", 2002, 20)
	addMovie(t, tbl, 3, "Gamma", 2002, 10)

	out, err := tbl.Select(yearIs(2002))
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}

	if !sameIDs(idsOf(t, out), []int64{2, 3}) {
		t.Errorf("selected ids = %v, want [2 3] in insertion order", idsOf(t, out))
	}
	if got := out.KeyAttrs(); len(got) != 1 || got[0] != "id" {
		t.Errorf("selection key = %v, want [id]", got)
	}
}

func TestSelect_NoneMatch(t *testing.T) {
	tbl := movieTable(t)
	addMovie(t, tbl, 1, "Alpha", 2001, 10)

	out, err := tbl.Select(yearIs(1999))
	if err != nil {
		t.Fatalf("Select returned error: %v", err)
	}
	if out.NumTuples() != 0 {
		t.Errorf("selection count = %d, want 0", out.NumTuples())
	}
}

func TestSelectKey(t *testing.T) {
	tbl := movieTable(t)
	addMovie(t, tbl, 1, "Alpha", 2001, 10)
	addMovie(t, tbl, 2, "Beta", 2002, 20)

	hit, err := tbl.SelectKey(int64Key(t, 2))
	if err != nil {
		t.Fatalf("SelectKey returned error: %v", err)
	}
	if !sameIDs(idsOf(t, hit), []int64{2}) {
		t.Errorf("SelectKey(2) ids = %v, want [2]", idsOf(t, hit))
	}

	miss, err := tbl.SelectKey(int64Key(t, 99))
	if err != nil {
		t.Fatalf("missing key must not error, got %v", err)
	}
	if miss.NumTuples() != 0 {
		t.Errorf("SelectKey(99) count = %d, want 0", miss.NumTuples())
	}
}

func TestRangeSelect(t *testing.T) {
	tbl := movieTable(t)
	for _, id := range []int64{5, 1, 4, 2, 3} {
		addMovie(t, tbl, id, "row", 2000+id, 10)
	}

	out, err := tbl.RangeSelect(int64Key(t, 2), int64Key(t, 4))
	if err != nil {
		t.Fatalf("RangeSelect returned error: %v", err)
	}

	// Inclusive bounds, ascending key order regardless of insertion order.
	if !sameIDs(idsOf(t, out), []int64{2, 3, 4}) {
		t.Errorf("range ids = %v, want [2 3 4]", idsOf(t, out))
	}
}

func TestRangeSelect_Inverted(t *testing.T) {
	tbl := movieTable(t)
	addMovie(t, tbl, 1, "Alpha", 2001, 10)

	out, err := tbl.RangeSelect(int64Key(t, 9), int64Key(t, 3))
	if err != nil {
		t.Fatalf("inverted range must not error, got %v", err)
	}
	if out.NumTuples() != 0 {
		t.Errorf("inverted range count = %d, want 0", out.NumTuples())
	}
}

func TestRangeSelect_HashIndex(t *testing.T) {
	tbl := movieTable(t, WithIndexType(index.HashIndexType))
	addMovie(t, tbl, 1, "Alpha", 2001, 10)

	_, err := tbl.RangeSelect(int64Key(t, 1), int64Key(t, 2))
	if err == nil {
		t.Fatal("expected error range-selecting on a hash index")
	}
	if !dberr.IsConfiguration(err) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

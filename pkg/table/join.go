package table

import (
	"strings"

	"tabula/pkg/dberr"
	"tabula/pkg/key"
	"tabula/pkg/logging"
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

// Join performs a nested-loop equi-join: attrs1 resolve against this
// schema and attrs2 against other's, pairwise. A pair of tuples whose
// resolved column values all compare equal by value is concatenated into
// one output tuple. The result schema concatenates both input schemas,
// with colliding attribute names from other suffixed; the result key is
// inherited unchanged from this table.
//
// Cost is O(|T|*|U|*k). This is the fallback when other's primary-key
// index cannot be exploited; see IndexedJoin.
func (t *Table) Join(attrs1, attrs2 []string, other *Table) (*Table, error) {
	logging.Debug("join", "table", t.name, "other", other.name,
		"attrs1", strings.Join(attrs1, " "), "attrs2", strings.Join(attrs2, " "))

	tCols, uCols, err := resolveJoinColumns(t, other, attrs1, attrs2)
	if err != nil {
		return nil, err
	}

	combinedDesc, err := tuple.Combine(t.desc, other.desc)
	if err != nil {
		return nil, err
	}

	var rows []*tuple.Tuple
	for _, left := range t.tuples {
		for _, right := range other.tuples {
			match, err := columnsEqual(left, right, tCols, uCols)
			if err != nil {
				return nil, err
			}
			if !match {
				continue
			}

			row, err := left.CombineWith(right, combinedDesc)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
	}

	return t.derive(combinedDesc, t.keyAttrs, rows)
}

// IndexedJoin is the equi-join optimized for the case where attrs2 is
// exactly other's declared primary key: each tuple of this table probes
// other's index once with the key derived from its attrs1 columns, for
// O(|T|*log|U|) cost. Tuples without a matching key contribute no output
// row (inner join semantics).
func (t *Table) IndexedJoin(attrs1, attrs2 []string, other *Table) (*Table, error) {
	logging.Debug("indexed join", "table", t.name, "other", other.name,
		"attrs1", strings.Join(attrs1, " "), "attrs2", strings.Join(attrs2, " "))

	tCols, _, err := resolveJoinColumns(t, other, attrs1, attrs2)
	if err != nil {
		return nil, err
	}

	if !sameAttrs(attrs2, other.keyAttrs) {
		return nil, dberr.Newf(dberr.CodeSchema,
			"indexed join requires probe attributes to equal %q's primary key (%s)",
			other.name, strings.Join(other.keyAttrs, " ")).
			WithOperation("IndexedJoin")
	}

	combinedDesc, err := tuple.Combine(t.desc, other.desc)
	if err != nil {
		return nil, err
	}

	var rows []*tuple.Tuple
	for _, left := range t.tuples {
		fields := make([]types.Field, len(tCols))
		for i, col := range tCols {
			field, err := left.GetField(col)
			if err != nil {
				return nil, err
			}
			fields[i] = field
		}

		probe, err := key.New(fields...)
		if err != nil {
			return nil, err
		}

		right, found := other.idx.Get(probe)
		if !found {
			continue
		}

		row, err := left.CombineWith(right, combinedDesc)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return t.derive(combinedDesc, t.keyAttrs, rows)
}

// resolveJoinColumns resolves both attribute lists against their
// respective schemas and enforces the pairwise length requirement.
func resolveJoinColumns(t, other *Table, attrs1, attrs2 []string) ([]int, []int, error) {
	if len(attrs1) != len(attrs2) {
		return nil, nil, dberr.Newf(dberr.CodeConfiguration,
			"join attribute lists differ in length (%d vs %d)", len(attrs1), len(attrs2))
	}

	tCols, err := t.desc.ResolveColumns(attrs1)
	if err != nil {
		return nil, nil, err
	}

	uCols, err := other.desc.ResolveColumns(attrs2)
	if err != nil {
		return nil, nil, err
	}

	return tCols, uCols, nil
}

// columnsEqual reports whether all paired columns of the two tuples
// compare equal by value.
func columnsEqual(left, right *tuple.Tuple, leftCols, rightCols []int) (bool, error) {
	for i := range leftCols {
		lf, err := left.GetField(leftCols[i])
		if err != nil {
			return false, err
		}
		rf, err := right.GetField(rightCols[i])
		if err != nil {
			return false, err
		}
		if !lf.Equals(rf) {
			return false, nil
		}
	}
	return true, nil
}

// sameAttrs reports positional equality of two attribute lists.
func sameAttrs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

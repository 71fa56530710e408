package table

import (
	"strings"

	"tabula/pkg/logging"
	"tabula/pkg/tuple"
)

// Project keeps only the named attributes, in the requested order.
// Duplicates and reordering are allowed; resulting tuples are not
// deduplicated.
//
// The result keeps this table's primary key when every key attribute
// appears in the request; otherwise the full requested attribute list
// becomes the key, since no smaller uniqueness guarantee survives the
// projection.
func (t *Table) Project(attrs []string) (*Table, error) {
	logging.Debug("project", "table", t.name, "attrs", strings.Join(attrs, " "))

	cols, err := t.desc.ResolveColumns(attrs)
	if err != nil {
		return nil, err
	}

	projDesc, err := t.desc.Project(cols)
	if err != nil {
		return nil, err
	}

	newKey := projDesc.FieldNames
	if containsAll(attrs, t.keyAttrs) {
		newKey = t.keyAttrs
	}

	rows := make([]*tuple.Tuple, 0, len(t.tuples))
	for _, tup := range t.tuples {
		row, err := tup.Extract(projDesc, cols)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return t.derive(projDesc, newKey, rows)
}

// containsAll reports whether every member of want appears in have.
func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

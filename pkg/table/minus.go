package table

import (
	"tabula/pkg/logging"
	"tabula/pkg/tuple"
)

// Minus computes set difference over two compatible tables: every tuple
// of this table not present, by full value equality over all columns, in
// other's tuple collection. Tuple identity is never consulted.
func (t *Table) Minus(other *Table) (*Table, error) {
	logging.Debug("minus", "table", t.name, "other", other.name)

	if err := t.compatibleOrErr("Minus", other); err != nil {
		return nil, err
	}

	rightSet := newTupleSet()
	for _, tup := range other.tuples {
		if err := rightSet.add(tup); err != nil {
			return nil, err
		}
	}

	var rows []*tuple.Tuple
	for _, tup := range t.tuples {
		contained, err := rightSet.contains(tup)
		if err != nil {
			return nil, err
		}
		if !contained {
			rows = append(rows, tup)
		}
	}

	return t.derive(t.desc, t.keyAttrs, rows)
}

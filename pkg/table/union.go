package table

import (
	"tabula/pkg/logging"
	"tabula/pkg/tuple"
)

// Union combines two compatible tables: all of this table's tuples plus
// every tuple of other whose primary-key value, derived from other's own
// key columns, is not already present in this table's index. Set union is
// therefore deduplicated by primary key, not by full tuple equality.
//
// Incompatible inputs (differing arity or positional domain) are a
// compatibility error and produce no table.
func (t *Table) Union(other *Table) (*Table, error) {
	logging.Debug("union", "table", t.name, "other", other.name)

	if err := t.compatibleOrErr("Union", other); err != nil {
		return nil, err
	}

	rows := make([]*tuple.Tuple, 0, len(t.tuples)+len(other.tuples))
	rows = append(rows, t.tuples...)

	for _, tup := range other.tuples {
		k, err := other.keyOf(tup)
		if err != nil {
			return nil, err
		}
		if _, present := t.idx.Get(k); !present {
			rows = append(rows, tup)
		}
	}

	return t.derive(t.desc, t.keyAttrs, rows)
}

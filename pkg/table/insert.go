package table

import (
	"tabula/pkg/logging"
	"tabula/pkg/tuple"
)

// Insert type-checks the tuple and, on success, appends it to the
// collection and inserts or overwrites its primary-key entry in the
// index. A tuple failing the domain check is rejected whole: collection
// and index are left untouched.
//
// Insert is the only mutating operation in the kernel. Batch insertion is
// not atomic; callers must check each result individually.
func (t *Table) Insert(tup *tuple.Tuple) error {
	logging.Debug("insert", "table", t.name, "tuple", tup.String())

	if err := t.typeCheck(tup); err != nil {
		return err
	}

	if err := t.indexTuple(tup); err != nil {
		return err
	}
	t.tuples = append(t.tuples, tup)
	return nil
}

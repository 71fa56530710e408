package table

import (
	"tabula/pkg/key"
	"tabula/pkg/logging"
	"tabula/pkg/tuple"
)

// Predicate decides whether a tuple belongs in a selection result.
type Predicate func(*tuple.Tuple) bool

// Select retains, in insertion order, every tuple satisfying the
// predicate. Pure filter over the collection; the index is not consulted.
// Schema, domains and key carry over unchanged.
func (t *Table) Select(pred Predicate) (*Table, error) {
	logging.Debug("select", "table", t.name)

	var rows []*tuple.Tuple
	for _, tup := range t.tuples {
		if pred(tup) {
			rows = append(rows, tup)
		}
	}

	return t.derive(t.desc, t.keyAttrs, rows)
}

// SelectKey returns a table holding at most one tuple: the index's
// current entry for k. A missing key is not an error; the result is
// simply empty.
func (t *Table) SelectKey(k *key.KeyType) (*Table, error) {
	logging.Debug("select by key", "table", t.name, "key", k.String())

	var rows []*tuple.Tuple
	if tup, ok := t.idx.Get(k); ok {
		rows = append(rows, tup)
	}

	return t.derive(t.desc, t.keyAttrs, rows)
}

// RangeSelect returns all tuples whose indexed key falls within
// [fromKey, toKey] inclusive, in ascending key order, answered from the
// index's ordered structure rather than a collection scan. An inverted
// range yields an empty result, not an error.
func (t *Table) RangeSelect(fromKey, toKey *key.KeyType) (*Table, error) {
	logging.Debug("range select", "table", t.name,
		"from", fromKey.String(), "to", toKey.String())

	rows, err := t.idx.Range(fromKey, toKey)
	if err != nil {
		return nil, err
	}

	return t.derive(t.desc, t.keyAttrs, rows)
}

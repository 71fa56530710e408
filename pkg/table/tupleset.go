package table

import (
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

// tupleSet is a hash set of tuples with value-equality semantics. Hash
// collisions are resolved by comparing against the stored tuples, so two
// independently constructed tuples with matching content are recognized
// as equal.
type tupleSet struct {
	buckets map[types.HashCode][]*tuple.Tuple
}

func newTupleSet() *tupleSet {
	return &tupleSet{buckets: make(map[types.HashCode][]*tuple.Tuple)}
}

// add inserts the tuple unless an equal tuple is already present.
func (ts *tupleSet) add(t *tuple.Tuple) error {
	hash, err := t.Hash()
	if err != nil {
		return err
	}

	for _, existing := range ts.buckets[hash] {
		if existing.Equals(t) {
			return nil
		}
	}
	ts.buckets[hash] = append(ts.buckets[hash], t)
	return nil
}

// contains reports whether an equal tuple is present.
func (ts *tupleSet) contains(t *tuple.Tuple) (bool, error) {
	hash, err := t.Hash()
	if err != nil {
		return false, err
	}

	for _, existing := range ts.buckets[hash] {
		if existing.Equals(t) {
			return true, nil
		}
	}
	return false, nil
}

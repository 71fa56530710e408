package index

import (
	"sort"

	"tabula/pkg/key"
	"tabula/pkg/tuple"
)

// OrderedIndex keeps entries in a slice sorted by key and answers point
// lookups with binary search and range lookups with a contiguous scan.
// Every key in one index derives from the same key columns, so key
// comparisons never fail once the first entry is admitted.
type OrderedIndex struct {
	entries []Entry
}

// NewOrdered creates an empty ordered index.
func NewOrdered() *OrderedIndex {
	return &OrderedIndex{}
}

// search returns the position of the first entry whose key is >= k, and
// whether the entry at that position holds an equal key.
func (idx *OrderedIndex) search(k *key.KeyType) (int, bool, error) {
	var searchErr error
	pos := sort.Search(len(idx.entries), func(i int) bool {
		if searchErr != nil {
			return false
		}
		c, err := idx.entries[i].Key.Compare(k)
		if err != nil {
			searchErr = err
			return false
		}
		return c >= 0
	})
	if searchErr != nil {
		return 0, false, searchErr
	}

	found := pos < len(idx.entries) && idx.entries[pos].Key.Equals(k)
	return pos, found, nil
}

// Put inserts the entry for k, overwriting any entry with an equal key.
func (idx *OrderedIndex) Put(k *key.KeyType, t *tuple.Tuple) error {
	pos, found, err := idx.search(k)
	if err != nil {
		return err
	}

	if found {
		idx.entries[pos].Tuple = t
		return nil
	}

	idx.entries = append(idx.entries, Entry{})
	copy(idx.entries[pos+1:], idx.entries[pos:])
	idx.entries[pos] = Entry{Key: k, Tuple: t}
	return nil
}

// Get returns the entry for k, if present.
func (idx *OrderedIndex) Get(k *key.KeyType) (*tuple.Tuple, bool) {
	pos, found, err := idx.search(k)
	if err != nil || !found {
		return nil, false
	}
	return idx.entries[pos].Tuple, true
}

// Range returns all tuples with key in [from, to] inclusive, ascending.
// An inverted range (from > to) is an empty result, not an error.
func (idx *OrderedIndex) Range(from, to *key.KeyType) ([]*tuple.Tuple, error) {
	lo, _, err := idx.search(from)
	if err != nil {
		return nil, err
	}

	var out []*tuple.Tuple
	for i := lo; i < len(idx.entries); i++ {
		c, err := idx.entries[i].Key.Compare(to)
		if err != nil {
			return nil, err
		}
		if c > 0 {
			break
		}
		out = append(out, idx.entries[i].Tuple)
	}
	return out, nil
}

// Len returns the number of distinct keys present.
func (idx *OrderedIndex) Len() int {
	return len(idx.entries)
}

// Entries returns all entries in ascending key order.
func (idx *OrderedIndex) Entries() []Entry {
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

package index

import (
	"tabula/pkg/dberr"
	"tabula/pkg/key"
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

// HashIndex buckets entries by key hash with collision lists compared by
// key equality. Point lookups are O(1); the key ordering needed for range
// queries is not maintained, so Range reports an error.
type HashIndex struct {
	buckets map[types.HashCode][]Entry
	size    int
}

// NewHash creates an empty hash index.
func NewHash() *HashIndex {
	return &HashIndex{buckets: make(map[types.HashCode][]Entry)}
}

// Put inserts the entry for k, overwriting any entry with an equal key.
func (idx *HashIndex) Put(k *key.KeyType, t *tuple.Tuple) error {
	hash, err := k.Hash()
	if err != nil {
		return err
	}

	bucket := idx.buckets[hash]
	for i, entry := range bucket {
		if entry.Key.Equals(k) {
			bucket[i].Tuple = t
			return nil
		}
	}

	idx.buckets[hash] = append(bucket, Entry{Key: k, Tuple: t})
	idx.size++
	return nil
}

// Get returns the entry for k, if present.
func (idx *HashIndex) Get(k *key.KeyType) (*tuple.Tuple, bool) {
	hash, err := k.Hash()
	if err != nil {
		return nil, false
	}

	for _, entry := range idx.buckets[hash] {
		if entry.Key.Equals(k) {
			return entry.Tuple, true
		}
	}
	return nil, false
}

// Range is unsupported: a hash index maintains no key ordering.
func (idx *HashIndex) Range(from, to *key.KeyType) ([]*tuple.Tuple, error) {
	return nil, dberr.New(dberr.CodeConfiguration, "hash index does not support range queries")
}

// Len returns the number of distinct keys present.
func (idx *HashIndex) Len() int {
	return idx.size
}

// Entries returns all entries in arbitrary order.
func (idx *HashIndex) Entries() []Entry {
	out := make([]Entry, 0, idx.size)
	for _, bucket := range idx.buckets {
		out = append(out, bucket...)
	}
	return out
}

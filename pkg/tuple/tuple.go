package tuple

import (
	"fmt"
	"strings"

	"tabula/pkg/dberr"
	"tabula/pkg/types"
)

// Tuple is one row of a table: a fixed-length sequence of domain-typed
// fields matching its schema positionally. Tuples are treated as
// immutable once fully populated.
type Tuple struct {
	TupleDesc *TupleDescription
	fields    []types.Field
}

// NewTuple creates an unpopulated tuple with the given schema.
func NewTuple(td *TupleDescription) *Tuple {
	return &Tuple{
		TupleDesc: td,
		fields:    make([]types.Field, td.NumFields()),
	}
}

// SetField places a field at position i. The field's concrete domain must
// exactly match the declared domain; no widening or narrowing happens.
func (t *Tuple) SetField(i int, field types.Field) error {
	if i < 0 || i >= len(t.fields) {
		return fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}

	expectedType, _ := t.TupleDesc.TypeAtIndex(i)
	if field.Type() != expectedType {
		return dberr.Newf(dberr.CodeDomain,
			"field type mismatch at column %d: declared %s, got %s",
			i, expectedType, field.Type())
	}

	t.fields[i] = field
	return nil
}

// GetField returns the value of the ith field.
func (t *Tuple) GetField(i int) (types.Field, error) {
	if i < 0 || i >= len(t.fields) {
		return nil, fmt.Errorf("field index %d out of bounds [0, %d)", i, len(t.fields))
	}
	return t.fields[i], nil
}

// Equals reports value equality: same arity and every column equal by
// value. Identity is never consulted.
func (t *Tuple) Equals(other *Tuple) bool {
	if other == nil || len(t.fields) != len(other.fields) {
		return false
	}
	for i, f := range t.fields {
		if f == nil || other.fields[i] == nil {
			return false
		}
		if !f.Equals(other.fields[i]) {
			return false
		}
	}
	return true
}

// Hash combines the field hashes positionally; equal tuples hash equal.
func (t *Tuple) Hash() (types.HashCode, error) {
	var hash types.HashCode
	for _, f := range t.fields {
		if f == nil {
			continue
		}
		fieldHash, err := f.Hash()
		if err != nil {
			return 0, err
		}
		hash = hash*31 + fieldHash
	}
	return hash, nil
}

// Extract builds a smaller tuple by selecting the given columns in order
// into the supplied projected schema.
func (t *Tuple) Extract(td *TupleDescription, cols []int) (*Tuple, error) {
	out := NewTuple(td)
	for i, col := range cols {
		field, err := t.GetField(col)
		if err != nil {
			return nil, err
		}
		if err := out.SetField(i, field); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// CombineTuples concatenates two tuples into one, for join results.
func CombineTuples(t1, t2 *Tuple) (*Tuple, error) {
	if t1 == nil || t2 == nil {
		return nil, fmt.Errorf("cannot combine nil tuples")
	}

	combinedDesc, err := Combine(t1.TupleDesc, t2.TupleDesc)
	if err != nil {
		return nil, err
	}

	out := NewTuple(combinedDesc)
	if err := t1.copyFieldsTo(out, 0); err != nil {
		return nil, err
	}
	if err := t2.copyFieldsTo(out, t1.TupleDesc.NumFields()); err != nil {
		return nil, err
	}
	return out, nil
}

// CombineWith concatenates t with t2 into the supplied pre-combined
// schema, avoiding schema recomputation per row during joins.
func (t *Tuple) CombineWith(t2 *Tuple, combinedDesc *TupleDescription) (*Tuple, error) {
	out := NewTuple(combinedDesc)
	if err := t.copyFieldsTo(out, 0); err != nil {
		return nil, err
	}
	if err := t2.copyFieldsTo(out, t.TupleDesc.NumFields()); err != nil {
		return nil, err
	}
	return out, nil
}

func (t *Tuple) copyFieldsTo(target *Tuple, startIndex int) error {
	for i := 0; i < t.TupleDesc.NumFields(); i++ {
		field, err := t.GetField(i)
		if err != nil {
			return err
		}
		if field != nil {
			if err := target.SetField(startIndex+i, field); err != nil {
				return err
			}
		}
	}
	return nil
}

// String renders the tuple as tab-separated field values.
func (t *Tuple) String() string {
	parts := make([]string, 0, len(t.fields))
	for _, field := range t.fields {
		if field != nil {
			parts = append(parts, field.String())
		} else {
			parts = append(parts, "null")
		}
	}
	return strings.Join(parts, "\t")
}

// Package table implements the relational table kernel: a schema, a
// collection of domain-typed tuples, a primary-key index, and the algebra
// operators over them. Operators never mutate their inputs; every
// operator allocates a new table, so concurrent reads across operator
// invocations are safe as long as insertion is externally synchronized.
package table

import (
	"strings"

	"tabula/pkg/dberr"
	"tabula/pkg/key"
	"tabula/pkg/logging"
	"tabula/pkg/storage/index"
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

// Table owns a schema, the inserted tuples in insertion order, and a
// primary-key index over them. Schema and key are immutable after
// construction; the tuple collection grows only through Insert.
//
// The index keeps one entry per distinct key value, last write wins, so
// the collection and the index may disagree on population when duplicate
// keys are inserted. Key-based lookups reflect the index.
type Table struct {
	name     string
	desc     *tuple.TupleDescription
	keyAttrs []string
	keyCols  []int
	tuples   []*tuple.Tuple
	idx      index.Index
	idxType  index.IndexType
	namer    Namer
}

// Option configures table construction.
type Option func(*Table)

// WithNamer injects the generator used to name tables derived by
// operators. Derived tables inherit it.
func WithNamer(n Namer) Option {
	return func(t *Table) { t.namer = n }
}

// WithIndexType selects the index implementation. The default ordered
// index supports point and range lookups; a hash index trades range
// support for O(1) points.
func WithIndexType(it index.IndexType) Option {
	return func(t *Table) { t.idxType = it }
}

// NewTable creates an empty table. The primary key must be a non-empty
// subset of the schema's attributes.
func NewTable(name string, desc *tuple.TupleDescription, keyAttrs []string, opts ...Option) (*Table, error) {
	if len(keyAttrs) == 0 {
		return nil, dberr.New(dberr.CodeSchema, "primary key must not be empty").
			WithDetail("table %q", name)
	}

	t := &Table{
		name:     name,
		desc:     desc,
		keyAttrs: append([]string(nil), keyAttrs...),
		idxType:  index.OrderedIndexType,
		namer:    defaultNamer,
	}
	for _, opt := range opts {
		opt(t)
	}

	keyCols, err := desc.ResolveColumns(t.keyAttrs)
	if err != nil {
		return nil, dberr.Wrap(err, dberr.CodeSchema, "NewTable", "table")
	}
	t.keyCols = keyCols

	idx, err := index.New(t.idxType)
	if err != nil {
		return nil, dberr.Wrap(err, dberr.CodeConfiguration, "NewTable", "table")
	}
	t.idx = idx

	logging.Debug("create table", "table", name, "schema", desc.String(),
		"key", strings.Join(t.keyAttrs, " "))
	return t, nil
}

// NewTableFromText creates an empty table from whitespace-separated
// attribute-name, domain-name and key-attribute strings, e.g.
//
//	NewTableFromText("movie", "id title year", "int64 string int64", "id")
//
// Unrecognized domain names are schema errors.
func NewTableFromText(name, attributes, domains, keyAttrs string, opts ...Option) (*Table, error) {
	names := strings.Fields(attributes)
	domainNames := strings.Fields(domains)

	fieldTypes := make([]types.Type, len(domainNames))
	for i, domainName := range domainNames {
		fieldType, err := types.ParseType(domainName)
		if err != nil {
			return nil, err
		}
		fieldTypes[i] = fieldType
	}

	desc, err := tuple.NewTupleDesc(fieldTypes, names)
	if err != nil {
		return nil, err
	}

	return NewTable(name, desc, strings.Fields(keyAttrs), opts...)
}

// derive builds an operator result: a new table named through the name
// generator and pre-populated from tuples the operator computed. Algebra
// outputs are not re-validated against the schema; only user-facing
// insertion type-checks.
func (t *Table) derive(desc *tuple.TupleDescription, keyAttrs []string, tuples []*tuple.Tuple) (*Table, error) {
	out, err := NewTable(t.namer.Derive(t.name), desc, keyAttrs,
		WithNamer(t.namer), WithIndexType(t.idxType))
	if err != nil {
		return nil, err
	}

	for _, tup := range tuples {
		out.tuples = append(out.tuples, tup)
		if err := out.indexTuple(tup); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// indexTuple derives the tuple's primary-key value and stores it in the
// index, overwriting any previous entry for an equal key.
func (t *Table) indexTuple(tup *tuple.Tuple) error {
	k, err := t.keyOf(tup)
	if err != nil {
		return err
	}
	return t.idx.Put(k, tup)
}

// keyOf extracts the primary-key value from a tuple of this table.
func (t *Table) keyOf(tup *tuple.Tuple) (*key.KeyType, error) {
	fields := make([]types.Field, len(t.keyCols))
	for i, col := range t.keyCols {
		field, err := tup.GetField(col)
		if err != nil {
			return nil, err
		}
		fields[i] = field
	}
	return key.New(fields...)
}

// typeCheck verifies arity and exact per-column domain identity. No
// numeric coercion across widths: int32 is rejected where int64 is
// declared.
func (t *Table) typeCheck(tup *tuple.Tuple) error {
	if tup.TupleDesc.NumFields() != t.desc.NumFields() {
		return dberr.Newf(dberr.CodeDomain,
			"tuple arity %d does not match schema arity %d",
			tup.TupleDesc.NumFields(), t.desc.NumFields())
	}

	for i := 0; i < t.desc.NumFields(); i++ {
		declared, _ := t.desc.TypeAtIndex(i)
		field, err := tup.GetField(i)
		if err != nil {
			return err
		}
		if field == nil {
			return dberr.Newf(dberr.CodeDomain, "column %d is unset", i)
		}
		if field.Type() != declared {
			return dberr.Newf(dberr.CodeDomain,
				"column %d: declared domain %s, got %s", i, declared, field.Type())
		}
	}
	return nil
}

// Compatible reports whether other has the same arity and the same
// domain at every position. Attribute names may differ.
func (t *Table) Compatible(other *Table) bool {
	return t.desc.Compatible(other.desc)
}

// compatibleOrErr is the shared gate for union and minus.
func (t *Table) compatibleOrErr(op string, other *Table) error {
	if t.Compatible(other) {
		return nil
	}
	return dberr.Newf(dberr.CodeCompatibility,
		"tables %q and %q differ in arity or positional domain", t.name, other.name).
		WithOperation(op)
}

// Name returns the table's name.
func (t *Table) Name() string {
	return t.name
}

// TupleDesc returns the table's schema.
func (t *Table) TupleDesc() *tuple.TupleDescription {
	return t.desc
}

// KeyAttrs returns the primary-key attribute names in order.
func (t *Table) KeyAttrs() []string {
	return append([]string(nil), t.keyAttrs...)
}

// NumTuples returns the number of tuples in the collection. Duplicate-key
// inserts keep all tuples here even though the index holds one entry.
func (t *Table) NumTuples() int {
	return len(t.tuples)
}

// Tuples returns the tuple collection in insertion order.
func (t *Table) Tuples() []*tuple.Tuple {
	return append([]*tuple.Tuple(nil), t.tuples...)
}

// IndexEntries returns the index contents; in ascending key order for the
// default ordered index.
func (t *Table) IndexEntries() []index.Entry {
	return t.idx.Entries()
}

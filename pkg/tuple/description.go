package tuple

import (
	"fmt"
	"strings"

	"tabula/pkg/dberr"
	"tabula/pkg/types"
)

// TupleDescription is the schema of a tuple: an ordered sequence of
// (attribute name, domain) pairs. Attribute names are unique within a
// description.
type TupleDescription struct {
	// Types contains the domain of each attribute in order
	Types []types.Type
	// FieldNames contains the name of each attribute in order
	FieldNames []string
}

// NewTupleDesc creates a schema from parallel domain and name slices.
// The slices must be the same non-zero length and names must be unique.
func NewTupleDesc(fieldTypes []types.Type, fieldNames []string) (*TupleDescription, error) {
	if len(fieldTypes) < 1 {
		return nil, dberr.New(dberr.CodeSchema, "schema must declare at least one attribute")
	}
	if len(fieldNames) != len(fieldTypes) {
		return nil, dberr.Newf(dberr.CodeSchema,
			"attribute names length (%d) must match domains length (%d)",
			len(fieldNames), len(fieldTypes))
	}

	seen := make(map[string]struct{}, len(fieldNames))
	for _, name := range fieldNames {
		if _, dup := seen[name]; dup {
			return nil, dberr.Newf(dberr.CodeSchema, "duplicate attribute name %q", name)
		}
		seen[name] = struct{}{}
	}

	typesCopy := make([]types.Type, len(fieldTypes))
	copy(typesCopy, fieldTypes)
	namesCopy := make([]string, len(fieldNames))
	copy(namesCopy, fieldNames)

	return &TupleDescription{
		Types:      typesCopy,
		FieldNames: namesCopy,
	}, nil
}

// NumFields returns the number of attributes in this schema.
func (td *TupleDescription) NumFields() int {
	return len(td.Types)
}

// FieldName returns the name of the ith attribute.
func (td *TupleDescription) FieldName(i int) (string, error) {
	if i < 0 || i >= len(td.Types) {
		return "", fmt.Errorf("attribute index %d out of bounds [0, %d)", i, len(td.Types))
	}
	return td.FieldNames[i], nil
}

// TypeAtIndex returns the domain of the ith attribute.
func (td *TupleDescription) TypeAtIndex(i int) (types.Type, error) {
	if i < 0 || i >= len(td.Types) {
		return 0, fmt.Errorf("attribute index %d out of bounds [0, %d)", i, len(td.Types))
	}
	return td.Types[i], nil
}

// FindFieldIndex locates an attribute by name. A name with no match is a
// schema error: downstream indexing with an invalid position must be
// rejected before use.
func (td *TupleDescription) FindFieldIndex(fieldName string) (int, error) {
	for i, name := range td.FieldNames {
		if name == fieldName {
			return i, nil
		}
	}
	return -1, dberr.Newf(dberr.CodeSchema, "attribute %q not found in schema", fieldName)
}

// ResolveColumns maps attribute names to their positional column indices.
func (td *TupleDescription) ResolveColumns(names []string) ([]int, error) {
	cols := make([]int, len(names))
	for i, name := range names {
		col, err := td.FindFieldIndex(name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

// Compatible reports whether two schemas have the same arity and the same
// domain at every position. Attribute names are not compared.
func (td *TupleDescription) Compatible(other *TupleDescription) bool {
	if other == nil {
		return false
	}
	if len(td.Types) != len(other.Types) {
		return false
	}
	for i, fieldType := range td.Types {
		if fieldType != other.Types[i] {
			return false
		}
	}
	return true
}

// Project derives a reduced schema containing the given columns in the
// given order. Duplicated or reordered columns are allowed; duplicates
// keep their first name and later occurrences are suffixed to stay unique.
func (td *TupleDescription) Project(cols []int) (*TupleDescription, error) {
	newTypes := make([]types.Type, len(cols))
	newNames := make([]string, len(cols))
	seen := make(map[string]struct{}, len(cols))

	for i, col := range cols {
		fieldType, err := td.TypeAtIndex(col)
		if err != nil {
			return nil, err
		}
		name, _ := td.FieldName(col)
		name = uniqueName(name, seen)
		seen[name] = struct{}{}

		newTypes[i] = fieldType
		newNames[i] = name
	}

	return NewTupleDesc(newTypes, newNames)
}

// Combine merges two schemas for a join result: all attributes of td1
// followed by all attributes of td2. Names from td2 colliding with names
// already present are disambiguated with a numeric suffix ("id" -> "id2").
func Combine(td1, td2 *TupleDescription) (*TupleDescription, error) {
	newTypes := make([]types.Type, 0, len(td1.Types)+len(td2.Types))
	newTypes = append(newTypes, td1.Types...)
	newTypes = append(newTypes, td2.Types...)

	newNames := make([]string, 0, len(newTypes))
	seen := make(map[string]struct{}, len(newTypes))
	for _, name := range td1.FieldNames {
		newNames = append(newNames, name)
		seen[name] = struct{}{}
	}
	for _, name := range td2.FieldNames {
		name = uniqueName(name, seen)
		seen[name] = struct{}{}
		newNames = append(newNames, name)
	}

	return NewTupleDesc(newTypes, newNames)
}

// uniqueName suffixes name with the smallest n >= 2 that avoids the names
// already taken.
func uniqueName(name string, taken map[string]struct{}) string {
	if _, dup := taken[name]; !dup {
		return name
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s%d", name, n)
		if _, dup := taken[candidate]; !dup {
			return candidate
		}
	}
}

// String renders the schema as "name:domain" pairs.
func (td *TupleDescription) String() string {
	parts := make([]string, len(td.Types))
	for i, fieldType := range td.Types {
		parts[i] = fmt.Sprintf("%s:%s", td.FieldNames[i], fieldType)
	}
	return strings.Join(parts, ",")
}

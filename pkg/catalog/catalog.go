// Package catalog loads declarative table definitions from YAML, the
// file-based counterpart of the raw-text table constructor.
//
// Example definition file:
//
//	tables:
//	  - name: movie
//	    key: [id]
//	    columns:
//	      - {name: id, type: int64}
//	      - {name: title, type: string}
//	      - {name: year, type: int64}
package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"tabula/pkg/dberr"
	"tabula/pkg/table"
	"tabula/pkg/tuple"
	"tabula/pkg/types"
)

// ColumnDef declares one attribute: a name and a domain name.
type ColumnDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// TableDef declares one table: its name, primary-key attributes and
// ordered columns.
type TableDef struct {
	Name    string      `yaml:"name"`
	Key     []string    `yaml:"key"`
	Columns []ColumnDef `yaml:"columns"`
}

// Catalog is the root of a definition file.
type Catalog struct {
	Tables []TableDef `yaml:"tables"`
}

// Parse reads a catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, dberr.Wrap(err, dberr.CodeConfiguration, "Parse", "catalog")
	}
	return &cat, nil
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dberr.Wrap(err, dberr.CodeConfiguration, "LoadFile", "catalog")
	}
	return Parse(data)
}

// Build materializes every definition into an empty table. Unrecognized
// domain names and unresolvable key attributes are schema errors.
func (c *Catalog) Build(opts ...table.Option) ([]*table.Table, error) {
	tables := make([]*table.Table, 0, len(c.Tables))
	for _, def := range c.Tables {
		t, err := def.Build(opts...)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// Build materializes a single definition into an empty table.
func (d *TableDef) Build(opts ...table.Option) (*table.Table, error) {
	fieldTypes := make([]types.Type, len(d.Columns))
	fieldNames := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		fieldType, err := types.ParseType(col.Type)
		if err != nil {
			return nil, err
		}
		fieldTypes[i] = fieldType
		fieldNames[i] = col.Name
	}

	desc, err := tuple.NewTupleDesc(fieldTypes, fieldNames)
	if err != nil {
		return nil, err
	}

	return table.NewTable(d.Name, desc, d.Key, opts...)
}

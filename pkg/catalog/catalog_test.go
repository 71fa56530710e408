package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabula/pkg/dberr"
)

const sampleCatalog = `
tables:
  - name: movie
    key: [id]
    columns:
      - {name: id, type: int64}
      - {name: title, type: string}
      - {name: year, type: int64}
  - name: studio
    key: [id]
    columns:
      - {name: id, type: int64}
      - {name: name, type: string}
`

func TestParse(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, cat.Tables, 2)

	movie := cat.Tables[0]
	assert.Equal(t, "movie", movie.Name)
	assert.Equal(t, []string{"id"}, movie.Key)
	require.Len(t, movie.Columns, 3)
	assert.Equal(t, "title", movie.Columns[1].Name)
	assert.Equal(t, "string", movie.Columns[1].Type)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("tables: ["))
	require.Error(t, err)
	assert.True(t, dberr.IsConfiguration(err))
}

func TestBuild(t *testing.T) {
	cat, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	tables, err := cat.Build()
	require.NoError(t, err)
	require.Len(t, tables, 2)

	movie := tables[0]
	assert.Equal(t, "movie", movie.Name())
	assert.Equal(t, []string{"id"}, movie.KeyAttrs())
	assert.Equal(t, 3, movie.TupleDesc().NumFields())
	assert.Equal(t, 0, movie.NumTuples())
}

func TestBuild_UnknownDomain(t *testing.T) {
	cat, err := Parse([]byte(`
tables:
  - name: t
    key: [id]
    columns:
      - {name: id, type: varchar}
`))
	require.NoError(t, err)

	_, err = cat.Build()
	require.Error(t, err)
	assert.True(t, dberr.IsSchema(err))
}

func TestBuild_KeyNotInColumns(t *testing.T) {
	cat, err := Parse([]byte(`
tables:
  - name: t
    key: [missing]
    columns:
      - {name: id, type: int64}
`))
	require.NoError(t, err)

	_, err = cat.Build()
	require.Error(t, err)
	assert.True(t, dberr.IsSchema(err))
}

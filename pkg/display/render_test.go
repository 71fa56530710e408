package display

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabula/pkg/table"
	"tabula/pkg/tuple"
)

func renderedTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.NewTableFromText("movie",
		"id title year", "int64 string int64", "id")
	require.NoError(t, err)

	tup, err := tuple.NewBuilder(tbl.TupleDesc()).
		AddInt64(1).
		AddString("Alpha").
		AddInt64(2001).
		Build()
	require.NoError(t, err)
	require.NoError(t, tbl.Insert(tup))
	return tbl
}

func TestRender(t *testing.T) {
	out := Render(renderedTable(t))

	assert.Contains(t, out, "movie")
	for _, want := range []string{"id", "title", "year", "Alpha", "2001"} {
		assert.Contains(t, out, want)
	}
}

func TestRender_EmptyTable(t *testing.T) {
	tbl, err := table.NewTableFromText("empty", "id", "int64", "id")
	require.NoError(t, err)

	out := Render(tbl)
	assert.Contains(t, out, "empty")
	assert.Contains(t, out, "id")
}

func TestPad_MultibyteWidth(t *testing.T) {
	got := pad("café", 6)
	assert.Equal(t, 6, lipgloss.Width(got))

	// Already at width: returned unchanged.
	assert.Equal(t, "café", pad("café", 4))
}

func TestRenderRow_MultibyteAlignment(t *testing.T) {
	widths := []int{2, 5}
	ascii := renderRow([]string{"2", "plain"}, widths, cellStyle)
	accented := renderRow([]string{"1", "naïve"}, widths, cellStyle)
	assert.Equal(t, lipgloss.Width(ascii), lipgloss.Width(accented))
}

func TestRenderIndex(t *testing.T) {
	out := RenderIndex(renderedTable(t))

	assert.Contains(t, out, "movie")
	assert.Contains(t, out, "->")
	assert.Contains(t, out, "Alpha")
}

func TestRenderIndex_Empty(t *testing.T) {
	tbl, err := table.NewTableFromText("empty", "id", "int64", "id")
	require.NoError(t, err)

	out := RenderIndex(tbl)
	assert.Contains(t, out, "(empty)")
}

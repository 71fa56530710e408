package display

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	btable "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tabula/pkg/table"
)

// keyMap declares the browser key bindings.
type keyMap struct {
	Quit key.Binding
}

var defaultKeyMap = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Browser is an interactive terminal viewer for a table's tuples.
type Browser struct {
	tbl    *table.Table
	view   btable.Model
	keys   keyMap
	height int
}

// NewBrowser builds a browser over the given table.
func NewBrowser(t *table.Table) *Browser {
	desc := t.TupleDesc()

	columns := make([]btable.Column, desc.NumFields())
	for i := 0; i < desc.NumFields(); i++ {
		name, _ := desc.FieldName(i)
		fieldType, _ := desc.TypeAtIndex(i)
		columns[i] = btable.Column{
			Title: fmt.Sprintf("%s:%s", name, fieldType),
			Width: 18,
		}
	}

	rows := make([]btable.Row, 0, t.NumTuples())
	for _, tup := range t.Tuples() {
		row := make(btable.Row, desc.NumFields())
		for i := 0; i < desc.NumFields(); i++ {
			field, _ := tup.GetField(i)
			if field != nil {
				row[i] = field.String()
			}
		}
		rows = append(rows, row)
	}

	view := btable.New(
		btable.WithColumns(columns),
		btable.WithRows(rows),
		btable.WithFocused(true),
		btable.WithHeight(15),
	)

	styles := btable.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(secondaryColor)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#FFFFFF")).
		Background(primaryColor)
	view.SetStyles(styles)

	return &Browser{tbl: t, view: view, keys: defaultKeyMap}
}

func (b *Browser) Init() tea.Cmd {
	return nil
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, b.keys.Quit) {
			return b, tea.Quit
		}
	case tea.WindowSizeMsg:
		b.height = msg.Height
		b.view.SetHeight(msg.Height - 4)
	}

	var cmd tea.Cmd
	b.view, cmd = b.view.Update(msg)
	return b, cmd
}

func (b *Browser) View() string {
	title := titleStyle.Render(fmt.Sprintf("Table %s (%d tuples)", b.tbl.Name(), b.tbl.NumTuples()))
	return title + "\n" + borderStyle.Render(b.view.View()) + "\n  q: quit\n"
}

// RunBrowser starts the interactive viewer and blocks until it exits.
func RunBrowser(t *table.Table) error {
	_, err := tea.NewProgram(NewBrowser(t)).Run()
	return err
}

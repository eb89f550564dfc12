package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tunehunt/internal/storage"
)

// maxCatalogRows bounds how many rows one tab loads.
const maxCatalogRows = 1000

// catalogTabs lists the browsable kinds in tab order.
var catalogTabs = []storage.Kind{storage.KindArtist, storage.KindTrack}

// CatalogKeyMap defines the key bindings for the catalog browser.
type CatalogKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k CatalogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k CatalogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Delete, k.Quit},
	}
}

// DefaultCatalogKeyMap returns default key bindings.
func DefaultCatalogKeyMap() CatalogKeyMap {
	return CatalogKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next list"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev list"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// CatalogModel browses the real-name catalog and removes bad entries.
type CatalogModel struct {
	store   *storage.Store
	tab     int
	entries []storage.Entry
	table   table.Model
	help    help.Model
	keys    CatalogKeyMap
	width   int
	height  int
	status  string
	err     error
}

// NewCatalogModel creates a catalog browser on the first tab.
func NewCatalogModel(store *storage.Store, width, height int) CatalogModel {
	m := CatalogModel{
		store:  store,
		keys:   DefaultCatalogKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *CatalogModel) createTable() table.Model {
	nameWidth := max(20, m.width-6-18-8)
	columns := []table.Column{
		{Title: "#", Width: 6},
		{Title: "Name", Width: nameWidth},
		{Title: "Added", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the current tab from the store.
func (m *CatalogModel) load() {
	m.entries, m.err = nil, nil
	if m.store != nil {
		m.entries, m.err = m.store.Entries(context.Background(), catalogTabs[m.tab], maxCatalogRows)
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			e.Name,
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the catalog model.
func (m CatalogModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the catalog browser.
func (m CatalogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.tab = (m.tab + 1) % len(catalogTabs)
			m.status = ""
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			m.tab = (m.tab + len(catalogTabs) - 1) % len(catalogTabs)
			m.status = ""
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.removeSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *CatalogModel) removeSelected() {
	i := m.table.Cursor()
	if m.store == nil || i < 0 || i >= len(m.entries) {
		return
	}
	e := m.entries[i]
	removed, err := m.store.Remove(context.Background(), e.Kind, e.Name)
	switch {
	case err != nil:
		m.err = err
	case removed:
		m.status = fmt.Sprintf("removed %q", e.Name)
	}

	m.load()
	if i >= len(m.entries) {
		i = len(m.entries) - 1
	}
	m.table.SetCursor(max(0, i))
}

// View renders the catalog browser.
func (m CatalogModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("CATALOG", m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(catalogTabs))
	for i, k := range catalogTabs {
		label := string(k) + "s"
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = tabStyle.Render(label)
		}
	}
	b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	switch {
	case m.err != nil:
		b.WriteString(boxStyle.Render(lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(m.err.Error())))
	case len(m.entries) == 0:
		b.WriteString(boxStyle.Render(muted.Italic(true).Padding(1, 2).
			Render("The catalog is empty.\nImport names with: tunehunt catalog import <file>")))
	default:
		b.WriteString(boxStyle.Render(m.table.View()))
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(muted.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(m.help.View(m.keys)))
	return b.String()
}

// Entries returns the rows of the current tab.
func (m CatalogModel) Entries() []storage.Entry {
	return m.entries
}

// RunCatalog runs the catalog browser until the user quits.
func RunCatalog(store *storage.Store, width, height int) error {
	p := tea.NewProgram(NewCatalogModel(store, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

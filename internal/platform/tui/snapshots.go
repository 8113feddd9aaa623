package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-raymarch/internal/registry"
	"github.com/vovakirdan/tui-raymarch/internal/storage"
)

// Snapshot browser layout constants
const (
	minWidthForPreview = 110 // Minimum width to show the preview beside the table
	maxSnapshots       = 100 // Max snapshots to load
	allShapes          = ""  // Filter value matching every shape
)

// SnapshotsKeyMap defines the key bindings for the snapshot browser.
type SnapshotsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextShape key.Binding
	PrevShape key.Binding
	Delete    key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SnapshotsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextShape, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k SnapshotsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextShape, k.PrevShape},
		{k.Delete, k.Back, k.Quit},
	}
}

// DefaultSnapshotsKeyMap returns default key bindings.
func DefaultSnapshotsKeyMap() SnapshotsKeyMap {
	return SnapshotsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next"),
		),
		NextShape: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next shape"),
		),
		PrevShape: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev shape"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SnapshotsModel is the Bubble Tea model for browsing stored frames.
type SnapshotsModel struct {
	filters     []string // allShapes followed by registered shape IDs
	filter      int
	store       *storage.Store
	snapshots   []storage.Snapshot
	table       table.Model
	help        help.Model
	keys        SnapshotsKeyMap
	width       int
	height      int
	err         error
	quitting    bool
	goingBack   bool
	showPreview bool
}

// NewSnapshotsModel creates a new snapshot browser.
func NewSnapshotsModel(store *storage.Store, width, height int) SnapshotsModel {
	filters := []string{allShapes}
	for _, s := range registry.List() {
		filters = append(filters, s.ID)
	}

	m := SnapshotsModel{
		filters:     filters,
		store:       store,
		keys:        DefaultSnapshotsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showPreview: width >= minWidthForPreview,
	}
	m.table = m.createTable()
	m.loadSnapshots()
	return m
}

// createTable creates a new table sized to the window.
func (m *SnapshotsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Shape", Width: 10},
		{Title: "Time", Width: 9},
		{Title: "Saved", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// loadSnapshots loads snapshots for the current filter.
func (m *SnapshotsModel) loadSnapshots() {
	m.snapshots = nil
	m.err = nil
	if m.store != nil {
		m.snapshots, m.err = m.store.Snapshots(m.filters[m.filter], maxSnapshots)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current snapshots.
func (m *SnapshotsModel) updateTableRows() {
	rows := make([]table.Row, len(m.snapshots))
	for i, s := range m.snapshots {
		rows[i] = table.Row{
			strconv.FormatInt(s.ID, 10),
			s.ShapeID,
			fmt.Sprintf("%.3fs", float64(s.ElapsedMS)/1000),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// current returns the highlighted snapshot, or nil.
func (m SnapshotsModel) current() *storage.Snapshot {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.snapshots) {
		return nil
	}
	return &m.snapshots[i]
}

// Init initializes the snapshot browser.
func (m SnapshotsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the snapshot browser.
func (m SnapshotsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextShape):
			m.filter = (m.filter + 1) % len(m.filters)
			m.loadSnapshots()
			return m, nil

		case key.Matches(msg, m.keys.PrevShape):
			m.filter--
			if m.filter < 0 {
				m.filter = len(m.filters) - 1
			}
			m.loadSnapshots()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if snap := m.current(); snap != nil && m.store != nil {
				m.err = m.store.DeleteSnapshot(snap.ID)
				if m.err == nil {
					m.loadSnapshots()
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the snapshot browser.
func (m SnapshotsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "SNAPSHOTS - all shapes"
	if f := m.filters[m.filter]; f != allShapes {
		title = "SNAPSHOTS - " + f
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	list := boxStyle.Render(m.renderTableContent())
	if m.showPreview {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", boxStyle.Render(m.renderPreview())))
	} else {
		b.WriteString(list)
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(pausedStyle.Render(m.err.Error()))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m SnapshotsModel) renderTableContent() string {
	if len(m.snapshots) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No snapshots saved yet.\nPress Ctrl+S while rendering to save one.")
	}

	return m.table.View()
}

// renderPreview renders the highlighted frame.
func (m SnapshotsModel) renderPreview() string {
	snap := m.current()
	if snap == nil {
		return statusStyle.Render("no selection")
	}
	return strings.TrimSuffix(snap.Content, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m SnapshotsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m SnapshotsModel) IsQuitting() bool {
	return m.quitting
}

// RunSnapshots runs the snapshot browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunSnapshots(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewSnapshotsModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(SnapshotsModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

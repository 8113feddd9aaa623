package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raymarch/internal/registry"
)

// MenuItem represents a selectable shape in the menu.
type MenuItem struct {
	ShapeID string
	Title   string
}

// MenuModel is the Bubble Tea model for the shape picker menu.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	width         int
	height        int
	quitting      bool
	selected      *MenuItem // Set when user selects a shape
	snapshots     bool      // Whether the snapshot browser can be opened
	openSnapshots bool      // True if user pressed Tab for snapshots
}

// NewMenuModel creates a new menu model with the cursor on the default shape.
func NewMenuModel(width, height int) MenuModel {
	shapes := registry.List()
	items := make([]MenuItem, 0, len(shapes))
	cursor := 0

	for i, s := range shapes {
		if s.ID == registry.DefaultID {
			cursor = i
		}
		items = append(items, MenuItem{
			ShapeID: s.ID,
			Title:   s.Title,
		})
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		snapshots: true,
	}
}

// WithoutSnapshots returns a copy of the menu with the snapshot browser
// entry hidden, for sessions that have no local database screen.
func (m MenuModel) WithoutSnapshots() MenuModel {
	m.snapshots = false
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start the viewer
		}

	case MenuActionSnapshots:
		if m.snapshots {
			m.openSnapshots = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  R A Y M A R C H  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a shape", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%s (%s)", cursor, item.Title, item.ShapeID)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Render  |  Q: Quit"
	if m.snapshots {
		controls = "Up/Down: Navigate  |  Enter: Render  |  Tab: Snapshots  |  Q: Quit"
	}
	b.WriteString(helpStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsSnapshots returns true if user requested the snapshot browser.
func (m MenuModel) WantsSnapshots() bool {
	return m.openSnapshots
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ShapeID        string
	Width          int
	Height         int
	WantsSnapshots bool
	Quit           bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width, height int) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	result := MenuResult{Width: m.width, Height: m.height}

	switch {
	case m.WantsSnapshots():
		result.WantsSnapshots = true
	case m.IsQuitting():
		result.Quit = true
	case m.Selected() != nil:
		result.ShapeID = m.Selected().ShapeID
	default:
		result.Quit = true
	}

	return result, nil
}

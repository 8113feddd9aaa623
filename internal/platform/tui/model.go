package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raymarch/internal/core"
	"github.com/vovakirdan/tui-raymarch/internal/registry"
	"github.com/vovakirdan/tui-raymarch/internal/render"
	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/storage"
)

// Run modes recorded in history.
const (
	ModeStream = "stream"
	ModePlay   = "play"
	ModeSSH    = "ssh"
)

// ViewerOptions configures an interactive viewer.
type ViewerOptions struct {
	Renderer  *render.Renderer
	Params    scene.Params
	Width     int
	Height    int
	Interval  time.Duration
	Start     time.Duration
	Store     *storage.Store // Optional; snapshots and history need it
	Logger    *log.Logger
	Mode      string
	AllowBack bool // Back returns to a menu instead of being ignored
}

// Model is the Bubble Tea model for the animated frame viewer.
type Model struct {
	opts       ViewerOptions
	shape      scene.Shape
	frame      *core.Frame
	clock      *core.Clock
	stats      render.FrameStats
	frames     int
	exhausted  int64
	paused     bool
	notice     string
	keys       ViewerKeyMap
	help       help.Model
	started    time.Time
	quitting   bool
	backToMenu bool
	recorded   bool
}

// NewModel creates a viewer for shape and renders its first frame.
func NewModel(shape scene.Shape, opts ViewerOptions) Model {
	if opts.Renderer == nil {
		opts.Renderer = render.Default()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Mode == "" {
		opts.Mode = ModePlay
	}

	m := Model{
		opts:    opts,
		shape:   shape,
		frame:   core.NewFrame(opts.Width, opts.Height),
		clock:   core.NewClock(opts.Start, opts.Interval),
		keys:    DefaultViewerKeyMap(),
		help:    help.New(),
		started: time.Now(),
	}
	m.renderFrame()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.clock.Step())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.Action(msg))

	case tea.WindowSizeMsg:
		// The frame size is fixed; only the help bar follows the terminal.
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the animation unless paused.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.paused {
		m.clock.Advance()
		m.renderFrame()
	}
	return m, tickCmd(m.clock.Step())
}

// handleAction applies a viewer action.
func (m Model) handleAction(action core.Action) (tea.Model, tea.Cmd) {
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.recordRun()
		return m, tea.Quit

	case core.ActionBack:
		if m.opts.AllowBack {
			m.backToMenu = true
			m.recordRun()
		}

	case core.ActionPause:
		m.paused = !m.paused
		m.notice = ""

	case core.ActionStep:
		if m.paused {
			m.clock.Advance()
			m.renderFrame()
		}

	case core.ActionReset:
		m.clock = core.NewClock(0, m.clock.Step())
		m.renderFrame()

	case core.ActionNextShape:
		next, err := registry.Get(registry.Next(m.shape.ID()))
		if err != nil {
			m.notice = err.Error()
			break
		}
		m.shape = next
		m.renderFrame()

	case core.ActionSnapshot:
		m.notice = m.saveSnapshot()
	}

	return m, nil
}

// renderFrame redraws the frame at the current clock.
func (m *Model) renderFrame() {
	m.stats = m.opts.Renderer.Render(render.FrameContext{
		Time:   m.clock.Seconds(),
		Params: m.opts.Params,
		Shape:  m.shape,
		Frame:  m.frame,
	})
	m.frames++
	m.exhausted += int64(m.stats.Exhausted)
}

// saveSnapshot stores the current frame and returns a status notice.
func (m *Model) saveSnapshot() string {
	if m.opts.Store == nil {
		return "no database, snapshot not saved"
	}

	id, err := m.opts.Store.SaveSnapshot(storage.Snapshot{
		ShapeID:   m.shape.ID(),
		ElapsedMS: m.clock.Millis(),
		Width:     m.frame.Width(),
		Height:    m.frame.Height(),
		Content:   m.frame.String(),
	})
	if err != nil {
		m.opts.Logger.Warn("snapshot failed", "error", err)
		return "snapshot failed"
	}
	return fmt.Sprintf("saved snapshot #%d", id)
}

// recordRun stores the session in history once.
func (m *Model) recordRun() {
	if m.recorded || m.opts.Store == nil {
		return
	}
	m.recorded = true

	_, err := m.opts.Store.SaveRun(storage.Run{
		ShapeID:       m.shape.ID(),
		Mode:          m.opts.Mode,
		Frames:        m.frames,
		ExhaustedRays: m.exhausted,
		DurationSecs:  int(time.Since(m.started).Seconds()),
	})
	if err != nil {
		m.opts.Logger.Warn("could not record run", "error", err)
	}
}

// View renders the current frame with a status line and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.frame.Lines())
	b.WriteString("\n\n")
	b.WriteString(statusLine(m.shape.Title(), m.clock.Seconds(), m.frames, m.stats, m.paused))
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Frame returns the frame buffer currently displayed.
func (m Model) Frame() *core.Frame {
	return m.frame
}

// ShapeID returns the shape being rendered.
func (m Model) ShapeID() string {
	return m.shape.ID()
}

// Millis returns the animation clock.
func (m Model) Millis() int64 {
	return m.clock.Millis()
}

// Paused reports whether the clock is frozen.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea viewer for shape.
func Run(shape scene.Shape, opts ViewerOptions) error {
	p := tea.NewProgram(
		NewModel(shape, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

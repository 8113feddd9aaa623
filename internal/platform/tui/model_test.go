package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-raymarch/internal/render"
	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/shapes"
	"github.com/vovakirdan/tui-raymarch/internal/storage"
)

func testViewerOptions() ViewerOptions {
	return ViewerOptions{
		Renderer: render.Default(),
		Params:   scene.DefaultParams(),
		Width:    16,
		Height:   8,
		Interval: 33 * time.Millisecond,
	}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "tui.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// send applies msg and returns the updated viewer.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	viewer, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return viewer, cmd
}

func TestModelRendersFirstFrame(t *testing.T) {
	m := NewModel(shapes.Torus{}, testViewerOptions())

	want := render.Default().RenderString(shapes.Torus{}, scene.DefaultParams(), 0, 16, 8)
	if got := m.Frame().String(); got != want {
		t.Errorf("initial frame differs from a render at t=0:\n%s", got)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelTickAdvancesClock(t *testing.T) {
	m := NewModel(shapes.Torus{}, testViewerOptions())

	m, cmd := send(t, m, TickMsg(time.Now()))
	if m.Millis() != 33 {
		t.Errorf("Millis = %d after one tick, want 33", m.Millis())
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	want := render.Default().RenderString(shapes.Torus{}, scene.DefaultParams(), 0.033, 16, 8)
	if m.Frame().String() != want {
		t.Error("frame after one tick should match a render at t=0.033")
	}
}

func TestModelPauseAndStep(t *testing.T) {
	m := NewModel(shapes.Torus{}, testViewerOptions())

	m, _ = send(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("expected paused after p")
	}

	m, _ = send(t, m, TickMsg(time.Now()))
	if m.Millis() != 0 {
		t.Errorf("paused clock moved to %d", m.Millis())
	}

	m, _ = send(t, m, runeKey('.'))
	if m.Millis() != 33 {
		t.Errorf("step should advance one frame, got %d", m.Millis())
	}

	m, _ = send(t, m, runeKey('p'))
	if m.Paused() {
		t.Error("expected resumed after second p")
	}

	// Step is ignored while running.
	m, _ = send(t, m, runeKey('.'))
	if m.Millis() != 33 {
		t.Errorf("step while running moved clock to %d", m.Millis())
	}
}

func TestModelReset(t *testing.T) {
	opts := testViewerOptions()
	opts.Start = 2 * time.Second
	m := NewModel(shapes.Torus{}, opts)

	m, _ = send(t, m, runeKey('r'))
	if m.Millis() != 0 {
		t.Errorf("Millis = %d after rewind, want 0", m.Millis())
	}
}

func TestModelNextShape(t *testing.T) {
	m := NewModel(shapes.Torus{}, testViewerOptions())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ShapeID() != "sphere" {
		t.Errorf("ShapeID = %q after tab, want sphere", m.ShapeID())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.ShapeID() != "torus" {
		t.Errorf("ShapeID = %q after second tab, want torus", m.ShapeID())
	}
}

func TestModelSnapshotAndRunHistory(t *testing.T) {
	store := openTestStore(t)
	opts := testViewerOptions()
	opts.Store = store
	m := NewModel(shapes.Torus{}, opts)

	m, _ = send(t, m, TickMsg(time.Now()))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	snaps, err := store.Snapshots("torus", 10)
	if err != nil {
		t.Fatalf("Snapshots() failed: %v", err)
	}
	if len(snaps) != 1 {
		t.Fatalf("expected 1 snapshot, got %d", len(snaps))
	}
	if snaps[0].ElapsedMS != 33 || snaps[0].Content != m.Frame().String() {
		t.Errorf("snapshot = %+v, want the frame at 33ms", snaps[0])
	}

	m, cmd := send(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quit")
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Frames != 2 || runs[0].Mode != ModePlay {
		t.Errorf("runs = %+v, want one play run of 2 frames", runs)
	}
}

func TestModelSnapshotWithoutStore(t *testing.T) {
	m := NewModel(shapes.Torus{}, testViewerOptions())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.notice == "" {
		t.Error("expected a notice when no database is configured")
	}
}

func TestModelBack(t *testing.T) {
	m := NewModel(shapes.Torus{}, testViewerOptions())
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored outside a menu flow")
	}

	opts := testViewerOptions()
	opts.AllowBack = true
	m = NewModel(shapes.Torus{}, opts)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should return to the menu when allowed")
	}
}

func TestModelViewIncludesFrame(t *testing.T) {
	m := NewModel(shapes.Sphere{}, testViewerOptions())
	view := m.View()
	if len(view) < len(m.Frame().Lines()) || view[:len(m.Frame().Lines())] != m.Frame().Lines() {
		t.Error("View should start with the frame")
	}
}

package registry

import (
	"testing"

	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/vmath"
)

type stubShape struct{ id string }

func (s stubShape) ID() string    { return s.id }
func (s stubShape) Title() string { return "Stub " + s.id }
func (s stubShape) Distance(p vmath.Vec3, _ scene.Params, _ float32) float32 {
	return p.Length()
}

func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := shapes
	shapes = make(map[string]scene.Shape)
	mu.Unlock()

	t.Cleanup(func() {
		mu.Lock()
		shapes = saved
		mu.Unlock()
	})
}

func TestRegisterAndGet(t *testing.T) {
	withCleanRegistry(t)

	Register(stubShape{id: "b"})
	Register(stubShape{id: "a"})

	if !Exists("a") || !Exists("b") {
		t.Fatal("registered shapes should exist")
	}
	if Exists("c") {
		t.Error("unregistered shape should not exist")
	}

	s, err := Get("a")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if s.Title() != "Stub a" {
		t.Errorf("Title() = %q, expected %q", s.Title(), "Stub a")
	}

	if _, err := Get("missing"); err == nil {
		t.Error("Get() of unknown shape should fail")
	}
}

func TestListSorted(t *testing.T) {
	withCleanRegistry(t)

	Register(stubShape{id: "zeta"})
	Register(stubShape{id: "alpha"})
	Register(stubShape{id: "mid"})

	list := List()
	if len(list) != 3 {
		t.Fatalf("List() returned %d shapes, expected 3", len(list))
	}
	expected := []string{"alpha", "mid", "zeta"}
	for i, info := range list {
		if info.ID != expected[i] {
			t.Errorf("List()[%d] = %q, expected %q", i, info.ID, expected[i])
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withCleanRegistry(t)

	Register(stubShape{id: "dup"})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(stubShape{id: "dup"})
}

func TestNextWraps(t *testing.T) {
	withCleanRegistry(t)

	Register(stubShape{id: "a"})
	Register(stubShape{id: "b"})

	if got := Next("a"); got != "b" {
		t.Errorf("Next(a) = %q, expected b", got)
	}
	if got := Next("b"); got != "a" {
		t.Errorf("Next(b) = %q, expected a", got)
	}
	if got := Next("unknown"); got != "a" {
		t.Errorf("Next(unknown) = %q, expected a", got)
	}
}

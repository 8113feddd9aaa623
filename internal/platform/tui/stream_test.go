package tui

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-raymarch/internal/render"
	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/shapes"
)

// recordingWriter keeps every Write call separately.
type recordingWriter struct {
	writes [][]byte
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.writes = append(w.writes, append([]byte(nil), p...))
	return len(p), nil
}

type failingWriter struct{}

var errSinkClosed = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errSinkClosed
}

func testStreamOptions() StreamOptions {
	return StreamOptions{
		Renderer: render.Default(),
		Shape:    shapes.Torus{},
		Params:   scene.DefaultParams(),
		Width:    16,
		Height:   8,
		Interval: time.Millisecond,
	}
}

func TestStreamWritesOneChunkPerFrame(t *testing.T) {
	w := &recordingWriter{}
	opts := testStreamOptions()
	opts.MaxFrames = 3

	summary, err := Stream(context.Background(), w, opts)
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}

	if summary.Frames != 3 {
		t.Errorf("Frames = %d, want 3", summary.Frames)
	}
	if len(w.writes) != 3 {
		t.Fatalf("writes = %d, want 3", len(w.writes))
	}

	wantLen := len(CursorHome) + (16+1)*8
	for i, chunk := range w.writes {
		if len(chunk) != wantLen {
			t.Errorf("write %d: len = %d, want %d", i, len(chunk), wantLen)
		}
		if !bytes.HasPrefix(chunk, []byte(CursorHome)) {
			t.Errorf("write %d does not start with cursor home", i)
		}
		if chunk[len(chunk)-1] != '\n' {
			t.Errorf("write %d does not end with a line terminator", i)
		}
	}
}

func TestStreamFramesFollowTheClock(t *testing.T) {
	w := &recordingWriter{}
	opts := testStreamOptions()
	opts.Interval = 33 * time.Millisecond
	opts.MaxFrames = 2

	summary, err := Stream(context.Background(), w, opts)
	if err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}

	r := render.Default()
	for i, chunk := range w.writes {
		ts := float32(i) * 0.033
		want := CursorHome + r.RenderString(shapes.Torus{}, scene.DefaultParams(), ts, 16, 8)
		if string(chunk) != want {
			t.Errorf("frame %d does not match a render at t=%v", i, ts)
		}
	}

	if summary.Clock != 66*time.Millisecond {
		t.Errorf("Clock = %v, want 66ms", summary.Clock)
	}
	total := summary.Hits + summary.Escaped + summary.Exhausted
	if total != 2*16*8 {
		t.Errorf("traced %d rays, want %d", total, 2*16*8)
	}
}

func TestStreamStartOffset(t *testing.T) {
	w := &recordingWriter{}
	opts := testStreamOptions()
	opts.Start = time.Second
	opts.MaxFrames = 1

	if _, err := Stream(context.Background(), w, opts); err != nil {
		t.Fatalf("Stream() failed: %v", err)
	}

	want := CursorHome + render.Default().RenderString(shapes.Torus{}, scene.DefaultParams(), 1, 16, 8)
	if string(w.writes[0]) != want {
		t.Error("first frame should be rendered at the start offset")
	}
}

func TestStreamCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := &recordingWriter{}
	summary, err := Stream(ctx, w, testStreamOptions())
	if err != nil {
		t.Fatalf("cancellation should not be an error, got %v", err)
	}
	if summary.Frames != 0 || len(w.writes) != 0 {
		t.Errorf("expected no frames after cancellation, got %d", summary.Frames)
	}
}

func TestStreamStopsOnCancelWhileSleeping(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	opts := testStreamOptions()
	opts.Interval = time.Hour

	done := make(chan RunSummary, 1)
	go func() {
		summary, _ := Stream(ctx, &recordingWriter{}, opts)
		done <- summary
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case summary := <-done:
		if summary.Frames != 1 {
			t.Errorf("Frames = %d, want 1", summary.Frames)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Stream did not return after cancellation")
	}
}

func TestStreamWriteError(t *testing.T) {
	_, err := Stream(context.Background(), failingWriter{}, testStreamOptions())
	if !errors.Is(err, errSinkClosed) {
		t.Errorf("expected wrapped write error, got %v", err)
	}
}

package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raymarch/internal/core"
	"github.com/vovakirdan/tui-raymarch/internal/render"
	"github.com/vovakirdan/tui-raymarch/internal/scene"
)

// statsEvery is how many frames pass between debug stat lines.
const statsEvery = 100

// StreamOptions configures a raw frame stream.
type StreamOptions struct {
	Renderer  *render.Renderer
	Shape     scene.Shape
	Params    scene.Params
	Width     int
	Height    int
	Interval  time.Duration // Clock step and sleep between frames
	Start     time.Duration // Initial clock value
	MaxFrames int           // 0 streams until the context ends
	Logger    *log.Logger
}

// RunSummary totals a finished stream.
type RunSummary struct {
	Frames    int
	Hits      int64
	Escaped   int64
	Exhausted int64
	Clock     time.Duration // Animation time reached
	Wall      time.Duration
}

func (s *RunSummary) add(fs render.FrameStats) {
	s.Frames++
	s.Hits += int64(fs.Hits)
	s.Escaped += int64(fs.Escaped)
	s.Exhausted += int64(fs.Exhausted)
}

// Stream renders frames to w until ctx is done or MaxFrames is reached.
// Each frame is the cursor-home sequence followed by the frame buffer,
// emitted as a single write. The clock then advances by Interval and the
// loop sleeps for Interval. Cancellation is a normal exit.
func Stream(ctx context.Context, w io.Writer, opts StreamOptions) (RunSummary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := opts.Renderer
	if r == nil {
		r = render.Default()
	}

	frame := core.NewFrame(opts.Width, opts.Height)
	clock := core.NewClock(opts.Start, opts.Interval)
	buf := make([]byte, 0, len(CursorHome)+len(frame.Bytes()))

	timer := time.NewTimer(clock.Step())
	defer timer.Stop()

	var summary RunSummary
	started := time.Now()
	finish := func() RunSummary {
		summary.Clock = time.Duration(clock.Millis()) * time.Millisecond
		summary.Wall = time.Since(started)
		return summary
	}

	logger.Info("stream started",
		"shape", opts.Shape.ID(),
		"size", fmt.Sprintf("%dx%d", frame.Width(), frame.Height()),
		"step", clock.Step(),
	)

	for {
		if ctx.Err() != nil {
			break
		}

		stats := r.Render(render.FrameContext{
			Time:   clock.Seconds(),
			Params: opts.Params,
			Shape:  opts.Shape,
			Frame:  frame,
		})

		buf = appendFrame(buf[:0], frame)
		if _, err := w.Write(buf); err != nil {
			return finish(), fmt.Errorf("tui: write frame: %w", err)
		}

		clock.Advance()
		summary.add(stats)

		if summary.Frames%statsEvery == 0 {
			logger.Debug("frame stats",
				"frame", summary.Frames,
				"hits", stats.Hits,
				"escaped", stats.Escaped,
				"exhausted", stats.Exhausted,
				"render", stats.RenderTime,
			)
		}

		if opts.MaxFrames > 0 && summary.Frames >= opts.MaxFrames {
			break
		}

		timer.Reset(clock.Step())
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}

	out := finish()
	logger.Info("stream stopped", "frames", out.Frames, "exhausted", out.Exhausted, "wall", out.Wall.Round(time.Millisecond))
	return out, nil
}

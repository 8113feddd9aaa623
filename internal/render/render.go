// Package render turns a scene into a frame of density glyphs: one camera
// ray per cell, sphere traced and shaded by a single point light.
package render

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-raymarch/internal/config"
	"github.com/vovakirdan/tui-raymarch/internal/core"
	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/tracer"
	"github.com/vovakirdan/tui-raymarch/internal/vmath"
)

// FrameContext carries everything one frame depends on.
type FrameContext struct {
	Time   float32 // Animation clock in seconds
	Params scene.Params
	Shape  scene.Shape
	Frame  *core.Frame // Destination, fully overwritten
}

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	Hits       int
	Escaped    int
	Exhausted  int // Rays that ran out of steps; shaded as distant hits
	RenderTime time.Duration
}

func (s *FrameStats) add(o FrameStats) {
	s.Hits += o.Hits
	s.Escaped += o.Escaped
	s.Exhausted += o.Exhausted
}

func (s *FrameStats) record(o tracer.Outcome) {
	switch o {
	case tracer.OutcomeHit:
		s.Hits++
	case tracer.OutcomeEscaped:
		s.Escaped++
	case tracer.OutcomeExhausted:
		s.Exhausted++
	}
}

// Renderer holds the fixed camera, light and tracer settings.
type Renderer struct {
	Tracer  tracer.Tracer
	Camera  Camera
	Light   vmath.Vec3
	Ramp    Ramp
	Workers int // Goroutines splitting rows; <= 1 renders sequentially
}

// Default returns a renderer with stock settings.
func Default() *Renderer {
	return &Renderer{
		Tracer:  tracer.Default(),
		Camera:  DefaultCamera(),
		Light:   DefaultLight,
		Ramp:    DefaultRamp,
		Workers: 1,
	}
}

// New builds a renderer from configuration.
func New(cfg config.Config) *Renderer {
	return &Renderer{
		Tracer: tracer.Tracer{
			MaxDistance: cfg.Tracer.MaxDistance,
			Epsilon:     cfg.Tracer.Epsilon,
			MaxSteps:    cfg.Tracer.MaxSteps,
			NormalStep:  cfg.Tracer.NormalStep,
		},
		Camera: Camera{
			Origin:  vec(cfg.Camera.Origin),
			TargetZ: cfg.Camera.TargetZ,
			AspectX: cfg.Camera.AspectX,
		},
		Light:   vec(cfg.Shading.Light),
		Ramp:    Ramp(cfg.Shading.Ramp),
		Workers: cfg.Display.Workers,
	}
}

// ParamsFromConfig extracts scene parameters from configuration.
func ParamsFromConfig(cfg config.Config) scene.Params {
	return scene.Params{
		SphereRadius:     cfg.Scene.SphereRadius,
		TorusMajorRadius: cfg.Scene.TorusMajorRadius,
		TorusTubeWidth:   cfg.Scene.TorusTubeWidth,
		SpinRate:         cfg.Scene.SpinRate,
		Tilt:             cfg.Scene.Tilt,
	}
}

func vec(a [3]float32) vmath.Vec3 {
	return vmath.V3(a[0], a[1], a[2])
}

// Render traces every cell of fc.Frame. Rows are independent, so with
// Workers > 1 they are split across goroutines writing disjoint rows and
// the output is identical to the sequential path.
func (r *Renderer) Render(fc FrameContext) FrameStats {
	start := time.Now()
	field := scene.Bind(fc.Shape, fc.Params, fc.Time)
	h := fc.Frame.Height()

	workers := r.Workers
	if workers > h {
		workers = h
	}

	var stats FrameStats
	if workers <= 1 {
		stats = r.renderRows(field, fc.Frame, 0, 1)
	} else {
		partial := make([]FrameStats, workers)
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(w int) {
				defer wg.Done()
				partial[w] = r.renderRows(field, fc.Frame, w, workers)
			}(w)
		}
		wg.Wait()
		for _, p := range partial {
			stats.add(p)
		}
	}

	stats.RenderTime = time.Since(start)
	return stats
}

// renderRows renders rows first, first+stride, ... of dst.
func (r *Renderer) renderRows(field scene.Field, dst *core.Frame, first, stride int) FrameStats {
	var stats FrameStats
	w, h := dst.Width(), dst.Height()
	for y := first; y < h; y += stride {
		for x := 0; x < w; x++ {
			rd := r.Camera.Ray(x, y, w, h)
			hit := r.Tracer.Trace(field, r.Camera.Origin, rd)
			stats.record(hit.Outcome)
			dst.Set(x, y, Shade(hit, r.Tracer, r.Light, r.Ramp))
		}
	}
	return stats
}

// RenderString renders one frame into a fresh w×h grid and returns the
// buffer including line terminators.
func (r *Renderer) RenderString(shape scene.Shape, params scene.Params, t float32, w, h int) string {
	frame := core.NewFrame(w, h)
	r.Render(FrameContext{Time: t, Params: params, Shape: shape, Frame: frame})
	return frame.String()
}

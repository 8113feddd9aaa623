// Package tracer implements sphere tracing against a scene distance field.
package tracer

import (
	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/vmath"
)

// Default marching limits.
const (
	MaxRayDistance = 20.0
	Epsilon        = 0.01
	MaxSteps       = 100
	NormalStep     = 0.01
)

// Outcome records why a march stopped.
type Outcome uint8

const (
	OutcomeHit       Outcome = iota // Came within epsilon of the surface
	OutcomeEscaped                  // Travelled past the maximum distance
	OutcomeExhausted                // Ran out of steps without either
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// RayHit is the result of one trace.
type RayHit struct {
	Distance float32    // Distance travelled, saturated at the maximum
	Normal   vmath.Vec3 // Last sampled surface normal
	Position vmath.Vec3 // Last sampled point along the ray
	Steps    int        // Iterations consumed
	Outcome  Outcome
}

// Tracer holds the marching limits.
type Tracer struct {
	MaxDistance float32
	Epsilon     float32
	MaxSteps    int
	NormalStep  float32
}

// Default returns a tracer with the stock limits.
func Default() Tracer {
	return Tracer{
		MaxDistance: MaxRayDistance,
		Epsilon:     Epsilon,
		MaxSteps:    MaxSteps,
		NormalStep:  NormalStep,
	}
}

// Trace marches from origin along dir, which must be unit length, until the
// field is within Epsilon, the walk passes MaxDistance, or MaxSteps is spent.
//
// A walk that runs out of steps keeps the distance actually travelled rather
// than saturating, so it shades as a distant hit and not as background.
func (tr Tracer) Trace(f scene.Field, origin, dir vmath.Vec3) RayHit {
	var hit RayHit
	walked := float32(0)

	for step := 0; step < tr.MaxSteps; step++ {
		p := origin.Add(dir.Scale(walked))
		d := f.Distance(p)

		hit.Position = p
		hit.Normal = scene.Normal(f, p, tr.NormalStep)
		hit.Steps = step + 1

		if d <= tr.Epsilon {
			hit.Distance = walked
			hit.Outcome = OutcomeHit
			return hit
		}

		walked += d
		if walked > tr.MaxDistance {
			hit.Distance = tr.MaxDistance
			hit.Outcome = OutcomeEscaped
			return hit
		}
	}

	hit.Distance = walked
	hit.Outcome = OutcomeExhausted
	return hit
}

// Miss reports whether hit is background. Only an exact saturated distance
// counts; exhausted walks are shaded.
func (tr Tracer) Miss(hit RayHit) bool {
	return hit.Distance == tr.MaxDistance
}

// Trace runs the default tracer.
func Trace(f scene.Field, origin, dir vmath.Vec3) RayHit {
	return Default().Trace(f, origin, dir)
}

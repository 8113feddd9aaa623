// Package scene defines the implicit surface rendered each frame: signed
// distance primitives, the Shape contract that animates them, and the
// finite-difference surface normal derived from any distance field.
package scene

import (
	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-raymarch/internal/vmath"
)

// Params configures the implicit surface. Read-only while a frame renders.
type Params struct {
	SphereRadius     float32 // Radius of the sphere primitive
	TorusMajorRadius float32 // Distance from the Y axis to the tube center
	TorusTubeWidth   float32 // Radius of the tube itself
	SpinRate         float32 // Degrees per second about Y
	Tilt             float32 // Fixed degrees about X applied after the spin
}

// DefaultParams returns the stock scene parameters.
func DefaultParams() Params {
	return Params{
		SphereRadius:     1.0,
		TorusMajorRadius: 1.5,
		TorusTubeWidth:   0.5,
		SpinRate:         90,
		Tilt:             90,
	}
}

// SphereDistance is the exact SDF of a sphere of radius r centered at the origin.
func SphereDistance(p vmath.Vec3, r float32) float32 {
	return p.Length() - r
}

// TorusDistance is the exact SDF of a torus lying in the XZ plane.
func TorusDistance(p vmath.Vec3, major, tube float32) float32 {
	q := vmath.Vec2{
		X: math32.Sqrt(p.X*p.X+p.Z*p.Z) - major,
		Y: p.Y,
	}
	return q.Length() - tube
}

// Shape is an animated primitive. Distance must be a pure function of its
// arguments so frames can be re-rendered and parallelized freely.
type Shape interface {
	// ID returns a unique identifier (e.g., "torus").
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Distance evaluates the signed distance at p for clock time t (seconds).
	Distance(p vmath.Vec3, params Params, t float32) float32
}

// Field is a distance field frozen at one instant.
type Field interface {
	Distance(p vmath.Vec3) float32
}

// FieldFunc adapts a plain function to Field.
type FieldFunc func(p vmath.Vec3) float32

// Distance calls f(p).
func (f FieldFunc) Distance(p vmath.Vec3) float32 {
	return f(p)
}

// Bind freezes a shape at time t with the given parameters.
func Bind(shape Shape, params Params, t float32) Field {
	return FieldFunc(func(p vmath.Vec3) float32 {
		return shape.Distance(p, params, t)
	})
}

// Normal estimates the unit gradient of f at p using forward differences.
// Accuracy is bounded by step; callers keep step > 0 so the gradient never
// collapses to zero away from degenerate points.
func Normal(f Field, p vmath.Vec3, step float32) vmath.Vec3 {
	d := f.Distance(p)
	n := vmath.Vec3{
		X: f.Distance(p.Add(vmath.Vec3{X: step})) - d,
		Y: f.Distance(p.Add(vmath.Vec3{Y: step})) - d,
		Z: f.Distance(p.Add(vmath.Vec3{Z: step})) - d,
	}
	return n.Normalize()
}

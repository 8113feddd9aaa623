// Package shapes contains the built-in animated primitives.
// Each shape registers itself with the registry on import.
package shapes

import (
	"github.com/vovakirdan/tui-raymarch/internal/registry"
	"github.com/vovakirdan/tui-raymarch/internal/scene"
	"github.com/vovakirdan/tui-raymarch/internal/vmath"
)

func init() {
	registry.Register(Torus{})
	registry.Register(Sphere{})
}

// Torus is a torus spinning about Y, tilted about X so its axis faces the
// camera at t = 0.
type Torus struct{}

// ID returns the unique identifier for this shape.
func (Torus) ID() string { return "torus" }

// Title returns the display name for this shape.
func (Torus) Title() string { return "Spinning Torus" }

// Distance rotates p about Y by t*SpinRate, then about X by the fixed Tilt,
// and evaluates the torus SDF in that frame.
func (Torus) Distance(p vmath.Vec3, params scene.Params, t float32) float32 {
	p = vmath.RotateY(p, vmath.Radians(t*params.SpinRate))
	p = vmath.RotateX(p, vmath.Radians(params.Tilt))
	return scene.TorusDistance(p, params.TorusMajorRadius, params.TorusTubeWidth)
}

// Sphere is a static sphere centered at the origin.
type Sphere struct{}

// ID returns the unique identifier for this shape.
func (Sphere) ID() string { return "sphere" }

// Title returns the display name for this shape.
func (Sphere) Title() string { return "Sphere" }

// Distance evaluates the sphere SDF. Rotation leaves a sphere unchanged, so
// time is ignored.
func (Sphere) Distance(p vmath.Vec3, params scene.Params, _ float32) float32 {
	return scene.SphereDistance(p, params.SphereRadius)
}

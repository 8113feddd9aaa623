package render

import (
	"github.com/chewxy/math32"

	"github.com/vovakirdan/tui-raymarch/internal/tracer"
	"github.com/vovakirdan/tui-raymarch/internal/vmath"
)

// Background is the glyph for rays that miss the surface.
const Background = ' '

// DefaultRamp orders glyphs by increasing visual weight.
const DefaultRamp Ramp = ".:+*=#%@"

// DefaultLight is the fixed point light position.
var DefaultLight = vmath.V3(-1, 4, -2)

// Ramp is an ordered set of density glyphs.
type Ramp string

// Glyph maps an intensity in [0, 1] to a glyph. Intensity 1 selects the
// last glyph rather than running off the end.
func (r Ramp) Glyph(intensity float32) byte {
	if len(r) == 0 {
		return Background
	}
	idx := int(math32.Floor(intensity * float32(len(r))))
	if idx < 0 {
		idx = 0
	}
	if idx > len(r)-1 {
		idx = len(r) - 1
	}
	return r[idx]
}

// Shade converts a trace result into a glyph.
func Shade(hit tracer.RayHit, tr tracer.Tracer, light vmath.Vec3, ramp Ramp) byte {
	if tr.Miss(hit) {
		return Background
	}

	// Direction from the light to the surface point.
	lightDir := hit.Position.Sub(light).Normalize()
	intensity := vmath.Clamp(lightDir.Dot(hit.Normal), 0, 1)
	return ramp.Glyph(intensity)
}

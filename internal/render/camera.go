package render

import "github.com/vovakirdan/tui-raymarch/internal/vmath"

// Camera is a fixed pinhole camera looking down -Z.
type Camera struct {
	Origin  vmath.Vec3
	TargetZ float32 // Z of the image plane the rays pass through
	AspectX float32 // Horizontal stretch compensating for tall glyph cells
}

// DefaultCamera returns the stock camera at (0, 0, 6).
func DefaultCamera() Camera {
	return Camera{
		Origin:  vmath.V3(0, 0, 6),
		TargetZ: 4,
		AspectX: 1.5,
	}
}

// Ray returns the unit direction for pixel (x, y) of a w×h grid.
// Device coordinates span [-AspectX, AspectX] horizontally and [-1, 1]
// vertically. The direction is never zero while TargetZ != Origin.Z.
func (c Camera) Ray(x, y, w, h int) vmath.Vec3 {
	halfW, halfH := float32(w)/2, float32(h)/2
	fx := (float32(x) - halfW) / halfW * c.AspectX
	fy := (float32(y) - halfH) / halfH
	return vmath.V3(fx, fy, c.TargetZ).Sub(c.Origin).Normalize()
}

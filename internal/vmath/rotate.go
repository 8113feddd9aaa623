package vmath

import "github.com/chewxy/math32"

// Clamp restricts f to [lo, hi].
func Clamp(f, lo, hi float32) float32 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg / 180 * math32.Pi
}

// RotateX rotates v about the X axis by angle radians.
func RotateX(v Vec3, angle float32) Vec3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

// RotateY rotates v about the Y axis by angle radians.
// Positive angles carry +X toward +Z.
func RotateY(v Vec3, angle float32) Vec3 {
	s, c := math32.Sin(angle), math32.Cos(angle)
	return Vec3{
		X: v.X*c - v.Z*s,
		Y: v.Y,
		Z: v.X*s + v.Z*c,
	}
}

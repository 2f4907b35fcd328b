package core

import (
	"math"

	"github.com/golang/geo/r3"
)

// Vec3 is the point/vector/color type shared by every package. It is the
// golang/geo float64 vector so callers get Add, Sub, Mul, Dot, Cross, Norm and
// Normalize for free.
type Vec3 = r3.Vector

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Component returns the coordinate of v along axis (0=X, 1=Y, 2=Z)
func Component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns a copy of v with the given axis replaced
func WithComponent(v Vec3, axis int, value float64) Vec3 {
	switch axis {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}
	return v
}

// MinVec returns the component-wise minimum of two vectors
func MinVec(a, b Vec3) Vec3 {
	return Vec3{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

// MaxVec returns the component-wise maximum of two vectors
func MaxVec(a, b Vec3) Vec3 {
	return Vec3{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}

// RotateY rotates v around the vertical axis. sin and cos are those of the
// rotation angle; a positive angle turns +X towards -Z.
func RotateY(v Vec3, sin, cos float64) Vec3 {
	return Vec3{
		X: cos*v.X + sin*v.Z,
		Y: v.Y,
		Z: -sin*v.X + cos*v.Z,
	}
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

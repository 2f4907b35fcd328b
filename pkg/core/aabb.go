package core

import "math"

// PadDelta is the minimum thickness Pad enforces on every axis
const PadDelta = 1e-4

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB contains nothing and is the identity for Merge
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates an AABB from its three axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates an AABB that bounds all given points. Points are
// treated as extrema, so the order of corners does not matter.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return EmptyAABB
	}

	min := points[0]
	max := points[0]
	for _, point := range points[1:] {
		min = MinVec(min, point)
		max = MaxVec(max, point)
	}

	return NewAABB(
		Interval{Min: min.X, Max: max.X},
		Interval{Min: min.Y, Max: max.Y},
		Interval{Min: min.Z, Max: max.Z},
	)
}

// Merge returns the box containing both a and b
func Merge(a, b AABB) AABB {
	return NewAABB(a.X.Union(b.X), a.Y.Union(b.Y), a.Z.Union(b.Z))
}

// Axis returns the interval for axis (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return aabb.X
	case 1:
		return aabb.Y
	default:
		return aabb.Z
	}
}

// Min returns the minimum corner
func (aabb AABB) Min() Vec3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Vec3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Pad widens any axis thinner than PadDelta so planar primitives keep a
// non-degenerate slab
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() < PadDelta {
			return i.Expand(PadDelta - i.Size())
		}
		return i
	}
	return NewAABB(pad(aabb.X), pad(aabb.Y), pad(aabb.Z))
}

// Offset returns the box translated by v
func (aabb AABB) Offset(v Vec3) AABB {
	return NewAABB(aabb.X.Shift(v.X), aabb.Y.Shift(v.Y), aabb.Z.Shift(v.Z))
}

// Corners returns the eight corners of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		x, y, z := aabb.X.Min, aabb.Y.Min, aabb.Z.Min
		if i&1 != 0 {
			x = aabb.X.Max
		}
		if i&2 != 0 {
			y = aabb.Y.Max
		}
		if i&4 != 0 {
			z = aabb.Z.Max
		}
		corners[i] = NewVec3(x, y, z)
	}
	return corners
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min().Add(aabb.Max()).Mul(0.5)
}

// Size returns the extent of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return NewVec3(aabb.X.Size(), aabb.Y.Size(), aabb.Z.Size())
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsEmpty reports whether any axis is empty
func (aabb AABB) IsEmpty() bool {
	return aabb.X.IsEmpty() || aabb.Y.IsEmpty() || aabb.Z.IsEmpty()
}

// Hit tests if a ray overlaps the box within rayT using the slab method. It
// only prunes; no point or normal is produced.
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		origin := Component(ray.Origin, axis)
		invDirection := 1.0 / Component(ray.Direction, axis)

		// A zero direction component gives infinite t values, which the
		// min/max below handle unless the origin sits exactly on a slab plane.
		t0 := (slab.Min - origin) * invDirection
		t1 := (slab.Max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}
		if math.IsNaN(t0) || math.IsNaN(t1) {
			// origin on the plane of a slab the ray runs parallel to
			continue
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}
		if rayT.Max <= rayT.Min {
			return false
		}
	}
	return true
}

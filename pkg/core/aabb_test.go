package core

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func unitBox() AABB {
	return NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
}

func TestAABB_FromPointsIsOrderIndependent(t *testing.T) {
	a := NewAABBFromPoints(NewVec3(1, -1, 4), NewVec3(-2, 3, 0))
	b := NewAABBFromPoints(NewVec3(-2, 3, 0), NewVec3(1, -1, 4))
	test.That(t, a, test.ShouldResemble, b)
	test.That(t, a.Min(), test.ShouldResemble, NewVec3(-2, -1, 0))
	test.That(t, a.Max(), test.ShouldResemble, NewVec3(1, 3, 4))

	test.That(t, NewAABBFromPoints().IsEmpty(), test.ShouldBeTrue)
}

func TestAABB_Merge(t *testing.T) {
	a := unitBox()
	b := NewAABBFromPoints(NewVec3(2, -1, 0.5), NewVec3(3, 0.5, 0.7))

	merged := Merge(a, b)
	test.That(t, merged.Min(), test.ShouldResemble, NewVec3(0, -1, 0))
	test.That(t, merged.Max(), test.ShouldResemble, NewVec3(3, 1, 1))
	test.That(t, Merge(a, b), test.ShouldResemble, Merge(b, a))
	test.That(t, Merge(EmptyAABB, a), test.ShouldResemble, a)
}

func TestAABB_Pad(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 2), NewVec3(1, 1, 2))
	padded := flat.Pad()

	test.That(t, padded.X, test.ShouldResemble, flat.X)
	test.That(t, padded.Y, test.ShouldResemble, flat.Y)
	test.That(t, padded.Z.Size(), test.ShouldAlmostEqual, PadDelta, 1e-12)
	test.That(t, padded.Z.Contains(2), test.ShouldBeTrue)

	// already thick enough
	test.That(t, unitBox().Pad(), test.ShouldResemble, unitBox())
}

func TestAABB_OffsetAndCorners(t *testing.T) {
	box := unitBox().Offset(NewVec3(1, 2, 3))
	test.That(t, box.Min(), test.ShouldResemble, NewVec3(1, 2, 3))
	test.That(t, box.Max(), test.ShouldResemble, NewVec3(2, 3, 4))

	corners := box.Corners()
	test.That(t, NewAABBFromPoints(corners[:]...), test.ShouldResemble, box)
	seen := map[Vec3]bool{}
	for _, c := range corners {
		seen[c] = true
	}
	test.That(t, len(seen), test.ShouldEqual, 8)
}

func TestAABB_LongestAxis(t *testing.T) {
	test.That(t, NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(5, 1, 1)).LongestAxis(), test.ShouldEqual, 0)
	test.That(t, NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 5, 1)).LongestAxis(), test.ShouldEqual, 1)
	test.That(t, NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 5)).LongestAxis(), test.ShouldEqual, 2)
	test.That(t, unitBox().Center(), test.ShouldResemble, NewVec3(0.5, 0.5, 0.5))
}

func TestAABB_Hit(t *testing.T) {
	box := unitBox()
	forever := Interval{Min: 0, Max: math.Inf(1)}

	tests := []struct {
		name     string
		ray      Ray
		rayT     Interval
		expected bool
	}{
		{"straight through", NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1)), forever, true},
		{"negative direction", NewRay(NewVec3(0.5, 0.5, 3), NewVec3(0, 0, -1)), forever, true},
		{"diagonal", NewRay(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)), forever, true},
		{"miss to the side", NewRay(NewVec3(2, 0.5, -1), NewVec3(0, 0, 1)), forever, false},
		{"pointing away", NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, -1)), forever, false},
		{"interval ends before box", NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1)), Interval{Min: 0, Max: 0.5}, false},
		{"interval starts after box", NewRay(NewVec3(0.5, 0.5, -1), NewVec3(0, 0, 1)), Interval{Min: 3, Max: 10}, false},
		{"origin inside", NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(1, 0, 0)), forever, true},
		{"parallel outside slab", NewRay(NewVec3(0.5, 2, -1), NewVec3(0, 0, 1)), forever, false},
		{"parallel on slab face", NewRay(NewVec3(0.5, 1, -1), NewVec3(0, 0, 1)), forever, true},
		{"negative zero direction", NewRay(NewVec3(0.5, 0.5, -1), NewVec3(math.Copysign(0, -1), 0, 1)), forever, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.That(t, box.Hit(tt.ray, tt.rayT), test.ShouldEqual, tt.expected)
		})
	}
}

func TestAABB_HitPaddedPlane(t *testing.T) {
	flat := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 1, 0))
	ray := NewRay(NewVec3(0.5, 0.5, 1), NewVec3(0, 0, -1))
	forever := Interval{Min: 0, Max: math.Inf(1)}

	test.That(t, flat.Hit(ray, forever), test.ShouldBeFalse)
	test.That(t, flat.Pad().Hit(ray, forever), test.ShouldBeTrue)
}

func TestNewAABB_MatchesPoints(t *testing.T) {
	box := NewAABB(NewInterval(1, -1), Interval{Min: 0, Max: 2}, Interval{Min: -3, Max: 3})
	test.That(t, box, test.ShouldResemble, NewAABBFromPoints(NewVec3(-1, 0, -3), NewVec3(1, 2, 3)))
}

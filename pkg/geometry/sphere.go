package geometry

import (
	"math"

	"github.com/df07/go-hittable/pkg/core"
)

// Sphere represents a sphere whose center may move linearly over the
// exposure window
type Sphere struct {
	Center   core.Vec3 // Center at time 0
	Motion   core.Vec3 // Displacement of the center between time 0 and 1
	Radius   float64
	Material core.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere. Negative radii are clamped to 0.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return NewMovingSphere(center, center, radius, material)
}

// NewMovingSphere creates a sphere whose center travels from center1 at time 0
// to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, material core.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)

	// The box must cover the sphere at both ends of its path.
	start := core.NewAABBFromPoints(center1.Sub(rvec), center1.Add(rvec))
	end := core.NewAABBFromPoints(center2.Sub(rvec), center2.Add(rvec))

	return &Sphere{
		Center:   center1,
		Motion:   center2.Sub(center1),
		Radius:   radius,
		Material: material,
		bbox:     core.Merge(start, end),
	}
}

// IsMoving reports whether the center changes over time
func (s *Sphere) IsMoving() bool {
	return s.Motion != (core.Vec3{})
}

// CenterAt returns the center at the given ray time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	return s.Center.Add(s.Motion.Mul(time))
}

// Hit tests if a ray intersects with the sphere. A root is only accepted when
// it lies strictly inside rayT.
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, _ core.Sampler, rec *core.HitRecord) bool {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Sub(center)

	// Quadratic equation coefficients: at² + 2(halfB)t + c = 0
	a := ray.Direction.Norm2()
	halfB := oc.Dot(ray.Direction)
	c := oc.Norm2() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return false
		}
	}

	rec.T = root
	rec.Point = ray.At(root)
	outwardNormal := rec.Point.Sub(center).Mul(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)
	rec.Material = s.Material

	return true
}

// sphereUV maps a point on the unit sphere to texture coordinates. u runs
// around the Y axis starting at -X, v runs from -Y up to +Y.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// Kind returns core.KindSphere
func (s *Sphere) Kind() core.Kind {
	return core.KindSphere
}

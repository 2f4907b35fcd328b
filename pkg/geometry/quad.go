package geometry

import (
	"math"

	"github.com/df07/go-hittable/pkg/core"
)

// ParallelEpsilon is the smallest |normal·direction| a quad still intersects.
// Rays closer to grazing than this are reported as misses.
const ParallelEpsilon = 1e-8

// Quad represents a parallelogram defined by a corner and two edge vectors.
//
// Intersection uses the plane equation followed by projection onto the (U, V)
// edge basis; the hit point's (alpha, beta) coordinates in that basis become
// the surface parameters.
type Quad struct {
	Corner   core.Vec3     // One corner of the quad
	U        core.Vec3     // First edge vector
	V        core.Vec3     // Second edge vector
	Normal   core.Vec3     // Unit normal (U × V normalised)
	Material core.Material // Material of the quad
	D        float64       // Plane equation constant: normal · p = D
	W        core.Vec3     // n / (n · n) with n = U × V, for planar coordinates
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	var w core.Vec3
	if nn := n.Norm2(); nn > 0 {
		w = n.Mul(1.0 / nn)
	}

	// Both diagonals, so a quad with obtuse edges is still enclosed.
	diag1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diag2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        w,
		bbox:     core.Merge(diag1, diag2).Pad(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, _ core.Sampler, rec *core.HitRecord) bool {
	denominator := q.Normal.Dot(ray.Direction)

	// Parallel (or degenerate quad with a zero normal): no intersection
	if math.Abs(denominator) < ParallelEpsilon {
		return false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Sub(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))
	if !isInterior(alpha, beta) {
		return false
	}

	rec.T = t
	rec.Point = hitPoint
	rec.U, rec.V = alpha, beta
	rec.Material = q.Material
	rec.SetFaceNormal(ray, q.Normal)

	return true
}

// isInterior reports whether planar coordinates lie on the unit square
func isInterior(alpha, beta float64) bool {
	unit := core.Interval{Min: 0, Max: 1}
	return unit.Contains(alpha) && unit.Contains(beta)
}

// BoundingBox returns the padded box spanned by the quad's corners
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// Kind returns core.KindQuad
func (q *Quad) Kind() core.Kind {
	return core.KindQuad
}

package geometry

import (
	"math"

	"github.com/df07/go-hittable/pkg/core"
)

// Translate places an object at an offset from its own coordinates
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Offset(offset),
	}
}

// Hit moves the ray into object space, delegates, and moves the hit point back
func (tr *Translate) Hit(ray core.Ray, rayT core.Interval, s core.Sampler, rec *core.HitRecord) bool {
	offsetRay := core.NewRayAt(ray.Origin.Sub(tr.Offset), ray.Direction, ray.Time)
	if !tr.Object.Hit(offsetRay, rayT, s, rec) {
		return false
	}

	rec.Point = rec.Point.Add(tr.Offset)
	return true
}

// BoundingBox returns the wrapped object's box shifted by the offset
func (tr *Translate) BoundingBox() core.AABB {
	return tr.bbox
}

// Kind returns core.KindTranslate
func (tr *Translate) Kind() core.Kind {
	return core.KindTranslate
}

// Children returns the wrapped object
func (tr *Translate) Children() []core.Hittable {
	return []core.Hittable{tr.Object}
}

// RotateY turns an object around the vertical axis through the origin. Apply
// it before any Translate so the object pivots about its own center.
type RotateY struct {
	Object   core.Hittable
	Degrees  float64
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by the given angle in degrees
func NewRotateY(object core.Hittable, degrees float64) *RotateY {
	radians := core.DegreesToRadians(degrees)
	r := &RotateY{
		Object:   object,
		Degrees:  degrees,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// A rotated box is not axis aligned; enclose the rotated corners instead.
	box := object.BoundingBox()
	if box.IsEmpty() {
		r.bbox = box
		return r
	}
	corners := box.Corners()
	for i := range corners {
		corners[i] = core.RotateY(corners[i], r.sinTheta, r.cosTheta)
	}
	r.bbox = core.NewAABBFromPoints(corners[:]...)

	return r
}

// Hit rotates the ray into object space, delegates, and rotates the hit point
// and normal back into world space
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, s core.Sampler, rec *core.HitRecord) bool {
	local := core.NewRayAt(
		core.RotateY(ray.Origin, -r.sinTheta, r.cosTheta),
		core.RotateY(ray.Direction, -r.sinTheta, r.cosTheta),
		ray.Time,
	)
	if !r.Object.Hit(local, rayT, s, rec) {
		return false
	}

	rec.Point = core.RotateY(rec.Point, r.sinTheta, r.cosTheta)
	rec.Normal = core.RotateY(rec.Normal, r.sinTheta, r.cosTheta)
	return true
}

// BoundingBox returns the box enclosing the rotated object
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// Kind returns core.KindRotateY
func (r *RotateY) Kind() core.Kind {
	return core.KindRotateY
}

// Children returns the wrapped object
func (r *RotateY) Children() []core.Hittable {
	return []core.Hittable{r.Object}
}

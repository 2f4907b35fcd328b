package geometry

import (
	"github.com/df07/go-hittable/pkg/core"
)

// List is an unordered aggregate of hittables answering the same contract as a
// single object. It is the usual scene input and the source a BVH is built
// from.
type List struct {
	objects []core.Hittable
	bbox    core.AABB
}

// NewList creates a list holding the given objects
func NewList(objects ...core.Hittable) *List {
	l := &List{bbox: core.EmptyAABB}
	for _, o := range objects {
		l.Add(o)
	}
	return l
}

// Add appends an object and grows the bounding box to cover it
func (l *List) Add(object core.Hittable) {
	l.objects = append(l.objects, object)
	l.bbox = core.Merge(l.bbox, object.BoundingBox())
}

// Len returns the number of objects
func (l *List) Len() int {
	return len(l.objects)
}

// Children returns the objects in insertion order. The slice must not be
// modified.
func (l *List) Children() []core.Hittable {
	return l.objects
}

// Hit scans every object and keeps the closest hit
func (l *List) Hit(ray core.Ray, rayT core.Interval, s core.Sampler, rec *core.HitRecord) bool {
	var tmp core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range l.objects {
		if object.Hit(ray, core.Interval{Min: rayT.Min, Max: closestSoFar}, s, &tmp) {
			hitAnything = true
			closestSoFar = tmp.T
			*rec = tmp
		}
	}

	return hitAnything
}

// BoundingBox returns the merge of every object's box
func (l *List) BoundingBox() core.AABB {
	return l.bbox
}

// Kind returns core.KindList
func (l *List) Kind() core.Kind {
	return core.KindList
}

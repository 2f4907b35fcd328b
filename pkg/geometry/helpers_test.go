package geometry

import (
	"math"

	"github.com/df07/go-hittable/pkg/core"
)

const tolerance = 1e-9

var forever = core.Interval{Min: 0.001, Max: math.Inf(1)}

func vecClose(a, b core.Vec3, eps float64) bool {
	return a.Sub(b).Norm() <= eps
}

// mockShape reports whatever hitFn says and counts how often it was asked
type mockShape struct {
	bbox  core.AABB
	hitFn func(ray core.Ray, rayT core.Interval, rec *core.HitRecord) bool
	calls *int
}

func (m mockShape) Hit(ray core.Ray, rayT core.Interval, _ core.Sampler, rec *core.HitRecord) bool {
	if m.calls != nil {
		*m.calls++
	}
	return m.hitFn(ray, rayT, rec)
}

func (m mockShape) BoundingBox() core.AABB { return m.bbox }

func (m mockShape) Kind() core.Kind { return core.KindSphere }

// hitAt returns a hitFn that succeeds at a fixed t when it lies in rayT
func hitAt(t float64) func(core.Ray, core.Interval, *core.HitRecord) bool {
	return func(ray core.Ray, rayT core.Interval, rec *core.HitRecord) bool {
		if !rayT.Surrounds(t) {
			return false
		}
		rec.T = t
		rec.Point = ray.At(t)
		return true
	}
}

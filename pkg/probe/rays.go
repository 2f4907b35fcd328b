package probe

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-hittable/pkg/core"
)

// emitter generates probe rays. Implementations are read-only after
// construction and shared by all workers.
type emitter interface {
	ray(rng *rand.Rand) core.Ray
}

// boxEmitter places origins on a sphere enclosing the box and aims them at
// uniform points inside it, at uniform shutter times in [0, 1)
type boxEmitter struct {
	box    core.AABB
	center core.Vec3
	radius float64
}

func newBoxEmitter(box core.AABB) boxEmitter {
	radius := 0.75 * box.Size().Norm()
	if radius == 0 {
		radius = 1
	}
	return boxEmitter{box: box, center: box.Center(), radius: radius}
}

func (e boxEmitter) ray(rng *rand.Rand) core.Ray {
	origin := e.center.Add(randomUnitVector(rng).Mul(e.radius))

	target := core.NewVec3(
		e.box.X.Min+rng.Float64()*e.box.X.Size(),
		e.box.Y.Min+rng.Float64()*e.box.Y.Size(),
		e.box.Z.Min+rng.Float64()*e.box.Z.Size(),
	)

	return core.NewRayAt(origin, target.Sub(origin), rng.Float64())
}

// cameraEmitter shoots rays from a single eye point through a square image
// plane one unit in front of it, spanning the vertical field of view
type cameraEmitter struct {
	origin   core.Vec3
	forward  core.Vec3
	right    core.Vec3
	up       core.Vec3
	halfSpan float64 // tan(vfov/2)
}

func newCameraEmitter(lookFrom, lookAt core.Vec3, vfovDegrees float64) cameraEmitter {
	forward := lookAt.Sub(lookFrom).Normalize()

	vup := core.NewVec3(0, 1, 0)
	if math.Abs(forward.Dot(vup)) > 1-1e-9 {
		// looking straight up or down
		vup = core.NewVec3(0, 0, 1)
	}
	right := forward.Cross(vup).Normalize()
	up := right.Cross(forward)

	return cameraEmitter{
		origin:   lookFrom,
		forward:  forward,
		right:    right,
		up:       up,
		halfSpan: math.Tan(core.DegreesToRadians(vfovDegrees) / 2),
	}
}

func (e cameraEmitter) ray(rng *rand.Rand) core.Ray {
	sx := (2*rng.Float64() - 1) * e.halfSpan
	sy := (2*rng.Float64() - 1) * e.halfSpan
	dir := e.forward.Add(e.right.Mul(sx)).Add(e.up.Mul(sy))
	return core.NewRayAt(e.origin, dir, rng.Float64())
}

// randomUnitVector is uniform on the sphere: an isotropic gaussian, normalized
func randomUnitVector(rng *rand.Rand) core.Vec3 {
	for {
		v := core.NewVec3(rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64())
		if n := v.Norm(); n > 1e-12 {
			return v.Mul(1 / n)
		}
	}
}

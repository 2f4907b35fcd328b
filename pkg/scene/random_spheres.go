package scene

import (
	"math/rand/v2"

	"github.com/df07/go-hittable/pkg/core"
	"github.com/df07/go-hittable/pkg/geometry"
	"github.com/df07/go-hittable/pkg/material"
)

// gridExtent is the half-width of the small sphere grid
const gridExtent = 11

// NewRandomSpheres creates the classic final scene: a checkered ground sphere,
// a grid of small spheres with random materials, and three large spheres.
// Diffuse spheres move upward over the shutter interval.
func NewRandomSpheres(rng *rand.Rand) *Scene {
	world := geometry.NewList()

	checker := material.NewCheckerColors(0.32, core.NewVec3(.2, .3, .1), core.NewVec3(.9, .9, .9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			chooseMat := rng.Float64()
			center := core.NewVec3(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())

			// Keep the space around the large metal sphere clear
			if center.Sub(clearing).Norm() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(rng, 0, 1)
				albedo = core.NewVec3(albedo.X*rng.Float64(), albedo.Y*rng.Float64(), albedo.Z*rng.Float64())
				center2 := center.Add(core.NewVec3(0, 0.5*rng.Float64(), 0))
				world.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(rng, 0.5, 1)
				fuzz := 0.5 * rng.Float64()
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return &Scene{
		Name:  "random-spheres",
		World: world,
		Camera: CameraHints{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VFov:     20,
		},
	}
}

// NewTwoSpheres creates two large checkered spheres touching at the origin
func NewTwoSpheres() *Scene {
	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(0.8, core.NewVec3(.2, .3, .1), core.NewVec3(.9, .9, .9)),
	)

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return &Scene{
		Name:  "two-spheres",
		World: world,
		Camera: CameraHints{
			LookFrom: core.NewVec3(13, 2, 3),
			LookAt:   core.NewVec3(0, 0, 0),
			VFov:     20,
		},
	}
}

func randomColor(rng *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(lo+span*rng.Float64(), lo+span*rng.Float64(), lo+span*rng.Float64())
}

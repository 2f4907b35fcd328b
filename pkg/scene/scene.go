package scene

import (
	"math/rand/v2"

	"github.com/df07/go-hittable/pkg/core"
	"github.com/df07/go-hittable/pkg/geometry"
)

// Scene is a named world plus the viewpoint it was composed for
type Scene struct {
	Name   string
	World  *geometry.List // Top-level objects, before acceleration
	Camera CameraHints
}

// CameraHints records where a renderer would look from. hitprobe's --camera
// mode shoots its rays from here.
type CameraHints struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
	VFov     float64 // Vertical field of view in degrees
}

// BVH builds an acceleration structure over the scene's top-level objects
func (s *Scene) BVH(rng *rand.Rand, opts ...geometry.BVHOption) (*geometry.BVH, error) {
	return geometry.NewBVHFromList(s.World, rng, opts...)
}

// PrimitiveCount returns the number of leaf primitives in the scene, looking
// through lists, wrappers and media
func (s *Scene) PrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(h core.Hittable) int {
	container, ok := h.(core.Container)
	if !ok {
		return 1
	}
	count := 0
	for _, child := range container.Children() {
		count += countPrimitives(child)
	}
	return count
}

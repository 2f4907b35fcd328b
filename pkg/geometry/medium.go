package geometry

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/df07/go-hittable/pkg/core"
)

// ExitEpsilon separates the search for a medium's exit point from its entry
// point so the entry surface is not found twice
const ExitEpsilon = 1e-4

// ErrInvalidDensity is returned for non-positive or NaN medium densities
var ErrInvalidDensity = errors.New("medium density must be positive")

// ConstantMedium is a homogeneous participating medium filling a closed
// boundary. Rays scatter inside it after an exponentially distributed free
// path.
type ConstantMedium struct {
	Boundary      core.Hittable
	Density       float64
	PhaseFunction core.Material
	freePath      distuv.Exponential
}

// NewConstantMedium fills boundary with a medium of the given density whose
// scattering is described by phase
func NewConstantMedium(boundary core.Hittable, density float64, phase core.Material) (*ConstantMedium, error) {
	if !(density > 0) {
		return nil, errors.Wrapf(ErrInvalidDensity, "got %v", density)
	}
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: phase,
		freePath:      distuv.Exponential{Rate: density},
	}, nil
}

// Hit samples a scattering event along the part of the ray inside the
// boundary. The normal and front face of a medium hit carry no meaning.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, s core.Sampler, rec *core.HitRecord) bool {
	var entry, exit core.HitRecord
	if !m.Boundary.Hit(ray, core.UniverseInterval, s, &entry) {
		return false
	}
	if !m.Boundary.Hit(ray, core.Interval{Min: entry.T + ExitEpsilon, Max: math.Inf(1)}, s, &exit) {
		return false
	}

	tEntry := math.Max(entry.T, rayT.Min)
	tExit := math.Min(exit.T, rayT.Max)
	if tEntry >= tExit {
		return false
	}
	if tEntry < 0 {
		// origin inside the boundary
		tEntry = 0
	}

	rayLength := ray.Direction.Norm()
	distanceInside := (tExit - tEntry) * rayLength

	hitDistance := m.sampleFreePath(s)
	if math.IsInf(hitDistance, 0) || math.IsNaN(hitDistance) || hitDistance > distanceInside {
		return false
	}

	rec.T = tEntry + hitDistance/rayLength
	rec.Point = ray.At(rec.T)
	rec.Normal = core.NewVec3(1, 0, 0)
	rec.FrontFace = true
	rec.U, rec.V = 0, 0
	rec.Material = m.PhaseFunction

	return true
}

// sampleFreePath draws -ln(U)/density for U uniform in [0,1). U == 0 yields
// +Inf, which the caller treats as passing straight through.
func (m *ConstantMedium) sampleFreePath(s core.Sampler) float64 {
	return m.freePath.Quantile(1 - s.Get1D())
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}

// Kind returns core.KindVolume
func (m *ConstantMedium) Kind() core.Kind {
	return core.KindVolume
}

// Children returns the boundary
func (m *ConstantMedium) Children() []core.Hittable {
	return []core.Hittable{m.Boundary}
}

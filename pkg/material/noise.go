package material

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-hittable/pkg/core"
)

const perlinPoints = 256

// Perlin is gradient noise over a lattice of random unit vectors
type Perlin struct {
	gradients           [perlinPoints]core.Vec3
	permX, permY, permZ []int
}

// NewPerlin builds a noise generator from rng
func NewPerlin(rng *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		v := core.NewVec3(2*rng.Float64()-1, 2*rng.Float64()-1, 2*rng.Float64()-1)
		if n := v.Norm(); n > 1e-12 {
			v = v.Mul(1 / n)
		} else {
			v = core.NewVec3(1, 0, 0)
		}
		p.gradients[i] = v
	}
	p.permX = rng.Perm(perlinPoints)
	p.permY = rng.Perm(perlinPoints)
	p.permZ = rng.Perm(perlinPoints)
	return p
}

// Noise returns smooth noise in roughly [-1, 1] at point
func (p *Perlin) Noise(point core.Vec3) float64 {
	u := point.X - math.Floor(point.X)
	v := point.Y - math.Floor(point.Y)
	w := point.Z - math.Floor(point.Z)

	i := int(math.Floor(point.X))
	j := int(math.Floor(point.Y))
	k := int(math.Floor(point.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&(perlinPoints-1)]^
					p.permY[(j+dj)&(perlinPoints-1)]^
					p.permZ[(k+dk)&(perlinPoints-1)]]
			}
		}
	}
	return perlinInterp(c, u, v, w)
}

// Turbulence sums depth octaves of noise at doubling frequency and halving
// weight
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(point)
		weight *= 0.5
		point = point.Mul(2)
	}
	return math.Abs(accum)
}

func perlinInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	// Hermite smoothing
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// NoiseTexture is a marble-like pattern: a sine along z phase-shifted by
// turbulence
type NoiseTexture struct {
	Scale float64
	noise *Perlin
}

// NewNoiseTexture creates a marble texture with its own noise lattice
func NewNoiseTexture(scale float64, rng *rand.Rand) *NoiseTexture {
	return &NoiseTexture{Scale: scale, noise: NewPerlin(rng)}
}

// Value returns a gray level in [0, 1]
func (n *NoiseTexture) Value(_, _ float64, p core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.noise.Turbulence(p, 7)))
	return core.NewVec3(gray, gray, gray)
}

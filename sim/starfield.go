package sim

import (
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// starfieldAttempts bounds the rejection sampling per star so the requested
// count is always honored.
const starfieldAttempts = 8

// StarfieldParams configures GenerateStarfield. All fields are structural.
type StarfieldParams struct {
	Count       int
	InnerRadius float64
	OuterRadius float64
	ClumpFactor float64 // 0 = uniform shell, 1 = fully noise-driven density
	NoiseScale  float64 // spatial frequency of the clumping noise
}

// GenerateStarfield fills a spherical shell with background stars. Density
// is modulated by OpenSimplex noise seeded from the rng: a candidate is
// kept with probability lerp(1, noise, ClumpFactor), so factor 0 leaves the
// shell uniform and factor 1 concentrates stars in noise maxima. Rejection
// is bounded per star, which keeps Count exact. Colors are mostly
// near-white with blue and amber minorities. Non-positive Count yields an
// empty set.
func GenerateStarfield(p StarfieldParams, rng *rand.Rand) *ParticleSet {
	if p.Count <= 0 {
		return NewParticleSet(0)
	}
	if p.OuterRadius < p.InnerRadius {
		p.InnerRadius, p.OuterRadius = p.OuterRadius, p.InnerRadius
	}
	if p.InnerRadius < 0 {
		p.InnerRadius = 0
	}
	noise := opensimplex.NewNormalized(rng.Int63())

	set := NewParticleSet(p.Count)
	for i := 0; i < p.Count; i++ {
		var x, y, z float64
		for attempt := 0; attempt < starfieldAttempts; attempt++ {
			theta := rng.Float64() * 2 * math.Pi
			cosPhi := 2*rng.Float64() - 1
			sinPhi := math.Sqrt(1 - cosPhi*cosPhi)
			radius := p.InnerRadius + rng.Float64()*(p.OuterRadius-p.InnerRadius)

			x = radius * sinPhi * math.Cos(theta)
			y = radius * cosPhi
			z = radius * sinPhi * math.Sin(theta)

			if p.ClumpFactor <= 0 {
				break
			}
			keep := 1 - p.ClumpFactor + p.ClumpFactor*noise.Eval3(x*p.NoiseScale, y*p.NoiseScale, z*p.NoiseScale)
			if rng.Float64() < keep {
				break
			}
		}
		set.setPosition(i, x, y, z)
		r, g, b := starTint(rng)
		set.setColor(i, r, g, b)
	}
	return set
}

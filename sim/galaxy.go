package sim

import (
	"math"
	"math/rand"
)

// Tuning constants of the galaxy distribution. These are part of the
// distribution's identity rather than user parameters.
const (
	bulgeFlattening = 0.3  // polar axis scale of the central bulge
	diskThickness   = 3.0  // vertical span of the disk at the center
	barStrength     = 0.5  // peak angular pull of the central bar, radians
	positionJitter  = 0.3  // uniform jitter span applied on every axis
	minBulgeSize    = 1e-3 // log floor when bulge size is non-positive
)

// GalaxyParams configures GenerateGalaxy. Every field is structural:
// changing one requires regenerating the particle set.
type GalaxyParams struct {
	Count           int     // number of star particles
	Radius          float64 // outer disk radius
	ArmCount        int     // number of spiral arms
	BarLength       float64 // radius inside which the bar perturbation acts
	BulgeSize       float64 // radius of the central bulge
	SpiralTightness float64 // log-spiral winding factor
}

// GenerateGalaxy samples a barred-spiral galaxy with a flattened central
// bulge. The radius is sampled uniformly, not area-weighted, which biases
// density toward the center on purpose. Particles inside BulgeSize fill a
// flattened sphere; the rest land on log-spiral arms with a cos(2θ) bar
// perturbation near the center and a disk that thins toward the rim.
// Colors step through warm, pale and cool bands with the planar distance.
//
// Non-positive Count or Radius yields an empty set. A non-positive
// BulgeSize disables the bulge branch and substitutes a small positive
// floor in the spiral logarithm so the angle stays finite. Deterministic
// for a fixed rng state.
func GenerateGalaxy(p GalaxyParams, rng *rand.Rand) *ParticleSet {
	if p.Count <= 0 || p.Radius <= 0 {
		return NewParticleSet(0)
	}

	arms := p.ArmCount
	if arms < 1 {
		arms = 1
	}
	logFloor := p.BulgeSize
	if logFloor <= 0 {
		logFloor = minBulgeSize
	}

	set := NewParticleSet(p.Count)
	for i := 0; i < p.Count; i++ {
		theta := rng.Float64() * 2 * math.Pi
		r := rng.Float64() * p.Radius

		var x, y, z float64
		if r < p.BulgeSize {
			// Flattened sphere: uniform direction, radial fraction in
			// [0.3, 1.0] of the sampled radius, polar axis squashed.
			phi := math.Acos(2*rng.Float64() - 1)
			rad := r * (0.3 + 0.7*rng.Float64())
			sinPhi := math.Sin(phi)
			x = rad * sinPhi * math.Cos(theta)
			z = rad * sinPhi * math.Sin(theta)
			y = rad * math.Cos(phi) * bulgeFlattening
		} else {
			norm := r / p.Radius

			// The sampled angle only picks the arm; the particle's real
			// angle comes from the log spiral along that arm.
			armIndex := int(theta / (2 * math.Pi) * float64(arms))
			if armIndex >= arms {
				armIndex = arms - 1
			}
			angle := float64(armIndex)/float64(arms)*2*math.Pi +
				math.Log(r/logFloor)*p.SpiralTightness

			if r < p.BarLength {
				angle += math.Cos(2*theta) * (1 - norm) * barStrength
			}

			x = r * math.Cos(angle)
			z = r * math.Sin(angle)
			y = (rng.Float64() - 0.5) * diskThickness * (1 - norm)
		}

		cr, cg, cb := galaxyBandColor(math.Hypot(x, z)/p.Radius, rng)

		x += (rng.Float64() - 0.5) * positionJitter
		y += (rng.Float64() - 0.5) * positionJitter
		z += (rng.Float64() - 0.5) * positionJitter

		set.setPosition(i, x, y, z)
		set.setColor(i, cr, cg, cb)
	}
	return set
}

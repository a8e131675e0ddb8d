package sim

import (
	"math"
	"math/rand"
)

// CloudParams configures GenerateWaveCloud. All fields are structural.
type CloudParams struct {
	Count   int
	SpanXZ  float64 // full box extent on X and Z
	SpanY   float64 // full box extent on Y
	BaseHue float64 // center of the hue jitter band, degrees
}

// GenerateWaveCloud scatters particles uniformly in the configured box and
// colors them around the base hue. X and Z never change afterwards; only Y
// is rewritten, by UpdateWaveCloud. Non-positive Count yields an empty set.
func GenerateWaveCloud(p CloudParams, rng *rand.Rand) *ParticleSet {
	if p.Count <= 0 {
		return NewParticleSet(0)
	}
	set := NewParticleSet(p.Count)
	for i := 0; i < p.Count; i++ {
		x := (rng.Float64() - 0.5) * p.SpanXZ
		y := (rng.Float64() - 0.5) * p.SpanY
		z := (rng.Float64() - 0.5) * p.SpanXZ
		set.setPosition(i, x, y, z)
		r, g, b := cloudColor(p.BaseHue, rng)
		set.setColor(i, r, g, b)
	}
	return set
}

// UpdateWaveCloud rewrites each particle's Y in place from the three-wave
// superposition. Particle order and X/Z are untouched, so connection graph
// indices stay valid. waveSpeed and intensity are live parameters;
// intensity 0 zeroes every height exactly.
func UpdateWaveCloud(set *ParticleSet, elapsed, waveSpeed, intensity float64) {
	t := elapsed * waveSpeed
	pos := set.positions
	for i := 0; i < set.Len(); i++ {
		x := float64(pos[3*i])
		z := float64(pos[3*i+2])
		dist := math.Hypot(x, z)
		h := intensity*math.Sin(0.1*x+0.1*z+t) +
			0.6*intensity*math.Sin(0.05*x-0.05*z+0.6*t) +
			0.4*intensity*math.Sin(0.1*dist-0.8*t)
		pos[3*i+1] = float32(h)
	}
}

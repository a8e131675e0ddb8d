package sim

import "math"

// minWaveLength guards the phase division when the configured wavelength is
// non-positive.
const minWaveLength = 1e-6

// Displacement returns the Great Wave height at planar point (x, z) after
// elapsed seconds: an outward-traveling radial wave plus a slower angular
// modulation at 30% of the amplitude. This one kernel drives both the wave
// particle layer and the annular surface variant.
//
// Pure function: equal inputs always yield equal outputs. The origin is
// well defined (math.Atan2(0,0) is 0) and amplitude 0 returns exactly 0.
func Displacement(x, z, elapsed, amplitude, waveLength, waveSpeed float64) float64 {
	if waveLength <= 0 {
		waveLength = minWaveLength
	}
	dist := math.Hypot(x, z)
	phase := dist/waveLength - elapsed*waveSpeed
	radial := amplitude * math.Sin(2*math.Pi*phase)
	angle := math.Atan2(z, x)
	angular := 0.3 * amplitude * math.Sin(2*angle+elapsed*waveSpeed*0.5)
	return radial + angular
}

package sim

import (
	"math/rand"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// hsl converts hue (degrees), saturation and lightness to r,g,b in [0,1].
func hsl(h, s, l float64) (float32, float32, float32) {
	c := colorful.Hsl(h, s, l).Clamped()
	return float32(c.R), float32(c.G), float32(c.B)
}

// galaxyBandColor picks a star color from the radius band at normalized
// planar distance d: hot saturated core, pale mid disk, cool blue rim.
// Hue, saturation and lightness jitter stays inside the band.
func galaxyBandColor(d float64, rng *rand.Rand) (float32, float32, float32) {
	switch {
	case d < 0.3:
		return hsl(28+rng.Float64()*22, 0.85+rng.Float64()*0.15, 0.58+rng.Float64()*0.16)
	case d < 0.6:
		return hsl(45+rng.Float64()*15, 0.22+rng.Float64()*0.2, 0.8+rng.Float64()*0.12)
	default:
		return hsl(205+rng.Float64()*30, 0.45+rng.Float64()*0.25, 0.72+rng.Float64()*0.16)
	}
}

// cloudColor jitters around a base hue at fixed saturation/lightness bands.
func cloudColor(baseHue float64, rng *rand.Rand) (float32, float32, float32) {
	h := baseHue + (rng.Float64()-0.5)*24
	if h < 0 {
		h += 360
	}
	return hsl(h, 0.6+rng.Float64()*0.15, 0.62+rng.Float64()*0.14)
}

// starTint returns a background star color: mostly near-white, with blue
// and amber minorities.
func starTint(rng *rand.Rand) (float32, float32, float32) {
	roll := rng.Float64()
	switch {
	case roll < 0.72:
		return hsl(48+rng.Float64()*12, 0.04+rng.Float64()*0.08, 0.86+rng.Float64()*0.1)
	case roll < 0.88:
		return hsl(215+rng.Float64()*20, 0.3+rng.Float64()*0.2, 0.8+rng.Float64()*0.12)
	default:
		return hsl(36+rng.Float64()*10, 0.35+rng.Float64()*0.2, 0.78+rng.Float64()*0.1)
	}
}

// zoneColor steps zone k of n across a cool hue ramp.
func zoneColor(k, n int, rng *rand.Rand) (float32, float32, float32) {
	t := 0.0
	if n > 1 {
		t = float64(k) / float64(n-1)
	}
	return hsl(185+t*55, 0.5+rng.Float64()*0.1, 0.6+rng.Float64()*0.08)
}

package sim

import (
	"math"
	"math/rand"
)

// Zone marker jitter spans.
const (
	zoneRadialJitter   = 0.04 // fraction of the ring spacing, each side
	zoneVerticalJitter = 0.5  // full vertical jitter span
)

// ZoneParams configures GenerateZones. All fields are structural.
type ZoneParams struct {
	Zones          int
	MarkersPerZone int
	InnerRadius    float64
	OuterRadius    float64
}

// ZoneSet holds ring-banded decorative markers: positions and colors plus a
// parallel buffer of unit tangents hinting the orbital direction at each
// marker.
type ZoneSet struct {
	positions  []float32
	colors     []float32
	directions []float32
}

// GenerateZones scatters markers over evenly spaced rings between
// InnerRadius and OuterRadius. Markers take a uniform random angle with
// small radial and vertical jitter; each carries the exact ring tangent at
// its angle. Ring colors step across a cool hue ramp. Non-positive Zones or
// MarkersPerZone yields an empty set.
func GenerateZones(p ZoneParams, rng *rand.Rand) *ZoneSet {
	if p.Zones <= 0 || p.MarkersPerZone <= 0 {
		return &ZoneSet{}
	}
	n := p.Zones * p.MarkersPerZone
	zs := &ZoneSet{
		positions:  make([]float32, 3*n),
		colors:     make([]float32, 3*n),
		directions: make([]float32, 3*n),
	}

	spacing := 0.0
	if p.Zones > 1 {
		spacing = (p.OuterRadius - p.InnerRadius) / float64(p.Zones-1)
	}

	i := 0
	for k := 0; k < p.Zones; k++ {
		radius := (p.InnerRadius + p.OuterRadius) / 2
		if p.Zones > 1 {
			radius = p.InnerRadius + spacing*float64(k)
		}
		for m := 0; m < p.MarkersPerZone; m++ {
			angle := rng.Float64() * 2 * math.Pi
			sin, cos := math.Sincos(angle)

			r := radius + (rng.Float64()-0.5)*2*zoneRadialJitter*spacing
			zs.positions[3*i] = float32(r * cos)
			zs.positions[3*i+1] = float32((rng.Float64() - 0.5) * zoneVerticalJitter)
			zs.positions[3*i+2] = float32(r * sin)

			// Unit tangent of the ring at this angle.
			zs.directions[3*i] = float32(-sin)
			zs.directions[3*i+1] = 0
			zs.directions[3*i+2] = float32(cos)

			cr, cg, cb := zoneColor(k, p.Zones, rng)
			zs.colors[3*i] = cr
			zs.colors[3*i+1] = cg
			zs.colors[3*i+2] = cb
			i++
		}
	}
	return zs
}

// Len returns the number of markers.
func (z *ZoneSet) Len() int {
	return len(z.positions) / 3
}

// Positions returns the marker position buffer (len 3N), read-only to
// callers. Zone markers never move after generation.
func (z *ZoneSet) Positions() []float32 {
	return z.positions
}

// Colors returns the marker color buffer (len 3N), read-only to callers.
func (z *ZoneSet) Colors() []float32 {
	return z.colors
}

// Directions returns the unit tangent buffer (len 3N), read-only to
// callers. The renderer draws these as short orbital strokes.
func (z *ZoneSet) Directions() []float32 {
	return z.directions
}

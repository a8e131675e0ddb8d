// Package camera provides the orbit camera for the 3D scene viewport.
package camera

import "math"

// elevationLimit keeps the eye off the poles so the world-up vector used by
// the renderer never degenerates.
const elevationLimit = 1.45 // radians, ~83 degrees

// Orbit positions the eye on a sphere around a fixed target from
// azimuth/elevation/distance. All angles are radians. This package is pure
// math; converting the eye position into a renderer camera happens at the
// call site.
type Orbit struct {
	// Azimuth is the angle around the Y axis, wrapped to (-pi, pi].
	Azimuth float64
	// Elevation is the angle above the XZ plane, clamped to ±elevationLimit.
	Elevation float64
	// Distance is the eye distance from the target.
	Distance float64

	// Distance constraints applied by Dolly.
	MinDistance, MaxDistance float64

	// Target is the point the camera looks at.
	TargetX, TargetY, TargetZ float64
}

// New creates an orbit camera looking at the origin. The initial angles and
// distance are normalized the same way Rotate and Dolly normalize them.
func New(azimuth, elevation, distance, minDistance, maxDistance float64) *Orbit {
	if maxDistance < minDistance {
		minDistance, maxDistance = maxDistance, minDistance
	}
	return &Orbit{
		Azimuth:     wrapAngle(azimuth),
		Elevation:   clamp(elevation, -elevationLimit, elevationLimit),
		Distance:    clamp(distance, minDistance, maxDistance),
		MinDistance: minDistance,
		MaxDistance: maxDistance,
	}
}

// Rotate adds the given angle deltas. Azimuth wraps around; elevation clamps
// short of the poles.
func (o *Orbit) Rotate(dAzimuth, dElevation float64) {
	o.Azimuth = wrapAngle(o.Azimuth + dAzimuth)
	o.Elevation = clamp(o.Elevation+dElevation, -elevationLimit, elevationLimit)
}

// Dolly scales the eye distance, clamped to the configured range. Factors
// above 1 move away from the target.
func (o *Orbit) Dolly(factor float64) {
	o.Distance = clamp(o.Distance*factor, o.MinDistance, o.MaxDistance)
}

// Eye returns the eye position in world coordinates.
func (o *Orbit) Eye() (x, y, z float64) {
	cosEl := math.Cos(o.Elevation)
	x = o.TargetX + o.Distance*cosEl*math.Cos(o.Azimuth)
	y = o.TargetY + o.Distance*math.Sin(o.Elevation)
	z = o.TargetZ + o.Distance*cosEl*math.Sin(o.Azimuth)
	return x, y, z
}

// wrapAngle wraps an angle to (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}

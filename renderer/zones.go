package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/starforge-dev/starforge/sim"
)

// zoneStrokeLength is the world-space length of a marker's tangent stroke.
const zoneStrokeLength = 1.6

// ZoneRenderer renders orbital zone markers with direction strokes.
type ZoneRenderer struct{}

// NewZoneRenderer creates a new zone renderer.
func NewZoneRenderer() *ZoneRenderer {
	return &ZoneRenderer{}
}

// Draw renders each marker as a point plus a short stroke along its ring
// tangent, hinting the orbital direction.
func (r *ZoneRenderer) Draw(zs *sim.ZoneSet) {
	positions := zs.Positions()
	colors := zs.Colors()
	directions := zs.Directions()

	for i := 0; i < zs.Len(); i++ {
		p := vec3At(positions, i)
		c := colorAt(colors, i, 210)

		rl.DrawPoint3D(p, c)

		tip := rl.NewVector3(
			p.X+directions[3*i]*zoneStrokeLength,
			p.Y+directions[3*i+1]*zoneStrokeLength,
			p.Z+directions[3*i+2]*zoneStrokeLength,
		)
		rl.DrawLine3D(p, tip, rl.Fade(c, 0.55))
	}
}

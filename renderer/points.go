package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/starforge-dev/starforge/sim"
)

// PointLayerRenderer renders a particle layer as 3D points.
type PointLayerRenderer struct{}

// NewPointLayerRenderer creates a new point layer renderer.
func NewPointLayerRenderer() *PointLayerRenderer {
	return &PointLayerRenderer{}
}

// Draw renders every particle with its buffer color.
func (r *PointLayerRenderer) Draw(set *sim.ParticleSet) {
	positions := set.Positions()
	colors := set.Colors()

	for i := 0; i < set.Len(); i++ {
		rl.DrawPoint3D(vec3At(positions, i), colorAt(colors, i, 255))
	}
}

package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// connectionColor is dim and translucent so dense graphs read as a web
// rather than a glare.
var connectionColor = rl.NewColor(120, 170, 255, 70)

// ConnectionRenderer renders the cloud's connection graph as lines.
type ConnectionRenderer struct{}

// NewConnectionRenderer creates a new connection renderer.
func NewConnectionRenderer() *ConnectionRenderer {
	return &ConnectionRenderer{}
}

// Draw renders a line per stored pair between the particles' current
// positions. The pair set is fixed, so lines stretch as particles move.
func (r *ConnectionRenderer) Draw(positions []float32, pairs []uint32) {
	for k := 0; k+1 < len(pairs); k += 2 {
		a := vec3At(positions, int(pairs[k]))
		b := vec3At(positions, int(pairs[k+1]))
		rl.DrawLine3D(a, b, connectionColor)
	}
}

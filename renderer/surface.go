package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/starforge-dev/starforge/sim"
)

// ambientLight is the shade floor so unlit triangles stay visible.
const ambientLight = 0.35

// Directional light for surface shading, unit length.
var lightDir = rl.NewVector3(0.458, 0.814, 0.356)

// SurfaceRenderer renders a height surface as flat-shaded triangles or as a
// wireframe.
type SurfaceRenderer struct{}

// NewSurfaceRenderer creates a new surface renderer.
func NewSurfaceRenderer() *SurfaceRenderer {
	return &SurfaceRenderer{}
}

// Draw renders the grid's triangles shaded against the light direction.
// yOffset shifts the whole surface vertically at draw time; the buffers
// stay untouched. Culling is disabled so the underside renders when the
// camera dips below the surface.
func (r *SurfaceRenderer) Draw(g *sim.SurfaceGrid, yOffset float32, base rl.Color) {
	positions := g.Positions()
	normals := g.Normals()
	indices := g.Indices()

	rl.DisableBackfaceCulling()
	for k := 0; k+2 < len(indices); k += 3 {
		i0, i1, i2 := indices[k], indices[k+1], indices[k+2]

		shade := triangleShade(normals, i0, i1, i2)
		color := rl.NewColor(
			uint8(float32(base.R)*shade),
			uint8(float32(base.G)*shade),
			uint8(float32(base.B)*shade),
			base.A,
		)

		rl.DrawTriangle3D(
			offsetVec(positions, i0, yOffset),
			offsetVec(positions, i1, yOffset),
			offsetVec(positions, i2, yOffset),
			color,
		)
	}
	rl.EnableBackfaceCulling()
}

// DrawWireframe renders every triangle's edges. The diagonal shared by a
// cell's two triangles gets drawn twice, which raylib batches cheaply.
func (r *SurfaceRenderer) DrawWireframe(g *sim.SurfaceGrid, yOffset float32, color rl.Color) {
	positions := g.Positions()
	indices := g.Indices()

	for k := 0; k+2 < len(indices); k += 3 {
		v0 := offsetVec(positions, indices[k], yOffset)
		v1 := offsetVec(positions, indices[k+1], yOffset)
		v2 := offsetVec(positions, indices[k+2], yOffset)

		rl.DrawLine3D(v0, v1, color)
		rl.DrawLine3D(v1, v2, color)
		rl.DrawLine3D(v2, v0, color)
	}
}

// triangleShade lights a triangle from the averaged vertex normals. Both
// faces count: the dot is taken absolute since culling is off.
func triangleShade(normals []float32, i0, i1, i2 uint32) float32 {
	nx := normals[3*i0] + normals[3*i1] + normals[3*i2]
	ny := normals[3*i0+1] + normals[3*i1+1] + normals[3*i2+1]
	nz := normals[3*i0+2] + normals[3*i1+2] + normals[3*i2+2]

	length := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz)))
	if length < 1e-6 {
		return ambientLight
	}

	dot := (nx*lightDir.X + ny*lightDir.Y + nz*lightDir.Z) / length
	if dot < 0 {
		dot = -dot
	}
	return ambientLight + (1-ambientLight)*dot
}

func offsetVec(buf []float32, i uint32, yOffset float32) rl.Vector3 {
	return rl.NewVector3(buf[3*i], buf[3*i+1]+yOffset, buf[3*i+2])
}

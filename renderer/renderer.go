// Package renderer draws the scene's buffer views with raylib. It never
// mutates a buffer: positions, colors, normals and indices are read-only
// views owned by the sim layer, converted to raylib types at draw time.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/starforge-dev/starforge/config"
	"github.com/starforge-dev/starforge/scene"
)

// Base colors of the shaded and line layers. Particle layers carry their
// own per-particle colors.
var (
	darkMatterBase = rl.NewColor(64, 58, 156, 160)
	greatWaveBase  = rl.NewColor(38, 158, 188, 170)
	greatWaveLine  = rl.NewColor(116, 206, 234, 150)
)

// SceneRenderer draws one frame of the scene inside a 3D projection.
type SceneRenderer struct {
	points      *PointLayerRenderer
	surfaces    *SurfaceRenderer
	connections *ConnectionRenderer
	zones       *ZoneRenderer
}

// NewSceneRenderer creates a new scene renderer.
func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{
		points:      NewPointLayerRenderer(),
		surfaces:    NewSurfaceRenderer(),
		connections: NewConnectionRenderer(),
		zones:       NewZoneRenderer(),
	}
}

// Draw renders every visible layer between BeginMode3D and EndMode3D,
// far layers first so the translucent ones blend over them.
func (r *SceneRenderer) Draw(s *scene.Scene, cam rl.Camera3D, cfg *config.Config) {
	rl.BeginMode3D(cam)

	if s.Visible.Starfield {
		r.points.Draw(s.Starfield)
	}
	if s.Visible.DarkMatter {
		r.surfaces.Draw(s.DarkMatter, float32(cfg.DarkMatter.BaseHeight), darkMatterBase)
	}
	if s.Visible.GreatWave && s.GreatWave != nil {
		if s.GreatWave.Wireframe {
			r.surfaces.DrawWireframe(s.GreatWave, 0, greatWaveLine)
		} else {
			r.surfaces.Draw(s.GreatWave, 0, greatWaveBase)
		}
	}
	if s.Visible.Galaxy {
		r.points.Draw(s.Galaxy)
	}
	if s.Visible.WaveCloud {
		r.points.Draw(s.WaveCloud)
	}
	if s.Visible.Connections {
		r.connections.Draw(s.WaveCloud.Positions(), s.Graph.Indices())
	}
	if s.Visible.Zones {
		r.zones.Draw(s.Zones)
	}

	rl.EndMode3D()
}

// vec3At reads triple i of a flat xyz buffer.
func vec3At(buf []float32, i int) rl.Vector3 {
	return rl.NewVector3(buf[3*i], buf[3*i+1], buf[3*i+2])
}

// colorAt reads triple i of a flat rgb buffer. Components are already
// clamped to [0,1] by the palette.
func colorAt(buf []float32, i int, alpha uint8) rl.Color {
	return rl.NewColor(
		uint8(buf[3*i]*255),
		uint8(buf[3*i+1]*255),
		uint8(buf[3*i+2]*255),
		alpha,
	)
}

package main

import (
	"fmt"
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/starforge-dev/starforge/camera"
	"github.com/starforge-dev/starforge/config"
	"github.com/starforge-dev/starforge/renderer"
	"github.com/starforge-dev/starforge/scene"
	"github.com/starforge-dev/starforge/telemetry"
	"github.com/starforge-dev/starforge/ui"
)

var backgroundColor = rl.NewColor(4, 4, 12, 255)

// layerKeys maps number keys to scene layers, in layer order.
var layerKeys = []int32{
	rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour,
	rl.KeyFive, rl.KeySix, rl.KeySeven,
}

// viewer holds the windowed loop state.
type viewer struct {
	sc    *scene.Scene
	cfg   *config.Config
	orbit *camera.Orbit
	scene *renderer.SceneRenderer
	panel *ui.Panel
	perf  *telemetry.FrameCollector
	out   *telemetry.OutputManager

	elapsed   float64
	paused    bool
	frame     int
	maxFrames int
	logStats  bool
}

// runViewer opens the window and runs the interactive loop.
func runViewer(sc *scene.Scene, cfg *config.Config, perf *telemetry.FrameCollector,
	out *telemetry.OutputManager, maxFrames int, logStats bool) {

	rl.InitWindow(cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, "starforge")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	v := &viewer{
		sc:  sc,
		cfg: cfg,
		orbit: camera.New(
			cfg.Derived.AzimuthRad,
			cfg.Derived.ElevationRad,
			cfg.Camera.Distance,
			cfg.Camera.MinDistance,
			cfg.Camera.MaxDistance,
		),
		scene:     renderer.NewSceneRenderer(),
		panel:     ui.NewPanel(),
		perf:      perf,
		out:       out,
		maxFrames: maxFrames,
		logStats:  logStats,
	}

	for !rl.WindowShouldClose() {
		v.perf.StartFrame()

		v.handleInput()
		if !v.paused {
			v.elapsed += float64(rl.GetFrameTime())
		}
		v.sc.Update(v.elapsed, v.cfg)

		v.perf.StartPhase(telemetry.PhaseDraw)
		v.drawFrame()

		v.perf.EndFrame()
		v.frame++

		if v.frame%v.cfg.Telemetry.Window == 0 {
			flushStats(v.perf, v.out, v.frame, v.logStats)
		}
		if v.maxFrames > 0 && v.frame >= v.maxFrames {
			break
		}
	}
}

// handleInput processes keys and mouse for this frame.
func (v *viewer) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		v.paused = !v.paused
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		v.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		// Reseed and regenerate
		v.sc.SetSeed(time.Now().UnixNano())
		v.sc.Rebuild(v.cfg)
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		rl.TakeScreenshot(fmt.Sprintf("starforge_%d.png", time.Now().Unix()))
	}
	for i, key := range layerKeys {
		if rl.IsKeyPressed(key) {
			v.sc.ToggleLayer(i + 1)
		}
	}

	// Panel interaction must not also steer the camera
	overPanel := v.panel.Contains(rl.GetMousePosition(), v.cfg)

	if !overPanel && rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		delta := rl.GetMouseDelta()
		v.orbit.Rotate(
			float64(-delta.X)*v.cfg.Camera.OrbitSpeed,
			float64(-delta.Y)*v.cfg.Camera.OrbitSpeed,
		)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && !overPanel {
		// Exponential dolly: each notch scales the distance
		v.orbit.Dolly(math.Exp(float64(-wheel) * v.cfg.Camera.ZoomSpeed))
	}
}

// drawFrame renders the 3D scene, the HUD and the parameter panel, and
// consumes the panel's rebuild flag.
func (v *viewer) drawFrame() {
	ex, ey, ez := v.orbit.Eye()
	cam := rl.NewCamera3D(
		rl.NewVector3(float32(ex), float32(ey), float32(ez)),
		rl.NewVector3(float32(v.orbit.TargetX), float32(v.orbit.TargetY), float32(v.orbit.TargetZ)),
		rl.NewVector3(0, 1, 0),
		float32(v.cfg.Camera.FovYDeg),
		rl.CameraPerspective,
	)

	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	v.scene.Draw(v.sc, cam, v.cfg)
	v.drawHUD()

	if v.panel.Draw(v.cfg) {
		v.sc.Rebuild(v.cfg)
	}

	rl.EndDrawing()
}

// drawHUD renders the status lines and key help.
func (v *viewer) drawHUD() {
	rl.DrawText(fmt.Sprintf("%d fps   t=%.1fs   seed %d", rl.GetFPS(), v.elapsed, v.sc.Seed()),
		10, 10, 20, rl.RayWhite)
	rl.DrawText(fmt.Sprintf("stars %d   cloud %d   links %d   markers %d",
		v.sc.Galaxy.Len(), v.sc.WaveCloud.Len(), v.sc.Graph.Len(), v.sc.Zones.Len()),
		10, 34, 10, rl.Gray)

	if v.paused {
		rl.DrawText("PAUSED", 10, 50, 20, rl.Orange)
	}

	rl.DrawText("[1-7] layers  [Space] pause  [Tab] panel  [R] reseed  [F2] screenshot",
		10, v.cfg.Derived.ScreenH32-22, 10, rl.Gray)
}

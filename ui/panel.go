// Package ui draws the raygui parameter panel over the scene viewport.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/starforge-dev/starforge/config"
)

// Panel layout.
const (
	panelWidth  = 310
	panelMargin = 10
	rowStep     = 24
	headerStep  = 24
	labelWidth  = 108
	sliderWidth = 120
)

var (
	panelBackground = rl.NewColor(10, 12, 24, 225)
	panelBorder     = rl.NewColor(80, 90, 130, 255)
)

// Panel is the in-viewer parameter panel. Draw applies edits straight to
// the config: live parameters take effect on the next frame, structural
// ones arm the rebuild flag Draw returns.
type Panel struct {
	visible bool
}

// NewPanel creates the panel, hidden until toggled.
func NewPanel() *Panel {
	return &Panel{}
}

// Toggle flips panel visibility.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// IsVisible reports whether the panel is drawn.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Bounds returns the panel rectangle for the current screen size.
func (p *Panel) Bounds(cfg *config.Config) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(cfg.Derived.ScreenW32) - panelWidth - panelMargin,
		Y:      panelMargin,
		Width:  panelWidth,
		Height: float32(cfg.Derived.ScreenH32) - 2*panelMargin,
	}
}

// Contains reports whether the point lies inside the visible panel. The
// viewer uses it to keep slider drags from orbiting the camera.
func (p *Panel) Contains(point rl.Vector2, cfg *config.Config) bool {
	if !p.visible {
		return false
	}
	return rl.CheckCollisionPointRec(point, p.Bounds(cfg))
}

// Draw renders the panel and applies edits to cfg. It reports whether a
// structural parameter changed or the Rebuild button was pressed, either of
// which requires a scene rebuild.
func (p *Panel) Draw(cfg *config.Config) bool {
	if !p.visible {
		return false
	}

	bounds := p.Bounds(cfg)
	rl.DrawRectangleRec(bounds, panelBackground)
	rl.DrawRectangleLinesEx(bounds, 1, panelBorder)

	x := bounds.X + 12
	y := bounds.Y + 10
	rebuild := false

	header(x, &y, "Galaxy")
	if sliderInt(x, &y, "Stars", &cfg.Galaxy.Count, 1000, 40000) {
		rebuild = true
	}
	if sliderFloat(x, &y, "Radius", &cfg.Galaxy.Radius, 20, 80, "%.0f") {
		rebuild = true
	}
	if sliderInt(x, &y, "Arms", &cfg.Galaxy.ArmCount, 1, 8) {
		rebuild = true
	}
	if sliderFloat(x, &y, "Bar length", &cfg.Galaxy.BarLength, 0, 30, "%.1f") {
		rebuild = true
	}
	if sliderFloat(x, &y, "Bulge size", &cfg.Galaxy.BulgeSize, 1, 20, "%.1f") {
		rebuild = true
	}
	if sliderFloat(x, &y, "Tightness", &cfg.Galaxy.SpiralTightness, 0.5, 4, "%.2f") {
		rebuild = true
	}

	header(x, &y, "Surfaces")
	if sliderInt(x, &y, "Field segments", &cfg.DarkMatter.Segments, 10, 100) {
		rebuild = true
	}
	if checkbox(x, &y, "Great Wave", &cfg.GreatWave.Enabled) {
		rebuild = true
	}
	if checkbox(x, &y, "Wireframe", &cfg.GreatWave.Wireframe) {
		rebuild = true
	}
	if sliderInt(x, &y, "Wave segments", &cfg.GreatWave.Segments, 12, 96) {
		rebuild = true
	}

	header(x, &y, "Cloud & links")
	if sliderInt(x, &y, "Particles", &cfg.WaveCloud.Count, 100, 5000) {
		rebuild = true
	}
	if sliderFloat(x, &y, "Base hue", &cfg.WaveCloud.BaseHue, 0, 360, "%.0f") {
		rebuild = true
	}
	if sliderFloat(x, &y, "Link distance", &cfg.WaveCloud.ConnectionDistance, 1, 20, "%.1f") {
		rebuild = true
	}
	if sliderInt(x, &y, "Max links", &cfg.WaveCloud.MaxConnections, 0, 2000) {
		rebuild = true
	}

	header(x, &y, "Backdrop")
	if sliderInt(x, &y, "Stars", &cfg.Starfield.Count, 0, 20000) {
		rebuild = true
	}
	if sliderFloat(x, &y, "Clumping", &cfg.Starfield.ClumpFactor, 0, 1, "%.2f") {
		rebuild = true
	}
	if sliderInt(x, &y, "Zone rings", &cfg.Zones.Count, 0, 10) {
		rebuild = true
	}
	if sliderInt(x, &y, "Ring markers", &cfg.Zones.MarkersPerZone, 0, 400) {
		rebuild = true
	}

	header(x, &y, "Live")
	sliderFloat(x, &y, "Field speed", &cfg.DarkMatter.WaveSpeed, 0, 3, "%.2f")
	sliderFloat(x, &y, "Field intensity", &cfg.DarkMatter.Intensity, 0, 5, "%.2f")
	sliderFloat(x, &y, "Wave amplitude", &cfg.GreatWave.Amplitude, 0, 8, "%.2f")
	sliderFloat(x, &y, "Wave length", &cfg.GreatWave.WaveLength, 4, 40, "%.1f")
	sliderFloat(x, &y, "Wave speed", &cfg.GreatWave.WaveSpeed, 0, 3, "%.2f")
	sliderFloat(x, &y, "Cloud speed", &cfg.WaveCloud.WaveSpeed, 0, 3, "%.2f")
	sliderFloat(x, &y, "Cloud intensity", &cfg.WaveCloud.Intensity, 0, 6, "%.2f")

	y += 8
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 28}, "Rebuild") {
		rebuild = true
	}

	return rebuild
}

// header draws a section title and advances the layout cursor.
func header(x float32, y *float32, title string) {
	*y += 6
	rl.DrawText(title, int32(x), int32(*y), 14, rl.RayWhite)
	*y += headerStep
}

// sliderFloat draws a labeled slider bound to a float parameter and reports
// whether the value changed this frame.
func sliderFloat(x float32, y *float32, label string, v *float64, min, max float32, format string) bool {
	rl.DrawText(label, int32(x), int32(*y+3), 10, rl.Gray)
	got := gui.SliderBar(
		rl.Rectangle{X: x + labelWidth, Y: *y, Width: sliderWidth, Height: 16},
		"", "",
		float32(*v), min, max,
	)
	rl.DrawText(fmt.Sprintf(format, *v), int32(x+labelWidth+sliderWidth+8), int32(*y+3), 10, rl.RayWhite)
	*y += rowStep

	if got != float32(*v) {
		*v = float64(got)
		return true
	}
	return false
}

// sliderInt is sliderFloat for integer parameters; drags register only when
// they cross a whole step.
func sliderInt(x float32, y *float32, label string, v *int, min, max float32) bool {
	rl.DrawText(label, int32(x), int32(*y+3), 10, rl.Gray)
	got := gui.SliderBar(
		rl.Rectangle{X: x + labelWidth, Y: *y, Width: sliderWidth, Height: 16},
		"", "",
		float32(*v), min, max,
	)
	rl.DrawText(fmt.Sprintf("%d", *v), int32(x+labelWidth+sliderWidth+8), int32(*y+3), 10, rl.RayWhite)
	*y += rowStep

	if int(got) != *v {
		*v = int(got)
		return true
	}
	return false
}

// checkbox draws a labeled checkbox bound to a bool parameter and reports
// whether it flipped this frame.
func checkbox(x float32, y *float32, label string, v *bool) bool {
	got := gui.CheckBox(rl.Rectangle{X: x + labelWidth, Y: *y, Width: 14, Height: 14}, label, *v)
	*y += rowStep

	if got != *v {
		*v = got
		return true
	}
	return false
}

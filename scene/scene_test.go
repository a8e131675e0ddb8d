package scene

import (
	"testing"

	"github.com/starforge-dev/starforge/config"
)

// testConfig loads the embedded defaults and shrinks the heavy layers so the
// suite stays fast.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Galaxy.Count = 2000
	cfg.WaveCloud.Count = 400
	cfg.Starfield.Count = 500
	cfg.DarkMatter.Segments = 16
	cfg.GreatWave.Segments = 12
	return cfg
}

func TestSceneLayerSizes(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, 42)

	if got := s.Galaxy.Len(); got != cfg.Galaxy.Count {
		t.Errorf("expected %d galaxy stars, got %d", cfg.Galaxy.Count, got)
	}
	if got := s.WaveCloud.Len(); got != cfg.WaveCloud.Count {
		t.Errorf("expected %d cloud particles, got %d", cfg.WaveCloud.Count, got)
	}
	if got := s.Starfield.Len(); got != cfg.Starfield.Count {
		t.Errorf("expected %d background stars, got %d", cfg.Starfield.Count, got)
	}
	wantVerts := (cfg.DarkMatter.Segments + 1) * (cfg.DarkMatter.Segments + 1)
	if got := s.DarkMatter.VertexCount(); got != wantVerts {
		t.Errorf("expected %d surface vertices, got %d", wantVerts, got)
	}
	wantMarkers := cfg.Zones.Count * cfg.Zones.MarkersPerZone
	if got := s.Zones.Len(); got != wantMarkers {
		t.Errorf("expected %d zone markers, got %d", wantMarkers, got)
	}
	if got := s.Graph.Len(); got > cfg.WaveCloud.MaxConnections {
		t.Errorf("graph size %d exceeds cap %d", got, cfg.WaveCloud.MaxConnections)
	}
	if s.GreatWave == nil {
		t.Fatal("expected Great Wave surface with the layer enabled")
	}
	if !s.GreatWave.Wireframe {
		t.Error("expected wireframe intent carried from config")
	}
}

func TestSceneSeedDeterminism(t *testing.T) {
	cfg := testConfig(t)

	a := New(cfg, 7)
	b := New(cfg, 7)
	c := New(cfg, 8)

	if !equalF32(a.Galaxy.Positions(), b.Galaxy.Positions()) {
		t.Error("expected identical galaxies for the same seed")
	}
	if !equalF32(a.WaveCloud.Positions(), b.WaveCloud.Positions()) {
		t.Error("expected identical clouds for the same seed")
	}
	if !equalU32(a.Graph.Indices(), b.Graph.Indices()) {
		t.Error("expected identical graphs for the same seed")
	}
	if equalF32(a.Galaxy.Positions(), c.Galaxy.Positions()) {
		t.Error("expected a different galaxy for a different seed")
	}
}

func TestSceneRebuildReproduces(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, 99)

	first := append([]float32(nil), s.Galaxy.Positions()...)
	s.Update(3.0, cfg)
	s.Rebuild(cfg)

	if !equalF32(s.Galaxy.Positions(), first) {
		t.Error("expected rebuild with unchanged seed to reproduce the galaxy")
	}
}

func TestSceneUpdateIdempotent(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, 42)

	s.Update(2.2, cfg)
	surface := append([]float32(nil), s.DarkMatter.Positions()...)
	wave := append([]float32(nil), s.GreatWave.Positions()...)
	cloud := append([]float32(nil), s.WaveCloud.Positions()...)

	// A detour through another time must not leave residue
	s.Update(5.0, cfg)
	s.Update(2.2, cfg)

	if !equalF32(s.DarkMatter.Positions(), surface) {
		t.Error("dark-matter surface not reproducible at a repeated time")
	}
	if !equalF32(s.GreatWave.Positions(), wave) {
		t.Error("Great Wave surface not reproducible at a repeated time")
	}
	if !equalF32(s.WaveCloud.Positions(), cloud) {
		t.Error("wave cloud not reproducible at a repeated time")
	}
}

func TestSceneGreatWaveDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.GreatWave.Enabled = false

	s := New(cfg, 42)
	if s.GreatWave != nil {
		t.Fatal("expected nil Great Wave surface when disabled")
	}

	// Update must skip the missing layer without panicking
	s.Update(1.0, cfg)

	// Re-enabling brings the surface back on the next rebuild
	cfg.GreatWave.Enabled = true
	s.Rebuild(cfg)
	if s.GreatWave == nil {
		t.Fatal("expected Great Wave surface after re-enabling")
	}
}

func TestSceneGraphFixedAcrossUpdates(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, 42)

	before := append([]uint32(nil), s.Graph.Indices()...)
	for i := 0; i < 10; i++ {
		s.Update(float64(i)*0.4, cfg)
	}

	if !equalU32(s.Graph.Indices(), before) {
		t.Error("expected connection graph to stay fixed while particles move")
	}
}

func TestSceneToggleLayer(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, 42)

	if !s.Visible.Galaxy || !s.Visible.Zones {
		t.Fatal("expected all layers visible initially")
	}

	s.ToggleLayer(LayerGalaxy)
	if s.Visible.Galaxy {
		t.Error("expected galaxy hidden after toggle")
	}
	s.ToggleLayer(LayerGalaxy)
	if !s.Visible.Galaxy {
		t.Error("expected galaxy visible after second toggle")
	}

	s.ToggleLayer(LayerConnections)
	if s.Visible.Connections {
		t.Error("expected connections hidden after toggle")
	}

	// Unknown layer numbers are ignored
	s.ToggleLayer(0)
	s.ToggleLayer(99)
}

func TestSceneRebuildKeepsVisibility(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, 42)

	s.ToggleLayer(LayerStarfield)
	s.Rebuild(cfg)

	if s.Visible.Starfield {
		t.Error("expected visibility to survive a rebuild")
	}
}

func TestSceneRebuildAppliesNewParams(t *testing.T) {
	cfg := testConfig(t)
	s := New(cfg, 42)

	cfg.WaveCloud.Count = 150
	s.Rebuild(cfg)

	if got := s.WaveCloud.Len(); got != 150 {
		t.Errorf("expected 150 cloud particles after rebuild, got %d", got)
	}
}

func equalF32(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		t.Errorf("expected positive screen size, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Galaxy.Count <= 0 {
		t.Error("expected positive galaxy count")
	}
	if cfg.Galaxy.BulgeSize >= cfg.Galaxy.Radius {
		t.Errorf("expected bulge %f inside radius %f", cfg.Galaxy.BulgeSize, cfg.Galaxy.Radius)
	}
	if !cfg.GreatWave.Enabled {
		t.Error("expected Great Wave enabled by default")
	}
	if cfg.Telemetry.Window <= 0 {
		t.Error("expected positive telemetry window")
	}
}

func TestDerivedValues(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	if cfg.Derived.ScreenW32 != int32(cfg.Screen.Width) {
		t.Errorf("expected ScreenW32 %d, got %d", cfg.Screen.Width, cfg.Derived.ScreenW32)
	}

	wantInner := cfg.Galaxy.Radius * cfg.GreatWave.InnerFactor
	if math.Abs(cfg.Derived.GreatWaveInner-wantInner) > 1e-9 {
		t.Errorf("expected annulus inner %f, got %f", wantInner, cfg.Derived.GreatWaveInner)
	}
	if cfg.Derived.GreatWaveInner >= cfg.Derived.GreatWaveOuter {
		t.Error("expected annulus inner < outer")
	}

	if cfg.Derived.ZoneInner >= cfg.Derived.ZoneOuter {
		t.Error("expected zone inner < outer")
	}

	if cfg.Derived.CloudHalfXZ != cfg.WaveCloud.SpanXZ/2 {
		t.Errorf("expected cloud half extent %f, got %f", cfg.WaveCloud.SpanXZ/2, cfg.Derived.CloudHalfXZ)
	}

	wantAz := cfg.Camera.AzimuthDeg * math.Pi / 180
	if math.Abs(cfg.Derived.AzimuthRad-wantAz) > 1e-9 {
		t.Errorf("expected azimuth %f rad, got %f", wantAz, cfg.Derived.AzimuthRad)
	}
}

func TestLoadUserOverlay(t *testing.T) {
	defaults, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := "galaxy:\n  radius: 64\ncamera:\n  distance: 200\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	// Named fields override
	if cfg.Galaxy.Radius != 64 {
		t.Errorf("expected radius 64, got %f", cfg.Galaxy.Radius)
	}
	if cfg.Camera.Distance != 200 {
		t.Errorf("expected camera distance 200, got %f", cfg.Camera.Distance)
	}

	// Unnamed fields keep their defaults
	if cfg.Galaxy.Count != defaults.Galaxy.Count {
		t.Errorf("expected default count %d, got %d", defaults.Galaxy.Count, cfg.Galaxy.Count)
	}

	// Derived values follow the overlay
	wantInner := 64 * cfg.GreatWave.InnerFactor
	if math.Abs(cfg.Derived.GreatWaveInner-wantInner) > 1e-9 {
		t.Errorf("expected annulus inner %f, got %f", wantInner, cfg.Derived.GreatWaveInner)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestZoneBandFallback(t *testing.T) {
	// A bulge crowding the disk would invert the zone band; the fallback
	// keeps inner < outer.
	path := filepath.Join(t.TempDir(), "config.yaml")
	overlay := "galaxy:\n  radius: 10\n  bulge_size: 9\n"
	if err := os.WriteFile(path, []byte(overlay), 0644); err != nil {
		t.Fatalf("writing overlay: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("loading overlay: %v", err)
	}

	if cfg.Derived.ZoneInner >= cfg.Derived.ZoneOuter {
		t.Errorf("expected zone band to stay ordered, got [%f, %f]",
			cfg.Derived.ZoneInner, cfg.Derived.ZoneOuter)
	}
}

func TestRecomputeAfterEdit(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}

	cfg.Galaxy.Radius = 80
	cfg.Recompute()

	wantInner := 80 * cfg.GreatWave.InnerFactor
	if math.Abs(cfg.Derived.GreatWaveInner-wantInner) > 1e-9 {
		t.Errorf("expected annulus inner %f after recompute, got %f",
			wantInner, cfg.Derived.GreatWaveInner)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	cfg.Galaxy.ArmCount = 6
	cfg.WaveCloud.BaseHue = 310

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("writing yaml: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading yaml: %v", err)
	}
	if back.Galaxy.ArmCount != 6 {
		t.Errorf("expected arm count 6 after round trip, got %d", back.Galaxy.ArmCount)
	}
	if back.WaveCloud.BaseHue != 310 {
		t.Errorf("expected base hue 310 after round trip, got %f", back.WaveCloud.BaseHue)
	}
}

func TestInitAndCfg(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("init: %v", err)
	}
	if Cfg() == nil {
		t.Fatal("expected global config after Init")
	}
}

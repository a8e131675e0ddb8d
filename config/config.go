// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Camera     CameraConfig     `yaml:"camera"`
	Galaxy     GalaxyConfig     `yaml:"galaxy"`
	DarkMatter DarkMatterConfig `yaml:"dark_matter"`
	GreatWave  GreatWaveConfig  `yaml:"great_wave"`
	WaveCloud  WaveCloudConfig  `yaml:"wave_cloud"`
	Starfield  StarfieldConfig  `yaml:"starfield"`
	Zones      ZonesConfig      `yaml:"zones"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds orbit camera settings.
type CameraConfig struct {
	Distance     float64 `yaml:"distance"`      // Initial eye distance from origin
	MinDistance  float64 `yaml:"min_distance"`  // Zoom-in limit
	MaxDistance  float64 `yaml:"max_distance"`  // Zoom-out limit
	AzimuthDeg   float64 `yaml:"azimuth_deg"`   // Initial azimuth in degrees
	ElevationDeg float64 `yaml:"elevation_deg"` // Initial elevation in degrees
	OrbitSpeed   float64 `yaml:"orbit_speed"`   // Radians per pixel of mouse drag
	ZoomSpeed    float64 `yaml:"zoom_speed"`    // Exponential zoom factor per wheel notch
	FovYDeg      float64 `yaml:"fov_y_deg"`     // Vertical field of view in degrees
}

// GalaxyConfig holds galaxy field generation parameters.
// All fields are structural: a change requires regeneration.
type GalaxyConfig struct {
	Count           int     `yaml:"count"`            // Number of star particles
	Radius          float64 `yaml:"radius"`           // Outer disk radius in world units
	ArmCount        int     `yaml:"arm_count"`        // Number of spiral arms
	BarLength       float64 `yaml:"bar_length"`       // Central bar extent in world units
	BulgeSize       float64 `yaml:"bulge_size"`       // Bulge radius in world units
	SpiralTightness float64 `yaml:"spiral_tightness"` // Log-spiral winding factor
}

// DarkMatterConfig holds the dark-matter height surface parameters.
// Segments is structural; wave_speed and intensity are read live each frame.
type DarkMatterConfig struct {
	Segments   int     `yaml:"segments"`
	WaveSpeed  float64 `yaml:"wave_speed"`
	Intensity  float64 `yaml:"intensity"`
	BaseHeight float64 `yaml:"base_height"` // Vertical offset the renderer draws the surface at
}

// GreatWaveConfig holds the traveling wave parameters.
// Enabled/segments/factors are structural; amplitude, wave_length and
// wave_speed are read live each frame.
type GreatWaveConfig struct {
	Enabled     bool    `yaml:"enabled"`      // Build and draw the annular surface
	Segments    int     `yaml:"segments"`     // Annulus grid resolution
	Amplitude   float64 `yaml:"amplitude"`    // Displacement amplitude
	WaveLength  float64 `yaml:"wave_length"`  // Radial wavelength in world units
	WaveSpeed   float64 `yaml:"wave_speed"`   // Outward propagation speed factor
	InnerFactor float64 `yaml:"inner_factor"` // Annulus inner radius as a fraction of galaxy radius
	OuterFactor float64 `yaml:"outer_factor"` // Annulus outer radius as a fraction of galaxy radius
	Wireframe   bool    `yaml:"wireframe"`    // Render intent: wireframe instead of filled
}

// WaveCloudConfig holds the wave-particle cloud and its connection graph.
// Counts, spans, hue and graph bounds are structural; wave_speed and
// intensity are read live each frame.
type WaveCloudConfig struct {
	Count              int     `yaml:"count"`
	SpanXZ             float64 `yaml:"span_xz"`             // Full box extent on X and Z
	SpanY              float64 `yaml:"span_y"`              // Full box extent on Y
	BaseHue            float64 `yaml:"base_hue"`            // Base hue in degrees
	WaveSpeed          float64 `yaml:"wave_speed"`
	Intensity          float64 `yaml:"intensity"`
	ConnectionDistance float64 `yaml:"connection_distance"` // Pair threshold in world units
	MaxConnections     int     `yaml:"max_connections"`     // Hard cap on graph size
}

// StarfieldConfig holds background starfield parameters. All structural.
type StarfieldConfig struct {
	Count       int     `yaml:"count"`
	InnerRadius float64 `yaml:"inner_radius"` // Shell inner radius
	OuterRadius float64 `yaml:"outer_radius"` // Shell outer radius
	ClumpFactor float64 `yaml:"clump_factor"` // 0 = uniform, 1 = fully noise-driven density
	NoiseScale  float64 `yaml:"noise_scale"`  // Spatial frequency of the clumping noise
}

// ZonesConfig holds orbital zone marker parameters. All structural.
type ZonesConfig struct {
	Count          int `yaml:"count"`            // Number of ring bands
	MarkersPerZone int `yaml:"markers_per_zone"` // Markers on each ring
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	Window    int    `yaml:"window"`     // Rolling window size in frames
	OutputDir string `yaml:"output_dir"` // CSV output directory ("" disables file output)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32      int32   // Screen.Width as int32 for raylib
	ScreenH32      int32   // Screen.Height as int32 for raylib
	GreatWaveInner float64 // Annulus inner radius in world units
	GreatWaveOuter float64 // Annulus outer radius in world units
	ZoneInner      float64 // Innermost zone ring radius
	ZoneOuter      float64 // Outermost zone ring radius
	CloudHalfXZ    float64 // Half extent of the cloud box on X/Z
	CloudHalfY     float64 // Half extent of the cloud box on Y
	AzimuthRad     float64 // Camera.AzimuthDeg in radians
	ElevationRad   float64 // Camera.ElevationDeg in radians
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// Recompute refreshes the derived values after in-place edits to the
// public fields, such as from the parameter panel.
func (c *Config) Recompute() {
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = int32(c.Screen.Width)
	c.Derived.ScreenH32 = int32(c.Screen.Height)

	// Annulus factors default to the classic 0.6-1.3 band when unset
	inner := c.GreatWave.InnerFactor
	if inner <= 0 {
		inner = 0.6
	}
	outer := c.GreatWave.OuterFactor
	if outer <= inner {
		outer = 1.3
	}
	c.Derived.GreatWaveInner = c.Galaxy.Radius * inner
	c.Derived.GreatWaveOuter = c.Galaxy.Radius * outer

	// Zone rings sit between the bulge and the disk edge
	c.Derived.ZoneInner = c.Galaxy.BulgeSize * 1.4
	c.Derived.ZoneOuter = c.Galaxy.Radius * 0.95
	if c.Derived.ZoneInner >= c.Derived.ZoneOuter {
		c.Derived.ZoneInner = c.Derived.ZoneOuter * 0.25
	}

	c.Derived.CloudHalfXZ = c.WaveCloud.SpanXZ / 2
	c.Derived.CloudHalfY = c.WaveCloud.SpanY / 2

	c.Derived.AzimuthRad = c.Camera.AzimuthDeg * math.Pi / 180
	c.Derived.ElevationRad = c.Camera.ElevationDeg * math.Pi / 180

	if c.Telemetry.Window <= 0 {
		c.Telemetry.Window = 240
	}
	if c.Camera.FovYDeg <= 0 {
		c.Camera.FovYDeg = 45
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

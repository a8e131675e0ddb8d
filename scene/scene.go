// Package scene owns the generated layers of the galaxy scene and advances
// them once per frame.
//
// Parameters split two ways. Structural parameters (counts, radii, segment
// counts, graph bounds) are consumed by Rebuild; live parameters (speeds,
// intensities, amplitude, wavelength) are read from the config on every
// Update and take effect without regeneration.
package scene

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/starforge-dev/starforge/config"
	"github.com/starforge-dev/starforge/sim"
	"github.com/starforge-dev/starforge/telemetry"
)

// Layer numbers used by ToggleLayer, matching the viewer's number keys.
const (
	LayerGalaxy = iota + 1
	LayerDarkMatter
	LayerGreatWave
	LayerWaveCloud
	LayerConnections
	LayerStarfield
	LayerZones
)

// Visibility selects which layers the renderer draws. It is render-side
// only: hidden layers keep updating, so toggling one back shows its current
// state, not a stale one.
type Visibility struct {
	Galaxy      bool
	DarkMatter  bool
	GreatWave   bool
	WaveCloud   bool
	Connections bool
	Starfield   bool
	Zones       bool
}

// allVisible is the starting visibility.
var allVisible = Visibility{
	Galaxy:      true,
	DarkMatter:  true,
	GreatWave:   true,
	WaveCloud:   true,
	Connections: true,
	Starfield:   true,
	Zones:       true,
}

// Scene holds every generated layer. Rebuild regenerates them together from
// one seeded rng; Update mutates heights in place. Buffer views handed to a
// renderer stay valid until the next Rebuild.
type Scene struct {
	Galaxy     *sim.ParticleSet
	DarkMatter *sim.SurfaceGrid
	GreatWave  *sim.SurfaceGrid // nil while the layer is disabled
	WaveCloud  *sim.ParticleSet
	Graph      *sim.ConnectionGraph
	Starfield  *sim.ParticleSet
	Zones      *sim.ZoneSet

	Visible Visibility

	// Perf, when set, records the update phases of every frame.
	// A nil collector is fine; all its methods are no-ops.
	Perf *telemetry.FrameCollector

	seed int64
}

// New builds a scene from the configuration. The seed fixes every generated
// layer: rebuilding with the same seed and parameters reproduces the scene
// exactly.
func New(cfg *config.Config, seed int64) *Scene {
	s := &Scene{seed: seed, Visible: allVisible}
	s.Rebuild(cfg)
	return s
}

// Seed returns the generation seed.
func (s *Scene) Seed() int64 {
	return s.seed
}

// SetSeed changes the generation seed used by subsequent rebuilds.
func (s *Scene) SetSeed(seed int64) {
	s.seed = seed
}

// Rebuild regenerates every structural layer from the configuration, in a
// fixed order so a given seed always yields the same scene. The connection
// graph is built over the cloud's generation-time positions and then never
// re-evaluated.
func (s *Scene) Rebuild(cfg *config.Config) {
	start := time.Now()

	// Derived values follow any in-place edits to the public fields.
	cfg.Recompute()

	rng := rand.New(rand.NewSource(s.seed))

	s.Galaxy = sim.GenerateGalaxy(sim.GalaxyParams{
		Count:           cfg.Galaxy.Count,
		Radius:          cfg.Galaxy.Radius,
		ArmCount:        cfg.Galaxy.ArmCount,
		BarLength:       cfg.Galaxy.BarLength,
		BulgeSize:       cfg.Galaxy.BulgeSize,
		SpiralTightness: cfg.Galaxy.SpiralTightness,
	}, rng)

	s.DarkMatter = sim.NewPlanarSurface(cfg.DarkMatter.Segments)

	if cfg.GreatWave.Enabled {
		s.GreatWave = sim.NewAnnulusSurface(
			cfg.GreatWave.Segments,
			cfg.Derived.GreatWaveInner,
			cfg.Derived.GreatWaveOuter,
			cfg.GreatWave.Wireframe,
		)
	} else {
		s.GreatWave = nil
	}

	s.WaveCloud = sim.GenerateWaveCloud(sim.CloudParams{
		Count:   cfg.WaveCloud.Count,
		SpanXZ:  cfg.WaveCloud.SpanXZ,
		SpanY:   cfg.WaveCloud.SpanY,
		BaseHue: cfg.WaveCloud.BaseHue,
	}, rng)

	s.Graph = sim.BuildConnectionGraph(
		s.WaveCloud.Positions(),
		cfg.WaveCloud.ConnectionDistance,
		cfg.WaveCloud.MaxConnections,
	)

	s.Starfield = sim.GenerateStarfield(sim.StarfieldParams{
		Count:       cfg.Starfield.Count,
		InnerRadius: cfg.Starfield.InnerRadius,
		OuterRadius: cfg.Starfield.OuterRadius,
		ClumpFactor: cfg.Starfield.ClumpFactor,
		NoiseScale:  cfg.Starfield.NoiseScale,
	}, rng)

	s.Zones = sim.GenerateZones(sim.ZoneParams{
		Zones:          cfg.Zones.Count,
		MarkersPerZone: cfg.Zones.MarkersPerZone,
		InnerRadius:    cfg.Derived.ZoneInner,
		OuterRadius:    cfg.Derived.ZoneOuter,
	}, rng)

	slog.Info("scene rebuilt",
		"seed", s.seed,
		"galaxy_stars", s.Galaxy.Len(),
		"cloud_particles", s.WaveCloud.Len(),
		"connections", s.Graph.Len(),
		"surface_vertices", s.DarkMatter.VertexCount(),
		"background_stars", s.Starfield.Len(),
		"zone_markers", s.Zones.Len(),
		"build_ms", time.Since(start).Milliseconds(),
	)
}

// Update advances the animated layers to the given elapsed time, in a fixed
// order: dark-matter surface, Great Wave, wave cloud. elapsed is an absolute
// clock, not a delta, so repeating a value leaves buffers bit-identical.
func (s *Scene) Update(elapsed float64, cfg *config.Config) {
	s.Perf.StartPhase(telemetry.PhaseDarkMatter)
	s.DarkMatter.UpdateDarkMatter(elapsed, cfg.DarkMatter.WaveSpeed, cfg.DarkMatter.Intensity)

	if s.GreatWave != nil {
		s.Perf.StartPhase(telemetry.PhaseGreatWave)
		s.GreatWave.UpdateTraveling(elapsed, cfg.GreatWave.Amplitude, cfg.GreatWave.WaveLength, cfg.GreatWave.WaveSpeed)
	}

	s.Perf.StartPhase(telemetry.PhaseWaveCloud)
	sim.UpdateWaveCloud(s.WaveCloud, elapsed, cfg.WaveCloud.WaveSpeed, cfg.WaveCloud.Intensity)
}

// ToggleLayer flips the visibility of the numbered layer. Unknown numbers
// are ignored.
func (s *Scene) ToggleLayer(layer int) {
	switch layer {
	case LayerGalaxy:
		s.Visible.Galaxy = !s.Visible.Galaxy
	case LayerDarkMatter:
		s.Visible.DarkMatter = !s.Visible.DarkMatter
	case LayerGreatWave:
		s.Visible.GreatWave = !s.Visible.GreatWave
	case LayerWaveCloud:
		s.Visible.WaveCloud = !s.Visible.WaveCloud
	case LayerConnections:
		s.Visible.Connections = !s.Visible.Connections
	case LayerStarfield:
		s.Visible.Starfield = !s.Visible.Starfield
	case LayerZones:
		s.Visible.Zones = !s.Visible.Zones
	}
}

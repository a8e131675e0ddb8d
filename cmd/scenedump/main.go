// Scene dump tool - generates the scene without a window, advances it a
// fixed number of frames and writes every layer buffer to CSV for offline
// inspection.
//
// Usage: go run ./cmd/scenedump -out dump/run1 [-seed 42] [-frames 120]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/starforge-dev/starforge/config"
	"github.com/starforge-dev/starforge/scene"
	"github.com/starforge-dev/starforge/sim"
	"github.com/starforge-dev/starforge/telemetry"
)

// particleRow is one particle of a colored layer.
type particleRow struct {
	Index int     `csv:"index"`
	X     float32 `csv:"x"`
	Y     float32 `csv:"y"`
	Z     float32 `csv:"z"`
	R     float32 `csv:"r"`
	G     float32 `csv:"g"`
	B     float32 `csv:"b"`
}

// vertexRow is one surface vertex with its normal.
type vertexRow struct {
	Index int     `csv:"index"`
	X     float32 `csv:"x"`
	Y     float32 `csv:"y"`
	Z     float32 `csv:"z"`
	NX    float32 `csv:"nx"`
	NY    float32 `csv:"ny"`
	NZ    float32 `csv:"nz"`
}

// pairRow is one connection graph edge.
type pairRow struct {
	Pair int    `csv:"pair"`
	I    uint32 `csv:"i"`
	J    uint32 `csv:"j"`
}

// markerRow is one zone marker with its tangent direction.
type markerRow struct {
	Index int     `csv:"index"`
	X     float32 `csv:"x"`
	Y     float32 `csv:"y"`
	Z     float32 `csv:"z"`
	R     float32 `csv:"r"`
	G     float32 `csv:"g"`
	B     float32 `csv:"b"`
	DirX  float32 `csv:"dir_x"`
	DirY  float32 `csv:"dir_y"`
	DirZ  float32 `csv:"dir_z"`
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	out := flag.String("out", "", "Output directory (required)")
	seed := flag.Int64("seed", 42, "Generation seed")
	frames := flag.Int("frames", 120, "Frames to advance before dumping")

	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *out == "" {
		slog.Error("-out is required")
		os.Exit(1)
	}

	if err := run(*configPath, *out, *seed, *frames); err != nil {
		slog.Error("scene dump failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, out string, seed int64, frames int) error {
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := config.Cfg()

	if err := os.MkdirAll(out, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	perf := telemetry.NewFrameCollector(cfg.Telemetry.Window)
	sc := scene.New(cfg, seed)
	sc.Perf = perf

	// Advance the animated layers to a reproducible time
	const dt = 1.0 / 60.0
	for frame := 1; frame <= frames; frame++ {
		perf.StartFrame()
		sc.Update(float64(frame)*dt, cfg)
		perf.EndFrame()
	}

	if err := dumpParticles(filepath.Join(out, "galaxy.csv"), sc.Galaxy); err != nil {
		return err
	}
	if err := dumpParticles(filepath.Join(out, "cloud.csv"), sc.WaveCloud); err != nil {
		return err
	}
	if err := dumpParticles(filepath.Join(out, "starfield.csv"), sc.Starfield); err != nil {
		return err
	}
	if err := dumpSurface(filepath.Join(out, "surface.csv"), sc.DarkMatter); err != nil {
		return err
	}
	if sc.GreatWave != nil {
		if err := dumpSurface(filepath.Join(out, "wave_surface.csv"), sc.GreatWave); err != nil {
			return err
		}
	}
	if err := dumpGraph(filepath.Join(out, "graph.csv"), sc.Graph); err != nil {
		return err
	}
	if err := dumpZones(filepath.Join(out, "zones.csv"), sc.Zones); err != nil {
		return err
	}
	if err := dumpStats(filepath.Join(out, "stats.csv"), perf, frames); err != nil {
		return err
	}

	slog.Info("scene dumped",
		"dir", out,
		"seed", seed,
		"frames", frames,
		"galaxy_stars", sc.Galaxy.Len(),
		"cloud_particles", sc.WaveCloud.Len(),
		"connections", sc.Graph.Len(),
	)
	return nil
}

func dumpParticles(path string, set *sim.ParticleSet) error {
	positions, colors := set.Positions(), set.Colors()
	rows := make([]particleRow, set.Len())
	for i := range rows {
		rows[i] = particleRow{
			Index: i,
			X:     positions[3*i],
			Y:     positions[3*i+1],
			Z:     positions[3*i+2],
			R:     colors[3*i],
			G:     colors[3*i+1],
			B:     colors[3*i+2],
		}
	}
	return writeCSV(path, &rows)
}

func dumpSurface(path string, g *sim.SurfaceGrid) error {
	positions, normals := g.Positions(), g.Normals()
	rows := make([]vertexRow, g.VertexCount())
	for i := range rows {
		rows[i] = vertexRow{
			Index: i,
			X:     positions[3*i],
			Y:     positions[3*i+1],
			Z:     positions[3*i+2],
			NX:    normals[3*i],
			NY:    normals[3*i+1],
			NZ:    normals[3*i+2],
		}
	}
	return writeCSV(path, &rows)
}

func dumpGraph(path string, g *sim.ConnectionGraph) error {
	pairs := g.Indices()
	rows := make([]pairRow, g.Len())
	for i := range rows {
		rows[i] = pairRow{Pair: i, I: pairs[2*i], J: pairs[2*i+1]}
	}
	return writeCSV(path, &rows)
}

func dumpZones(path string, zs *sim.ZoneSet) error {
	positions, colors, directions := zs.Positions(), zs.Colors(), zs.Directions()
	rows := make([]markerRow, zs.Len())
	for i := range rows {
		rows[i] = markerRow{
			Index: i,
			X:     positions[3*i],
			Y:     positions[3*i+1],
			Z:     positions[3*i+2],
			R:     colors[3*i],
			G:     colors[3*i+1],
			B:     colors[3*i+2],
			DirX:  directions[3*i],
			DirY:  directions[3*i+1],
			DirZ:  directions[3*i+2],
		}
	}
	return writeCSV(path, &rows)
}

func dumpStats(path string, perf *telemetry.FrameCollector, frames int) error {
	rows := []telemetry.FrameStatsCSV{perf.Stats().ToCSV(frames)}
	return writeCSV(path, &rows)
}

func writeCSV(path string, rows any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

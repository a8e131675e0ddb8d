package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/starforge-dev/starforge/config"
	"github.com/starforge-dev/starforge/scene"
	"github.com/starforge-dev/starforge/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "Generation seed (0 = time-based)")
	headless := flag.Bool("headless", false, "Run without graphics")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited; headless default 600)")
	logStats := flag.Bool("log-stats", false, "Log frame stats at every telemetry window")
	outputDir := flag.String("output-dir", "", "Output directory for CSV telemetry and config snapshot (overrides config)")
	writeConfig := flag.String("write-config", "", "Write the active config to this path and exit")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	if *writeConfig != "" {
		if err := cfg.WriteYAML(*writeConfig); err != nil {
			slog.Error("failed to write config", "error", err)
			os.Exit(1)
		}
		slog.Info("config written", "path", *writeConfig)
		return
	}

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// CLI output dir wins over the config's
	dir := cfg.Telemetry.OutputDir
	if *outputDir != "" {
		dir = *outputDir
	}
	out, err := telemetry.NewOutputManager(dir)
	if err != nil {
		slog.Error("failed to open output directory", "error", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	perf := telemetry.NewFrameCollector(cfg.Telemetry.Window)

	slog.Info("starting",
		"seed", rngSeed,
		"headless", *headless,
		"max_frames", *maxFrames,
		"output_dir", out.Dir(),
	)

	sc := scene.New(cfg, rngSeed)
	sc.Perf = perf

	if *headless {
		runHeadless(sc, cfg, perf, out, *maxFrames, *logStats)
		return
	}
	runViewer(sc, cfg, perf, out, *maxFrames, *logStats)
}

// runHeadless advances a fixed synthetic clock with no window, for
// benchmarking and CI.
func runHeadless(sc *scene.Scene, cfg *config.Config, perf *telemetry.FrameCollector,
	out *telemetry.OutputManager, maxFrames int, logStats bool) {

	frames := maxFrames
	if frames <= 0 {
		frames = 600
	}

	const dt = 1.0 / 60.0
	for frame := 1; frame <= frames; frame++ {
		perf.StartFrame()
		sc.Update(float64(frame)*dt, cfg)
		perf.EndFrame()

		if frame%cfg.Telemetry.Window == 0 {
			flushStats(perf, out, frame, logStats)
		}
	}

	slog.Info("headless run complete", "frames", frames, "stats", perf.Stats())
}

// flushStats logs and persists the current window aggregates.
func flushStats(perf *telemetry.FrameCollector, out *telemetry.OutputManager, frame int, logStats bool) {
	stats := perf.Stats()
	if logStats {
		slog.Info("frame stats", "frame", frame, "stats", stats)
	}
	if err := out.WriteFrameStats(stats.ToCSV(frame)); err != nil {
		slog.Error("failed to write frame stats", "error", err)
	}
}

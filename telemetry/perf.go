// Package telemetry provides frame timing collection, windowed statistics
// and CSV/YAML run output.
package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Phase names for one frame of the scene loop.
const (
	PhaseDarkMatter = "dark_matter"
	PhaseGreatWave  = "great_wave"
	PhaseWaveCloud  = "wave_cloud"
	PhaseDraw       = "draw"
)

// FrameSample holds timing data for a single frame.
type FrameSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// FrameCollector tracks frame timings over a rolling window. A nil collector
// is valid and records nothing, so callers can leave telemetry unwired.
type FrameCollector struct {
	windowSize    int
	samples       []FrameSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewFrameCollector creates a frame collector.
// windowSize: number of frames to aggregate over (e.g., 240 for 4 seconds at 60fps).
func NewFrameCollector(windowSize int) *FrameCollector {
	if windowSize < 1 {
		windowSize = 240
	}
	return &FrameCollector{
		windowSize:    windowSize,
		samples:       make([]FrameSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *FrameCollector) StartFrame() {
	if p == nil {
		return
	}
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase, closing the previous one.
func (p *FrameCollector) StartPhase(phase string) {
	if p == nil {
		return
	}
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame closes the current phase and records the sample.
func (p *FrameCollector) EndFrame() {
	if p == nil {
		return
	}
	now := time.Now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	sample := FrameSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}

	p.samples[p.writeIndex] = sample
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// FrameStats holds aggregated frame statistics.
type FrameStats struct {
	Frames      int
	MeanFrame   time.Duration
	StdDevFrame time.Duration
	MinFrame    time.Duration
	MaxFrame    time.Duration
	P95Frame    time.Duration
	FPS         float64

	// Phase breakdown (mean durations and percentages of mean frame time)
	PhaseMean map[string]time.Duration
	PhasePct  map[string]float64
}

// Stats computes aggregated statistics over the current window.
func (p *FrameCollector) Stats() FrameStats {
	if p == nil || p.sampleCount == 0 {
		return FrameStats{
			PhaseMean: make(map[string]time.Duration),
			PhasePct:  make(map[string]float64),
		}
	}

	seconds := make([]float64, p.sampleCount)
	phaseSum := make(map[string]time.Duration)
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		seconds[i] = s.FrameDuration.Seconds()
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	mean := stat.Mean(seconds, nil)
	var stdDev float64
	if p.sampleCount > 1 {
		stdDev = stat.StdDev(seconds, nil)
	}
	minFrame := floats.Min(seconds)
	maxFrame := floats.Max(seconds)
	sort.Float64s(seconds)
	p95 := stat.Quantile(0.95, stat.Empirical, seconds, nil)

	meanFrame := secondsToDuration(mean)

	phaseMean := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseMean[phase] = sum / time.Duration(p.sampleCount)
		if meanFrame > 0 {
			phasePct[phase] = float64(phaseMean[phase]) / float64(meanFrame) * 100
		}
	}

	var fps float64
	if mean > 0 {
		fps = 1 / mean
	}

	return FrameStats{
		Frames:      p.sampleCount,
		MeanFrame:   meanFrame,
		StdDevFrame: secondsToDuration(stdDev),
		MinFrame:    secondsToDuration(minFrame),
		MaxFrame:    secondsToDuration(maxFrame),
		P95Frame:    secondsToDuration(p95),
		FPS:         fps,
		PhaseMean:   phaseMean,
		PhasePct:    phasePct,
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Int64("mean_frame_us", s.MeanFrame.Microseconds()),
		slog.Int64("stddev_frame_us", s.StdDevFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("p95_frame_us", s.P95Frame.Microseconds()),
		slog.Float64("fps", s.FPS),
	}

	for phase, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(phase+"_pct", pct))
	}

	return slog.GroupValue(attrs...)
}

// FrameStatsCSV is a flat struct for CSV export of frame stats.
type FrameStatsCSV struct {
	Frame         int     `csv:"frame"`
	MeanFrameUS   int64   `csv:"mean_frame_us"`
	StdDevFrameUS int64   `csv:"stddev_frame_us"`
	MinFrameUS    int64   `csv:"min_frame_us"`
	MaxFrameUS    int64   `csv:"max_frame_us"`
	P95FrameUS    int64   `csv:"p95_frame_us"`
	FPS           float64 `csv:"fps"`
	DarkMatterPct float64 `csv:"dark_matter_pct"`
	GreatWavePct  float64 `csv:"great_wave_pct"`
	WaveCloudPct  float64 `csv:"wave_cloud_pct"`
	DrawPct       float64 `csv:"draw_pct"`
}

// ToCSV converts FrameStats to a flat CSV-friendly struct.
// frame is the loop frame counter at the end of the window.
func (s FrameStats) ToCSV(frame int) FrameStatsCSV {
	return FrameStatsCSV{
		Frame:         frame,
		MeanFrameUS:   s.MeanFrame.Microseconds(),
		StdDevFrameUS: s.StdDevFrame.Microseconds(),
		MinFrameUS:    s.MinFrame.Microseconds(),
		MaxFrameUS:    s.MaxFrame.Microseconds(),
		P95FrameUS:    s.P95Frame.Microseconds(),
		FPS:           s.FPS,
		DarkMatterPct: s.PhasePct[PhaseDarkMatter],
		GreatWavePct:  s.PhasePct[PhaseGreatWave],
		WaveCloudPct:  s.PhasePct[PhaseWaveCloud],
		DrawPct:       s.PhasePct[PhaseDraw],
	}
}

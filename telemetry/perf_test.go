package telemetry

import (
	"strings"
	"testing"
	"time"

	"github.com/gocarina/gocsv"
)

func TestFrameCollector_BasicTiming(t *testing.T) {
	fc := NewFrameCollector(10)

	// Simulate a few frames
	for i := 0; i < 5; i++ {
		fc.StartFrame()
		fc.StartPhase(PhaseDarkMatter)
		time.Sleep(100 * time.Microsecond)
		fc.StartPhase(PhaseWaveCloud)
		time.Sleep(200 * time.Microsecond)
		fc.EndFrame()
	}

	stats := fc.Stats()

	if stats.MeanFrame <= 0 {
		t.Error("expected positive mean frame duration")
	}
	if stats.Frames != 5 {
		t.Errorf("expected 5 frames in window, got %d", stats.Frames)
	}

	// Verify phases are tracked
	if _, ok := stats.PhaseMean[PhaseDarkMatter]; !ok {
		t.Error("expected dark_matter phase to be tracked")
	}
	if _, ok := stats.PhaseMean[PhaseWaveCloud]; !ok {
		t.Error("expected wave_cloud phase to be tracked")
	}
}

func TestFrameCollector_RollingWindow(t *testing.T) {
	fc := NewFrameCollector(5) // Small window

	// Overfill the window
	for i := 0; i < 10; i++ {
		fc.StartFrame()
		fc.StartPhase(PhaseDarkMatter)
		fc.EndFrame()
	}

	stats := fc.Stats()

	if stats.Frames != 5 {
		t.Errorf("expected window capped at 5 frames, got %d", stats.Frames)
	}
	if stats.MeanFrame <= 0 {
		t.Error("expected positive mean frame duration after window filled")
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}
}

func TestFrameCollector_PhasePercentages(t *testing.T) {
	fc := NewFrameCollector(10)

	// Simulate with uneven phase durations
	for i := 0; i < 5; i++ {
		fc.StartFrame()
		fc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		fc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		fc.EndFrame()
	}

	stats := fc.Stats()

	fastPct := stats.PhasePct["fast"]
	slowPct := stats.PhasePct["slow"]

	// Slow phase should take more % than fast
	if slowPct <= fastPct {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", slowPct, fastPct)
	}
}

func TestFrameCollector_WindowAggregates(t *testing.T) {
	fc := NewFrameCollector(10)

	// Inject known samples so the aggregates are exact
	durations := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
	}
	for i, d := range durations {
		fc.samples[i] = FrameSample{FrameDuration: d}
	}
	fc.sampleCount = len(durations)

	stats := fc.Stats()

	if !durationNear(stats.MeanFrame, 25*time.Millisecond, 10*time.Microsecond) {
		t.Errorf("expected mean 25ms, got %v", stats.MeanFrame)
	}
	if !durationNear(stats.MinFrame, 10*time.Millisecond, 10*time.Microsecond) {
		t.Errorf("expected min 10ms, got %v", stats.MinFrame)
	}
	if !durationNear(stats.MaxFrame, 40*time.Millisecond, 10*time.Microsecond) {
		t.Errorf("expected max 40ms, got %v", stats.MaxFrame)
	}
	// Empirical p95 of four samples is the largest one
	if !durationNear(stats.P95Frame, 40*time.Millisecond, 10*time.Microsecond) {
		t.Errorf("expected p95 40ms, got %v", stats.P95Frame)
	}
	// Sample stddev of {10,20,30,40}ms is ~12.91ms
	if stats.StdDevFrame < 12*time.Millisecond || stats.StdDevFrame > 14*time.Millisecond {
		t.Errorf("expected stddev ~12.9ms, got %v", stats.StdDevFrame)
	}
	if stats.FPS < 39.9 || stats.FPS > 40.1 {
		t.Errorf("expected 40 FPS from 25ms mean, got %v", stats.FPS)
	}
}

func TestFrameCollector_EmptyStats(t *testing.T) {
	fc := NewFrameCollector(10)

	stats := fc.Stats()

	// Empty collector should return zero values without panicking
	if stats.MeanFrame != 0 {
		t.Error("expected zero mean frame duration for empty collector")
	}
	if stats.PhaseMean == nil {
		t.Error("expected non-nil PhaseMean map")
	}
	if stats.PhasePct == nil {
		t.Error("expected non-nil PhasePct map")
	}
}

func TestFrameCollector_NilSafe(t *testing.T) {
	var fc *FrameCollector

	// All methods must be no-ops on a nil collector
	fc.StartFrame()
	fc.StartPhase(PhaseDraw)
	fc.EndFrame()

	stats := fc.Stats()
	if stats.Frames != 0 {
		t.Errorf("expected empty stats from nil collector, got %d frames", stats.Frames)
	}
}

func TestFrameStats_ToCSV(t *testing.T) {
	stats := FrameStats{
		MeanFrame: 16 * time.Millisecond,
		P95Frame:  20 * time.Millisecond,
		FPS:       62.5,
		PhasePct: map[string]float64{
			PhaseDarkMatter: 21.5,
			PhaseGreatWave:  9.25,
			PhaseWaveCloud:  14.0,
			PhaseDraw:       50.0,
		},
	}

	record := stats.ToCSV(240)

	if record.Frame != 240 {
		t.Errorf("expected frame 240, got %d", record.Frame)
	}
	if record.MeanFrameUS != 16000 {
		t.Errorf("expected mean 16000us, got %d", record.MeanFrameUS)
	}
	if record.DarkMatterPct != 21.5 || record.GreatWavePct != 9.25 {
		t.Errorf("expected phase percentages carried over, got %v / %v",
			record.DarkMatterPct, record.GreatWavePct)
	}
	if record.DrawPct != 50.0 {
		t.Errorf("expected draw pct 50, got %v", record.DrawPct)
	}
}

func TestFrameStatsCSV_RoundTrip(t *testing.T) {
	records := []FrameStatsCSV{{
		Frame:         240,
		MeanFrameUS:   16600,
		StdDevFrameUS: 1200,
		MinFrameUS:    15000,
		MaxFrameUS:    22000,
		P95FrameUS:    19800,
		FPS:           60.2,
		DarkMatterPct: 21.5,
		GreatWavePct:  9.25,
		WaveCloudPct:  14.0,
		DrawPct:       50.0,
	}}

	out, err := gocsv.MarshalString(&records)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(out, "mean_frame_us") {
		t.Errorf("expected csv header with mean_frame_us, got %q", out)
	}

	var back []FrameStatsCSV
	if err := gocsv.UnmarshalString(out, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(back) != 1 {
		t.Fatalf("expected 1 record, got %d", len(back))
	}
	if back[0] != records[0] {
		t.Errorf("roundtrip mismatch: %+v != %+v", back[0], records[0])
	}
}

func durationNear(got, want, tol time.Duration) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= tol
}

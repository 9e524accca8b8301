package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartTick()
		pc.Observe(PhaseIndex, 100*time.Microsecond)
		pc.Observe(PhaseDensity, 200*time.Microsecond)
		time.Sleep(100 * time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()

	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration")
	}
	if stats.PhaseAvg[PhaseIndex] != 100*time.Microsecond {
		t.Errorf("index phase avg = %v, want 100us", stats.PhaseAvg[PhaseIndex])
	}
	if stats.PhaseAvg[PhaseDensity] != 200*time.Microsecond {
		t.Errorf("density phase avg = %v, want 200us", stats.PhaseAvg[PhaseDensity])
	}
}

func TestPerfCollector_ObserveAccumulates(t *testing.T) {
	pc := NewPerfCollector(10)

	pc.StartTick()
	pc.Observe(PhaseForce, 50*time.Microsecond)
	pc.Observe(PhaseForce, 30*time.Microsecond)
	pc.EndTick()

	stats := pc.Stats()
	if got := stats.PhaseAvg[PhaseForce]; got != 80*time.Microsecond {
		t.Errorf("accumulated force phase = %v, want 80us", got)
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	// Overfill the window; the collector keeps only the last 5 samples.
	for i := 0; i < 10; i++ {
		pc.StartTick()
		pc.Observe(PhaseIndex, time.Microsecond)
		pc.EndTick()
	}

	stats := pc.Stats()
	if stats.AvgTickDuration <= 0 {
		t.Error("expected positive average tick duration after window filled")
	}
	if stats.TicksPerSecond <= 0 {
		t.Error("expected positive ticks per second")
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	pc := NewPerfCollector(10)
	stats := pc.Stats()

	if stats.AvgTickDuration != 0 {
		t.Error("expected zero average with no samples")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps with no samples")
	}
}

func TestPerfStats_ToCSV(t *testing.T) {
	pc := NewPerfCollector(10)
	pc.StartTick()
	pc.Observe(PhaseDensity, time.Millisecond)
	pc.EndTick()

	csv := pc.Stats().ToCSV(42)
	if csv.WindowEnd != 42 {
		t.Errorf("window end = %d, want 42", csv.WindowEnd)
	}
	if csv.DensityPct <= 0 {
		t.Error("expected positive density phase percentage")
	}
}

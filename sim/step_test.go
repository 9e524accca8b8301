package sim

import (
	"testing"
	"time"
)

// TestLifetimeConvergence runs a full cohort from spawn to death and
// checks the mean lifetime lands near the configured duration. Decay is
// jittered +/-20% per particle, so individual lifetimes spread but the
// mean converges.
func TestLifetimeConvergence(t *testing.T) {
	const capacity = 1000
	s := testSimulator(capacity)
	p := testParams() // lifetime 2s at 60fps = 120 frames nominal
	p.Gravity = 0
	p.Buoyancy = 0
	p.TurbulenceStrength = 0

	stats := s.Step(p, Emission{X: 500, Y: 350, Count: capacity}, nil)
	if stats.Spawned != capacity {
		t.Fatalf("spawned %d, want %d", stats.Spawned, capacity)
	}

	var totalFrames float64
	frame := 1
	for s.Alive() > 0 {
		frame++
		if frame > 1000 {
			t.Fatal("cohort did not die out")
		}
		stats = s.Step(p, Emission{}, nil)
		totalFrames += float64(stats.Culled) * float64(frame)
	}

	mean := totalFrames / capacity
	if mean < 96 || mean > 144 {
		t.Errorf("mean lifetime = %.1f frames, want within [96, 144]", mean)
	}
}

// TestEmissionPoolExhaustion verifies over-capacity emission is dropped
// silently rather than growing the pool or erroring.
func TestEmissionPoolExhaustion(t *testing.T) {
	s := testSimulator(10)
	p := testParams()

	stats := s.Step(p, Emission{X: 100, Y: 100, Count: 20}, nil)
	if stats.Spawned != 10 {
		t.Errorf("spawned = %d, want 10", stats.Spawned)
	}
	if stats.Alive != 10 {
		t.Errorf("alive = %d, want 10", stats.Alive)
	}

	stats = s.Step(p, Emission{X: 100, Y: 100, Count: 5}, nil)
	if stats.Spawned != 0 {
		t.Errorf("spawned from exhausted pool = %d, want 0", stats.Spawned)
	}
}

// TestEmissionJitterBounds verifies spawn positions stay within the
// configured jitter box around the emission point.
func TestEmissionJitterBounds(t *testing.T) {
	s := testSimulator(200)
	p := testParams()

	s.emit(p, Emission{X: 400, Y: 300, Count: 200, Jitter: 10})

	s.ForEachAlive(func(x, y, _, _ float32) {
		if x < 390 || x > 410 || y < 290 || y > 310 {
			t.Errorf("spawn at (%v,%v) outside jitter bounds", x, y)
		}
	})
}

// TestIndexRebuildThreshold verifies the grid keeps its cell size for
// small smoothing-radius drift and rebuilds once the drift exceeds 1.0.
func TestIndexRebuildThreshold(t *testing.T) {
	s := testSimulator(10)
	p := testParams() // smoothing radius 30, grid built at 30

	p.SmoothingRadius = 30.5
	s.Step(p, Emission{}, nil)
	if got := s.grid.CellSize(); got != 30 {
		t.Errorf("cell size after small drift = %v, want 30", got)
	}

	p.SmoothingRadius = 35
	s.Step(p, Emission{}, nil)
	if got := s.grid.CellSize(); got != 35 {
		t.Errorf("cell size after large drift = %v, want 35", got)
	}
}

// TestOpacityVisibilityThreshold verifies nearly-dead particles report
// zero opacity while still being alive and simulated.
func TestOpacityVisibilityThreshold(t *testing.T) {
	s := testSimulator(1)
	p := testParams()

	e, _ := s.pool.Acquire(100, 100, p)
	life := s.pool.lifeMap.Get(e)
	life.Value = 3

	seen := 0
	s.ForEachAlive(func(_, _, _, opacity float32) {
		seen++
		if opacity != 0 {
			t.Errorf("opacity = %v for life below threshold, want 0", opacity)
		}
	})
	if seen != 1 {
		t.Fatalf("visited %d particles, want 1", seen)
	}
	if s.Alive() != 1 {
		t.Errorf("alive = %d, want 1", s.Alive())
	}
}

// TestForEachStateSnapshot verifies the telemetry snapshot reflects live
// particle state.
func TestForEachStateSnapshot(t *testing.T) {
	s := testSimulator(4)
	p := testParams()

	s.pool.Acquire(10, 20, p)
	s.pool.Acquire(30, 40, p)

	var states []ParticleState
	s.ForEachState(func(st ParticleState) {
		states = append(states, st)
	})
	if len(states) != 2 {
		t.Fatalf("snapshot count = %d, want 2", len(states))
	}
	for _, st := range states {
		if st.Life != 255 {
			t.Errorf("snapshot life = %v, want 255", st.Life)
		}
		if st.Radius < p.BaseRadius {
			t.Errorf("snapshot radius = %v, want >= %v", st.Radius, p.BaseRadius)
		}
	}
}

type recordingTimer struct {
	phases map[string]time.Duration
}

func (r *recordingTimer) Observe(phase string, d time.Duration) {
	if r.phases == nil {
		r.phases = map[string]time.Duration{}
	}
	r.phases[phase] += d
}

// TestPhaseTimerObservesPipeline verifies every pipeline phase reports a
// timing when a timer is attached.
func TestPhaseTimerObservesPipeline(t *testing.T) {
	s := testSimulator(10)
	p := testParams()

	timer := &recordingTimer{}
	s.SetPhaseTimer(timer)
	s.Step(p, Emission{X: 100, Y: 100, Count: 5}, nil)

	for _, phase := range []string{"emit", "index", "density", "force", "integrate"} {
		if _, ok := timer.phases[phase]; !ok {
			t.Errorf("phase %q not observed", phase)
		}
	}
}

// TestClockAdvancesPerStep verifies the turbulence clock advances by the
// fixed increment each frame, independent of spatial stepping.
func TestClockAdvancesPerStep(t *testing.T) {
	s := testSimulator(1)
	p := testParams()

	for i := 0; i < 10; i++ {
		s.Step(p, Emission{}, nil)
	}
	want := float32(10 * ClockStep)
	if absf(p.Clock-want) > 1e-6 {
		t.Errorf("clock = %v after 10 steps, want %v", p.Clock, want)
	}
}

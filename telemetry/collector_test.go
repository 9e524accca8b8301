package telemetry

import (
	"math/rand"
	"testing"

	"github.com/pthm-cable/plume/sim"
)

func testParams() *sim.Params {
	return &sim.Params{
		Gravity:            0.05,
		Buoyancy:           0.10,
		Drag:               0.99,
		BaseRadius:         4,
		Growth:             0.05,
		EmissionRate:       5,
		LifetimeSec:        2,
		FrameRate:          60,
		NoiseScale:         0.1,
		Integrator:         sim.IntegratorEuler,
		SmoothingRadius:    30,
		TargetDensity:      2,
		PressureMultiplier: 0.5,
	}
}

func TestCollectorWindowFlush(t *testing.T) {
	c := NewCollector(5.0, 1.0/60)

	// 5 seconds at 60 ticks/sec is a 300-tick window.
	if c.ShouldFlush(299) {
		t.Error("flush triggered before window elapsed")
	}
	if !c.ShouldFlush(300) {
		t.Error("flush not triggered at window boundary")
	}
}

func TestCollectorAccumulatesAndResets(t *testing.T) {
	s := sim.NewSimulator(1000, 700, 100, 30, rand.New(rand.NewSource(1)))
	p := testParams()
	c := NewCollector(5.0, 1.0/60)

	c.RecordStep(s.Step(p, sim.Emission{X: 500, Y: 350, Count: 10}, nil))
	c.RecordStep(s.Step(p, sim.Emission{X: 500, Y: 350, Count: 10}, nil))

	stats := c.Flush(2, s)
	if stats.Spawned != 20 {
		t.Errorf("spawned = %d, want 20", stats.Spawned)
	}
	if stats.Alive != 20 {
		t.Errorf("alive = %d, want 20", stats.Alive)
	}
	if stats.LifeMean <= 0 {
		t.Error("expected positive mean life for a live population")
	}
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 2 {
		t.Errorf("window ticks = [%d, %d], want [0, 2]",
			stats.WindowStartTick, stats.WindowEndTick)
	}

	// The next window starts fresh.
	stats = c.Flush(4, s)
	if stats.Spawned != 0 {
		t.Errorf("spawned after reset = %d, want 0", stats.Spawned)
	}
	if stats.WindowStartTick != 2 {
		t.Errorf("window start after reset = %d, want 2", stats.WindowStartTick)
	}
}

func TestCollectorEmptyPopulation(t *testing.T) {
	s := sim.NewSimulator(1000, 700, 10, 30, rand.New(rand.NewSource(1)))
	c := NewCollector(5.0, 1.0/60)

	stats := c.Flush(1, s)
	if stats.Alive != 0 || stats.LifeMean != 0 || stats.DensityMean != 0 {
		t.Errorf("empty population produced non-zero stats: %+v", stats)
	}
}

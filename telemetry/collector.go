package telemetry

import (
	"math"

	"github.com/pthm-cable/plume/sim"
)

// Collector accumulates per-frame events within time windows and produces
// WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters for current window
	spawned int
	culled  int

	// Scratch buffers reused between flushes
	lives     []float64
	densities []float64
	speeds    []float64
	radii     []float64
	pressMax  float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordStep accumulates one frame's spawn and cull counts.
func (c *Collector) RecordStep(stats sim.StepStats) {
	c.spawned += stats.Spawned
	c.culled += stats.Culled
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush samples the live particle set, produces a WindowStats, and resets
// counters for the next window.
func (c *Collector) Flush(currentTick int32, s *sim.Simulator) WindowStats {
	c.lives = c.lives[:0]
	c.densities = c.densities[:0]
	c.speeds = c.speeds[:0]
	c.radii = c.radii[:0]
	c.pressMax = 0

	s.ForEachState(func(st sim.ParticleState) {
		c.lives = append(c.lives, float64(st.Life))
		c.densities = append(c.densities, float64(st.Density))
		c.speeds = append(c.speeds, math.Hypot(float64(st.VX), float64(st.VY)))
		c.radii = append(c.radii, float64(st.Radius))
		if p := float64(st.Pressure); p > c.pressMax {
			c.pressMax = p
		}
	})

	life := ComputeSampleStats(c.lives)
	density := ComputeSampleStats(c.densities)
	speed := ComputeSampleStats(c.speeds)
	radius := ComputeSampleStats(c.radii)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Alive:     s.Alive(),
		FreeSlots: s.FreeSlots(),

		Spawned: c.spawned,
		Culled:  c.culled,

		LifeMean: life.Mean,
		LifeP10:  life.P10,
		LifeP50:  life.P50,
		LifeP90:  life.P90,

		DensityMean: density.Mean,
		DensityStd:  density.Std,
		PressureMax: c.pressMax,

		SpeedMean: speed.Mean,
		SpeedP90:  speed.P90,

		RadiusMean: radius.Mean,
	}

	c.windowStartTick = currentTick
	c.spawned = 0
	c.culled = 0

	return stats
}

package sim

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plume/components"
)

// Emission is a per-frame spawn request.
type Emission struct {
	X, Y   float32
	Count  int
	Jitter float32 // positional jitter at spawn, +/- units
}

// StepStats summarizes one frame of the pipeline.
type StepStats struct {
	Spawned int // particles actually spawned (may be less than requested)
	Culled  int // particles that died this frame
	Alive   int // live particles after the step
}

// PhaseTimer receives per-phase durations when set on the simulator.
type PhaseTimer interface {
	Observe(phase string, d time.Duration)
}

// ParticleState is a read-only snapshot of one live particle, for
// telemetry sampling.
type ParticleState struct {
	X, Y     float32
	VX, VY   float32
	Life     float32
	Density  float32
	Pressure float32
	Radius   float32
}

// Simulator runs the per-frame particle pipeline: emit, rebuild the
// spatial index, the two SPH passes, then integration and culling.
// It is single-threaded and synchronous; a frame runs to completion
// before the next begins. All randomness flows through the injected
// rand source, so a fixed seed gives a reproducible run.
type Simulator struct {
	world *ecs.World
	pool  *Pool
	grid  *Grid
	rng   *rand.Rand

	filter *ecs.Filter6[
		components.Position,
		components.Velocity,
		components.Motion,
		components.Life,
		components.Blob,
		components.Field,
	]
	posMap   *ecs.Map1[components.Position]
	fieldMap *ecs.Map1[components.Field]

	neighbors []Neighbor // scratch buffer reused across queries
	timer     PhaseTimer
}

// NewSimulator creates a simulator for a world of the given size, with a
// fixed particle capacity and an initial spatial cell size (normally the
// configured smoothing radius).
func NewSimulator(width, height float32, capacity int, cellSize float32, rng *rand.Rand) *Simulator {
	world := ecs.NewWorld()

	return &Simulator{
		world: world,
		pool:  NewPool(world, capacity, rng),
		grid:  NewGrid(width, height, cellSize),
		rng:   rng,
		filter: ecs.NewFilter6[
			components.Position,
			components.Velocity,
			components.Motion,
			components.Life,
			components.Blob,
			components.Field,
		](world),
		posMap:    ecs.NewMap1[components.Position](world),
		fieldMap:  ecs.NewMap1[components.Field](world),
		neighbors: make([]Neighbor, 0, 64),
	}
}

// SetPhaseTimer sets an optional receiver for per-phase timings.
func (s *Simulator) SetPhaseTimer(t PhaseTimer) {
	s.timer = t
}

// Step runs one frame of the pipeline. The parameter set is read-only to
// the kernel except for the clock, which advances by ClockStep. The two
// SPH passes run in strict sequence and both complete before integration
// begins; pressure forces depend on the finalized densities of all
// particles.
func (s *Simulator) Step(p *Params, em Emission, obstacles []Obstacle) StepStats {
	p.Clock += ClockStep

	start := time.Now()
	spawned := s.emit(p, em)
	s.observe("emit", start)

	start = time.Now()
	s.rebuildIndex(p)
	s.observe("index", start)

	start = time.Now()
	s.densityPass(p)
	s.observe("density", start)

	start = time.Now()
	s.forcePass(p)
	s.observe("force", start)

	start = time.Now()
	culled := s.integratePass(p, obstacles)
	s.observe("integrate", start)

	return StepStats{Spawned: spawned, Culled: culled, Alive: s.pool.Active()}
}

// emit spawns the requested particles with positional jitter. When the
// pool is exhausted the excess spawns are silently dropped.
func (s *Simulator) emit(p *Params, em Emission) int {
	spawned := 0
	for i := 0; i < em.Count; i++ {
		x := em.X + (s.rng.Float32()-0.5)*2*em.Jitter
		y := em.Y + (s.rng.Float32()-0.5)*2*em.Jitter
		if _, ok := s.pool.Acquire(x, y, p); !ok {
			break
		}
		spawned++
	}
	return spawned
}

// rebuildIndex clears and repopulates the spatial grid from the live set.
// The grid structure itself is rebuilt only when the configured smoothing
// radius has drifted more than 1.0 from the current cell size, so frame-
// to-frame slider fluctuation does not force a rebuild.
func (s *Simulator) rebuildIndex(p *Params) {
	if absf(p.SmoothingRadius-s.grid.CellSize()) > 1.0 {
		s.grid.Resize(p.SmoothingRadius)
	} else {
		s.grid.Clear()
	}

	query := s.filter.Query()
	for query.Next() {
		e := query.Entity()
		pos, _, _, life, _, _ := query.Get()
		if life.Alive {
			s.grid.Insert(e, pos.X, pos.Y)
		}
	}
}

// ForEachAlive calls fn for every live particle with its position, radius,
// and display opacity. Opacity is the life value clamped to [0, 255];
// particles below the visibility threshold report 0 but are still alive.
func (s *Simulator) ForEachAlive(fn func(x, y, radius, opacity float32)) {
	query := s.filter.Query()
	for query.Next() {
		pos, _, _, life, blob, _ := query.Get()
		if !life.Alive {
			continue
		}
		opacity := clampFloat(life.Value, 0, 255)
		if life.Value < visibilityThreshold {
			opacity = 0
		}
		fn(pos.X, pos.Y, blob.Radius, opacity)
	}
}

// ForEachState calls fn with a full state snapshot of every live particle.
func (s *Simulator) ForEachState(fn func(ParticleState)) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, _, life, blob, field := query.Get()
		if !life.Alive {
			continue
		}
		fn(ParticleState{
			X: pos.X, Y: pos.Y,
			VX: vel.X, VY: vel.Y,
			Life:     life.Value,
			Density:  field.Density,
			Pressure: field.Pressure,
			Radius:   blob.Radius,
		})
	}
}

// Alive returns the live particle count.
func (s *Simulator) Alive() int {
	return s.pool.Active()
}

// FreeSlots returns the number of free pool slots.
func (s *Simulator) FreeSlots() int {
	return s.pool.FreeSlots()
}

// Capacity returns the fixed pool capacity.
func (s *Simulator) Capacity() int {
	return s.pool.Capacity()
}

func (s *Simulator) observe(phase string, start time.Time) {
	if s.timer != nil {
		s.timer.Observe(phase, time.Since(start))
	}
}

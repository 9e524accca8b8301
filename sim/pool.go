package sim

import (
	"math"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/plume/components"
)

// Pool is a fixed-capacity particle pool. All entities are created once at
// construction; spawning toggles a slot alive and death returns it to the
// free list, so steady-state operation is allocation-free and the total
// particle count is bounded by the capacity.
//
// The free list is a stack of entities, making acquire and release O(1).
// The order in which released slots are handed out again is unspecified.
type Pool struct {
	mapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Motion,
		components.Life,
		components.Blob,
		components.Field,
	]
	posMap   *ecs.Map1[components.Position]
	velMap   *ecs.Map1[components.Velocity]
	motMap   *ecs.Map1[components.Motion]
	lifeMap  *ecs.Map1[components.Life]
	blobMap  *ecs.Map1[components.Blob]
	fieldMap *ecs.Map1[components.Field]

	free     []ecs.Entity
	capacity int
	rng      *rand.Rand
}

// NewPool creates a pool with the given fixed capacity, pre-creating every
// particle slot in the world.
func NewPool(w *ecs.World, capacity int, rng *rand.Rand) *Pool {
	p := &Pool{
		mapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Motion,
			components.Life,
			components.Blob,
			components.Field,
		](w),
		posMap:   ecs.NewMap1[components.Position](w),
		velMap:   ecs.NewMap1[components.Velocity](w),
		motMap:   ecs.NewMap1[components.Motion](w),
		lifeMap:  ecs.NewMap1[components.Life](w),
		blobMap:  ecs.NewMap1[components.Blob](w),
		fieldMap: ecs.NewMap1[components.Field](w),
		free:     make([]ecs.Entity, 0, capacity),
		capacity: capacity,
		rng:      rng,
	}

	for i := 0; i < capacity; i++ {
		pos := components.Position{}
		vel := components.Velocity{}
		mot := components.Motion{}
		life := components.Life{Alive: false}
		blob := components.Blob{}
		field := components.Field{}
		e := p.mapper.NewEntity(&pos, &vel, &mot, &life, &blob, &field)
		p.free = append(p.free, e)
	}

	return p
}

// Acquire takes a free slot and resets its full state as a fresh spawn at
// (x, y): randomized velocity direction and speed with a slight upward
// bias, full life with jittered decay, randomized initial radius.
// Returns ok=false when the pool is exhausted; no slot is ever allocated
// past the capacity.
func (p *Pool) Acquire(x, y float32, params *Params) (ecs.Entity, bool) {
	if len(p.free) == 0 {
		return ecs.Entity{}, false
	}
	e := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	pos := p.posMap.Get(e)
	pos.X, pos.Y = x, y

	angle := p.rng.Float32() * 2 * math.Pi
	speed := 0.5 + p.rng.Float32()
	vel := p.velMap.Get(e)
	vel.X = cosf(angle) * speed
	vel.Y = sinf(angle)*speed - 1.0 // slight upward bias

	mot := p.motMap.Get(e)
	mot.AX, mot.AY = 0, 0

	life := p.lifeMap.Get(e)
	life.Value = 255
	life.Decay = params.baseDecay() * (0.8 + p.rng.Float32()*0.4)
	life.Alive = true

	blob := p.blobMap.Get(e)
	blob.Radius = params.BaseRadius * (1 + p.rng.Float32()*0.5)
	blob.Growth = params.Growth

	field := p.fieldMap.Get(e)
	field.Density, field.Pressure = 0, 0

	return e, true
}

// Release returns a slot to the free list. Releasing an already-free slot
// is a no-op.
func (p *Pool) Release(e ecs.Entity) {
	life := p.lifeMap.Get(e)
	if life == nil || !life.Alive {
		return
	}
	life.Alive = false
	p.free = append(p.free, e)
}

// Capacity returns the fixed slot count.
func (p *Pool) Capacity() int {
	return p.capacity
}

// FreeSlots returns the number of currently free slots.
func (p *Pool) FreeSlots() int {
	return len(p.free)
}

// Active returns the number of currently acquired slots.
func (p *Pool) Active() int {
	return p.capacity - len(p.free)
}

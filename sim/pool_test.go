package sim

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"
)

// TestPoolConservation verifies active + free slots always equals the
// capacity, across any acquire/release sequence.
func TestPoolConservation(t *testing.T) {
	const capacity = 8
	s := testSimulator(capacity)
	p := testParams()
	pool := s.pool

	check := func(when string) {
		if pool.Active()+pool.FreeSlots() != capacity {
			t.Fatalf("%s: active (%d) + free (%d) != capacity (%d)",
				when, pool.Active(), pool.FreeSlots(), capacity)
		}
	}
	check("initial")

	rng := rand.New(rand.NewSource(7))
	var held []ecs.Entity
	for i := 0; i < 200; i++ {
		if rng.Float32() < 0.6 {
			if e, ok := pool.Acquire(100, 100, p); ok {
				held = append(held, e)
			}
		} else if len(held) > 0 {
			j := rng.Intn(len(held))
			pool.Release(held[j])
			held = append(held[:j], held[j+1:]...)
		}
		check("after op")
	}
}

// TestPoolExhaustion verifies acquiring past capacity fails without
// growing the pool.
func TestPoolExhaustion(t *testing.T) {
	const capacity = 4
	s := testSimulator(capacity)
	p := testParams()

	for i := 0; i < capacity; i++ {
		if _, ok := s.pool.Acquire(0, 0, p); !ok {
			t.Fatalf("acquire %d failed below capacity", i)
		}
	}

	if _, ok := s.pool.Acquire(0, 0, p); ok {
		t.Error("acquire past capacity succeeded")
	}
	if s.pool.Active() != capacity {
		t.Errorf("active = %d, want %d", s.pool.Active(), capacity)
	}
}

// TestPoolReleaseIdempotent verifies releasing an already-free slot is a
// no-op.
func TestPoolReleaseIdempotent(t *testing.T) {
	s := testSimulator(4)
	p := testParams()

	e, _ := s.pool.Acquire(0, 0, p)
	s.pool.Release(e)
	free := s.pool.FreeSlots()

	s.pool.Release(e)
	if s.pool.FreeSlots() != free {
		t.Errorf("double release changed free count: %d -> %d", free, s.pool.FreeSlots())
	}
}

// TestPoolAcquireResetsState verifies a recycled slot comes back as a
// fresh spawn.
func TestPoolAcquireResetsState(t *testing.T) {
	s := testSimulator(1)
	p := testParams()

	e, _ := s.pool.Acquire(100, 100, p)

	// Dirty the slot as if it had lived a full life.
	life := s.pool.lifeMap.Get(e)
	life.Value = 0
	field := s.pool.fieldMap.Get(e)
	field.Density, field.Pressure = 9, 9
	mot := s.pool.motMap.Get(e)
	mot.AX, mot.AY = 5, 5
	s.pool.Release(e)

	e2, ok := s.pool.Acquire(200, 300, p)
	if !ok {
		t.Fatal("reacquire failed")
	}

	pos := s.pool.posMap.Get(e2)
	if pos.X != 200 || pos.Y != 300 {
		t.Errorf("position = (%v,%v), want (200,300)", pos.X, pos.Y)
	}
	life = s.pool.lifeMap.Get(e2)
	if life.Value != 255 || !life.Alive {
		t.Errorf("life = %v alive=%v, want 255 alive", life.Value, life.Alive)
	}
	field = s.pool.fieldMap.Get(e2)
	if field.Density != 0 || field.Pressure != 0 {
		t.Errorf("field not reset: density %v pressure %v", field.Density, field.Pressure)
	}
	mot = s.pool.motMap.Get(e2)
	if mot.AX != 0 || mot.AY != 0 {
		t.Errorf("motion not reset: (%v,%v)", mot.AX, mot.AY)
	}
	blob := s.pool.blobMap.Get(e2)
	if blob.Radius < p.BaseRadius || blob.Radius >= p.BaseRadius*1.5 {
		t.Errorf("radius = %v, want in [%v, %v)", blob.Radius, p.BaseRadius, p.BaseRadius*1.5)
	}
}

// TestPoolDecayJitterBand verifies per-particle decay stays within the
// +/-20% jitter band around the configured rate.
func TestPoolDecayJitterBand(t *testing.T) {
	const capacity = 200
	s := testSimulator(capacity)
	p := testParams() // lifetime 2s at 60fps

	base := 255.0 / (2 * 60)
	for i := 0; i < capacity; i++ {
		e, _ := s.pool.Acquire(0, 0, p)
		decay := float64(s.pool.lifeMap.Get(e).Decay)
		if decay < base*0.8-1e-6 || decay > base*1.2+1e-6 {
			t.Fatalf("decay = %v, want in [%v, %v]", decay, base*0.8, base*1.2)
		}
	}
}

// TestPoolSpawnVelocityBias verifies spawn velocity has the upward bias:
// speed in [0.5, 1.5) plus a -1 vertical offset.
func TestPoolSpawnVelocityBias(t *testing.T) {
	s := testSimulator(100)
	p := testParams()

	var sumVY float32
	for i := 0; i < 100; i++ {
		e, _ := s.pool.Acquire(0, 0, p)
		vel := s.pool.velMap.Get(e)
		if vel.Y < -2.5 || vel.Y > 0.5 {
			t.Fatalf("spawn velocity.y = %v out of range [-2.5, 0.5]", vel.Y)
		}
		sumVY += vel.Y
	}
	// Mean vertical velocity should sit near the -1 bias.
	mean := sumVY / 100
	if mean > -0.5 || mean < -1.5 {
		t.Errorf("mean spawn velocity.y = %v, want near -1", mean)
	}
}

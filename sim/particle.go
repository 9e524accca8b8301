package sim

// densityFloor keeps density strictly positive so the pressure-force pass
// never divides by zero.
const densityFloor = 0.0001

// maxPressureForce caps the accumulated pressure force magnitude per
// particle. Nearly coincident particles otherwise produce force spikes.
const maxPressureForce = 0.5

// visibilityThreshold is the life value below which a particle is reported
// as fully transparent. Such particles are invisible but not yet dead.
const visibilityThreshold = 5

// densityPass computes density and pressure for every live particle from
// the current spatial index. Density uses the quadratic falloff kernel
// (1 - d/R)^2, which is 1 at zero distance and 0 at the smoothing radius;
// the particle itself and exactly coincident neighbors do not contribute.
// Pressure is repulsive-only: particles below the target density exert none.
func (s *Simulator) densityPass(p *Params) {
	r := p.SmoothingRadius

	query := s.filter.Query()
	for query.Next() {
		pos, _, _, life, _, field := query.Get()
		if !life.Alive {
			continue
		}

		s.neighbors = s.grid.QueryInto(s.neighbors[:0], pos.X, pos.Y, r, s.posMap)

		var density float32
		for _, n := range s.neighbors {
			if n.DistSq <= 0 {
				continue
			}
			w := 1 - sqrtf(n.DistSq)/r
			density += w * w
		}
		if density < densityFloor {
			density = densityFloor
		}

		field.Density = density
		pressure := (density - p.TargetDensity) * p.PressureMultiplier
		if pressure < 0 {
			pressure = 0
		}
		field.Pressure = pressure
	}
}

// forcePass accumulates the SPH pressure force for every live particle.
// It must run strictly after densityPass has finished for all particles:
// the force on particle i reads the finalized density and pressure of
// every neighbor j.
func (s *Simulator) forcePass(p *Params) {
	r := p.SmoothingRadius

	query := s.filter.Query()
	for query.Next() {
		pos, _, mot, life, _, field := query.Get()
		if !life.Alive {
			continue
		}

		s.neighbors = s.grid.QueryInto(s.neighbors[:0], pos.X, pos.Y, r, s.posMap)

		var fx, fy float32
		for _, n := range s.neighbors {
			if n.DistSq <= 0 {
				// Self, or an exactly coincident pair: no usable direction.
				continue
			}
			nField := s.fieldMap.Get(n.E)
			if nField == nil {
				continue
			}

			dist := sqrtf(n.DistSq)
			term := -(field.Pressure + nField.Pressure) / (2 * nField.Density) * (1 - dist/r)
			fx += term * (n.DX / dist)
			fy += term * (n.DY / dist)
		}

		mag := sqrtf(fx*fx + fy*fy)
		if mag > maxPressureForce {
			scale := maxPressureForce / mag
			fx *= scale
			fy *= scale
		}

		mot.AX += fx
		mot.AY += fy
	}
}

// integratePass applies the remaining frame forces, advances velocity and
// position, resolves obstacle collisions, and ages every live particle.
// Particles whose life reaches zero are released back to the pool during
// this same pass. Returns the number of particles culled.
func (s *Simulator) integratePass(p *Params, obstacles []Obstacle) int {
	culled := 0

	query := s.filter.Query()
	for query.Next() {
		e := query.Entity()
		pos, vel, mot, life, blob, _ := query.Get()
		if !life.Alive {
			continue
		}

		// Constant gravity down, buoyancy up, wind with per-frame jitter.
		mot.AY += p.Gravity - p.Buoyancy
		mot.AX += p.Wind + (s.rng.Float32()-0.5)*0.01

		if p.TurbulenceStrength > 0 {
			fx, fy := s.turbulence(p, pos.X, pos.Y, vel.X, vel.Y)
			mot.AX += fx * p.TurbulenceStrength
			mot.AY += fy * p.TurbulenceStrength
		}

		vel.X += mot.AX
		vel.Y += mot.AY
		vel.X *= p.Drag
		vel.Y *= p.Drag

		nextX := pos.X + vel.X
		nextY := pos.Y + vel.Y
		nextX, nextY, vel.X, vel.Y = collideObstacles(nextX, nextY, vel.X, vel.Y, blob.Radius, obstacles)

		pos.X, pos.Y = nextX, nextY
		mot.AX, mot.AY = 0, 0
		life.Value -= life.Decay
		blob.Radius += blob.Growth

		if life.Value <= 0 {
			s.pool.Release(e)
			culled++
		}
	}

	return culled
}

// turbulence evaluates the procedural field force for one particle using
// the selected integrator.
func (s *Simulator) turbulence(p *Params, x, y, vx, vy float32) (float32, float32) {
	f := Field{Scale: p.NoiseScale}

	if p.Integrator == IntegratorEuler {
		return f.Force(x, y, p.Clock)
	}

	// RK4 over a unit spatial step. The time argument advances by ClockStep
	// per sub-step, decoupled from the spatial step size.
	halfT := p.Clock + 0.5*ClockStep
	fullT := p.Clock + ClockStep

	k1x, k1y := f.Force(x, y, p.Clock)
	k2x, k2y := f.Force(x+vx*0.5, y+vy*0.5, halfT)
	// Both midpoint estimates are fed the same half-step inputs.
	k3x, k3y := k2x, k2y
	k4x, k4y := f.Force(x+vx, y+vy, fullT)

	return (k1x + 2*k2x + 2*k3x + k4x) / 6, (k1y + 2*k2y + 2*k3y + k4y) / 6
}

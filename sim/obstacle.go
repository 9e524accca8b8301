package sim

// Obstacle is a circular solid that particles bounce off. The radius is
// fixed; the center is mutable so the UI can drag it.
type Obstacle struct {
	X, Y   float32
	Radius float32
}

// Contains reports whether the point lies inside the obstacle circle.
// Used by the UI for drag hit-testing.
func (o *Obstacle) Contains(x, y float32) bool {
	return distanceSq(x, y, o.X, o.Y) < o.Radius*o.Radius
}

// collisionDamping scales velocity after a bounce.
const collisionDamping = 0.5

// collideObstacles resolves a tentative particle position against every
// obstacle in iteration order. Overlapping particles are pushed out along
// the contact normal, velocity is reflected across the normal and damped.
// Obstacles are resolved sequentially, not simultaneously; a particle
// overlapping two obstacles in one frame is only approximately resolved.
// Returns the corrected position and velocity.
func collideObstacles(x, y, vx, vy, radius float32, obstacles []Obstacle) (float32, float32, float32, float32) {
	for i := range obstacles {
		obs := &obstacles[i]
		dx := x - obs.X
		dy := y - obs.Y
		dist := sqrtf(dx*dx + dy*dy)

		minDist := obs.Radius + radius*0.5
		if dist >= minDist {
			continue
		}
		if dist == 0 {
			// Degenerate: exactly on the obstacle center, no usable normal.
			continue
		}

		nx := dx / dist
		ny := dy / dist

		// Push out by the overlap
		overlap := minDist - dist
		x += nx * overlap
		y += ny * overlap

		// Reflect velocity: v' = v - 2(v.n)n, then damp the bounce
		dot := vx*nx + vy*ny
		vx -= 2 * dot * nx
		vy -= 2 * dot * ny
		vx *= collisionDamping
		vy *= collisionDamping
	}
	return x, y, vx, vy
}

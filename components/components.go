// Package components defines ECS components for smoke particles.
package components

// Position represents a particle's world position.
type Position struct {
	X, Y float32
}

// Velocity represents a particle's velocity.
type Velocity struct {
	X, Y float32
}

// Motion holds the acceleration accumulated during the current frame.
// It is consumed and zeroed by the integration pass.
type Motion struct {
	AX, AY float32
}

// Life holds a particle's remaining life and fixed decay rate.
// Value counts down from 255; the particle dies when it reaches 0.
// Decay is set once at spawn with a +/-20% jitter around the rate that
// makes the mean lifetime match the configured value.
type Life struct {
	Value float32
	Decay float32
	Alive bool
}

// Blob holds a particle's visual extent. Radius grows by Growth every frame.
type Blob struct {
	Radius float32
	Growth float32
}

// Field holds per-particle SPH state, recomputed every frame.
// Density is floored at a small epsilon and never exactly zero;
// Pressure is never negative.
type Field struct {
	Density  float32
	Pressure float32
}

package sim

// Integrator selects the numerical scheme for the turbulence force.
type Integrator uint8

const (
	// IntegratorEuler samples the field once at the current position/time.
	IntegratorEuler Integrator = iota
	// IntegratorRK4 blends four field samples over a unit step.
	IntegratorRK4
)

// ClockStep is the simulation clock advance per frame.
const ClockStep = 0.01

// Params is the mutable parameter set supplied by the driver each frame.
// The kernel reads it during a step and writes only Clock. Every field may
// change between frames; there is no atomicity guarantee across fields.
// Invariants the driver must keep: Drag in (0, 1), SmoothingRadius > 0.
type Params struct {
	Gravity  float32 // constant downward force
	Buoyancy float32 // constant upward force
	Wind     float32 // horizontal force, jittered per frame
	Drag     float32 // isotropic velocity damping

	BaseRadius   float32 // spawn radius drawn from [base, 1.5*base)
	Growth       float32 // radius increment per frame
	EmissionRate int     // particles per frame for the default emitter
	LifetimeSec  float32 // mean particle lifetime in seconds
	FrameRate    float32 // frames per second, for decay derivation

	TurbulenceStrength float32
	NoiseScale         float32
	Integrator         Integrator

	SmoothingRadius    float32
	TargetDensity      float32
	PressureMultiplier float32

	// Clock is the simulation time, advanced by ClockStep per frame by the
	// step pipeline.
	Clock float32
}

// baseDecay returns the life decay per frame that makes the mean lifetime
// match LifetimeSec at the configured frame rate.
func (p *Params) baseDecay() float32 {
	frames := p.LifetimeSec * p.FrameRate
	if frames <= 0 {
		return 255
	}
	return 255 / frames
}

// Package sim implements the particle simulation kernel: the procedural
// turbulence field, the spatial index, the SPH-style density/pressure
// model, particle integration, and the per-frame step pipeline.
package sim

// curlEps is the finite-difference step used to estimate the curl.
const curlEps = 1.0

// fieldOctaves layers the scalar potential: frequency multiplier,
// amplitude, and time-frequency multiplier per octave.
var fieldOctaves = [3]struct {
	freq, amp, timeFreq float32
}{
	{1, 1, 1},
	{2, 0.5, 1.5},
	{4, 0.25, 2},
}

// Field generates a time-varying turbulence force as the curl of a layered
// trigonometric potential. Taking the curl makes the force field
// divergence-free, so advection neither creates nor destroys mass.
// Field is stateless; a value is a pure function of (x, y, t) and safe for
// concurrent use.
type Field struct {
	Scale float32 // spatial frequency of the potential
}

// Potential evaluates the scalar potential at a point and time.
// This is deterministic pseudo-noise built from sine octaves, not a
// hash-based noise function.
func (f Field) Potential(x, y, t float32) float32 {
	var sum float32
	for _, o := range fieldOctaves {
		sum += o.amp * (sinf(x*f.Scale*o.freq+t*o.timeFreq) + cosf(y*f.Scale*o.freq+t*o.timeFreq))
	}
	return sum
}

// Curl estimates the curl of the potential by central differences:
// (dP/dy, -dP/dx).
func (f Field) Curl(x, y, t float32) (fx, fy float32) {
	dpdy := (f.Potential(x, y+curlEps, t) - f.Potential(x, y-curlEps, t)) / (2 * curlEps)
	dpdx := (f.Potential(x+curlEps, y, t) - f.Potential(x-curlEps, y, t)) / (2 * curlEps)
	return dpdy, -dpdx
}

// Force returns the turbulence force at a point and time. It is currently
// identical to Curl; the two are kept distinct so advection schemes that
// post-process the curl can slot in without an API change.
func (f Field) Force(x, y, t float32) (fx, fy float32) {
	return f.Curl(x, y, t)
}

package sim

import (
	"math"
	"testing"
)

// TestFieldDivergenceFree verifies that the curl-derived force field has
// zero discrete divergence over a sampled grid of points and times.
func TestFieldDivergenceFree(t *testing.T) {
	f := Field{Scale: 0.1}

	const h = 1.0
	for _, tm := range []float32{0, 0.5, 3.7, 42} {
		for y := float32(0); y < 700; y += 97 {
			for x := float32(0); x < 1000; x += 103 {
				fxr, _ := f.Force(x+h, y, tm)
				fxl, _ := f.Force(x-h, y, tm)
				_, fyu := f.Force(x, y+h, tm)
				_, fyd := f.Force(x, y-h, tm)

				div := (fxr-fxl)/(2*h) + (fyu-fyd)/(2*h)
				if math.Abs(float64(div)) > 1e-4 {
					t.Errorf("divergence at (%v,%v,t=%v) = %v, want ~0", x, y, tm, div)
				}
			}
		}
	}
}

// TestForceMatchesCurl verifies Force and Curl are the same field.
func TestForceMatchesCurl(t *testing.T) {
	f := Field{Scale: 0.1}

	points := []struct{ x, y, t float32 }{
		{0, 0, 0},
		{123, 456, 1.5},
		{-50, 900, 10},
	}
	for _, p := range points {
		cx, cy := f.Curl(p.x, p.y, p.t)
		fx, fy := f.Force(p.x, p.y, p.t)
		if cx != fx || cy != fy {
			t.Errorf("Force(%v,%v,%v) = (%v,%v), Curl = (%v,%v)", p.x, p.y, p.t, fx, fy, cx, cy)
		}
	}
}

// TestPotentialVariesWithTime verifies the field animates: the potential
// at a fixed point changes as the clock advances.
func TestPotentialVariesWithTime(t *testing.T) {
	f := Field{Scale: 0.1}

	p0 := f.Potential(100, 100, 0)
	p1 := f.Potential(100, 100, 1)
	if p0 == p1 {
		t.Errorf("potential did not change over time: %v", p0)
	}
}

// TestPotentialOctaves verifies the layered structure: with a zero scale
// the spatial terms collapse and the potential depends only on time.
func TestPotentialOctaves(t *testing.T) {
	f := Field{Scale: 0}

	a := f.Potential(0, 0, 2)
	b := f.Potential(500, 300, 2)
	if math.Abs(float64(a-b)) > 1e-6 {
		t.Errorf("zero-scale potential should be position independent: %v vs %v", a, b)
	}

	// Expected value from the octave table: sum of amp*(sin(t*tf)+cos(t*tf)).
	var want float64
	for _, o := range fieldOctaves {
		want += float64(o.amp) * (math.Sin(float64(2*o.timeFreq)) + math.Cos(float64(2*o.timeFreq)))
	}
	if math.Abs(float64(a)-want) > 1e-5 {
		t.Errorf("potential = %v, want %v", a, want)
	}
}

// Package renderer provides rendering utilities.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/sim"
)

// ParticleRenderer renders the smoke particles.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Draw renders all visible particles as soft grey circles. Opacity comes
// from the remaining life; particles below the visibility threshold are
// reported with zero opacity and skipped here.
func (r *ParticleRenderer) Draw(s *sim.Simulator) {
	s.ForEachAlive(func(x, y, radius, opacity float32) {
		if opacity <= 0 || radius < 1 {
			return
		}
		color := rl.Color{R: 200, G: 200, B: 200, A: uint8(opacity)}
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, color)
	})
}

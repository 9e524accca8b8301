package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/sim"
)

// FieldOverlay renders the turbulence field as a grid of arrows, for
// debugging the procedural flow.
type FieldOverlay struct {
	width, height float32
	spacing       float32
}

// NewFieldOverlay creates an overlay covering the given area with a
// 20-column arrow grid.
func NewFieldOverlay(width, height float32) *FieldOverlay {
	return &FieldOverlay{
		width:   width,
		height:  height,
		spacing: width / 20,
	}
}

// Draw samples the field on a regular grid and draws one arrow per cell,
// scaled by the local force magnitude.
func (o *FieldOverlay) Draw(f sim.Field, t float32) {
	const arrowScale = 12
	color := rl.Color{R: 60, G: 60, B: 60, A: 200}

	for y := o.spacing / 2; y < o.height; y += o.spacing {
		for x := o.spacing / 2; x < o.width; x += o.spacing {
			fx, fy := f.Force(x, y, t)

			tipX := x + fx*arrowScale
			tipY := y + fy*arrowScale
			rl.DrawLineV(
				rl.Vector2{X: x, Y: y},
				rl.Vector2{X: tipX, Y: tipY},
				color,
			)
			rl.DrawCircleV(rl.Vector2{X: tipX, Y: tipY}, 1.5, color)
		}
	}
}

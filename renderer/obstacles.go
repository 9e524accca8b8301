package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/sim"
)

// ObstacleRenderer renders the circular obstacles.
type ObstacleRenderer struct{}

// NewObstacleRenderer creates a new obstacle renderer.
func NewObstacleRenderer() *ObstacleRenderer {
	return &ObstacleRenderer{}
}

// Draw renders the obstacles, highlighting the one being dragged.
func (r *ObstacleRenderer) Draw(obstacles []sim.Obstacle, dragging int) {
	for i := range obstacles {
		o := &obstacles[i]
		fill := rl.Color{R: 70, G: 75, B: 85, A: 255}
		ring := rl.Color{R: 110, G: 115, B: 125, A: 255}
		if i == dragging {
			ring = rl.Color{R: 180, G: 180, B: 120, A: 255}
		}
		rl.DrawCircleV(rl.Vector2{X: o.X, Y: o.Y}, o.Radius, fill)
		rl.DrawCircleLines(int32(o.X), int32(o.Y), o.Radius, ring)
	}
}

package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// handleInput processes keyboard and mouse input for one frame.
//
// Space pauses, comma and period adjust the simulation speed, G toggles
// the flow field overlay. Dragging starts on a press inside an obstacle
// and ends on release; while dragging, the obstacle follows the cursor.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyG) {
		g.toggles.ShowField = !g.toggles.ShowField
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !g.panel.Contains(mouse.X) {
		for i := range g.obstacles {
			if g.obstacles[i].Contains(mouse.X, mouse.Y) {
				g.dragging = i
				break
			}
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		g.dragging = -1
	}
	if g.dragging >= 0 {
		g.obstacles[g.dragging].X = mouse.X
		g.obstacles[g.dragging].Y = mouse.Y
	}
}

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the HUD.
type HUDData struct {
	Alive    int
	Free     int
	Capacity int
	Tick     int32
	Speed    int
	FPS      int32
	Paused   bool
}

// HUD renders the heads-up display in the top-left corner.
type HUD struct {
	theme Theme
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{theme: DefaultTheme()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(
		fmt.Sprintf("Particles: %d / %d | Free: %d", data.Alive, data.Capacity, data.Free),
		10, 10, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Speed, data.FPS),
		10, 30, 16, rl.LightGray,
	)
	if data.Paused {
		rl.DrawText("PAUSED", 10, 50, 16, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(
		"click: emit | drag: move obstacle | space: pause | < >: speed | G: field",
		10, screenHeight-25, 14, rl.Gray,
	)
}

// Turbulence field preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/sim"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Turbulence Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	scale := float32(0.1)
	arrowScale := float32(12)
	showArrows := true

	gridSize := 256
	potentialGrid := make([]float32, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var t float32
	animating := true
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			t += sim.ClockStep
			needsRegen = true
		}

		field := sim.Field{Scale: scale}

		if needsRegen {
			generatePotential(potentialGrid, gridSize, field, t)
			updateTexture(texture, potentialGrid, gridSize)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		if showArrows {
			drawArrows(field, t, arrowScale)
		}

		rl.DrawText(fmt.Sprintf("Time: %.2f", t), 15, previewSize+25, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Turbulence Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		rl.DrawText("Noise scale (spatial frequency)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.01", "0.5",
			scale, 0.01, 0.5,
		)
		rl.DrawText(fmt.Sprintf("%.3f", scale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newScale != scale {
			scale = newScale
			needsRegen = true
		}
		panelY += 35

		rl.DrawText("Arrow length", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		arrowScale = gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"2", "40",
			arrowScale, 2, 40,
		)
		rl.DrawText(fmt.Sprintf("%.0f", arrowScale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Time") {
			t = 0
			needsRegen = true
		}
		panelY += 45

		showArrows = gui.CheckBox(
			rl.Rectangle{X: panelX, Y: panelY, Width: 16, Height: 16},
			"Show curl arrows",
			showArrows,
		)

		rl.EndDrawing()
	}
}

// generatePotential samples the scalar potential over the preview grid,
// normalized to [0, 1] for display.
func generatePotential(grid []float32, gridSize int, field sim.Field, t float32) {
	// Sample in screen units so the preview matches what the simulation sees.
	step := float32(previewSize) / float32(gridSize)

	minV := float32(math.Inf(1))
	maxV := float32(math.Inf(-1))
	for gy := 0; gy < gridSize; gy++ {
		for gx := 0; gx < gridSize; gx++ {
			v := field.Potential(float32(gx)*step, float32(gy)*step, t)
			grid[gy*gridSize+gx] = v
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	span := maxV - minV
	if span <= 0 {
		span = 1
	}
	for i, v := range grid {
		grid[i] = (v - minV) / span
	}
}

// updateTexture converts the normalized grid to a grayscale texture.
func updateTexture(texture rl.Texture2D, grid []float32, gridSize int) {
	pixels := make([]color.RGBA, len(grid))
	for i, v := range grid {
		shade := uint8(v * 255)
		pixels[i] = color.RGBA{R: shade, G: shade, B: shade, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}

// drawArrows overlays the curl force field on the preview.
func drawArrows(field sim.Field, t, arrowScale float32) {
	const spacing = 32
	color := rl.Color{R: 220, G: 60, B: 60, A: 255}

	for y := float32(spacing) / 2; y < previewSize; y += spacing {
		for x := float32(spacing) / 2; x < previewSize; x += spacing {
			fx, fy := field.Force(x, y, t)
			rl.DrawLineV(
				rl.Vector2{X: 10 + x, Y: 10 + y},
				rl.Vector2{X: 10 + x + fx*arrowScale, Y: 10 + y + fy*arrowScale},
				color,
			)
		}
	}
}

func toggleText(on bool, whenOn, whenOff string) string {
	if on {
		return whenOn
	}
	return whenOff
}

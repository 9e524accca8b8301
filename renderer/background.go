package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/ojrac/opensimplex-go"
)

// BackgroundRenderer renders a slowly drifting simplex haze behind the
// smoke. Display only; the simulation never reads it.
type BackgroundRenderer struct {
	noise         opensimplex.Noise
	width, height int32
	cell          int32
}

// NewBackgroundRenderer creates a background renderer for the given area.
func NewBackgroundRenderer(width, height int32, seed int64) *BackgroundRenderer {
	return &BackgroundRenderer{
		noise:  opensimplex.NewNormalized(seed),
		width:  width,
		height: height,
		cell:   50,
	}
}

// Draw fills the area with coarse haze cells. The noise is sampled per
// cell, not per pixel, which keeps the fill cheap at any window size.
func (b *BackgroundRenderer) Draw(t float32) {
	rl.ClearBackground(rl.Color{R: 12, G: 14, B: 20, A: 255})

	z := float64(t) * 0.05
	for y := int32(0); y < b.height; y += b.cell {
		for x := int32(0); x < b.width; x += b.cell {
			v := b.noise.Eval3(float64(x)*0.004, float64(y)*0.004, z)
			shade := uint8(10 + v*14)
			rl.DrawRectangle(x, y, b.cell, b.cell,
				rl.Color{R: shade, G: shade, B: shade + 6, A: 255})
		}
	}
}

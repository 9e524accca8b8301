// Package ui provides the sidebar control panel and HUD for the
// simulation window.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds the shared styling for panel drawing.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color

	FontSize       int32
	HeaderFontSize int32
	LineHeight     int32
	Padding        int32
	SliderHeight   float32
}

// DefaultTheme returns the default dark theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 28, G: 30, B: 36, A: 240},
		PanelBorder:   rl.Color{R: 70, G: 75, B: 85, A: 255},
		SectionHeader: rl.Color{R: 160, G: 170, B: 190, A: 255},
		LabelColor:    rl.Color{R: 150, G: 150, B: 150, A: 255},
		ValueColor:    rl.White,

		FontSize:       14,
		HeaderFontSize: 16,
		LineHeight:     20,
		Padding:        12,
		SliderHeight:   16,
	}
}

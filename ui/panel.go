package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/sim"
)

// SliderDescriptor binds one panel slider to a parameter field. Instead
// of hard-coding field names and layouts, the panel iterates descriptors,
// so adding a parameter is a one-line change here.
type SliderDescriptor struct {
	Label    string
	Min, Max float32
	Format   string
	Get      func(*sim.Params) float32
	Set      func(*sim.Params, float32)
}

// Toggles holds the panel state that lives outside the parameter set.
type Toggles struct {
	ShowField bool
}

// ControlPanel renders the sidebar of parameter sliders and toggles.
type ControlPanel struct {
	theme   Theme
	x       int32
	width   int32
	sliders []SliderDescriptor
}

// NewControlPanel creates the panel at the given x offset.
func NewControlPanel(x, width int32) *ControlPanel {
	return &ControlPanel{
		theme: DefaultTheme(),
		x:     x,
		width: width,
		sliders: []SliderDescriptor{
			{
				Label: "Buoyancy", Min: 0, Max: 0.5, Format: "%.2f",
				Get: func(p *sim.Params) float32 { return p.Buoyancy },
				Set: func(p *sim.Params, v float32) { p.Buoyancy = v },
			},
			{
				Label: "Wind", Min: -0.2, Max: 0.2, Format: "%.3f",
				Get: func(p *sim.Params) float32 { return p.Wind },
				Set: func(p *sim.Params, v float32) { p.Wind = v },
			},
			{
				Label: "Drag", Min: 0.9, Max: 1.0, Format: "%.3f",
				Get: func(p *sim.Params) float32 { return p.Drag },
				Set: func(p *sim.Params, v float32) { p.Drag = v },
			},
			{
				Label: "Particle size", Min: 1, Max: 12, Format: "%.1f",
				Get: func(p *sim.Params) float32 { return p.BaseRadius },
				Set: func(p *sim.Params, v float32) { p.BaseRadius = v },
			},
			{
				Label: "Emission rate", Min: 0, Max: 30, Format: "%.0f",
				Get: func(p *sim.Params) float32 { return float32(p.EmissionRate) },
				Set: func(p *sim.Params, v float32) { p.EmissionRate = int(v) },
			},
			{
				Label: "Lifetime (s)", Min: 0.5, Max: 8, Format: "%.1f",
				Get: func(p *sim.Params) float32 { return p.LifetimeSec },
				Set: func(p *sim.Params, v float32) { p.LifetimeSec = v },
			},
			{
				Label: "Turbulence", Min: 0, Max: 2, Format: "%.2f",
				Get: func(p *sim.Params) float32 { return p.TurbulenceStrength },
				Set: func(p *sim.Params, v float32) { p.TurbulenceStrength = v },
			},
			{
				Label: "Noise scale", Min: 0.01, Max: 0.5, Format: "%.3f",
				Get: func(p *sim.Params) float32 { return p.NoiseScale },
				Set: func(p *sim.Params, v float32) { p.NoiseScale = v },
			},
			{
				Label: "Smoothing radius", Min: 10, Max: 80, Format: "%.0f",
				Get: func(p *sim.Params) float32 { return p.SmoothingRadius },
				Set: func(p *sim.Params, v float32) { p.SmoothingRadius = v },
			},
			{
				Label: "Target density", Min: 0, Max: 10, Format: "%.1f",
				Get: func(p *sim.Params) float32 { return p.TargetDensity },
				Set: func(p *sim.Params, v float32) { p.TargetDensity = v },
			},
			{
				Label: "Pressure", Min: 0, Max: 5, Format: "%.2f",
				Get: func(p *sim.Params) float32 { return p.PressureMultiplier },
				Set: func(p *sim.Params, v float32) { p.PressureMultiplier = v },
			},
		},
	}
}

// Contains reports whether the screen point falls inside the panel, so
// clicks on sliders are not treated as emission.
func (c *ControlPanel) Contains(x float32) bool {
	return x >= float32(c.x)
}

// Draw renders the panel and applies slider and toggle changes to the
// parameter set in place.
func (c *ControlPanel) Draw(p *sim.Params, t *Toggles, screenHeight int32) {
	th := c.theme
	rl.DrawRectangle(c.x, 0, c.width, screenHeight, th.PanelBg)
	rl.DrawRectangleLines(c.x, 0, c.width, screenHeight, th.PanelBorder)

	x := c.x + th.Padding
	y := th.Padding

	rl.DrawText("Simulation", x, y, th.HeaderFontSize+2, rl.White)
	y += th.LineHeight + 8

	sliderW := float32(c.width) - float32(th.Padding)*2 - 50
	for i := range c.sliders {
		d := &c.sliders[i]

		rl.DrawText(d.Label, x, y, th.FontSize, th.LabelColor)
		valText := fmt.Sprintf(d.Format, d.Get(p))
		valW := rl.MeasureText(valText, th.FontSize)
		rl.DrawText(valText, c.x+c.width-th.Padding-valW, y, th.FontSize, th.ValueColor)
		y += th.LineHeight - 2

		v := gui.SliderBar(
			rl.Rectangle{X: float32(x), Y: float32(y), Width: sliderW, Height: th.SliderHeight},
			"", "",
			d.Get(p), d.Min, d.Max,
		)
		if v != d.Get(p) {
			d.Set(p, v)
		}
		y += int32(th.SliderHeight) + 10
	}

	y += 6
	rk4 := gui.CheckBox(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: 16, Height: 16},
		"RK4 integration",
		p.Integrator == sim.IntegratorRK4,
	)
	if rk4 {
		p.Integrator = sim.IntegratorRK4
	} else {
		p.Integrator = sim.IntegratorEuler
	}
	y += 26

	t.ShowField = gui.CheckBox(
		rl.Rectangle{X: float32(x), Y: float32(y), Width: 16, Height: 16},
		"Show flow field",
		t.ShowField,
	)
}

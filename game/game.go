package game

import (
	"log/slog"
	"math/rand"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/plume/config"
	"github.com/pthm-cable/plume/renderer"
	"github.com/pthm-cable/plume/sim"
	"github.com/pthm-cable/plume/telemetry"
	"github.com/pthm-cable/plume/ui"
)

// Options holds startup options built from CLI flags.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete application state: the simulation kernel, the
// interactive scene, rendering, and telemetry.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	sim       *sim.Simulator
	params    sim.Params
	obstacles []sim.Obstacle
	dragging  int // index into obstacles, -1 when not dragging

	// Rendering
	background   *renderer.BackgroundRenderer
	particles    *renderer.ParticleRenderer
	obstacleR    *renderer.ObstacleRenderer
	fieldOverlay *renderer.FieldOverlay
	panel        *ui.ControlPanel
	hud          *ui.HUD
	toggles      ui.Toggles

	// Telemetry
	collector *telemetry.Collector
	output    *telemetry.OutputManager
	perf      *telemetry.PerfCollector
	logStats  bool

	// State
	tick           int32
	paused         bool
	stepsPerUpdate int
}

// NewGameWithOptions creates the game from the loaded config and the
// given options.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	params := paramsFromConfig(cfg)

	obstacles := make([]sim.Obstacle, 0, len(cfg.Obstacles))
	for _, o := range cfg.Obstacles {
		obstacles = append(obstacles, sim.Obstacle{
			X:      float32(o.X),
			Y:      float32(o.Y),
			Radius: float32(o.Radius),
		})
	}

	s := sim.NewSimulator(
		cfg.Derived.Width32,
		cfg.Derived.Height32,
		cfg.Particles.Capacity,
		params.SmoothingRadius,
		rng,
	)

	dt := float32(1) / cfg.Derived.FPS32
	perf := telemetry.NewPerfCollector(cfg.Screen.TargetFPS)
	s.SetPhaseTimer(perf)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
		output = nil
	}
	if err := output.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	stepsPerUpdate := opts.StepsPerUpdate
	if stepsPerUpdate < 1 {
		stepsPerUpdate = 1
	}

	g := &Game{
		cfg:            cfg,
		rng:            rng,
		sim:            s,
		params:         params,
		obstacles:      obstacles,
		dragging:       -1,
		collector:      telemetry.NewCollector(opts.StatsWindowSec, dt),
		output:         output,
		perf:           perf,
		logStats:       opts.LogStats,
		stepsPerUpdate: stepsPerUpdate,
	}

	if !opts.Headless {
		g.background = renderer.NewBackgroundRenderer(
			int32(cfg.Screen.Width), int32(cfg.Screen.Height), opts.Seed)
		g.particles = renderer.NewParticleRenderer()
		g.obstacleR = renderer.NewObstacleRenderer()
		g.fieldOverlay = renderer.NewFieldOverlay(
			cfg.Derived.Width32, cfg.Derived.Height32)
		g.panel = ui.NewControlPanel(
			int32(cfg.Screen.Width-cfg.Screen.SidebarWidth),
			int32(cfg.Screen.SidebarWidth))
		g.hud = ui.NewHUD()
	}

	g.logStartup(opts)

	return g
}

// paramsFromConfig builds the kernel parameter set from the loaded config.
func paramsFromConfig(cfg *config.Config) sim.Params {
	integrator := sim.IntegratorEuler
	if strings.EqualFold(cfg.Turbulence.Integrator, "rk4") {
		integrator = sim.IntegratorRK4
	}

	return sim.Params{
		Gravity:            float32(cfg.Physics.Gravity),
		Buoyancy:           float32(cfg.Physics.Buoyancy),
		Wind:               float32(cfg.Physics.Wind),
		Drag:               float32(cfg.Physics.Drag),
		BaseRadius:         float32(cfg.Particles.BaseRadius),
		Growth:             float32(cfg.Particles.Growth),
		EmissionRate:       cfg.Particles.EmissionRate,
		LifetimeSec:        float32(cfg.Particles.LifetimeSec),
		FrameRate:          cfg.Derived.FPS32,
		TurbulenceStrength: float32(cfg.Turbulence.Strength),
		NoiseScale:         float32(cfg.Turbulence.NoiseScale),
		Integrator:         integrator,
		SmoothingRadius:    float32(cfg.SPH.SmoothingRadius),
		TargetDensity:      float32(cfg.SPH.TargetDensity),
		PressureMultiplier: float32(cfg.SPH.PressureMultiplier),
	}
}

// Update runs one frame of input handling and simulation in graphical
// mode.
func (g *Game) Update() {
	g.handleInput()
	g.perf.RecordFrame()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(g.emission())
	}
}

// UpdateHeadless runs the simulation without graphics or input. The
// default emitter runs continuously.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(g.defaultEmission())
	}
}

// step runs one simulation tick plus its telemetry bookkeeping.
func (g *Game) step(em sim.Emission) {
	g.perf.StartTick()

	stats := g.sim.Step(&g.params, em, g.obstacles)
	g.collector.RecordStep(stats)
	g.tick++

	if g.collector.ShouldFlush(g.tick) {
		g.flushTelemetry()
	}

	g.perf.EndTick()
}

// flushTelemetry closes the current stats window: samples the live set,
// logs, and writes the CSV rows.
func (g *Game) flushTelemetry() {
	window := g.collector.Flush(g.tick, g.sim)
	perfStats := g.perf.Stats()

	if g.logStats {
		window.LogStats()
		perfStats.LogStats()
	}
	if err := g.output.WriteTelemetry(window); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.output.WritePerf(perfStats, g.tick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}

// defaultEmission is the chimney emitter from the config.
func (g *Game) defaultEmission() sim.Emission {
	return sim.Emission{
		X:      float32(g.cfg.Emitter.X),
		Y:      float32(g.cfg.Emitter.Y),
		Count:  g.params.EmissionRate,
		Jitter: float32(g.cfg.Emitter.Jitter),
	}
}

// emission picks this frame's spawn source. Holding the mouse over the
// scene emits at the cursor instead of the chimney; dragging an obstacle
// suppresses emission entirely.
func (g *Game) emission() sim.Emission {
	if g.dragging >= 0 {
		return sim.Emission{}
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		mouse := rl.GetMousePosition()
		if !g.panel.Contains(mouse.X) {
			em := g.defaultEmission()
			em.X, em.Y = mouse.X, mouse.Y
			return em
		}
	}
	return g.defaultEmission()
}

// Draw renders one frame.
func (g *Game) Draw() {
	rl.BeginDrawing()

	g.background.Draw(g.params.Clock)
	if g.toggles.ShowField {
		field := sim.Field{Scale: g.params.NoiseScale}
		g.fieldOverlay.Draw(field, g.params.Clock)
	}
	g.obstacleR.Draw(g.obstacles, g.dragging)
	g.particles.Draw(g.sim)

	g.panel.Draw(&g.params, &g.toggles, int32(g.cfg.Screen.Height))
	g.hud.Draw(ui.HUDData{
		Alive:    g.sim.Alive(),
		Free:     g.sim.FreeSlots(),
		Capacity: g.sim.Capacity(),
		Tick:     g.tick,
		Speed:    g.stepsPerUpdate,
		FPS:      rl.GetFPS(),
		Paused:   g.paused,
	})
	g.hud.DrawControls(int32(g.cfg.Screen.Height))

	rl.EndDrawing()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Unload flushes telemetry output and releases resources.
func (g *Game) Unload() {
	if err := g.output.Close(); err != nil {
		slog.Error("failed to close telemetry output", "error", err)
	}
}

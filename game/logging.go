package game

import "log/slog"

// logStartup logs the effective simulation setup once at construction.
func (g *Game) logStartup(opts Options) {
	slog.Info("simulation configured",
		"capacity", g.sim.Capacity(),
		"emission_rate", g.params.EmissionRate,
		"lifetime_sec", g.params.LifetimeSec,
		"smoothing_radius", g.params.SmoothingRadius,
		"integrator", g.cfg.Turbulence.Integrator,
		"obstacles", len(g.obstacles),
		"seed", opts.Seed,
		"headless", opts.Headless,
	)
}

package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Alive     int `csv:"alive"`
	FreeSlots int `csv:"pool_free"`

	// Events during window
	Spawned int `csv:"spawned"`
	Culled  int `csv:"culled"`

	// Life distribution (sampled at window end)
	LifeMean float64 `csv:"life_mean"`
	LifeP10  float64 `csv:"life_p10"`
	LifeP50  float64 `csv:"life_p50"`
	LifeP90  float64 `csv:"life_p90"`

	// SPH field distribution
	DensityMean float64 `csv:"density_mean"`
	DensityStd  float64 `csv:"density_std"`
	PressureMax float64 `csv:"pressure_max"`

	// Kinematics
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP90  float64 `csv:"speed_p90"`

	RadiusMean float64 `csv:"radius_mean"`
}

// SampleStats summarizes one sampled distribution.
type SampleStats struct {
	Mean float64
	Std  float64
	P10  float64
	P50  float64
	P90  float64
}

// ComputeSampleStats calculates mean, std, and percentiles from sampled
// values. Returns zeroes for an empty sample.
func ComputeSampleStats(values []float64) SampleStats {
	if len(values) == 0 {
		return SampleStats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	s := SampleStats{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("alive", s.Alive),
		slog.Int("pool_free", s.FreeSlots),
		slog.Int("spawned", s.Spawned),
		slog.Int("culled", s.Culled),
		slog.Float64("life_mean", s.LifeMean),
		slog.Float64("life_p10", s.LifeP10),
		slog.Float64("life_p50", s.LifeP50),
		slog.Float64("life_p90", s.LifeP90),
		slog.Float64("density_mean", s.DensityMean),
		slog.Float64("density_std", s.DensityStd),
		slog.Float64("pressure_max", s.PressureMax),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("radius_mean", s.RadiusMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"alive", s.Alive,
		"spawned", s.Spawned,
		"culled", s.Culled,
		"life_mean", s.LifeMean,
		"density_mean", s.DensityMean,
		"speed_mean", s.SpeedMean,
	)
}

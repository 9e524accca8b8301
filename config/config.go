// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Particles  ParticlesConfig  `yaml:"particles"`
	Turbulence TurbulenceConfig `yaml:"turbulence"`
	SPH        SPHConfig        `yaml:"sph"`
	Emitter    EmitterConfig    `yaml:"emitter"`
	Obstacles  []ObstacleConfig `yaml:"obstacles"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings. The simulation world spans the
// whole window; the UI panel overlays the left sidebar strip.
type ScreenConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	TargetFPS    int `yaml:"target_fps"`
	SidebarWidth int `yaml:"sidebar_width"`
}

// PhysicsConfig holds the ambient force parameters.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`  // constant downward force
	Buoyancy float64 `yaml:"buoyancy"` // constant upward force
	Wind     float64 `yaml:"wind"`     // horizontal force, jittered per frame
	Drag     float64 `yaml:"drag"`     // velocity damping factor in (0, 1]
}

// ParticlesConfig holds particle spawn and lifecycle parameters.
type ParticlesConfig struct {
	BaseRadius   float64 `yaml:"base_radius"`   // spawn radius drawn from [base, 1.5*base)
	Growth       float64 `yaml:"growth"`        // radius increment per frame
	EmissionRate int     `yaml:"emission_rate"` // particles per frame
	LifetimeSec  float64 `yaml:"lifetime_sec"`  // mean particle lifetime in seconds
	Capacity     int     `yaml:"capacity"`      // pool capacity; hard particle cap
}

// TurbulenceConfig holds the procedural force field parameters.
type TurbulenceConfig struct {
	Strength   float64 `yaml:"strength"`    // force multiplier (0 disables sampling)
	NoiseScale float64 `yaml:"noise_scale"` // spatial frequency of the potential
	Integrator string  `yaml:"integrator"`  // "euler" or "rk4"
}

// SPHConfig holds the density/pressure model parameters.
type SPHConfig struct {
	SmoothingRadius    float64 `yaml:"smoothing_radius"`    // neighbor cutoff, > 0
	TargetDensity      float64 `yaml:"target_density"`      // rest density
	PressureMultiplier float64 `yaml:"pressure_multiplier"` // pressure stiffness
}

// EmitterConfig holds the default chimney emitter position.
// X and Y of 0 place the emitter at the classic spot right of center,
// near the bottom edge.
type EmitterConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Jitter float64 `yaml:"jitter"` // positional jitter at spawn, +/- units
}

// ObstacleConfig defines a circular solid in the initial scene.
type ObstacleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // seconds per stats window
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Width32   float32 // Screen.Width as float32
	Height32  float32 // Screen.Height as float32
	Sidebar32 float32 // Screen.SidebarWidth as float32
	FPS32     float32 // Screen.TargetFPS as float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.Width32 = float32(c.Screen.Width)
	c.Derived.Height32 = float32(c.Screen.Height)
	c.Derived.Sidebar32 = float32(c.Screen.SidebarWidth)
	c.Derived.FPS32 = float32(c.Screen.TargetFPS)

	if c.Emitter.X == 0 && c.Emitter.Y == 0 {
		c.Emitter.X = float64(c.Screen.Width)/2 + 150
		c.Emitter.Y = float64(c.Screen.Height) - 50
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

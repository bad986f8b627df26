// Package config provides configuration loading and access for the particle field.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all particle field parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Field     FieldConfig     `yaml:"field"`
	Pointer   PointerConfig   `yaml:"pointer"`
	Links     LinksConfig     `yaml:"links"`
	Theme     ThemeConfig     `yaml:"theme"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds window settings for the desktop host.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// FieldConfig holds particle creation parameters.
type FieldConfig struct {
	DensityDivisor float64 `yaml:"density_divisor"` // Square pixels per particle
	SpawnMargin    float64 `yaml:"spawn_margin"`    // Edge inset in particle sizes
	MinSize        float64 `yaml:"min_size"`
	SizeRange      float64 `yaml:"size_range"`
	MaxSpeed       float64 `yaml:"max_speed"`
}

// PointerConfig holds pointer repulsion parameters.
type PointerConfig struct {
	RadiusDivisor float64 `yaml:"radius_divisor"`
	RepulsionStep float64 `yaml:"repulsion_step"`
	EdgeMargin    float64 `yaml:"edge_margin"` // In particle sizes
}

// LinksConfig holds connection line parameters.
type LinksConfig struct {
	DistanceDivisor float64 `yaml:"distance_divisor"`
	FadeDistanceSq  float64 `yaml:"fade_distance_sq"`
	LineWidth       float64 `yaml:"line_width"`
}

// ThemeConfig holds the theme the host starts with.
type ThemeConfig struct {
	Initial string `yaml:"initial"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Frames per window
	PerfWindow  int `yaml:"perf_window"`
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

// Default returns the embedded defaults. Panics if they fail to parse.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived replaces zero values that would make the field degenerate.
func (c *Config) computeDerived() {
	if c.Field.DensityDivisor <= 0 {
		c.Field.DensityDivisor = 9000
	}
	if c.Pointer.RadiusDivisor <= 0 {
		c.Pointer.RadiusDivisor = 80
	}
	if c.Links.DistanceDivisor <= 0 {
		c.Links.DistanceDivisor = 7
	}
	if c.Links.FadeDistanceSq <= 0 {
		c.Links.FadeDistanceSq = 20000
	}
	if c.Links.LineWidth <= 0 {
		c.Links.LineWidth = 1
	}
	if c.Screen.TargetFPS <= 0 {
		c.Screen.TargetFPS = 60
	}
	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 120
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
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

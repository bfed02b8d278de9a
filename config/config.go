// Package config provides configuration loading and access for the overlay effects.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all overlay configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Snow       SnowConfig       `yaml:"snow"`
	Burst      BurstConfig      `yaml:"burst"`
	Wind       WindConfig       `yaml:"wind"`
	Follower   FollowerConfig   `yaml:"follower"`
	Population PopulationConfig `yaml:"population"`
	Sparkle    SparkleConfig    `yaml:"sparkle"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SnowConfig holds spawn tuning ranges for ambient snow particles.
// Min/Max pairs are sampled uniformly at spawn and fixed for the particle's life.
type SnowConfig struct {
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`
	MinFall   float64 `yaml:"min_fall"` // vertical speed, units per tick
	MaxFall   float64 `yaml:"max_fall"`
	MinDrift  float64 `yaml:"min_drift"` // horizontal speed, signed range
	MaxDrift  float64 `yaml:"max_drift"`
	MinDecay  float64 `yaml:"min_decay"` // life lost per tick
	MaxDecay  float64 `yaml:"max_decay"`
	MinDepth  float64 `yaml:"min_depth"` // parallax weight (0,1]
	MaxDepth  float64 `yaml:"max_depth"`

	SwingEnabled      bool    `yaml:"swing_enabled"`
	MinSwingAmplitude float64 `yaml:"min_swing_amplitude"`
	MaxSwingAmplitude float64 `yaml:"max_swing_amplitude"`
	MinSwingRate      float64 `yaml:"min_swing_rate"`
	MaxSwingRate      float64 `yaml:"max_swing_rate"`

	Palette []string `yaml:"palette"` // hex colors, e.g. "#ffffff"
	Margin  float64  `yaml:"margin"`  // off-screen band for wrap/respawn
}

// BurstConfig holds click-burst spark parameters.
type BurstConfig struct {
	Count    int     `yaml:"count"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	Decay    float64 `yaml:"decay"`
	Gravity  float64 `yaml:"gravity"` // downward acceleration per tick
	Radius   float64 `yaml:"radius"`

	Palette []string `yaml:"palette"`
}

// WindConfig holds the slow global horizontal drift parameters.
// The per-frame offset is sin(elapsed*rate)*strength, scaled per particle by depth.
type WindConfig struct {
	Strength float64 `yaml:"strength"`
	Rate     float64 `yaml:"rate"` // radians per tick
}

// FollowerPointConfig defines one follower point of the cursor trail.
type FollowerPointConfig struct {
	Name      string  `yaml:"name"`
	Smoothing float64 `yaml:"smoothing"` // fraction of remaining gap closed per tick
	Radius    float64 `yaml:"radius"`
	Color     string  `yaml:"color"`
}

// FollowerConfig holds the cursor-trail rig parameters.
type FollowerConfig struct {
	Points         []FollowerPointConfig `yaml:"points"`
	ScaleSmoothing float64               `yaml:"scale_smoothing"`
	HoverScale     float64               `yaml:"hover_scale"` // target scale while over a hover zone
}

// PopulationConfig holds adaptive population sizing parameters.
// Compact values apply below the compact width threshold (phones, narrow panes).
type PopulationConfig struct {
	AreaDivisor        float64 `yaml:"area_divisor"`
	CompactAreaDivisor float64 `yaml:"compact_area_divisor"`
	MaxCount           int     `yaml:"max_count"`
	CompactMaxCount    int     `yaml:"compact_max_count"`
	CompactWidth       int     `yaml:"compact_width"`
	ResizeDebounce     int     `yaml:"resize_debounce"` // ticks of quiet before reconcile
}

// SparkleConfig holds the low-probability cross/star flair parameters.
type SparkleConfig struct {
	Chance float64 `yaml:"chance"` // per particle per frame
	Length float64 `yaml:"length"` // arm length as a multiple of radius
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	WindowTicks int `yaml:"window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW float64 // Screen.Width as float64
	ScreenH float64 // Screen.Height as float64
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

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	// Synthesize a default trail if none specified
	if len(c.Follower.Points) == 0 {
		c.Follower.Points = []FollowerPointConfig{
			{Name: "dot", Smoothing: 0.25, Radius: 4, Color: "#ffffff"},
			{Name: "ring", Smoothing: 0.08, Radius: 14, Color: "#9bd6ff"},
		}
	}
	if c.Follower.ScaleSmoothing == 0 {
		c.Follower.ScaleSmoothing = 0.15
	}
	if c.Follower.HoverScale == 0 {
		c.Follower.HoverScale = 1.0
	}

	if len(c.Snow.Palette) == 0 {
		c.Snow.Palette = []string{"#ffffff"}
	}
	if len(c.Burst.Palette) == 0 {
		c.Burst.Palette = c.Snow.Palette
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

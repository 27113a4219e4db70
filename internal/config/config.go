// Package config handles datascape configuration loading and management.
package config

import (
	"github.com/Faultbox/datascape/pkg/growth"
	"github.com/Faultbox/datascape/pkg/heightfield"
)

// Config holds all settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Growth  GrowthConfig  `yaml:"growth"`
	Skyline SkylineConfig `yaml:"skyline"`
	Data    DataConfig    `yaml:"data"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds the data mountain settings.
type TerrainConfig struct {
	Width          int                    `yaml:"width"`
	Depth          int                    `yaml:"depth"`
	Scale          float32                `yaml:"scale"`
	NoiseAmplitude float32                `yaml:"noise_amplitude"`
	NoiseFrequency float32                `yaml:"noise_frequency"`
	Thresholds     heightfield.Thresholds `yaml:"thresholds"`
}

// GrowthConfig holds the building construction animation settings.
type GrowthConfig struct {
	GrowthRate float32 `yaml:"growth_rate"`
	Epsilon    float32 `yaml:"epsilon"`
	Amplitude  float32 `yaml:"amplitude"`
	Frequency  float32 `yaml:"frequency"`
}

// SkylineConfig holds simulation loop settings.
type SkylineConfig struct {
	TickDelta float32 `yaml:"tick_delta"` // Time units per frame
	MaxTicks  int     `yaml:"max_ticks"`
	Parallel  bool    `yaml:"parallel"`
}

// DataConfig holds dataset and output paths.
type DataConfig struct {
	Dataset   string `yaml:"dataset"`    // YAML dataset; empty uses the built-in sample
	OutputDir string `yaml:"output_dir"` // Where exported meshes are written
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	th := heightfield.DefaultThresholds()
	return &Config{
		Terrain: TerrainConfig{
			Width:          8,
			Depth:          8,
			Scale:          heightfield.DefaultScale,
			NoiseAmplitude: heightfield.DefaultNoiseAmplitude,
			NoiseFrequency: heightfield.DefaultNoiseFrequency,
			Thresholds:     th,
		},
		Growth: GrowthConfig{
			GrowthRate: growth.DefaultGrowthRate,
			Epsilon:    growth.DefaultEpsilon,
			Amplitude:  growth.DefaultAmplitude,
			Frequency:  growth.DefaultFrequency,
		},
		Skyline: SkylineConfig{
			TickDelta: 1,
			MaxTicks:  400,
			Parallel:  false,
		},
		Data: DataConfig{
			Dataset:   "",
			OutputDir: "out",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Grid returns the terrain resolution.
func (t TerrainConfig) Grid() heightfield.Grid {
	return heightfield.Grid{Width: t.Width, Depth: t.Depth}
}

// Options converts the terrain settings into builder options.
func (t TerrainConfig) Options() heightfield.Options {
	return heightfield.Options{
		Scale:          t.Scale,
		NoiseAmplitude: t.NoiseAmplitude,
		NoiseFrequency: t.NoiseFrequency,
		Thresholds:     t.Thresholds,
	}
}

// Animator builds a growth animator from the settings.
func (g GrowthConfig) Animator() *growth.Animator {
	return growth.NewAnimator(growth.Config{
		GrowthRate: g.GrowthRate,
		Epsilon:    g.Epsilon,
		Amplitude:  g.Amplitude,
		Frequency:  g.Frequency,
	})
}

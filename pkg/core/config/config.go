// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     config
// Description: TOML configuration for the Simpson capacitor study
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package config

import (
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/msto63/mdw-simpson/internal/capacitor"
	"github.com/msto63/mdw-simpson/internal/figure"
	"github.com/msto63/mdw-simpson/internal/study"
	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

// EnvConfigPath names the environment variable that points to a config file
const EnvConfigPath = "SIMPSON_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Problem ProblemConfig `toml:"problem"`
	Study   StudyConfig   `toml:"study"`
	Plot    PlotConfig    `toml:"plot"`

	// Source is the file the configuration was read from, empty for defaults
	Source string `toml:"-"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// ProblemConfig describes the discharging capacitor
type ProblemConfig struct {
	Capacitance float64 `toml:"capacitance"` // F
	Amplitude   float64 `toml:"amplitude"`   // V
	Rate        float64 `toml:"rate"`        // 1/s
	Duration    float64 `toml:"duration"`    // s
}

// StudyConfig holds the convergence study settings
type StudyConfig struct {
	Subdivisions []int  `toml:"subdivisions"`
	Output       string `toml:"output"`
}

// PlotConfig holds the figure settings
type PlotConfig struct {
	Disabled      bool    `toml:"disabled"`
	Open          bool    `toml:"open"` // show each figure after writing it
	OutputDir     string  `toml:"output_dir"`
	IntegrandFile string  `toml:"integrand_file"`
	ErrorFile     string  `toml:"error_file"`
	SamplePoints  int     `toml:"sample_points"`
	Subdivisions  int     `toml:"subdivisions"`
	Width         float64 `toml:"width"`  // inches
	Height        float64 `toml:"height"` // inches
	DPI           int     `toml:"dpi"`
}

// Default returns the configuration of the reference problem
func Default() *Config {
	p := capacitor.Default()
	fig := figure.DefaultOptions()

	cfg := &Config{
		Problem: ProblemConfig{
			Capacitance: p.Capacitance,
			Amplitude:   p.Amplitude,
			Rate:        p.Rate,
			Duration:    p.Duration,
		},
		Study: StudyConfig{
			Subdivisions: append([]int(nil), study.DefaultSubdivisions...),
		},
		Plot: PlotConfig{
			IntegrandFile: figure.DefaultIntegrandFile,
			ErrorFile:     figure.DefaultErrorFile,
			SamplePoints:  fig.SamplePoints,
			Subdivisions:  fig.Subdivisions,
			Width:         fig.Width,
			Height:        fig.Height,
			DPI:           fig.DPI,
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, mdwerrors.Newf(mdwerrors.CodeMissingConfig, "config file not found: %s", path)
	}

	// keys missing from the file keep their default; explicit zeros are
	// kept and checked by Validate
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, mdwerrors.Wrap(err, mdwerrors.CodeInvalidConfig, "failed to parse config")
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by SIMPSON_CONFIG, or the first file found
// in the default locations. Without any file the defaults are returned.
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return Load(path)
	}

	defaultPaths := []string{
		"./configs/simpson.toml",
		"./simpson.toml",
		filepath.Join(os.Getenv("HOME"), ".config/meindenkwerk/simpson.toml"),
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// applyDefaults fills settings for which an empty string is never a
// meaningful choice
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "simpson"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.Study.Output == "" {
		c.Study.Output = "text"
	}
	if c.Plot.OutputDir == "" {
		c.Plot.OutputDir = "."
	}
	if c.Plot.IntegrandFile == "" {
		c.Plot.IntegrandFile = figure.DefaultIntegrandFile
	}
	if c.Plot.ErrorFile == "" {
		c.Plot.ErrorFile = figure.DefaultErrorFile
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Plot.OutputDir = os.ExpandEnv(c.Plot.OutputDir)
	c.Plot.IntegrandFile = os.ExpandEnv(c.Plot.IntegrandFile)
	c.Plot.ErrorFile = os.ExpandEnv(c.Plot.ErrorFile)
}

// Validate checks value ranges. Subdivision parity is left to the
// quadrature, which owns that contract.
func (c *Config) Validate() error {
	invalid := func(field string, value interface{}) error {
		return mdwerrors.Newf(mdwerrors.CodeInvalidConfig, "invalid value for %s", field).
			WithOperation("config.Validate").
			WithDetail("value", value)
	}

	positive := []struct {
		field string
		value float64
	}{
		{"problem.capacitance", c.Problem.Capacitance},
		{"problem.rate", c.Problem.Rate},
		{"problem.duration", c.Problem.Duration},
		{"plot.width", c.Plot.Width},
		{"plot.height", c.Plot.Height},
	}
	for _, p := range positive {
		if p.value <= 0 || math.IsNaN(p.value) || math.IsInf(p.value, 0) {
			return invalid(p.field, p.value)
		}
	}
	if math.IsNaN(c.Problem.Amplitude) || math.IsInf(c.Problem.Amplitude, 0) {
		return invalid("problem.amplitude", c.Problem.Amplitude)
	}
	if c.Plot.SamplePoints < 2 {
		return invalid("plot.sample_points", c.Plot.SamplePoints)
	}
	if c.Plot.DPI <= 0 {
		return invalid("plot.dpi", c.Plot.DPI)
	}
	switch c.Study.Output {
	case "text", "table", "yaml", "json":
	default:
		return invalid("study.output", c.Study.Output)
	}
	return nil
}

// IntegrandPath returns the full path of the integrand figure
func (c *Config) IntegrandPath() string {
	return filepath.Join(c.Plot.OutputDir, c.Plot.IntegrandFile)
}

// ErrorPath returns the full path of the error figure
func (c *Config) ErrorPath() string {
	return filepath.Join(c.Plot.OutputDir, c.Plot.ErrorFile)
}

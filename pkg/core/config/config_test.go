package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// General defaults
	if cfg.General.Name != "simpson" {
		t.Errorf("General.Name = %v, want simpson", cfg.General.Name)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("General.LogLevel = %v, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "console" {
		t.Errorf("General.LogFormat = %v, want console", cfg.General.LogFormat)
	}

	// Problem defaults reproduce the reference capacitor
	if cfg.Problem.Capacitance != 1e-6 {
		t.Errorf("Problem.Capacitance = %v, want 1e-6", cfg.Problem.Capacitance)
	}
	if cfg.Problem.Amplitude != 100 {
		t.Errorf("Problem.Amplitude = %v, want 100", cfg.Problem.Amplitude)
	}
	if cfg.Problem.Rate != 2 {
		t.Errorf("Problem.Rate = %v, want 2", cfg.Problem.Rate)
	}
	if cfg.Problem.Duration != 5 {
		t.Errorf("Problem.Duration = %v, want 5", cfg.Problem.Duration)
	}

	// Study defaults
	want := []int{6, 10, 20, 30}
	if len(cfg.Study.Subdivisions) != len(want) {
		t.Fatalf("Study.Subdivisions = %v, want %v", cfg.Study.Subdivisions, want)
	}
	for i := range want {
		if cfg.Study.Subdivisions[i] != want[i] {
			t.Errorf("Study.Subdivisions[%d] = %v, want %v", i, cfg.Study.Subdivisions[i], want[i])
		}
	}
	if cfg.Study.Output != "text" {
		t.Errorf("Study.Output = %v, want text", cfg.Study.Output)
	}

	// Plot defaults
	if cfg.Plot.IntegrandFile != "carga_capacitor_simpson.png" {
		t.Errorf("Plot.IntegrandFile = %v", cfg.Plot.IntegrandFile)
	}
	if cfg.Plot.ErrorFile != "error_carga_capacitor.png" {
		t.Errorf("Plot.ErrorFile = %v", cfg.Plot.ErrorFile)
	}
	if cfg.Plot.SamplePoints != 100 {
		t.Errorf("Plot.SamplePoints = %v, want 100", cfg.Plot.SamplePoints)
	}
	if cfg.Plot.Subdivisions != 30 {
		t.Errorf("Plot.Subdivisions = %v, want 30", cfg.Plot.Subdivisions)
	}
	if cfg.Plot.Disabled {
		t.Error("Plot.Disabled should default to false")
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.General.Name != "simpson" || cfg.General.LogLevel != "info" || cfg.General.LogFormat != "console" {
		t.Errorf("General = %+v", cfg.General)
	}
	if cfg.Study.Output != "text" {
		t.Errorf("Study.Output = %v, want text", cfg.Study.Output)
	}
	if cfg.Plot.OutputDir != "." {
		t.Errorf("Plot.OutputDir = %v, want .", cfg.Plot.OutputDir)
	}
	// numeric settings are never filled in; zero is a value of its own
	if cfg.Problem.Amplitude != 0 || cfg.Plot.DPI != 0 {
		t.Errorf("numeric fields were defaulted: amplitude=%v dpi=%v", cfg.Problem.Amplitude, cfg.Plot.DPI)
	}
}

func TestDefault_DoesNotShareSubdivisions(t *testing.T) {
	a := Default()
	a.Study.Subdivisions[0] = 99

	if b := Default(); b.Study.Subdivisions[0] != 6 {
		t.Errorf("Default() shares its subdivision slice: %v", b.Study.Subdivisions)
	}
}

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/simpson.toml")
	if err == nil {
		t.Fatal("Load() expected error for non-existent file")
	}
	if !mdwerrors.HasCode(err, mdwerrors.CodeMissingConfig) {
		t.Errorf("error code = %v, want %v", mdwerrors.GetCode(err), mdwerrors.CodeMissingConfig)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "simpson.toml")

	configContent := `
[general]
log_level = "debug"

[problem]
capacitance = 2e-6
duration = 3.0

[study]
subdivisions = [4, 8, 16]
output = "table"

[plot]
output_dir = "figures"
dpi = 150
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("General.LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Problem.Capacitance != 2e-6 {
		t.Errorf("Problem.Capacitance = %v, want 2e-6", cfg.Problem.Capacitance)
	}
	if cfg.Problem.Duration != 3 {
		t.Errorf("Problem.Duration = %v, want 3", cfg.Problem.Duration)
	}
	// untouched values keep their defaults
	if cfg.Problem.Amplitude != 100 {
		t.Errorf("Problem.Amplitude = %v, want 100", cfg.Problem.Amplitude)
	}
	if len(cfg.Study.Subdivisions) != 3 || cfg.Study.Subdivisions[2] != 16 {
		t.Errorf("Study.Subdivisions = %v, want [4 8 16]", cfg.Study.Subdivisions)
	}
	if cfg.Study.Output != "table" {
		t.Errorf("Study.Output = %v, want table", cfg.Study.Output)
	}
	if cfg.Plot.DPI != 150 {
		t.Errorf("Plot.DPI = %v, want 150", cfg.Plot.DPI)
	}
	if got := cfg.IntegrandPath(); got != filepath.Join("figures", "carga_capacitor_simpson.png") {
		t.Errorf("IntegrandPath() = %v", got)
	}
	if cfg.Source != configPath {
		t.Errorf("Source = %v, want %v", cfg.Source, configPath)
	}
}

func TestLoad_ExplicitZero(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:    "zero amplitude is kept",
			content: "[problem]\namplitude = 0.0\n",
			check: func(t *testing.T, cfg *Config, err error) {
				if err != nil {
					t.Fatalf("Load() error = %v", err)
				}
				if cfg.Problem.Amplitude != 0 {
					t.Errorf("Problem.Amplitude = %v, want 0", cfg.Problem.Amplitude)
				}
				if cfg.Problem.Capacitance != 1e-6 {
					t.Errorf("Problem.Capacitance = %v, want default 1e-6", cfg.Problem.Capacitance)
				}
			},
		},
		{
			name:    "zero dpi is rejected",
			content: "[plot]\ndpi = 0\n",
			check: func(t *testing.T, cfg *Config, err error) {
				if !mdwerrors.HasCode(err, mdwerrors.CodeInvalidConfig) {
					t.Errorf("Load() error = %v, want code %v", err, mdwerrors.CodeInvalidConfig)
				}
			},
		},
		{
			name:    "zero duration is rejected",
			content: "[problem]\nduration = 0.0\n",
			check: func(t *testing.T, cfg *Config, err error) {
				if !mdwerrors.HasCode(err, mdwerrors.CodeInvalidConfig) {
					t.Errorf("Load() error = %v, want code %v", err, mdwerrors.CodeInvalidConfig)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "simpson.toml")
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			cfg, err := Load(configPath)
			tt.check(t, cfg, err)
		})
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "broken.toml")
	if err := os.WriteFile(configPath, []byte("[problem\ncapacitance = "), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := Load(configPath)
	if !mdwerrors.HasCode(err, mdwerrors.CodeInvalidConfig) {
		t.Errorf("Load() error = %v, want code %v", err, mdwerrors.CodeInvalidConfig)
	}
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("SIMPSON_TEST_OUT", "/tmp/simpson-out")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "simpson.toml")
	if err := os.WriteFile(configPath, []byte("[plot]\noutput_dir = \"$SIMPSON_TEST_OUT\"\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Plot.OutputDir != "/tmp/simpson-out" {
		t.Errorf("Plot.OutputDir = %v, want /tmp/simpson-out", cfg.Plot.OutputDir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative capacitance", func(c *Config) { c.Problem.Capacitance = -1 }},
		{"negative rate", func(c *Config) { c.Problem.Rate = -2 }},
		{"negative duration", func(c *Config) { c.Problem.Duration = -5 }},
		{"single sample point", func(c *Config) { c.Plot.SamplePoints = 1 }},
		{"negative dpi", func(c *Config) { c.Plot.DPI = -1 }},
		{"unknown output", func(c *Config) { c.Study.Output = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error")
			}
			if !mdwerrors.HasCode(err, mdwerrors.CodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", mdwerrors.GetCode(err), mdwerrors.CodeInvalidConfig)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "env.toml")
	if err := os.WriteFile(configPath, []byte("[problem]\namplitude = 50.0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv(EnvConfigPath, configPath)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Problem.Amplitude != 50 {
		t.Errorf("Problem.Amplitude = %v, want 50", cfg.Problem.Amplitude)
	}
}

func TestLoadFromEnv_FallsBackToDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv("HOME", t.TempDir())
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("os.Getwd() error = %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("os.Chdir() error = %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty for defaults", cfg.Source)
	}
	if cfg.Problem.Duration != 5 {
		t.Errorf("Problem.Duration = %v, want 5", cfg.Problem.Duration)
	}
}

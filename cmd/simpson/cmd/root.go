// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     cmd
// Description: Root command and shared settings of the simpson CLI
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mdw-simpson/internal/capacitor"
	"github.com/msto63/mdw-simpson/internal/figure"
	"github.com/msto63/mdw-simpson/pkg/core/config"
	"github.com/msto63/mdw-simpson/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	// study and plot overrides
	subdivisions []int
	plotN        int
	outDir       string
	outputFormat string
	noPlots      bool
	openPlots    bool

	appCfg *config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "simpson",
	Short: "Kondensatorladung mit der Simpsonregel",
	Long: `simpson berechnet die Ladung eines Kondensators

  Q = C · ∫₀ᵀ V(t) dt,   V(t) = V₀ · e^(−k·t)

mit der zusammengesetzten Simpsonregel für mehrere Unterteilungen n,
vergleicht jedes Ergebnis mit der analytischen Lösung und schreibt
zwei Grafiken (Integrand mit Fläche, Fehler über n).

Ohne Unterbefehl verhält sich simpson wie "simpson run".

Befehle:
  run      - Konvergenzstudie ausgeben und Grafiken schreiben
  plot     - Nur die Grafiken schreiben
  explore  - Interaktive Ansicht, n schrittweise ändern
  version  - Versionsinformationen`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runStudy,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	if logger != nil {
		_ = logger.Sync()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: $SIMPSON_CONFIG oder ./configs/simpson.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log-Format: console oder json")

	addStudyFlags(rootCmd)
	addPlotFlags(rootCmd)
}

func addStudyFlags(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&subdivisions, "n", nil, "Unterteilungen, z.B. --n 6,10,20,30")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "", "Ausgabeformat: text, table, yaml, json")
	cmd.Flags().BoolVar(&noPlots, "no-plots", false, "Keine Grafiken schreiben")
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&plotN, "plot-n", 0, "Unterteilung, deren Stützstellen markiert werden (default: 30)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Zielverzeichnis der Grafiken (default: .)")
	cmd.Flags().BoolVar(&openPlots, "open", false, "Grafiken nach dem Schreiben im Bildbetrachter öffnen")
}

// setup loads the configuration, applies flag overrides and builds the
// logger. It runs before every command.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appCfg, err = config.Load(cfgFile)
	} else {
		appCfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("n") {
		appCfg.Study.Subdivisions = append([]int(nil), subdivisions...)
	}
	if flags.Changed("output") {
		appCfg.Study.Output = outputFormat
	}
	if flags.Changed("no-plots") {
		appCfg.Plot.Disabled = noPlots
	}
	if flags.Changed("plot-n") {
		appCfg.Plot.Subdivisions = plotN
	}
	if flags.Changed("out-dir") {
		appCfg.Plot.OutputDir = outDir
	}
	if flags.Changed("open") {
		appCfg.Plot.Open = openPlots
	}
	if logFormat != "" {
		appCfg.General.LogFormat = logFormat
	}
	if err := appCfg.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultLoggerConfig(appCfg.General.Name)
	logCfg.Level = appCfg.General.LogLevel
	logCfg.Format = appCfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(logCfg)
	if verbose {
		logger = logger.WithLevel(logging.LevelDebug)
	}
	if appCfg.Source != "" {
		logger.Debug("Configuration loaded", "path", appCfg.Source)
	}
	return nil
}

func problemFromConfig(cfg *config.Config) capacitor.Problem {
	return capacitor.Problem{
		Capacitance: cfg.Problem.Capacitance,
		Amplitude:   cfg.Problem.Amplitude,
		Rate:        cfg.Problem.Rate,
		Duration:    cfg.Problem.Duration,
	}
}

func figureOptions(cfg *config.Config) figure.Options {
	return figure.Options{
		SamplePoints: cfg.Plot.SamplePoints,
		Subdivisions: cfg.Plot.Subdivisions,
		Width:        cfg.Plot.Width,
		Height:       cfg.Plot.Height,
		DPI:          cfg.Plot.DPI,
	}
}

func printError(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Fehler: %v\n", err)
}

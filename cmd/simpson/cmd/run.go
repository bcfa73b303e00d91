package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mdw-simpson/internal/capacitor"
	"github.com/msto63/mdw-simpson/internal/figure"
	"github.com/msto63/mdw-simpson/internal/report"
	"github.com/msto63/mdw-simpson/internal/study"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Konvergenzstudie ausgeben und Grafiken schreiben",
	Long: `Berechnet die Ladung für jede Unterteilung n, gibt Ladung und
absoluten Fehler gegenüber der analytischen Lösung aus und schreibt
beide Grafiken.

Beispiele:
  simpson run
  simpson run --n 4,8,16,32 -o table
  simpson run --no-plots -o json
  simpson run --out-dir figures --plot-n 10
  simpson run --open`,
	Args: cobra.NoArgs,
	RunE: runStudy,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addStudyFlags(runCmd)
	addPlotFlags(runCmd)
}

func runStudy(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(appCfg.Study.Output)
	if err != nil {
		return err
	}

	p := problemFromConfig(appCfg)
	res, err := study.NewRunner(logger).Run(p, appCfg.Study.Subdivisions)
	if err != nil {
		return err
	}

	if err := report.Write(cmd.OutOrStdout(), format, res); err != nil {
		return err
	}

	if appCfg.Plot.Disabled {
		logger.Debug("Plots disabled")
		return nil
	}
	return writeFigures(p, res)
}

func writeFigures(p capacitor.Problem, res *study.Result) error {
	opts := figureOptions(appCfg)

	integrandPath := appCfg.IntegrandPath()
	if err := figure.WriteIntegrand(p, opts, integrandPath); err != nil {
		return err
	}
	logger.Info("Figure written", "path", integrandPath)
	showFigure(integrandPath)

	if len(res.Records) == 0 {
		logger.Warn("No subdivisions given, skipping error figure")
		return nil
	}
	errorPath := appCfg.ErrorPath()
	if err := figure.WriteErrorCurve(res, opts, errorPath); err != nil {
		return err
	}
	logger.Info("Figure written", "path", errorPath)
	showFigure(errorPath)
	return nil
}

// openFigure starts the image viewer for a written figure
var openFigure = figure.Open

// showFigure opens path when requested. A missing viewer does not fail the
// run since the file is already written.
func showFigure(path string) {
	if !appCfg.Plot.Open {
		return
	}
	if err := openFigure(path); err != nil {
		logger.Warn("Cannot open figure", "path", path, "error", err)
		return
	}
	logger.Debug("Figure opened", "path", path)
}

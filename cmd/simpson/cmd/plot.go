package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mdw-simpson/internal/study"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Nur die Grafiken schreiben",
	Long: `Schreibt die Grafik des Integranden (mit markierten Stützstellen)
und die Grafik des Fehlers über n, ohne Tabelle auf stdout.

Beispiele:
  simpson plot
  simpson plot --out-dir figures --plot-n 10`,
	Args: cobra.NoArgs,
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)
	plotCmd.Flags().IntSliceVar(&subdivisions, "n", nil, "Unterteilungen der Fehlergrafik")
	addPlotFlags(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	p := problemFromConfig(appCfg)
	res, err := study.NewRunner(logger).Run(p, appCfg.Study.Subdivisions)
	if err != nil {
		return err
	}
	return writeFigures(p, res)
}

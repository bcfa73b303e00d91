package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/mdw-simpson/internal/explore"
)

var exploreStart int

var exploreCmd = &cobra.Command{
	Use:     "explore",
	Aliases: []string{"tui"},
	Short:   "Interaktive Ansicht, n schrittweise ändern",
	Long: `Startet eine Terminal-UI, in der die Unterteilung n schrittweise
geändert wird. Angezeigt werden Ladung, Fehler und die beobachtete
Konvergenzordnung gegenüber dem vorherigen n.

Tastenkuerzel:
  + / →       n um 2 erhöhen
  - / ←       n um 2 verringern
  r           Zurücksetzen
  ?           Hilfe
  q / Ctrl+C  Beenden`,
	Args: cobra.NoArgs,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().IntVar(&exploreStart, "start", 6, "Start-Unterteilung")
}

func runExplore(cmd *cobra.Command, args []string) error {
	return explore.Run(problemFromConfig(appCfg), exploreStart)
}

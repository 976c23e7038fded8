package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/swfilms/tui"
)

var autoFetch bool

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the films interactively",
	Long: `Open the interactive film list. Press f to fetch the films, enter to
read the opening crawl of the selected film and q to quit.`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&autoFetch, "auto-fetch", false, "fetch the films once on startup")
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := redirectLogs(); err != nil {
		return err
	}
	if err := newSWAPIClient(); err != nil {
		return err
	}

	fetchOnStart := cfg.UI.AutoFetch
	if cmd.Flags().Changed("auto-fetch") {
		fetchOnStart = autoFetch
	}

	logger.Info().Bool("auto_fetch", fetchOnStart).Msg("Starting interactive UI")

	return tui.Run(swapiClient, logger,
		tui.WithAutoFetch(fetchOnStart),
		tui.WithAltScreen(cfg.UI.AltScreen),
	)
}

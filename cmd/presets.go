package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/swfilms/filter"
	"github.com/s0up4200/swfilms/movies"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Show which films every configured preset matches",
	Long:  `Fetch the films once and evaluate every filter preset from the config against them.`,
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	if len(cfg.Filter.Presets) == 0 {
		fmt.Println("No presets configured (see filter.presets in the config file).")
		return nil
	}

	manager := filter.NewManager()
	if err := manager.RegisterFilters(cfg.Filter.Presets); err != nil {
		return err
	}

	return evaluatePresets(context.Background(), os.Stdout, swapiClient, logger, manager)
}

func evaluatePresets(ctx context.Context, out io.Writer, source movies.FilmLister, logger zerolog.Logger, manager *filter.Manager) error {
	controller := movies.NewController(source, logger)
	controller.Trigger(ctx)
	state := controller.State()

	if state.HasError() {
		fmt.Fprintln(out, state.Err)
		return errFetchFailed
	}

	results, err := manager.EvaluateAll(ctx, state.Movies)
	if err != nil {
		return err
	}

	for _, name := range manager.ListFilters() {
		matched := results[name]
		f, _ := manager.GetFilter(name)
		fmt.Fprintf(out, "%s (%d/%d): %s\n", name, len(matched), len(state.Movies), f.Expression())

		titles := make([]string, 0, len(matched))
		for _, movie := range matched {
			titles = append(titles, movie.Title)
		}
		if len(titles) > 0 {
			fmt.Fprintf(out, "  %s\n", strings.Join(titles, ", "))
		}
	}

	return nil
}

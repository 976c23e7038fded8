package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/swfilms/config"
	"github.com/s0up4200/swfilms/filter"
	"github.com/s0up4200/swfilms/movies"
)

var (
	filterExpr  string
	preset      string
	showDetails bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Fetch the films once and print them",
	Long: `Fetch the films from SWAPI and print them as plain text. An optional
expr filter narrows the printed list, e.g.

  swfilms list --filter 'Year >= 1999'
  swfilms list --filter 'includes(Title, "empire")'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().BoolVar(&showDetails, "details", false, "show the opening crawl of each film")
}

func runList(cmd *cobra.Command, args []string) error {
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	opts := movies.FormatOptions{ShowDetails: cfg.Output.ShowDetails}
	if cmd.Flags().Changed("details") {
		opts.ShowDetails = showDetails
	}

	useColor := cfg.Output.Color && isTerminal(os.Stdout) && !color.NoColor

	return listMovies(context.Background(), os.Stdout, swapiClient, logger, expr, opts, useColor)
}

// listMovies runs one fetch cycle and prints the resulting view
func listMovies(ctx context.Context, out io.Writer, source movies.FilmLister, logger zerolog.Logger, expr string, opts movies.FormatOptions, useColor bool) error {
	var f *filter.ExprFilter
	if expr != "" {
		var err error
		f, err = filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", expr).Msg("Filtering movies")
	}

	controller := movies.NewController(source, logger)
	controller.Trigger(ctx)
	state := controller.State()

	formatter := movies.NewConsoleFormatter(useColor)

	if state.HasError() {
		fmt.Fprint(out, formatter.Render(state, opts))
		return errFetchFailed
	}

	if f != nil {
		matched, err := filter.Apply(state.Movies, f)
		if err != nil {
			return err
		}
		state.Movies = matched
	}

	fmt.Fprint(out, formatter.Render(state, opts))
	return nil
}

// getFilterExpression determines the filter expression to use
func getFilterExpression() (string, error) {
	return resolveFilterExpression(cfg.Filter, filterExpr, preset)
}

// resolveFilterExpression picks the command line filter over a preset. No
// filter at all lists every film.
func resolveFilterExpression(filters config.FilterConfig, expr, presetName string) (string, error) {
	if expr != "" {
		return expr, nil
	}

	if presetName != "" {
		if presetFilter, ok := filters.Presets[presetName]; ok {
			return presetFilter, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", presetName)
	}

	return "", nil
}

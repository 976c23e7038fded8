package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/swfilms/swapi"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the connection to SWAPI",
	Long:  `Test the connection to the configured SWAPI instance and display basic information.`,
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to SWAPI at %s...\n", swapiClient.BaseURL())

	ctx := context.Background()
	if err := swapiClient.Ping(ctx); err != nil {
		var reqErr *swapi.RequestError
		if errors.As(err, &reqErr) {
			return fmt.Errorf("connection failed: %s", reqErr.Detail())
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Println("✓ Connection successful!")

	films, err := swapiClient.ListFilms(ctx)
	if err != nil {
		return fmt.Errorf("failed to get films: %w", err)
	}

	fmt.Printf("\nSWAPI Statistics:\n")
	fmt.Printf("- Films endpoint: %s\n", swapiClient.FilmsURL())
	fmt.Printf("- Total films: %d\n", len(films))

	return nil
}

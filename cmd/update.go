package cmd

import (
	"context"
	"fmt"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

const repoSlug = "s0up4200/swfilms"

var checkOnly bool

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update swfilms to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only report whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := currentVersion(version)
	if err != nil {
		return err
	}

	ctx := context.Background()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("error detecting latest version: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s", repoSlug)
	}

	if latest.LessOrEqual(current.String()) {
		fmt.Printf("Current version %s is the latest\n", current)
		return nil
	}

	if checkOnly {
		fmt.Printf("Update available: %s -> %s\n", current, latest.Version())
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().Str("from", current.String()).Str("to", latest.Version()).Msg("Updating")
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Printf("Successfully updated to version %s\n", latest.Version())
	return nil
}

// currentVersion parses the build version. Development builds cannot update.
func currentVersion(v string) (semver.Version, error) {
	if v == "" || v == "dev" {
		return semver.Version{}, fmt.Errorf("development build %q cannot be updated, install a release", v)
	}
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("invalid build version %q: %w", v, err)
	}
	return parsed, nil
}

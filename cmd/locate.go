package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Print the current location once",
	Long: `Ask the configured location provider for one position fix and print its
latitude, longitude and accuracy.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := locateRun(cmd.Context(), os.Stdout); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

func locateRun(ctx context.Context, w io.Writer) error {
	locator, err := newLocator(appConfig)
	if err != nil {
		return err
	}

	perm, err := locator.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("requesting location permission: %w", err)
	}
	if perm != capability.Granted {
		return fmt.Errorf("location permission not granted: %w", capability.ErrPermissionDenied)
	}

	fix, err := locator.CurrentFix(ctx)
	if err != nil {
		return fmt.Errorf("getting location: %w", err)
	}

	if jsonOutput {
		return ui.FormatJSON(w, fix)
	}
	ui.FormatFix(w, fix)
	return nil
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

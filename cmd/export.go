package cmd

import (
	"context"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/export"
	"github.com/spf13/cobra"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print every mood entry, newest first",
	Long: `Print every recorded mood entry, newest first. JSON output is an array of
objects with id, timestamp, mood, photoUri, latitude and longitude; entries
without a location carry explicit nulls. Nothing is printed if the database
cannot be read.`,
	Example: `  moodctl export
  moodctl export --format csv > moods.csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := exportRun(cmd.Context(), os.Stdout, exportFormat); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

func exportRun(ctx context.Context, w io.Writer, format string) error {
	return export.Write(ctx, w, store, format)
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", export.FormatJSON, "output format (json|csv)")
	rootCmd.AddCommand(exportCmd)
}

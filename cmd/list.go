package cmd

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var listLimit int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries",
	Long:  "List mood entries as a table, newest first.",
	Example: `  moodctl list
  moodctl list --limit 10
  moodctl list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := listRun(cmd.Context(), os.Stdout, listLimit); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

func listRun(ctx context.Context, w io.Writer, limit int) error {
	entries, err := store.ListAll(ctx)
	if err != nil {
		return err
	}
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.ToSummaries(entries))
	}

	var buf bytes.Buffer
	ui.FormatEntryTable(&buf, entries)
	return ui.OutputOrPage(w, buf.String(), false, ui.ResolveTheme(appConfig.Theme))
}

func init() {
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "show at most this many entries (0 for all)")
	rootCmd.AddCommand(listCmd)
}

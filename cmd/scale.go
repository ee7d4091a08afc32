package cmd

import (
	"os"

	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Show the mood scale",
	Long:  "Show the five mood levels with their score, emoji, label and color.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return ui.FormatJSON(os.Stdout, mood.Levels)
		}
		ui.FormatScale(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scaleCmd)
}

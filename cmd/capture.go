package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/capability/camera"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/chris-regnier/moodctl/internal/workflow"
	"github.com/spf13/cobra"
)

var (
	capturePhoto      string
	captureMood       int
	captureNoLocation bool
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Record a mood entry without the interactive screen",
	Long: `Record a mood entry in one step: the photo is stored in the photo library,
the mood selected and the entry saved with the current location when
location access is available.

With --photo the given image file is imported. Without it, the configured
capture command (camera.source = "command") takes the picture.`,
	Example: `  moodctl capture --photo ~/Pictures/me.jpg --mood 4
  moodctl capture --photo selfie.png --mood 2 --no-location
  moodctl capture --mood 5 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := captureRun(cmd.Context(), os.Stdout, capturePhoto, captureMood, captureNoLocation); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

// captureRun drives the capture workflow once: open camera, take photo,
// select mood, save.
func captureRun(ctx context.Context, w io.Writer, photo string, score int, noLocation bool) error {
	s := mood.Score(score)
	if err := mood.ValidateScore(s); err != nil {
		return err
	}

	var cam capability.Camera
	if photo != "" {
		c := camera.NewImport(appConfig.Photos())
		c.SetSource(photo)
		cam = c
	} else {
		c, source, err := newCamera(appConfig)
		if err != nil {
			return err
		}
		if source != nil {
			return fmt.Errorf("%w: pass --photo or set camera.source to \"command\"", workflow.ErrMissingPhoto)
		}
		cam = c
	}

	opts := []workflow.Option{workflow.WithLogger(logger)}
	if noLocation {
		opts = append(opts, workflow.WithoutLocation())
	}
	locator, err := newLocator(appConfig)
	if err != nil {
		return err
	}

	wf := workflow.New(store, cam, locator, opts...)
	if err := wf.OpenCamera(ctx); err != nil {
		return err
	}
	if _, err := wf.TakePhoto(ctx); err != nil {
		return err
	}
	if err := wf.SelectMood(s); err != nil {
		return err
	}
	e, err := wf.Save(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, e)
	}
	ui.FormatEntrySaved(w, e)
	return nil
}

func init() {
	captureCmd.Flags().StringVar(&capturePhoto, "photo", "", "image file to import as the entry photo")
	captureCmd.Flags().IntVar(&captureMood, "mood", int(mood.DefaultScore), "mood score from 1 (very sad) to 5 (very happy)")
	captureCmd.Flags().BoolVar(&captureNoLocation, "no-location", false, "save without coordinates")
	rootCmd.AddCommand(captureCmd)
}

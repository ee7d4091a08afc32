package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/export"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/chris-regnier/moodctl/internal/workflow"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	store          storage.Storage

	logger = log.New(os.Stderr, "moodctl: ", 0)
)

var rootCmd = &cobra.Command{
	Use:   "moodctl",
	Short: "Log how you feel with a photo and a mood",
	Long: `moodctl records mood entries: a photo of yourself, a score on a five-level
scale, and optionally where you were. Entries are kept in a local SQLite
database and can be listed or exported.

Run without a subcommand in a terminal to open the interactive capture screen.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		// Override storage backend from flag
		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		s, err := sqlite.Open(appConfig.Storage, appConfig.DataDir)
		if err != nil {
			return fmt.Errorf("initializing %s storage: %w", appConfig.Storage, err)
		}
		store = s

		// A failed schema setup is not fatal here; the first read or write
		// reports it.
		if err := store.EnsureSchema(context.Background()); err != nil {
			logger.Printf("preparing database: %v", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store == nil {
			return nil
		}
		return store.Close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to a JSON export
			if err := exportRun(cmd.Context(), os.Stdout, export.FormatJSON); err != nil {
				exitOnError(err)
			}
			return nil
		}
		return runTUI()
	},
}

func runTUI() error {
	cam, source, err := newCamera(appConfig)
	if err != nil {
		return err
	}
	locator, err := newLocator(appConfig)
	if err != nil {
		return err
	}

	// stderr belongs to the terminal UI while it runs
	f, err := tea.LogToFile(filepath.Join(appConfig.DataDir, "moodctl.log"), "moodctl")
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	wf := workflow.New(store, cam, locator, workflow.WithLogger(log.Default()))
	return ui.RunCaptureTUI(ui.CaptureConfig{
		Workflow: wf,
		Source:   source,
		Store:    store,
		Theme:    ui.ResolveTheme(appConfig.Theme),
	})
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (sqlite|sqlite-pure)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/reminder"
	"github.com/chris-regnier/moodctl/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	remindOnce  bool
	remindForce bool
)

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Manage daily mood reminders",
	Long: `Manage the reminders that nudge you to log your mood.

"remind set" replaces any existing reminders. "remind run" stays in the
foreground and shows a desktop notification at each reminder time.`,
}

var remindSetCmd = &cobra.Command{
	Use:   "set [HH:MM...]",
	Short: "Schedule reminders (default 09:00, 14:00 and 21:00)",
	Example: `  moodctl remind set
  moodctl remind set 08:30 20:00
  moodctl remind set 12:00 --once`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := remindSetRun(cmd.Context(), os.Stdout, args, !remindOnce); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

var remindCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel all reminders",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !remindForce && term.IsTerminal(int(os.Stdin.Fd())) {
			current, err := scheduler().Current(cmd.Context())
			if err != nil {
				exitOnError(err)
			}
			if req, ok := cancelRequest(current); ok {
				confirmed, err := ui.Confirm(req, ui.ResolveTheme(appConfig.Theme))
				if err != nil {
					exitOnError(err)
				}
				if !confirmed {
					fmt.Fprintln(os.Stdout, "Kept reminders.")
					return nil
				}
			}
		}
		if err := remindCancelRun(cmd.Context(), os.Stdout); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

var remindShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show scheduled reminders and the next one due",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := remindShowRun(cmd.Context(), os.Stdout, time.Now()); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

var remindRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Deliver reminders until interrupted",
	Long: `Wait for each scheduled reminder and show a notification using
reminders.notify_command. When that program is not installed, reminders are
printed to the terminal instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := remindRunRun(ctx, os.Stdout); err != nil {
			exitOnError(err)
		}
		return nil
	},
}

func scheduler() *reminder.FileScheduler {
	return reminder.NewFileScheduler(appConfig.DataDir)
}

func remindSetRun(ctx context.Context, w io.Writer, args []string, recurring bool) error {
	values := args
	if len(values) == 0 {
		values = appConfig.Reminders.Times
	}
	times := reminder.DefaultTimes
	if len(values) > 0 {
		parsed, err := reminder.ParseTimes(values)
		if err != nil {
			return err
		}
		times = parsed
	}

	sch := scheduler()
	if err := sch.Schedule(ctx, times, recurring); err != nil {
		return err
	}
	current, err := sch.Current(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, current)
	}
	ui.FormatSchedule(w, current, time.Now())
	return nil
}

// cancelRequest builds the confirmation listing what will be removed. It
// reports false when nothing is scheduled.
func cancelRequest(current *reminder.Schedule) (ui.ConfirmRequest, bool) {
	if current == nil || len(current.Times) == 0 {
		return ui.ConfirmRequest{}, false
	}
	repeat := "once"
	if current.Recurring {
		repeat = "daily"
	}
	details := make([]string, len(current.Times))
	for i, t := range current.Times {
		details[i] = t.String() + " (" + repeat + ")"
	}
	return ui.ConfirmRequest{
		Prompt:  fmt.Sprintf("Cancel these %d reminders?", len(current.Times)),
		Details: details,
	}, true
}

func remindCancelRun(ctx context.Context, w io.Writer) error {
	if err := scheduler().CancelAll(ctx); err != nil {
		return err
	}
	fmt.Fprintln(w, "Cancelled all reminders.")
	return nil
}

func remindShowRun(ctx context.Context, w io.Writer, now time.Time) error {
	current, err := scheduler().Current(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, current)
	}
	ui.FormatSchedule(w, current, now)
	return nil
}

func remindRunRun(ctx context.Context, w io.Writer) error {
	current, err := scheduler().Current(ctx)
	if err != nil {
		return err
	}
	if current == nil {
		return fmt.Errorf("no reminders scheduled; run 'moodctl remind set' first")
	}

	runner := reminder.NewRunner(notifier(w))
	logger.Printf("delivering %d reminders (next at %s)", len(current.Times),
		reminder.Next(current.Times, time.Now()).Format("15:04"))

	err = runner.Run(ctx, *current)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err == nil && !current.Recurring {
		// one-shot reminders are spent once delivered
		return scheduler().CancelAll(context.Background())
	}
	return err
}

// notifier prefers the desktop notification command and falls back to
// printing when it is unavailable.
func notifier(w io.Writer) reminder.Notifier {
	n := reminder.CommandNotifier{Command: appConfig.Reminders.NotifyCommand}
	if n.Permission() != capability.Granted {
		logger.Printf("notification permission not granted (%q not found); printing reminders instead", n.Command)
		return reminder.WriterNotifier{W: w}
	}
	return n
}

func init() {
	remindSetCmd.Flags().BoolVar(&remindOnce, "once", false, "fire each reminder only once instead of daily")
	remindCancelCmd.Flags().BoolVarP(&remindForce, "force", "f", false, "skip the confirmation prompt")
	remindCmd.AddCommand(remindSetCmd, remindCancelCmd, remindShowCmd, remindRunCmd)
	rootCmd.AddCommand(remindCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chris-regnier/moodctl/internal/storage"
)

// exitCode maps a command failure to the process exit status: 2 when the
// database could not be read or written, 1 for everything the user can fix.
func exitCode(err error) int {
	if errors.Is(err, storage.ErrStorage) {
		return 2
	}
	return 1
}

// Report prints err to w and returns the exit status for it. Cobra's own
// error printing is silenced, so failures returned from Execute (config,
// storage setup, the TUI) are reported here.
func Report(w io.Writer, err error) int {
	fmt.Fprintln(w, "Error:", err)
	return exitCode(err)
}

func exitOnError(err error) {
	os.Exit(Report(os.Stderr, err))
}

package reminder

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/capability"
)

// Notifier shows one notification.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}

// Placeholders substituted in notify commands.
const (
	TitlePlaceholder = "{title}"
	BodyPlaceholder  = "{body}"
)

// CommandNotifier runs a desktop notification program, e.g.
// "notify-send {title} {body}". Placeholders are replaced per argument so
// the title and body may contain spaces.
type CommandNotifier struct {
	Command string
}

// Permission reports whether the notification program is installed.
func (n CommandNotifier) Permission() capability.Permission {
	return capability.CommandPermission(n.Command)
}

func (n CommandNotifier) Notify(ctx context.Context, title, body string) error {
	args := strings.Fields(n.Command)
	if len(args) == 0 {
		return fmt.Errorf("notify command not configured")
	}
	r := strings.NewReplacer(TitlePlaceholder, title, BodyPlaceholder, body)
	for i, a := range args {
		args[i] = r.Replace(a)
	}
	if out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput(); err != nil {
		return fmt.Errorf("running notify command: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// WriterNotifier prints notifications to a writer.
type WriterNotifier struct {
	W   io.Writer
	Now func() time.Time
}

func (n WriterNotifier) Notify(ctx context.Context, title, body string) error {
	now := time.Now
	if n.Now != nil {
		now = n.Now
	}
	_, err := fmt.Fprintf(n.W, "[%s] %s\n  %s\n", now().Format("15:04"), title, body)
	return err
}

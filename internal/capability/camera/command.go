package camera

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/chris-regnier/moodctl/internal/capability"
)

// OutputPlaceholder is replaced with the destination path in capture commands.
const OutputPlaceholder = "{output}"

// Command takes photos by running an external capture program such as
// "fswebcam --no-banner {output}" or "imagesnap {output}".
type Command struct {
	library Library
	command string
}

// NewCommand creates a command camera storing photos in dir.
func NewCommand(dir, command string) *Command {
	return &Command{library: Library{Dir: dir}, command: command}
}

// RequestPermission grants access when the capture program is installed and
// the library is writable.
func (c *Command) RequestPermission(ctx context.Context) (capability.Permission, error) {
	if capability.CommandPermission(c.command) == capability.Denied {
		return capability.Denied, nil
	}
	if !c.library.Writable() {
		return capability.Denied, nil
	}
	return capability.Granted, nil
}

// Capture runs the capture program and returns the new photo's URI.
func (c *Command) Capture(ctx context.Context) (string, error) {
	dst, err := c.library.NewPath(".jpg")
	if err != nil {
		return "", err
	}

	args := strings.Fields(c.command)
	if len(args) == 0 {
		return "", fmt.Errorf("camera command not configured")
	}
	substituted := false
	for i, a := range args {
		if strings.Contains(a, OutputPlaceholder) {
			args[i] = strings.ReplaceAll(a, OutputPlaceholder, dst)
			substituted = true
		}
	}
	if !substituted {
		args = append(args, dst)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if out, err := cmd.CombinedOutput(); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("running camera command: %w: %s", err, strings.TrimSpace(string(out)))
	}

	info, err := os.Stat(dst)
	if err != nil || info.Size() == 0 {
		os.Remove(dst)
		return "", fmt.Errorf("camera command produced no image at %s", dst)
	}

	return URI(dst), nil
}

var _ capability.Camera = (*Command)(nil)

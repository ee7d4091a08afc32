// Package location provides position sources for the capture workflow.
package location

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/chris-regnier/moodctl/internal/capability"
)

// Fixed reports a configured position, for stationary machines.
type Fixed struct {
	enabled bool
	fix     capability.Fix
}

// NewFixed creates a fixed locator. When enabled is false every permission
// request is denied.
func NewFixed(enabled bool, fix capability.Fix) *Fixed {
	return &Fixed{enabled: enabled, fix: fix}
}

func (f *Fixed) RequestPermission(ctx context.Context) (capability.Permission, error) {
	if !f.enabled {
		return capability.Denied, nil
	}
	return capability.Granted, nil
}

func (f *Fixed) CurrentFix(ctx context.Context) (capability.Fix, error) {
	if !f.enabled {
		return capability.Fix{}, capability.ErrPermissionDenied
	}
	if err := validate(f.fix); err != nil {
		return capability.Fix{}, err
	}
	return f.fix, nil
}

// Command reads a position from an external program that prints
// "latitude longitude [accuracy]", e.g.
// `CoreLocationCLI -format "%latitude %longitude %h_accuracy"`.
type Command struct {
	command string
}

// NewCommand creates a locator backed by command.
func NewCommand(command string) *Command {
	return &Command{command: command}
}

func (c *Command) RequestPermission(ctx context.Context) (capability.Permission, error) {
	return capability.CommandPermission(c.command), nil
}

func (c *Command) CurrentFix(ctx context.Context) (capability.Fix, error) {
	args := strings.Fields(c.command)
	if len(args) == 0 {
		return capability.Fix{}, fmt.Errorf("location command not configured")
	}
	out, err := exec.CommandContext(ctx, args[0], args[1:]...).Output()
	if err != nil {
		return capability.Fix{}, fmt.Errorf("running location command: %w", err)
	}
	return ParseFix(string(out))
}

// Disabled never grants location access.
type Disabled struct{}

func (Disabled) RequestPermission(ctx context.Context) (capability.Permission, error) {
	return capability.Denied, nil
}

func (Disabled) CurrentFix(ctx context.Context) (capability.Fix, error) {
	return capability.Fix{}, capability.ErrPermissionDenied
}

// ParseFix parses "lat lon [accuracy]"; commas are accepted as separators.
func ParseFix(s string) (capability.Fix, error) {
	fields := strings.Fields(strings.ReplaceAll(strings.TrimSpace(s), ",", " "))
	if len(fields) < 2 || len(fields) > 3 {
		return capability.Fix{}, fmt.Errorf("unexpected location output %q", strings.TrimSpace(s))
	}

	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return capability.Fix{}, fmt.Errorf("parsing location output: %w", err)
		}
		vals[i] = v
	}

	fix := capability.Fix{Latitude: vals[0], Longitude: vals[1]}
	if len(vals) == 3 {
		fix.Accuracy = vals[2]
	}
	if err := validate(fix); err != nil {
		return capability.Fix{}, err
	}
	return fix, nil
}

func validate(f capability.Fix) error {
	for _, v := range []float64{f.Latitude, f.Longitude, f.Accuracy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("coordinates not finite: %v, %v (accuracy %v)", f.Latitude, f.Longitude, f.Accuracy)
		}
	}
	if f.Latitude < -90 || f.Latitude > 90 || f.Longitude < -180 || f.Longitude > 180 {
		return fmt.Errorf("coordinates out of range: %f, %f", f.Latitude, f.Longitude)
	}
	return nil
}

var (
	_ capability.Locator = (*Fixed)(nil)
	_ capability.Locator = (*Command)(nil)
	_ capability.Locator = Disabled{}
)

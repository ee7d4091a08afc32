// Package capability defines the device services the capture workflow
// depends on: a camera that yields photo references and a locator that
// yields one position fix. Implementations live in subpackages.
package capability

import (
	"context"
	"errors"
	"os/exec"
	"strings"
)

// ErrPermissionDenied is returned when a capability was not granted.
var ErrPermissionDenied = errors.New("permission denied")

// Permission is the outcome of a permission request.
type Permission int

const (
	Denied Permission = iota
	Granted
)

func (p Permission) String() string {
	if p == Granted {
		return "granted"
	}
	return "denied"
}

// Camera captures photos into local storage.
type Camera interface {
	RequestPermission(ctx context.Context) (Permission, error)
	// Capture takes one photo and returns a reference to the stored image.
	Capture(ctx context.Context) (string, error)
}

// Fix is a single position reading.
type Fix struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Accuracy is the horizontal accuracy in meters; zero when unknown.
	Accuracy float64 `json:"accuracy"`
}

// Locator provides foreground location readings.
type Locator interface {
	RequestPermission(ctx context.Context) (Permission, error)
	CurrentFix(ctx context.Context) (Fix, error)
}

// CommandPermission grants access when the first word of command resolves
// to an executable.
func CommandPermission(command string) Permission {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return Denied
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return Denied
	}
	return Granted
}

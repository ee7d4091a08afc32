package cmd

import (
	"fmt"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/capability/camera"
	"github.com/chris-regnier/moodctl/internal/capability/location"
	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/ui"
)

// newCamera builds the configured camera. The returned PhotoSource is
// non-nil when photos are imported from a user-supplied path.
func newCamera(cfg *config.Config) (capability.Camera, ui.PhotoSource, error) {
	switch cfg.Camera.Source {
	case "", "import":
		c := camera.NewImport(cfg.Photos())
		return c, c, nil
	case "command":
		if cfg.Camera.Command == "" {
			return nil, nil, fmt.Errorf("camera.source is \"command\" but camera.command is empty")
		}
		return camera.NewCommand(cfg.Photos(), cfg.Camera.Command), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown camera source: %s", cfg.Camera.Source)
	}
}

func newLocator(cfg *config.Config) (capability.Locator, error) {
	switch cfg.Location.Provider {
	case "", "none":
		return location.Disabled{}, nil
	case "fixed":
		return location.NewFixed(cfg.Location.Enabled, capability.Fix{
			Latitude:  cfg.Location.Latitude,
			Longitude: cfg.Location.Longitude,
			Accuracy:  cfg.Location.Accuracy,
		}), nil
	case "command":
		return location.NewCommand(cfg.Location.Command), nil
	default:
		return nil, fmt.Errorf("unknown location provider: %s", cfg.Location.Provider)
	}
}

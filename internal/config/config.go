package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// CameraConfig selects how photos are captured.
type CameraConfig struct {
	// Source is "import" (copy an existing file) or "command".
	Source  string `mapstructure:"source"`
	Command string `mapstructure:"command"`
}

// LocationConfig selects how coordinates are obtained.
type LocationConfig struct {
	// Provider is "none", "fixed" or "command".
	Provider  string  `mapstructure:"provider"`
	Enabled   bool    `mapstructure:"enabled"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	Accuracy  float64 `mapstructure:"accuracy"`
	Command   string  `mapstructure:"command"`
}

// RemindersConfig holds reminder settings.
type RemindersConfig struct {
	Times         []string `mapstructure:"times"`
	NotifyCommand string   `mapstructure:"notify_command"`
}

// Config holds the application configuration.
type Config struct {
	Storage   string          `mapstructure:"storage"`
	DataDir   string          `mapstructure:"data_dir"`
	PhotoDir  string          `mapstructure:"photo_dir"`
	Theme     string          `mapstructure:"theme"`
	Camera    CameraConfig    `mapstructure:"camera"`
	Location  LocationConfig  `mapstructure:"location"`
	Reminders RemindersConfig `mapstructure:"reminders"`
}

// DefaultDataDir returns the default data directory ($XDG_DATA_HOME/moodctl).
func DefaultDataDir() string {
	xdg.Reload()
	if xdg.DataHome != "" {
		return filepath.Join(xdg.DataHome, "moodctl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".moodctl")
	}
	return filepath.Join(home, ".moodctl")
}

// Photos returns the photo library directory.
func (c *Config) Photos() string {
	if c.PhotoDir != "" {
		return c.PhotoDir
	}
	return filepath.Join(c.DataDir, "photos")
}

// Load reads configuration from file, environment variables, and defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("storage", "sqlite")
	v.SetDefault("data_dir", DefaultDataDir())
	v.SetDefault("photo_dir", "")
	v.SetDefault("theme", "default-dark")
	v.SetDefault("camera.source", "import")
	v.SetDefault("camera.command", "")
	v.SetDefault("location.provider", "none")
	v.SetDefault("location.enabled", false)
	v.SetDefault("location.latitude", 0.0)
	v.SetDefault("location.longitude", 0.0)
	v.SetDefault("location.accuracy", 0.0)
	v.SetDefault("location.command", "")
	v.SetDefault("reminders.times", []string{"09:00", "14:00", "21:00"})
	v.SetDefault("reminders.notify_command", "notify-send {title} {body}")

	// Config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "moodctl"))
		}
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "moodctl"))
		v.AddConfigPath(DefaultDataDir())
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	// Environment variables: MOODCTL_STORAGE, MOODCTL_DATA_DIR, etc.
	v.SetEnvPrefix("MOODCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (ignore not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if configPath != "" {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

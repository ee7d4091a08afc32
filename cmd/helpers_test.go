package cmd

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/chris-regnier/moodctl/internal/config"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
)

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func setupTestStore(t *testing.T, dir string) storage.Storage {
	t.Helper()
	s, err := sqlite.NewPure(dir)
	if err != nil {
		t.Fatalf("creating test storage: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	if err := s.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return s
}

// setupTestEnv points the package globals at a fresh store and returns the
// data directory.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	store = setupTestStore(t, dir)
	appConfig = &config.Config{
		Storage:  "sqlite-pure",
		DataDir:  dir,
		Theme:    "default-dark",
		Camera:   config.CameraConfig{Source: "import"},
		Location: config.LocationConfig{Provider: "none"},
	}
	jsonOutput = false
	return dir
}

func writeTestPhoto(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("not really a jpeg"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

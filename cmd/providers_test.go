package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/capability/camera"
	"github.com/chris-regnier/moodctl/internal/capability/location"
	"github.com/chris-regnier/moodctl/internal/config"
)

func TestNewCamera(t *testing.T) {
	cfg := &config.Config{DataDir: t.TempDir()}

	cam, source, err := newCamera(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cam.(*camera.Import); !ok || source == nil {
		t.Errorf("default source should import, got %T (source %v)", cam, source)
	}

	cfg.Camera = config.CameraConfig{Source: "command", Command: "fswebcam {output}"}
	cam, source, err = newCamera(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cam.(*camera.Command); !ok || source != nil {
		t.Errorf("expected command camera without source, got %T", cam)
	}

	for _, bad := range []config.CameraConfig{{Source: "command"}, {Source: "webcam"}} {
		cfg.Camera = bad
		if _, _, err := newCamera(cfg); err == nil {
			t.Errorf("expected error for %+v", bad)
		}
	}
}

func TestNewLocator(t *testing.T) {
	ctx := context.Background()

	loc, err := newLocator(&config.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := loc.(location.Disabled); !ok {
		t.Errorf("expected Disabled by default, got %T", loc)
	}

	loc, err = newLocator(&config.Config{Location: config.LocationConfig{
		Provider: "fixed", Enabled: true, Latitude: 1.5, Longitude: 2.5,
	}})
	if err != nil {
		t.Fatal(err)
	}
	if perm, _ := loc.RequestPermission(ctx); perm != capability.Granted {
		t.Errorf("expected granted, got %v", perm)
	}
	fix, err := loc.CurrentFix(ctx)
	if err != nil || fix.Latitude != 1.5 || fix.Longitude != 2.5 {
		t.Errorf("fix = %+v, err = %v", fix, err)
	}

	if _, err := newLocator(&config.Config{Location: config.LocationConfig{Provider: "gps"}}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestLocateRun(t *testing.T) {
	setupTestEnv(t)

	if err := locateRun(context.Background(), &bytes.Buffer{}); err == nil {
		t.Fatal("expected permission error with location disabled")
	}

	appConfig.Location = config.LocationConfig{Provider: "fixed", Enabled: true, Latitude: 48.85, Longitude: 2.35, Accuracy: 20}
	var buf bytes.Buffer
	if err := locateRun(context.Background(), &buf); err != nil {
		t.Fatalf("locateRun: %v", err)
	}
	want := "Latitude: 48.85\nLongitude: 2.35\nAccuracy: 20 m\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

package mcptools_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/mcptools"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage/sqlite"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func setup(t *testing.T) (*sqlite.Store, *mcp.ClientSession, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := sqlite.NewPure(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	_, clientTransport := mcptools.NewMoodMCPServer(store, filepath.Join(dir, "photos"))
	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("failed to connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return store, session, dir
}

func writePhoto(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "selfie.jpg")
	if err := os.WriteFile(path, []byte("jpeg bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func decode(t *testing.T, result *mcp.CallToolResult, v any) {
	t.Helper()
	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
	data, _ := json.Marshal(result.StructuredContent)
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
}

func TestMCPServer_RecordMood(t *testing.T) {
	store, session, dir := setup(t)
	photo := writePhoto(t, dir)
	lat, lon := 25.03, 121.56

	t.Run("records entry with location", func(t *testing.T) {
		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "record_mood",
			Arguments: mcptools.RecordInput{Photo: photo, Mood: 4, Latitude: &lat, Longitude: &lon},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}

		var output mcptools.RecordOutput
		decode(t, result, &output)
		if output.Entry.ID == 0 {
			t.Error("expected assigned ID")
		}
		if output.Entry.Label != "Happy" || !output.Entry.HasLocation {
			t.Errorf("unexpected entry: %+v", output.Entry)
		}
		if !strings.HasPrefix(output.Entry.PhotoURI, "file://") {
			t.Errorf("photo uri = %q, want file:// URI in the library", output.Entry.PhotoURI)
		}

		entries, err := store.ListAll(context.Background())
		if err != nil {
			t.Fatalf("ListAll: %v", err)
		}
		if len(entries) != 1 || entries[0].Mood != 4 || *entries[0].Latitude != lat {
			t.Errorf("stored entries = %+v", entries)
		}
	})

	t.Run("records entry without location", func(t *testing.T) {
		result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
			Name:      "record_mood",
			Arguments: mcptools.RecordInput{Photo: photo, Mood: 2},
		})
		if err != nil {
			t.Fatalf("CallTool failed: %v", err)
		}
		var output mcptools.RecordOutput
		decode(t, result, &output)
		if output.Entry.HasLocation {
			t.Error("expected no location")
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		bad := 200.0
		cases := []mcptools.RecordInput{
			{Photo: "", Mood: 3},
			{Photo: photo, Mood: 9},
			{Photo: photo, Mood: 3, Latitude: &bad, Longitude: &lon},
			{Photo: filepath.Join(dir, "missing.jpg"), Mood: 3},
		}
		for _, in := range cases {
			result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
				Name:      "record_mood",
				Arguments: in,
			})
			if err != nil {
				t.Fatalf("CallTool failed: %v", err)
			}
			if !result.IsError {
				t.Errorf("expected IsError for %+v", in)
			}
		}

		entries, _ := store.ListAll(context.Background())
		if len(entries) != 2 {
			t.Errorf("expected no rows from rejected calls, have %d entries", len(entries))
		}
	})
}

func TestMCPServer_ListAndExport(t *testing.T) {
	store, session, _ := setup(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "export_moods",
		Arguments: mcptools.ExportInput{},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	var empty mcptools.ExportOutput
	decode(t, result, &empty)
	if empty.Content != "[]" || empty.Count != 0 || empty.Format != "json" {
		t.Errorf("empty export = %+v", empty)
	}

	for i, s := range []mood.Score{1, 3, 5} {
		e := mood.Entry{
			Timestamp: mood.FormatTimestamp(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour)),
			Mood:      s,
			PhotoURI:  "file:///photos/" + s.Level().Label + ".jpg",
		}
		if _, err := store.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_moods",
		Arguments: mcptools.ListInput{Limit: 2},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	var list mcptools.ListOutput
	decode(t, result, &list)
	if len(list.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(list.Entries))
	}
	if list.Entries[0].Mood != 5 || list.Entries[1].Mood != 3 {
		t.Errorf("expected newest first, got %+v", list.Entries)
	}

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "export_moods",
		Arguments: mcptools.ExportInput{Format: "csv"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	var csvOut mcptools.ExportOutput
	decode(t, result, &csvOut)
	lines := strings.Split(strings.TrimSpace(csvOut.Content), "\n")
	if len(lines) != 4 || lines[0] != "id,timestamp,mood,photoUri,latitude,longitude" {
		t.Errorf("unexpected csv:\n%s", csvOut.Content)
	}

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "export_moods",
		Arguments: mcptools.ExportInput{Format: "xml"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError for unknown format")
	}
}

func TestMCPServer_MoodScale(t *testing.T) {
	_, session, _ := setup(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "mood_scale",
		Arguments: mcptools.ScaleInput{},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	var output mcptools.ScaleOutput
	decode(t, result, &output)
	if len(output.Levels) != 5 {
		t.Fatalf("expected 5 levels, got %d", len(output.Levels))
	}
	if output.Levels[0].Score != 5 || output.Levels[4].Label != "Very sad" {
		t.Errorf("unexpected levels: %+v", output.Levels)
	}
}

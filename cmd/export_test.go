package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/mood"
)

func insertEntries(t *testing.T, scores ...mood.Score) {
	t.Helper()
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	for i, s := range scores {
		e := mood.Entry{
			Timestamp: mood.FormatTimestamp(base.Add(time.Duration(i) * time.Hour)),
			Mood:      s,
			PhotoURI:  "file:///photos/p" + string(rune('a'+i)) + ".jpg",
		}
		if _, err := store.Insert(context.Background(), e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
}

func TestExportEmpty(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := exportRun(context.Background(), &buf, "json"); err != nil {
		t.Fatalf("exportRun: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("expected [], got %q", buf.String())
	}
}

func TestExportNewestFirst(t *testing.T) {
	setupTestEnv(t)
	insertEntries(t, 1, 2, 3)

	var buf bytes.Buffer
	if err := exportRun(context.Background(), &buf, "json"); err != nil {
		t.Fatalf("exportRun: %v", err)
	}

	var entries []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, wantMood := range []float64{3, 2, 1} {
		if entries[i]["mood"] != wantMood {
			t.Errorf("entry %d mood = %v, want %v", i, entries[i]["mood"], wantMood)
		}
		if _, ok := entries[i]["latitude"]; !ok {
			t.Errorf("entry %d missing explicit latitude key", i)
		}
	}
}

func TestExportCSV(t *testing.T) {
	setupTestEnv(t)
	insertEntries(t, 4)

	var buf bytes.Buffer
	if err := exportRun(context.Background(), &buf, "csv"); err != nil {
		t.Fatalf("exportRun: %v", err)
	}
	want := "id,timestamp,mood,photoUri,latitude,longitude\n" +
		"1,2026-02-01T09:00:00.000Z,4,file:///photos/pa.jpg,,\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestExportStorageFailureWritesNothing(t *testing.T) {
	setupTestEnv(t)
	insertEntries(t, 3)
	store.Close()

	var buf bytes.Buffer
	err := exportRun(context.Background(), &buf, "json")
	if err == nil {
		t.Fatal("expected error")
	}
	if exitCode(err) != 2 {
		t.Errorf("exit code = %d, want 2", exitCode(err))
	}
	if buf.Len() != 0 {
		t.Errorf("expected no partial output, got %q", buf.String())
	}
}

func TestExportUnknownFormat(t *testing.T) {
	setupTestEnv(t)
	err := exportRun(context.Background(), &bytes.Buffer{}, "xml")
	if err == nil || exitCode(err) != 1 {
		t.Fatalf("expected user error, got %v", err)
	}
}

package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/reminder"
)

func ptr(f float64) *float64 { return &f }

func TestFormatEntryTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatEntryTable(&buf, nil)
	if !strings.Contains(buf.String(), "No mood entries found") {
		t.Errorf("expected empty message, got %q", buf.String())
	}
}

func TestFormatEntryTable(t *testing.T) {
	entries := []mood.Entry{
		{ID: 2, Timestamp: "2026-01-02T10:00:00.000Z", Mood: 5, PhotoURI: "file:///b.jpg", Latitude: ptr(25.03), Longitude: ptr(121.56)},
		{ID: 1, Timestamp: "2026-01-01T10:00:00.000Z", Mood: 1, PhotoURI: "file:///a.jpg"},
	}
	var buf bytes.Buffer
	FormatEntryTable(&buf, entries)
	out := buf.String()

	for _, want := range []string{"ID", "Mood", "Very happy", "Very sad", "file:///b.jpg", "25.03000, 121.56000"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "file:///b.jpg") > strings.Index(out, "file:///a.jpg") {
		t.Error("expected rows in the given (newest first) order")
	}
}

func TestFormatEntrySaved(t *testing.T) {
	var buf bytes.Buffer
	FormatEntrySaved(&buf, mood.Entry{ID: 7, Mood: 4, PhotoURI: "a.jpg"})
	if got := buf.String(); got != "Saved mood entry 7 (Happy 😊)\n" {
		t.Errorf("got %q", got)
	}
}

func TestFormatScale(t *testing.T) {
	var buf bytes.Buffer
	FormatScale(&buf)
	lines := strings.Split(strings.TrimSpace(stripANSI(buf.String())), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "Very happy") || !strings.Contains(lines[4], "Very sad") {
		t.Errorf("unexpected scale order:\n%s", buf.String())
	}
}

func TestFormatFix(t *testing.T) {
	var buf bytes.Buffer
	FormatFix(&buf, capability.Fix{Latitude: 25.03, Longitude: 121.56, Accuracy: 12.5})
	want := "Latitude: 25.03\nLongitude: 121.56\nAccuracy: 12.5 m\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestFormatSchedule(t *testing.T) {
	var buf bytes.Buffer
	FormatSchedule(&buf, nil, time.Now())
	if !strings.Contains(buf.String(), "No reminders scheduled") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	now := time.Date(2026, 1, 1, 10, 0, 0, 0, time.Local)
	FormatSchedule(&buf, &reminder.Schedule{Times: reminder.DefaultTimes, Recurring: true}, now)
	out := buf.String()
	if !strings.Contains(out, "Reminders (daily): 09:00, 14:00, 21:00") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "Next: 2026-01-01 14:00") {
		t.Errorf("got %q", out)
	}
}

func TestToSummariesJSON(t *testing.T) {
	summaries := ToSummaries([]mood.Entry{{ID: 1, Timestamp: "t", Mood: 3, PhotoURI: "a.jpg"}})
	var buf bytes.Buffer
	if err := FormatJSON(&buf, summaries); err != nil {
		t.Fatal(err)
	}
	var raw []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if raw[0]["label"] != "Neutral" {
		t.Errorf("label = %v", raw[0]["label"])
	}
	if v, ok := raw[0]["latitude"]; !ok || v != nil {
		t.Errorf("expected explicit null latitude, got %v (present=%v)", v, ok)
	}
}

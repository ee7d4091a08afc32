package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/reminder"
	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatEntrySaved formats a save confirmation message.
func FormatEntrySaved(w io.Writer, e mood.Entry) {
	fmt.Fprintf(w, "Saved mood entry %d (%s)\n", e.ID, e.Mood)
	if e.HasLocation() {
		fmt.Fprintf(w, "Location: %s\n", formatCoords(e.Latitude, e.Longitude))
	}
}

// FormatEntryTable formats entries as a table, newest first as given.
func FormatEntryTable(w io.Writer, entries []mood.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No mood entries found.")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "When", "Mood", "Photo", "Location"})
	for _, e := range entries {
		t.AppendRow(table.Row{
			e.ID,
			localTime(e.Timestamp),
			e.Mood.String(),
			e.PhotoURI,
			formatCoords(e.Latitude, e.Longitude),
		})
	}
	t.Render()
}

// FormatScale lists the mood scale with a colored swatch per level.
func FormatScale(w io.Writer) {
	for _, l := range mood.Levels {
		swatch := MoodStyle(l.Score).Render("██")
		fmt.Fprintf(w, "%s  %d  %s  %-10s %s\n", swatch, l.Score, l.Emoji, l.Label, l.Color)
	}
}

// FormatFix formats a one-shot location reading.
func FormatFix(w io.Writer, fix capability.Fix) {
	fmt.Fprintf(w, "Latitude: %s\n", strconv.FormatFloat(fix.Latitude, 'f', -1, 64))
	fmt.Fprintf(w, "Longitude: %s\n", strconv.FormatFloat(fix.Longitude, 'f', -1, 64))
	if fix.Accuracy > 0 {
		fmt.Fprintf(w, "Accuracy: %s m\n", strconv.FormatFloat(fix.Accuracy, 'f', -1, 64))
	} else {
		fmt.Fprintln(w, "Accuracy: unknown")
	}
}

// FormatSchedule formats the active reminders and the next fire time.
func FormatSchedule(w io.Writer, sch *reminder.Schedule, now time.Time) {
	if sch == nil || len(sch.Times) == 0 {
		fmt.Fprintln(w, "No reminders scheduled.")
		return
	}
	names := make([]string, len(sch.Times))
	for i, t := range sch.Times {
		names[i] = t.String()
	}
	repeat := "once"
	if sch.Recurring {
		repeat = "daily"
	}
	fmt.Fprintf(w, "Reminders (%s): %s\n", repeat, strings.Join(names, ", "))
	fmt.Fprintf(w, "Next: %s\n", reminder.Next(sch.Times, now).Format("2006-01-02 15:04"))
}

// FormatJSON writes any value as JSON to the writer.
func FormatJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// EntrySummary is a JSON representation for list output.
type EntrySummary struct {
	ID        int64    `json:"id"`
	Timestamp string   `json:"timestamp"`
	Mood      int      `json:"mood"`
	Label     string   `json:"label"`
	Emoji     string   `json:"emoji"`
	PhotoURI  string   `json:"photoUri"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// ToSummaries converts entries to summary format for JSON list output.
func ToSummaries(entries []mood.Entry) []EntrySummary {
	summaries := make([]EntrySummary, len(entries))
	for i, e := range entries {
		l := e.Mood.Level()
		summaries[i] = EntrySummary{
			ID:        e.ID,
			Timestamp: e.Timestamp,
			Mood:      int(e.Mood),
			Label:     l.Label,
			Emoji:     l.Emoji,
			PhotoURI:  e.PhotoURI,
			Latitude:  e.Latitude,
			Longitude: e.Longitude,
		}
	}
	return summaries
}

func localTime(ts string) string {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return ts
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatCoords(lat, lon *float64) string {
	if lat == nil || lon == nil {
		return "-"
	}
	return fmt.Sprintf("%.5f, %.5f", *lat, *lon)
}

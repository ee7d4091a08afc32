package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chris-regnier/moodctl/internal/ui"
)

func TestListTable(t *testing.T) {
	setupTestEnv(t)
	insertEntries(t, 1, 5)

	var buf bytes.Buffer
	if err := listRun(context.Background(), &buf, 0); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	out := stripANSI(buf.String())
	if !strings.Contains(out, "Very sad") || !strings.Contains(out, "Very happy") {
		t.Errorf("expected both entries:\n%s", out)
	}
	if strings.Index(out, "Very happy") > strings.Index(out, "Very sad") {
		t.Error("expected newest entry first")
	}
}

func TestListLimitJSON(t *testing.T) {
	setupTestEnv(t)
	insertEntries(t, 1, 2, 3, 4)
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })

	var buf bytes.Buffer
	if err := listRun(context.Background(), &buf, 2); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	var summaries []ui.EntrySummary
	if err := json.Unmarshal(buf.Bytes(), &summaries); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(summaries))
	}
	if summaries[0].Mood != 4 || summaries[0].Label != "Happy" {
		t.Errorf("unexpected first summary %+v", summaries[0])
	}
}

func TestListEmpty(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := listRun(context.Background(), &buf, 0); err != nil {
		t.Fatalf("listRun: %v", err)
	}
	if !strings.Contains(buf.String(), "No mood entries found") {
		t.Errorf("got %q", buf.String())
	}
}

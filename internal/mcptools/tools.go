package mcptools

import (
	"bytes"
	"context"
	"fmt"

	"github.com/chris-regnier/moodctl/internal/capability"
	"github.com/chris-regnier/moodctl/internal/capability/camera"
	"github.com/chris-regnier/moodctl/internal/capability/location"
	"github.com/chris-regnier/moodctl/internal/export"
	"github.com/chris-regnier/moodctl/internal/mood"
	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/chris-regnier/moodctl/internal/workflow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExportHandler returns the handler function for the export_moods MCP tool.
func ExportHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		format := input.Format
		if format == "" {
			format = export.FormatJSON
		}

		entries, err := store.ListAll(ctx)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		var buf bytes.Buffer
		switch format {
		case export.FormatJSON:
			data, err := export.JSON(entries)
			if err != nil {
				return nil, ExportOutput{}, err
			}
			buf.Write(data)
		case export.FormatCSV:
			if err := export.WriteCSV(&buf, entries); err != nil {
				return nil, ExportOutput{}, err
			}
		default:
			return nil, ExportOutput{}, fmt.Errorf("unknown export format %q (use json or csv)", format)
		}

		return nil, ExportOutput{
			Format:  format,
			Count:   len(entries),
			Content: buf.String(),
		}, nil
	}
}

// ListHandler returns the handler function for the list_moods MCP tool.
func ListHandler(store storage.Storage) func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListOutput, error) {
		entries, err := store.ListAll(ctx)
		if err != nil {
			return nil, ListOutput{}, err
		}

		limit := input.Limit
		if limit <= 0 || limit > len(entries) {
			limit = len(entries)
		}

		results := make([]MoodResult, 0, limit)
		for _, e := range entries[:limit] {
			results = append(results, toResult(e))
		}
		return nil, ListOutput{Entries: results}, nil
	}
}

// ScaleHandler returns the handler function for the mood_scale MCP tool.
func ScaleHandler() func(ctx context.Context, req *mcp.CallToolRequest, input ScaleInput) (*mcp.CallToolResult, ScaleOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ScaleInput) (*mcp.CallToolResult, ScaleOutput, error) {
		levels := make([]LevelResult, len(mood.Levels))
		for i, l := range mood.Levels {
			levels[i] = LevelResult{Score: int(l.Score), Label: l.Label, Emoji: l.Emoji, Color: l.Color}
		}
		return nil, ScaleOutput{Levels: levels}, nil
	}
}

// RecordHandler returns the handler function for the record_mood MCP tool.
// The request runs the same capture cycle as the TUI: the photo is imported
// into the library, the mood selected and the draft saved.
func RecordHandler(store storage.Storage, photoDir string) func(ctx context.Context, req *mcp.CallToolRequest, input RecordInput) (*mcp.CallToolResult, RecordOutput, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecordInput) (*mcp.CallToolResult, RecordOutput, error) {
		if input.Photo == "" {
			return nil, RecordOutput{}, workflow.ErrMissingPhoto
		}
		score := mood.Score(input.Mood)
		candidate := mood.Entry{Mood: score, PhotoURI: input.Photo, Latitude: input.Latitude, Longitude: input.Longitude}
		if err := candidate.Validate(); err != nil {
			return nil, RecordOutput{}, err
		}

		cam := camera.NewImport(photoDir)
		cam.SetSource(input.Photo)

		var locator capability.Locator = location.Disabled{}
		if input.Latitude != nil {
			locator = location.NewFixed(true, capability.Fix{Latitude: *input.Latitude, Longitude: *input.Longitude})
		}

		wf := workflow.New(store, cam, locator)
		if err := wf.OpenCamera(ctx); err != nil {
			return nil, RecordOutput{}, err
		}
		if _, err := wf.TakePhoto(ctx); err != nil {
			return nil, RecordOutput{}, err
		}
		if err := wf.SelectMood(score); err != nil {
			return nil, RecordOutput{}, err
		}
		e, err := wf.Save(ctx)
		if err != nil {
			return nil, RecordOutput{}, err
		}

		return nil, RecordOutput{Entry: toResult(e)}, nil
	}
}

func toResult(e mood.Entry) MoodResult {
	level := e.Mood.Level()
	r := MoodResult{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Mood:      int(e.Mood),
		Label:     level.Label,
		Emoji:     level.Emoji,
		PhotoURI:  e.PhotoURI,
	}
	if e.HasLocation() {
		r.HasLocation = true
		r.Latitude = *e.Latitude
		r.Longitude = *e.Longitude
	}
	return r
}

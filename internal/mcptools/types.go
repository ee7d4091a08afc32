package mcptools

// ExportInput is the input schema for the export_moods MCP tool.
type ExportInput struct {
	Format string `json:"format,omitempty" jsonschema-description:"Output format: json (default) or csv"`
}

// ExportOutput is the output schema for the export_moods MCP tool.
type ExportOutput struct {
	Format  string `json:"format"`
	Count   int    `json:"count"`
	Content string `json:"content"`
}

// ListInput is the input schema for the list_moods MCP tool.
type ListInput struct {
	Limit int `json:"limit,omitempty" jsonschema-description:"Maximum number of entries to return"`
}

// ListOutput is the output schema for the list_moods MCP tool.
type ListOutput struct {
	Entries []MoodResult `json:"entries"`
}

// MoodResult is the common output format for entry-related MCP tools.
type MoodResult struct {
	ID          int64   `json:"id"`
	Timestamp   string  `json:"timestamp"`
	Mood        int     `json:"mood"`
	Label       string  `json:"label"`
	Emoji       string  `json:"emoji"`
	PhotoURI    string  `json:"photo_uri"`
	HasLocation bool    `json:"has_location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// RecordInput is the input schema for the record_mood MCP tool.
type RecordInput struct {
	Photo     string   `json:"photo" jsonschema-description:"Path of an existing image file to import as the entry photo"`
	Mood      int      `json:"mood" jsonschema-description:"Mood score from 1 (very sad) to 5 (very happy)"`
	Latitude  *float64 `json:"latitude,omitempty" jsonschema-description:"Optional latitude in degrees"`
	Longitude *float64 `json:"longitude,omitempty" jsonschema-description:"Optional longitude in degrees"`
}

// RecordOutput is the output schema for the record_mood MCP tool.
type RecordOutput struct {
	Entry MoodResult `json:"entry"`
}

// ScaleInput is the input schema for the mood_scale MCP tool.
type ScaleInput struct{}

// ScaleOutput is the output schema for the mood_scale MCP tool.
type ScaleOutput struct {
	Levels []LevelResult `json:"levels"`
}

// LevelResult represents one step of the mood scale.
type LevelResult struct {
	Score int    `json:"score"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
	Color string `json:"color"`
}

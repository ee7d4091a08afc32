package mcptools

import (
	"context"

	"github.com/chris-regnier/moodctl/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewMoodMCPServer creates an in-memory MCP server exposing mood tools.
// Returns the server and a client transport for connecting to it.
func NewMoodMCPServer(store storage.Storage, photoDir string) (*mcp.Server, mcp.Transport) {
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	server := CreateMCPServer(store, photoDir)

	go func() {
		_, _ = server.Connect(context.Background(), serverTransport, nil)
	}()

	return server, clientTransport
}

// CreateMCPServer creates an MCP server with registered mood tools.
// photoDir is the library record_mood copies photos into.
func CreateMCPServer(store storage.Storage, photoDir string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "moodctl",
		Version: "1.0.0",
	}, nil)

	// Read tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_moods",
		Description: "Export every mood entry, newest first, as JSON or CSV",
	}, ExportHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_moods",
		Description: "List recent mood entries with their labels and locations",
	}, ListHandler(store))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "mood_scale",
		Description: "Describe the five-level mood scale",
	}, ScaleHandler())

	// Write tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "record_mood",
		Description: "Record a mood entry from a photo file and a score from 1 (very sad) to 5 (very happy)",
	}, RecordHandler(store, photoDir))

	return server
}

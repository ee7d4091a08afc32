package cmd

import (
	"context"
	"log"
	"os"

	"github.com/chris-regnier/moodctl/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes mood tools
over stdio transport.

Available tools:
  - export_moods: Export every entry as JSON or CSV
  - list_moods: List recent entries with labels and locations
  - record_mood: Record an entry from a photo file and a 1-5 score
  - mood_scale: Describe the mood scale

Example client config:
  {
    "mcpServers": {
      "moodctl": {
        "command": "/path/to/moodctl",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	// Storage is already initialized in PersistentPreRunE
	if store == nil {
		return cmd.Help()
	}

	server := mcptools.CreateMCPServer(store, appConfig.Photos())

	// stdout is reserved for the MCP protocol
	log.SetOutput(os.Stderr)
	log.SetPrefix("moodctl: ")
	log.Printf("Starting MCP server (stdio transport)")
	log.Printf("Storage backend: %s", appConfig.Storage)
	log.Printf("Data directory: %s", appConfig.DataDir)

	// Blocks until the transport is closed
	return server.Run(context.Background(), &mcp.StdioTransport{})
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/webwinghq/webwing/store"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for AI tool integration",
	Long: `Start a Model Context Protocol (MCP) server so AI assistants can use
the web-intelligence capabilities as tools.

The MCP server runs over stdin/stdout and provides tools for:
- Web search and content extraction
- Creating, listing and deleting monitors
- Submitting and checking deep-research task runs
- Entity discovery runs and their results
- Dispatching, checking and cancelling local agent tasks

The server will run until the client disconnects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMCPServer(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServer(ctx context.Context) error {
	// One registry for the lifetime of the server process.
	dispatch := store.NewMemoryDispatchStore()

	impl := &mcp.Implementation{
		Name:    "webwing",
		Version: version,
	}
	serverOpts := &mcp.ServerOptions{}
	server := mcp.NewServer(impl, serverOpts)

	registerMCPTools(server, dispatch)
	registerMCPResources(server)

	// Stdout carries the protocol; status goes to stderr.
	fmt.Fprintln(os.Stderr, "webwing MCP server listening on stdio")

	if err := server.Run(ctx, mcp.NewStdioTransport()); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}
	return nil
}

func logError(err error) {
	if viper.GetBool("verbose") {
		log.Printf("[MCP ERROR] %v", err)
	}
}

func logToolCall(toolName string, params interface{}) {
	if viper.GetBool("verbose") {
		log.Printf("[MCP TOOL] %s called with params: %+v", toolName, params)
	}
}

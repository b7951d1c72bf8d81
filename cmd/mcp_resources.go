package cmd

// Basic MCP resources: config

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/webwinghq/webwing/parallel"
)

func registerMCPResources(server *mcp.Server) {
	server.AddResource(&mcp.Resource{
		URI:         "webwing://config",
		Name:        "config",
		Description: "Remote API configuration status: credential presence, base URL and service revision",
		MIMEType:    "application/json",
	}, configResourceHandler())
}

// configResourceHandler reports whether the remote API is reachable
// from this process. The credential itself is never included, only
// whether one is set.
func configResourceHandler() mcp.ResourceHandler {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.ReadResourceParams) (*mcp.ReadResourceResult, error) {
		cfg := GetConfig()

		status := map[string]any{
			"api_key_configured": cfg.Parallel.APIKey != "",
			"base_url":           cfg.Parallel.BaseURL,
			"beta_header":        parallel.BetaHeader,
			"version":            version,
		}

		jsonData, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config status: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      params.URI,
					MIMEType: "application/json",
					Text:     string(jsonData),
				},
			},
		}, nil
	}
}

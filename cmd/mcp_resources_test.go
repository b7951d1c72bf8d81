package cmd

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webwinghq/webwing/parallel"
	"github.com/webwinghq/webwing/types"
)

func readConfigResource(t *testing.T) map[string]any {
	t.Helper()

	handler := configResourceHandler()
	result, err := handler(context.Background(), nil, &mcp.ReadResourceParams{URI: "webwing://config"})
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "webwing://config", result.Contents[0].URI)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var status map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &status))
	return status
}

func TestConfigResource_ReportsCredentialPresence(t *testing.T) {
	saved := GlobalAppConfig
	t.Cleanup(func() { GlobalAppConfig = saved })

	GlobalAppConfig = types.AppConfig{
		Parallel: types.ParallelConfig{
			APIKey:  "secret-key",
			BaseURL: parallel.DefaultBaseURL,
		},
	}

	status := readConfigResource(t)
	assert.Equal(t, true, status["api_key_configured"])
	assert.Equal(t, parallel.DefaultBaseURL, status["base_url"])
	assert.Equal(t, parallel.BetaHeader, status["beta_header"])

	// The credential itself must never leak into the resource.
	for _, v := range status {
		if s, ok := v.(string); ok {
			assert.NotContains(t, s, "secret-key")
		}
	}
}

func TestConfigResource_ReportsMissingCredential(t *testing.T) {
	saved := GlobalAppConfig
	t.Cleanup(func() { GlobalAppConfig = saved })

	GlobalAppConfig = types.AppConfig{}

	status := readConfigResource(t)
	assert.Equal(t, false, status["api_key_configured"])
}

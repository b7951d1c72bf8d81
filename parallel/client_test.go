package parallel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient_EmptyKeyIsConfigurationError(t *testing.T) {
	_, err := NewClient("")
	require.Error(t, err)

	var cfgErr *types.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "parallel.apiKey", cfgErr.Setting)
}

func TestClient_SendsAuthAndBetaHeaders(t *testing.T) {
	var gotAPIKey, gotBeta string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-api-key")
		gotBeta = r.Header.Get("parallel-beta")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"search_id": "s_1",
			"results":   []any{},
		})
	}))

	objective := "anything"
	_, err := client.Search(context.Background(), models.SearchRequest{Objective: &objective})
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "search-extract-2025-10-10", gotBeta)
}

func TestClient_NonSuccessStatusYieldsAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail": "rate limit exceeded"}`))
	}))

	_, err := client.GetTaskRun(context.Background(), "trun_1")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "rate limit exceeded")
}

func TestClient_ListMonitors_UnwrapsListField(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1alpha/monitors", r.URL.Path)
		_, _ = w.Write([]byte(`{"monitors": [
			{"monitor_id": "mon_1", "query": "acme news", "status": "active", "cadence": "daily"},
			{"monitor_id": "mon_2", "query": "rival news", "status": "canceled", "cadence": "weekly"}
		]}`))
	}))

	monitors, err := client.ListMonitors(context.Background())
	require.NoError(t, err)
	require.Len(t, monitors, 2)
	assert.Equal(t, "mon_1", monitors[0].MonitorID)
	assert.Equal(t, models.MonitorCanceled, monitors[1].Status)
}

func TestClient_CreateTaskRun_PostsToTasksEndpoint(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/tasks/runs", r.URL.Path)
		// Stable endpoints never carry the beta header.
		assert.Empty(t, r.Header.Get("parallel-beta"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "base", body["processor"])
		// Absent optionals must not appear at all.
		_, hasMetadata := body["metadata"]
		assert.False(t, hasMetadata)

		_, _ = w.Write([]byte(`{"run_id": "trun_9", "status": "queued", "is_active": true, "processor": "base"}`))
	}))

	run, err := client.CreateTaskRun(context.Background(), models.TaskRunRequest{
		Processor: "base",
		Input:     "research something",
	})
	require.NoError(t, err)
	assert.Equal(t, "trun_9", run.RunID)
	assert.Equal(t, models.TaskRunQueued, run.Status)
}

func TestClient_CreateFindAllRun_RequiresMatchConditions(t *testing.T) {
	called := false
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := client.CreateFindAllRun(context.Background(), models.FindAllRequest{
		Objective:  "fintech startups",
		EntityType: "company",
		Generator:  models.GeneratorCore,
		MatchLimit: 50,
	})
	require.Error(t, err)

	var valErr *types.ValidationError
	assert.True(t, errors.As(err, &valErr))
	assert.False(t, called, "invalid request must not reach the network")
}

func TestClient_CreateFindAllRun_ForwardsCallerConditions(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/findall/runs", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		conditions, ok := body["match_conditions"].([]any)
		require.True(t, ok)
		require.Len(t, conditions, 1)
		first := conditions[0].(map[string]any)
		assert.Equal(t, "funding_stage", first["field"])
		assert.Equal(t, "equals", first["operator"])
		assert.Equal(t, "series_b", first["value"])

		_, _ = w.Write([]byte(`{
			"findall_id": "fa_1",
			"status": {"status": "queued", "is_active": true},
			"generator": "core"
		}`))
	}))

	run, err := client.CreateFindAllRun(context.Background(), models.FindAllRequest{
		Objective:  "fintech startups",
		EntityType: "company",
		MatchConditions: []models.MatchCondition{
			{Field: "funding_stage", Operator: "equals", Value: "series_b"},
		},
		Generator:  models.GeneratorCore,
		MatchLimit: 50,
	})
	require.NoError(t, err)
	assert.Equal(t, "fa_1", run.FindAllID)
	assert.True(t, run.Status.IsActive)
}

func TestClient_DeleteMonitor_NoBodyExpected(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/v1alpha/monitors/mon_1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.DeleteMonitor(context.Background(), "mon_1")
	require.NoError(t, err)
}

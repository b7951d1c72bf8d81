package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/store"
	"github.com/webwinghq/webwing/types"
)

// findallResultCap bounds how many matches a single tool response
// carries; assistants asking for more should page via the REST proxy.
const findallResultCap = 20

func registerMCPTools(server *mcp.Server, dispatch store.DispatchStore) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_search",
		Description: "Run a web search. Provide a natural language objective, explicit search queries, or both. Returns ranked URLs with excerpts.",
	}, searchHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_extract",
		Description: "Extract content from specific URLs. Returns excerpts by default, or full page content on request. Per-URL failures are reported alongside successes.",
	}, extractHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_monitor_create",
		Description: "Create a recurring monitor that watches the web for a query on an hourly, daily or weekly cadence.",
	}, monitorCreateHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_monitor_list",
		Description: "List all monitors with their status and cadence.",
	}, monitorListHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_monitor_delete",
		Description: "Delete a monitor by ID. Deletion is permanent.",
	}, monitorDeleteHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_task_run",
		Description: "Submit a deep-research task run. By default the tool blocks until the run finishes and returns the result; set wait_for_completion to false to get the run ID immediately.",
	}, taskRunHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_task_status",
		Description: "Check a task run by ID. Includes the result once the run has completed.",
	}, taskStatusHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_findall",
		Description: "Start an entity-discovery run. Match conditions are required; every condition names a field, an operator and a value the entity must satisfy.",
	}, findallHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "parallel_findall_result",
		Description: "Fetch the matches of an entity-discovery run. Large result sets are truncated; the total count is always reported.",
	}, findallResultHandler())

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dispatch_task",
		Description: "Record a local agent task in the dispatch registry. This is bookkeeping only; nothing executes the task.",
	}, dispatchTaskHandler(dispatch))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dispatch_status",
		Description: "Check a dispatched task by ID.",
	}, dispatchStatusHandler(dispatch))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dispatch_cancel",
		Description: "Cancel a dispatched task. Tasks already in a terminal state cannot be cancelled.",
	}, dispatchCancelHandler(dispatch))
}

func searchHandler() mcp.ToolHandlerFor[types.SearchToolParams, types.SearchToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.SearchToolParams]) (*mcp.CallToolResultFor[types.SearchToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_search", args)

		if strings.TrimSpace(args.Objective) == "" && len(args.SearchQueries) == 0 {
			return nil, fmt.Errorf("provide an objective, search queries, or both")
		}

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		req := models.SearchRequest{SearchQueries: args.SearchQueries}
		if args.Objective != "" {
			req.Objective = &args.Objective
		}
		if args.MaxResults > 0 {
			req.MaxResults = &args.MaxResults
		}
		if args.Mode != "" {
			mode := models.SearchMode(args.Mode)
			req.Mode = &mode
		}

		resp, err := client.Search(ctx, req)
		if err != nil {
			logError(err)
			return nil, err
		}

		urls := make([]string, 0, len(resp.Results))
		var text strings.Builder
		fmt.Fprintf(&text, "Found %d results:\n", len(resp.Results))
		for _, r := range resp.Results {
			urls = append(urls, r.URL)
			title := r.URL
			if r.Title != nil {
				title = *r.Title
			}
			fmt.Fprintf(&text, "- %s (%s)\n", title, r.URL)
		}

		return &mcp.CallToolResultFor[types.SearchToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{Text: text.String()}},
			StructuredContent: types.SearchToolResponse{
				SearchID:    resp.SearchID,
				ResultCount: len(resp.Results),
				URLs:        urls,
			},
		}, nil
	}
}

func extractHandler() mcp.ToolHandlerFor[types.ExtractToolParams, types.ExtractToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.ExtractToolParams]) (*mcp.CallToolResultFor[types.ExtractToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_extract", args)

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		req := models.ExtractRequest{
			URLs:        args.URLs,
			Excerpts:    true,
			FullContent: args.FullContent,
		}
		if args.Objective != "" {
			req.Objective = &args.Objective
		}

		resp, err := client.Extract(ctx, req)
		if err != nil {
			logError(err)
			return nil, err
		}

		var text strings.Builder
		fmt.Fprintf(&text, "Extracted %d of %d URLs\n", len(resp.Results), len(args.URLs))
		for _, r := range resp.Results {
			fmt.Fprintf(&text, "\n## %s\n", r.URL)
			if r.FullContent != nil {
				text.WriteString(*r.FullContent)
				text.WriteString("\n")
			} else {
				for _, e := range r.Excerpts {
					text.WriteString(e)
					text.WriteString("\n")
				}
			}
		}
		for _, e := range resp.Errors {
			fmt.Fprintf(&text, "\nFailed %s: %s\n", e.URL, e.ErrorType)
		}

		return &mcp.CallToolResultFor[types.ExtractToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{Text: text.String()}},
			StructuredContent: types.ExtractToolResponse{
				ExtractID:    resp.ExtractID,
				ResultCount:  len(resp.Results),
				FailureCount: len(resp.Errors),
			},
		}, nil
	}
}

func monitorCreateHandler() mcp.ToolHandlerFor[types.MonitorCreateParams, types.MonitorToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.MonitorCreateParams]) (*mcp.CallToolResultFor[types.MonitorToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_monitor_create", args)

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		cadence := models.CadenceDaily
		if args.Cadence != "" {
			cadence = models.MonitorCadence(args.Cadence)
		}
		req := models.CreateMonitorRequest{Query: args.Query, Cadence: cadence}
		if args.WebhookURL != "" {
			req.Webhook = &models.WebhookConfig{URL: args.WebhookURL}
		}

		monitor, err := client.CreateMonitor(ctx, req)
		if err != nil {
			logError(err)
			return nil, err
		}

		return &mcp.CallToolResultFor[types.MonitorToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Created %s monitor %s for query: %s", monitor.Cadence, monitor.MonitorID, monitor.Query),
			}},
			StructuredContent: monitorToResponse(*monitor),
		}, nil
	}
}

func monitorListHandler() mcp.ToolHandlerFor[types.MonitorListParams, types.MonitorListToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.MonitorListParams]) (*mcp.CallToolResultFor[types.MonitorListToolResponse], error) {
		logToolCall("parallel_monitor_list", params.Arguments)

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		monitors, err := client.ListMonitors(ctx)
		if err != nil {
			logError(err)
			return nil, err
		}

		resp := types.MonitorListToolResponse{Count: len(monitors)}
		var text strings.Builder
		fmt.Fprintf(&text, "%d monitors:\n", len(monitors))
		for _, m := range monitors {
			resp.Monitors = append(resp.Monitors, monitorToResponse(m))
			fmt.Fprintf(&text, "- %s [%s, %s] %s\n", m.MonitorID, m.Status, m.Cadence, m.Query)
		}

		return &mcp.CallToolResultFor[types.MonitorListToolResponse]{
			Content:           []mcp.Content{&mcp.TextContent{Text: text.String()}},
			StructuredContent: resp,
		}, nil
	}
}

func monitorDeleteHandler() mcp.ToolHandlerFor[types.MonitorDeleteParams, types.MonitorDeleteToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.MonitorDeleteParams]) (*mcp.CallToolResultFor[types.MonitorDeleteToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_monitor_delete", args)

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}
		if err := client.DeleteMonitor(ctx, args.MonitorID); err != nil {
			logError(err)
			return nil, err
		}

		return &mcp.CallToolResultFor[types.MonitorDeleteToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Deleted monitor %s", args.MonitorID),
			}},
			StructuredContent: types.MonitorDeleteToolResponse{MonitorID: args.MonitorID, Deleted: true},
		}, nil
	}
}

func taskRunHandler() mcp.ToolHandlerFor[types.TaskRunParams, types.TaskRunToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.TaskRunParams]) (*mcp.CallToolResultFor[types.TaskRunToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_task_run", args)

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		run, err := client.CreateTaskRun(ctx, models.TaskRunRequest{
			Processor: args.Processor,
			Input:     args.Input,
		})
		if err != nil {
			logError(err)
			return nil, err
		}

		wait := args.WaitForCompletion == nil || *args.WaitForCompletion
		if wait {
			run, err = client.WaitForTaskRun(ctx, run.RunID, waitOptionsFromConfig())
			if err != nil {
				logError(err)
				return nil, err
			}
		}

		resp := types.TaskRunToolResponse{
			RunID:    run.RunID,
			Status:   string(run.Status),
			IsActive: run.IsActive,
		}
		text := fmt.Sprintf("Task run %s is %s", run.RunID, run.Status)
		if run.Status == models.TaskRunCompleted {
			result, err := client.GetTaskRunResult(ctx, run.RunID)
			if err != nil {
				logError(err)
				return nil, err
			}
			resp.Result = result
			text = fmt.Sprintf("Task run %s completed", run.RunID)
		}

		return &mcp.CallToolResultFor[types.TaskRunToolResponse]{
			Content:           []mcp.Content{&mcp.TextContent{Text: text}},
			StructuredContent: resp,
		}, nil
	}
}

func taskStatusHandler() mcp.ToolHandlerFor[types.TaskStatusParams, types.TaskRunToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.TaskStatusParams]) (*mcp.CallToolResultFor[types.TaskRunToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_task_status", args)

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		run, err := client.GetTaskRun(ctx, args.RunID)
		if err != nil {
			logError(err)
			return nil, err
		}

		resp := types.TaskRunToolResponse{
			RunID:    run.RunID,
			Status:   string(run.Status),
			IsActive: run.IsActive,
		}
		if run.Status == models.TaskRunCompleted {
			result, err := client.GetTaskRunResult(ctx, run.RunID)
			if err != nil {
				logError(err)
				return nil, err
			}
			resp.Result = result
		}

		return &mcp.CallToolResultFor[types.TaskRunToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Task run %s is %s", run.RunID, run.Status),
			}},
			StructuredContent: resp,
		}, nil
	}
}

func findallHandler() mcp.ToolHandlerFor[types.FindAllParams, types.FindAllToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.FindAllParams]) (*mcp.CallToolResultFor[types.FindAllToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_findall", args)

		if len(args.MatchConditions) == 0 {
			return nil, fmt.Errorf("match_conditions is required: provide at least one field/operator/value condition")
		}

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		conditions := make([]models.MatchCondition, 0, len(args.MatchConditions))
		for _, c := range args.MatchConditions {
			conditions = append(conditions, models.MatchCondition{
				Field:    c.Field,
				Operator: c.Operator,
				Value:    c.Value,
			})
		}

		matchLimit := args.MatchLimit
		if matchLimit == 0 {
			matchLimit = 50
		}
		generator := models.GeneratorCore
		if args.Generator != "" {
			generator = models.FindAllGenerator(args.Generator)
		}

		run, err := client.CreateFindAllRun(ctx, models.FindAllRequest{
			Objective:       args.Objective,
			EntityType:      args.EntityType,
			MatchConditions: conditions,
			Generator:       generator,
			MatchLimit:      matchLimit,
		})
		if err != nil {
			logError(err)
			return nil, err
		}

		return &mcp.CallToolResultFor[types.FindAllToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Started entity-discovery run %s (%s)", run.FindAllID, run.Status.Status),
			}},
			StructuredContent: types.FindAllToolResponse{
				FindAllID: run.FindAllID,
				Status:    string(run.Status.Status),
				IsActive:  run.Status.IsActive,
			},
		}, nil
	}
}

func findallResultHandler() mcp.ToolHandlerFor[types.FindAllResultParams, types.FindAllResultToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.FindAllResultParams]) (*mcp.CallToolResultFor[types.FindAllResultToolResponse], error) {
		args := params.Arguments
		logToolCall("parallel_findall_result", args)

		client, err := newParallelClient()
		if err != nil {
			logError(err)
			return nil, err
		}

		result, err := client.GetFindAllResult(ctx, args.FindAllID)
		if err != nil {
			logError(err)
			return nil, err
		}

		matches := result.Matches
		truncated := false
		if len(matches) > findallResultCap {
			matches = matches[:findallResultCap]
			truncated = true
		}

		resp := types.FindAllResultToolResponse{
			FindAllID:    result.FindAllID,
			TotalMatches: result.TotalMatches,
			Truncated:    truncated,
		}
		var text strings.Builder
		fmt.Fprintf(&text, "%d matches", result.TotalMatches)
		if truncated {
			fmt.Fprintf(&text, " (showing first %d)", findallResultCap)
		}
		text.WriteString("\n")
		for _, m := range matches {
			entry := map[string]any{
				"entity_id":   m.EntityID,
				"entity_type": m.EntityType,
				"confidence":  m.Confidence,
			}
			if m.Data != nil {
				entry["data"] = m.Data
			}
			resp.Matches = append(resp.Matches, entry)
			fmt.Fprintf(&text, "- %s (confidence %.2f)\n", m.EntityID, m.Confidence)
		}

		return &mcp.CallToolResultFor[types.FindAllResultToolResponse]{
			Content:           []mcp.Content{&mcp.TextContent{Text: text.String()}},
			StructuredContent: resp,
		}, nil
	}
}

func dispatchTaskHandler(dispatch store.DispatchStore) mcp.ToolHandlerFor[types.DispatchTaskParams, types.DispatchToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.DispatchTaskParams]) (*mcp.CallToolResultFor[types.DispatchToolResponse], error) {
		args := params.Arguments
		logToolCall("dispatch_task", args)

		priority := args.Priority
		if priority == 0 {
			priority = 5
		}
		turnBudget := args.TurnBudget
		if turnBudget == 0 {
			turnBudget = 10
		}

		task, err := dispatch.Dispatch(store.DispatchRequest{
			Project:     args.Project,
			Description: args.Description,
			Priority:    priority,
			TurnBudget:  turnBudget,
		})
		if err != nil {
			logError(err)
			return nil, err
		}

		return &mcp.CallToolResultFor[types.DispatchToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Dispatched task %s for project %s", task.ID, task.Project),
			}},
			StructuredContent: dispatchToResponse(task),
		}, nil
	}
}

func dispatchStatusHandler(dispatch store.DispatchStore) mcp.ToolHandlerFor[types.DispatchStatusParams, types.DispatchToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.DispatchStatusParams]) (*mcp.CallToolResultFor[types.DispatchToolResponse], error) {
		args := params.Arguments
		logToolCall("dispatch_status", args)

		task, err := dispatch.Get(args.TaskID)
		if err != nil {
			logError(err)
			return nil, err
		}

		return &mcp.CallToolResultFor[types.DispatchToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Task %s is %s", task.ID, task.Status),
			}},
			StructuredContent: dispatchToResponse(task),
		}, nil
	}
}

func dispatchCancelHandler(dispatch store.DispatchStore) mcp.ToolHandlerFor[types.DispatchCancelParams, types.DispatchToolResponse] {
	return func(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[types.DispatchCancelParams]) (*mcp.CallToolResultFor[types.DispatchToolResponse], error) {
		args := params.Arguments
		logToolCall("dispatch_cancel", args)

		task, err := dispatch.Cancel(args.TaskID)
		if err != nil {
			logError(err)
			return nil, err
		}

		return &mcp.CallToolResultFor[types.DispatchToolResponse]{
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Cancelled task %s", task.ID),
			}},
			StructuredContent: dispatchToResponse(task),
		}, nil
	}
}

func monitorToResponse(m models.Monitor) types.MonitorToolResponse {
	return types.MonitorToolResponse{
		MonitorID: m.MonitorID,
		Query:     m.Query,
		Status:    string(m.Status),
		Cadence:   string(m.Cadence),
	}
}

func dispatchToResponse(task models.DispatchedTask) types.DispatchToolResponse {
	resp := types.DispatchToolResponse{
		TaskID:      task.ID,
		Status:      string(task.Status),
		Project:     task.Project,
		Description: task.Description,
		Priority:    task.Priority,
		TurnBudget:  task.TurnBudget,
		CreatedAt:   task.CreatedAt.Format(time.RFC3339),
	}
	if task.CompletedAt != nil {
		resp.CompletedAt = task.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

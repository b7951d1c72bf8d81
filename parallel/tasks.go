package parallel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

// CreateTaskRun submits a new task run. The returned run starts in
// status "queued"; all later transitions are driven by the service and
// observed via GetTaskRun or WaitForTaskRun.
func (c *Client) CreateTaskRun(ctx context.Context, req models.TaskRunRequest) (*models.TaskRun, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var run models.TaskRun
	if err := c.do(ctx, http.MethodPost, "/v1/tasks/runs", req, false, &run); err != nil {
		return nil, err
	}
	if err := models.ValidateStruct(run); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	return &run, nil
}

// GetTaskRun retrieves a task run by ID.
func (c *Client) GetTaskRun(ctx context.Context, runID string) (*models.TaskRun, error) {
	var run models.TaskRun
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/tasks/runs/%s", runID), nil, false, &run); err != nil {
		return nil, err
	}
	if err := models.ValidateStruct(run); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	return &run, nil
}

// GetTaskRunResult retrieves the output of a completed task run. The
// shape depends on the task spec, so the result stays untyped.
func (c *Client) GetTaskRunResult(ctx context.Context, runID string) (map[string]any, error) {
	var result map[string]any
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1/tasks/runs/%s/result", runID), nil, false, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTaskGroup creates a group for batch task processing.
func (c *Client) CreateTaskGroup(ctx context.Context, req models.TaskGroupRequest) (*models.TaskGroup, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var group models.TaskGroup
	if err := c.do(ctx, http.MethodPost, "/v1beta/tasks/groups", req, true, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// GetTaskGroup retrieves a task group by ID.
func (c *Client) GetTaskGroup(ctx context.Context, taskgroupID string) (*models.TaskGroup, error) {
	var group models.TaskGroup
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1beta/tasks/groups/%s", taskgroupID), nil, true, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

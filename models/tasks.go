// Package models defines the typed request and response schemas for
// the Parallel.ai web-intelligence API, plus the locally dispatched
// task record. Absent optional fields are pointers (or nil slices and
// maps) with omitempty tags so they are dropped from request bodies
// rather than sent as null; the remote service assigns different
// defaults based on presence.
package models

import (
	"encoding/json"
	"time"
)

// TaskRunStatus is the lifecycle status of a remote task run.
type TaskRunStatus string

const (
	TaskRunQueued         TaskRunStatus = "queued"
	TaskRunActionRequired TaskRunStatus = "action_required"
	TaskRunRunning        TaskRunStatus = "running"
	TaskRunCompleted      TaskRunStatus = "completed"
	TaskRunFailed         TaskRunStatus = "failed"
	TaskRunCancelling     TaskRunStatus = "cancelling"
	TaskRunCancelled      TaskRunStatus = "cancelled"
)

// TaskRunStatuses lists every task run status the service can report.
var TaskRunStatuses = []TaskRunStatus{
	TaskRunQueued,
	TaskRunActionRequired,
	TaskRunRunning,
	TaskRunCompleted,
	TaskRunFailed,
	TaskRunCancelling,
	TaskRunCancelled,
}

// IsActive reports whether the status is non-terminal. The partition
// is exhaustive: queued, action_required, running and cancelling are
// active; completed, failed and cancelled are terminal.
func (s TaskRunStatus) IsActive() bool {
	switch s {
	case TaskRunQueued, TaskRunActionRequired, TaskRunRunning, TaskRunCancelling:
		return true
	default:
		return false
	}
}

// MCPServerConfig configures a Model Context Protocol server made
// available to a task run.
type MCPServerConfig struct {
	URL     string            `json:"url" validate:"required,url"`
	Name    *string           `json:"name,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// TaskSpec is a structured task specification with an optional output
// schema and extra instructions.
type TaskSpec struct {
	Schema       map[string]any `json:"schema,omitempty"`
	Instructions *string        `json:"instructions,omitempty"`
}

// WebhookConfig configures completion callbacks for task runs and
// entity-discovery runs.
type WebhookConfig struct {
	URL        string            `json:"url" validate:"required,url"`
	EventTypes []string          `json:"event_types,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// TaskRunRequest is the body for creating a task run.
// Metadata keys are capped at 16 characters and values at 512 by the
// service; the same bounds are enforced locally.
type TaskRunRequest struct {
	Processor    string            `json:"processor" validate:"required"`
	Input        any               `json:"input" validate:"required"`
	Metadata     map[string]string `json:"metadata,omitempty" validate:"omitempty,dive,keys,max=16,endkeys,max=512"`
	SourcePolicy *SourcePolicy     `json:"source_policy,omitempty"`
	TaskSpec     *TaskSpec         `json:"task_spec,omitempty"`
	MCPServers   []MCPServerConfig `json:"mcp_servers,omitempty" validate:"omitempty,dive"`
	EnableEvents *bool             `json:"enable_events,omitempty"`
	Webhook      *WebhookConfig    `json:"webhook,omitempty"`
}

// TaskRunError carries failure details for a failed task run.
type TaskRunError struct {
	Code    string         `json:"code" validate:"required"`
	Message string         `json:"message" validate:"required"`
	Details map[string]any `json:"details,omitempty"`
}

// TaskRun is the task run resource. Unknown wire fields are kept in
// Extra for forward compatibility.
type TaskRun struct {
	RunID       string            `json:"run_id" validate:"required"`
	Status      TaskRunStatus     `json:"status" validate:"required,oneof=queued action_required running completed failed cancelling cancelled"`
	IsActive    bool              `json:"is_active"`
	Processor   string            `json:"processor" validate:"required"`
	CreatedAt   time.Time         `json:"created_at"`
	ModifiedAt  time.Time         `json:"modified_at"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	TaskGroupID *string           `json:"taskgroup_id,omitempty"`
	Warnings    []map[string]any  `json:"warnings,omitempty"`
	Error       *TaskRunError     `json:"error,omitempty"`

	Extra map[string]any `json:"-"`
}

func (t *TaskRun) UnmarshalJSON(data []byte) error {
	type alias TaskRun
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data,
		"run_id", "status", "is_active", "processor", "created_at",
		"modified_at", "metadata", "taskgroup_id", "warnings", "error")
	*t = TaskRun(a)
	return nil
}

// TaskGroupRequest is the body for creating a task group.
type TaskGroupRequest struct {
	Name      *string           `json:"name,omitempty"`
	Processor string            `json:"processor" validate:"required"`
	Metadata  map[string]string `json:"metadata,omitempty" validate:"omitempty,dive,keys,max=16,endkeys,max=512"`
}

// TaskGroup is the batch-processing group resource.
type TaskGroup struct {
	TaskGroupID string    `json:"taskgroup_id" validate:"required"`
	Name        *string   `json:"name,omitempty"`
	Processor   string    `json:"processor" validate:"required"`
	Status      string    `json:"status" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	RunCount    int       `json:"run_count"`

	Extra map[string]any `json:"-"`
}

func (g *TaskGroup) UnmarshalJSON(data []byte) error {
	type alias TaskGroup
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data,
		"taskgroup_id", "name", "processor", "status", "created_at", "run_count")
	*g = TaskGroup(a)
	return nil
}

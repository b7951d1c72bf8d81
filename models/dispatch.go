package models

import "time"

// DispatchStatus is the lifecycle status of a locally dispatched task.
type DispatchStatus string

const (
	DispatchPending   DispatchStatus = "pending"
	DispatchRunning   DispatchStatus = "running"
	DispatchCompleted DispatchStatus = "completed"
	DispatchFailed    DispatchStatus = "failed"
	DispatchCancelled DispatchStatus = "cancelled"
)

// IsTerminal reports whether the status permits no further
// transitions. Terminal records are immutable.
func (s DispatchStatus) IsTerminal() bool {
	switch s {
	case DispatchCompleted, DispatchFailed, DispatchCancelled:
		return true
	default:
		return false
	}
}

// DispatchedTask is a locally tracked unit of work handed to a worker
// process. It is unrelated to remote task runs; the registry is pure
// bookkeeping and nothing here executes the task.
type DispatchedTask struct {
	ID          string         `json:"id" validate:"required"`
	Status      DispatchStatus `json:"status" validate:"required,oneof=pending running completed failed cancelled"`
	Project     string         `json:"project" validate:"required"`
	Description string         `json:"description" validate:"required"`
	Priority    int            `json:"priority" validate:"gte=1,lte=10"`
	TurnBudget  int            `json:"turn_budget" validate:"gte=1,lte=100"`
	CreatedAt   time.Time      `json:"created_at" validate:"required"`
	StartedAt   *time.Time     `json:"started_at,omitempty"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
	Result      any            `json:"result,omitempty"`
	Error       string         `json:"error,omitempty"`
}

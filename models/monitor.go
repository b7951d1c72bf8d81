package models

import (
	"encoding/json"
	"time"
)

// MonitorStatus is the monitor lifecycle status. The service spells
// the terminal state "canceled" (single l) on this resource.
type MonitorStatus string

const (
	MonitorActive   MonitorStatus = "active"
	MonitorCanceled MonitorStatus = "canceled"
)

// MonitorCadence is how often a monitor executes.
type MonitorCadence string

const (
	CadenceHourly MonitorCadence = "hourly"
	CadenceDaily  MonitorCadence = "daily"
	CadenceWeekly MonitorCadence = "weekly"
)

// CreateMonitorRequest is the body for creating a monitor.
type CreateMonitorRequest struct {
	Query    string            `json:"query" validate:"required,min=1"`
	Cadence  MonitorCadence    `json:"cadence" validate:"required,oneof=hourly daily weekly"`
	Metadata map[string]string `json:"metadata,omitempty" validate:"omitempty,dive,keys,max=16,endkeys,max=512"`
	Webhook  *WebhookConfig    `json:"webhook,omitempty"`
}

// UpdateMonitorRequest is the body for updating a monitor. Every field
// is optional; absent fields leave the remote value untouched.
type UpdateMonitorRequest struct {
	Query    *string           `json:"query,omitempty"`
	Cadence  *MonitorCadence   `json:"cadence,omitempty" validate:"omitempty,oneof=hourly daily weekly"`
	Status   *MonitorStatus    `json:"status,omitempty" validate:"omitempty,oneof=active canceled"`
	Metadata map[string]string `json:"metadata,omitempty"`
	Webhook  *WebhookConfig    `json:"webhook,omitempty"`
}

// Monitor is the monitor resource. Unknown wire fields are kept in
// Extra.
type Monitor struct {
	MonitorID string            `json:"monitor_id" validate:"required"`
	Query     string            `json:"query" validate:"required"`
	Status    MonitorStatus     `json:"status" validate:"required,oneof=active canceled"`
	Cadence   MonitorCadence    `json:"cadence" validate:"required,oneof=hourly daily weekly"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Webhook   *WebhookConfig    `json:"webhook,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	LastRunAt *time.Time        `json:"last_run_at,omitempty"`

	Extra map[string]any `json:"-"`
}

func (m *Monitor) UnmarshalJSON(data []byte) error {
	type alias Monitor
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data,
		"monitor_id", "query", "status", "cadence", "metadata",
		"webhook", "created_at", "last_run_at")
	*m = Monitor(a)
	return nil
}

// MonitorEvent is a single event produced by a monitor execution.
type MonitorEvent struct {
	EventID   string         `json:"event_id" validate:"required"`
	EventType string         `json:"event_type" validate:"required"`
	CreatedAt time.Time      `json:"created_at"`
	Data      map[string]any `json:"data,omitempty"`
}

package parallel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

// monitorList is the wire wrapper for the monitor list endpoint; the
// service wraps list results in a named field, never a bare array.
type monitorList struct {
	Monitors []models.Monitor `json:"monitors"`
}

type monitorEventList struct {
	Events []models.MonitorEvent `json:"events"`
}

// ListMonitors returns all monitors for the account.
func (c *Client) ListMonitors(ctx context.Context) ([]models.Monitor, error) {
	var list monitorList
	if err := c.do(ctx, http.MethodGet, "/v1alpha/monitors", nil, false, &list); err != nil {
		return nil, err
	}
	return list.Monitors, nil
}

// CreateMonitor creates a scheduled web monitor.
func (c *Client) CreateMonitor(ctx context.Context, req models.CreateMonitorRequest) (*models.Monitor, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var m models.Monitor
	if err := c.do(ctx, http.MethodPost, "/v1alpha/monitors", req, false, &m); err != nil {
		return nil, err
	}
	if err := models.ValidateStruct(m); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	return &m, nil
}

// GetMonitor retrieves a monitor by ID.
func (c *Client) GetMonitor(ctx context.Context, monitorID string) (*models.Monitor, error) {
	var m models.Monitor
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1alpha/monitors/%s", monitorID), nil, false, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMonitor applies a partial update to a monitor. Absent fields
// are omitted from the request so the service keeps current values.
func (c *Client) UpdateMonitor(ctx context.Context, monitorID string, req models.UpdateMonitorRequest) (*models.Monitor, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var m models.Monitor
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1alpha/monitors/%s", monitorID), req, false, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DeleteMonitor deletes a monitor and stops all future executions.
func (c *Client) DeleteMonitor(ctx context.Context, monitorID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1alpha/monitors/%s", monitorID), nil, false, nil)
}

// ListMonitorEvents returns the events recorded for a monitor.
func (c *Client) ListMonitorEvents(ctx context.Context, monitorID string) ([]models.MonitorEvent, error) {
	var list monitorEventList
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1alpha/monitors/%s/events", monitorID), nil, false, &list); err != nil {
		return nil, err
	}
	return list.Events, nil
}

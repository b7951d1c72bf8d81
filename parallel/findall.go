package parallel

import (
	"context"
	"fmt"
	"net/http"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

// CreateFindAllRun starts an entity-discovery run. Match conditions
// are required and come from the caller.
func (c *Client) CreateFindAllRun(ctx context.Context, req models.FindAllRequest) (*models.FindAllRun, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var run models.FindAllRun
	if err := c.do(ctx, http.MethodPost, "/v1beta/findall/runs", req, true, &run); err != nil {
		return nil, err
	}
	if err := models.ValidateStruct(run); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	return &run, nil
}

// GetFindAllRun retrieves an entity-discovery run by ID.
func (c *Client) GetFindAllRun(ctx context.Context, findallID string) (*models.FindAllRun, error) {
	var run models.FindAllRun
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1beta/findall/runs/%s", findallID), nil, true, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// GetFindAllResult retrieves the matches of an entity-discovery run.
func (c *Client) GetFindAllResult(ctx context.Context, findallID string) (*models.FindAllResult, error) {
	var result models.FindAllResult
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/v1beta/findall/runs/%s/result", findallID), nil, true, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CancelFindAllRun asks the service to cancel a run. This is a remote
// cancellation; the updated run is returned.
func (c *Client) CancelFindAllRun(ctx context.Context, findallID string) (*models.FindAllRun, error) {
	var run models.FindAllRun
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1beta/findall/runs/%s/cancel", findallID), nil, true, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// ExtendFindAllRun raises the match cap of a run.
func (c *Client) ExtendFindAllRun(ctx context.Context, findallID string, additionalMatches int) (*models.FindAllRun, error) {
	req := models.ExtendFindAllRequest{AdditionalMatches: additionalMatches}
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var run models.FindAllRun
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1beta/findall/runs/%s/extend", findallID), req, true, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// AddFindAllEnrichment attaches an enrichment to a run.
func (c *Client) AddFindAllEnrichment(ctx context.Context, findallID string, req models.EnrichmentRequest) (*models.FindAllRun, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var run models.FindAllRun
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/v1beta/findall/runs/%s/enrich", findallID), req, true, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

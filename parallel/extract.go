package parallel

import (
	"context"
	"net/http"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

// Extract pulls content from web URLs, optionally focused on an
// objective or keyword queries.
func (c *Client) Extract(ctx context.Context, req models.ExtractRequest) (*models.ExtractResponse, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var resp models.ExtractResponse
	if err := c.do(ctx, http.MethodPost, "/v1beta/extract", req, true, &resp); err != nil {
		return nil, err
	}
	if err := models.ValidateStruct(resp); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	return &resp, nil
}

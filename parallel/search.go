package parallel

import (
	"context"
	"net/http"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

// Search performs a web search with a natural-language objective,
// keyword queries, or both.
func (c *Client) Search(ctx context.Context, req models.SearchRequest) (*models.SearchResponse, error) {
	if err := models.ValidateStruct(req); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	var resp models.SearchResponse
	if err := c.do(ctx, http.MethodPost, "/v1beta/search", req, true, &resp); err != nil {
		return nil, err
	}
	if err := models.ValidateStruct(resp); err != nil {
		return nil, types.NewValidationError(err.Error())
	}
	return &resp, nil
}

package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/webwinghq/webwing/parallel"
	"github.com/webwinghq/webwing/types"
)

// errorBody is the wire shape of a failure. Type is derived from the
// HTTP status; Code is the machine-readable kind a caller can branch
// on without string-matching Message.
type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
	Code    string `json:"code,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// errorType maps an HTTP status to the envelope type discriminator.
func errorType(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "invalid_request_error"
	case http.StatusUnauthorized:
		return "authentication_error"
	case http.StatusForbidden:
		return "permission_error"
	case http.StatusNotFound:
		return "not_found_error"
	case http.StatusTooManyRequests:
		return "rate_limit_error"
	case http.StatusInternalServerError, http.StatusBadGateway:
		return "api_error"
	case http.StatusServiceUnavailable:
		return "overloaded_error"
	default:
		return "api_error"
	}
}

// writeError translates a typed failure into the envelope. Error kinds
// pass through unmodified: remote failures keep their upstream status,
// local taxonomy errors map to fixed statuses and codes.
func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	body := errorBody{Message: err.Error(), Code: "internal_error"}

	var (
		cfgErr     *types.ConfigurationError
		valErr     *types.ValidationError
		nfErr      *types.NotFoundError
		stateErr   *types.InvalidStateError
		apiErr     *parallel.APIError
		timeoutErr *parallel.WaitTimeoutError
	)
	switch {
	case errors.As(err, &cfgErr):
		status = http.StatusServiceUnavailable
		body.Code = "configuration_error"
		body.Param = cfgErr.Setting
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
		body.Code = "validation_error"
	case errors.As(err, &nfErr):
		status = http.StatusNotFound
		body.Code = "not_found"
		body.Param = nfErr.ID
	case errors.As(err, &stateErr):
		status = http.StatusConflict
		body.Code = "invalid_state"
		body.Param = stateErr.ID
	case errors.As(err, &apiErr):
		status = apiErr.StatusCode
		body.Code = "remote_api_error"
	case errors.As(err, &timeoutErr):
		status = http.StatusGatewayTimeout
		body.Code = "wait_timeout"
		body.Param = timeoutErr.RunID
	}

	body.Type = errorType(status)
	s.log.Warn("request failed", "status", status, "code", body.Code, "error", err.Error())
	c.JSON(status, errorEnvelope{Error: body})
}

// badRequest reports a malformed or invalid request body.
func (s *Server) badRequest(c *gin.Context, err error) {
	s.writeError(c, types.NewValidationError(err.Error()))
}

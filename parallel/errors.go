package parallel

import (
	"fmt"
	"time"
)

// APIError is a non-2xx response from the remote API. It carries the
// upstream status code and raw body; callers branch on StatusCode
// instead of parsing Body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("parallel api: status %d: %s", e.StatusCode, e.Body)
}

// WaitTimeoutError means a wait exceeded its deadline. The remote run
// may still be executing; the wait can be re-invoked.
type WaitTimeoutError struct {
	RunID   string
	Timeout time.Duration
}

func (e *WaitTimeoutError) Error() string {
	return fmt.Sprintf("task run %s did not complete within %s", e.RunID, e.Timeout)
}

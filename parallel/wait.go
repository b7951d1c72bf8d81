package parallel

import (
	"context"
	"time"

	"github.com/webwinghq/webwing/models"
)

const (
	// DefaultPollInterval is the fixed delay between status checks.
	// Fixed-interval polling is deliberate: runs typically finish in
	// seconds to low minutes and the service offers no push channel.
	DefaultPollInterval = 2 * time.Second

	// DefaultWaitTimeout bounds a single wait call.
	DefaultWaitTimeout = 5 * time.Minute
)

// WaitOptions override the polling cadence for one wait call.
// Concurrent callers may wait on the same run with different budgets.
type WaitOptions struct {
	PollInterval time.Duration
	Timeout      time.Duration
}

func (o WaitOptions) withDefaults() WaitOptions {
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultPollInterval
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultWaitTimeout
	}
	return o
}

// WaitForTaskRun blocks until the run leaves its active states or the
// timeout elapses. Timeout yields a *WaitTimeoutError and does not
// cancel the remote run; any other error propagates unchanged from the
// underlying fetch. Context cancellation aborts the wait between
// polls.
func (c *Client) WaitForTaskRun(ctx context.Context, runID string, opts WaitOptions) (*models.TaskRun, error) {
	opts = opts.withDefaults()
	start := c.now()

	for {
		run, err := c.GetTaskRun(ctx, runID)
		if err != nil {
			return nil, err
		}
		if !run.IsActive {
			return run, nil
		}

		if c.now().Sub(start) > opts.Timeout {
			return nil, &WaitTimeoutError{RunID: runID, Timeout: opts.Timeout}
		}

		if err := c.sleep(ctx, opts.PollInterval); err != nil {
			return nil, err
		}
	}
}

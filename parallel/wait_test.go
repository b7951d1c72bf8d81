package parallel

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webwinghq/webwing/models"
)

// fakeClock drives the waiter without real sleeps. Each sleep call
// advances the clock by the requested duration.
type fakeClock struct {
	now    time.Time
	sleeps int
}

func (f *fakeClock) install(c *Client) {
	c.now = func() time.Time { return f.now }
	c.sleep = func(ctx context.Context, d time.Duration) error {
		f.sleeps++
		f.now = f.now.Add(d)
		return nil
	}
}

func runStatusServer(t *testing.T, statuses []models.TaskRunStatus) (*Client, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1)) - 1
		if n >= len(statuses) {
			n = len(statuses) - 1
		}
		status := statuses[n]
		_, _ = fmt.Fprintf(w, `{"run_id": "trun_1", "status": %q, "is_active": %t, "processor": "base"}`,
			status, status.IsActive())
	}))
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)
	return client, &calls
}

func TestWaitForTaskRun_PollsUntilTerminal(t *testing.T) {
	client, calls := runStatusServer(t, []models.TaskRunStatus{
		models.TaskRunQueued,
		models.TaskRunRunning,
		models.TaskRunRunning,
		models.TaskRunCompleted,
	})

	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	clock.install(client)

	run, err := client.WaitForTaskRun(context.Background(), "trun_1", WaitOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.TaskRunCompleted, run.Status)

	// Three active polls, then the terminal fetch; one sleep between
	// each consecutive pair.
	assert.Equal(t, int32(4), calls.Load())
	assert.Equal(t, 3, clock.sleeps)
}

func TestWaitForTaskRun_FailedIsTerminal(t *testing.T) {
	client, _ := runStatusServer(t, []models.TaskRunStatus{
		models.TaskRunRunning,
		models.TaskRunFailed,
	})
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	clock.install(client)

	run, err := client.WaitForTaskRun(context.Background(), "trun_1", WaitOptions{})
	require.NoError(t, err)
	assert.Equal(t, models.TaskRunFailed, run.Status)
}

func TestWaitForTaskRun_TimeoutYieldsTypedError(t *testing.T) {
	client, calls := runStatusServer(t, []models.TaskRunStatus{models.TaskRunRunning})
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	clock.install(client)

	opts := WaitOptions{PollInterval: 2 * time.Second, Timeout: 5 * time.Second}
	_, err := client.WaitForTaskRun(context.Background(), "trun_1", opts)
	require.Error(t, err)

	var timeoutErr *WaitTimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, "trun_1", timeoutErr.RunID)
	assert.Equal(t, opts.Timeout, timeoutErr.Timeout)

	// The poll count is bounded by timeout/interval, not unbounded.
	assert.LessOrEqual(t, calls.Load(), int32(5))
}

func TestWaitForTaskRun_TimeoutShorterThanInterval(t *testing.T) {
	client, calls := runStatusServer(t, []models.TaskRunStatus{models.TaskRunRunning})
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	clock.install(client)

	// A budget smaller than a single poll interval still gets one
	// status fetch, then times out on the next deadline check.
	opts := WaitOptions{PollInterval: 10 * time.Second, Timeout: time.Second}
	_, err := client.WaitForTaskRun(context.Background(), "trun_1", opts)
	require.Error(t, err)

	var timeoutErr *WaitTimeoutError
	require.True(t, errors.As(err, &timeoutErr))
	assert.Equal(t, time.Second, timeoutErr.Timeout)
	assert.LessOrEqual(t, calls.Load(), int32(2))
	assert.Equal(t, 1, clock.sleeps)
}

func TestWaitForTaskRun_ContextCancellationAborts(t *testing.T) {
	client, _ := runStatusServer(t, []models.TaskRunStatus{models.TaskRunRunning})

	// Real sleep here; cancellation must interrupt it.
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	_, err := client.WaitForTaskRun(ctx, "trun_1", WaitOptions{PollInterval: 10 * time.Second})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWaitOptions_Defaults(t *testing.T) {
	opts := WaitOptions{}.withDefaults()
	assert.Equal(t, 2*time.Second, opts.PollInterval)
	assert.Equal(t, 5*time.Minute, opts.Timeout)

	custom := WaitOptions{PollInterval: time.Second, Timeout: time.Minute}.withDefaults()
	assert.Equal(t, time.Second, custom.PollInterval)
	assert.Equal(t, time.Minute, custom.Timeout)
}

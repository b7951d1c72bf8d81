package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

func validRequest() DispatchRequest {
	return DispatchRequest{
		Project:     "webwing",
		Description: "triage flaky integration suite",
		Priority:    5,
		TurnBudget:  10,
	}
}

func TestMemoryDispatchStore_DispatchAndGet(t *testing.T) {
	s := NewMemoryDispatchStore()

	task, err := s.Dispatch(validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID, "registry must assign an ID when none is given")
	assert.Equal(t, models.DispatchPending, task.Status)
	assert.False(t, task.CreatedAt.IsZero())
	assert.Nil(t, task.CompletedAt)

	got, err := s.Get(task.ID)
	require.NoError(t, err)
	assert.Equal(t, task, got)
}

func TestMemoryDispatchStore_SuppliedIDIsKept(t *testing.T) {
	s := NewMemoryDispatchStore()

	req := validRequest()
	req.ID = "task-42"
	task, err := s.Dispatch(req)
	require.NoError(t, err)
	assert.Equal(t, "task-42", task.ID)

	// The same ID cannot be registered twice.
	_, err = s.Dispatch(req)
	require.Error(t, err)
	var valErr *types.ValidationError
	assert.True(t, errors.As(err, &valErr))
}

func TestMemoryDispatchStore_GeneratedIDsAreTimeOrdered(t *testing.T) {
	s := NewMemoryDispatchStore()

	first, err := s.Dispatch(validRequest())
	require.NoError(t, err)
	second, err := s.Dispatch(validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	// UUIDv7 identifiers sort by creation time.
	assert.Less(t, first.ID, second.ID)
}

func TestMemoryDispatchStore_ValidationBounds(t *testing.T) {
	tests := []struct {
		name string
		edit func(*DispatchRequest)
	}{
		{"missing project", func(r *DispatchRequest) { r.Project = "" }},
		{"missing description", func(r *DispatchRequest) { r.Description = "" }},
		{"priority too low", func(r *DispatchRequest) { r.Priority = 0 }},
		{"priority too high", func(r *DispatchRequest) { r.Priority = 11 }},
		{"turn budget too low", func(r *DispatchRequest) { r.TurnBudget = 0 }},
		{"turn budget too high", func(r *DispatchRequest) { r.TurnBudget = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryDispatchStore()
			req := validRequest()
			tt.edit(&req)

			_, err := s.Dispatch(req)
			require.Error(t, err)
			var valErr *types.ValidationError
			assert.True(t, errors.As(err, &valErr))
		})
	}
}

func TestMemoryDispatchStore_GetUnknownIsNotFound(t *testing.T) {
	s := NewMemoryDispatchStore()

	_, err := s.Get("nope")
	require.Error(t, err)
	var nfErr *types.NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "nope", nfErr.ID)
}

func TestMemoryDispatchStore_Cancel(t *testing.T) {
	s := NewMemoryDispatchStore()
	fixed := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	task, err := s.Dispatch(validRequest())
	require.NoError(t, err)

	cancelled, err := s.Cancel(task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DispatchCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CompletedAt)
	assert.Equal(t, fixed, *cancelled.CompletedAt)

	// Cancel is the only mutation and terminal states are immutable:
	// a second cancel must fail loudly, not succeed silently.
	_, err = s.Cancel(task.ID)
	require.Error(t, err)
	var stateErr *types.InvalidStateError
	require.True(t, errors.As(err, &stateErr))
	assert.Equal(t, string(models.DispatchCancelled), stateErr.Status)
}

func TestMemoryDispatchStore_CancelUnknownIsNotFound(t *testing.T) {
	s := NewMemoryDispatchStore()

	_, err := s.Cancel("nope")
	require.Error(t, err)
	var nfErr *types.NotFoundError
	assert.True(t, errors.As(err, &nfErr))
}

func TestMemoryDispatchStore_ConcurrentCancelsRaceSafely(t *testing.T) {
	s := NewMemoryDispatchStore()
	task, err := s.Dispatch(validRequest())
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	successes := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Cancel(task.ID); err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	count := 0
	for range successes {
		count++
	}
	assert.Equal(t, 1, count, "exactly one concurrent cancel may win")
}

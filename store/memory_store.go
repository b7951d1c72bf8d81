package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/webwinghq/webwing/models"
	"github.com/webwinghq/webwing/types"
)

// MemoryDispatchStore implements DispatchStore with a mutex-guarded
// map. Construct one per process and hand it to every front end;
// tests get isolation by constructing their own.
type MemoryDispatchStore struct {
	mu    sync.RWMutex
	tasks map[string]models.DispatchedTask

	// now is injectable so tests control timestamps.
	now func() time.Time
}

// NewMemoryDispatchStore creates an empty registry.
func NewMemoryDispatchStore() *MemoryDispatchStore {
	return &MemoryDispatchStore{
		tasks: make(map[string]models.DispatchedTask),
		now:   time.Now,
	}
}

// Dispatch records a task with status pending. The registry does not
// check that the project or description refer to anything real.
func (s *MemoryDispatchStore) Dispatch(req DispatchRequest) (models.DispatchedTask, error) {
	id := req.ID
	if id == "" {
		u, err := uuid.NewV7()
		if err != nil {
			return models.DispatchedTask{}, fmt.Errorf("generate task id: %w", err)
		}
		id = u.String()
	}

	task := models.DispatchedTask{
		ID:          id,
		Status:      models.DispatchPending,
		Project:     req.Project,
		Description: req.Description,
		Priority:    req.Priority,
		TurnBudget:  req.TurnBudget,
		CreatedAt:   s.now(),
	}
	if err := models.ValidateStruct(task); err != nil {
		return models.DispatchedTask{}, types.NewValidationError(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tasks[id]; exists {
		return models.DispatchedTask{}, types.NewValidationError(fmt.Sprintf("task id %s already exists", id))
	}
	s.tasks[id] = task
	return task, nil
}

// Get returns a copy of the current record.
func (s *MemoryDispatchStore) Get(id string) (models.DispatchedTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return models.DispatchedTask{}, &types.NotFoundError{Kind: "dispatched task", ID: id}
	}
	return task, nil
}

// Cancel marks a non-terminal task cancelled. The read-modify-write
// happens under the write lock so concurrent cancels cannot race.
func (s *MemoryDispatchStore) Cancel(id string) (models.DispatchedTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return models.DispatchedTask{}, &types.NotFoundError{Kind: "dispatched task", ID: id}
	}
	if task.Status.IsTerminal() {
		return models.DispatchedTask{}, &types.InvalidStateError{ID: id, Status: string(task.Status)}
	}

	now := s.now()
	task.Status = models.DispatchCancelled
	task.CompletedAt = &now
	s.tasks[id] = task
	return task, nil
}

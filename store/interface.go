// Package store holds the in-memory task-dispatch registry. Records
// live for the process lifetime only; there is no delete operation and
// no persistence.
package store

import "github.com/webwinghq/webwing/models"

// DispatchRequest describes a task to hand to a worker process. ID is
// optional; the registry generates a time-ordered identifier when it
// is empty.
type DispatchRequest struct {
	ID          string
	Project     string
	Description string
	Priority    int
	TurnBudget  int
}

// DispatchStore is the contract for the dispatch registry. It is pure
// bookkeeping: nothing here runs the task, and Cancel is the only
// post-creation status mutation. Implementations must make every
// operation atomic with respect to concurrent calls on the same
// identifier.
type DispatchStore interface {
	// Dispatch records a new task with status pending and returns the
	// stored record.
	Dispatch(req DispatchRequest) (models.DispatchedTask, error)

	// Get returns the current record, or a *types.NotFoundError when
	// the identifier is unknown.
	Get(id string) (models.DispatchedTask, error)

	// Cancel moves a non-terminal record to cancelled and stamps its
	// completion time. Unknown identifiers yield *types.NotFoundError;
	// terminal records yield *types.InvalidStateError, never a silent
	// success.
	Cancel(id string) (models.DispatchedTask, error)
}

package storage

import (
	"context"

	"github.com/tiwariParth/go-task-cli/internal/task"
)

// Storage defines durable read/write of the whole task list.
//
// Every Save replaces the stored list wholesale. Implementations do not lock:
// two processes saving at once race and the last writer wins.
type Storage interface {
	// Load returns the stored tasks in list order. A store with no
	// parseable tasks yields an empty list, not an error.
	Load(ctx context.Context) ([]task.Task, error)

	// Save replaces the stored list with tasks.
	Save(ctx context.Context, tasks []task.Task) error
}

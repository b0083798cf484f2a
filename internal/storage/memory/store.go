package memory

import (
	"context"
	"sync"

	"github.com/tiwariParth/go-task-cli/internal/storage"
	"github.com/tiwariParth/go-task-cli/internal/task"
)

var _ storage.Storage = (*MemoryStore)(nil)

// MemoryStore implements the storage.Storage interface using in-memory storage.
// It holds copies, so callers mutating a loaded slice do not change the store
// until they Save.
type MemoryStore struct {
	mu    sync.Mutex
	tasks []task.Task

	// LoadErr and SaveErr, when set, are returned instead of touching the store.
	LoadErr error
	SaveErr error

	loads int
	saves int
}

// NewMemoryStore creates a new instance of MemoryStore seeded with tasks.
func NewMemoryStore(tasks ...task.Task) *MemoryStore {
	return &MemoryStore{tasks: clone(tasks)}
}

// Load returns a copy of the stored tasks.
func (m *MemoryStore) Load(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return clone(m.tasks), nil
}

// Save replaces the stored tasks with a copy of tasks.
func (m *MemoryStore) Save(ctx context.Context, tasks []task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tasks = clone(tasks)
	return nil
}

// Tasks returns a copy of the current contents.
func (m *MemoryStore) Tasks() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clone(m.tasks)
}

// Loads returns how many times Load was called.
func (m *MemoryStore) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// Saves returns how many times Save was called, including failed calls.
func (m *MemoryStore) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func clone(tasks []task.Task) []task.Task {
	out := make([]task.Task, len(tasks))
	copy(out, tasks)
	return out
}

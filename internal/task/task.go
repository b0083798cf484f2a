package task

import "time"

// CreatedAtLayout is the format of Task.CreatedAt.
const CreatedAtLayout = time.RFC3339

// Task represents a to-do task.
type Task struct {
	ID          int    `json:"id"`          // Position in the list, 1-based
	Description string `json:"description"` // Stored verbatim
	CreatedAt   string `json:"created_at"`  // RFC 3339, never rewritten
	Done        bool   `json:"done"`
}

// New creates a pending task with the given id.
func New(id int, description string, now time.Time) Task {
	return Task{
		ID:          id,
		Description: description,
		CreatedAt:   now.UTC().Format(CreatedAtLayout),
	}
}

// MarkDone marks the task as completed. There is no way back.
func (t *Task) MarkDone() {
	t.Done = true
}

// Mark returns the checkbox mark used when listing the task.
func (t Task) Mark() string {
	if t.Done {
		return "x"
	}
	return " "
}

package task

import "time"

// Ids are positions, not handles: Remove renumbers everything after the
// removed task, so an id seen before a delete may point elsewhere after it.

// Append adds a new pending task at the end of tasks with id len(tasks)+1.
func Append(tasks []Task, description string, now time.Time) ([]Task, Task) {
	t := New(len(tasks)+1, description, now)
	return append(tasks, t), t
}

// Find returns the first task with the given id, or nil.
func Find(tasks []Task, id int) *Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}

// Remove deletes the first task with the given id and renumbers the rest.
// It reports whether a task was removed. The list is renumbered either way.
func Remove(tasks []Task, id int) ([]Task, bool) {
	removed := false
	for i, t := range tasks {
		if t.ID == id {
			tasks = append(tasks[:i], tasks[i+1:]...)
			removed = true
			break
		}
	}
	Renumber(tasks)
	return tasks, removed
}

// Renumber assigns ids 1..N in list order.
func Renumber(tasks []Task) {
	for i := range tasks {
		tasks[i].ID = i + 1
	}
}

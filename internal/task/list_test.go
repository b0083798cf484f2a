package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)

func addAll(descriptions ...string) []Task {
	var tasks []Task
	for _, d := range descriptions {
		tasks, _ = Append(tasks, d, testNow)
	}
	return tasks
}

func TestAppend_AssignsDenseIDsInOrder(t *testing.T) {
	tasks := addAll("a", "b", "c", "d", "e")

	require.Len(t, tasks, 5)
	for i, tk := range tasks {
		assert.Equal(t, i+1, tk.ID)
		assert.False(t, tk.Done)
	}
	assert.Equal(t, "c", tasks[2].Description)
}

func TestAppend_ReturnsCreatedTask(t *testing.T) {
	tasks, created := Append(addAll("first"), "Buy milk", testNow)

	assert.Equal(t, 2, created.ID)
	assert.Equal(t, "Buy milk", created.Description)
	assert.Equal(t, "2024-03-09T14:30:00Z", created.CreatedAt)
	assert.Equal(t, created, tasks[1])
}

func TestNew_FormatsCreatedAtInUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	tk := New(1, "x", time.Date(2024, 3, 9, 16, 30, 0, 0, loc))

	assert.Equal(t, "2024-03-09T14:30:00Z", tk.CreatedAt)
}

func TestFind(t *testing.T) {
	tasks := addAll("a", "b")

	found := Find(tasks, 2)
	require.NotNil(t, found)
	assert.Equal(t, "b", found.Description)

	found.MarkDone()
	assert.True(t, tasks[1].Done, "Find must return a pointer into the slice")

	assert.Nil(t, Find(tasks, 3))
	assert.Nil(t, Find(nil, 1))
}

func TestMarkDone_Idempotent(t *testing.T) {
	tk := New(1, "a", testNow)
	tk.MarkDone()
	tk.MarkDone()

	assert.True(t, tk.Done)
	assert.Equal(t, "x", tk.Mark())
	assert.Equal(t, " ", New(2, "b", testNow).Mark())
}

func TestRemove_RenumbersRemaining(t *testing.T) {
	tasks := addAll("first", "second", "third")

	tasks, removed := Remove(tasks, 2)

	assert.True(t, removed)
	require.Len(t, tasks, 2)
	assert.Equal(t, 1, tasks[0].ID)
	assert.Equal(t, "first", tasks[0].Description)
	assert.Equal(t, 2, tasks[1].ID)
	assert.Equal(t, "third", tasks[1].Description)
}

func TestRemove_MissingIDIsNoop(t *testing.T) {
	tasks := addAll("a", "b")

	tasks, removed := Remove(tasks, 7)

	assert.False(t, removed)
	assert.Len(t, tasks, 2)

	empty, removed := Remove(nil, 1)
	assert.False(t, removed)
	assert.Empty(t, empty)
}

func TestRemove_RepairsGaps(t *testing.T) {
	tasks := []Task{{ID: 4, Description: "a"}, {ID: 9, Description: "b"}, {ID: 12, Description: "c"}}

	tasks, removed := Remove(tasks, 9)

	assert.True(t, removed)
	assert.Equal(t, []int{1, 2}, []int{tasks[0].ID, tasks[1].ID})
	assert.Equal(t, "c", tasks[1].Description)
}

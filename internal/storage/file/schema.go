package file

import (
	_ "embed"
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/tiwariParth/go-task-cli/internal/storage"
	"github.com/tiwariParth/go-task-cli/internal/task"
)

//go:embed schema.json
var schemaJSON string

var taskListSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// decodeTasks parses a stored task list. Anything that is not a JSON array
// of complete task objects is a KindParse error.
func decodeTasks(path string, data []byte) ([]task.Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &storage.Error{Kind: storage.KindParse, Op: "parsing tasks storage", Path: path, Err: err}
	}

	if err := taskListSchema.Validate(doc); err != nil {
		return nil, &storage.Error{Kind: storage.KindParse, Op: "validating tasks storage", Path: path, Err: err}
	}

	tasks := []task.Task{}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, &storage.Error{Kind: storage.KindParse, Op: "decoding tasks storage", Path: path, Err: err}
	}
	return tasks, nil
}

// encodeTasks renders tasks with 2-space indentation and a trailing newline.
func encodeTasks(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return append(data, '\n'), nil
}

package file

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-task-cli/internal/storage"
	"github.com/tiwariParth/go-task-cli/internal/task"
)

// DefaultPath is the storage file used when none is configured, relative to
// the working directory.
const DefaultPath = "tasks.json"

const fileMode os.FileMode = 0644

var _ storage.Storage = (*FileStore)(nil)

// FileStore implements the storage.Storage interface on a single JSON file.
// The file is read whole on Load and replaced whole on Save.
type FileStore struct {
	filePath string
	logger   *log.Logger
}

// Option configures a FileStore.
type Option func(*FileStore)

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(f *FileStore) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFileStore creates a new instance of FileStore. An empty filePath means DefaultPath.
func NewFileStore(filePath string, opts ...Option) *FileStore {
	if filePath == "" {
		filePath = DefaultPath
	}
	f := &FileStore{
		filePath: filePath,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.filePath
}

// Load reads the task list, creating an empty file if none exists.
// Content that is not a task list loads as no tasks.
func (f *FileStore) Load(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(f.filePath, os.O_RDWR|os.O_CREATE, fileMode)
	if err != nil {
		return nil, f.ioError("opening tasks storage", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, f.ioError("reading tasks storage", err)
	}

	if len(data) == 0 {
		f.logger.Debug("storage is empty", "path", f.filePath)
		return []task.Task{}, nil
	}

	tasks, err := decodeTasks(f.filePath, data)
	if err != nil {
		if storage.IsKind(err, storage.KindParse) {
			f.logger.Debug("treating unparseable storage as empty", "path", f.filePath, "err", err)
			return []task.Task{}, nil
		}
		return nil, err
	}

	f.logger.Debug("loaded tasks", "path", f.filePath, "count", len(tasks))
	return tasks, nil
}

// Save replaces the file contents with tasks. The new contents are written
// to a temp file next to the target and renamed over it.
func (f *FileStore) Save(ctx context.Context, tasks []task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeTasks(tasks)
	if err != nil {
		return f.ioError("saving tasks", err)
	}

	if err := atomicWriteFile(f.filePath, data, fileMode); err != nil {
		return f.ioError("writing tasks storage", err)
	}

	f.logger.Debug("saved tasks", "path", f.filePath, "count", len(tasks), "bytes", len(data))
	return nil
}

func (f *FileStore) ioError(op string, err error) error {
	return &storage.Error{Kind: storage.KindIO, Op: op, Path: f.filePath, Err: err}
}

// atomicWriteFile writes content to path by writing to a temp file in the same directory
// and then renaming it over the destination.
func atomicWriteFile(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

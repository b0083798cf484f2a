package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tiwariParth/go-task-cli/internal/storage"
	"github.com/tiwariParth/go-task-cli/internal/task"
)

// Styles decorates parts of the output. The zero value prints plain text.
type Styles struct {
	Mark     func(a ...interface{}) string // the x or space in a list line
	NotFound func(a ...interface{}) string // the "Task N not found" notice
}

func (s Styles) mark(v string) string {
	if s.Mark == nil {
		return v
	}
	return s.Mark(v)
}

func (s Styles) notFound(v string) string {
	if s.NotFound == nil {
		return v
	}
	return s.NotFound(v)
}

// TodoApp executes commands against a storage.Storage. Every command loads
// the full list, applies one change and saves the full list back.
type TodoApp struct {
	store  storage.Storage
	out    io.Writer
	now    func() time.Time
	logger *log.Logger
	styles Styles
}

// Option configures a TodoApp.
type Option func(*TodoApp)

// WithClock sets the time source for new tasks.
func WithClock(now func() time.Time) Option {
	return func(a *TodoApp) { a.now = now }
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(a *TodoApp) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStyles sets the output styles.
func WithStyles(styles Styles) Option {
	return func(a *TodoApp) { a.styles = styles }
}

func NewTodoApp(store storage.Storage, out io.Writer, opts ...Option) *TodoApp {
	app := &TodoApp{
		store:  store,
		out:    out,
		now:    time.Now,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(app)
	}
	return app
}

// Execute runs one command.
func (app *TodoApp) Execute(ctx context.Context, cmd Command) error {
	app.logger.Debug("executing command", "command", fmt.Sprintf("%T", cmd))

	switch c := cmd.(type) {
	case Add:
		return app.AddTask(ctx, c.Description)
	case List:
		return app.ListTasks(ctx)
	case Done:
		return app.MarkDone(ctx, c.ID)
	case Delete:
		return app.DeleteTask(ctx, c.ID)
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

// AddTask appends a task with the next id and saves.
func (app *TodoApp) AddTask(ctx context.Context, description string) error {
	tasks, err := app.load(ctx)
	if err != nil {
		return err
	}

	tasks, created := task.Append(tasks, description, app.now())
	if err := app.store.Save(ctx, tasks); err != nil {
		return fmt.Errorf("saving tasks after Add: %w", err)
	}

	fmt.Fprintf(app.out, "Added task %d\n", created.ID)
	return nil
}

// ListTasks prints one line per task in stored order. Nothing is saved.
func (app *TodoApp) ListTasks(ctx context.Context) error {
	tasks, err := app.load(ctx)
	if err != nil {
		return err
	}

	for _, t := range tasks {
		fmt.Fprintf(app.out, "%d. [%s] %s (created %s)\n", t.ID, app.styles.mark(t.Mark()), t.Description, t.CreatedAt)
	}
	return nil
}

// MarkDone completes the task with the given id. A missing id is reported,
// not returned as an error, and nothing is saved.
func (app *TodoApp) MarkDone(ctx context.Context, id int) error {
	tasks, err := app.load(ctx)
	if err != nil {
		return err
	}

	t := task.Find(tasks, id)
	if t == nil {
		fmt.Fprintln(app.out, app.styles.notFound(fmt.Sprintf("Task %d not found", id)))
		return nil
	}

	t.MarkDone()
	if err := app.store.Save(ctx, tasks); err != nil {
		return fmt.Errorf("saving tasks after Done: %w", err)
	}

	fmt.Fprintf(app.out, "Marked task %d done\n", id)
	return nil
}

// DeleteTask removes the task with the given id, renumbers the rest and
// saves. It saves and reports success even when no task matched.
func (app *TodoApp) DeleteTask(ctx context.Context, id int) error {
	tasks, err := app.load(ctx)
	if err != nil {
		return err
	}

	tasks, removed := task.Remove(tasks, id)
	app.logger.Debug("delete", "id", id, "removed", removed, "remaining", len(tasks))

	if err := app.store.Save(ctx, tasks); err != nil {
		return fmt.Errorf("saving tasks after Delete: %w", err)
	}

	fmt.Fprintf(app.out, "Deleted task %d\n", id)
	return nil
}

func (app *TodoApp) load(ctx context.Context) ([]task.Task, error) {
	tasks, err := app.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading tasks from storage: %w", err)
	}
	return tasks, nil
}

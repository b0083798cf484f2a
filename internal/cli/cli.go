package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tiwariParth/go-task-cli/internal/app"
	"github.com/tiwariParth/go-task-cli/internal/config"
	"github.com/tiwariParth/go-task-cli/internal/logging"
	"github.com/tiwariParth/go-task-cli/internal/storage/file"
)

// Version is reported by --version.
const Version = "0.10.0"

// CLI represents the command-line interface.
type CLI struct {
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// NewCLI initializes a new CLI.
func NewCLI(stdout, stderr io.Writer) *CLI {
	return &CLI{Stdout: stdout, Stderr: stderr, Getenv: os.Getenv}
}

type rootOptions struct {
	configPath string
	file       string
	logLevel   string
	logFormat  string
}

// Run executes the CLI based on the provided arguments. It runs exactly one
// command; the error it returns is meant for PrintError.
func (c *CLI) Run(ctx context.Context, args []string) error {
	root := c.newRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// PrintError reports err on stderr as "Error: <message>".
func (c *CLI) PrintError(err error) {
	p := newPalette(c.Stderr, c.getenv)
	fmt.Fprintf(c.Stderr, "%s %v\n", p.Red("Error:"), err)
}

func (c *CLI) getenv(key string) string {
	if c.Getenv == nil {
		return ""
	}
	return c.Getenv(key)
}

func (c *CLI) newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var todo *app.TodoApp

	root := &cobra.Command{
		Use:           "task",
		Short:         "A command-line task manager",
		Long:          `Add, list, complete and delete tasks stored in a JSON file (tasks.json by default).`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			todo, err = c.setup(cmd, opts)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("no command provided")
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(c.Stdout)
	root.SetErr(c.Stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (default "+config.DefaultConfigFile+" if present)")
	flags.StringVarP(&opts.file, "file", "f", config.DefaultFile, "Task storage file")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", config.DefaultLogFormat, "Log format: text, json, logfmt")

	root.AddCommand(
		&cobra.Command{
			Use:   "add <description>",
			Short: "Add a new task",
			Long:  `Add a new task. Multiple arguments are joined with spaces.`,
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return todo.Execute(cmd.Context(), app.Add{Description: strings.Join(args, " ")})
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all tasks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return todo.Execute(cmd.Context(), app.List{})
			},
		},
		&cobra.Command{
			Use:   "done <id>",
			Short: "Mark a task as done",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return todo.Execute(cmd.Context(), app.Done{ID: id})
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a task",
			Long:  `Delete a task. Remaining tasks are renumbered 1..N, so ids shift after a delete.`,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return todo.Execute(cmd.Context(), app.Delete{ID: id})
			},
		},
	)

	return root
}

// setup resolves configuration and wires logger, storage and handler.
func (c *CLI) setup(cmd *cobra.Command, opts *rootOptions) (*app.TodoApp, error) {
	cfg, err := config.Load(opts.configPath, c.getenv)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	for name, value := range map[string]string{
		"file":       opts.file,
		"log_level":  opts.logLevel,
		"log_format": opts.logFormat,
	} {
		if flags.Changed(strings.ReplaceAll(name, "_", "-")) {
			if err := cfg.SetFlag(name, value); err != nil {
				return nil, err
			}
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(c.Stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	logger.Debug("resolved storage file", "path", cfg.File, "source", cfg.Sources["file"])

	p := newPalette(c.Stdout, c.getenv)
	store := file.NewFileStore(cfg.File, file.WithLogger(logger))
	return app.NewTodoApp(store, c.Stdout,
		app.WithLogger(logger),
		app.WithStyles(app.Styles{Mark: p.Green, NotFound: p.Yellow}),
	), nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid task ID %q: must be a non-negative integer", arg)
	}
	return id, nil
}

package main

import (
	"context"
	"os"

	"github.com/tiwariParth/go-task-cli/internal/cli"
)

func main() {
	app := cli.NewCLI(os.Stdout, os.Stderr)

	// One command per process: load, apply, save, report
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		app.PrintError(err)
		os.Exit(1)
	}
}

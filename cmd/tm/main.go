package main

import (
	"context"
	"fmt"
	"os"

	"task-manager/internal/cli"
	"task-manager/internal/config"
)

func main() {
	// Configuration cascade: defaults, config file, environment, flags.
	loader := config.NewLoader()

	// The root command owns the logger and the selected store; Run
	// releases both on every exit path, including command errors.
	root := cli.NewRootCommand(loader)

	if err := root.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/store"
)

// RootCommand represents the base command when called without any subcommands.
// It owns the process-wide resources: the logger and the selected store are
// created before the first subcommand runs and released by Close.
type RootCommand struct {
	cmd    *cobra.Command
	loader *config.Loader
	config *config.Config
	logger *logging.Logger
	store  store.Store
	app    *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(loader *config.Loader) *RootCommand {
	root := &RootCommand{
		loader: loader,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A minimal task manager with pluggable storage",
		Long: `Task Manager (tm) tracks a list of tasks with create, list and delete
operations over a pluggable storage backend.

STORAGE:
  Tasks live either in process memory (lost on exit) or in a SQLite
  database file (survives restarts). The backend is selected once at
  startup, via config file, environment or the --backend flag.

EXAMPLES:
  tm add "Buy milk"              # Add a task
  tm list                        # List all tasks
  tm delete 3                    # Delete task with ID 3
  tm tui                         # Interactive terminal interface
  tm --backend memory tui        # Throwaway in-memory session

CONFIGURATION:
  Priority order: command-line flags > environment variables > config
  file (~/.tm/config.toml) > defaults

    TM_STORAGE_BACKEND           Storage backend: memory or sqlite (default: sqlite)
    TM_DB_DIR                    Database directory (default: ~/.tm)
    TM_DB_FILENAME               Database filename (default: tasks.db)
    TM_LOG_DIR                   Log directory (default: ~/.tm)
    TM_LOG_FILENAME              Log filename (default: tm.log)
    TM_LOG_LEVEL                 Log level: debug, info, warn, error (default: info)
    TM_APP_TIMEOUT               Application timeout (default: 60s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Run executes the root command with the given arguments, releasing the
// store and logger on every exit path.
func (r *RootCommand) Run(ctx context.Context, args []string) error {
	defer r.Close()

	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// Close releases the store and the logger. Safe to call more than once;
// the release itself happens exactly once.
func (r *RootCommand) Close() error {
	var firstErr error
	if r.store != nil {
		firstErr = r.store.Close()
		r.store = nil
	}
	if r.logger != nil {
		if err := r.logger.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		r.logger = nil
	}
	return firstErr
}

// setup resolves configuration, initializes logging and creates the
// selected store. Runs once, before any subcommand.
func (r *RootCommand) setup() error {
	cfg, err := r.loader.LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return err
	}
	r.config = cfg

	logger, err := logging.New(cfg.GetLogPath(), logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return err
	}
	r.logger = logger

	s, err := config.CreateStore(cfg, logger.Logger)
	if err != nil {
		return err
	}
	r.store = s

	r.app = NewApp(s, logger.Logger, cfg)
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("backend", "", "Storage backend: memory or sqlite (overrides TM_STORAGE_BACKEND)")
	flags.String("db-dir", "", "Database directory (overrides TM_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TM_DB_FILENAME)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
	flags.Duration("timeout", 0, "Application timeout (overrides TM_APP_TIMEOUT)")
}

// overridesFromFlags collects the flag values that were actually set
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if backend, _ := flags.GetString("backend"); backend != "" {
		overrides.Backend = &backend
	}
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		overrides.DBDir = &dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		overrides.DBFilename = &dbFilename
	}
	if logLevel, _ := flags.GetString("log-level"); logLevel != "" {
		overrides.LogLevel = &logLevel
	}
	if timeout, _ := flags.GetDuration("timeout"); timeout > 0 {
		overrides.Timeout = &timeout
	}

	return overrides
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [description]",
		Short: "Add a new task",
		Long:  "Add a new task with the given description. The store assigns the task ID.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.appTimeout())
			defer cancel()

			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all tasks",
		Long:  "List all tasks currently in the store, one per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.appTimeout())
			defer cancel()

			return NewListCommand(r.app).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a task by ID",
		Long:  "Delete the task with the given ID. Deleting an unknown ID is not an error.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), r.appTimeout())
			defer cancel()

			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive terminal interface",
		Long: `Open a full-screen terminal interface with the task list, an input
field for new tasks and delete with confirmation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The TUI runs until the user quits; no timeout applies.
			return NewTuiCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		deleteCmd,
		tuiCmd,
	)
}

// appTimeout returns the configured application timeout
func (r *RootCommand) appTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

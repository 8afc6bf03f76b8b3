// Package sqlite provides a SQLite-backed task store. The database file
// survives restarts; ":memory:" gives an ephemeral database for tests.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"log/slog"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/store"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// SQLiteStore implements the store.Store interface on top of database/sql.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

var _ store.Store = (*SQLiteStore)(nil)

// New opens the database at dbPath and idempotently ensures the schema
// exists. A nil logger disables store-level debug events. The caller owns
// the returned store and must Close it exactly once.
func New(dbPath string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	// The store has a single logical owner; one connection also keeps
	// ":memory:" databases from being split across the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, errors.NewStorageError("ensure schema", err)
	}

	logger.Info("sqlite store initialized", "path", dbPath)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// AddTask inserts the task's description and writes the engine-assigned
// primary key back onto the task. IDs are never reused within one
// database, regardless of intervening deletions.
func (s *SQLiteStore) AddTask(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (description) VALUES (?)`

	id, err := ExecuteWithLastInsertID(ctx, s.db, query, task.Description)
	if err != nil {
		return err
	}

	task.ID = id
	s.logger.Debug("task added to sqlite store", "id", task.ID, "description", task.Description)
	return nil
}

// ListTasks retrieves all tasks ordered by primary key ascending.
func (s *SQLiteStore) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT id, description FROM tasks ORDER BY id ASC`

	return QueryMultiple(ctx, s.db, query, ScanTasks, "tasks")
}

// DeleteTask deletes the task with the given ID. A missing row is not an
// error; the operation is idempotent.
func (s *SQLiteStore) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`

	if err := Execute(ctx, s.db, query, id); err != nil {
		return err
	}

	s.logger.Debug("task deleted from sqlite store", "id", id)
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

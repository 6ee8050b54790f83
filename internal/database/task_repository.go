package database

import (
	"context"
	"database/sql"
	"sync/atomic"

	"github.com/thenoetrevino/cofre/internal/models"
)

// TaskRepo is the sqlite-backed task store.
// A repo starts uninitialized; EnsureSchema moves it to ready, and every
// other method panics until then.
type TaskRepo struct {
	db    *sql.DB
	ready atomic.Bool
}

// NewTaskRepo wraps db without touching the schema.
func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{db: db}
}

// OpenTaskRepo wraps db and bootstraps the schema in one step.
func OpenTaskRepo(ctx context.Context, db *sql.DB) (*TaskRepo, error) {
	r := NewTaskRepo(db)
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// EnsureSchema creates the tasks table if needed and marks the repo ready.
func (r *TaskRepo) EnsureSchema(ctx context.Context) error {
	if err := EnsureSchema(ctx, r.db); err != nil {
		return err
	}
	r.ready.Store(true)
	return nil
}

// Ready reports whether EnsureSchema has succeeded on this repo.
func (r *TaskRepo) Ready() bool {
	return r.ready.Load()
}

func (r *TaskRepo) mustBeReady() {
	if !r.ready.Load() {
		panic("database: TaskRepo used before EnsureSchema")
	}
}

// CreateTask inserts a task and returns it with the id the store assigned
func (r *TaskRepo) CreateTask(ctx context.Context, title, description string) (*models.Task, error) {
	r.mustBeReady()

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description) VALUES (?, ?)`,
		title, description,
	)
	if err != nil {
		return nil, models.NewStorageError("insert task", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, models.NewStorageError("insert task", err)
	}

	return &models.Task{
		ID:          int(id),
		Title:       title,
		Description: description,
	}, nil
}

// GetAllTasks returns every task in primary-key order.
// An empty table yields an empty, non-nil slice.
func (r *TaskRepo) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	r.mustBeReady()

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, description FROM tasks ORDER BY id`,
	)
	if err != nil {
		return nil, models.NewStorageError("list tasks", err)
	}
	defer rows.Close()

	tasks := []*models.Task{}
	for rows.Next() {
		task := &models.Task{}
		if err := rows.Scan(&task.ID, &task.Title, &task.Description); err != nil {
			return nil, models.NewStorageError("list tasks", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, models.NewStorageError("list tasks", err)
	}

	return tasks, nil
}

// DeleteTask removes the task with the given id.
// Deleting an id that does not exist is a no-op.
func (r *TaskRepo) DeleteTask(ctx context.Context, id int) error {
	r.mustBeReady()

	if _, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return models.NewStorageError("delete task", err)
	}
	return nil
}

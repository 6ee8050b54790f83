package database

import (
	"context"

	"github.com/thenoetrevino/cofre/internal/models"
)

// TaskReader defines read operations for tasks.
type TaskReader interface {
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
}

// TaskWriter defines write operations for tasks.
// There is no update: a task can only be created or deleted.
type TaskWriter interface {
	CreateTask(ctx context.Context, title, description string) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) error
}

// TaskRepository combines all task-related operations.
type TaskRepository interface {
	TaskReader
	TaskWriter
}

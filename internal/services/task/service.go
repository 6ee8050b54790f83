package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/cofre/internal/database"
	"github.com/thenoetrevino/cofre/internal/models"
)

const maxTitleLength = 255

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListTasks(ctx context.Context) ([]*models.Task, error)

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
}

// service implements Service interface
type service struct {
	repo   database.TaskRepository
	logger *slog.Logger
}

// NewService creates a new task service.
// repo must already be bootstrapped.
func NewService(repo database.TaskRepository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// CreateTask validates and stores a new task
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.validateCreateTask(req); err != nil {
		return nil, err
	}

	task, err := s.repo.CreateTask(ctx, req.Title, req.Description)
	if err != nil {
		s.logger.Debug("task insert failed", "title", req.Title, "error", err)
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.logger.Debug("task created", "task_id", task.ID)
	return task, nil
}

// ListTasks returns all tasks in insertion order
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repo.GetAllTasks(ctx)
	if err != nil {
		s.logger.Debug("task list failed", "error", err)
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// DeleteTask removes a task. A task that no longer exists is not an error.
func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}

	if err := s.repo.DeleteTask(ctx, taskID); err != nil {
		s.logger.Debug("task delete failed", "task_id", taskID, "error", err)
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}

	s.logger.Debug("task deleted", "task_id", taskID)
	return nil
}

func (s *service) validateCreateTask(req CreateTaskRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrEmptyTitle
	}
	if len(req.Title) > maxTitleLength {
		return ErrTitleTooLong
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

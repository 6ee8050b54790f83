package task

import "errors"

// Task validation errors
var (
	ErrEmptyTitle       = errors.New("task title cannot be empty")
	ErrTitleTooLong     = errors.New("task title cannot exceed 255 characters")
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrInvalidTaskID    = errors.New("invalid task ID")
)

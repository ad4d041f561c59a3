package analysis

import "errors"

// Domain-specific errors for the analysis package.
var (
	ErrNoTasks   = errors.New("task list is empty")
	ErrEmptyTask = errors.New("task has no name")
	ErrEmptyText = errors.New("text is empty")
	ErrBadDate   = errors.New("invalid reference date")
)

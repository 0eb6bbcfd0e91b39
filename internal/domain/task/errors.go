package task

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrNotTaskOwner = errors.New("only the task owner or HR may update this task")
)

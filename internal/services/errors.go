package services

import "errors"

var (
	// ErrScopeNotFound: the requested project or user does not exist.
	ErrScopeNotFound = errors.New("scope not found")

	// ErrInvalidDateRange: unparseable bound, or start after end.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrWorkItemNotFound: time write against a missing task/subtask.
	ErrWorkItemNotFound = errors.New("work item not found")
)

// internal/models/task.go
package models

import (
	"time"

	"taskboard/internal/duration"
)

// Status defines the possible statuses for a work item.
type Status string

const (
	StatusToDo       Status = "to_do"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusBlocked    Status = "blocked"
	StatusArchived   Status = "archived"
)

// DisplayName returns the human-readable status label used in reports.
func (s Status) DisplayName() string {
	switch s {
	case StatusToDo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusBlocked:
		return "Blocked"
	case StatusArchived:
		return "Archived"
	}
	return string(s)
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Task represents a top-level work item in a project.
// Archived is independent of Status: a task may be archived
// while its status is anything.
type Task struct {
	ID          int64            `json:"id"`
	ProjectID   int64            `json:"project_id"`
	OwnerID     int64            `json:"owner_id"`
	AssigneeIDs []int64          `json:"assignee_ids"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Priority    Priority         `json:"priority"`
	Status      Status           `json:"status"`
	TimeTaken   duration.Minutes `json:"time_taken_minutes"`
	Archived    bool             `json:"archived"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

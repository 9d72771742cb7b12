// internal/models/subtask.go
package models

import (
	"time"

	"taskboard/internal/duration"
)

// Subtask belongs to exactly one parent task. It carries the same
// field set as Task plus the parent reference; the report pipeline
// normalizes both kinds into WorkItem at the query boundary.
type Subtask struct {
	ID           int64            `json:"id"`
	ParentTaskID int64            `json:"parent_task_id"`
	ProjectID    int64            `json:"project_id"`
	OwnerID      int64            `json:"owner_id"`
	AssigneeIDs  []int64          `json:"assignee_ids"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Priority     Priority         `json:"priority"`
	Status       Status           `json:"status"`
	TimeTaken    duration.Minutes `json:"time_taken_minutes"`
	Archived     bool             `json:"archived"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

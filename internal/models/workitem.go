// internal/models/workitem.go
package models

import (
	"time"

	"taskboard/internal/duration"
)

type WorkItemKind string

const (
	KindTask    WorkItemKind = "task"
	KindSubtask WorkItemKind = "subtask"
)

// WorkItem is the normalized shape shared by tasks and subtasks.
// Aggregation and rendering only ever see this; each concrete kind
// maps into it once, at the query-builder boundary.
type WorkItem struct {
	ID           int64
	Kind         WorkItemKind
	ParentTaskID int64 // zero for tasks
	ProjectID    int64
	OwnerID      int64
	AssigneeIDs  []int64
	Title        string
	Priority     Priority
	Status       Status
	TimeTaken    duration.Minutes
	Archived     bool
	CreatedAt    time.Time
}

// AsWorkItem maps a task into the normalized shape.
func (t Task) AsWorkItem() WorkItem {
	return WorkItem{
		ID:          t.ID,
		Kind:        KindTask,
		ProjectID:   t.ProjectID,
		OwnerID:     t.OwnerID,
		AssigneeIDs: t.AssigneeIDs,
		Title:       t.Title,
		Priority:    t.Priority,
		Status:      t.Status,
		TimeTaken:   t.TimeTaken,
		Archived:    t.Archived,
		CreatedAt:   t.CreatedAt,
	}
}

// AsWorkItem maps a subtask into the normalized shape.
func (s Subtask) AsWorkItem() WorkItem {
	return WorkItem{
		ID:           s.ID,
		Kind:         KindSubtask,
		ParentTaskID: s.ParentTaskID,
		ProjectID:    s.ProjectID,
		OwnerID:      s.OwnerID,
		AssigneeIDs:  s.AssigneeIDs,
		Title:        s.Title,
		Priority:     s.Priority,
		Status:       s.Status,
		TimeTaken:    s.TimeTaken,
		Archived:     s.Archived,
		CreatedAt:    s.CreatedAt,
	}
}

// internal/services/task_service.go
package services

import (
	"context"
	"fmt"

	"taskboard/internal/duration"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// TaskService covers the one write this subsystem owns, the time-taken
// field, plus the hierarchy-inclusive total for a single task.
type TaskService interface {
	LogTaskTime(ctx context.Context, id int64, raw string) (*models.Task, error)
	LogSubtaskTime(ctx context.Context, id int64, raw string) (*models.Subtask, error)
	HierarchyTotal(ctx context.Context, taskID int64) (duration.Minutes, error)
}

type taskService struct {
	tasks    repositories.TaskRepository
	subtasks repositories.SubtaskRepository
}

func NewTaskService(tasks repositories.TaskRepository, subtasks repositories.SubtaskRepository) TaskService {
	return &taskService{tasks: tasks, subtasks: subtasks}
}

// LogTaskTime validates the raw text against the duration grammar and
// persists the parsed minutes. Validation failures reject the write
// before any store access.
func (s *taskService) LogTaskTime(ctx context.Context, id int64, raw string) (*models.Task, error) {
	minutes, err := duration.Parse(raw)
	if err != nil {
		return nil, err
	}
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch task: %w", err)
	}
	if task == nil {
		return nil, fmt.Errorf("%w: task %d", ErrWorkItemNotFound, id)
	}
	if err := s.tasks.UpdateTimeTaken(ctx, id, minutes); err != nil {
		return nil, fmt.Errorf("update task time: %w", err)
	}
	task.TimeTaken = minutes
	return task, nil
}

func (s *taskService) LogSubtaskTime(ctx context.Context, id int64, raw string) (*models.Subtask, error) {
	minutes, err := duration.Parse(raw)
	if err != nil {
		return nil, err
	}
	subtask, err := s.subtasks.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch subtask: %w", err)
	}
	if subtask == nil {
		return nil, fmt.Errorf("%w: subtask %d", ErrWorkItemNotFound, id)
	}
	if err := s.subtasks.UpdateTimeTaken(ctx, id, minutes); err != nil {
		return nil, fmt.Errorf("update subtask time: %w", err)
	}
	subtask.TimeTaken = minutes
	return subtask, nil
}

// HierarchyTotal returns the task's own minutes plus its non-archived
// subtasks' minutes.
func (s *taskService) HierarchyTotal(ctx context.Context, taskID int64) (duration.Minutes, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("fetch task: %w", err)
	}
	if task == nil {
		return 0, fmt.Errorf("%w: task %d", ErrWorkItemNotFound, taskID)
	}
	subtasks, err := s.subtasks.FindByParentTask(ctx, taskID)
	if err != nil {
		return 0, fmt.Errorf("fetch subtasks: %w", err)
	}
	return SumHierarchy(*task, subtasks), nil
}

// internal/services/report_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

const dateLayout = "2006-01-02"

// ReportService resolves a report request into an aggregated report
// model. Read-only: nothing is written during a report run.
type ReportService interface {
	BuildReport(ctx context.Context, scope models.ReportScope, start, end string) (*models.Report, error)
}

type reportService struct {
	tasks    repositories.TaskRepository
	subtasks repositories.SubtaskRepository
	projects repositories.ProjectRepository
	users    repositories.UserRepository
}

func NewReportService(
	tasks repositories.TaskRepository,
	subtasks repositories.SubtaskRepository,
	projects repositories.ProjectRepository,
	users repositories.UserRepository,
) ReportService {
	return &reportService{tasks: tasks, subtasks: subtasks, projects: projects, users: users}
}

// parseDateRange validates the optional [start, end] pair.
// Both empty → no range. One bound without the other, an unparseable
// date, or start after end all fail with ErrInvalidDateRange.
func parseDateRange(start, end string) (*models.DateRange, error) {
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, fmt.Errorf("%w: both start and end are required", ErrInvalidDateRange)
	}
	from, err := time.Parse(dateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start date %q", ErrInvalidDateRange, start)
	}
	to, err := time.Parse(dateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end date %q", ErrInvalidDateRange, end)
	}
	if from.After(to) {
		return nil, fmt.Errorf("%w: start %s after end %s", ErrInvalidDateRange, start, end)
	}
	return &models.DateRange{Start: from, End: to}, nil
}

func (s *reportService) BuildReport(ctx context.Context, scope models.ReportScope, start, end string) (*models.Report, error) {
	scopeName, err := s.resolveScopeName(ctx, scope)
	if err != nil {
		return nil, err
	}

	rng, err := parseDateRange(start, end)
	if err != nil {
		return nil, err
	}

	items, err := s.fetchCandidates(ctx, scope)
	if err != nil {
		return nil, err
	}

	users, err := s.resolveUsers(ctx, items)
	if err != nil {
		return nil, err
	}

	agg := AggregateScope(items, users, scope, rng)

	report := &models.Report{
		ScopeKind:    scope.Kind,
		ScopeName:    scopeName,
		StatusCounts: agg.StatusCounts,
		TotalMinutes: agg.TotalMinutes,
		Empty:        len(agg.Items) == 0,
	}
	if rng != nil {
		report.StartDate = rng.Start.Format(dateLayout)
		report.EndDate = rng.End.Format(dateLayout)
	}

	for _, item := range agg.Items {
		row := models.ReportRow{
			ID:        item.ID,
			Kind:      item.Kind,
			Title:     item.Title,
			Status:    item.Status,
			Owner:     displayName(users, item.OwnerID),
			TimeTaken: item.TimeTaken,
			CreatedAt: item.CreatedAt,
		}
		for _, id := range item.AssigneeIDs {
			row.Assignees = append(row.Assignees, displayName(users, id))
		}
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// resolveScopeName checks the scope entity exists and returns its
// user-facing name. Departments are plain names, not store entities.
func (s *reportService) resolveScopeName(ctx context.Context, scope models.ReportScope) (string, error) {
	switch scope.Kind {
	case models.ScopeProject:
		p, err := s.projects.FindByID(ctx, scope.ProjectID)
		if err != nil {
			return "", fmt.Errorf("resolve project: %w", err)
		}
		if p == nil {
			return "", fmt.Errorf("%w: project %d", ErrScopeNotFound, scope.ProjectID)
		}
		return p.Name, nil
	case models.ScopeUser:
		u, err := s.users.FindByID(ctx, scope.UserID)
		if err != nil {
			return "", fmt.Errorf("resolve user: %w", err)
		}
		if u == nil {
			return "", fmt.Errorf("%w: user %d", ErrScopeNotFound, scope.UserID)
		}
		return u.DisplayName, nil
	case models.ScopeDepartment:
		return scope.Department, nil
	}
	return "", fmt.Errorf("%w: unknown scope kind %q", ErrScopeNotFound, scope.Kind)
}

// fetchCandidates loads tasks and subtasks for the scope and normalizes
// both kinds into the shared WorkItem shape. Department scope has no
// SQL-side predicate; the engine filters after user resolution.
func (s *reportService) fetchCandidates(ctx context.Context, scope models.ReportScope) ([]models.WorkItem, error) {
	var (
		tasks    []models.Task
		subtasks []models.Subtask
		err      error
	)
	switch scope.Kind {
	case models.ScopeProject:
		if tasks, err = s.tasks.FindByProject(ctx, scope.ProjectID); err == nil {
			subtasks, err = s.subtasks.FindByProject(ctx, scope.ProjectID)
		}
	case models.ScopeUser:
		if tasks, err = s.tasks.FindByUser(ctx, scope.UserID); err == nil {
			subtasks, err = s.subtasks.FindByUser(ctx, scope.UserID)
		}
	case models.ScopeDepartment:
		if tasks, err = s.tasks.FindAll(ctx); err == nil {
			subtasks, err = s.subtasks.FindAll(ctx)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("fetch work items: %w", err)
	}

	items := make([]models.WorkItem, 0, len(tasks)+len(subtasks))
	for _, t := range tasks {
		items = append(items, t.AsWorkItem())
	}
	for _, st := range subtasks {
		items = append(items, st.AsWorkItem())
	}
	return items, nil
}

// resolveUsers loads every owner and assignee referenced by the items.
func (s *reportService) resolveUsers(ctx context.Context, items []models.WorkItem) (map[int64]models.User, error) {
	seen := make(map[int64]bool)
	var ids []int64
	add := func(id int64) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, item := range items {
		add(item.OwnerID)
		for _, id := range item.AssigneeIDs {
			add(id)
		}
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve users: %w", err)
	}
	return users, nil
}

func displayName(users map[int64]models.User, id int64) string {
	if u, ok := users[id]; ok {
		return u.DisplayName
	}
	return fmt.Sprintf("user %d", id)
}

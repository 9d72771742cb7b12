// internal/services/aggregation.go
//
// Pure aggregation engine. No store access, no shared state; safe to
// call from any number of concurrent requests.
package services

import (
	"sort"
	"time"

	"taskboard/internal/duration"
	"taskboard/internal/models"
)

// ScopeAggregate is the result of aggregating work items over a scope.
type ScopeAggregate struct {
	TotalMinutes duration.Minutes
	StatusCounts map[models.Status]int
	Items        []models.WorkItem
}

// SumHierarchy returns a task's own minutes plus the minutes of its
// non-archived direct subtasks. Archived subtasks contribute nothing,
// whatever their status says.
func SumHierarchy(task models.Task, subtasks []models.Subtask) duration.Minutes {
	total := task.TimeTaken
	for _, s := range subtasks {
		if s.ParentTaskID != task.ID || s.Archived {
			continue
		}
		total += s.TimeTaken
	}
	return total
}

// MatchesScope reports whether an item belongs to the scope.
// Department matching resolves the owner and every assignee through
// the supplied user map; unknown users never match.
func MatchesScope(item models.WorkItem, users map[int64]models.User, scope models.ReportScope) bool {
	switch scope.Kind {
	case models.ScopeProject:
		return item.ProjectID == scope.ProjectID
	case models.ScopeUser:
		if item.OwnerID == scope.UserID {
			return true
		}
		for _, id := range item.AssigneeIDs {
			if id == scope.UserID {
				return true
			}
		}
		return false
	case models.ScopeDepartment:
		if u, ok := users[item.OwnerID]; ok && u.Department == scope.Department {
			return true
		}
		for _, id := range item.AssigneeIDs {
			if u, ok := users[id]; ok && u.Department == scope.Department {
				return true
			}
		}
		return false
	}
	return false
}

// endOfDay pins t to 23:59:59.999 on its calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 999_000_000, t.Location())
}

// inRange checks createdAt against the inclusive range.
func inRange(item models.WorkItem, r *models.DateRange) bool {
	if r == nil {
		return true
	}
	if item.CreatedAt.Before(r.Start) {
		return false
	}
	return !item.CreatedAt.After(endOfDay(r.End))
}

// AggregateScope filters items by scope and date range, drops archived
// ones, and sums each item's OWN minutes. Hierarchy totals are not used
// here: a subtask matched by the same filter would otherwise be counted
// twice. Matched items come back in descending createdAt order, ties
// broken by ascending id, so identical inputs always aggregate the same.
func AggregateScope(items []models.WorkItem, users map[int64]models.User, scope models.ReportScope, rng *models.DateRange) ScopeAggregate {
	agg := ScopeAggregate{StatusCounts: make(map[models.Status]int)}
	for _, item := range items {
		if item.Archived {
			continue
		}
		if !MatchesScope(item, users, scope) {
			continue
		}
		if !inRange(item, rng) {
			continue
		}
		agg.TotalMinutes += item.TimeTaken
		agg.StatusCounts[item.Status]++
		agg.Items = append(agg.Items, item)
	}

	sort.Slice(agg.Items, func(i, j int) bool {
		a, b := agg.Items[i], agg.Items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return agg
}

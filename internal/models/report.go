// internal/models/report.go
package models

import (
	"time"

	"taskboard/internal/duration"
)

// ScopeKind is the dimension a report is computed over.
type ScopeKind string

const (
	ScopeProject    ScopeKind = "project"
	ScopeUser       ScopeKind = "user"
	ScopeDepartment ScopeKind = "department"
)

type ReportFormat string

const (
	FormatPDF   ReportFormat = "pdf"
	FormatExcel ReportFormat = "excel"
)

// ReportScope names one project, one user, or one department.
type ReportScope struct {
	Kind       ScopeKind
	ProjectID  int64
	UserID     int64
	Department string
}

// DateRange is inclusive on both ends; End is normalized to
// end-of-day before any comparison.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ReportRow is one matched work item with its display-ready fields.
type ReportRow struct {
	ID        int64
	Kind      WorkItemKind
	Title     string
	Status    Status
	Owner     string
	Assignees []string
	TimeTaken duration.Minutes
	CreatedAt time.Time
}

// Report is the aggregation result handed to the renderer.
// Built fresh per request, never cached.
type Report struct {
	ScopeKind    ScopeKind
	ScopeName    string
	StartDate    string // ISO date, empty when no range was given
	EndDate      string
	StatusCounts map[Status]int
	TotalMinutes duration.Minutes
	Rows         []ReportRow

	// Empty marks the distinguished zero-match outcome. It is a
	// successful result; the handler must not render it.
	Empty bool
}

// TotalFormatted is the grand total as shown to the user.
func (r *Report) TotalFormatted() string {
	return r.TotalMinutes.String()
}

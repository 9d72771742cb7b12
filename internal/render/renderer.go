// internal/render/renderer.go
//
// Turns an aggregated report model into document bytes. Pure with
// respect to the rest of the system: callers get a complete buffer
// or an error, never a truncated file.
package render

import (
	"errors"
	"fmt"
	"strings"

	"taskboard/internal/models"
)

// ErrRenderFailure wraps any library or internal error while producing bytes.
var ErrRenderFailure = errors.New("render failure")

var reportColumns = []string{"Title", "Status", "Owner", "Assignees", "Time Taken"}

// Render produces the report document in the requested format.
func Render(report *models.Report, format models.ReportFormat) ([]byte, error) {
	switch format {
	case models.FormatPDF:
		return renderPDF(report)
	case models.FormatExcel:
		return renderExcel(report)
	}
	return nil, fmt.Errorf("%w: unsupported format %q", ErrRenderFailure, format)
}

func periodLabel(report *models.Report) string {
	if report.StartDate == "" {
		return "all time"
	}
	return report.StartDate + " to " + report.EndDate
}

func rowCells(row models.ReportRow) []string {
	return []string{
		row.Title,
		row.Status.DisplayName(),
		row.Owner,
		strings.Join(row.Assignees, ", "),
		row.TimeTaken.String(),
	}
}

// statusLines renders per-status counts in a fixed status order so the
// summary block is stable across runs.
func statusLines(report *models.Report) []string {
	order := []models.Status{
		models.StatusToDo, models.StatusInProgress, models.StatusCompleted,
		models.StatusBlocked, models.StatusArchived,
	}
	var lines []string
	for _, st := range order {
		if n, ok := report.StatusCounts[st]; ok && n > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d", st.DisplayName(), n))
		}
	}
	return lines
}

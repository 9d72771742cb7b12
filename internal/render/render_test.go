package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"taskboard/internal/models"
)

func sampleReport() *models.Report {
	return &models.Report{
		ScopeKind: models.ScopeProject,
		ScopeName: "Apollo",
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		StatusCounts: map[models.Status]int{
			models.StatusInProgress: 1,
			models.StatusCompleted:  1,
		},
		TotalMinutes: 180,
		Rows: []models.ReportRow{
			{
				ID: 2, Kind: models.KindTask, Title: "Write docs",
				Status: models.StatusCompleted, Owner: "Bob",
				TimeTaken: 60, CreatedAt: time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
			},
			{
				ID: 1, Kind: models.KindTask, Title: "Build API",
				Status: models.StatusInProgress, Owner: "Alice", Assignees: []string{"Bob", "Carol"},
				TimeTaken: 120, CreatedAt: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestRender_PDF(t *testing.T) {
	data, err := Render(sampleReport(), models.FormatPDF)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "buffer should be a complete PDF document")
	assert.Contains(t, string(data[len(data)-32:]), "%%EOF")
}

func TestRender_Excel(t *testing.T) {
	data, err := Render(sampleReport(), models.FormatExcel)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err, "buffer should be a readable workbook")
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.NotEmpty(t, rows)

	assert.Equal(t, []string{"Title", "Status", "Owner", "Assignees", "Time Taken"}, rows[0])
	assert.Equal(t, "Write docs", rows[1][0])
	assert.Equal(t, "Completed", rows[1][1])
	assert.Equal(t, "1 hour", rows[1][4])
	assert.Equal(t, "Bob, Carol", rows[2][3])

	// summary block carries the grand total
	flat := ""
	for _, r := range rows {
		for _, c := range r {
			flat += c + "\n"
		}
	}
	assert.Contains(t, flat, "Total time: 3 hours")
	assert.Contains(t, flat, "Project: Apollo")
	assert.Contains(t, flat, "Period: 2024-03-01 to 2024-03-31")
}

func TestRender_UnsupportedFormat(t *testing.T) {
	_, err := Render(sampleReport(), models.ReportFormat("csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRenderFailure)
}

func TestRender_AllTimePeriod(t *testing.T) {
	r := sampleReport()
	r.StartDate, r.EndDate = "", ""
	data, err := Render(r, models.FormatExcel)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	found := false
	for _, row := range rows {
		for _, c := range row {
			if c == "Period: all time" {
				found = true
			}
		}
	}
	assert.True(t, found)
}

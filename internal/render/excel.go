// internal/render/excel.go
package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"taskboard/internal/models"
)

const sheetName = "Report"

func renderExcel(report *models.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
	}

	header := make([]interface{}, len(reportColumns))
	widths := make([]float64, len(reportColumns))
	for i, col := range reportColumns {
		header[i] = col
		widths[i] = float64(len(col))
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
	}

	rowNum := 2
	for _, row := range report.Rows {
		cells := rowCells(row)
		values := make([]interface{}, len(cells))
		for i, c := range cells {
			values[i] = c
			if w := float64(len(c)); w > widths[i] {
				widths[i] = w
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
		}
		rowNum++
	}

	// Summary block below the table: scope, period, status counts, total.
	summary := []string{
		"",
		fmt.Sprintf("%s: %s", scopeLabel(report.ScopeKind), report.ScopeName),
		"Period: " + periodLabel(report),
	}
	summary = append(summary, statusLines(report)...)
	summary = append(summary,
		fmt.Sprintf("Total items: %d", len(report.Rows)),
		fmt.Sprintf("Total time: %s", report.TotalFormatted()),
	)
	for _, line := range summary {
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
		}
		if err := f.SetCellValue(sheetName, cell, line); err != nil {
			return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
		}
		rowNum++
	}

	// Auto-size columns to the widest cell, with a little padding.
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
		}
		if err := f.SetColWidth(sheetName, col, col, w+2); err != nil {
			return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: excel: %v", ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

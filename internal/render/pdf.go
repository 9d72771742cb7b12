// internal/render/pdf.go
package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"taskboard/internal/models"
)

const pdfFont = "Helvetica"

var pdfColWidths = []float64{60, 25, 30, 35, 20}

func renderPDF(report *models.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s report: %s", report.ScopeKind, report.ScopeName), true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Header
	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(0, 10, "Time Report", "", 1, "C", false, 0, "")
	pdf.SetFont(pdfFont, "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s: %s", scopeLabel(report.ScopeKind), report.ScopeName), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 7, "Period: "+periodLabel(report), "", 1, "C", false, 0, "")
	hr(pdf)
	pdf.Ln(3)

	// ===== Items
	pdf.SetFont(pdfFont, "B", 10)
	for i, col := range reportColumns {
		pdf.CellFormat(pdfColWidths[i], 7, col, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(pdfFont, "", 10)
	for _, row := range report.Rows {
		for i, cell := range rowCells(row) {
			pdf.CellFormat(pdfColWidths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(3)
	hr(pdf)

	// ===== Summary
	sectionTitle(pdf, "Summary")
	for _, line := range statusLines(report) {
		pdf.SetX(20)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	kvLine(pdf, "Total items", fmt.Sprintf("%d", len(report.Rows)))
	kvLine(pdf, "Total time", report.TotalFormatted())

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: pdf: %v", ErrRenderFailure, err)
	}
	return buf.Bytes(), nil
}

func scopeLabel(kind models.ScopeKind) string {
	switch kind {
	case models.ScopeProject:
		return "Project"
	case models.ScopeUser:
		return "User"
	case models.ScopeDepartment:
		return "Department"
	}
	return string(kind)
}

// === helpers ===

func sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(pdfFont, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 11)
}

func kvLine(pdf *gofpdf.Fpdf, key, val string) {
	pdf.SetFont(pdfFont, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 11)
	pdf.CellFormat(0, 6, val, "", 1, "L", false, 0, "")
}

func hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

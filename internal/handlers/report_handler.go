package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/models"
	"taskboard/internal/render"
	"taskboard/internal/services"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler struct {
	service services.ReportService
}

func NewReportHandler(service services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Generate handles GET /reports/:scope/:id.
//
// Each request walks validate → query → aggregate → render → respond.
// Parameter problems are rejected here, before any store access;
// a zero-match result is a success response and skips rendering.
//
// @Summary      Generate a time report
// @Description  Aggregates logged time over a project, user, or department and renders it as PDF or Excel.
// @Tags         reports
// @Param        scope   path   string  true   "Scope kind"  Enums(project, user, department)
// @Param        id      path   string  true   "Project id, user id, or department name"
// @Param        start   query  string  false  "Range start (YYYY-MM-DD)"
// @Param        end     query  string  false  "Range end (YYYY-MM-DD)"
// @Param        format  query  string  true   "Output format"  Enums(pdf, excel)
// @Produce      application/pdf
// @Success      200
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reports/{scope}/{id} [get]
func (h *ReportHandler) Generate(c *gin.Context) {
	// --- Received → Validated: no store access before this passes.
	scope, ok := parseScope(c)
	if !ok {
		return
	}
	format, ok := parseFormat(c)
	if !ok {
		return
	}
	start := c.Query("start")
	end := c.Query("end")

	// --- Validated → Queried
	report, err := h.service.BuildReport(c.Request.Context(), scope, start, end)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrScopeNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("[report][query][err] scope=%s: %v", scope.Kind, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "report query failed"})
		}
		return
	}

	// --- Queried → EmptyResult: success, nothing to render.
	if report.Empty {
		c.JSON(http.StatusOK, gin.H{
			"status": "empty",
			"message": fmt.Sprintf("No work items found for %s %q in the selected period",
				report.ScopeKind, report.ScopeName),
		})
		return
	}

	// --- Aggregated → Rendered
	data, err := render.Render(report, format)
	if err != nil {
		log.Printf("[report][render][err] scope=%s format=%s: %v", scope.Kind, format, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "report rendering failed"})
		return
	}

	// --- Rendered → Responded
	contentType := "application/pdf"
	ext := "pdf"
	if format == models.FormatExcel {
		contentType = excelContentType
		ext = "xlsx"
	}
	filename := fmt.Sprintf("%s-report-%s-%s.%s",
		scope.Kind, c.Param("id"), time.Now().Format("2006-01-02"), ext)

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Length", strconv.Itoa(len(data)))
	c.Data(http.StatusOK, contentType, data)
}

// parseScope validates the scope kind and id parameters. Project and
// user ids must be numeric; a department is any non-empty name.
func parseScope(c *gin.Context) (models.ReportScope, bool) {
	kind := models.ScopeKind(strings.ToLower(c.Param("scope")))
	id := c.Param("id")

	switch kind {
	case models.ScopeProject, models.ScopeUser:
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s id %q", kind, id)})
			return models.ReportScope{}, false
		}
		if kind == models.ScopeProject {
			return models.ReportScope{Kind: kind, ProjectID: n}, true
		}
		return models.ReportScope{Kind: kind, UserID: n}, true
	case models.ScopeDepartment:
		if strings.TrimSpace(id) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "department name is required"})
			return models.ReportScope{}, false
		}
		return models.ReportScope{Kind: kind, Department: id}, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown report scope %q", c.Param("scope"))})
	return models.ReportScope{}, false
}

func parseFormat(c *gin.Context) (models.ReportFormat, bool) {
	raw := strings.ToLower(strings.TrimSpace(c.Query("format")))
	switch models.ReportFormat(raw) {
	case models.FormatPDF:
		return models.FormatPDF, true
	case models.FormatExcel:
		return models.FormatExcel, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported format %q, want pdf or excel", raw)})
	return "", false
}

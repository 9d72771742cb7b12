package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskboard/internal/duration"
	"taskboard/internal/services"
)

type TaskHandler struct {
	service services.TaskService
}

func NewTaskHandler(service services.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// PUT /tasks/:id/time
//
// @Summary  Log time taken on a task
// @Tags     tasks
// @Accept   json
// @Param    id    path  int  true  "Task id"
// @Success  200
// @Failure  400  {object}  map[string]string
// @Failure  404  {object}  map[string]string
// @Router   /tasks/{id}/time [put]
func (h *TaskHandler) LogTaskTime(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		TimeTaken string `json:"time_taken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.service.LogTaskTime(c.Request.Context(), id, req.TimeTaken)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         task.ID,
		"time_taken": task.TimeTaken.String(),
	})
}

// PUT /subtasks/:id/time
func (h *TaskHandler) LogSubtaskTime(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		TimeTaken string `json:"time_taken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subtask, err := h.service.LogSubtaskTime(c.Request.Context(), id, req.TimeTaken)
	if err != nil {
		respondTimeLogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         subtask.ID,
		"time_taken": subtask.TimeTaken.String(),
	})
}

// GET /tasks/:id/time returns the hierarchy-inclusive total: the task's own time
// plus its non-archived subtasks.
func (h *TaskHandler) GetTaskTime(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	total, err := h.service.HierarchyTotal(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrWorkItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[task][time][err] id=%d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute total"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":            id,
		"total_minutes": int(total),
		"total":         total.String(),
	})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondTimeLogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, duration.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrWorkItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		log.Printf("[task][log-time][err] %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save time"})
	}
}

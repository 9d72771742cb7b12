package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/duration"
	"taskboard/internal/models"
	"taskboard/internal/services"
)

type fakeTaskService struct {
	task    *models.Task
	subtask *models.Subtask
	total   duration.Minutes
	err     error
}

func (f *fakeTaskService) LogTaskTime(_ context.Context, id int64, raw string) (*models.Task, error) {
	if err := duration.Validate(raw); err != nil {
		return nil, err
	}
	return f.task, f.err
}

func (f *fakeTaskService) LogSubtaskTime(_ context.Context, id int64, raw string) (*models.Subtask, error) {
	if err := duration.Validate(raw); err != nil {
		return nil, err
	}
	return f.subtask, f.err
}

func (f *fakeTaskService) HierarchyTotal(_ context.Context, taskID int64) (duration.Minutes, error) {
	return f.total, f.err
}

func newTaskRouter(svc services.TaskService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewTaskHandler(svc)
	r.PUT("/tasks/:id/time", h.LogTaskTime)
	r.GET("/tasks/:id/time", h.GetTaskTime)
	r.PUT("/subtasks/:id/time", h.LogSubtaskTime)
	return r
}

func putJSON(r *gin.Engine, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestLogTaskTime_OK(t *testing.T) {
	svc := &fakeTaskService{task: &models.Task{ID: 1, TimeTaken: 90}}
	w := putJSON(newTaskRouter(svc), "/tasks/1/time", `{"time_taken":"1 hour 30 minutes"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		TimeTaken string `json:"time_taken"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "1 hour 30 minutes", body.TimeTaken)
}

func TestLogTaskTime_InvalidDuration(t *testing.T) {
	svc := &fakeTaskService{task: &models.Task{ID: 1}}
	w := putJSON(newTaskRouter(svc), "/tasks/1/time", `{"time_taken":"90 minutes"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid duration format")
}

func TestLogTaskTime_NotFound(t *testing.T) {
	svc := &fakeTaskService{err: services.ErrWorkItemNotFound}
	w := putJSON(newTaskRouter(svc), "/tasks/42/time", `{"time_taken":"1 hour"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogTaskTime_BadID(t *testing.T) {
	svc := &fakeTaskService{}
	w := putJSON(newTaskRouter(svc), "/tasks/abc/time", `{"time_taken":"1 hour"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogSubtaskTime_OK(t *testing.T) {
	svc := &fakeTaskService{subtask: &models.Subtask{ID: 10, TimeTaken: 45}}
	w := putJSON(newTaskRouter(svc), "/subtasks/10/time", `{"time_taken":"45 minutes"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "45 minutes")
}

func TestGetTaskTime(t *testing.T) {
	svc := &fakeTaskService{total: 135}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks/1/time", nil)
	newTaskRouter(svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		TotalMinutes int    `json:"total_minutes"`
		Total        string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 135, body.TotalMinutes)
	assert.Equal(t, "2 hours 15 minutes", body.Total)
}

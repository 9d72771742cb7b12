package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/duration"
	"taskboard/internal/models"
)

var taskCols = []string{
	"id", "project_id", "owner_id", "title", "description",
	"priority", "status", "time_taken_minutes", "archived", "created_at", "updated_at",
}

func TestTaskRepository_FindByProject(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`FROM tasks WHERE project_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(taskCols).
			AddRow(int64(2), int64(1), int64(5), "Write docs", "", "normal", "completed", 60, false, now, now).
			AddRow(int64(1), int64(1), int64(4), "Build API", "", "high", "in_progress", 120, false, now, now))
	mock.ExpectQuery(`FROM task_assignees WHERE task_id = ANY`).
		WillReturnRows(sqlmock.NewRows([]string{"task_id", "user_id"}).
			AddRow(int64(1), int64(5)).
			AddRow(int64(1), int64(6)))

	repo := NewTaskRepository(db)
	tasks, err := repo.FindByProject(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Equal(t, "Write docs", tasks[0].Title)
	assert.Equal(t, duration.Minutes(60), tasks[0].TimeTaken)
	assert.Empty(t, tasks[0].AssigneeIDs)

	assert.Equal(t, models.StatusInProgress, tasks[1].Status)
	assert.Equal(t, []int64{5, 6}, tasks[1].AssigneeIDs)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_FindByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM tasks WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(taskCols))

	repo := NewTaskRepository(db)
	task, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, task)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateTimeTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE tasks SET time_taken_minutes=\$1`).
		WithArgs(duration.Minutes(90), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTaskRepository(db)
	require.NoError(t, repo.UpdateTimeTaken(context.Background(), 1, 90))
	require.NoError(t, mock.ExpectationsWereMet())
}

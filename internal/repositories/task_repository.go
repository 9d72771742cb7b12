package repositories

import (
	"context"
	"database/sql"

	"taskboard/internal/duration"
	"taskboard/internal/models"

	"github.com/lib/pq"
)

type TaskRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindByProject(ctx context.Context, projectID int64) ([]models.Task, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	UpdateTimeTaken(ctx context.Context, id int64, minutes duration.Minutes) error
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `id, project_id, owner_id, title, description,
       priority, status, time_taken_minutes, archived, created_at, updated_at`

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.ProjectID, &t.OwnerID, &t.Title, &t.Description,
		&t.Priority, &t.Status, &t.TimeTaken, &t.Archived, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadAssignees(ctx, []*models.Task{t}); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) FindByProject(ctx context.Context, projectID int64) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, projectID)
}

func (r *taskRepository) FindByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks t
WHERE t.owner_id = $1
   OR EXISTS (SELECT 1 FROM task_assignees a WHERE a.task_id = t.id AND a.user_id = $1)
ORDER BY created_at DESC`
	return r.queryTasks(ctx, query, userID)
}

func (r *taskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`
	return r.queryTasks(ctx, query)
}

func (r *taskRepository) UpdateTimeTaken(ctx context.Context, id int64, minutes duration.Minutes) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET time_taken_minutes=$1, updated_at=NOW() WHERE id=$2`, minutes, id)
	return err
}

func (r *taskRepository) queryTasks(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.OwnerID, &t.Title, &t.Description,
			&t.Priority, &t.Status, &t.TimeTaken, &t.Archived, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*models.Task, len(tasks))
	for i := range tasks {
		refs[i] = &tasks[i]
	}
	if err := r.loadAssignees(ctx, refs); err != nil {
		return nil, err
	}
	return tasks, nil
}

// loadAssignees fills AssigneeIDs for the given tasks in one query.
func (r *taskRepository) loadAssignees(ctx context.Context, tasks []*models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(tasks))
	byID := make(map[int64]*models.Task, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
		byID[t.ID] = t
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, user_id FROM task_assignees WHERE task_id = ANY($1) ORDER BY user_id`,
		pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var taskID, userID int64
		if err := rows.Scan(&taskID, &userID); err != nil {
			return err
		}
		if t, ok := byID[taskID]; ok {
			t.AssigneeIDs = append(t.AssigneeIDs, userID)
		}
	}
	return rows.Err()
}

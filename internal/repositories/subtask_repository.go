package repositories

import (
	"context"
	"database/sql"

	"taskboard/internal/duration"
	"taskboard/internal/models"

	"github.com/lib/pq"
)

type SubtaskRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Subtask, error)
	FindByParentTask(ctx context.Context, taskID int64) ([]models.Subtask, error)
	FindByProject(ctx context.Context, projectID int64) ([]models.Subtask, error)
	FindByUser(ctx context.Context, userID int64) ([]models.Subtask, error)
	FindAll(ctx context.Context) ([]models.Subtask, error)
	UpdateTimeTaken(ctx context.Context, id int64, minutes duration.Minutes) error
}

type subtaskRepository struct {
	db *sql.DB
}

func NewSubtaskRepository(db *sql.DB) SubtaskRepository {
	return &subtaskRepository{db: db}
}

const subtaskColumns = `id, parent_task_id, project_id, owner_id, title, description,
       priority, status, time_taken_minutes, archived, created_at, updated_at`

func (r *subtaskRepository) FindByID(ctx context.Context, id int64) (*models.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE id = $1`
	s := &models.Subtask{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.ParentTaskID, &s.ProjectID, &s.OwnerID, &s.Title, &s.Description,
		&s.Priority, &s.Status, &s.TimeTaken, &s.Archived, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	if err := r.loadAssignees(ctx, []*models.Subtask{s}); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *subtaskRepository) FindByParentTask(ctx context.Context, taskID int64) ([]models.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE parent_task_id = $1 ORDER BY created_at DESC`
	return r.querySubtasks(ctx, query, taskID)
}

func (r *subtaskRepository) FindByProject(ctx context.Context, projectID int64) ([]models.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks WHERE project_id = $1 ORDER BY created_at DESC`
	return r.querySubtasks(ctx, query, projectID)
}

func (r *subtaskRepository) FindByUser(ctx context.Context, userID int64) ([]models.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks s
WHERE s.owner_id = $1
   OR EXISTS (SELECT 1 FROM subtask_assignees a WHERE a.subtask_id = s.id AND a.user_id = $1)
ORDER BY created_at DESC`
	return r.querySubtasks(ctx, query, userID)
}

func (r *subtaskRepository) FindAll(ctx context.Context) ([]models.Subtask, error) {
	query := `SELECT ` + subtaskColumns + ` FROM subtasks ORDER BY created_at DESC`
	return r.querySubtasks(ctx, query)
}

func (r *subtaskRepository) UpdateTimeTaken(ctx context.Context, id int64, minutes duration.Minutes) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE subtasks SET time_taken_minutes=$1, updated_at=NOW() WHERE id=$2`, minutes, id)
	return err
}

func (r *subtaskRepository) querySubtasks(ctx context.Context, query string, args ...interface{}) ([]models.Subtask, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []models.Subtask
	for rows.Next() {
		var s models.Subtask
		if err := rows.Scan(
			&s.ID, &s.ParentTaskID, &s.ProjectID, &s.OwnerID, &s.Title, &s.Description,
			&s.Priority, &s.Status, &s.TimeTaken, &s.Archived, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		subtasks = append(subtasks, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*models.Subtask, len(subtasks))
	for i := range subtasks {
		refs[i] = &subtasks[i]
	}
	if err := r.loadAssignees(ctx, refs); err != nil {
		return nil, err
	}
	return subtasks, nil
}

func (r *subtaskRepository) loadAssignees(ctx context.Context, subtasks []*models.Subtask) error {
	if len(subtasks) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(subtasks))
	byID := make(map[int64]*models.Subtask, len(subtasks))
	for _, s := range subtasks {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT subtask_id, user_id FROM subtask_assignees WHERE subtask_id = ANY($1) ORDER BY user_id`,
		pq.Array(ids))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var subtaskID, userID int64
		if err := rows.Scan(&subtaskID, &userID); err != nil {
			return err
		}
		if s, ok := byID[subtaskID]; ok {
			s.AssigneeIDs = append(s.AssigneeIDs, userID)
		}
	}
	return rows.Err()
}

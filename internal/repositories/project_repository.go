package repositories

import (
	"context"
	"database/sql"

	"taskboard/internal/models"
)

type ProjectRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Project, error)
}

type projectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) FindByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT id, name, archived, created_at FROM projects WHERE id = $1`
	p := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Archived, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

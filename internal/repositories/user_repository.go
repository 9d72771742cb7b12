package repositories

import (
	"context"
	"database/sql"

	"taskboard/internal/models"

	"github.com/lib/pq"
)

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error)
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT id, display_name, email, department FROM users WHERE id = $1`
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.DisplayName, &u.Email, &u.Department)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// FindByIDs loads a batch of user records keyed by id.
// Unknown ids are simply absent from the result.
func (r *userRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]models.User, error) {
	out := make(map[int64]models.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, display_name, email, department FROM users WHERE id = ANY($1)`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.DisplayName, &u.Email, &u.Department); err != nil {
			return nil, err
		}
		out[u.ID] = u
	}
	return out, rows.Err()
}

package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shoplens/shoplens/internal/common"
	"github.com/shoplens/shoplens/internal/dbx"
	"github.com/shoplens/shoplens/internal/models"
)

// PostgresRepository is the credential store for server deployments, backed
// by Postgres through the pgx stdlib driver.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, name, credential, role, created_at FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.Name, &user.Credential, &user.Role, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return user, nil
}

func (r *PostgresRepository) Add(ctx context.Context, user *models.User) error {
	query :=
		`INSERT INTO users (id, email, name, credential, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (email) DO NOTHING
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.Credential, string(user.Role), user.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	if affected == 0 {
		return common.ErrDuplicateEmail
	}
	return nil
}

func (r *PostgresRepository) All(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, email, name, credential, role, created_at FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Credential, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return result, nil
}

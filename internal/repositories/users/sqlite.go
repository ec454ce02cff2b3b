package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shoplens/shoplens/internal/common"
	"github.com/shoplens/shoplens/internal/dbx"
	"github.com/shoplens/shoplens/internal/models"
)

// SQLiteRepository stores users in the local device database.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, email, name, credential, role, created_at FROM users WHERE email = ?`

	user := &models.User{}
	var createdAt string
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.Name, &user.Credential, &user.Role, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}

	user.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad created_at for %s: %v", common.ErrStorageUnavailable, user.ID, err)
	}
	return user, nil
}

func (r *SQLiteRepository) Add(ctx context.Context, user *models.User) error {
	query := `INSERT INTO users (id, email, name, credential, role, created_at) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.Credential, string(user.Role),
		user.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SQLiteRepository) All(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, email, name, credential, role, created_at FROM users`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Credential, &u.Role, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
		}
		if u.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("%w: bad created_at for %s: %v", common.ErrStorageUnavailable, u.ID, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrStorageUnavailable, err)
	}
	return result, nil
}

package users

import (
	"context"
	"sync"

	"github.com/shoplens/shoplens/internal/common"
	"github.com/shoplens/shoplens/internal/models"
)

// MemoryRepository keeps users in a map. Used by tests and by deployments
// that run without a local database.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]models.User)}
}

func (r *MemoryRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &u, nil
}

func (r *MemoryRepository) Add(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return common.ErrDuplicateEmail
	}
	r.byEmail[user.Email] = *user
	return nil
}

func (r *MemoryRepository) All(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.User, 0, len(r.byEmail))
	for _, u := range r.byEmail {
		result = append(result, u)
	}
	return result, nil
}

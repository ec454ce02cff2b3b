// Package users implements the credential store: the set of registered
// dashboard users, keyed by email.
package users

import (
	"context"

	"github.com/shoplens/shoplens/internal/models"
)

// Repository is the storage-medium-agnostic credential store contract.
//
// FindByEmail and Add treat email as a case-sensitive exact key. Storage
// failures are reported as common.ErrStorageUnavailable so callers never
// need to know which medium backs the store.
type Repository interface {
	// FindByEmail returns the user registered under email, or
	// common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// Add inserts a new user. Returns common.ErrDuplicateEmail when the
	// email is already registered.
	Add(ctx context.Context, user *models.User) error

	// All returns a read-only snapshot of every registered user. Order is
	// not significant.
	All(ctx context.Context) ([]models.User, error)
}

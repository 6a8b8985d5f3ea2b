// Package users is the credential store: it persists accounts and their
// password hashes.
package users

import (
	"context"

	"github.com/nebasjoa/rentable/internal/server/models"
)

type Repository interface {
	// Create inserts a new user and returns it with the store-assigned ID.
	// A duplicate email yields common.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user registered under email, or
	// common.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

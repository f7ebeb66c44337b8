// Package users provides the user store: a mapping of registered identities
// enforcing username and email uniqueness, with one implementation per
// storage backend.
package users

import (
	"context"

	"github.com/kanishkgoel/gridboard/internal/server/models"
)

// Repository is the user store contract. Lookups return
// common.ErrorNotFound when no user matches; Create returns
// common.ErrorAlreadyExists when the username or email is taken.
// No update or delete is exposed.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}

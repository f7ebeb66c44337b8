// Package services contains server-side business logic. This file implements
// AuthService, which handles registration and credential checks.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kanishkgoel/gridboard/internal/common"
	"github.com/kanishkgoel/gridboard/internal/server/models"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/prefs"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/users"
)

// bcrypt seams for tests.
var (
	hashPassword    = bcrypt.GenerateFromPassword
	comparePassword = bcrypt.CompareHashAndPassword
)

// AuthService provides authentication-related operations:
//   - Register: create users and seed their preference record
//   - Login: verify credentials
//
// Passwords are stored as bcrypt hashes. No token is issued on login; the
// API contract is session-less by design of the original dashboard.
type AuthService struct {
	users users.Repository
	prefs prefs.Repository
}

// NewAuthService constructs an AuthService over the given stores.
func NewAuthService(users users.Repository, prefs prefs.Repository) *AuthService {
	return &AuthService{users: users, prefs: prefs}
}

// Register creates a new user and seeds an empty preference record.
// A taken username or email yields common.ErrorAlreadyExists.
//
// The two store writes are not transactional: if preference seeding fails
// the user record remains and the error is surfaced, matching the observed
// behavior of every iteration of the app.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {

	_, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error checking for existing user: %w", err)
	}

	hash, err := hashPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if err := s.prefs.Initialize(ctx, username); err != nil {
		return nil, fmt.Errorf("error initializing preferences: %w", err)
	}

	return user, nil
}

// Login verifies the username/password pair. Unknown users and wrong
// passwords are indistinguishable: both yield common.ErrorUnauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, error) {

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if err := comparePassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

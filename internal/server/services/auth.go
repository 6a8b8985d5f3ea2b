// Package services contains the server-side business logic: credential
// handling, the inquiry lifecycle, and the wishlist membership set.
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/server/auth"
	"github.com/nebasjoa/rentable/internal/server/config"
	"github.com/nebasjoa/rentable/internal/server/models"
	"github.com/nebasjoa/rentable/internal/server/repositories/repomanager"
)

// AuthService registers users and authenticates login attempts, issuing a
// signed, time-limited access token on success.
type AuthService struct {
	db                  *sql.DB
	repomanager         repomanager.RepositoryManager
	jwtSecret           []byte
	accessTokenValidity time.Duration

	// dummyHash is verified against when the email is unknown, so that the
	// absent-user and wrong-password paths cost the same.
	dummyHash string
}

// NewAuthService constructs an AuthService using repositories and server
// config. The signing secret comes from config and is never read again after
// construction.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) (*AuthService, error) {
	dummy, err := auth.HashPassword("rentable-dummy-password")
	if err != nil {
		return nil, err
	}
	return &AuthService{
		db:                  db,
		repomanager:         m,
		jwtSecret:           []byte(cfg.JWTSecret),
		accessTokenValidity: cfg.AccessTokenValidity,
		dummyHash:           dummy,
	}, nil
}

// Register creates a new account with an argon2id hash of password.
// Empty email or password is rejected before any store call; a duplicate
// email surfaces as common.ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password string, registeredAt time.Time) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return common.ErrInvalidInput
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := &models.User{Email: email, PasswordHash: hash, RegisteredAt: registeredAt}
	repo := s.repomanager.Users(s.db)
	if _, err := repo.Create(ctx, user); err != nil {
		return err
	}
	return nil
}

// Login verifies the password against the stored hash and mints an access
// token bound to the email. An unknown email and a wrong password return the
// same common.ErrInvalidCredentials; only store failures are reported
// differently, as common.ErrStoreUnavailable.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			// Burn the same hashing work before failing.
			_, _ = auth.VerifyPassword(password, s.dummyHash)
			return "", common.ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return "", common.ErrInvalidCredentials
	}

	return auth.GenerateToken(user.Email, s.jwtSecret, s.accessTokenValidity)
}

// UserByEmail resolves a token subject to the stored account. The boundary
// uses it to turn the authenticated email into an actor id.
func (s *AuthService) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, email)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/nebasjoa/rentable/internal/common"
	"github.com/nebasjoa/rentable/internal/server/auth"
	"github.com/nebasjoa/rentable/internal/server/config"
	"github.com/nebasjoa/rentable/internal/server/models"
)

func newAuthService(t *testing.T, usersRepo *fakeUsersRepo) *AuthService {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:           "test-secret",
		AccessTokenValidity: time.Hour,
	}
	s, err := NewAuthService(nil, &fakeRepoManager{usersRepo: usersRepo}, cfg)
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}
	return s
}

func TestRegister_InvalidInput(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := newAuthService(t, repo)

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"   ", "pw"},
		{"alice@example.com", ""},
	} {
		err := s.Register(context.Background(), tc.email, tc.password, time.Now())
		if !errors.Is(err, common.ErrInvalidInput) {
			t.Fatalf("email=%q password=%q: expected ErrInvalidInput, got %v", tc.email, tc.password, err)
		}
	}
	if repo.createCalls != 0 {
		t.Fatalf("store reached on invalid input: %d calls", repo.createCalls)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := &capturingUsersRepo{}
	cfg := &config.Config{JWTSecret: "k", AccessTokenValidity: time.Hour}
	s, err := NewAuthService(nil, &fakeRepoManager{usersRepo: repo}, cfg)
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	if err := s.Register(context.Background(), "bob@example.com", "s3cret", time.Now()); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if repo.captured == nil {
		t.Fatalf("user never reached the store")
	}
	if repo.captured.PasswordHash == "s3cret" {
		t.Fatalf("plaintext stored as hash")
	}
	ok, err := auth.VerifyPassword("s3cret", repo.captured.PasswordHash)
	if err != nil || !ok {
		t.Fatalf("stored hash does not verify original password: ok=%v err=%v", ok, err)
	}
}

type capturingUsersRepo struct {
	captured *models.User
}

func (c *capturingUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	cp := *u
	c.captured = &cp
	u.ID = 1
	return u, nil
}

func (c *capturingUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if c.captured == nil || c.captured.Email != email {
		return nil, common.ErrUserNotFound
	}
	out := *c.captured
	out.ID = 1
	return &out, nil
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrEmailTaken}
	s := newAuthService(t, repo)

	err := s.Register(context.Background(), "alice@example.com", "pw", time.Now())
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &capturingUsersRepo{}
	cfg := &config.Config{JWTSecret: "test-secret", AccessTokenValidity: time.Hour}
	s, err := NewAuthService(nil, &fakeRepoManager{usersRepo: repo}, cfg)
	if err != nil {
		t.Fatalf("NewAuthService error: %v", err)
	}

	if err := s.Register(context.Background(), "alice@example.com", "s3cret", time.Now()); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	token, err := s.Login(context.Background(), "alice@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	email, err := auth.SubjectFromToken(token, []byte("test-secret"))
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if email != "alice@example.com" {
		t.Fatalf("token subject = %q", email)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	hash, err := auth.HashPassword("right")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	repo := &fakeUsersRepo{getOut: &models.User{ID: 1, Email: "alice@example.com", PasswordHash: hash}}
	s := newAuthService(t, repo)

	_, errWrongPassword := s.Login(context.Background(), "alice@example.com", "wrong")

	repo.getOut = nil
	repo.getErr = common.ErrUserNotFound
	_, errUnknownEmail := s.Login(context.Background(), "nobody@example.com", "right")

	if !errors.Is(errWrongPassword, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, common.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPassword, errUnknownEmail)
	}
}

func TestLogin_StoreFailureIsNotACredentialsFailure(t *testing.T) {
	repo := &fakeUsersRepo{getErr: fmt.Errorf("%w: connection refused", common.ErrStoreUnavailable)}
	s := newAuthService(t, repo)

	_, err := s.Login(context.Background(), "alice@example.com", "pw")
	if !errors.Is(err, common.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("store failure reported as credentials failure")
	}
}

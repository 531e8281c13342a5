package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Alden-Crist/Planzee/internal/domain"
)

// UserStore is the persistence boundary for user records.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, name, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}

type UserService struct {
	store  UserStore
	hasher *PasswordHasher
	tokens *TokenService
}

func NewUserService(store UserStore, hasher *PasswordHasher, tokens *TokenService) *UserService {
	return &UserService{store: store, hasher: hasher, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("a valid email is required")
	}
	if len(password) < 6 {
		return nil, domain.NewValidationError("password must be at least 6 characters")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.store.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and returns a fresh bearer token. A missing
// account and a wrong password are reported identically.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	u, err := s.store.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, u.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.store.GetByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, name, email string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, domain.NewValidationError("a valid email is required")
	}

	return s.store.UpdateProfile(ctx, id, name, email)
}

func (s *UserService) UpdatePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return domain.NewValidationError("password must be at least 6 characters")
	}

	u, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(oldPassword, u.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, id, hash)
}

// Email comparison is case-insensitive throughout, so the lowercased form is
// the canonical one.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

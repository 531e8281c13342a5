package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alden-Crist/Planzee/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func newUserService() *UserService {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	tokens := NewTokenService("test-secret", time.Hour)
	return NewUserService(newMemUserStore(), hasher, tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	u, err := s.Register(ctx, "Alice", "Alice@Example.com", "pw123456")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email = %q, want lowercased", u.Email)
	}
	if u.PasswordHash == "pw123456" {
		t.Fatal("password stored in plaintext")
	}

	// login is case-insensitive on email
	token, logged, err := s.Login(ctx, "ALICE@example.COM", "pw123456")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("login returned empty token")
	}
	if logged.ID != u.ID {
		t.Errorf("login returned user %d, want %d", logged.ID, u.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	cases := []struct {
		name, email, password string
	}{
		{"", "a@b.com", "pw123456"},
		{"Alice", "", "pw123456"},
		{"Alice", "not-an-email", "pw123456"},
		{"Alice", "a@b.com", "short"},
	}

	var validationErr *domain.ValidationError
	for _, tc := range cases {
		if _, err := s.Register(ctx, tc.name, tc.email, tc.password); !errors.As(err, &validationErr) {
			t.Errorf("Register(%q, %q, %q) = %v, want ValidationError", tc.name, tc.email, tc.password, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "Alice", "alice@example.com", "pw123456"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := s.Register(ctx, "Impostor", "ALICE@EXAMPLE.COM", "pw123456")
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate register = %v, want ErrEmailTaken", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	if _, err := s.Register(ctx, "Alice", "alice@example.com", "pw123456"); err != nil {
		t.Fatal(err)
	}

	// wrong password and unknown account fail identically
	if _, _, err := s.Login(ctx, "alice@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := s.Login(ctx, "nobody@example.com", "pw123456"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email = %v, want ErrInvalidCredentials", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	u, err := s.Register(ctx, "Alice", "alice@example.com", "pw123456")
	if err != nil {
		t.Fatal(err)
	}

	updated, err := s.UpdateProfile(ctx, u.ID, "Alice B", "Alice.B@Example.com")
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Name != "Alice B" || updated.Email != "alice.b@example.com" {
		t.Errorf("profile = %q/%q", updated.Name, updated.Email)
	}
}

func TestUpdatePassword(t *testing.T) {
	s := newUserService()
	ctx := context.Background()

	u, err := s.Register(ctx, "Alice", "alice@example.com", "pw123456")
	if err != nil {
		t.Fatal(err)
	}

	if err := s.UpdatePassword(ctx, u.ID, "wrong-old", "newpw12345"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong old password = %v, want ErrInvalidCredentials", err)
	}

	if err := s.UpdatePassword(ctx, u.ID, "pw123456", "newpw12345"); err != nil {
		t.Fatalf("update password: %v", err)
	}

	if _, _, err := s.Login(ctx, "alice@example.com", "pw123456"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Error("old password still accepted")
	}
	if _, _, err := s.Login(ctx, "alice@example.com", "newpw12345"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

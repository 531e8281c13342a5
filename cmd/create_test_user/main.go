package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/Alden-Crist/Planzee/internal/db"
	"github.com/Alden-Crist/Planzee/internal/domain"
	"github.com/Alden-Crist/Planzee/internal/repository"
	"github.com/Alden-Crist/Planzee/internal/service"
)

// Seeds a demo account (alice@example.com / password123) and prints a valid
// bearer token for it. Expects DATABASE_URL and JWT_SECRET.
func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	hasher := service.NewPasswordHasher(0)
	ctx := context.Background()

	const email = "alice@example.com"

	u, err := repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		log.Printf("user already exists id=%d", u.ID)
	case errors.Is(err, domain.ErrNotFound):
		hash, err := hasher.Hash("password123")
		if err != nil {
			log.Fatalf("hash password failed: %v", err)
		}
		u = &domain.User{Name: "Alice", Email: email, PasswordHash: hash}
		if err := repo.Create(ctx, u); err != nil {
			log.Fatalf("create user failed: %v", err)
		}
		log.Printf("user created id=%d", u.ID)
	default:
		log.Fatalf("get user failed: %v", err)
	}

	tokens := service.NewTokenService(secret, 24*time.Hour)
	token, err := tokens.Issue(u.ID)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s", token)
}

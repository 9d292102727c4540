package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/saransh1220/flowart/internal/modules/auth/domain"
	directory "github.com/saransh1220/flowart/internal/modules/directory/domain"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/crypto/bcrypt"
)

// SeedAccount is a profile to create with a known password.
type SeedAccount struct {
	Email    string
	Password string
	Profile  directory.Artist
}

// Seed creates accounts when the users table is empty and reports how
// many were inserted. Passwords are hashed concurrently; inserts keep
// the given order so listing order matches it.
func (s *AuthService) Seed(ctx context.Context, accounts []SeedAccount) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		slog.InfoContext(ctx, "users present, skipping seed", "count", n)
		return 0, nil
	}

	hashes := make([]string, len(accounts))
	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(4)
	for i, acc := range accounts {
		p.Go(func(ctx context.Context) error {
			h, err := bcrypt.GenerateFromPassword([]byte(acc.Password), s.hashCost)
			if err != nil {
				return fmt.Errorf("hash %s: %w", acc.Email, err)
			}
			hashes[i] = string(h)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return 0, err
	}

	for i, acc := range accounts {
		user := &domain.User{Artist: acc.Profile, Email: acc.Email, PasswordHash: hashes[i]}
		if err := s.repo.Create(ctx, user); err != nil {
			return i, fmt.Errorf("seed %s: %w", acc.Email, err)
		}
	}
	slog.InfoContext(ctx, "seeded artist accounts", "count", len(accounts))
	return len(accounts), nil
}

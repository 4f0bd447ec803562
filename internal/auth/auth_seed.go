package auth

import (
	"context"
	"os"

	"transferdesk/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdminAccount creates the bootstrap administrator from ADMIN_EMAIL and
// ADMIN_PASSWORD if no such account exists yet. All other accounts are
// provisioned by an administrator through normal operation.
func SeedAdminAccount(ctx context.Context, repo Repository, logger ...*zap.Logger) error {
	l := zap.L().Named("auth.seed")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.seed")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		l.Warn("admin seed skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	if _, err := repo.GetByEmail(ctx, email); err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := repo.Create(ctx, &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Administrator",
		PasswordHash: string(hash),
		Role:         rbac.RoleAdmin,
		IsActive:     true,
	}); err != nil {
		return err
	}

	l.Info("admin account seeded", zap.String("email", email))
	return nil
}

package db

import (
	"context"
	"fmt"

	"parkspot/internal/auth"

	"github.com/jmoiron/sqlx"
)

// SeedAdmin creates the initial admin account unless one already exists.
// Spots are seeded by the SQL migrations; the admin is created here because
// the password hash has to be produced at runtime.
func SeedAdmin(ctx context.Context, db *sqlx.DB, email, password string) error {
	var exists bool
	err := db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM users WHERE role = 'admin')`)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ('Administrator', $1, $2, 'admin')
	`, email, hash)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	return nil
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shelf/internal/domain/entity"
	"shelf/internal/errors"
)

// ErrUserNotFound is returned when a user lookup matches no row.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
// This core never mutates users; it only looks them up for authentication.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	// The lookup is case-sensitive, matching how emails are stored.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

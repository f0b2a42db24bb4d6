package repository

import (
	"context"

	"shelf/internal/domain/entity"
	"shelf/internal/errors"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrDuplicateFavorite is returned when the unique (user_id, book_id)
	// index rejects an insert. Callers treat it as "already favorited".
	ErrDuplicateFavorite = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite-related database
// operations. The unique composite index on (user_id, book_id) is the sole
// concurrency guard for creates; deletes always match the full pair.
type FavoriteRepository interface {
	// CreateFavorite persists a new favorite. Returns ErrDuplicateFavorite
	// when the (user_id, book_id) pair already exists.
	CreateFavorite(ctx context.Context, favorite *entity.Favorite) error

	// FindFavorite retrieves a favorite by its composite (userID, bookID)
	// key, with book data joined.
	FindFavorite(ctx context.Context, userID, bookID int64) (*entity.Favorite, error)

	// FindFavoritesByUser retrieves all favorites for a user with book data
	// joined, ordered by book title ascending (book ID ascending on ties).
	FindFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error)

	// DeleteFavorite removes the favorite matching the full (userID, bookID)
	// pair. Returns ErrFavoriteNotFound when no row matched.
	DeleteFavorite(ctx context.Context, userID, bookID int64) error
}

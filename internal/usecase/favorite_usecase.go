package usecase

import (
	"context"

	"shelf/internal/domain/entity"
)

// FavoriteUsecase defines the interface for favorite management use cases.
// Every operation is scoped to the authenticated user; one user's favorites
// are invisible to another's operations.
type FavoriteUsecase interface {
	// ListFavorites retrieves the user's favorites with book data attached,
	// ordered by book title ascending (book ID ascending on ties).
	ListFavorites(ctx context.Context, userID int64) ([]*entity.Favorite, error)

	// AddFavorite marks a book as a favorite of the user. Adding a book
	// that is already a favorite succeeds and returns the existing record.
	AddFavorite(ctx context.Context, userID, bookID int64) (*entity.Favorite, error)

	// RemoveFavorite deletes the user's favorite for the given book and
	// returns the removed record. Removing a favorite the user does not
	// have fails with a not-found error, including on repeat removes.
	RemoveFavorite(ctx context.Context, userID, bookID int64) (*entity.Favorite, error)

	// IsFavorite reports whether the given book is a favorite of the user.
	IsFavorite(ctx context.Context, userID, bookID int64) (bool, error)
}

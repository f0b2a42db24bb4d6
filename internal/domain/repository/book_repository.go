package repository

import (
	"context"

	"shelf/internal/domain/entity"
	"shelf/internal/errors"
)

// ErrBookNotFound is returned when a book lookup matches no row.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the interface for catalog database operations.
type BookRepository interface {
	// FindAll retrieves every book, ordered by title ascending.
	FindAll(ctx context.Context) ([]*entity.Book, error)

	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id int64) (*entity.Book, error)

	// Create persists a new book and backfills its generated ID and timestamps.
	Create(ctx context.Context, book *entity.Book) error

	// Update modifies an existing book.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes a book by its ID.
	Delete(ctx context.Context, id int64) error
}

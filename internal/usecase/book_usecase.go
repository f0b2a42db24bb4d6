package usecase

import (
	"context"

	"shelf/internal/domain/entity"
)

// CreateBookInput carries the fields required to add a book to the catalog.
type CreateBookInput struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
	Description string `json:"description" validate:"required"`
	CoverURL    string `json:"coverUrl" validate:"required,url"`
}

// UpdateBookInput carries a partial update; nil fields are left untouched.
type UpdateBookInput struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	Description *string `json:"description"`
	CoverURL    *string `json:"coverUrl" validate:"omitempty,url"`
}

// BookUsecase defines the interface for catalog management use cases.
type BookUsecase interface {
	// ListBooks retrieves the whole catalog ordered by title ascending.
	ListBooks(ctx context.Context) ([]*entity.Book, error)

	// GetBook retrieves a single book by ID.
	GetBook(ctx context.Context, id int64) (*entity.Book, error)

	// CreateBook adds a new book to the catalog.
	CreateBook(ctx context.Context, input *CreateBookInput) (*entity.Book, error)

	// UpdateBook applies a partial update to an existing book and returns
	// the updated record.
	UpdateBook(ctx context.Context, id int64, input *UpdateBookInput) (*entity.Book, error)

	// DeleteBook removes a book from the catalog and returns the removed
	// record.
	DeleteBook(ctx context.Context, id int64) (*entity.Book, error)
}

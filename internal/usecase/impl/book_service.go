package impl

import (
	"context"
	"log/slog"

	deliverycontext "shelf/internal/delivery/context"
	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	"shelf/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager repository.TransactionManager
	bookRepo  repository.BookRepository
	logger    *slog.Logger
}

// BookServiceParams holds dependencies for BookService, injected by Fx.
type BookServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	BookRepo  repository.BookRepository
	Logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(params BookServiceParams) usecase.BookUsecase {
	return &bookService{
		txManager: params.TxManager,
		bookRepo:  params.BookRepo,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBooks retrieves the whole catalog ordered by title.
func (srv *bookService) ListBooks(ctx context.Context) ([]*entity.Book, error) {
	books, err := srv.bookRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list books", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list books")
	}

	return books, nil
}

// GetBook retrieves a single book by ID.
func (srv *bookService) GetBook(ctx context.Context, id int64) (*entity.Book, error) {
	book, err := srv.bookRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "get book")
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	return book, nil
}

// CreateBook adds a new book to the catalog.
func (srv *bookService) CreateBook(ctx context.Context, input *usecase.CreateBookInput) (*entity.Book, error) {
	book := &entity.Book{
		Title:       input.Title,
		Author:      input.Author,
		Genre:       input.Genre,
		Description: input.Description,
		CoverURL:    input.CoverURL,
	}

	if err := srv.bookRepo.Create(ctx, book); err != nil {
		srv.log(ctx).Error("Failed to create book", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrBookCreationFailed, err.Error())
	}

	srv.log(ctx).Info("Book created", slog.Int64("book_id", book.ID), slog.String("title", book.Title))

	return book, nil
}

// UpdateBook applies a partial update to an existing book.
func (srv *bookService) UpdateBook(ctx context.Context, id int64, input *usecase.UpdateBookInput) (*entity.Book, error) {
	var updated *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		book, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "update book")
			}

			return errors.Wrap(err, "failed to find book")
		}

		applyBookUpdate(book, input)

		if err := bookRepo.Update(ctx, book); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "update book")
			}

			return errors.Wrap(err, "failed to update book")
		}

		updated = book

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// applyBookUpdate copies the non-nil fields of the input onto the entity.
func applyBookUpdate(book *entity.Book, input *usecase.UpdateBookInput) {
	if input.Title != nil {
		book.Title = *input.Title
	}
	if input.Author != nil {
		book.Author = *input.Author
	}
	if input.Genre != nil {
		book.Genre = *input.Genre
	}
	if input.Description != nil {
		book.Description = *input.Description
	}
	if input.CoverURL != nil {
		book.CoverURL = *input.CoverURL
	}
}

// DeleteBook removes a book from the catalog and returns the removed record.
func (srv *bookService) DeleteBook(ctx context.Context, id int64) (*entity.Book, error) {
	var removed *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		book, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "delete book")
			}

			return errors.Wrap(err, "failed to find book")
		}

		if err := bookRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "delete book")
			}

			return errors.Wrap(err, "failed to delete book")
		}

		removed = book

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete book", slog.Any("error", err), slog.Int64("book_id", id))

		return nil, err
	}

	return removed, nil
}

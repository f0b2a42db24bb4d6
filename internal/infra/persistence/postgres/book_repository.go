package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/errors"
	"shelf/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository creates a new instance of bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

func (repo *bookRepository) FindAll(ctx context.Context) ([]*entity.Book, error) {
	var bookModels []*model.BookModel
	if err := repo.db.WithContext(ctx).
		Order("title ASC, id ASC").
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	books := make([]*entity.Book, 0, len(bookModels))
	for _, bookModel := range bookModels {
		books = append(books, toBookDomain(bookModel))
	}

	return books, nil
}

func (repo *bookRepository) FindByID(ctx context.Context, id int64) (*entity.Book, error) {
	var bookModel model.BookModel
	if err := repo.db.WithContext(ctx).First(&bookModel, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(repository.ErrBookNotFound, "find book by id")
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookModel), nil
}

func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookModel := fromBookDomain(book)
	if err := repo.db.WithContext(ctx).Create(bookModel).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "book is missing a required field")
		}

		return errors.Wrap(err, "failed to create book")
	}

	// Backfill the generated ID and timestamps into the domain entity.
	book.ID = bookModel.ID
	book.CreatedAt = bookModel.CreatedAt
	book.UpdatedAt = bookModel.UpdatedAt

	return nil
}

func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	bookModel := fromBookDomain(book)
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":       bookModel.Title,
			"author":      bookModel.Author,
			"genre":       bookModel.Genre,
			"description": bookModel.Description,
			"cover_url":   bookModel.CoverURL,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(repository.ErrBookNotFound, "update book")
	}

	return nil
}

func (repo *bookRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.BookModel{}, "id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return errors.Wrap(result.Error, "book is still referenced by favorites")
		}

		return errors.Wrap(result.Error, "failed to delete book")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(repository.ErrBookNotFound, "delete book")
	}

	return nil
}

// toBookDomain converts a persistence model to a domain entity.
func toBookDomain(bookModel *model.BookModel) *entity.Book {
	return &entity.Book{
		ID:          bookModel.ID,
		Title:       bookModel.Title,
		Author:      bookModel.Author,
		Genre:       bookModel.Genre,
		Description: bookModel.Description,
		CoverURL:    bookModel.CoverURL,
		CreatedAt:   bookModel.CreatedAt,
		UpdatedAt:   bookModel.UpdatedAt,
	}
}

// fromBookDomain converts a domain entity to a persistence model.
func fromBookDomain(book *entity.Book) *model.BookModel {
	return &model.BookModel{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		Genre:       book.Genre,
		Description: book.Description,
		CoverURL:    book.CoverURL,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
}

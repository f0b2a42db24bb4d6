package impl

import (
	"context"
	"testing"

	"shelf/internal/domain/entity"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/repository"
	mockRepo "shelf/internal/mocks/repository"
	"shelf/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookServiceMocks struct {
	txManager *mockRepo.MockTransactionManager
	bookRepo  *mockRepo.MockBookRepository
}

func newBookServiceForTest(t *testing.T) (usecase.BookUsecase, bookServiceMocks) {
	t.Helper()

	mocks := bookServiceMocks{
		txManager: mockRepo.NewMockTransactionManager(t),
		bookRepo:  mockRepo.NewMockBookRepository(t),
	}

	service := NewBookService(BookServiceParams{
		TxManager: mocks.txManager,
		BookRepo:  mocks.bookRepo,
		Logger:    newDiscardLogger(),
	})

	return service, mocks
}

func passthroughBookTransaction(t *testing.T, mocks bookServiceMocks) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewBookRepository().Return(mocks.bookRepo)

	mocks.txManager.EXPECT().
		Execute(context.Background(), mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestBookService_ListBooks(t *testing.T) {
	service, mocks := newBookServiceForTest(t)
	ctx := context.Background()

	books := []*entity.Book{
		{ID: 2, Title: "Anathem"},
		{ID: 1, Title: "Dune"},
	}

	mocks.bookRepo.EXPECT().
		FindAll(ctx).
		Return(books, nil)

	got, err := service.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, books, got)
}

func TestBookService_GetBook_NotFound(t *testing.T) {
	service, mocks := newBookServiceForTest(t)
	ctx := context.Background()

	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrBookNotFound)

	_, err := service.GetBook(ctx, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_CreateBook(t *testing.T) {
	service, mocks := newBookServiceForTest(t)
	ctx := context.Background()

	mocks.bookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		RunAndReturn(func(_ context.Context, book *entity.Book) error {
			book.ID = 42

			return nil
		})

	book, err := service.CreateBook(ctx, &usecase.CreateBookInput{
		Title:       "Dune",
		Author:      "Frank Herbert",
		Genre:       "Science Fiction",
		Description: "Spice and sandworms.",
		CoverURL:    "https://covers.example.com/dune.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, "Frank Herbert", book.Author)
}

func TestBookService_UpdateBook_PartialFields(t *testing.T) {
	service, mocks := newBookServiceForTest(t)
	ctx := context.Background()

	stored := &entity.Book{
		ID:          1,
		Title:       "Dune",
		Author:      "Frank Herbert",
		Genre:       "Science Fiction",
		Description: "Spice and sandworms.",
		CoverURL:    "https://covers.example.com/dune.jpg",
	}

	passthroughBookTransaction(t, mocks)
	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(stored, nil)
	mocks.bookRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Book")).
		Return(nil)

	newTitle := "Dune Messiah"
	updated, err := service.UpdateBook(ctx, 1, &usecase.UpdateBookInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", updated.Title)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Frank Herbert", updated.Author)
	assert.Equal(t, "Science Fiction", updated.Genre)
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	service, mocks := newBookServiceForTest(t)
	ctx := context.Background()

	passthroughBookTransaction(t, mocks)
	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrBookNotFound)

	newTitle := "Dune Messiah"
	_, err := service.UpdateBook(ctx, 99, &usecase.UpdateBookInput{Title: &newTitle})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_DeleteBook(t *testing.T) {
	service, mocks := newBookServiceForTest(t)
	ctx := context.Background()

	stored := &entity.Book{ID: 1, Title: "Dune"}

	passthroughBookTransaction(t, mocks)
	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(1)).
		Return(stored, nil)
	mocks.bookRepo.EXPECT().
		Delete(ctx, int64(1)).
		Return(nil)

	removed, err := service.DeleteBook(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, stored, removed)
}

func TestBookService_DeleteBook_NotFound(t *testing.T) {
	service, mocks := newBookServiceForTest(t)
	ctx := context.Background()

	passthroughBookTransaction(t, mocks)
	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrBookNotFound)

	_, err := service.DeleteBook(ctx, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

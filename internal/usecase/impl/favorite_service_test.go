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

type favoriteServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	favoriteRepo *mockRepo.MockFavoriteRepository
	bookRepo     *mockRepo.MockBookRepository
}

func newFavoriteServiceForTest(t *testing.T) (usecase.FavoriteUsecase, favoriteServiceMocks) {
	t.Helper()

	mocks := favoriteServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		favoriteRepo: mockRepo.NewMockFavoriteRepository(t),
		bookRepo:     mockRepo.NewMockBookRepository(t),
	}

	service := NewFavoriteService(FavoriteServiceParams{
		TxManager:    mocks.txManager,
		FavoriteRepo: mocks.favoriteRepo,
		BookRepo:     mocks.bookRepo,
		Logger:       newDiscardLogger(),
	})

	return service, mocks
}

// passthroughTransaction makes the transaction manager run the given function
// against a factory that hands out the test's favorite repository mock.
func passthroughTransaction(t *testing.T, mocks favoriteServiceMocks) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewFavoriteRepository().Return(mocks.favoriteRepo)

	mocks.txManager.EXPECT().
		Execute(context.Background(), mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	// Ordered by book title, ties broken by book ID, as the repository
	// contract promises.
	favorites := []*entity.Favorite{
		{ID: 3, UserID: 1, BookID: 30, Book: &entity.Book{ID: 30, Title: "Anathem"}},
		{ID: 1, UserID: 1, BookID: 10, Book: &entity.Book{ID: 10, Title: "Dune"}},
		{ID: 2, UserID: 1, BookID: 20, Book: &entity.Book{ID: 20, Title: "Dune"}},
	}

	mocks.favoriteRepo.EXPECT().
		FindFavoritesByUser(ctx, int64(1)).
		Return(favorites, nil)

	got, err := service.ListFavorites(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}

func TestFavoriteService_AddFavorite_Success(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	book := &entity.Book{ID: 10, Title: "Dune"}
	created := &entity.Favorite{ID: 1, UserID: 1, BookID: 10, Book: book}

	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(book, nil)
	mocks.favoriteRepo.EXPECT().
		CreateFavorite(ctx, &entity.Favorite{UserID: 1, BookID: 10}).
		Return(nil)
	mocks.favoriteRepo.EXPECT().
		FindFavorite(ctx, int64(1), int64(10)).
		Return(created, nil)

	got, err := service.AddFavorite(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestFavoriteService_AddFavorite_DuplicateIsSuccess(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	book := &entity.Book{ID: 10, Title: "Dune"}
	existing := &entity.Favorite{ID: 1, UserID: 1, BookID: 10, Book: book}

	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(book, nil)
	mocks.favoriteRepo.EXPECT().
		CreateFavorite(ctx, &entity.Favorite{UserID: 1, BookID: 10}).
		Return(errors.Wrap(repository.ErrDuplicateFavorite, "create favorite"))
	mocks.favoriteRepo.EXPECT().
		FindFavorite(ctx, int64(1), int64(10)).
		Return(existing, nil)

	got, err := service.AddFavorite(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, existing, got)
}

func TestFavoriteService_AddFavorite_UnknownBook(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.bookRepo.EXPECT().
		FindByID(ctx, int64(99)).
		Return(nil, repository.ErrBookNotFound)

	_, err := service.AddFavorite(ctx, 1, 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestFavoriteService_RemoveFavorite_Success(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	favorite := &entity.Favorite{ID: 1, UserID: 1, BookID: 10, Book: &entity.Book{ID: 10, Title: "Dune"}}

	passthroughTransaction(t, mocks)
	mocks.favoriteRepo.EXPECT().
		FindFavorite(ctx, int64(1), int64(10)).
		Return(favorite, nil)
	mocks.favoriteRepo.EXPECT().
		DeleteFavorite(ctx, int64(1), int64(10)).
		Return(nil)

	removed, err := service.RemoveFavorite(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, favorite, removed)
}

func TestFavoriteService_RemoveFavorite_NotFound(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	passthroughTransaction(t, mocks)
	mocks.favoriteRepo.EXPECT().
		FindFavorite(ctx, int64(1), int64(10)).
		Return(nil, repository.ErrFavoriteNotFound).
		Twice()

	_, err := service.RemoveFavorite(ctx, 1, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteNotFound))

	// Retrying the removal reports the relation missing again rather than
	// succeeding or changing shape.
	_, err = service.RemoveFavorite(ctx, 1, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteNotFound))
}

// A favorite owned by a different user must be indistinguishable from a
// missing one; the repository matches on the full (user, book) pair.
func TestFavoriteService_RemoveFavorite_OtherOwnerLooksMissing(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	passthroughTransaction(t, mocks)
	mocks.favoriteRepo.EXPECT().
		FindFavorite(ctx, int64(2), int64(10)).
		Return(nil, repository.ErrFavoriteNotFound)

	_, err := service.RemoveFavorite(ctx, 2, 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFavoriteNotFound))
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	service, mocks := newFavoriteServiceForTest(t)
	ctx := context.Background()

	mocks.favoriteRepo.EXPECT().
		FindFavorite(ctx, int64(1), int64(10)).
		Return(&entity.Favorite{ID: 1, UserID: 1, BookID: 10}, nil)
	mocks.favoriteRepo.EXPECT().
		FindFavorite(ctx, int64(1), int64(99)).
		Return(nil, repository.ErrFavoriteNotFound)

	favorited, err := service.IsFavorite(ctx, 1, 10)
	require.NoError(t, err)
	assert.True(t, favorited)

	favorited, err = service.IsFavorite(ctx, 1, 99)
	require.NoError(t, err)
	assert.False(t, favorited)
}

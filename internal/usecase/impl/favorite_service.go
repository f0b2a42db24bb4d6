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

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	bookRepo     repository.BookRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	BookRepo     repository.BookRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		bookRepo:     params.BookRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListFavorites retrieves the user's favorites ordered by book title.
func (srv *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list favorites", slog.Any("error", err), slog.Int64("user_id", userID))

		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// AddFavorite marks a book as a favorite of the user.
func (srv *favoriteService) AddFavorite(ctx context.Context, userID, bookID int64) (*entity.Favorite, error) {
	srv.log(ctx).Debug("Adding favorite", slog.Int64("user_id", userID), slog.Int64("book_id", bookID))

	// Reject unknown books up front with a clear not-found instead of
	// surfacing a foreign key violation.
	if _, err := srv.bookRepo.FindByID(ctx, bookID); err != nil {
		if errors.Is(err, repository.ErrBookNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "add favorite")
		}

		return nil, errors.Wrap(err, "failed to find book")
	}

	favorite := &entity.Favorite{
		UserID: userID,
		BookID: bookID,
	}

	if err := srv.favoriteRepo.CreateFavorite(ctx, favorite); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateFavorite):
			// Already favorited. Treat the add as a success and hand back
			// the existing record so repeats converge on the same state.
			return srv.findExistingFavorite(ctx, userID, bookID)
		case errors.Is(err, repository.ErrBookNotFound):
			return nil, errors.Wrap(domainerrors.ErrBookNotFound, "add favorite")
		default:
			srv.log(ctx).Error("Failed to create favorite", slog.Any("error", err), slog.Int64("user_id", userID), slog.Int64("book_id", bookID))

			return nil, errors.Wrap(err, "failed to create favorite")
		}
	}

	// Re-read to attach the joined book data.
	created, err := srv.favoriteRepo.FindFavorite(ctx, userID, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load created favorite")
	}

	return created, nil
}

func (srv *favoriteService) findExistingFavorite(ctx context.Context, userID, bookID int64) (*entity.Favorite, error) {
	existing, err := srv.favoriteRepo.FindFavorite(ctx, userID, bookID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load existing favorite")
	}

	return existing, nil
}

// RemoveFavorite deletes the user's favorite for the given book.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID, bookID int64) (*entity.Favorite, error) {
	srv.log(ctx).Debug("Removing favorite", slog.Int64("user_id", userID), slog.Int64("book_id", bookID))

	var removed *entity.Favorite

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()

		// The lookup and delete both match the full (user, book) pair, so
		// a favorite owned by someone else looks exactly like a missing one.
		favorite, err := favoriteRepo.FindFavorite(ctx, userID, bookID)
		if err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return errors.Wrap(domainerrors.ErrFavoriteNotFound, "remove favorite")
			}

			return errors.Wrap(err, "failed to find favorite")
		}

		if err := favoriteRepo.DeleteFavorite(ctx, userID, bookID); err != nil {
			if errors.Is(err, repository.ErrFavoriteNotFound) {
				return errors.Wrap(domainerrors.ErrFavoriteNotFound, "remove favorite")
			}

			return errors.Wrap(err, "failed to delete favorite")
		}

		removed = favorite

		return nil
	})
	if err != nil {
		return nil, err
	}

	return removed, nil
}

// IsFavorite reports whether the given book is a favorite of the user.
func (srv *favoriteService) IsFavorite(ctx context.Context, userID, bookID int64) (bool, error) {
	_, err := srv.favoriteRepo.FindFavorite(ctx, userID, bookID)
	if err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check favorite")
	}

	return true, nil
}

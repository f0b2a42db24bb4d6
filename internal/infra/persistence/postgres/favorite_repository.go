package postgres

import (
	"context"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/errors"
	"shelf/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new instance of favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (repo *favoriteRepository) CreateFavorite(ctx context.Context, favorite *entity.Favorite) error {
	favoriteModel := fromFavoriteDomain(favorite)
	if err := repo.db.WithContext(ctx).Create(favoriteModel).Error; err != nil {
		// The composite unique index collapses concurrent inserts of the same
		// (user, book) pair into exactly one winner; losers land here.
		if isUniqueConstraintViolation(err) {
			return errors.Wrap(repository.ErrDuplicateFavorite, "create favorite")
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrBookNotFound, "create favorite")
		}

		return errors.Wrap(err, "failed to create favorite")
	}

	favorite.ID = favoriteModel.ID
	favorite.CreatedAt = favoriteModel.CreatedAt

	return nil
}

func (repo *favoriteRepository) FindFavorite(ctx context.Context, userID int64, bookID int64) (*entity.Favorite, error) {
	var favoriteModel model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Preload("Book").
		First(&favoriteModel, "user_id = ? AND book_id = ?", userID, bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(repository.ErrFavoriteNotFound, "find favorite")
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteModel), nil
}

func (repo *favoriteRepository) FindFavoritesByUser(ctx context.Context, userID int64) ([]*entity.Favorite, error) {
	var favoriteModels []*model.FavoriteModel
	if err := repo.db.WithContext(ctx).
		Joins("Book").
		Where("favorites.user_id = ?", userID).
		Order("\"Book\".\"title\" ASC, \"Book\".\"id\" ASC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]*entity.Favorite, 0, len(favoriteModels))
	for _, favoriteModel := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteModel))
	}

	return favorites, nil
}

func (repo *favoriteRepository) DeleteFavorite(ctx context.Context, userID int64, bookID int64) error {
	// Both halves of the pair participate in the match, so a favorite owned
	// by another user is indistinguishable from a missing one.
	result := repo.db.WithContext(ctx).
		Delete(&model.FavoriteModel{}, "user_id = ? AND book_id = ?", userID, bookID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return errors.Wrap(repository.ErrFavoriteNotFound, "delete favorite")
	}

	return nil
}

// toFavoriteDomain converts a persistence model to a domain entity.
func toFavoriteDomain(favoriteModel *model.FavoriteModel) *entity.Favorite {
	favorite := &entity.Favorite{
		ID:        favoriteModel.ID,
		UserID:    favoriteModel.UserID,
		BookID:    favoriteModel.BookID,
		CreatedAt: favoriteModel.CreatedAt,
	}
	if favoriteModel.Book != nil {
		favorite.Book = toBookDomain(favoriteModel.Book)
	}

	return favorite
}

// fromFavoriteDomain converts a domain entity to a persistence model.
func fromFavoriteDomain(favorite *entity.Favorite) *model.FavoriteModel {
	return &model.FavoriteModel{
		ID:        favorite.ID,
		UserID:    favorite.UserID,
		BookID:    favorite.BookID,
		CreatedAt: favorite.CreatedAt,
	}
}

package postgres

import (
	"context"

	"shelf/internal/domain/repository"
	"shelf/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the repository.TransactionManager
// interface using GORM's transaction support.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewGormTransactionManager creates a new transaction manager.
func NewGormTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a database transaction. The factory
// handed to fn builds repositories bound to the transactional connection.
func (manager *gormTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	err := manager.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}

// gormRepositoryFactory builds repository instances that share a single
// transactional *gorm.DB.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (factory *gormRepositoryFactory) NewBookRepository() repository.BookRepository {
	return NewBookRepository(factory.tx)
}

func (factory *gormRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(factory.tx)
}

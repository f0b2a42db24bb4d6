package model

import "time"

// FavoriteModel mirrors the 'favorites' table. The composite unique index on
// (user_id, book_id) enforces the at-most-one-favorite-per-pair invariant at
// the storage layer, so racing inserts collapse to a single row.
type FavoriteModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	UserID    int64      `gorm:"not null;uniqueIndex:idx_favorites_user_book"`
	BookID    int64      `gorm:"not null;uniqueIndex:idx_favorites_user_book"`
	Book      *BookModel `gorm:"foreignKey:BookID"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

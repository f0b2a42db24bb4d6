package model

import "time"

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Author      string `gorm:"type:varchar(255);not null"`
	Genre       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null"`
	CoverURL    string `gorm:"column:cover_url;type:varchar(255);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

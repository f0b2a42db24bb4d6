package model

import "time"

// UserModel mirrors the 'users' table. IDs are bigserial, matching the
// numeric identifiers the API exposes.
type UserModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Email          string `gorm:"type:varchar(255);unique;not null"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

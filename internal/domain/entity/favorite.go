package entity

import "time"

// Favorite links one user to one book. At most one Favorite exists per
// (UserID, BookID) pair; the storage layer enforces this with a unique
// composite index so concurrent identical creates cannot produce duplicates.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	BookID    int64     `json:"bookId"`
	Book      *Book     `json:"book,omitempty"` // Joined book data, populated on reads.
	CreatedAt time.Time `json:"createdAt"`
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an identity record. It is created out of band (seeded or managed
// elsewhere); this service only reads it to verify credentials.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"` // Login identifier, unique and case-sensitive as stored.
	HashedPassword string    `json:"-"`     // bcrypt hash; never serialized in responses.
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

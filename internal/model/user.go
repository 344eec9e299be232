package model

import (
	"time"
)

// User represents an identity owning stored secrets. Rows are created once
// from the identity provider's signup callback and never deleted here.
type User struct {
	UUID      string    `json:"uuid" db:"uuid"`
	Email     string    `json:"email" db:"email"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

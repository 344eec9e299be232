package dto

import (
	"time"
)

// CreateUserRequest is the body of POST /users, sent by the identity provider
// callback once after signup. The id is assigned by the identity provider.
type CreateUserRequest struct {
	ID        string `json:"id" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
}

// User represents a user profile on the wire
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateUserResponse is the body of a successful POST /users
type CreateUserResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// UserWithKeys is the body of GET /users/:id. Keys carries names and
// timestamps only, never decrypted values.
type UserWithKeys struct {
	User User         `json:"user"`
	Keys []KeySummary `json:"keys"`
}

// KeySummary is a key reference without its secret value
type KeySummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

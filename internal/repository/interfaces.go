package repository

import (
	"github.com/A-Shalchian/api-key-vault/internal/model"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUUID(uuid string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
}

// SecretRepository defines the interface for encrypted API key data access.
// Lookups returning (nil, nil) mean not-found; that is a normal outcome, not
// an error.
type SecretRepository interface {
	// UpsertSecret inserts the record, or replaces the stored envelope when a
	// record with the same (owner, name) already exists. The operation is
	// atomic via the UNIQUE(user_uuid, name) constraint.
	UpsertSecret(secret *model.Secret) error
	GetSecretByName(userUUID, name string) (*model.Secret, error)
	ListSecretsByUser(userUUID string) ([]*model.Secret, error)
	// DeleteSecret removes a record by id, scoped to the owner.
	// Returns the number of rows removed.
	DeleteSecret(uuid, userUUID string) (int64, error)
}

package model

import (
	"time"
)

// Secret represents one named, encrypted API key. EncryptedKey is the opaque
// envelope produced by the codec; the name is unique per owner, not globally.
type Secret struct {
	UUID         string    `json:"uuid" db:"uuid"`
	UserUUID     string    `json:"user_uuid" db:"user_uuid"`
	Name         string    `json:"name" db:"name"`
	EncryptedKey string    `json:"-" db:"encrypted_key"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the Secret model
func (Secret) TableName() string {
	return "api_keys"
}

package dto

import (
	"time"
)

// StoreKeyRequest is the body of POST /keys
type StoreKeyRequest struct {
	Name        string `json:"name" binding:"required"`
	SecretValue string `json:"secretValue" binding:"required"`
}

// StoreKeyResponse confirms a store operation; no secret material is echoed back
type StoreKeyResponse struct {
	Message string `json:"message"`
}

// RetrieveKeyResponse carries a single decrypted secret
type RetrieveKeyResponse struct {
	SecretValue string `json:"secretValue"`
}

// KeyEntry is one decrypted list entry
type KeyEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	SecretValue string    `json:"secretValue"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListKeysResponse is the body of GET /keys, entries ordered newest first
type ListKeysResponse struct {
	Keys []KeyEntry `json:"keys"`
}

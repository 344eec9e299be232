package service

import (
	"github.com/google/uuid"

	"github.com/A-Shalchian/api-key-vault/internal/constants"
	"github.com/A-Shalchian/api-key-vault/internal/crypto"
	"github.com/A-Shalchian/api-key-vault/internal/dto"
	"github.com/A-Shalchian/api-key-vault/internal/model"
	"github.com/A-Shalchian/api-key-vault/internal/repository"
	"github.com/A-Shalchian/api-key-vault/internal/utils"
)

// VaultService orchestrates store, retrieve, list and delete operations on
// encrypted API keys. It is the only component touching both the codec and
// the secret repository; every operation is scoped to the verified owner id.
type VaultService struct {
	secretRepo repository.SecretRepository
	masterKey  *crypto.MasterKeyProvider
}

// NewVaultService creates a new vault service instance
func NewVaultService(secretRepo repository.SecretRepository, masterKey *crypto.MasterKeyProvider) *VaultService {
	return &VaultService{
		secretRepo: secretRepo,
		masterKey:  masterKey,
	}
}

// StoreKey seals the secret value and upserts it under (owner, name). A
// second store with the same name replaces the stored envelope in place.
func (s *VaultService) StoreKey(userID, name, secretValue string) error {
	if name == "" {
		return constants.ErrNameRequired
	}
	if secretValue == "" {
		return constants.ErrSecretRequired
	}

	key, err := s.masterKey.Key()
	if err != nil {
		return err
	}

	envelope, err := crypto.Seal(secretValue, key)
	if err != nil {
		return err
	}

	secret := &model.Secret{
		UUID:         uuid.New().String(),
		UserUUID:     userID,
		Name:         name,
		EncryptedKey: envelope,
	}
	if err := s.secretRepo.UpsertSecret(secret); err != nil {
		utils.LogErrorWithContext("Failed to upsert api key", err, map[string]interface{}{
			"userId": userID, "name": name,
		})
		return err
	}

	return nil
}

// RetrieveKey looks up (owner, name) and returns the decrypted value. The
// lookup is owner-scoped, so another user's record with the same name is
// indistinguishable from a missing one. A decryption failure signals data
// corruption or a master key mismatch and is not mapped to not-found.
func (s *VaultService) RetrieveKey(userID, name string) (string, error) {
	if name == "" {
		return "", constants.ErrNameRequired
	}

	key, err := s.masterKey.Key()
	if err != nil {
		return "", err
	}

	secret, err := s.secretRepo.GetSecretByName(userID, name)
	if err != nil {
		return "", err
	}
	if secret == nil {
		return "", constants.ErrKeyNotFound
	}

	plaintext, err := crypto.Open(secret.EncryptedKey, key)
	if err != nil {
		utils.LogErrorWithContext("Failed to decrypt stored api key", err, map[string]interface{}{
			"userId": userID, "keyId": secret.UUID,
		})
		return "", err
	}

	return plaintext, nil
}

// ListKeys returns every key of the owner, decrypted, newest first. A single
// unreadable envelope fails the whole request; the failing record id is
// logged for operators.
func (s *VaultService) ListKeys(userID string) ([]dto.KeyEntry, error) {
	key, err := s.masterKey.Key()
	if err != nil {
		return nil, err
	}

	secrets, err := s.secretRepo.ListSecretsByUser(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.KeyEntry, 0, len(secrets))
	for _, secret := range secrets {
		plaintext, err := crypto.Open(secret.EncryptedKey, key)
		if err != nil {
			utils.LogErrorWithContext("Failed to decrypt stored api key", err, map[string]interface{}{
				"userId": userID, "keyId": secret.UUID,
			})
			return nil, err
		}
		entries = append(entries, dto.KeyEntry{
			ID:          secret.UUID,
			Name:        secret.Name,
			SecretValue: plaintext,
			CreatedAt:   secret.CreatedAt,
		})
	}

	return entries, nil
}

// DeleteKey removes a key by id, scoped to the owner
func (s *VaultService) DeleteKey(userID, keyID string) error {
	removed, err := s.secretRepo.DeleteSecret(keyID, userID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return constants.ErrKeyNotFound
	}
	return nil
}

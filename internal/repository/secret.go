/*
 *  Copyright (c) 2025, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/A-Shalchian/api-key-vault/internal/database"
	"github.com/A-Shalchian/api-key-vault/internal/model"
)

// SecretRepo implements SecretRepository
type SecretRepo struct {
	db *database.DB
}

// NewSecretRepo creates a new secret repository
func NewSecretRepo(db *database.DB) SecretRepository {
	return &SecretRepo{db: db}
}

// UpsertSecret inserts a new record or replaces the envelope of an existing
// (owner, name) pair. The ON CONFLICT clause rides on the UNIQUE(user_uuid,
// name) constraint, so concurrent stores of the same name cannot create
// duplicate rows; the last write wins.
func (r *SecretRepo) UpsertSecret(secret *model.Secret) error {
	secret.CreatedAt = time.Now()

	query := `
		INSERT INTO api_keys (uuid, user_uuid, name, encrypted_key, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_uuid, name) DO UPDATE SET encrypted_key = excluded.encrypted_key
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		secret.UUID, secret.UserUUID, secret.Name, secret.EncryptedKey, secret.CreatedAt)

	return err
}

// GetSecretByName retrieves a record by (owner, name); returns nil when absent
func (r *SecretRepo) GetSecretByName(userUUID, name string) (*model.Secret, error) {
	secret := &model.Secret{}
	query := `
		SELECT uuid, user_uuid, name, encrypted_key, created_at
		FROM api_keys
		WHERE user_uuid = ? AND name = ?
	`
	err := r.db.QueryRow(r.db.Rebind(query), userUUID, name).Scan(
		&secret.UUID, &secret.UserUUID, &secret.Name, &secret.EncryptedKey, &secret.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return secret, nil
}

// ListSecretsByUser retrieves all records for an owner, newest first
func (r *SecretRepo) ListSecretsByUser(userUUID string) ([]*model.Secret, error) {
	query := `
		SELECT uuid, user_uuid, name, encrypted_key, created_at
		FROM api_keys
		WHERE user_uuid = ?
		ORDER BY created_at DESC, uuid DESC
	`
	rows, err := r.db.Query(r.db.Rebind(query), userUUID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var secrets []*model.Secret
	for rows.Next() {
		secret := &model.Secret{}
		err := rows.Scan(&secret.UUID, &secret.UserUUID, &secret.Name, &secret.EncryptedKey, &secret.CreatedAt)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, secret)
	}

	return secrets, rows.Err()
}

// DeleteSecret removes a record by id, scoped to the owner
func (r *SecretRepo) DeleteSecret(uuid, userUUID string) (int64, error) {
	query := `DELETE FROM api_keys WHERE uuid = ? AND user_uuid = ?`
	res, err := r.db.Exec(r.db.Rebind(query), uuid, userUUID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

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

// UserRepo implements UserRepository
type UserRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &UserRepo{db: db}
}

// CreateUser inserts a new user
func (r *UserRepo) CreateUser(user *model.User) error {
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (uuid, email, first_name, last_name, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query), user.UUID, user.Email, user.FirstName, user.LastName, user.CreatedAt)

	return err
}

// GetUserByUUID retrieves a user by ID
func (r *UserRepo) GetUserByUUID(uuid string) (*model.User, error) {
	user := &model.User{}
	query := `
		SELECT uuid, email, first_name, last_name, created_at
		FROM users
		WHERE uuid = ?
	`
	err := r.db.QueryRow(r.db.Rebind(query), uuid).Scan(
		&user.UUID, &user.Email, &user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `
		SELECT uuid, email, first_name, last_name, created_at
		FROM users
		WHERE email = ?
	`
	err := r.db.QueryRow(r.db.Rebind(query), email).Scan(
		&user.UUID, &user.Email, &user.FirstName, &user.LastName, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

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
	"testing"

	"github.com/A-Shalchian/api-key-vault/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	user := &model.User{
		UUID:      "user-1",
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
	if err := repo.CreateUser(user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.CreatedAt.IsZero() {
		t.Error("CreateUser did not set CreatedAt")
	}

	byID, err := repo.GetUserByUUID("user-1")
	if err != nil {
		t.Fatalf("GetUserByUUID failed: %v", err)
	}
	if byID == nil || byID.Email != "jane@example.com" {
		t.Errorf("GetUserByUUID = %+v, want jane@example.com", byID)
	}

	byEmail, err := repo.GetUserByEmail("jane@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail == nil || byEmail.UUID != "user-1" {
		t.Errorf("GetUserByEmail = %+v, want user-1", byEmail)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	user, err := repo.GetUserByUUID("missing")
	if err != nil {
		t.Fatalf("GetUserByUUID failed: %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil for missing user, got %+v", user)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepo(db)

	first := &model.User{UUID: "user-1", Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
	if err := repo.CreateUser(first); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	dup := &model.User{UUID: "user-2", Email: "jane@example.com", FirstName: "Janet", LastName: "Doe"}
	if err := repo.CreateUser(dup); err == nil {
		t.Error("CreateUser accepted a duplicate email")
	}
}

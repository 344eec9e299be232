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

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/A-Shalchian/api-key-vault/internal/constants"
	"github.com/A-Shalchian/api-key-vault/internal/model"
)

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) CreateUser(user *model.User) error {
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetUserByUUID(uuid string) (*model.User, error) {
	for _, user := range f.users {
		if user.UUID == uuid {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeSecretRepo{})

	tests := []struct {
		name    string
		id      string
		email   string
		first   string
		last    string
		wantErr error
	}{
		{name: "missing id", email: "a@b.com", first: "A", last: "B", wantErr: constants.ErrUserIDRequired},
		{name: "missing email", id: "u1", first: "A", last: "B", wantErr: constants.ErrEmailRequired},
		{name: "missing first name", id: "u1", email: "a@b.com", last: "B", wantErr: constants.ErrFirstNameRequired},
		{name: "missing last name", id: "u1", email: "a@b.com", first: "A", wantErr: constants.ErrLastNameRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(tt.id, tt.email, tt.first, tt.last)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateUser: got err=%v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeSecretRepo{})

	if _, err := svc.CreateUser("u1", "jane@example.com", "Jane", "Doe"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Same id
	if _, err := svc.CreateUser("u1", "other@example.com", "Jane", "Doe"); !errors.Is(err, constants.ErrUserExists) {
		t.Errorf("Duplicate id: got err=%v, want ErrUserExists", err)
	}
	// Same email
	if _, err := svc.CreateUser("u2", "jane@example.com", "Janet", "Doe"); !errors.Is(err, constants.ErrUserExists) {
		t.Errorf("Duplicate email: got err=%v, want ErrUserExists", err)
	}
}

func TestGetUserWithKeys(t *testing.T) {
	userRepo := &fakeUserRepo{}
	secretRepo := &fakeSecretRepo{}
	svc := NewUserService(userRepo, secretRepo)

	if _, err := svc.CreateUser("u1", "jane@example.com", "Jane", "Doe"); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	secretRepo.secrets = append(secretRepo.secrets, &model.Secret{
		UUID: "k1", UserUUID: "u1", Name: "OpenAI", EncryptedKey: "sealed",
	})

	got, err := svc.GetUserWithKeys("u1")
	if err != nil {
		t.Fatalf("GetUserWithKeys failed: %v", err)
	}
	if got.User.Email != "jane@example.com" {
		t.Errorf("User.Email = %s", got.User.Email)
	}
	if len(got.Keys) != 1 || got.Keys[0].Name != "OpenAI" {
		t.Fatalf("Keys = %+v, want one entry named OpenAI", got.Keys)
	}
}

func TestGetUserWithKeysNotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, &fakeSecretRepo{})

	if _, err := svc.GetUserWithKeys("missing"); !errors.Is(err, constants.ErrUserNotFound) {
		t.Errorf("GetUserWithKeys: got err=%v, want ErrUserNotFound", err)
	}
}

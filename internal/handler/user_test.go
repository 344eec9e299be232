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

package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreateUserEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]string{
		"id":        "user-1",
		"email":     "user-1@example.com",
		"firstName": "Test",
		"lastName":  "User",
	}

	// Signup callback carries no bearer token
	w := doRequest(router, http.MethodPost, "/users", "", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /users = %d, want 201: %s", w.Code, w.Body.String())
	}

	// Replaying the callback must not create a second record
	w = doRequest(router, http.MethodPost, "/users", "", body)
	if w.Code != http.StatusConflict {
		t.Errorf("Duplicate POST /users = %d, want 409: %s", w.Code, w.Body.String())
	}
}

func TestCreateUserEndpointValidation(t *testing.T) {
	router, _ := setupTestRouter(t)

	tests := []struct {
		name string
		body map[string]string
	}{
		{name: "missing id", body: map[string]string{"email": "a@example.com", "firstName": "A", "lastName": "B"}},
		{name: "missing email", body: map[string]string{"id": "user-1", "firstName": "A", "lastName": "B"}},
		{name: "invalid email", body: map[string]string{"id": "user-1", "email": "not-an-email", "firstName": "A", "lastName": "B"}},
		{name: "missing names", body: map[string]string{"id": "user-1", "email": "a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, http.MethodPost, "/users", "", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("POST /users = %d, want 400: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetUserEndpoint(t *testing.T) {
	router, userRepo := setupTestRouter(t)
	createTestUser(t, userRepo, "user-1")

	w := doRequest(router, http.MethodPost, "/keys", bearerToken(t, "user-1"),
		map[string]string{"name": "OpenAI", "secretValue": "sk-abc123"})
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /keys = %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(router, http.MethodGet, "/users/user-1", bearerToken(t, "user-1"), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /users/user-1 = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Keys []struct {
			Name        string `json:"name"`
			SecretValue string `json:"secretValue"`
		} `json:"keys"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.User.ID != "user-1" {
		t.Errorf("user.id = %q, want %q", resp.User.ID, "user-1")
	}
	if len(resp.Keys) != 1 || resp.Keys[0].Name != "OpenAI" {
		t.Fatalf("Unexpected keys in profile: %+v", resp.Keys)
	}
	// The profile view lists key names only, never decrypted values
	if resp.Keys[0].SecretValue != "" {
		t.Errorf("Profile key entry exposes a secret value")
	}

	w = doRequest(router, http.MethodGet, "/users/no-such-user", bearerToken(t, "user-1"), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("GET /users/no-such-user = %d, want 404", w.Code)
	}
}

func TestGetUserRequiresAuthorization(t *testing.T) {
	router, userRepo := setupTestRouter(t)
	createTestUser(t, userRepo, "user-1")

	w := doRequest(router, http.MethodGet, "/users/user-1", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("GET /users/user-1 without token = %d, want 401", w.Code)
	}
}

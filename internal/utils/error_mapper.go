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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/A-Shalchian/api-key-vault/internal/constants"

	"github.com/go-playground/validator/v10"
)

// makeError creates a standardized error response tuple
func makeError(status int, message string) (int, interface{}) {
	return status, NewErrorResponse(status, http.StatusText(status), message)
}

// FormatValidationError converts validator errors to user-friendly messages (public API)
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error() // Not a validation error, return as-is
	}
	return formatValidationError(validationErrors)
}

// formatValidationError converts ValidationErrors to user-friendly messages (internal)
func formatValidationError(validationErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range validationErrors {
		fieldName := getUserFriendlyFieldName(fieldError.Field())
		message := getValidationErrorMessage(fieldName, fieldError.Tag(), fieldError.Param())
		messages = append(messages, message)
	}
	return strings.Join(messages, "; ")
}

// getUserFriendlyFieldName maps struct field names to user-friendly field names
func getUserFriendlyFieldName(fieldName string) string {
	fieldMap := map[string]string{
		"Name":        "name",
		"SecretValue": "secret value",
		"ID":          "id",
		"Email":       "email",
		"FirstName":   "first name",
		"LastName":    "last name",
	}

	if friendly, exists := fieldMap[fieldName]; exists {
		return friendly
	}
	return strings.ToLower(fieldName)
}

// getValidationErrorMessage creates user-friendly validation error messages
func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldName, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName)
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps domain errors and validation errors to HTTP status and error response
func GetErrorResponse(err error) (int, interface{}) {
	// First check if it's a validation error
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		userFriendlyMessage := formatValidationError(validationErrors)
		return makeError(http.StatusBadRequest, userFriendlyMessage)
	}

	// Handle domain/business logic errors
	switch {
	// User errors
	case errors.Is(err, constants.ErrUserExists):
		return makeError(http.StatusConflict, "User already exists")
	case errors.Is(err, constants.ErrUserNotFound):
		return makeError(http.StatusNotFound, "User not found")
	case errors.Is(err, constants.ErrUserIDRequired):
		return makeError(http.StatusBadRequest, "User id is required")
	case errors.Is(err, constants.ErrEmailRequired):
		return makeError(http.StatusBadRequest, "Email is required")
	case errors.Is(err, constants.ErrFirstNameRequired):
		return makeError(http.StatusBadRequest, "First name is required")
	case errors.Is(err, constants.ErrLastNameRequired):
		return makeError(http.StatusBadRequest, "Last name is required")

	// API key errors
	case errors.Is(err, constants.ErrKeyNotFound):
		return makeError(http.StatusNotFound, "API key not found")
	case errors.Is(err, constants.ErrNameRequired):
		return makeError(http.StatusBadRequest, "Key name is required")
	case errors.Is(err, constants.ErrSecretRequired):
		return makeError(http.StatusBadRequest, "Secret value is required")

	// Encryption errors. Both map to 500 but keep distinct messages so
	// operators can tell a configuration problem from unreadable data.
	case errors.Is(err, constants.ErrMasterKeyConfig):
		return makeError(http.StatusInternalServerError, "Encryption key is not configured")
	case errors.Is(err, constants.ErrDecryptionFailed):
		return makeError(http.StatusInternalServerError, "Stored secret could not be decrypted")

	// Default case for unknown errors
	default:
		return makeError(http.StatusInternalServerError, "Internal Server Error")
	}
}

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

package constants

import "errors"

var (
	ErrUserExists   = errors.New("user already exists with the given id or email")
	ErrUserNotFound = errors.New("user not found")
)

var (
	ErrKeyNotFound       = errors.New("api key not found")
	ErrNameRequired      = errors.New("key name is required")
	ErrSecretRequired    = errors.New("secret value is required")
	ErrUserIDRequired    = errors.New("user id is required")
	ErrEmailRequired     = errors.New("email is required")
	ErrFirstNameRequired = errors.New("first name is required")
	ErrLastNameRequired  = errors.New("last name is required")
)

var (
	// ErrMasterKeyConfig signals that the master encryption key could not be
	// resolved from configuration. Fatal for any operation that needs the key.
	ErrMasterKeyConfig = errors.New("master encryption key is not configured")

	// ErrDecryptionFailed signals a tampered, truncated or otherwise
	// unreadable envelope, or a master key mismatch. Deliberately distinct
	// from ErrKeyNotFound so operators can tell "no such secret" apart from
	// "stored secret unreadable".
	ErrDecryptionFailed = errors.New("stored secret could not be decrypted")
)

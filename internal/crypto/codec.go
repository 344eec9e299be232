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

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"

	"github.com/A-Shalchian/api-key-vault/internal/constants"
)

// NonceLength is the secretbox nonce length in bytes. The nonce is prefixed
// to the ciphertext inside the envelope, so an envelope is always at least
// NonceLength + secretbox.Overhead bytes before base64 encoding.
const NonceLength = 24

// Seal encrypts a UTF-8 plaintext under the given 32-byte key and returns a
// self-contained envelope: base64(nonce || ciphertext+tag). A fresh random
// nonce is generated for every call; nonce reuse under the same key would
// break confidentiality for this primitive.
func Seal(plaintext string, key []byte) (string, error) {
	if len(key) != MasterKeyLength {
		return "", fmt.Errorf("invalid key length: expected %d bytes, got %d", MasterKeyLength, len(key))
	}

	var boxKey [MasterKeyLength]byte
	copy(boxKey[:], key)

	var nonce [NonceLength]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &boxKey)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts an envelope produced by Seal. Any tampering, truncation or
// key mismatch fails with constants.ErrDecryptionFailed; garbage is never
// returned.
func Open(envelope string, key []byte) (string, error) {
	if len(key) != MasterKeyLength {
		return "", fmt.Errorf("invalid key length: expected %d bytes, got %d", MasterKeyLength, len(key))
	}

	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return "", constants.ErrDecryptionFailed
	}
	if len(raw) < NonceLength+secretbox.Overhead {
		return "", constants.ErrDecryptionFailed
	}

	var boxKey [MasterKeyLength]byte
	copy(boxKey[:], key)

	var nonce [NonceLength]byte
	copy(nonce[:], raw[:NonceLength])

	plaintext, ok := secretbox.Open(nil, raw[NonceLength:], &nonce, &boxKey)
	if !ok {
		return "", constants.ErrDecryptionFailed
	}

	return string(plaintext), nil
}

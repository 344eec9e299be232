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
	"errors"
	"testing"

	"github.com/A-Shalchian/api-key-vault/internal/constants"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	key := make([]byte, MasterKeyLength)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}
	return key
}

func TestSealOpenRoundTrip(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "typical api key", plaintext: "sk-abc123"},
		{name: "empty string", plaintext: ""},
		{name: "unicode", plaintext: "clé-secrète-ценность-鍵"},
		{name: "long value", plaintext: string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envelope, err := Seal(tt.plaintext, key)
			if err != nil {
				t.Fatalf("Seal failed: %v", err)
			}

			got, err := Open(envelope, key)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if got != tt.plaintext {
				t.Errorf("Round trip mismatch: got %q, want %q", got, tt.plaintext)
			}
		})
	}
}

func TestSealNonceFreshness(t *testing.T) {
	key := testKey(t)

	first, err := Seal("same plaintext", key)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}
	second, err := Seal("same plaintext", key)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	if first == second {
		t.Error("Two seals of the same plaintext produced identical envelopes; nonce is not fresh")
	}
}

func TestOpenTamperDetection(t *testing.T) {
	key := testKey(t)

	envelope, err := Seal("sk-abc123", key)
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		t.Fatalf("Failed to decode envelope: %v", err)
	}

	// Flip one byte at every position; none may decrypt
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		_, err := Open(base64.StdEncoding.EncodeToString(tampered), key)
		if !errors.Is(err, constants.ErrDecryptionFailed) {
			t.Fatalf("Open accepted envelope tampered at byte %d: err=%v", i, err)
		}
	}
}

func TestOpenWrongKey(t *testing.T) {
	envelope, err := Seal("sk-abc123", testKey(t))
	if err != nil {
		t.Fatalf("Seal failed: %v", err)
	}

	_, err = Open(envelope, testKey(t))
	if !errors.Is(err, constants.ErrDecryptionFailed) {
		t.Errorf("Open with wrong key: got err=%v, want ErrDecryptionFailed", err)
	}
}

func TestOpenMalformedEnvelope(t *testing.T) {
	key := testKey(t)

	tests := []struct {
		name     string
		envelope string
	}{
		{name: "not base64", envelope: "%%%not-base64%%%"},
		{name: "empty", envelope: ""},
		{name: "too short for nonce", envelope: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "nonce only, no ciphertext", envelope: base64.StdEncoding.EncodeToString(make([]byte, NonceLength))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.envelope, key)
			if !errors.Is(err, constants.ErrDecryptionFailed) {
				t.Errorf("Open(%q): got err=%v, want ErrDecryptionFailed", tt.envelope, err)
			}
		})
	}
}

func TestSealRejectsBadKeyLength(t *testing.T) {
	if _, err := Seal("value", make([]byte, 16)); err == nil {
		t.Error("Seal accepted a 16-byte key")
	}
	if _, err := Open("whatever", make([]byte, 16)); err == nil {
		t.Error("Open accepted a 16-byte key")
	}
}

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
	"sync"

	"github.com/A-Shalchian/api-key-vault/config"
	"github.com/A-Shalchian/api-key-vault/internal/constants"
	"github.com/A-Shalchian/api-key-vault/internal/utils"
)

// MasterKeyLength is the required length of the symmetric master key in bytes.
const MasterKeyLength = 32

// MasterKeyProvider resolves the process-wide symmetric master key used for
// sealing and opening stored secrets. The key is resolved once behind a
// sync.Once guard and cached for the process lifetime; it is never logged and
// never leaves the process boundary.
type MasterKeyProvider struct {
	cfg *config.Encryption

	once sync.Once
	key  []byte
	err  error
}

// NewMasterKeyProvider creates a provider backed by the given encryption
// configuration. Resolution is lazy; the first call to Key triggers it.
func NewMasterKeyProvider(cfg *config.Encryption) *MasterKeyProvider {
	return &MasterKeyProvider{cfg: cfg}
}

// Key returns the 32-byte master key. Resolution order:
//  1. a previously resolved key (idempotent, configuration is not re-read)
//  2. the base64-encoded value from ENCRYPTION_KEY
//  3. in a non-production environment with ENCRYPTION_ALLOW_DEV_RANDOM_KEY=true,
//     a randomly generated throw-away key
//
// Anything else fails with constants.ErrMasterKeyConfig.
func (p *MasterKeyProvider) Key() ([]byte, error) {
	p.once.Do(func() {
		p.key, p.err = p.resolve()
	})
	return p.key, p.err
}

func (p *MasterKeyProvider) resolve() ([]byte, error) {
	if p.cfg.Key == "" {
		if p.allowDevFallback() {
			return p.generateDevKey()
		}
		return nil, fmt.Errorf("%w: ENCRYPTION_KEY is not set", constants.ErrMasterKeyConfig)
	}

	key, err := base64.StdEncoding.DecodeString(p.cfg.Key)
	if err != nil {
		utils.LogWarning("ENCRYPTION_KEY is not valid base64")
		if p.allowDevFallback() {
			return p.generateDevKey()
		}
		return nil, fmt.Errorf("%w: value must be valid base64", constants.ErrMasterKeyConfig)
	}
	if len(key) != MasterKeyLength {
		utils.LogWarning(fmt.Sprintf("ENCRYPTION_KEY decodes to %d bytes, expected %d", len(key), MasterKeyLength))
		if p.allowDevFallback() {
			return p.generateDevKey()
		}
		return nil, fmt.Errorf("%w: value must decode to %d bytes", constants.ErrMasterKeyConfig, MasterKeyLength)
	}

	return key, nil
}

func (p *MasterKeyProvider) allowDevFallback() bool {
	return !p.cfg.IsProduction() && p.cfg.AllowDevRandomKey
}

// generateDevKey creates a random throw-away key for local development. The
// warning is deliberate and loud: anything sealed under this key becomes
// unreadable after a restart.
func (p *MasterKeyProvider) generateDevKey() ([]byte, error) {
	key := make([]byte, MasterKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("%w: failed to generate development key: %v", constants.ErrMasterKeyConfig, err)
	}
	utils.LogWarning("Using a randomly generated master key for this session. Stored secrets will not be decryptable after restart.")
	return key, nil
}

/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package keys turns a low-entropy password into a purpose-bound 256-bit
// key: Argon2id produces a 32-byte master key from (password, salt), then
// HMAC-SHA-256 key-separation binds it to a Purpose. This is the HMAC
// variant frozen by the key-derivation drift decision recorded in
// SPEC_FULL.md §7 (not HKDF); V1's Argon2 time cost is 64, not 128.
package keys

import (
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/cybele-labs/cybele-core/internal/errs"
	"github.com/cybele-labs/cybele-core/internal/hmac256"
	"github.com/cybele-labs/cybele-core/internal/purpose"
	"github.com/cybele-labs/cybele-core/internal/version"
	"github.com/cybele-labs/cybele-core/secure"
)

// MinSaltSize is the minimum Argon2 salt length accepted by the underlying
// KDF (base64-encoded before being handed to Argon2, per its own minimum).
const MinSaltSize = 8

// Derive computes the 32-byte purpose-bound encryption key for
// (version, password, salt, purpose).
//
// Derive is deterministic in all four arguments and fails with
// errs.ErrBadInput if salt is shorter than MinSaltSize, or
// errs.ErrDerivationFailure if Argon2id itself fails.
func Derive(v version.Version, password []byte, salt []byte, p purpose.Purpose) (*secure.Key, error) {
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("keys: salt must be at least %d bytes, got %d: %w", MinSaltSize, len(salt), errs.ErrBadInput)
	}
	params, err := v.Argon2Params()
	if err != nil {
		return nil, fmt.Errorf("keys: %w: %w", errs.ErrBadInput, err)
	}

	// The reference KDF expects a base64 salt string; we encode the raw
	// salt bytes before handing them to Argon2id, matching the original
	// derive_key's SaltString::b64_encode step.
	encodedSalt := base64.StdEncoding.EncodeToString(salt)

	masterKey, err := argon2IDKey(password, []byte(encodedSalt), params)
	if err != nil {
		return nil, fmt.Errorf("keys: argon2id failed: %w: %w", errs.ErrDerivationFailure, err)
	}
	defer secure.Zero(masterKey)

	mac := hmac256.Authenticate(masterKey, p.Encode())
	return secure.NewKey(mac[:])
}

// argon2IDKey isolated so a failure path (the Rust original allows the
// underlying hasher to fail) has somewhere to surface; golang.org/x/crypto's
// argon2.IDKey never returns an error, but params are still validated above
// so this function only ever hard-fails on an internal contract violation.
func argon2IDKey(password, salt []byte, params version.Params) ([]byte, error) {
	key := argon2.IDKey(password, salt, params.TimeCost, params.MemoryKiB, params.Parallelism, params.KeyLen)
	if len(key) != int(params.KeyLen) {
		return nil, fmt.Errorf("keys: argon2id returned %d bytes, want %d", len(key), params.KeyLen)
	}
	return key, nil
}

/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package cybelecore is a password-based vault library: hex codec, SHA-256,
// HMAC-SHA-256, Argon2id key derivation, ChaCha20-Poly1305 AEAD, and the
// VaultItem/Vault data model built on top of them.
//
// The package-level Encrypt and Decrypt give one-shot access to the same
// AEAD primitive the Vault type uses internally, for callers who want to
// protect a single secret without the vault's item bookkeeping. Everything
// else of interest lives in the vault subpackage.
package cybelecore

import (
	"crypto/rand"
	"io"

	"github.com/cybele-labs/cybele-core/internal/aead"
	"github.com/cybele-labs/cybele-core/internal/errs"
	"github.com/cybele-labs/cybele-core/internal/hexcodec"
	"github.com/cybele-labs/cybele-core/internal/hmac256"
	"github.com/cybele-labs/cybele-core/internal/keys"
	"github.com/cybele-labs/cybele-core/internal/purpose"
	"github.com/cybele-labs/cybele-core/internal/sha256core"
	"github.com/cybele-labs/cybele-core/internal/version"
	"github.com/cybele-labs/cybele-core/vault"
)

// Re-exported types and constants, so callers need only import this
// top-level package for the common cases.
type (
	// Version identifies the Argon2id parameter set a derivation or
	// serialized vault uses.
	Version = version.Version
	// Purpose separates keys derived for different uses of the same
	// password and salt.
	Purpose = purpose.Purpose
	// Vault is an ordered collection of encrypted VaultItems.
	Vault = vault.Vault
	// Option configures Vault.Create.
	Option = vault.Option
)

const (
	// VersionTest uses cheap Argon2id parameters; for tests only.
	VersionTest = version.Test
	// VersionV1 is the production Argon2id parameter set.
	VersionV1 = version.V1

	// PurposeFile separates a vault's file-level key from its items' keys.
	PurposeFile = purpose.File
	// PurposePassword separates a VaultItem's key from the file-level key.
	PurposePassword = purpose.Password
)

// SaltSize is the size in bytes of every salt this package accepts or produces.
const SaltSize = 32

var (
	// Create constructs a new, empty Vault. See vault.Create.
	Create = vault.Create
	// WithSalt pins a Vault's salt. See vault.WithSalt.
	WithSalt = vault.WithSalt
	// WithVersion overrides the protocol version a Vault is created under.
	// See vault.WithVersion.
	WithVersion = vault.WithVersion
	// DeserializeVault parses a serialized Vault. See vault.Deserialize.
	DeserializeVault = vault.Deserialize
)

// HexEncode renders b as lowercase hexadecimal.
func HexEncode(b []byte) string {
	return hexcodec.Encode(b)
}

// HexDecode parses lowercase hexadecimal produced by HexEncode.
func HexDecode(s string) ([]byte, error) {
	return hexcodec.Decode(s)
}

// Sha256Sum returns the SHA-256 digest of message, computed by this
// module's own FIPS 180-4 implementation rather than crypto/sha256.
func Sha256Sum(message []byte) [sha256core.Size]byte {
	return sha256core.Sum(message)
}

// HmacSha256 authenticates message under key (at most 64 bytes, the
// short-key form of RFC 2104) using this module's own HMAC-SHA-256.
func HmacSha256(key, message []byte) [sha256core.Size]byte {
	return hmac256.Authenticate(key, message)
}

// Encrypt is a one-shot AEAD: it derives a key from (v, password, salt,
// purpose) and seals plaintext under it, using a fresh random salt.
// It returns the salt alongside the ciphertext because the caller must
// store both to decrypt later.
func Encrypt(v Version, password, plaintext []byte, p Purpose) (salt, ciphertext []byte, err error) {
	salt = make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, nil, errs.Wrap("cybelecore: generate salt", err)
	}

	key, err := keys.Derive(v, password, salt, p)
	if err != nil {
		return nil, nil, err
	}
	defer key.Destroy()

	ciphertext, err = aead.Seal(key.Bytes(), plaintext)
	if err != nil {
		return nil, nil, err
	}
	return salt, ciphertext, nil
}

// Decrypt recovers the plaintext sealed by Encrypt, given the same
// version, password, salt, purpose, and the ciphertext Encrypt returned.
func Decrypt(v Version, password, salt, ciphertext []byte, p Purpose) ([]byte, error) {
	key, err := keys.Derive(v, password, salt, p)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	return aead.Open(key.Bytes(), ciphertext)
}

/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package aead wraps ChaCha20-Poly1305 with a fixed all-zero 96-bit nonce.
// This is safe only because every key that reaches Seal/Open was derived
// from a fresh, random 32-byte salt stored alongside the ciphertext (see
// internal/keys): the (key, nonce) pair is therefore unique per message
// with overwhelming probability. Callers must never reuse a salt with the
// same password and purpose to encrypt two different plaintexts.
package aead

import (
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/cybele-labs/cybele-core/internal/errs"
)

var zeroNonce = make([]byte, chacha20poly1305.NonceSize)

// Seal encrypts plaintext under key, returning ciphertext||tag.
func Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("aead: %w: %w", errs.ErrBadInput, err)
	}
	return aead.Seal(nil, zeroNonce, plaintext, nil), nil
}

// Open decrypts ciphertext (as produced by Seal) under key. A tag mismatch
// surfaces as errs.ErrAuthFailure — indistinguishable from any other
// decryption failure, so it doubles as "wrong password".
func Open(key, ciphertext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("aead: %w: %w", errs.ErrBadInput, err)
	}
	plaintext, err := aead.Open(nil, zeroNonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("aead: %w", errs.ErrAuthFailure)
	}
	return plaintext, nil
}

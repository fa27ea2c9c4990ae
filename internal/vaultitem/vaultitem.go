/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package vaultitem implements one named secret inside a Vault: a name, a
// per-item random salt, and an AEAD-encrypted value, plus the big-endian
// length-prefixed binary codec that lays three of those four fields on the
// wire (Version is carried by the enclosing Vault, never serialized per
// item).
package vaultitem

import (
	"crypto/rand"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/cybele-labs/cybele-core/internal/aead"
	"github.com/cybele-labs/cybele-core/internal/errs"
	"github.com/cybele-labs/cybele-core/internal/keys"
	"github.com/cybele-labs/cybele-core/internal/purpose"
	"github.com/cybele-labs/cybele-core/internal/version"
)

// SaltSize is the size in bytes of a VaultItem's random salt.
const SaltSize = 32

// maxFieldLen is the largest length a u16 length prefix can express.
const maxFieldLen = 1<<16 - 1

// Item is one named secret: a name, a salt, and an AEAD-encrypted value.
// Two items are equal iff all four fields match.
type Item struct {
	Version        version.Version
	Name           string
	Salt           [SaltSize]byte
	EncryptedValue []byte
}

// Encrypt builds a new Item holding value, encrypted under a key derived
// from (v, password, a fresh random salt, Purpose::Password).
func Encrypt(v version.Version, name, value string, password []byte) (*Item, error) {
	if name == "" {
		return nil, fmt.Errorf("vaultitem: name must not be empty: %w", errs.ErrBadInput)
	}
	if len(name) > maxFieldLen {
		return nil, fmt.Errorf("vaultitem: name too long (%d bytes): %w", len(name), errs.ErrBadInput)
	}

	var salt [SaltSize]byte
	if _, err := io.ReadFull(rand.Reader, salt[:]); err != nil {
		return nil, fmt.Errorf("vaultitem: generate salt: %w", err)
	}

	key, err := keys.Derive(v, password, salt[:], purpose.Password)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	ciphertext, err := aead.Seal(key.Bytes(), []byte(value))
	if err != nil {
		return nil, err
	}
	if len(ciphertext) > maxFieldLen {
		return nil, fmt.Errorf("vaultitem: encrypted value too long (%d bytes): %w", len(ciphertext), errs.ErrBadInput)
	}

	return &Item{Version: v, Name: name, Salt: salt, EncryptedValue: ciphertext}, nil
}

// Decrypt recovers the item's plaintext value under password. An AEAD tag
// mismatch (wrong password) surfaces as errs.ErrAuthFailure; invalid UTF-8
// in the decrypted bytes surfaces as errs.ErrCorrupt.
func (it *Item) Decrypt(password []byte) (string, error) {
	key, err := keys.Derive(it.Version, password, it.Salt[:], purpose.Password)
	if err != nil {
		return "", err
	}
	defer key.Destroy()

	plaintext, err := aead.Open(key.Bytes(), it.EncryptedValue)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("vaultitem: decrypted value is not valid UTF-8: %w", errs.ErrCorrupt)
	}
	return string(plaintext), nil
}

// Size is the number of bytes Serialize will produce for it.
func (it *Item) Size() int {
	return 2 + len(it.Name) + SaltSize + 2 + len(it.EncryptedValue)
}

// Serialize appends it's binary encoding to buf, returning the extended slice.
//
//	[u16 name_len][name_len bytes name][32 bytes salt][u16 ct_len][ct_len bytes encrypted_value]
func (it *Item) Serialize(buf []byte) []byte {
	buf = appendU16(buf, uint16(len(it.Name)))
	buf = append(buf, it.Name...)
	buf = append(buf, it.Salt[:]...)
	buf = appendU16(buf, uint16(len(it.EncryptedValue)))
	buf = append(buf, it.EncryptedValue...)
	return buf
}

// Deserialize decodes one Item from the front of r, returning the item and
// the number of bytes consumed. It never reads past what it needs, so the
// caller can decode a back-to-back sequence of items from one buffer.
func Deserialize(v version.Version, r []byte) (*Item, int, error) {
	offset := 0

	nameLen, err := readU16(r, offset)
	if err != nil {
		return nil, 0, err
	}
	offset += 2
	if nameLen == 0 {
		return nil, 0, fmt.Errorf("vaultitem: zero-length name: %w", errs.ErrCorrupt)
	}

	name, err := readBytes(r, offset, int(nameLen))
	if err != nil {
		return nil, 0, err
	}
	offset += int(nameLen)
	if !utf8.Valid(name) {
		return nil, 0, fmt.Errorf("vaultitem: name is not valid UTF-8: %w", errs.ErrCorrupt)
	}

	salt, err := readBytes(r, offset, SaltSize)
	if err != nil {
		return nil, 0, err
	}
	offset += SaltSize

	ctLen, err := readU16(r, offset)
	if err != nil {
		return nil, 0, err
	}
	offset += 2
	if ctLen == 0 {
		return nil, 0, fmt.Errorf("vaultitem: zero-length encrypted value: %w", errs.ErrCorrupt)
	}

	ciphertext, err := readBytes(r, offset, int(ctLen))
	if err != nil {
		return nil, 0, err
	}
	offset += int(ctLen)

	item := &Item{Version: v, Name: string(name), EncryptedValue: ciphertext}
	copy(item.Salt[:], salt)
	return item, offset, nil
}

func appendU16(buf []byte, v uint16) []byte {
	return append(buf, byte(v>>8), byte(v))
}

func readU16(r []byte, offset int) (uint16, error) {
	if offset+2 > len(r) {
		return 0, fmt.Errorf("vaultitem: short read for length prefix: %w", errs.ErrCorrupt)
	}
	return uint16(r[offset])<<8 | uint16(r[offset+1]), nil
}

func readBytes(r []byte, offset, n int) ([]byte, error) {
	if offset+n > len(r) {
		return nil, fmt.Errorf("vaultitem: short read (want %d bytes at offset %d, have %d): %w", n, offset, len(r)-offset, errs.ErrCorrupt)
	}
	out := make([]byte, n)
	copy(out, r[offset:offset+n])
	return out, nil
}

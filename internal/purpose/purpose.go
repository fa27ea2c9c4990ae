/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package purpose defines the key-separation context tags used by
// internal/keys. These byte encodings are part of the wire format by
// implication (they feed the HMAC that produces the final encryption
// key) and must never change across versions.
package purpose

// Purpose domain-separates a File-envelope key from a per-item Password key.
type Purpose int

const (
	// File derives the key that wraps the vault's item list.
	File Purpose = iota
	// Password derives the key that wraps one VaultItem's value.
	Password
)

// Encode returns the canonical byte context for p.
func (p Purpose) Encode() []byte {
	switch p {
	case File:
		return []byte("file")
	case Password:
		return []byte("password")
	default:
		panic("purpose: unknown purpose")
	}
}

func (p Purpose) String() string {
	switch p {
	case File:
		return "File"
	case Password:
		return "Password"
	default:
		return "Unknown"
	}
}

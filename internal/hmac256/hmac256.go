/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package hmac256 implements HMAC-SHA-256 for keys no longer than a single
// SHA-256 block (64 bytes). The only caller is internal/keys, which always
// passes a 32-byte Argon2 output, so the RFC 2104 rehash-long-keys path is
// deliberately not implemented; Authenticate panics if that invariant is
// ever violated.
package hmac256

import (
	"fmt"

	"github.com/cybele-labs/cybele-core/internal/sha256core"
)

const blockSize = 64

// Authenticate computes HMAC-SHA256(key, message). len(key) must be <= 64.
func Authenticate(key, message []byte) [sha256core.Size]byte {
	if len(key) > blockSize {
		panic(fmt.Sprintf("hmac256: key too long: %d bytes (max %d)", len(key), blockSize))
	}

	inner := make([]byte, 0, blockSize+len(message))
	for _, x := range key {
		inner = append(inner, x^0x36)
	}
	for i := len(key); i < blockSize; i++ {
		inner = append(inner, 0x36)
	}
	inner = append(inner, message...)
	innerHash := sha256core.Sum(inner)

	outer := make([]byte, 0, blockSize+sha256core.Size)
	for _, x := range key {
		outer = append(outer, x^0x5c)
	}
	for i := len(key); i < blockSize; i++ {
		outer = append(outer, 0x5c)
	}
	outer = append(outer, innerHash[:]...)

	return sha256core.Sum(outer)
}

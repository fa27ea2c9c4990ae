/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package sha256core implements SHA-256 directly from FIPS 180-4, rather
// than delegating to crypto/sha256. The vault's key-derivation path and
// its HMAC construction are built on this primitive so their outputs are
// exact reproductions of the known-answer test vectors rather than an
// opaque stdlib call.
//
// https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.180-4.pdf
package sha256core

import (
	"fmt"
	"math/bits"
)

// Size is the length in bytes of a SHA-256 digest.
const Size = 32

const blockSize = 64

// round constants (FIPS 180-4 §4.2.2)
var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// initial hash values (FIPS 180-4 §5.3.3)
var h0 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// maxMessageBits is the largest bit length that fits the 64-bit big-endian
// length suffix the padding appends (FIPS 180-4 §5.1.1).
const maxMessageBits = 1<<64 - 1

// Sum returns the SHA-256 digest of message.
//
// Sum panics if the message is long enough that its bit length would not
// fit in the 64-bit length field the padding requires; no real input
// reaches this limit, so the panic is a hard failure, not a recoverable
// error (spec's Fatal error class).
func Sum(message []byte) [Size]byte {
	messageBits := uint64(len(message)) * 8
	if uint64(len(message)) > maxMessageBits/8 {
		panic(fmt.Sprintf("sha256core: message too long: %d bytes", len(message)))
	}

	padded := pad(message, messageBits)

	h := h0
	var w [64]uint32
	for block := 0; block < len(padded); block += blockSize {
		chunk := padded[block : block+blockSize]
		for i := 0; i < 16; i++ {
			w[i] = uint32(chunk[i*4])<<24 | uint32(chunk[i*4+1])<<16 | uint32(chunk[i*4+2])<<8 | uint32(chunk[i*4+3])
		}
		for i := 16; i < 64; i++ {
			s0 := bits.RotateLeft32(w[i-15], -7) ^ bits.RotateLeft32(w[i-15], -18) ^ (w[i-15] >> 3)
			s1 := bits.RotateLeft32(w[i-2], -17) ^ bits.RotateLeft32(w[i-2], -19) ^ (w[i-2] >> 10)
			w[i] = w[i-16] + s0 + w[i-7] + s1
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for t := 0; t < 64; t++ {
			s1 := bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)
			ch := (e & f) ^ (^e & g)
			t1 := hh + s1 + ch + k256[t] + w[t]
			s0 := bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)
			maj := (a & b) ^ (a & c) ^ (b & c)
			t2 := s0 + maj

			hh = g
			g = f
			f = e
			e = d + t1
			d = c
			c = b
			b = a
			a = t1 + t2
		}
		h[0] += a
		h[1] += b
		h[2] += c
		h[3] += d
		h[4] += e
		h[5] += f
		h[6] += g
		h[7] += hh
	}

	var out [Size]byte
	for i, v := range h {
		out[i*4] = byte(v >> 24)
		out[i*4+1] = byte(v >> 16)
		out[i*4+2] = byte(v >> 8)
		out[i*4+3] = byte(v)
	}
	return out
}

// pad appends the 0x80 byte, zero padding, and the 64-bit big-endian bit
// length so the result is a multiple of the 64-byte block size.
func pad(message []byte, messageBits uint64) []byte {
	padLen := 56 - (len(message)+1)%64
	if padLen < 0 {
		padLen += 64
	}
	out := make([]byte, 0, len(message)+1+padLen+8)
	out = append(out, message...)
	out = append(out, 0x80)
	out = append(out, make([]byte, padLen)...)
	for i := 7; i >= 0; i-- {
		out = append(out, byte(messageBits>>(8*uint(i))))
	}
	return out
}

/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package vault

// SaltSize is the size in bytes of a Vault's envelope salt.
const SaltSize = 32

// MaxItems is the largest number of items a Vault can hold; the item count
// is carried on the wire as a big-endian u16.
const MaxItems = 1<<16 - 1

// Wire layout (big-endian):
//
//	[u8  version_tag]
//	[32  bytes vault_salt]
//	[... ChaCha20-Poly1305(
//	       key   = derive_key(version, file_pw, vault_salt, Purpose::File),
//	       nonce = 0x00 x 12,
//	       msg   = [u16 item_count][item_1]...[item_N],
//	     ) ]
//
// The item count prefix lives inside the AEAD envelope, so it is
// integrity-protected along with the items themselves. There is no
// separate length prefix around the ciphertext: the decoder treats
// everything after the salt as the envelope.
const headerSize = 1 + SaltSize

/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package secure

import "sync"

// Key holds derived key material with best-effort memory hygiene: it
// attempts to mlock its backing buffer so the key is less likely to be
// swapped to disk, and it is zeroed exactly once on Destroy.
type Key struct {
	mu     sync.Mutex
	buf    []byte
	zeroed bool
	unlock func()
}

// NewKey copies b into a freshly locked buffer. b is not modified or
// retained; the caller still owns zeroing their own copy.
func NewKey(b []byte) (*Key, error) {
	buf := make([]byte, len(b))
	copy(buf, b)

	unlock := func() {}
	if err := LockMemory(buf); err == nil {
		unlock = func() { _ = UnlockMemory(buf) }
	}

	return &Key{buf: buf, unlock: unlock}, nil
}

// Bytes returns the key's contents. The returned slice aliases Key's
// internal buffer; callers must not retain it past Destroy.
func (k *Key) Bytes() []byte {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.buf
}

// Destroy zeroes the buffer, unlocks its memory, and is safe to call more
// than once.
func (k *Key) Destroy() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.zeroed {
		return
	}
	Zero(k.buf)
	k.zeroed = true
	if k.unlock != nil {
		k.unlock()
	}
}

/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package vault implements the ordered collection of named secrets that
// cybele-core persists as a single opaque blob: an insertion-ordered list
// of encrypted items, a file-level salt, and the versioned serialize /
// deserialize protocol that wraps them in one ChaCha20-Poly1305 envelope.
//
// A Vault is a plain value: single-threaded, synchronous, and not safe for
// concurrent mutation from two goroutines (concurrent reads are fine).
// There is no background work and no file I/O — persisting the bytes
// Serialize returns, and reading them back for Deserialize, is the
// caller's job.
package vault

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/cybele-labs/cybele-core/internal/aead"
	"github.com/cybele-labs/cybele-core/internal/errs"
	"github.com/cybele-labs/cybele-core/internal/keys"
	"github.com/cybele-labs/cybele-core/internal/purpose"
	"github.com/cybele-labs/cybele-core/internal/vaultitem"
	"github.com/cybele-labs/cybele-core/internal/version"
)

// Vault is an ordered collection of VaultItems encrypted under one file
// password. Insertion order is preserved by List and by the wire format.
type Vault struct {
	version version.Version
	salt    [SaltSize]byte
	items   []*vaultitem.Item
}

// Create returns a new, empty vault. By default it is created under
// version.V1 with a freshly generated random salt; use WithSalt and
// WithVersion to override either.
func Create(opts ...Option) (*Vault, error) {
	cfg := config{version: version.V1}
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &Vault{version: cfg.version}
	if cfg.salt != nil {
		v.salt = *cfg.salt
	} else if _, err := io.ReadFull(rand.Reader, v.salt[:]); err != nil {
		return nil, errs.Wrap("vault: generate salt", err)
	}
	return v, nil
}

// Version reports the protocol version this vault was created under.
func (v *Vault) Version() version.Version { return v.version }

// Salt returns the vault's envelope salt.
func (v *Vault) Salt() [SaltSize]byte { return v.salt }

// Add encrypts value under a fresh per-item salt and itemPassword, and
// appends the resulting item. A failed Add leaves the vault unchanged.
//
// Add does not check whether name already exists: duplicate names are
// allowed and Get returns the first match, matching the original
// implementation's behavior (SPEC_FULL.md §7, Open Question).
func (v *Vault) Add(name, value string, itemPassword []byte) error {
	if len(v.items) >= MaxItems {
		return fmt.Errorf("vault: already holds the maximum of %d items: %w", MaxItems, errs.ErrBadInput)
	}
	item, err := vaultitem.Encrypt(v.version, name, value, itemPassword)
	if err != nil {
		return err
	}
	v.items = append(v.items, item)
	return nil
}

// Remove deletes every item named name. It is a no-op if none match.
func (v *Vault) Remove(name string) {
	kept := v.items[:0]
	for _, item := range v.items {
		if item.Name != name {
			kept = append(kept, item)
		}
	}
	v.items = kept
}

// Get decrypts and returns the value of the first item named name.
func (v *Vault) Get(name string, itemPassword []byte) (string, error) {
	for _, item := range v.items {
		if item.Name == name {
			return item.Decrypt(itemPassword)
		}
	}
	return "", fmt.Errorf("vault: no item named %q: %w", name, errs.ErrBadInput)
}

// List returns item names in insertion order.
func (v *Vault) List() []string {
	names := make([]string, len(v.items))
	for i, item := range v.items {
		names[i] = item.Name
	}
	return names
}

// Serialize encrypts the vault's entire item list under a key derived from
// (version, filePassword, salt, Purpose::File) and returns the persisted
// envelope: [version_tag][salt][AEAD(item_count || items)].
func (v *Vault) Serialize(filePassword []byte) ([]byte, error) {
	plain := make([]byte, 2, 2+v.itemsSize())
	plain[0] = byte(len(v.items) >> 8)
	plain[1] = byte(len(v.items))
	for _, item := range v.items {
		plain = item.Serialize(plain)
	}

	key, err := keys.Derive(v.version, filePassword, v.salt[:], purpose.File)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	envelope, err := aead.Seal(key.Bytes(), plain)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, headerSize+len(envelope))
	out = append(out, v.version.Byte())
	out = append(out, v.salt[:]...)
	out = append(out, envelope...)
	return out, nil
}

// Deserialize parses and decrypts bin, produced by Serialize, under
// filePassword. Any unknown version tag, short read, trailing bytes, or
// authentication failure (including a wrong password) is an error.
func Deserialize(bin []byte, filePassword []byte) (*Vault, error) {
	if len(bin) < headerSize {
		return nil, fmt.Errorf("vault: envelope shorter than header (%d bytes): %w", len(bin), errs.ErrCorrupt)
	}

	v, ok := version.FromByte(bin[0])
	if !ok {
		return nil, fmt.Errorf("vault: unknown version tag %d: %w", bin[0], errs.ErrCorrupt)
	}

	var salt [SaltSize]byte
	copy(salt[:], bin[1:headerSize])

	key, err := keys.Derive(v, filePassword, salt[:], purpose.File)
	if err != nil {
		return nil, err
	}
	defer key.Destroy()

	plain, err := aead.Open(key.Bytes(), bin[headerSize:])
	if err != nil {
		return nil, err
	}

	if len(plain) < 2 {
		return nil, fmt.Errorf("vault: decrypted envelope shorter than item count: %w", errs.ErrCorrupt)
	}
	itemCount := int(plain[0])<<8 | int(plain[1])

	offset := 2
	items := make([]*vaultitem.Item, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		item, n, err := vaultitem.Deserialize(v, plain[offset:])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		offset += n
	}
	if offset != len(plain) {
		return nil, fmt.Errorf("vault: %d trailing bytes after last item: %w", len(plain)-offset, errs.ErrCorrupt)
	}

	return &Vault{version: v, salt: salt, items: items}, nil
}

// Describe returns a short human-readable summary (item count and the size
// a password-protected serialization of the vault would occupy).
func (v *Vault) Describe() string {
	return fmt.Sprintf("vault: %d item(s), version %s, ~%s serialized",
		len(v.items), v.version, humanize.Bytes(uint64(headerSize+2+v.itemsSize()+16)))
}

func (v *Vault) itemsSize() int {
	total := 0
	for _, item := range v.items {
		total += item.Size()
	}
	return total
}

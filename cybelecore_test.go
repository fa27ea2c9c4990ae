/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cybelecore

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cybele-labs/cybele-core/internal/errs"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	password := []byte("correct horse battery staple")
	plaintext := []byte("the quick brown fox")

	salt, ciphertext, err := Encrypt(VersionTest, password, plaintext, PurposePassword)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(salt) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(salt), SaltSize)
	}

	got, err := Decrypt(VersionTest, password, salt, ciphertext, PurposePassword)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("Decrypt = %q, want %q", got, plaintext)
	}
}

func TestDecryptWrongPasswordFails(t *testing.T) {
	salt, ciphertext, err := Encrypt(VersionTest, []byte("pw1"), []byte("secret"), PurposeFile)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt(VersionTest, []byte("pw2"), salt, ciphertext, PurposeFile); !errors.Is(err, errs.ErrAuthFailure) {
		t.Fatalf("expected errs.ErrAuthFailure, got %v", err)
	}
}

func TestPurposeSeparationPreventsCrossDecryption(t *testing.T) {
	password := []byte("shared password")
	salt, ciphertext, err := Encrypt(VersionTest, password, []byte("secret"), PurposeFile)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if _, err := Decrypt(VersionTest, password, salt, ciphertext, PurposePassword); !errors.Is(err, errs.ErrAuthFailure) {
		t.Fatalf("expected cross-purpose decrypt to fail with errs.ErrAuthFailure, got %v", err)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, b := range [][]byte{nil, {0x00}, {0xde, 0xad, 0xbe, 0xef}, bytes.Repeat([]byte{0x5a}, 100)} {
		got, err := HexDecode(HexEncode(b))
		if err != nil {
			t.Fatalf("HexDecode(HexEncode(%v)): %v", b, err)
		}
		if !bytes.Equal(got, b) && !(len(got) == 0 && len(b) == 0) {
			t.Fatalf("round trip mismatch: got %v, want %v", got, b)
		}
	}
}

func TestSha256SumKnownVector(t *testing.T) {
	got := Sha256Sum([]byte("abc"))
	want := "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	if HexEncode(got[:]) != want {
		t.Fatalf("Sha256Sum(abc) = %x, want %s", got, want)
	}
}

//go:build go1.25
// +build go1.25

/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package vault

import (
	"testing"

	"github.com/cybele-labs/cybele-core/internal/version"
)

func FuzzDeserialize(f *testing.F) {
	v, err := Create(WithVersion(version.Test))
	if err != nil {
		f.Fatalf("Create failed: %v", err)
	}
	if err := v.Add("item", "value", []byte("pw")); err != nil {
		f.Fatalf("Add failed: %v", err)
	}
	bin, err := v.Serialize([]byte("file password"))
	if err != nil {
		f.Fatalf("Serialize failed: %v", err)
	}
	f.Add(bin)
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Fuzz(func(t *testing.T, data []byte) {
		// Deserialize must never panic on attacker-controlled bytes; any
		// malformed envelope should surface as an error instead.
		_, _ = Deserialize(data, []byte("file password"))
	})
}

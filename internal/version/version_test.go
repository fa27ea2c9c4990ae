/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package version

import "testing"

func TestFromByte(t *testing.T) {
	v0, ok := FromByte(0)
	if !ok || v0 != Test {
		t.Fatalf("FromByte(0) = %v, %v; want Test, true", v0, ok)
	}
	if v0.Byte() != 0 {
		t.Fatalf("Test.Byte() = %d, want 0", v0.Byte())
	}

	v1, ok := FromByte(1)
	if !ok || v1 != V1 {
		t.Fatalf("FromByte(1) = %v, %v; want V1, true", v1, ok)
	}
	if v1.Byte() != 1 {
		t.Fatalf("V1.Byte() = %d, want 1", v1.Byte())
	}

	for _, b := range []byte{2, 255} {
		if _, ok := FromByte(b); ok {
			t.Fatalf("FromByte(%d) unexpectedly decoded", b)
		}
	}
}

func TestArgon2ParamsUnknownVersion(t *testing.T) {
	unknown := Version(42)
	if _, err := unknown.Argon2Params(); err == nil {
		t.Fatal("expected error for unknown version")
	}
}

func TestArgon2ParamsFrozenV1TimeCost(t *testing.T) {
	p, err := V1.Argon2Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The key-derivation drift in the original source is resolved in favor
	// of time_cost=64; this guards against silently drifting to 128.
	if p.TimeCost != 64 {
		t.Fatalf("V1 TimeCost = %d, want 64", p.TimeCost)
	}
	if p.MemoryKiB != 32768 || p.Parallelism != 4 || p.KeyLen != 32 {
		t.Fatalf("unexpected V1 params: %+v", p)
	}
}

func TestArgon2ParamsTestVersionCheap(t *testing.T) {
	p, err := Test.Argon2Params()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.MemoryKiB != 512 || p.TimeCost != 1 || p.Parallelism != 1 {
		t.Fatalf("unexpected Test params: %+v", p)
	}
}

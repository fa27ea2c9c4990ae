/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cybelecore

import "testing"

func TestGeneratePasswordCharsetSize(t *testing.T) {
	if len(passwordChars) != 141 {
		t.Fatalf("passwordChars has %d entries, want 141", len(passwordChars))
	}
	seen := make(map[rune]bool)
	for _, r := range passwordChars {
		seen[r] = true
	}
	for _, excluded := range []rune{'I', 'l', 'O', '0'} {
		if seen[excluded] {
			t.Fatalf("passwordChars must not contain %q", excluded)
		}
	}
}

func TestGeneratePasswordLength(t *testing.T) {
	p, err := GeneratePassword(16)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if got := len([]rune(p)); got != 16 {
		t.Fatalf("len(password) = %d, want 16", got)
	}
}

func TestGeneratePasswordZeroLength(t *testing.T) {
	p, err := GeneratePassword(0)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if p != "" {
		t.Fatalf("GeneratePassword(0) = %q, want empty string", p)
	}
}

func TestGeneratePasswordRejectsNegativeLength(t *testing.T) {
	if _, err := GeneratePassword(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestGeneratePasswordConsecutiveCallsDiffer(t *testing.T) {
	p1, err := GeneratePassword(24)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	p2, err := GeneratePassword(24)
	if err != nil {
		t.Fatalf("GeneratePassword: %v", err)
	}
	if p1 == p2 {
		t.Fatal("two consecutive 24-char passwords were equal")
	}
}

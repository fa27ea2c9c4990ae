/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cybelecore

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordChars is the 141-character multiset GeneratePassword samples
// from: it excludes I, l, O, 0 (easily confused with one another) and
// duplicates letters and digits so generated passwords skew toward
// alphanumerics rather than punctuation.
var passwordChars = []rune(
	"qwertyuiopasdfghjkzxcvbnm" +
		"qwertyuiopasdfghjkzxcvbnm" +
		"QWERTYUPASDFGHJKLZXCVBNM" +
		"QWERTYUPASDFGHJKLZXCVBNM" +
		"123456789" +
		"123456789" +
		"-_+=<>.!?:;~@#$%^&*()[]{}",
)

// GeneratePassword returns a random string of length n, sampling uniformly
// from passwordChars via the OS CSPRNG. It is provided as a convenience for
// callers choosing item passwords; the vault itself never calls it.
func GeneratePassword(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("cybelecore: password length must be non-negative, got %d", n)
	}
	max := big.NewInt(int64(len(passwordChars)))
	out := make([]rune, n)
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("cybelecore: generate password: %w", err)
		}
		out[i] = passwordChars[idx.Int64()]
	}
	return string(out), nil
}

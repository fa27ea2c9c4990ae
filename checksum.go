/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package cybelecore

import (
	"fmt"

	"github.com/cybele-labs/cybele-core/internal/hexcodec"
	"github.com/cybele-labs/cybele-core/internal/sha256core"
	"github.com/cybele-labs/cybele-core/secure"
)

// Checksum computes the SHA-256 digest of data, using this module's own
// FIPS 180-4 implementation.
func Checksum(data []byte) []byte {
	sum := sha256core.Sum(data)
	return sum[:]
}

// ChecksumHex computes the SHA-256 digest of data and returns it hex-encoded.
func ChecksumHex(data []byte) string {
	return hexcodec.Encode(Checksum(data))
}

// VerifyChecksum reports whether data's SHA-256 digest matches want, using
// a constant-time comparison.
func VerifyChecksum(data, want []byte) bool {
	return secure.SecureCompare(Checksum(data), want)
}

// VerifyChecksumHex reports whether data's SHA-256 digest matches the
// hex-encoded wantHex.
func VerifyChecksumHex(data []byte, wantHex string) (bool, error) {
	want, err := hexcodec.Decode(wantHex)
	if err != nil {
		return false, fmt.Errorf("cybelecore: invalid hex checksum: %w", err)
	}
	return VerifyChecksum(data, want), nil
}

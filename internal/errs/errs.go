/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

// Package errs collects the vault's error taxonomy. Every fallible
// operation wraps one of these sentinels with fmt.Errorf("%w: ..."), so
// callers that care can still errors.Is their way to a category, while the
// top-level API is free to collapse everything down to a single error
// return (distinguishing "wrong password" from "corrupt file" to an
// attacker is itself a side channel).
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBadInput covers zero-length names, oversize fields, item counts
	// above 65535, and Argon2 salts shorter than the minimum.
	ErrBadInput = errors.New("bad input")
	// ErrCorrupt covers short reads, unknown version tags, invalid UTF-8,
	// and trailing bytes after the last decoded item.
	ErrCorrupt = errors.New("corrupt data")
	// ErrAuthFailure covers any AEAD tag mismatch. Deliberately
	// indistinguishable from "wrong password" to an external caller.
	ErrAuthFailure = errors.New("authentication failed")
	// ErrDerivationFailure covers Argon2 internal failures (bad parameters,
	// allocation failure). Rare; the caller should treat it like ErrBadInput.
	ErrDerivationFailure = errors.New("key derivation failed")
)

// Wrap adds operation context to err while keeping it matchable via
// errors.Is against the sentinel it wraps.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

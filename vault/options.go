/*
 * This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.
 * If a copy of the MPL was not distributed with this file, You can obtain one at
 * https://mozilla.org/MPL/2.0/.
 */

package vault

import "github.com/cybele-labs/cybele-core/internal/version"

type config struct {
	salt    *[32]byte
	version version.Version
}

// Option configures Create.
type Option func(*config)

// WithSalt pins the vault's salt instead of generating one from the OS
// CSPRNG. Intended for reproducible tests; production callers should omit it.
func WithSalt(salt [32]byte) Option {
	return func(c *config) {
		c.salt = &salt
	}
}

// WithVersion overrides the protocol version a new vault is created under.
// Create defaults to version.V1; tests use this to force version.Test so
// they run with cheap Argon2 parameters.
func WithVersion(v version.Version) Option {
	return func(c *config) {
		c.version = v
	}
}

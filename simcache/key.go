// SPDX-License-Identifier: MIT
// Package: simcache
//
// Purpose:
//   - Deterministic cache keys over ordered string parts, so equal transform
//     requests collide and different ones never do.

package simcache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key builds a deterministic key from ordered parts: the hex SHA-256 of the
// length-prefixed concatenation. Length prefixes keep part boundaries
// unambiguous, so Key("ab", "c") and Key("a", "bc") differ.
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%d:%s", len(p), p)
	}

	return hex.EncodeToString(h.Sum(nil))
}

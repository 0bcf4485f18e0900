// SPDX-License-Identifier: MIT
// Package simcache: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// simcache package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user input.

package simcache

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "simcache: ...". Compute callbacks pass
// their own errors through untouched; the sentinels below cover cache usage
// mistakes only.

var (
	// ErrNilCache indicates a nil Cache passed to a caching helper.
	ErrNilCache = errors.New("simcache: nil cache")

	// ErrEmptyKey indicates an empty cache key.
	ErrEmptyKey = errors.New("simcache: empty key")

	// ErrNilCompute indicates a nil compute callback.
	ErrNilCompute = errors.New("simcache: nil compute function")
)

// simcacheErrorf attaches the operation tag to a sentinel (or an already
// wrapped chain) without breaking errors.Is matching.
func simcacheErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// SPDX-License-Identifier: MIT
// Package: simcache
//
// Purpose:
//   - Read-through caching for expensive similarity transforms, so batch
//     runs that revisit the same model matrix pay the O(m²·n) softmax cost
//     once. The cache is an injected interface; runs that must recompute
//     pass NopCache instead of a flag.
//
// Concurrency:
//   - MemoryCache is safe for concurrent use. Compute callbacks run outside
//     the lock; concurrent misses on one key may compute in parallel, and
//     the first stored result wins so every caller shares one instance.
//     SimilarityMatrix has no mutating API, which makes sharing sound.

package simcache

import (
	"sync"

	"github.com/katalvlaran/lvlsim/simmat"
)

// Operation name constants for unified error wrapping.
const (
	opGetOrCompute       = "GetOrCompute"
	opCachedMeanSoftmax  = "CachedMeanSoftmax"
	meanSoftmaxKeyPrefix = "mean-softmax"
)

// Cache is a read-through store for computed similarity matrices.
type Cache interface {
	// GetOrCompute returns the matrix cached under key, calling compute and
	// storing its result on a miss. Compute errors pass through and are
	// never cached.
	GetOrCompute(key string, compute func() (*simmat.SimilarityMatrix, error)) (*simmat.SimilarityMatrix, error)
}

// MemoryCache is an in-memory Cache. Construct with NewMemoryCache; the
// zero value is not usable.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]*simmat.SimilarityMatrix
}

// Compile-time interface checks.
var (
	_ Cache = (*MemoryCache)(nil)
	_ Cache = NopCache{}
)

// NewMemoryCache returns an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]*simmat.SimilarityMatrix)}
}

// GetOrCompute implements Cache.
//
// Errors: ErrEmptyKey, ErrNilCompute, plus whatever compute returns.
func (c *MemoryCache) GetOrCompute(key string, compute func() (*simmat.SimilarityMatrix, error)) (*simmat.SimilarityMatrix, error) {
	if key == "" {
		return nil, simcacheErrorf(opGetOrCompute, ErrEmptyKey)
	}
	if compute == nil {
		return nil, simcacheErrorf(opGetOrCompute, ErrNilCompute)
	}

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	computed, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if winner, raced := c.entries[key]; raced {
		return winner, nil // a concurrent miss stored first; share its result
	}
	c.entries[key] = computed

	return computed, nil
}

// Len returns the number of cached matrices.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// NopCache is a Cache that never stores: every GetOrCompute calls compute.
// Use it to force recomputation through code paths written against Cache.
type NopCache struct{}

// GetOrCompute implements Cache by always computing.
//
// Errors: ErrEmptyKey, ErrNilCompute, plus whatever compute returns.
func (NopCache) GetOrCompute(key string, compute func() (*simmat.SimilarityMatrix, error)) (*simmat.SimilarityMatrix, error) {
	if key == "" {
		return nil, simcacheErrorf(opGetOrCompute, ErrEmptyKey)
	}
	if compute == nil {
		return nil, simcacheErrorf(opGetOrCompute, ErrNilCompute)
	}

	return compute()
}

// CachedMeanSoftmax returns src's mean-softmax-probability transform through
// the cache. The key covers the caller-chosen matrix name, the subset labels
// and their order, so differently narrowed transforms never collide; the
// name must uniquely identify src's contents within the cache's lifetime.
//
// Errors: ErrNilCache, plus the cache and transform error surfaces.
func CachedMeanSoftmax(c Cache, src *simmat.SimilarityMatrix, name string, subset []string) (*simmat.SimilarityMatrix, error) {
	if c == nil {
		return nil, simcacheErrorf(opCachedMeanSoftmax, ErrNilCache)
	}

	parts := append([]string{meanSoftmaxKeyPrefix, name}, subset...)

	return c.GetOrCompute(Key(parts...), func() (*simmat.SimilarityMatrix, error) {
		return src.MeanSoftmaxProbability(subset)
	})
}

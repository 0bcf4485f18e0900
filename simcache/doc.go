// Package simcache provides read-through caching for computed similarity
// matrices.
//
// 🚀 What lives here?
//
//	A small Cache interface (GetOrCompute), an in-memory implementation, a
//	no-op implementation for forced recomputation, a deterministic SHA-256
//	key builder, and CachedMeanSoftmax, the helper that wraps the expensive
//	O(m²·n) softmax transform.
//
// ✨ Key features:
//   - caching policy is injected, not a boolean: pass NopCache to rerun
//     everything, MemoryCache to share within a batch
//   - keys are content-addressed from ordered parts with unambiguous
//     boundaries, so subset order is part of the identity
//   - cached matrices are shared pointers; the simmat API is read-only,
//     which keeps sharing sound
//
// ⚙️ Usage:
//
//	cache := simcache.NewMemoryCache()
//	probs, err := simcache.CachedMeanSoftmax(cache, scores, "spose49", nil)
//	...
//	probsAgain, _ := simcache.CachedMeanSoftmax(cache, scores, "spose49", nil) // hit
package simcache

// Package lvlsim is your toolkit for representational similarity analysis:
// labelled similarity and dissimilarity matrices, behavioral-model
// transforms, and permutation-based significance testing.
//
// 🚀 What is lvlsim?
//
//	A focused, deterministic library that brings together:
//		• Labelled matrices: symmetric similarity/RDM views with safe
//		  label-based subsetting and condensed-form correlation
//		• Model transforms: dot-product similarity & the mean-softmax
//		  triplet-probability transform over a condition subset
//		• NHST: randomization (permutation) tests with seeded, reproducible
//		  null distributions
//		• Predictors: distance kernels (cosine, correlation, Euclidean,
//		  Minkowski-3) and matrix builders with NaN degradation reports
//		• Data plumbing: CSV/TSV vector tables, pair lists, labelled grids,
//		  POS tables, word lists
//		• Taxonomy: IS-A hierarchies with Jiang–Conrath distances
//		• Caching: read-through memoization for expensive transforms
//
// ✨ Why choose lvlsim?
//
//   - Deterministic by default – seeded RNG streams, reproducible p-values
//   - Explicit degradation – missing words become NaN plus a Report, never
//     silent zeros
//   - Label safety – every matrix operation goes through validated labels
//   - Built on gonum – dense/symmetric kernels, not hand-rolled loops
//
// Under the hood, everything is organized under six subpackages:
//
//	simmat/     — labelled matrices, softmax transform, RDMs, randomization
//	predictors/ — distance kernels, source interfaces & matrix builders
//	norms/      — CSV/TSV readers: vector tables, pair lists, grids, POS
//	taxonomy/   — IS-A graphs, information content, Jiang–Conrath distance
//	simcache/   — read-through caches for similarity transforms
//	cmd/lvlsim/ — the batch analysis runner (YAML config, CSV report)
//
// Quick sketch of the main pipeline:
//
//	vectors ─▶ ByDotProduct ─▶ MeanSoftmaxProbability ─▶ ToRDM
//	                                                       │
//	reference RDM ────────────── CorrelateWithNHST ◀───────┘
//
// Dive into the package docs and examples/ for runnable walkthroughs.
//
//	go get github.com/katalvlaran/lvlsim
package lvlsim

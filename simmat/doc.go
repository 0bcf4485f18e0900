// Package simmat computes and compares labelled similarity structures:
// symmetric matrices of pairwise similarity or dissimilarity between named
// conditions, with permutation-based significance testing.
//
// 🚀 What is representational similarity analysis?
//
//	Two models "represent alike" when they order the same condition pairs as
//	similar and dissimilar, regardless of how their raw scores are scaled.
//	RSA makes that comparable: each model becomes a representational
//	dissimilarity matrix (RDM), two RDMs are vectorized to their upper
//	triangles and correlated, and a permutation test tells how surprising
//	the agreement is.  Used in:
//	  • comparing embedding spaces with behavioral judgment data
//	  • validating semantic norms against each other
//	  • model selection over candidate representations
//
// ✨ Key features:
//   - LabelledMatrix: label-addressed symmetric storage (gonum SymDense),
//     subset extraction that never silently drops or reorders
//   - ByDotProduct: embeddings → raw similarity matrix
//   - MeanSoftmaxProbability: raw scores → mean triplet-choice probabilities
//     (numerically stabilized softmax; O(m²·n) over subsets)
//   - RDM conversion (1−similarity) plus CorrelateWithNHST: Pearson agreement
//     with a seeded permutation null distribution
//   - missing data policy: NaN under WithAllowMissing, explicit narrowing via
//     CompleteLabels, never silent propagation into statistics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlsim/simmat"
//
//	sm, err := simmat.ByDotProduct(embeddings, words)        // n×d rows → n×n
//	probs, err := sm.MeanSoftmaxProbability(subset)          // behavioral scale
//	model, err := probs.ToRDM()                              // 1 − similarity
//	res, err := model.CorrelateWithNHST(reference,
//	    simmat.DefaultRandomizationOptions())                // r, p, n_perms
//
// Performance:
//
//   - Softmax transform: O(m²·n) time for an m-condition subset of n.
//   - Randomization test: O(NPerms·n²) time, reusing buffers across draws.
//
// Determinism: every operation is a pure function of its inputs; the only
// randomness lives in the permutation engine and is always explicitly seeded
// (Seed==0 selects a stable default stream).
//
// See examples in example_test.go.
package simmat

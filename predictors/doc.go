// Package predictors turns word-data sources into labelled similarity and
// dissimilarity matrices ready for representational comparison.
//
// 🚀 What lives here?
//
//	The glue between raw lexical resources and simmat: small source
//	contracts (VectorSource, AssociationSource, DistanceSource,
//	MatrixSource, Vocabulary), the vector distance kernels the sources are
//	compared with, and builders that assemble per-word lookups into
//	matrices.
//
// ✨ Key features:
//   - drop-on-correlate missing policy: a word a source does not cover
//     degrades to NaN entries plus a Report line; the batch never aborts on
//     vocabulary gaps
//   - distance kernels: cosine, correlation, Euclidean, Minkowski-3
//     (gonum floats/stat), with degenerate inputs surfaced as errors rather
//     than NaN
//   - builders for the three source shapes: pairwise tables, association
//     lookups, per-word vectors
//
// ⚙️ Usage:
//
//	rdm, report, err := predictors.BuildVectorRDM(norms, words, predictors.Minkowski3)
//	if !report.Complete() {
//	    words = rdm.CompleteLabels()        // drop unavailable conditions
//	    rdm, err = rdm.ForSubset(words)
//	}
//
// Sources are injected interfaces; implementations live in sibling packages
// (norms for CSV tables, taxonomy for Jiang-Conrath associations).
package predictors

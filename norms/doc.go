// Package norms loads word-norm tables from CSV/TSV files and exposes them
// through the predictors source contracts.
//
// 🚀 What lives here?
//
//	The file-backed data layer: VectorTable (row-per-word feature vectors),
//	PairTable (precomputed unordered pair values), a square labelled-grid
//	reader for published similarity matrices, and POSTable (elexicon-style
//	part-of-speech precedence lists).
//
// ✨ Key features:
//   - one TableOptions shape for every reader (delimiter + header flag),
//     with "" and "NA" cells parsed as NaN missing markers
//   - tables implement predictors.VectorSource / DistanceSource /
//     MatrixSource / Vocabulary, so they plug straight into the builders
//   - unknown words and pairs wrap predictors.ErrNotInVocabulary, keeping
//     the drop-on-correlate policy intact end to end
//
// ⚙️ Usage:
//
//	f, _ := os.Open("sensorimotor.csv")
//	table, err := norms.ReadVectorTable(f, norms.DefaultTableOptions())
//	...
//	rdm, report, err := predictors.BuildVectorRDM(table, words, predictors.Minkowski3)
//
// Tables are immutable after construction and safe for concurrent reads.
package norms

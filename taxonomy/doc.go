// Package taxonomy provides an in-memory IS-A hierarchy with information
// content and Jiang-Conrath (JCN) semantic distances over it.
//
// 🚀 What lives here?
//
//	A small lexical-taxonomy store (synsets, IS-A edges, word senses) and
//	the JCN distance in the Maki et al. (2004) formulation:
//	dist(s1,s2) = IC(s1) + IC(s2) - 2·IC(mics), minimized over sense pairs
//	at word level, with distances at or beyond 1000 treated as missing.
//
// ✨ Key features:
//   - multiple inheritance and cycle-tolerant upward traversal
//   - per-word part-of-speech sense filtering (AnyPOS = every sense)
//   - word-level gaps wrap predictors.ErrNotInVocabulary, so association
//     matrices build through vocabulary holes instead of aborting
//
// ⚙️ Usage:
//
//	tax := taxonomy.New()
//	_ = tax.AddSynset("entity.n.01", 0.1)
//	_ = tax.AddSynset("cat.n.01", 7.9)
//	_ = tax.AddIsA("cat.n.01", "entity.n.01")
//	_ = tax.AddSense("cat", predictors.Noun, "cat.n.01")
//	...
//	sm, report, err := predictors.BuildAssociationSimilarity(tax, words, predictors.Noun)
//
// Taxonomy is build-then-read: construct it fully, then share it across
// goroutines for lookups.
package taxonomy

// Package metric provides string distance metrics and the modifiers that
// compose them into fuzzy matching heuristics.
//
// Base metrics:
//   - Hamming, Levenshtein, OptimalStringAlignment, DamerauLevenshtein: edit counts
//   - Jaro, RatcliffObershelp: bounded similarity-derived distances
//   - QGram, Cosine, Jaccard, Overlap, SorensenDice: q-gram profile distances
//
// Modifiers:
//   - Normalize: scales any metric into [0, 1]
//   - Winkler: boosts strings sharing a prefix
//   - Partial: best alignment of the shorter string inside the longer one
//   - TokenSort: compares words in sorted order
//   - TokenSet: compares the shared word core against both strings
//   - TokenMax: minimum over the above, penalised by length disparity
//
// Every evaluation takes a maxDist bound. When the true distance exceeds the
// bound a metric may return any value >= maxDist, which lets nested modifiers
// prune inner computations. Metrics are immutable and safe for concurrent use.
package metric

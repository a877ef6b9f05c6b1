// Package match scans collections of strings for fuzzy matches of a query.
//
// Key functions:
//   - FindNearest: the single most similar candidate
//   - FindAll: every candidate above a similarity threshold, ranked
//   - Fold: normalizes input before comparison (case, NFC, separators, camelCase)
//
// Scans run in parallel across candidates. Any metric.Metric can be used since
// metrics hold no mutable state. Missing (nil) candidates are skipped and
// reported rather than failing the scan.
package match

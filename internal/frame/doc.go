// Package frame holds a query result materialized into local memory.
//
// A Frame is an ordered set of named columns over a list of rows. It is
// built once from a fully drained result set and is read-only afterwards.
//
// # Aggregation conventions
//
//   - NULL values are skipped by Mean
//   - An empty or all-NULL column has mean NaN
//   - Sums are pairwise over row order, with NULL rows counted as zero
//   - Text and blob values count as numeric when they parse as floats,
//     matching SQLite type affinity
//   - Column names are compared after NFC normalization
package frame

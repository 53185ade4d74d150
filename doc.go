// Package join merges two sorted sequences in a single streaming pass.
//
// Both inputs must already be sorted by the same key, either under their
// natural ordering or under a caller-supplied comparison function. The
// package offers two views over the same underlying algorithm:
//
//   - Merge / MergeFunc interleave the inputs into one flat sorted sequence,
//     preserving duplicates (a multiset union).
//   - Join / JoinFunc align the inputs by key into Rows, producing a full
//     outer join: matched keys yield a Row with both sides present, unmatched
//     keys yield a Row with one side absent.
//
// Evaluation is lazy and pull-based. Nothing is read from either input until
// the consumer ranges over the result, and at most one pending element is
// held per side. Neither input is ever materialized, so inputs may be
// arbitrarily large (or infinite, if the consumer stops early).
//
// Sortedness of the inputs is a precondition, not a checked property.
// Unsorted inputs produce an incorrect but still terminating interleaving.
//
// This is the classic sort-merge join algorithm; see
// https://use-the-index-luke.com/sql/join/sort-merge-join for background.
package join

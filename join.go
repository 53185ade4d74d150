package join

import (
	"cmp"
	"iter"
)

// Merge interleaves two sorted sequences into one sorted sequence under the
// natural ordering of T. Every element of both inputs appears exactly once in
// the output; duplicates are preserved (multiset union).
//
// The result is lazy and re-iterable: each range builds fresh cursors from
// left and right, so both inputs must support being iterated from the start
// on each pass.
func Merge[T cmp.Ordered](left, right iter.Seq[T]) iter.Seq[T] {
	return MergeFunc(left, right, cmp.Compare[T])
}

// MergeFunc is Merge with an explicit comparison function. compare must
// implement a consistent total order over T and return negative, zero, or
// positive as a sorts before, equal to, or after b. An inconsistent compare
// yields an undefined interleaving, not an error.
func MergeFunc[T any](left, right iter.Seq[T], compare func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for row := range JoinFunc(left, right, compare) {
			if v, ok := row.Left(); ok && !yield(v) {
				return
			}
			if v, ok := row.Right(); ok && !yield(v) {
				return
			}
		}
	}
}

// Join aligns two sorted sequences by key under the natural ordering of T,
// producing a full outer join: one Row per alignment step, with the absent
// side unset wherever a key has no counterpart.
//
// When equal keys appear on both sides simultaneously, both cursors advance
// together and a single matched Row is emitted for that step — a streaming
// single-pass join, not a cross product over duplicate keys. Duplicates on
// one side only fan out as one row each.
//
// Like Merge, the result is lazy and re-iterable.
func Join[T cmp.Ordered](left, right iter.Seq[T]) iter.Seq[Row[T]] {
	return JoinFunc(left, right, cmp.Compare[T])
}

// JoinFunc is Join with an explicit comparison function.
func JoinFunc[T any](left, right iter.Seq[T], compare func(a, b T) int) iter.Seq[Row[T]] {
	return func(yield func(Row[T]) bool) {
		nextLeft, stopLeft := iter.Pull(left)
		defer stopLeft()
		nextRight, stopRight := iter.Pull(right)
		defer stopRight()

		e := newEngine(nextLeft, nextRight, compare)
		for {
			row, ok := e.step()
			if !ok {
				return
			}
			if !yield(row) {
				return
			}
		}
	}
}

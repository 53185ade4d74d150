package join

import "fmt"

// Row is one aligned step of a join: the left element, the right element, or
// both when their keys compared equal. At least one side is always present.
//
// A Row is immutable. The engine constructs each Row exactly once and never
// retains it, so the consumer owns the value outright.
type Row[T any] struct {
	left     T
	right    T
	hasLeft  bool
	hasRight bool
}

func leftOnly[T any](v T) Row[T] {
	return Row[T]{left: v, hasLeft: true}
}

func rightOnly[T any](v T) Row[T] {
	return Row[T]{right: v, hasRight: true}
}

func matched[T any](l, r T) Row[T] {
	return Row[T]{left: l, right: r, hasLeft: true, hasRight: true}
}

// Left returns the left-side element and whether it is present.
func (r Row[T]) Left() (T, bool) {
	return r.left, r.hasLeft
}

// Right returns the right-side element and whether it is present.
func (r Row[T]) Right() (T, bool) {
	return r.right, r.hasRight
}

// Matched reports whether both sides are present, i.e. the keys compared
// equal on this step.
func (r Row[T]) Matched() bool {
	return r.hasLeft && r.hasRight
}

// String renders the row as "(left,right)" with "-" for an absent side.
func (r Row[T]) String() string {
	switch {
	case r.hasLeft && r.hasRight:
		return fmt.Sprintf("(%v,%v)", r.left, r.right)
	case r.hasLeft:
		return fmt.Sprintf("(%v,-)", r.left)
	default:
		return fmt.Sprintf("(-,%v)", r.right)
	}
}

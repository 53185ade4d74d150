package join

// side holds the cursor state for one input: the pull function, the
// last-fetched element, and whether the next step must advance the cursor.
//
// INVARIANTS:
//   - ok=false is sticky: once a cursor reports exhausted it is never pulled
//     again (advance is only set alongside a fresh comparison loss or match).
//   - val is only meaningful while ok is true.
type side[T any] struct {
	next    func() (T, bool)
	val     T
	ok      bool
	advance bool
}

// pull fetches the next element if this side is flagged for advancement.
// A side that lost the previous comparison keeps its current element and is
// re-compared against the other side's next element.
func (s *side[T]) pull() {
	if s.advance {
		s.val, s.ok = s.next()
		s.advance = false
	}
}

// engine is the sort-merge step machine. It owns its two cursors exclusively
// and produces one Row per step until both sides are exhausted.
//
// An engine is forward-only and not restartable; the factory functions build
// a fresh engine for every iteration of the sequences they return. It is not
// safe for concurrent use — each instance belongs to exactly one consumer.
type engine[T any] struct {
	left    side[T]
	right   side[T]
	compare func(a, b T) int
}

func newEngine[T any](left, right func() (T, bool), compare func(a, b T) int) *engine[T] {
	return &engine[T]{
		left:    side[T]{next: left, advance: true},
		right:   side[T]{next: right, advance: true},
		compare: compare,
	}
}

// step advances whichever side(s) were flagged on the previous step, compares
// the current elements, and emits one Row. The second return is false once
// both inputs are exhausted; the engine produces nothing further after that.
//
// An exhausted side always loses the comparison, so the remaining side drains
// to completion. Equal keys flag both sides, so a run of duplicate keys on
// one side fans out as one row per duplicate with no buffering.
func (e *engine[T]) step() (Row[T], bool) {
	e.left.pull()
	e.right.pull()

	switch {
	case !e.left.ok && !e.right.ok:
		return Row[T]{}, false
	case !e.left.ok:
		e.right.advance = true
		return rightOnly(e.right.val), true
	case !e.right.ok:
		e.left.advance = true
		return leftOnly(e.left.val), true
	}

	switch c := e.compare(e.left.val, e.right.val); {
	case c < 0:
		// left wins, consume from the left next step
		e.left.advance = true
		return leftOnly(e.left.val), true
	case c > 0:
		// right wins, consume from the right next step
		e.right.advance = true
		return rightOnly(e.right.val), true
	default:
		// keys equal, consume from both
		e.left.advance = true
		e.right.advance = true
		return matched(e.left.val, e.right.val), true
	}
}

package harness

import (
	"slices"

	"github.com/akwilson/join"
	"github.com/akwilson/join/internal/compare"
)

// Result holds the rendered output of a scenario run: one string per merged
// value (merge view) or per rendered row (join view).
type Result struct {
	Output []string
}

// Run executes a scenario and applies its assertions. The returned Result is
// valid even when an assertion fails, so callers can still golden-compare or
// dump the output.
func Run(s *Scenario) (*Result, error) {
	name := s.Compare
	if name == "" {
		name = "natural"
	}
	cmp, err := compare.ForName(name)
	if err != nil {
		return nil, err
	}

	left := slices.Values(s.Left)
	right := slices.Values(s.Right)

	var out []string
	switch s.View {
	case ViewJoin:
		for row := range join.JoinFunc(left, right, cmp) {
			out = append(out, row.String())
		}
	default:
		out = slices.AppendSeq(out, join.MergeFunc(left, right, cmp))
	}

	result := &Result{Output: out}
	for _, a := range s.Assertions {
		if err := applyAssertion(result, cmp, a); err != nil {
			return result, err
		}
	}
	return result, nil
}

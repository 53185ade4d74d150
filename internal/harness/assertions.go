package harness

import (
	"fmt"
	"slices"
	"strings"

	"github.com/akwilson/join/internal/compare"
)

// AssertionError is returned when a scenario assertion fails. It carries the
// full output so the failure is debuggable without re-running.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Output   []string
}

func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "\noutput:\n")
	for i, line := range e.Output {
		fmt.Fprintf(&buf, "  [%d] %s\n", i+1, line)
	}
	return buf.String()
}

func applyAssertion(r *Result, cmp compare.Func, a Assertion) error {
	switch a.Type {
	case AssertSorted:
		return assertSorted(r.Output, cmp)
	case AssertCount:
		if len(r.Output) != a.Count {
			return &AssertionError{
				Type:     AssertCount,
				Expected: fmt.Sprintf("%d entries", a.Count),
				Actual:   fmt.Sprintf("%d entries", len(r.Output)),
				Output:   r.Output,
			}
		}
	case AssertContains:
		if !slices.Contains(r.Output, a.Value) {
			return &AssertionError{
				Type:     AssertContains,
				Expected: fmt.Sprintf("output containing %q", a.Value),
				Actual:   "not present",
				Output:   r.Output,
			}
		}
	case AssertOutput:
		if !slices.Equal(r.Output, a.Lines) {
			return &AssertionError{
				Type:     AssertOutput,
				Expected: strings.Join(a.Lines, ", "),
				Actual:   strings.Join(r.Output, ", "),
				Output:   r.Output,
			}
		}
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
	return nil
}

func assertSorted(output []string, cmp compare.Func) error {
	for i := 1; i < len(output); i++ {
		if cmp(output[i-1], output[i]) > 0 {
			return &AssertionError{
				Type:     AssertSorted,
				Expected: "non-decreasing output",
				Actual:   fmt.Sprintf("%q sorts after %q at index %d", output[i-1], output[i], i),
				Output:   output,
			}
		}
	}
	return nil
}

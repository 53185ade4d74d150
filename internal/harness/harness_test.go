package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MergeView(t *testing.T) {
	result, err := Run(&Scenario{
		Name:  "merge",
		View:  ViewMerge,
		Left:  []string{"AAA", "CCC"},
		Right: []string{"BBB"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, result.Output)
}

func TestRun_JoinView(t *testing.T) {
	result, err := Run(&Scenario{
		Name:  "join",
		View:  ViewJoin,
		Left:  []string{"AAA", "BBB"},
		Right: []string{"AAA", "CCC"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"(AAA,AAA)", "(BBB,-)", "(-,CCC)"}, result.Output)
}

func TestRun_LengthComparator(t *testing.T) {
	result, err := Run(&Scenario{
		Name:    "length",
		View:    ViewMerge,
		Compare: "length",
		Left:    []string{"A", "CCC"},
		Right:   []string{"ZZ"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"A", "ZZ", "CCC"}, result.Output)
}

func TestRun_UnknownComparator(t *testing.T) {
	_, err := Run(&Scenario{
		Name:    "bad",
		View:    ViewMerge,
		Compare: "reverse",
	})

	assert.Error(t, err)
}

func TestRun_FailedAssertionReturnsOutput(t *testing.T) {
	result, err := Run(&Scenario{
		Name:  "count_mismatch",
		View:  ViewMerge,
		Left:  []string{"AAA"},
		Right: []string{"BBB"},
		Assertions: []Assertion{
			{Type: AssertCount, Count: 5},
		},
	})

	require.Error(t, err)
	var aerr *AssertionError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, AssertCount, aerr.Type)
	assert.Equal(t, []string{"AAA", "BBB"}, result.Output, "output survives assertion failure")
}

func TestRun_Assertions(t *testing.T) {
	scenario := &Scenario{
		Name:  "asserted",
		View:  ViewMerge,
		Left:  []string{"AAA", "CCC"},
		Right: []string{"BBB"},
		Assertions: []Assertion{
			{Type: AssertSorted},
			{Type: AssertCount, Count: 3},
			{Type: AssertContains, Value: "BBB"},
			{Type: AssertOutput, Lines: []string{"AAA", "BBB", "CCC"}},
		},
	}

	_, err := Run(scenario)
	assert.NoError(t, err)
}

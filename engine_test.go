package join

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sliceCursor returns a pull function over vals, counting fetches in pulls.
func sliceCursor(vals []string, pulls *int) func() (string, bool) {
	i := 0
	return func() (string, bool) {
		if pulls != nil {
			*pulls++
		}
		if i >= len(vals) {
			return "", false
		}
		v := vals[i]
		i++
		return v, true
	}
}

func TestEngine_OneRowPerStep(t *testing.T) {
	e := newEngine(
		sliceCursor([]string{"AAA", "CCC"}, nil),
		sliceCursor([]string{"BBB"}, nil),
		cmp.Compare[string],
	)

	row, ok := e.step()
	require.True(t, ok)
	v, present := row.Left()
	assert.True(t, present)
	assert.Equal(t, "AAA", v)
	_, present = row.Right()
	assert.False(t, present, "AAA sorts before BBB, right side must be absent")

	row, ok = e.step()
	require.True(t, ok)
	v, present = row.Right()
	assert.True(t, present)
	assert.Equal(t, "BBB", v)

	row, ok = e.step()
	require.True(t, ok)
	v, present = row.Left()
	assert.True(t, present)
	assert.Equal(t, "CCC", v)
}

func TestEngine_EqualKeysAdvanceBothSides(t *testing.T) {
	e := newEngine(
		sliceCursor([]string{"AAA", "ZZZ"}, nil),
		sliceCursor([]string{"AAA", "ZZZ"}, nil),
		cmp.Compare[string],
	)

	for i := 0; i < 2; i++ {
		row, ok := e.step()
		require.True(t, ok)
		assert.True(t, row.Matched(), "step %d should pair equal keys", i)
	}

	_, ok := e.step()
	assert.False(t, ok)
}

func TestEngine_ExhaustedSideDrainsOther(t *testing.T) {
	e := newEngine(
		sliceCursor(nil, nil),
		sliceCursor([]string{"AAA", "BBB", "CCC"}, nil),
		cmp.Compare[string],
	)

	for _, want := range []string{"AAA", "BBB", "CCC"} {
		row, ok := e.step()
		require.True(t, ok)
		v, present := row.Right()
		assert.True(t, present)
		assert.Equal(t, want, v)
		assert.False(t, row.Matched())
	}

	_, ok := e.step()
	assert.False(t, ok)
}

func TestEngine_LosingSideIsNotRefetched(t *testing.T) {
	var leftPulls, rightPulls int
	e := newEngine(
		sliceCursor([]string{"AAA", "BBB", "CCC"}, &leftPulls),
		sliceCursor([]string{"ZZZ"}, &rightPulls),
		cmp.Compare[string],
	)

	// Three left wins in a row: ZZZ stays current on the right throughout.
	for i := 0; i < 3; i++ {
		_, ok := e.step()
		require.True(t, ok)
	}

	assert.Equal(t, 3, leftPulls)
	assert.Equal(t, 1, rightPulls, "right lost every comparison, its single fetch must be sticky")
}

func TestEngine_TerminatesOnceBothExhausted(t *testing.T) {
	var leftPulls, rightPulls int
	e := newEngine(
		sliceCursor(nil, &leftPulls),
		sliceCursor(nil, &rightPulls),
		cmp.Compare[string],
	)

	for i := 0; i < 3; i++ {
		_, ok := e.step()
		assert.False(t, ok)
	}

	// Exhaustion is sticky: the cursors are pulled once each, never again.
	assert.Equal(t, 1, leftPulls)
	assert.Equal(t, 1, rightPulls)
}

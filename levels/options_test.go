package levels_test

import (
	"testing"

	"github.com/katalvlaran/plotnum/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { levels.WithCount(0) })
	assert.Panics(t, func() { levels.WithFactors() })
	assert.Panics(t, func() { levels.WithFactors(2, 0) })
}

// TestWithFactors_Copies makes sure later edits to the caller's slice
// do not leak into the option.
func TestWithFactors_Copies(t *testing.T) {
	fs := []int{10}
	opt := levels.WithFactors(fs...)
	fs[0] = 1000

	cands, err := levels.Candidates(0, 100, opt)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, 10, cands[0].Factor)
}

func TestOptions_LaterWins(t *testing.T) {
	lv, err := levels.Auto(0, 100, levels.WithCount(3), levels.WithCount(11))
	require.NoError(t, err)
	assert.Len(t, lv.Values, 11)
}

// TestDefaultFactors_NotShared makes sure writes to the returned menu do not
// change later searches.
func TestDefaultFactors_NotShared(t *testing.T) {
	before, err := levels.Auto(0, 100, levels.WithCount(10))
	require.NoError(t, err)

	fs := levels.DefaultFactors()
	assert.Equal(t, []int{2, 5, 10, 20, 50, 100, 200, 500, 1000}, fs)
	fs[2] = 1000

	after, err := levels.Auto(0, 100, levels.WithCount(10))
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, after.Values, 11)
	assert.Equal(t, 10, levels.DefaultFactors()[2])
}

package mendel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDominantAllele(t *testing.T) {
	p, err := DominantAllele(2, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.78333, p, 1e-5)

	for _, par := range [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-1, 1, 1}} {
		_, err := DominantAllele(par[0], par[1], par[2])
		assert.ErrorIs(t, err, ErrInvalidParameters, "parameters %v", par)
	}
}

func TestIndependentAlleles(t *testing.T) {
	p, err := IndependentAlleles(2, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.684, p, 1e-3)

	p, err = IndependentAlleles(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	p, err = IndependentAlleles(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p)

	_, err = IndependentAlleles(-1, 1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = IndependentAlleles(1, -1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestExpectedOffspring(t *testing.T) {
	e, err := ExpectedOffspring([NCouples]int{1, 0, 0, 1, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 3.5, e, 1e-12)

	e, err = ExpectedOffspring([NCouples]int{})
	require.NoError(t, err)
	assert.Zero(t, e)

	_, err = ExpectedOffspring([NCouples]int{1, -1})
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestRabbits(t *testing.T) {
	tests := []struct {
		n, k int
		r    uint64
	}{
		{5, 3, 19},
		{1, 3, 1},
		{2, 3, 1},
		{3, 3, 4},
		{10, 1, 55},
		{4, 0, 1},
		{40, 5, 148277527396903091},
		{93, 1, 12200160415121876738},
	}
	for _, tc := range tests {
		r, err := Rabbits(tc.n, tc.k)
		require.NoError(t, err)
		assert.Equal(t, tc.r, r, "n=%d, k=%d", tc.n, tc.k)
	}

	_, err := Rabbits(94, 1)
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = Rabbits(0, 1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
	_, err = Rabbits(3, -1)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

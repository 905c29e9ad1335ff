package plot

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/tabulated"
)

func TestLines1D(t *testing.T) {
	c, err := tabulated.NewContinuous1D([]float64{3, 4, 5}, 1, 2, false)
	require.NoError(t, err)
	lines, err := Lines(c, Options{})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, []float64{1, 1.5, 2}, lines[0].Xs)
	assert.Equal(t, []float64{3, 4, 5}, lines[0].Ys)

	d := tabulated.NewDiscrete1D([]float64{7, 8})
	lines, err = Lines(d, Options{})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, []float64{0, 1}, lines[0].Xs)
	assert.Equal(t, []float64{7, 8}, lines[0].Ys)
}

func TestLines2D(t *testing.T) {
	vals := []float64{0, 1, 2, 3, 4, 5}
	c, err := tabulated.NewContinuous2D(2, 3, vals, 0, 1, 0, 4, false)
	require.NoError(t, err)
	lines, err := Lines(c, Options{})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, []float64{0, 2, 4}, lines[0].Xs)
	assert.Equal(t, []float64{0, 1, 2}, lines[0].Ys)
	assert.Equal(t, []float64{3, 4, 5}, lines[1].Ys)
	assert.Equal(t, "x = 1", lines[1].Label)

	d, err := tabulated.NewDiscrete2D(3, 2, vals)
	require.NoError(t, err)
	lines, err = Lines(d, Options{})
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, []float64{0, 1}, lines[2].Xs)
	assert.Equal(t, []float64{4, 5}, lines[2].Ys)
}

func TestLines3D(t *testing.T) {
	vals := make([]float64, 2*2*3)
	for i := range vals {
		vals[i] = float64(i)
	}
	c, err := tabulated.NewContinuous3D(2, 2, 3, vals, 0, 1, 0, 1, 0, 1, false)
	require.NoError(t, err)
	d, err := tabulated.NewDiscrete3D(2, 2, 3, vals)
	require.NoError(t, err)

	table := []struct {
		fn    tabulated.Function
		slice int
		ys    [][]float64
		err   error
	}{
		{c, 0, [][]float64{{0, 1, 2}, {3, 4, 5}}, nil},
		{c, 1, [][]float64{{6, 7, 8}, {9, 10, 11}}, nil},
		{d, 1, [][]float64{{6, 7, 8}, {9, 10, 11}}, nil},
		{c, 2, nil, ErrBadSlice},
		{d, -1, nil, ErrBadSlice},
	}

	for i, test := range table {
		lines, err := Lines(test.fn, Options{Slice: test.slice})
		if test.err != nil {
			assert.True(t, errors.Is(err, test.err),
				"%d) Expected %v, got %v", i, test.err, err)
			continue
		}
		require.NoError(t, err, "%d)", i)
		require.Len(t, lines, len(test.ys), "%d)", i)
		for j := range lines {
			assert.Equal(t, test.ys[j], lines[j].Ys, "%d) line %d", i, j)
		}
	}
}

func TestLinesRejectsNil(t *testing.T) {
	var c1 *tabulated.Continuous1DFunction
	var d3 *tabulated.Discrete3DFunction
	table := []tabulated.Function{nil, c1, d3}

	for i, fn := range table {
		_, err := Lines(fn, Options{})
		assert.True(t, errors.Is(err, ErrNilFunction),
			"%d) Expected %v, got %v", i, ErrNilFunction, err)
		assert.Error(t, Function("f", fn, Options{}), "%d)", i)
	}
}

package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/phil-mansfield/tabulated"
)

func lj(t *testing.T, vals ...float64) *tabulated.Continuous1DFunction {
	f, err := tabulated.NewContinuous1D(vals, 0, 2.5, false)
	require.NoError(t, err)
	return f
}

func TestAddLookup(t *testing.T) {
	r := New(WithLogger(zap.NewNop()))

	idx, err := r.Add("lj", lj(t, 1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	idx, err = r.Add("table", tabulated.NewDiscrete1D([]float64{4, 5}))
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"lj", "table"}, r.Names())
	assert.Equal(t, "table", r.Name(1))
	assert.Equal(t, tabulated.KindDiscrete1D, r.Get(1).Kind())
	assert.NotEmpty(t, r.Entry(0).ID)
	assert.NotEqual(t, r.Entry(0).ID, r.Entry(1).ID)

	fn, idx, ok := r.Lookup("lj")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, tabulated.KindContinuous1D, fn.Kind())

	_, idx, ok = r.Lookup("missing")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)
}

func TestAddErrors(t *testing.T) {
	r := New()
	_, err := r.Add("lj", lj(t, 1, 2))
	require.NoError(t, err)

	var nilFn *tabulated.Discrete1DFunction
	table := []struct {
		name string
		fn   tabulated.Function
		err  error
	}{
		{"", lj(t, 1, 2), ErrEmptyName},
		{"lj", lj(t, 3, 4), ErrDuplicateName},
		{"other", nil, ErrNilFunction},
		{"other", nilFn, ErrNilFunction},
	}
	for i, test := range table {
		_, err := r.Add(test.name, test.fn)
		assert.True(t, errors.Is(err, test.err),
			"%d) Expected %v, got %v", i, test.err, err)
	}
	assert.Equal(t, 1, r.Len())
}

func TestReplaceRemove(t *testing.T) {
	r := New()
	_, err := r.Add("a", lj(t, 1, 2))
	require.NoError(t, err)
	_, err = r.Add("b", lj(t, 3, 4))
	require.NoError(t, err)
	_, err = r.Add("c", lj(t, 5, 6))
	require.NoError(t, err)

	id := r.Entry(1).ID
	require.NoError(t, r.Replace("b", lj(t, 7, 8)))
	assert.Equal(t, id, r.Entry(1).ID)
	name, ok := r.Dedup(lj(t, 7, 8))
	assert.True(t, ok)
	assert.Equal(t, "b", name)
	_, ok = r.Dedup(lj(t, 3, 4))
	assert.False(t, ok)

	assert.True(t, errors.Is(r.Replace("z", lj(t, 1, 2)), ErrUnknownName))
	assert.True(t, errors.Is(r.Replace("a", nil), ErrNilFunction))

	require.NoError(t, r.Remove("a"))
	assert.Equal(t, []string{"b", "c"}, r.Names())
	_, idx, ok := r.Lookup("c")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	name, ok = r.Dedup(lj(t, 5, 6))
	assert.True(t, ok)
	assert.Equal(t, "c", name)

	assert.True(t, errors.Is(r.Remove("a"), ErrUnknownName))
}

func TestDedup(t *testing.T) {
	r := New()
	_, err := r.Add("lj", lj(t, 1, 2, 3))
	require.NoError(t, err)
	_, err = r.Add("d", tabulated.NewDiscrete1D([]float64{1, 2, 3}))
	require.NoError(t, err)

	name, ok := r.Dedup(lj(t, 1, 2, 3))
	assert.True(t, ok)
	assert.Equal(t, "lj", name)

	name, ok = r.Dedup(tabulated.NewDiscrete1D([]float64{1, 2, 3}))
	assert.True(t, ok)
	assert.Equal(t, "d", name)

	_, ok = r.Dedup(lj(t, 1, 2, 4))
	assert.False(t, ok)
	_, ok = r.Dedup(nil)
	assert.False(t, ok)
}

func TestStale(t *testing.T) {
	r := New()
	f := lj(t, 1, 2, 3)
	_, err := r.Add("lj", f)
	require.NoError(t, err)

	assert.True(t, r.Stale("lj"), "never derived")
	require.NoError(t, r.MarkDerived("lj"))
	assert.False(t, r.Stale("lj"))
	assert.Empty(t, r.StaleNames())

	require.NoError(t, f.SetParameters([]float64{4, 5, 6}, 0, 1))
	assert.True(t, r.Stale("lj"), "parameters changed")
	assert.Equal(t, []string{"lj"}, r.StaleNames())

	// A failed update leaves the function and its staleness alone.
	require.NoError(t, r.MarkDerived("lj"))
	require.Error(t, f.SetParameters([]float64{4}, 0, 1))
	assert.False(t, r.Stale("lj"))

	require.NoError(t, r.Replace("lj", lj(t, 1, 2)))
	assert.True(t, r.Stale("lj"), "replaced")

	assert.True(t, r.Stale("missing"))
	assert.True(t, errors.Is(r.MarkDerived("missing"), ErrUnknownName))
}

func TestRegistryEqual(t *testing.T) {
	build := func(last float64) *Registry {
		r := New()
		_, err := r.Add("a", lj(t, 1, 2))
		require.NoError(t, err)
		_, err = r.Add("b", tabulated.NewDiscrete1D([]float64{last}))
		require.NoError(t, err)
		return r
	}

	r1, r2, r3 := build(1), build(1), build(2)
	assert.True(t, r1.Equal(r2))
	assert.False(t, r1.Equal(r3))
	assert.False(t, r1.Equal(nil))

	require.NoError(t, r2.Remove("a"))
	assert.False(t, r1.Equal(r2))
}

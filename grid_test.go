package tabulated

import (
	"testing"
)

func TestGridIdx(t *testing.T) {
	table := []struct {
		widths  []int
		i, j, k int
		idx     int
	}{
		{[]int{5}, 3, 0, 0, 3},
		{[]int{2, 3}, 0, 0, 0, 0},
		{[]int{2, 3}, 0, 2, 0, 2},
		{[]int{2, 3}, 1, 0, 0, 3},
		{[]int{2, 3, 4}, 1, 2, 3, 23},
		{[]int{2, 3, 4}, 0, 1, 0, 4},
		{[]int{2, 3, 4}, 1, 0, 0, 12},
	}

	for i, test := range table {
		g := NewGrid(test.widths...)
		idx := g.Idx(test.i, test.j, test.k)
		if idx != test.idx {
			t.Errorf("%d) Expected index %d, got %d", i, test.idx, idx)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(2, 3)
	if g.Dim != 2 || g.Length != 6 {
		t.Errorf("Expected Dim = 2, Length = 6, got %d, %d", g.Dim, g.Length)
	}

	table := []struct {
		i, j, k int
		ok      bool
	}{
		{0, 0, 0, true},
		{1, 2, 0, true},
		{2, 0, 0, false},
		{0, 3, 0, false},
		{0, 0, 1, false},
		{-1, 0, 0, false},
	}
	for i, test := range table {
		ok := g.BoundsCheck(test.i, test.j, test.k)
		if ok != test.ok {
			t.Errorf("%d) Expected ok = %v, got %v", i, test.ok, ok)
		}
	}
}

func TestFunctionGrid(t *testing.T) {
	for i, f := range allVariants(t) {
		g := f.Grid()
		if g.Length != 8 {
			t.Errorf("%d) Expected grid of length 8, got %d", i, g.Length)
		}
		if g.Dim != f.Kind().Dim() {
			t.Errorf("%d) Expected grid of dim %d, got %d",
				i, f.Kind().Dim(), g.Dim)
		}
	}
}

func TestAtUsesGrid(t *testing.T) {
	vals := make([]float64, 2*3*4)
	for i := range vals {
		vals[i] = float64(i)
	}
	c, err := NewContinuous3D(2, 3, 4, vals, 0, 1, 0, 1, 0, 1, false)
	if err != nil {
		t.Fatal(err.Error())
	}
	d, err := NewDiscrete2D(4, 6, vals)
	if err != nil {
		t.Fatal(err.Error())
	}

	g := c.Grid()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				if idx := g.Idx(i, j, k); c.At(i, j, k) != vals[idx] {
					t.Errorf("Expected At(%d, %d, %d) = %g, got %g",
						i, j, k, vals[idx], c.At(i, j, k))
				}
			}
		}
	}

	g = d.Grid()
	for i := 0; i < 4; i++ {
		for j := 0; j < 6; j++ {
			if idx := g.Idx(i, j, 0); d.At(i, j) != vals[idx] {
				t.Errorf("Expected At(%d, %d) = %g, got %g",
					i, j, vals[idx], d.At(i, j))
			}
		}
	}

	// Grid returns a copy.
	g.Width[0] = 100
	if d.Grid().Width[0] != 4 {
		t.Errorf("Expected Grid to return a copy")
	}
}

package tabulated

// Grid provides an interface for reasoning over a flat slice of samples as if
// it were a 1D, 2D or 3D grid. Unused axes have a width of 1.
type Grid struct {
	Dim    int
	Width  [3]int
	Length int

	// Strides of the first two axes. The last axis always has a stride of 1.
	xStride, yStride int
}

// NewGrid returns a Grid over the given axis widths. At most three widths are
// used.
func NewGrid(widths ...int) *Grid {
	g := &Grid{}
	g.Init(widths...)
	return g
}

// Init initializes a Grid instance.
func (g *Grid) Init(widths ...int) {
	if len(widths) > 3 {
		widths = widths[:3]
	}
	g.Dim = len(widths)
	g.Width = [3]int{1, 1, 1}
	copy(g.Width[:], widths)

	g.yStride = g.Width[2]
	g.xStride = g.Width[1] * g.Width[2]
	g.Length = g.Width[0] * g.xStride
}

// Idx returns the flat index of the sample at the given coordinates. Unused
// coordinates should be zero.
func (g *Grid) Idx(i, j, k int) int {
	return i*g.xStride + j*g.yStride + k
}

// BoundsCheck returns true if the given coordinates are within the Grid and
// false otherwise.
func (g *Grid) BoundsCheck(i, j, k int) bool {
	return (0 <= i && 0 <= j && 0 <= k) &&
		(i < g.Width[0] && j < g.Width[1] && k < g.Width[2])
}

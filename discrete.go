package tabulated

// Discrete1DFunction is a sequence of samples indexed by integer position.
// It has no domain and accepts any number of values.
type Discrete1DFunction struct {
	base
	values []float64
}

// NewDiscrete1D creates a Discrete1DFunction holding a copy of values.
func NewDiscrete1D(values []float64) *Discrete1DFunction {
	return &Discrete1DFunction{values: copyFloats(values)}
}

// SetParameters replaces the samples. It cannot fail.
func (f *Discrete1DFunction) SetParameters(values []float64) {
	f.values = copyFloats(values)
	f.updateCount++
}

// Parameters returns a copy of the samples.
func (f *Discrete1DFunction) Parameters() []float64 {
	return copyFloats(f.values)
}

func (f *Discrete1DFunction) Len() int         { return len(f.values) }
func (f *Discrete1DFunction) At(i int) float64 { return f.values[i] }
func (f *Discrete1DFunction) Kind() Kind       { return KindDiscrete1D }
func (f *Discrete1DFunction) Grid() *Grid      { return NewGrid(len(f.values)) }
func (f *Discrete1DFunction) Clone() Function  { return NewDiscrete1D(f.values) }

func (f *Discrete1DFunction) Equal(other Function) bool {
	if other == nil || other.Kind() != KindDiscrete1D {
		return false
	}
	g, ok := other.(*Discrete1DFunction)
	return ok && g != nil && floatsEqual(f.values, g.values)
}

func (f *Discrete1DFunction) Fingerprint() uint64 {
	h := newHasher(KindDiscrete1D)
	h.values(f.values)
	return h.sum()
}

// Discrete2DFunction is a grid of samples indexed by integer position.
// values[i*ysize + j] is the sample at (i, j).
type Discrete2DFunction struct {
	base
	xsize, ysize int
	values       []float64
	grid         Grid
}

// NewDiscrete2D creates a Discrete2DFunction. len(values) must equal
// xsize*ysize.
func NewDiscrete2D(xsize, ysize int, values []float64) (*Discrete2DFunction, error) {
	f := &Discrete2DFunction{}
	if err := f.set(xsize, ysize, values); err != nil {
		return nil, err
	}
	return f, nil
}

// SetParameters replaces the grid. On failure f is left unchanged and its
// update count is not incremented.
func (f *Discrete2DFunction) SetParameters(xsize, ysize int, values []float64) error {
	if err := f.set(xsize, ysize, values); err != nil {
		return err
	}
	f.updateCount++
	return nil
}

func (f *Discrete2DFunction) set(xsize, ysize int, values []float64) error {
	if err := checkLen(KindDiscrete2D, values, xsize, ysize); err != nil {
		return err
	}
	f.xsize, f.ysize = xsize, ysize
	f.values = copyFloats(values)
	f.grid.Init(xsize, ysize)
	return nil
}

// Parameters returns the grid sizes and a copy of the samples.
func (f *Discrete2DFunction) Parameters() (xsize, ysize int, values []float64) {
	return f.xsize, f.ysize, copyFloats(f.values)
}

func (f *Discrete2DFunction) Sizes() (xsize, ysize int) { return f.xsize, f.ysize }
func (f *Discrete2DFunction) Len() int                  { return len(f.values) }
func (f *Discrete2DFunction) Kind() Kind                { return KindDiscrete2D }

func (f *Discrete2DFunction) At(i, j int) float64 {
	return f.values[f.grid.Idx(i, j, 0)]
}

func (f *Discrete2DFunction) Grid() *Grid {
	g := f.grid
	return &g
}

func (f *Discrete2DFunction) Clone() Function {
	g, _ := NewDiscrete2D(f.xsize, f.ysize, f.values)
	return g
}

func (f *Discrete2DFunction) Equal(other Function) bool {
	if other == nil || other.Kind() != KindDiscrete2D {
		return false
	}
	g, ok := other.(*Discrete2DFunction)
	if !ok || g == nil {
		return false
	}
	if f.xsize != g.xsize || f.ysize != g.ysize {
		return false
	}
	return floatsEqual(f.values, g.values)
}

func (f *Discrete2DFunction) Fingerprint() uint64 {
	h := newHasher(KindDiscrete2D)
	h.int(f.xsize)
	h.int(f.ysize)
	h.values(f.values)
	return h.sum()
}

// Discrete3DFunction is a three dimensional grid of samples indexed by integer
// position. values[(i*ysize + j)*zsize + k] is the sample at (i, j, k).
type Discrete3DFunction struct {
	base
	xsize, ysize, zsize int
	values              []float64
	grid                Grid
}

// NewDiscrete3D creates a Discrete3DFunction. len(values) must equal
// xsize*ysize*zsize.
func NewDiscrete3D(
	xsize, ysize, zsize int, values []float64,
) (*Discrete3DFunction, error) {
	f := &Discrete3DFunction{}
	if err := f.set(xsize, ysize, zsize, values); err != nil {
		return nil, err
	}
	return f, nil
}

// SetParameters replaces the grid. On failure f is left unchanged and its
// update count is not incremented.
func (f *Discrete3DFunction) SetParameters(
	xsize, ysize, zsize int, values []float64,
) error {
	if err := f.set(xsize, ysize, zsize, values); err != nil {
		return err
	}
	f.updateCount++
	return nil
}

func (f *Discrete3DFunction) set(xsize, ysize, zsize int, values []float64) error {
	if err := checkLen(KindDiscrete3D, values, xsize, ysize, zsize); err != nil {
		return err
	}
	f.xsize, f.ysize, f.zsize = xsize, ysize, zsize
	f.values = copyFloats(values)
	f.grid.Init(xsize, ysize, zsize)
	return nil
}

// Parameters returns the grid sizes and a copy of the samples.
func (f *Discrete3DFunction) Parameters() (xsize, ysize, zsize int, values []float64) {
	return f.xsize, f.ysize, f.zsize, copyFloats(f.values)
}

func (f *Discrete3DFunction) Sizes() (xsize, ysize, zsize int) {
	return f.xsize, f.ysize, f.zsize
}

func (f *Discrete3DFunction) Len() int { return len(f.values) }

func (f *Discrete3DFunction) At(i, j, k int) float64 {
	return f.values[f.grid.Idx(i, j, k)]
}

func (f *Discrete3DFunction) Kind() Kind { return KindDiscrete3D }
func (f *Discrete3DFunction) Grid() *Grid {
	g := f.grid
	return &g
}

func (f *Discrete3DFunction) Clone() Function {
	g, _ := NewDiscrete3D(f.xsize, f.ysize, f.zsize, f.values)
	return g
}

func (f *Discrete3DFunction) Equal(other Function) bool {
	if other == nil || other.Kind() != KindDiscrete3D {
		return false
	}
	g, ok := other.(*Discrete3DFunction)
	if !ok || g == nil {
		return false
	}
	if f.xsize != g.xsize || f.ysize != g.ysize || f.zsize != g.zsize {
		return false
	}
	return floatsEqual(f.values, g.values)
}

func (f *Discrete3DFunction) Fingerprint() uint64 {
	h := newHasher(KindDiscrete3D)
	h.int(f.xsize)
	h.int(f.ysize)
	h.int(f.zsize)
	h.values(f.values)
	return h.sum()
}

package tabulated

// Continuous3DFunction is a function of three variables sampled on an evenly
// spaced xsize by ysize by zsize grid. values[(i*ysize + j)*zsize + k] is the
// sample at (x_i, y_j, z_k).
type Continuous3DFunction struct {
	base
	xsize, ysize, zsize int
	values              []float64
	xdom, ydom, zdom    Domain
	grid                Grid
}

// NewContinuous3D creates a Continuous3DFunction. Each axis needs at least two
// points (three if periodic), len(values) must equal xsize*ysize*zsize, and
// each axis needs max > min.
func NewContinuous3D(
	xsize, ysize, zsize int, values []float64,
	xmin, xmax, ymin, ymax, zmin, zmax float64, periodic bool,
) (*Continuous3DFunction, error) {
	f := &Continuous3DFunction{}
	f.periodic = periodic
	err := f.set(
		xsize, ysize, zsize, values, xmin, xmax, ymin, ymax, zmin, zmax,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SetParameters replaces the grid. On failure f is left unchanged and its
// update count is not incremented.
func (f *Continuous3DFunction) SetParameters(
	xsize, ysize, zsize int, values []float64,
	xmin, xmax, ymin, ymax, zmin, zmax float64,
) error {
	err := f.set(
		xsize, ysize, zsize, values, xmin, xmax, ymin, ymax, zmin, zmax,
	)
	if err != nil {
		return err
	}
	f.updateCount++
	return nil
}

func (f *Continuous3DFunction) set(
	xsize, ysize, zsize int, values []float64,
	xmin, xmax, ymin, ymax, zmin, zmax float64,
) error {
	k := KindContinuous3D
	xdom, ydom, zdom := Domain{xmin, xmax}, Domain{ymin, ymax}, Domain{zmin, zmax}

	if err := checkSamples(k, f.periodic, xsize, ysize, zsize); err != nil {
		return err
	} else if err := checkLen(k, values, xsize, ysize, zsize); err != nil {
		return err
	} else if err := checkDomain(k, "x", xdom); err != nil {
		return err
	} else if err := checkDomain(k, "y", ydom); err != nil {
		return err
	} else if err := checkDomain(k, "z", zdom); err != nil {
		return err
	}

	f.xsize, f.ysize, f.zsize = xsize, ysize, zsize
	f.values = copyFloats(values)
	f.xdom, f.ydom, f.zdom = xdom, ydom, zdom
	f.grid.Init(xsize, ysize, zsize)
	return nil
}

// Parameters returns the grid sizes, a copy of the samples and the domain
// bounds.
func (f *Continuous3DFunction) Parameters() (
	xsize, ysize, zsize int, values []float64,
	xmin, xmax, ymin, ymax, zmin, zmax float64,
) {
	return f.xsize, f.ysize, f.zsize, copyFloats(f.values),
		f.xdom.Min, f.xdom.Max, f.ydom.Min, f.ydom.Max, f.zdom.Min, f.zdom.Max
}

// Sizes returns the number of samples along each axis.
func (f *Continuous3DFunction) Sizes() (xsize, ysize, zsize int) {
	return f.xsize, f.ysize, f.zsize
}

// Domains returns the x, y and z domains.
func (f *Continuous3DFunction) Domains() []Domain {
	return []Domain{f.xdom, f.ydom, f.zdom}
}

func (f *Continuous3DFunction) Len() int { return len(f.values) }

// At returns the sample at (x_i, y_j, z_k).
func (f *Continuous3DFunction) At(i, j, k int) float64 {
	return f.values[f.grid.Idx(i, j, k)]
}

func (f *Continuous3DFunction) Kind() Kind { return KindContinuous3D }
func (f *Continuous3DFunction) Grid() *Grid {
	g := f.grid
	return &g
}

func (f *Continuous3DFunction) Clone() Function {
	g, _ := NewContinuous3D(
		f.xsize, f.ysize, f.zsize, f.values,
		f.xdom.Min, f.xdom.Max, f.ydom.Min, f.ydom.Max, f.zdom.Min, f.zdom.Max,
		f.periodic,
	)
	return g
}

func (f *Continuous3DFunction) Equal(other Function) bool {
	if other == nil || other.Kind() != KindContinuous3D {
		return false
	}
	g, ok := other.(*Continuous3DFunction)
	if !ok || g == nil {
		return false
	}
	if f.xsize != g.xsize || f.ysize != g.ysize || f.zsize != g.zsize {
		return false
	}
	if f.xdom != g.xdom || f.ydom != g.ydom || f.zdom != g.zdom {
		return false
	}
	return floatsEqual(f.values, g.values)
}

func (f *Continuous3DFunction) Fingerprint() uint64 {
	h := newHasher(KindContinuous3D)
	h.int(f.xsize)
	h.int(f.ysize)
	h.int(f.zsize)
	h.domains(f.xdom, f.ydom, f.zdom)
	h.values(f.values)
	return h.sum()
}

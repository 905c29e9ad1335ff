package tabulated

// Continuous2DFunction is a function of two variables sampled on an evenly
// spaced xsize by ysize grid. values[i*ysize + j] is the sample at (x_i, y_j).
type Continuous2DFunction struct {
	base
	xsize, ysize int
	values       []float64
	xdom, ydom   Domain
	grid         Grid
}

// NewContinuous2D creates a Continuous2DFunction. Each axis needs at least two
// points (three if periodic), len(values) must equal xsize*ysize, and each
// axis needs max > min.
func NewContinuous2D(
	xsize, ysize int, values []float64,
	xmin, xmax, ymin, ymax float64, periodic bool,
) (*Continuous2DFunction, error) {
	f := &Continuous2DFunction{}
	f.periodic = periodic
	err := f.set(xsize, ysize, values, xmin, xmax, ymin, ymax)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// SetParameters replaces the grid. On failure f is left unchanged and its
// update count is not incremented.
func (f *Continuous2DFunction) SetParameters(
	xsize, ysize int, values []float64, xmin, xmax, ymin, ymax float64,
) error {
	err := f.set(xsize, ysize, values, xmin, xmax, ymin, ymax)
	if err != nil {
		return err
	}
	f.updateCount++
	return nil
}

func (f *Continuous2DFunction) set(
	xsize, ysize int, values []float64, xmin, xmax, ymin, ymax float64,
) error {
	k := KindContinuous2D
	xdom, ydom := Domain{xmin, xmax}, Domain{ymin, ymax}

	if err := checkSamples(k, f.periodic, xsize, ysize); err != nil {
		return err
	} else if err := checkLen(k, values, xsize, ysize); err != nil {
		return err
	} else if err := checkDomain(k, "x", xdom); err != nil {
		return err
	} else if err := checkDomain(k, "y", ydom); err != nil {
		return err
	}

	f.xsize, f.ysize = xsize, ysize
	f.values = copyFloats(values)
	f.xdom, f.ydom = xdom, ydom
	f.grid.Init(xsize, ysize)
	return nil
}

// Parameters returns the grid sizes, a copy of the samples and the domain
// bounds.
func (f *Continuous2DFunction) Parameters() (
	xsize, ysize int, values []float64, xmin, xmax, ymin, ymax float64,
) {
	return f.xsize, f.ysize, copyFloats(f.values),
		f.xdom.Min, f.xdom.Max, f.ydom.Min, f.ydom.Max
}

// Sizes returns the number of samples along each axis.
func (f *Continuous2DFunction) Sizes() (xsize, ysize int) {
	return f.xsize, f.ysize
}

// Domains returns the x and y domains.
func (f *Continuous2DFunction) Domains() []Domain {
	return []Domain{f.xdom, f.ydom}
}

func (f *Continuous2DFunction) Len() int { return len(f.values) }

// At returns the sample at (x_i, y_j).
func (f *Continuous2DFunction) At(i, j int) float64 {
	return f.values[f.grid.Idx(i, j, 0)]
}

func (f *Continuous2DFunction) Kind() Kind { return KindContinuous2D }
func (f *Continuous2DFunction) Grid() *Grid {
	g := f.grid
	return &g
}

func (f *Continuous2DFunction) Clone() Function {
	g, _ := NewContinuous2D(
		f.xsize, f.ysize, f.values,
		f.xdom.Min, f.xdom.Max, f.ydom.Min, f.ydom.Max, f.periodic,
	)
	return g
}

func (f *Continuous2DFunction) Equal(other Function) bool {
	if other == nil || other.Kind() != KindContinuous2D {
		return false
	}
	g, ok := other.(*Continuous2DFunction)
	if !ok || g == nil {
		return false
	}
	if f.xsize != g.xsize || f.ysize != g.ysize {
		return false
	}
	if f.xdom != g.xdom || f.ydom != g.ydom {
		return false
	}
	return floatsEqual(f.values, g.values)
}

func (f *Continuous2DFunction) Fingerprint() uint64 {
	h := newHasher(KindContinuous2D)
	h.int(f.xsize)
	h.int(f.ysize)
	h.domains(f.xdom, f.ydom)
	h.values(f.values)
	return h.sum()
}

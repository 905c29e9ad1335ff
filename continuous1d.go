package tabulated

// Continuous1DFunction is a function of one variable sampled at evenly spaced
// points over [Min, Max]. Interpolation happens elsewhere.
type Continuous1DFunction struct {
	base
	values []float64
	dom    Domain
}

// NewContinuous1D creates a Continuous1DFunction. It fails if max <= min or
// if there are fewer than two values (three if periodic).
//
// The values are copied.
func NewContinuous1D(
	values []float64, min, max float64, periodic bool,
) (*Continuous1DFunction, error) {
	f := &Continuous1DFunction{}
	f.periodic = periodic
	if err := f.set(values, min, max); err != nil {
		return nil, err
	}
	return f, nil
}

// SetParameters replaces the samples and the domain. On failure f is left
// unchanged and its update count is not incremented.
func (f *Continuous1DFunction) SetParameters(
	values []float64, min, max float64,
) error {
	if err := f.set(values, min, max); err != nil {
		return err
	}
	f.updateCount++
	return nil
}

func (f *Continuous1DFunction) set(values []float64, min, max float64) error {
	dom := Domain{min, max}
	if err := checkDomain(KindContinuous1D, "", dom); err != nil {
		return err
	}
	if err := checkSamples(KindContinuous1D, f.periodic, len(values)); err != nil {
		return err
	}

	f.values = copyFloats(values)
	f.dom = dom
	return nil
}

// Parameters returns a copy of the samples along with the domain bounds.
func (f *Continuous1DFunction) Parameters() (values []float64, min, max float64) {
	return copyFloats(f.values), f.dom.Min, f.dom.Max
}

// Domains returns the domain of the single axis.
func (f *Continuous1DFunction) Domains() []Domain { return []Domain{f.dom} }

// Len returns the number of samples.
func (f *Continuous1DFunction) Len() int { return len(f.values) }

// At returns the i-th sample.
func (f *Continuous1DFunction) At(i int) float64 { return f.values[i] }

func (f *Continuous1DFunction) Kind() Kind  { return KindContinuous1D }
func (f *Continuous1DFunction) Grid() *Grid { return NewGrid(len(f.values)) }

func (f *Continuous1DFunction) Clone() Function {
	g, _ := NewContinuous1D(f.values, f.dom.Min, f.dom.Max, f.periodic)
	return g
}

func (f *Continuous1DFunction) Equal(other Function) bool {
	if other == nil || other.Kind() != KindContinuous1D {
		return false
	}
	g, ok := other.(*Continuous1DFunction)
	if !ok || g == nil {
		return false
	}
	return f.dom == g.dom && floatsEqual(f.values, g.values)
}

func (f *Continuous1DFunction) Fingerprint() uint64 {
	h := newHasher(KindContinuous1D)
	h.domains(f.dom)
	h.values(f.values)
	return h.sum()
}

/*Package tabulated contains value types for scalar data sampled on regular 1, 2
and 3 dimensional grids. They are used to parameterize interaction potentials
which are interpolated and evaluated elsewhere.

Every type validates its parameters whenever they are supplied, and a rejected
parameter set never modifies the receiver. Successful replacements bump an
update counter so that consumers which cache derived data (fitted splines,
uploaded device buffers) can tell when they need to rebuild.

Samples are stored in a single flat slice in row-major order: the last axis
varies fastest.

The zero value of a variant is not a valid function. Use the constructors, which
never return a non-nil function alongside an error.

None of the types are safe for concurrent mutation.
*/
package tabulated

// Kind identifies the concrete variant of a Function.
type Kind int

const (
	KindContinuous1D Kind = iota
	KindContinuous2D
	KindContinuous3D
	KindDiscrete1D
	KindDiscrete2D
	KindDiscrete3D
)

var kindNames = []string{
	"Continuous1DFunction",
	"Continuous2DFunction",
	"Continuous3DFunction",
	"Discrete1DFunction",
	"Discrete2DFunction",
	"Discrete3DFunction",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "UnknownFunction"
	}
	return kindNames[k]
}

// Continuous returns true if the variant maps its samples onto a continuous
// domain.
func (k Kind) Continuous() bool {
	return k == KindContinuous1D || k == KindContinuous2D ||
		k == KindContinuous3D
}

// Dim returns the number of axes of the variant.
func (k Kind) Dim() int {
	switch k {
	case KindContinuous1D, KindDiscrete1D:
		return 1
	case KindContinuous2D, KindDiscrete2D:
		return 2
	case KindContinuous3D, KindDiscrete3D:
		return 3
	}
	return 0
}

// Function is the capability shared by every tabulated function.
type Function interface {
	// Kind returns the variant tag. Two functions can only be equal if their
	// tags match.
	Kind() Kind
	// Periodic returns the periodicity flag given at construction.
	Periodic() bool
	// UpdateCount returns the number of successful parameter replacements.
	UpdateCount() int
	// Equal returns true if other is the same variant and all sizes, bounds
	// and samples match exactly. UpdateCount is ignored.
	Equal(other Function) bool
	// Clone returns an independent copy of the same variant.
	Clone() Function
	// Fingerprint returns a hash of the sizes, bounds and samples. Equal
	// functions have equal fingerprints.
	Fingerprint() uint64
	// Grid describes the layout of the flat sample slice.
	Grid() *Grid
}

// Equal compares two functions, either of which may be nil.
func Equal(a, b Function) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Kind() == b.Kind() && a.Equal(b)
}

// IsNil returns true if fn is nil or holds a nil pointer to one of the
// package's variants.
func IsNil(fn Function) bool {
	if fn == nil {
		return true
	}
	switch f := fn.(type) {
	case *Continuous1DFunction:
		return f == nil
	case *Continuous2DFunction:
		return f == nil
	case *Continuous3DFunction:
		return f == nil
	case *Discrete1DFunction:
		return f == nil
	case *Discrete2DFunction:
		return f == nil
	case *Discrete3DFunction:
		return f == nil
	}
	return false
}

// base holds the attributes common to every variant.
type base struct {
	periodic    bool
	updateCount int
}

func (b *base) Periodic() bool   { return b.periodic }
func (b *base) UpdateCount() int { return b.updateCount }

// Domain is the continuous range spanned by one axis.
type Domain struct {
	Min, Max float64
}

// Width returns Max - Min.
func (d Domain) Width() float64 { return d.Max - d.Min }

// Point returns the coordinate of sample i out of n samples spread evenly
// over the domain, endpoints included.
func (d Domain) Point(i, n int) float64 {
	if n < 2 {
		return d.Min
	}
	return d.Min + float64(i)*(d.Max-d.Min)/float64(n-1)
}

// Spacing returns the distance between neighbouring samples when n samples
// span the domain.
func (d Domain) Spacing(n int) float64 {
	if n < 2 {
		return 0
	}
	return (d.Max - d.Min) / float64(n-1)
}

func copyFloats(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}

func floatsEqual(xs, ys []float64) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}

var (
	_ Function = (*Continuous1DFunction)(nil)
	_ Function = (*Continuous2DFunction)(nil)
	_ Function = (*Continuous3DFunction)(nil)
	_ Function = (*Discrete1DFunction)(nil)
	_ Function = (*Discrete2DFunction)(nil)
	_ Function = (*Discrete3DFunction)(nil)
)

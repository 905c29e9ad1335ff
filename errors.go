package tabulated

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDomain is returned when a continuous axis has max <= min.
	ErrInvalidDomain = errors.New("invalid domain")
	// ErrInsufficientSamples is returned when a continuous axis has fewer
	// samples than its periodicity requires.
	ErrInsufficientSamples = errors.New("insufficient samples")
	// ErrSizeMismatch is returned when the number of values does not equal
	// the product of the axis sizes.
	ErrSizeMismatch = errors.New("size mismatch")
)

// ParamError describes a rejected parameter set. Err is always one of the
// package's sentinel errors, so callers can branch with errors.Is.
type ParamError struct {
	Variant Kind
	Err     error
	Msg     string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s", e.Variant, e.Msg)
}

func (e *ParamError) Unwrap() error { return e.Err }

func paramErrorf(k Kind, err error, format string, args ...interface{}) error {
	return &ParamError{Variant: k, Err: err, Msg: fmt.Sprintf(format, args...)}
}

// checkSamples enforces the minimum per-axis sample count of the continuous
// variants.
func checkSamples(k Kind, periodic bool, sizes ...int) error {
	if periodic {
		for _, n := range sizes {
			if n < 3 {
				if len(sizes) == 1 {
					return paramErrorf(k, ErrInsufficientSamples,
						"a periodic tabulated function must have at least "+
							"three points, but has %d", n)
				}
				return paramErrorf(k, ErrInsufficientSamples,
					"must have at least three points along each axis if "+
						"periodic, but sizes are %v", sizes)
			}
		}
		// A periodic table should also have equal first and last values.
		// That is checked when the spline is built, not here.
		return nil
	}

	for _, n := range sizes {
		if n < 2 {
			if len(sizes) == 1 {
				return paramErrorf(k, ErrInsufficientSamples,
					"a non-periodic tabulated function must have at least "+
						"two points, but has %d", n)
			}
			return paramErrorf(k, ErrInsufficientSamples,
				"must have at least two points along each axis, but sizes "+
					"are %v", sizes)
		}
	}
	return nil
}

// checkLen enforces len(values) == product(sizes). Negative sizes never
// match, and neither do sizes whose product overflows an int.
func checkLen(k Kind, values []float64, sizes ...int) error {
	zero := false
	for _, s := range sizes {
		if s < 0 {
			return paramErrorf(k, ErrSizeMismatch,
				"axis sizes %v must be non-negative", sizes)
		}
		zero = zero || s == 0
	}

	n := 0
	if !zero {
		n = 1
		for _, s := range sizes {
			if n > math.MaxInt/s {
				return paramErrorf(k, ErrSizeMismatch,
					"incorrect number of values: got %d, sizes %v overflow",
					len(values), sizes)
			}
			n *= s
		}
	}

	if len(values) != n {
		return paramErrorf(k, ErrSizeMismatch,
			"incorrect number of values: got %d, sizes %v require %d",
			len(values), sizes, n)
	}
	return nil
}

// checkDomain enforces max > min for the named axis.
func checkDomain(k Kind, axis string, d Domain) error {
	// Written as a negation so that NaN bounds are rejected too.
	if !(d.Max > d.Min) {
		return paramErrorf(k, ErrInvalidDomain,
			"%smax <= %smin for a tabulated function (%g <= %g)",
			axis, axis, d.Max, d.Min)
	}
	return nil
}

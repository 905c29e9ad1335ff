/*Package plot renders the samples of tabulated functions with matplotlib.

Nothing is drawn until Execute is called, which runs the accumulated script
with python.
*/
package plot

import (
	"errors"
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/tabulated"
)

var (
	ErrBadSlice    = errors.New("plot: slice index out of range")
	ErrNilFunction = errors.New("plot: nil function")
)

var (
	colors = []string{
		"DarkSlateBlue", "DarkSlateGray", "DarkTurquoise",
		"DarkViolet", "DeepPink", "DimGray",
	}
)

// Options controls how a function is drawn.
type Options struct {
	// Slice is the first-axis index drawn for 3D functions.
	Slice int
	// Colors cycles over lines. Defaults to a fixed palette.
	Colors []string
}

// Line is a single curve through a function's samples.
type Line struct {
	Xs, Ys []float64
	Label  string
}

// Lines extracts the curves which Function draws. 1D functions give a single
// line. 2D functions give one line per first-axis index, running along the
// second axis. 3D functions do the same for the first-axis slice opts.Slice.
func Lines(fn tabulated.Function, opts Options) ([]Line, error) {
	if tabulated.IsNil(fn) {
		return nil, ErrNilFunction
	}

	switch f := fn.(type) {
	case *tabulated.Continuous1DFunction:
		vals, min, max := f.Parameters()
		dom := tabulated.Domain{Min: min, Max: max}
		return []Line{{Xs: points(dom, len(vals)), Ys: vals}}, nil

	case *tabulated.Discrete1DFunction:
		vals := f.Parameters()
		return []Line{{Xs: indices(len(vals)), Ys: vals}}, nil

	case *tabulated.Continuous2DFunction:
		xsize, ysize := f.Sizes()
		doms := f.Domains()
		lines := make([]Line, xsize)
		for i := range lines {
			lines[i] = Line{
				Xs:    points(doms[1], ysize),
				Ys:    row(ysize, func(j int) float64 { return f.At(i, j) }),
				Label: fmt.Sprintf("x = %.3g", doms[0].Point(i, xsize)),
			}
		}
		return lines, nil

	case *tabulated.Discrete2DFunction:
		xsize, ysize := f.Sizes()
		lines := make([]Line, xsize)
		for i := range lines {
			lines[i] = Line{
				Xs:    indices(ysize),
				Ys:    row(ysize, func(j int) float64 { return f.At(i, j) }),
				Label: fmt.Sprintf("i = %d", i),
			}
		}
		return lines, nil

	case *tabulated.Continuous3DFunction:
		_, ysize, zsize := f.Sizes()
		if err := checkSlice(f.Grid(), opts.Slice); err != nil {
			return nil, err
		}
		doms := f.Domains()
		lines := make([]Line, ysize)
		for j := range lines {
			lines[j] = Line{
				Xs:    points(doms[2], zsize),
				Ys:    row(zsize, func(k int) float64 { return f.At(opts.Slice, j, k) }),
				Label: fmt.Sprintf("y = %.3g", doms[1].Point(j, ysize)),
			}
		}
		return lines, nil

	case *tabulated.Discrete3DFunction:
		_, ysize, zsize := f.Sizes()
		if err := checkSlice(f.Grid(), opts.Slice); err != nil {
			return nil, err
		}
		lines := make([]Line, ysize)
		for j := range lines {
			lines[j] = Line{
				Xs:    indices(zsize),
				Ys:    row(zsize, func(k int) float64 { return f.At(opts.Slice, j, k) }),
				Label: fmt.Sprintf("j = %d", j),
			}
		}
		return lines, nil
	}

	return nil, fmt.Errorf("plot: unsupported function type %T", fn)
}

// Function adds a new figure showing fn to the pending script.
func Function(name string, fn tabulated.Function, opts Options) error {
	lines, err := Lines(fn, opts)
	if err != nil {
		return err
	}
	cs := opts.Colors
	if len(cs) == 0 {
		cs = colors
	}

	style := "o-"
	if !fn.Kind().Continuous() {
		style = "o"
	}

	plt.Figure()
	for i, l := range lines {
		plt.Plot(l.Xs, l.Ys, style, plt.LW(2), plt.C(cs[i%len(cs)]))
	}

	title := fmt.Sprintf("%s '%s'", fn.Kind(), name)
	if fn.Periodic() {
		title += " (periodic)"
	}
	if k := fn.Kind(); k == tabulated.KindContinuous3D || k == tabulated.KindDiscrete3D {
		title += fmt.Sprintf(", slice %d", opts.Slice)
	}
	plt.Title(title)
	plt.XLabel(xLabel(fn.Kind()), plt.FontSize(16))
	plt.YLabel("value", plt.FontSize(16))
	return nil
}

// Save queues the current figure to be written to fname.
func Save(fname string) { plt.SaveFig(fname) }

// Execute runs the pending script.
func Execute() { plt.Execute() }

// Reset discards the pending script.
func Reset() { plt.Reset() }

func checkSlice(g *tabulated.Grid, slice int) error {
	if !g.BoundsCheck(slice, 0, 0) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrBadSlice, slice, g.Width[0])
	}
	return nil
}

func xLabel(k tabulated.Kind) string {
	switch k {
	case tabulated.KindContinuous1D:
		return "x"
	case tabulated.KindContinuous2D:
		return "y"
	case tabulated.KindContinuous3D:
		return "z"
	case tabulated.KindDiscrete2D:
		return "j"
	case tabulated.KindDiscrete3D:
		return "k"
	}
	return "i"
}

func points(dom tabulated.Domain, n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = dom.Point(i, n)
	}
	return xs
}

func indices(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}
	return xs
}

func row(n int, at func(int) float64) []float64 {
	ys := make([]float64, n)
	for i := range ys {
		ys[i] = at(i)
	}
	return ys
}

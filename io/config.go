/*Package io reads tabulated function definitions from gcfg configuration files.

Each function is one subsection whose section name is its variant and whose
subsection name is the function's name:

	[Continuous1D "lj"]
	Min = 0.0
	Max = 2.5
	Value = 1.0
	Value = 0.5

Samples are either listed inline with repeated Value variables or read from a
column of a whitespace-delimited table file with ValuesFile and Column.
*/
package io

import (
	"fmt"
	"path/filepath"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/tabulated"
)

// SamplesConfig holds the variables shared by every function section.
type SamplesConfig struct {
	// Inline samples. Mutually exclusive with ValuesFile.
	Value []float64

	// Optional
	ValuesFile string
	Column     int
}

// CheckInit returns an error if the sample variables of the section are
// inconsistent.
func (con *SamplesConfig) CheckInit(section, name string) error {
	if len(con.Value) > 0 && con.ValuesFile != "" {
		return fmt.Errorf(
			"%s '%s' sets both Value and ValuesFile.", section, name,
		)
	} else if con.Column < 0 {
		return fmt.Errorf(
			"%s '%s' given a negative Column, %d.", section, name, con.Column,
		)
	}
	return nil
}

// Samples returns the section's samples. Relative ValuesFile paths are
// resolved against dir.
func (con *SamplesConfig) Samples(dir string) ([]float64, error) {
	if con.ValuesFile == "" {
		return con.Value, nil
	}

	fname := con.ValuesFile
	if !filepath.IsAbs(fname) && dir != "" {
		fname = filepath.Join(dir, fname)
	}
	cols, err := table.ReadTable(fname, []int{con.Column}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

type Continuous1DConfig struct {
	SamplesConfig
	Min, Max float64
	Periodic bool
}

type Continuous2DConfig struct {
	SamplesConfig
	XSize, YSize           int
	XMin, XMax, YMin, YMax float64
	Periodic               bool
}

type Continuous3DConfig struct {
	SamplesConfig
	XSize, YSize, ZSize                int
	XMin, XMax, YMin, YMax, ZMin, ZMax float64
	Periodic                           bool
}

type Discrete1DConfig struct {
	SamplesConfig
}

type Discrete2DConfig struct {
	SamplesConfig
	XSize, YSize int
}

type Discrete3DConfig struct {
	SamplesConfig
	XSize, YSize, ZSize int
}

func (con *Continuous1DConfig) Build(vals []float64) (tabulated.Function, error) {
	return tabulated.NewContinuous1D(vals, con.Min, con.Max, con.Periodic)
}

func (con *Continuous2DConfig) Build(vals []float64) (tabulated.Function, error) {
	return tabulated.NewContinuous2D(
		con.XSize, con.YSize, vals,
		con.XMin, con.XMax, con.YMin, con.YMax, con.Periodic,
	)
}

func (con *Continuous3DConfig) Build(vals []float64) (tabulated.Function, error) {
	return tabulated.NewContinuous3D(
		con.XSize, con.YSize, con.ZSize, vals,
		con.XMin, con.XMax, con.YMin, con.YMax, con.ZMin, con.ZMax,
		con.Periodic,
	)
}

func (con *Discrete1DConfig) Build(vals []float64) (tabulated.Function, error) {
	return tabulated.NewDiscrete1D(vals), nil
}

func (con *Discrete2DConfig) Build(vals []float64) (tabulated.Function, error) {
	return tabulated.NewDiscrete2D(con.XSize, con.YSize, vals)
}

func (con *Discrete3DConfig) Build(vals []float64) (tabulated.Function, error) {
	return tabulated.NewDiscrete3D(con.XSize, con.YSize, con.ZSize, vals)
}

// FunctionsConfig is the top level gcfg target. Each map is keyed by
// function name.
type FunctionsConfig struct {
	Continuous1D map[string]*Continuous1DConfig
	Continuous2D map[string]*Continuous2DConfig
	Continuous3D map[string]*Continuous3DConfig
	Discrete1D   map[string]*Discrete1DConfig
	Discrete2D   map[string]*Discrete2DConfig
	Discrete3D   map[string]*Discrete3DConfig
}

// section is a single function definition pulled out of a FunctionsConfig.
type section struct {
	kind    string
	name    string
	samples *SamplesConfig
	build   func([]float64) (tabulated.Function, error)
}

// sections flattens the config into a list. The order is not meaningful.
func (fc *FunctionsConfig) sections() []section {
	secs := []section{}
	for name, con := range fc.Continuous1D {
		secs = append(secs, section{"Continuous1D", name, &con.SamplesConfig, con.Build})
	}
	for name, con := range fc.Continuous2D {
		secs = append(secs, section{"Continuous2D", name, &con.SamplesConfig, con.Build})
	}
	for name, con := range fc.Continuous3D {
		secs = append(secs, section{"Continuous3D", name, &con.SamplesConfig, con.Build})
	}
	for name, con := range fc.Discrete1D {
		secs = append(secs, section{"Discrete1D", name, &con.SamplesConfig, con.Build})
	}
	for name, con := range fc.Discrete2D {
		secs = append(secs, section{"Discrete2D", name, &con.SamplesConfig, con.Build})
	}
	for name, con := range fc.Discrete3D {
		secs = append(secs, section{"Discrete3D", name, &con.SamplesConfig, con.Build})
	}
	return secs
}

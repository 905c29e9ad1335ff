package io

// ExampleConfig is a commented configuration file which defines one function
// of every variant.
const ExampleConfig = `# Every section defines one tabulated function. The section name gives the
# variant and the subsection name gives the function's name, which must be
# unique within the file.
#
# Samples are given either with repeated Value lines or with ValuesFile, which
# names a whitespace-delimited table (relative to this file). Column picks the
# 0-indexed column of that table and defaults to 0.
#
# Multi-dimensional samples are listed with the last axis varying fastest.

[Continuous1D "lj"]
# Samples are evenly spaced over [Min, Max], endpoints included.
Min = 0.3
Max = 1.2
Value = 4.0
Value = 0.9
Value = -0.6
Value = -0.3
Value = -0.1

# Periodic functions need at least three points along every axis. Their first
# and last values should match; that is checked when splines are built.
# Periodic = true

[Continuous2D "cmap"]
XSize = 3
YSize = 3
XMin = -3.14159
XMax = 3.14159
YMin = -3.14159
YMax = 3.14159
Periodic = true
ValuesFile = cmap.dat
Column = 0

[Continuous3D "grid"]
XSize = 2
YSize = 2
ZSize = 2
XMin = 0
XMax = 1
YMin = 0
YMax = 1
ZMin = 0
ZMax = 1
Value = 0
Value = 1
Value = 2
Value = 3
Value = 4
Value = 5
Value = 6
Value = 7

[Discrete1D "charges"]
Value = 0.5
Value = -0.5

[Discrete2D "pairs"]
XSize = 2
YSize = 2
Value = 1
Value = 0.5
Value = 0.5
Value = 1

[Discrete3D "types"]
XSize = 1
YSize = 1
ZSize = 2
Value = 1
Value = 2
`

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
	"github.com/gonum/matrix/mat64"
)

// Kernel2DOptions configure a 2D kernel density estimate.
//
// The zero value is a Gaussian estimate on a 100×100 grid with NRD0
// bandwidths estimated separately for each axis.
type Kernel2DOptions struct {
	// BandwidthX and BandwidthY are the kernel bandwidths of each
	// axis. If 0, they are estimated by BandwidthMethod.
	BandwidthX, BandwidthY float64
	BandwidthMethod        BandwidthMethod

	// Adjust scales both bandwidths. If 0, it is 1.
	Adjust float64

	Kernel Kernel

	// NX and NY are the grid size. If 0, they are 100. Each must
	// be at most MaxDensity2DN.
	NX, NY int
}

func (k Kernel2DOptions) withDefaults() Kernel2DOptions {
	if k.Adjust == 0 {
		k.Adjust = 1
	}
	if k.NX == 0 {
		k.NX = 100
	}
	if k.NY == 0 {
		k.NY = 100
	}
	return k
}

func (k Kernel2DOptions) check(stat string) error {
	k = k.withDefaults()
	if err := checkN(stat, "NX", k.NX, MaxDensity2DN); err != nil {
		return err
	}
	return checkN(stat, "NY", k.NY, MaxDensity2DN)
}

// densityGrid is a 2D density evaluated on a grid. z is row-major
// with rows along Y.
type densityGrid struct {
	xs, ys []float64
	z      []float64
}

// grid evaluates the density of the points (xs[i], ys[i]) with
// weights ws over xr×yr.
func (k Kernel2DOptions) grid(xs, ys, ws []float64, xr, yr series.Span) *densityGrid {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf("len(xs) != len(ys): %d != %d", len(xs), len(ys)))
	}
	k = k.withDefaults()
	bwX, bwY := k.BandwidthX, k.BandwidthY
	if bwX == 0 {
		bwX = Bandwidth(k.BandwidthMethod, xs)
	}
	if bwY == 0 {
		bwY = Bandwidth(k.BandwidthMethod, ys)
	}
	stepsX := stepValues(xr, k.NX)
	stepsY := stepValues(yr, k.NY)

	n := len(xs)
	mx := mat64.NewDense(len(stepsX), n, rawMatrix(xs, stepsX, k.Kernel, bwX, k.Adjust, ws))
	my := mat64.NewDense(len(stepsY), n, rawMatrix(ys, stepsY, k.Kernel, bwY, k.Adjust, ws))

	// density[row][col] is the density at (stepsX[col], stepsY[row]).
	var density mat64.Dense
	density.Mul(my, mx.T())

	total := vec.Sum(ws)
	z := make([]float64, 0, len(stepsX)*len(stepsY))
	for row := range stepsY {
		for col := range stepsX {
			z = append(z, density.At(row, col)/total)
		}
	}
	return &densityGrid{stepsX, stepsY, z}
}

func (g *densityGrid) field() *field {
	xr := series.NewSpan(g.xs[0], g.xs[len(g.xs)-1])
	yr := series.NewSpan(g.ys[0], g.ys[len(g.ys)-1])
	return &field{xr, yr, len(g.xs), len(g.ys), g.z}
}

// read2D returns the finite points of data and the grid ranges: the
// context's overall ranges if it has them, else the data's.
func read2D(data *frame.Frame, ctx frame.Context) (xs, ys, ws []float64, xr, yr series.Span, ok bool) {
	if !hasRequiredValues(data, frame.TX, frame.TY) {
		return
	}
	xs, ys, ws = series.FiniteTriples(data.Numeric(frame.TX), data.Numeric(frame.TY), weightsOr(data))
	if len(xs) == 0 {
		return
	}
	var okX, okY bool
	if xr, okX = ctx.OverallXRange(); !okX {
		xr, _ = series.Range(xs)
	}
	if yr, okY = ctx.OverallYRange(); !okY {
		yr, _ = series.Range(ys)
	}
	return xs, ys, ws, xr, yr, true
}

// Density2D is a 2D kernel density estimate of the (X, Y) points of a
// group.
//
// If Contour is set, the result is the iso-lines of the density, as
// from Contour. Otherwise it is the density grid itself, with ..x..,
// ..y.., ..density.., ..count.. and ..scaled.. columns.
type Density2D struct {
	Kernel2DOptions

	Contour bool
	Bins    BinOptions
}

// Density2DF fills the bands between the iso-lines of a 2D kernel
// density estimate, as ContourFill does.
type Density2DF struct {
	Kernel2DOptions

	Bins BinOptions
}

// NewDensity2D validates d and returns it with defaults filled in.
func NewDensity2D(d Density2D) (*Density2D, error) {
	if err := d.check("density2d"); err != nil {
		return nil, err
	}
	d.Kernel2DOptions = d.withDefaults()
	return &d, nil
}

// NewDensity2DF validates d and returns it with defaults filled in.
func NewDensity2DF(d Density2DF) (*Density2DF, error) {
	if err := d.check("density2df"); err != nil {
		return nil, err
	}
	d.Kernel2DOptions = d.withDefaults()
	return &d, nil
}

func (s *Density2D) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *Density2D) DefaultMapping() aes.Mapping {
	if s.Contour {
		return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
	}
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y, aes.Fill: Vars.Density}
}

var density2DOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.Density, Vars.Count, Vars.Scaled}

func (s *Density2D) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	outputs := density2DOutputs
	if s.Contour {
		outputs = contourOutputs
	}
	xs, ys, ws, xr, yr, ok := read2D(data, ctx)
	if !ok {
		return emptyStatValues(nil, outputs...)
	}
	g := s.grid(xs, ys, ws, xr, yr)
	if s.Contour {
		return g.field().contourFrame(contourBins(s.Bins), false)
	}

	total := vec.Sum(ws)
	var gx, gy, count []float64
	for row, y := range g.ys {
		for col, x := range g.xs {
			gx = append(gx, x)
			gy = append(gy, y)
			count = append(count, g.z[row*len(g.xs)+col]*total)
		}
	}
	_, scaled := normalizeCounts(count, total)
	return buildFrame(
		col(Vars.X, gx),
		col(Vars.Y, gy),
		col(Vars.Density, g.z),
		col(Vars.Count, count),
		col(Vars.Scaled, scaled),
	)
}

func (s *Density2DF) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *Density2DF) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
}

func (s *Density2DF) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	xs, ys, ws, xr, yr, ok := read2D(data, ctx)
	if !ok {
		return emptyStatValues(nil, contourOutputs...)
	}
	g := s.grid(xs, ys, ws, xr, yr)
	return g.field().contourFrame(contourBins(s.Bins), true)
}

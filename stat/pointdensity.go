// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// A PointDensityMethod estimates the density around each point.
type PointDensityMethod int

const (
	// Neighbours counts the weight of the other points within a
	// radius of each point.
	Neighbours PointDensityMethod = iota
	// KDE2D reads each point's density off a 2D kernel density
	// grid.
	KDE2D
)

var pointDensityNames = [][]string{
	Neighbours: {"neighbours", "neighbors"},
	KDE2D:      {"kde2d"},
}

// ParsePointDensityMethod returns the point density method named s.
func ParsePointDensityMethod(s string) (PointDensityMethod, error) {
	i, err := parseOption("point density method", s, pointDensityNames)
	return PointDensityMethod(i), err
}

// neighbourRadius is the neighbour radius as a fraction of the X
// range. For a standard bivariate normal sample of about 1000 points
// it is about 0.5.
const neighbourRadius = 1.0 / 12

// PointDensity computes a density for each finite (X, Y) point of a
// group. The result has one row per point with ..x.., ..y..,
// ..count.., ..density.. and ..scaled...
//
// For Neighbours, Adjust scales the squared radius; the grid and
// bandwidth fields are used only by KDE2D.
type PointDensity struct {
	Kernel2DOptions
	Method PointDensityMethod
}

// NewPointDensity validates p and returns it with defaults filled in.
func NewPointDensity(p PointDensity) (*PointDensity, error) {
	if err := p.check("pointdensity"); err != nil {
		return nil, err
	}
	p.Kernel2DOptions = p.withDefaults()
	return &p, nil
}

func (s *PointDensity) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *PointDensity) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y, aes.Color: Vars.Density}
}

var pointDensityOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.Count, Vars.Density, Vars.Scaled}

func (s *PointDensity) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	xs, ys, ws, xr, yr, ok := read2D(data, ctx)
	if !ok {
		return emptyStatValues(nil, pointDensityOutputs...)
	}
	k := s.withDefaults()
	var count, density []float64
	switch s.Method {
	case Neighbours:
		count = neighbourCounts(xs, ys, ws, xr, yr, k.Adjust)
		density = make([]float64, len(count))
		for i, c := range count {
			density[i] = c / float64(len(count))
		}
	case KDE2D:
		g := k.grid(xs, ys, ws, xr, yr)
		total := vec.Sum(ws)
		xEps, yEps := 1e-12*xr.Length(), 1e-12*yr.Length()
		for i := range xs {
			c := nearestStep(g.xs, xs[i], xEps)
			r := nearestStep(g.ys, ys[i], yEps)
			z := g.z[r*len(g.xs)+c]
			count = append(count, z*total)
			density = append(density, z)
		}
	}
	max := series.Max(count)
	scaled := make([]float64, len(count))
	if max > 0 {
		for i, c := range count {
			scaled[i] = c / max
		}
	}
	return buildFrame(
		col(Vars.X, xs),
		col(Vars.Y, ys),
		col(Vars.Count, count),
		col(Vars.Density, density),
		col(Vars.Scaled, scaled),
	)
}

// neighbourCounts returns, for each point, the total weight of the
// other points within the neighbour radius. Distances are scaled so
// the neighbourhood is an ellipse matching the aspect of xr×yr.
func neighbourCounts(xs, ys, ws []float64, xr, yr series.Span, adjust float64) []float64 {
	lx, ly := xr.Length(), yr.Length()
	switch {
	case lx > 0 && ly > 0:
		xy := lx / ly
		rx := neighbourRadius * lx
		return countNeighbours(xs, ys, ws, adjust*rx*rx/xy, xy)
	case lx > 0:
		rx := neighbourRadius * lx
		return countNeighbours(xs, ys, ws, adjust*rx*rx, 1)
	case ly > 0:
		ry := neighbourRadius * ly
		return countNeighbours(xs, ys, ws, adjust*ry*ry, 1)
	}
	// Every point is in the same place.
	total := vec.Sum(ws)
	out := make([]float64, len(ws))
	if adjust > 0 {
		for i, w := range ws {
			out[i] = total - w
		}
	}
	return out
}

func countNeighbours(xs, ys, ws []float64, r2, xy float64) []float64 {
	out := make([]float64, len(xs))
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			dx, dy := xs[i]-xs[j], ys[i]-ys[j]
			if dx*dx/xy+dy*dy*xy < r2 {
				out[i] += ws[j]
				out[j] += ws[i]
			}
		}
	}
	return out
}

// nearestStep returns the index of the grid step nearest to x. Steps
// within eps of x are exact matches.
func nearestStep(steps []float64, x, eps float64) int {
	i := sort.SearchFloat64s(steps, x)
	switch {
	case i < len(steps) && math.Abs(steps[i]-x) < eps:
		return i
	case i > 0 && math.Abs(steps[i-1]-x) < eps:
		return i - 1
	case i == 0:
		return 0
	case i == len(steps):
		return len(steps) - 1
	}
	if (x-steps[i-1])/(steps[i]-steps[i-1]) < 0.5 {
		return i - 1
	}
	return i
}

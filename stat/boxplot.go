// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"math"

	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// DefaultWhiskerCoef is the default whisker reach of a box plot, in
// multiples of the interquartile range.
const DefaultWhiskerCoef = 1.5

// Boxplot summarizes the Y values at each distinct X of a group.
//
// The result has one row per distinct X with ..x.., ..lower..,
// ..middle.. and ..upper.. (the quartiles), ..ymin.. and ..ymax..
// (the whisker ends: the most extreme values within Coef×IQR of the
// box), ..count.. and ..width...
type Boxplot struct {
	// Coef is the whisker reach in multiples of the IQR. If 0, it
	// is DefaultWhiskerCoef, so whiskers that end at the box need
	// a small positive Coef instead.
	Coef float64

	// VarWidth makes ..width.. proportional to the square root of
	// the number of values, relative to the widest box of all
	// groups. Otherwise every box has width 1.
	VarWidth bool
}

// NewBoxplot validates b and returns it with defaults filled in.
func NewBoxplot(b Boxplot) (*Boxplot, error) {
	if b.Coef < 0 {
		return nil, &ConfigError{"boxplot", "Coef", fmt.Errorf("negative whisker coefficient %g", b.Coef)}
	}
	b.Coef = whiskerCoef(b.Coef)
	return &b, nil
}

func whiskerCoef(c float64) float64 {
	if c == 0 {
		return DefaultWhiskerCoef
	}
	return c
}

func (s *Boxplot) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y}
}

func (s *Boxplot) DefaultMapping() aes.Mapping {
	return aes.Mapping{
		aes.X:      Vars.X,
		aes.Lower:  Vars.Lower,
		aes.Middle: Vars.Middle,
		aes.Upper:  Vars.Upper,
		aes.YMin:   Vars.YMin,
		aes.YMax:   Vars.YMax,
		aes.Width:  Vars.Width,
	}
}

var boxplotOutputs = []frame.Variable{Vars.X, Vars.Lower, Vars.Middle, Vars.Upper, Vars.YMin, Vars.YMax, Vars.Count, Vars.Width}

// boxXs returns the finite (x, y) pairs of data. A frame without X
// values is one box at x = 0.
func boxXs(data *frame.Frame) (xs, ys []float64, ok bool) {
	if !hasRequiredValues(data, frame.TY) {
		return nil, nil, false
	}
	xs, ys = series.FinitePairs(data.NumericOr(frame.TX, 0), data.Numeric(frame.TY))
	return xs, ys, len(xs) > 0
}

func (s *Boxplot) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	xs, ys, ok := boxXs(data)
	if !ok {
		return emptyStatValues(nil, boxplotOutputs...)
	}
	coef := whiskerCoef(s.Coef)
	var ox, lower, middle, upper, ymin, ymax, count, width []float64
	for _, g := range groupByX(xs, ys) {
		f := series.FiveNumberSummary(g.ys)
		lo, hi := whiskers(g.ys, f, coef)
		ox = append(ox, g.x)
		lower = append(lower, f.Q1)
		middle = append(middle, f.Median)
		upper = append(upper, f.Q3)
		ymin = append(ymin, lo)
		ymax = append(ymax, hi)
		n := float64(len(g.ys))
		count = append(count, n)
		if s.VarWidth {
			width = append(width, math.Sqrt(n))
		} else {
			width = append(width, 1)
		}
	}
	return buildFrame(
		col(Vars.X, ox),
		col(Vars.Lower, lower),
		col(Vars.Middle, middle),
		col(Vars.Upper, upper),
		col(Vars.YMin, ymin),
		col(Vars.YMax, ymax),
		col(Vars.Count, count),
		col(Vars.Width, width),
	)
}

// Normalize scales variable widths so the widest box has width 1.
func (s *Boxplot) Normalize(all *frame.Frame) *frame.Frame {
	if !s.VarWidth || all.Len() == 0 {
		return all
	}
	ws := all.Numeric(Vars.Width)
	max := series.Max(ws)
	for i := range ws {
		ws[i] /= max
	}
	return all.Builder().PutNumeric(Vars.Width, ws).Done()
}

// whiskers returns the smallest and largest of the sorted values ys
// that are within coef×IQR of the box.
func whiskers(ys []float64, f series.FiveNumber, coef float64) (lo, hi float64) {
	lim := coef * f.IQR()
	lo, hi = f.Q1, f.Q3
	for _, y := range ys {
		if y >= f.Q1-lim {
			lo = y
			break
		}
	}
	for i := len(ys) - 1; i >= 0; i-- {
		if ys[i] <= f.Q3+lim {
			hi = ys[i]
			break
		}
	}
	return lo, hi
}

// BoxplotOutlier emits the values outside a box plot's whiskers, one
// row per outlier with ..x.. and ..y... An X with no outliers gets a
// single row whose ..y.. is NaN, so every box has a row in the
// outlier layer.
type BoxplotOutlier struct {
	// Coef is the whisker reach, as for Boxplot.Coef.
	Coef float64
}

func (s *BoxplotOutlier) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y}
}

func (s *BoxplotOutlier) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
}

func (s *BoxplotOutlier) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	xs, ys, ok := boxXs(data)
	if !ok {
		return emptyStatValues(nil, Vars.X, Vars.Y)
	}
	coef := whiskerCoef(s.Coef)
	var ox, oy []float64
	for _, g := range groupByX(xs, ys) {
		f := series.FiveNumberSummary(g.ys)
		lim := coef * f.IQR()
		n := 0
		for _, y := range g.ys {
			if y < f.Q1-lim || y > f.Q3+lim {
				ox = append(ox, g.x)
				oy = append(oy, y)
				n++
			}
		}
		if n == 0 {
			ox = append(ox, g.x)
			oy = append(oy, math.NaN())
		}
	}
	return buildFrame(col(Vars.X, ox), col(Vars.Y, oy))
}

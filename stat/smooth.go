// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
	"gonum.org/v1/gonum/stat/distuv"
)

// A SmoothMethod is a smoothing regression.
type SmoothMethod int

const (
	// SmoothLM is a least squares polynomial fit.
	SmoothLM SmoothMethod = iota
	// SmoothLOESS is a locally-weighted polynomial fit.
	SmoothLOESS
)

var smoothMethodNames = [][]string{
	SmoothLM:    {"lm"},
	SmoothLOESS: {"loess"},
}

// ParseSmoothMethod returns the smoothing method named s.
func ParseSmoothMethod(s string) (SmoothMethod, error) {
	i, err := parseOption("smoothing method", s, smoothMethodNames)
	return SmoothMethod(i), err
}

// MaxSmoothN is the largest number of points Smooth evaluates its fit
// at.
const MaxSmoothN = 1024

// Smooth fits a regression to the (X, Y) points of a group and
// samples it at N evenly spaced points across the data's X range.
//
// The result has ..x.., ..y.., and for SmoothLM the confidence band
// ..ymin.. and ..ymax.. at Level with its standard error ..se...
// SmoothLOESS has no band; its ..ymin.., ..ymax.. and ..se.. are NaN.
type Smooth struct {
	Method SmoothMethod

	// N is the number of points to sample the fit at. If 0, it
	// is 80.
	N int

	// Degree is the polynomial degree. If 0, it is 1 for lm and
	// 2 for loess.
	Degree int

	// Span is the fraction of points in each local loess fit. If
	// 0, it is 0.75.
	Span float64

	// Level is the confidence level of the band. If 0, it is
	// 0.95.
	Level float64
}

func (s Smooth) withDefaults() Smooth {
	if s.N == 0 {
		s.N = 80
	}
	if s.Degree == 0 {
		s.Degree = 1
		if s.Method == SmoothLOESS {
			s.Degree = 2
		}
	}
	if s.Span == 0 {
		s.Span = 0.75
	}
	if s.Level == 0 {
		s.Level = 0.95
	}
	return s
}

// NewSmooth validates s and returns it with defaults filled in.
func NewSmooth(s Smooth) (*Smooth, error) {
	s = s.withDefaults()
	if err := checkN("smooth", "N", s.N, MaxSmoothN); err != nil {
		return nil, err
	}
	if s.Degree < 0 {
		return nil, &ConfigError{"smooth", "Degree", fmt.Errorf("negative degree %d", s.Degree)}
	}
	if !(0 < s.Span && s.Span <= 1) {
		return nil, &ConfigError{"smooth", "Span", fmt.Errorf("span %g not in (0, 1]", s.Span)}
	}
	if !(0 < s.Level && s.Level < 1) {
		return nil, &ConfigError{"smooth", "Level", fmt.Errorf("level %g not in (0, 1)", s.Level)}
	}
	return &s, nil
}

func (s *Smooth) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *Smooth) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y, aes.YMin: Vars.YMin, aes.YMax: Vars.YMax}
}

var smoothOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.YMin, Vars.YMax, Vars.SE}

func distinctCount(xs []float64) int {
	s := series.SortedCopy(xs)
	n := 0
	for i := range s {
		if i == 0 || s[i] != s[i-1] {
			n++
		}
	}
	return n
}

func (s *Smooth) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	if !hasRequiredValues(data, frame.TX, frame.TY) {
		return emptyStatValues(nil, smoothOutputs...)
	}
	cfg := s.withDefaults()
	xs, ys, ws := series.FiniteTriples(data.Numeric(frame.TX), data.Numeric(frame.TY), weightsOr(data))
	if distinctCount(xs) <= cfg.Degree {
		return emptyStatValues(nil, smoothOutputs...)
	}
	r, _ := series.Range(xs)
	eval := vec.Linspace(r.Lo, r.Hi, cfg.N)

	var y, ymin, ymax, se []float64
	switch cfg.Method {
	case SmoothLM:
		lm, err := fitLeastSquares(xs, ys, ws, polynomialTerms(cfg.Degree)...)
		if err != nil {
			Warning.Print(err)
			return emptyStatValues(nil, smoothOutputs...)
		}
		y = lm.eval(eval)
		se = lm.stdErr(eval)
		t := math.NaN()
		if lm.df > 0 {
			t = distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(lm.df)}.Quantile((1 + cfg.Level) / 2)
		}
		for i := range eval {
			ymin = append(ymin, y[i]-t*se[i])
			ymax = append(ymax, y[i]+t*se[i])
		}
	case SmoothLOESS:
		sortByValue(xs, ys)
		f := fit.LOESS(xs, ys, cfg.Degree, cfg.Span)
		y = vec.Map(f, eval)
		nan := series.Fill(len(eval), math.NaN())
		ymin, ymax, se = nan, nan, nan
	}
	return buildFrame(
		col(Vars.X, eval),
		col(Vars.Y, y),
		col(Vars.YMin, ymin),
		col(Vars.YMax, ymax),
		col(Vars.SE, se),
	)
}

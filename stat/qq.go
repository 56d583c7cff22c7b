// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Distribution is a theoretical distribution for a QQ plot.
type Distribution int

const (
	DistNormal Distribution = iota
	DistUniform
	DistT
	DistGamma
	DistExp
	DistChi2
)

var distributionNames = [][]string{
	DistNormal:  {"norm", "normal"},
	DistUniform: {"uniform"},
	DistT:       {"t"},
	DistGamma:   {"gamma"},
	DistExp:     {"exp"},
	DistChi2:    {"chi2"},
}

// distributionDefaults are the default parameters of each
// distribution, in the order Quantiler takes them.
var distributionDefaults = [][]float64{
	DistNormal:  {0, 1},
	DistUniform: {0, 1},
	DistT:       {1},
	DistGamma:   {1, 1},
	DistExp:     {1},
	DistChi2:    {1},
}

// ParseDistribution returns the distribution named s.
func ParseDistribution(s string) (Distribution, error) {
	i, err := parseOption("distribution", s, distributionNames)
	return Distribution(i), err
}

func (d Distribution) String() string {
	return distributionNames[d][0]
}

// A Quantiler is a distribution's inverse CDF.
type Quantiler interface {
	Quantile(p float64) float64
}

// Quantiler returns d with the given parameters. Missing parameters
// take their defaults:
//
//	norm    mean 0, sd 1
//	uniform min 0, max 1
//	t       df 1
//	gamma   shape 1, rate 1
//	exp     rate 1
//	chi2    df 1
func (d Distribution) Quantiler(params ...float64) (Quantiler, error) {
	defs := distributionDefaults[d]
	if len(params) > len(defs) {
		return nil, fmt.Errorf("distribution %s takes at most %d parameters, got %d", d, len(defs), len(params))
	}
	p := append(append([]float64(nil), params...), defs[len(params):]...)
	switch d {
	case DistNormal:
		return distuv.Normal{Mu: p[0], Sigma: p[1]}, nil
	case DistUniform:
		return distuv.Uniform{Min: p[0], Max: p[1]}, nil
	case DistT:
		return distuv.StudentsT{Mu: 0, Sigma: 1, Nu: p[0]}, nil
	case DistGamma:
		return distuv.Gamma{Alpha: p[0], Beta: p[1]}, nil
	case DistExp:
		return distuv.Exponential{Rate: p[0]}, nil
	case DistChi2:
		return distuv.ChiSquared{K: p[0]}, nil
	}
	panic(fmt.Sprintf("unknown distribution %d", d))
}

// ppoints returns the n plotting positions (i+0.5)/n.
func ppoints(n int) []float64 {
	ps := make([]float64, n)
	for i := range ps {
		ps[i] = (float64(i) + 0.5) / float64(n)
	}
	return ps
}

// QQOptions are the options shared by the one-sample QQ stats.
type QQOptions struct {
	Distribution Distribution
	// Params are the distribution parameters. See
	// Distribution.Quantiler.
	Params []float64
}

func (o QQOptions) quantiler(stat string) (Quantiler, error) {
	q, err := o.Distribution.Quantiler(o.Params...)
	if err != nil {
		return nil, &ConfigError{stat, "Params", err}
	}
	return q, nil
}

// QQ pairs the sorted Y values of a group with the quantiles of a
// theoretical distribution at the same plotting positions. The
// result has ..theoretical.. and ..sample.. columns.
type QQ struct {
	QQOptions
	dist Quantiler
}

// NewQQ validates q and returns the configured stat.
func NewQQ(q QQOptions) (*QQ, error) {
	d, err := q.quantiler("qq")
	if err != nil {
		return nil, err
	}
	return &QQ{q, d}, nil
}

func (s *QQ) Consumes() []aes.Aes {
	return []aes.Aes{aes.Y}
}

func (s *QQ) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.Theoretical, aes.Y: Vars.Sample}
}

// sortedSample returns the sorted finite values of v in data.
func sortedSample(data *frame.Frame, v frame.Variable) []float64 {
	if !hasRequiredValues(data, v) {
		return nil
	}
	xs := series.Finite(data.Numeric(v))
	sort.Float64s(xs)
	return xs
}

func (s *QQ) theoretical(n int) []float64 {
	d := s.dist
	if d == nil {
		d, _ = s.quantiler("qq")
	}
	ts := ppoints(n)
	for i, p := range ts {
		ts[i] = d.Quantile(p)
	}
	return ts
}

func (s *QQ) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	sample := sortedSample(data, frame.TY)
	if len(sample) == 0 {
		return emptyStatValues(nil, Vars.Theoretical, Vars.Sample)
	}
	return buildFrame(
		col(Vars.Theoretical, s.theoretical(len(sample))),
		col(Vars.Sample, sample),
	)
}

// QQ2 compares two samples, X and Y. The larger sample is reduced to
// the size of the smaller by taking its R-8 quantiles at the smaller
// sample's plotting positions. The result has ..x.. and ..y...
type QQ2 struct{}

func (QQ2) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y}
}

func (QQ2) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
}

// matchQuantiles returns xs and ys at a common length.
func matchQuantiles(xs, ys []float64) ([]float64, []float64) {
	reduce := func(big []float64, n int) []float64 {
		out := ppoints(n)
		for i, p := range out {
			out[i] = series.Quantile8(big, p)
		}
		return out
	}
	switch {
	case len(xs) > len(ys):
		xs = reduce(xs, len(ys))
	case len(ys) > len(xs):
		ys = reduce(ys, len(xs))
	}
	return xs, ys
}

func (QQ2) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	xs, ys := sortedSample(data, frame.TX), sortedSample(data, frame.TY)
	if len(xs) == 0 || len(ys) == 0 {
		return emptyStatValues(nil, Vars.X, Vars.Y)
	}
	xs, ys = matchQuantiles(xs, ys)
	return buildFrame(col(Vars.X, xs), col(Vars.Y, ys))
}

// DefaultQQLineQuantiles are the quantiles a QQ line passes through.
var DefaultQQLineQuantiles = [2]float64{0.25, 0.75}

// QQLine is the reference line of a QQ plot: the line through the
// points of the QQ plot at two quantiles, drawn across the extent of
// the sample. The result has two rows of ..theoretical.. and
// ..sample.. plus constant ..slope.. and ..intercept...
type QQLine struct {
	QQ

	// Quantiles are the two quantiles the line passes through. If
	// zero, they are DefaultQQLineQuantiles.
	Quantiles [2]float64
}

// NewQQLine validates q and returns the configured stat.
func NewQQLine(q QQOptions, quantiles [2]float64) (*QQLine, error) {
	qq, err := NewQQ(q)
	if err != nil {
		return nil, err
	}
	if err := checkQuantilePair("qqline", quantiles); err != nil {
		return nil, err
	}
	return &QQLine{*qq, quantiles}, nil
}

func checkQuantilePair(stat string, qs [2]float64) error {
	if qs == [2]float64{} {
		return nil
	}
	if !(0 <= qs[0] && qs[0] < qs[1] && qs[1] <= 1) {
		return &ConfigError{stat, "Quantiles", fmt.Errorf("want 0 <= q1 < q2 <= 1, got %v", qs)}
	}
	return nil
}

func lineQuantiles(qs [2]float64) [2]float64 {
	if qs == [2]float64{} {
		return DefaultQQLineQuantiles
	}
	return qs
}

var qqLineOutputs = []frame.Variable{Vars.Theoretical, Vars.Sample, Vars.Slope, Vars.Intercept}

func (s *QQLine) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.Theoretical, aes.Y: Vars.Sample}
}

func (s *QQLine) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	sample := sortedSample(data, frame.TY)
	if len(sample) == 0 {
		return emptyStatValues(nil, qqLineOutputs...)
	}
	qs := lineQuantiles(s.Quantiles)
	ts := s.theoretical(len(sample))
	x1, x2 := series.Quantile8(ts, qs[0]), series.Quantile8(ts, qs[1])
	y1, y2 := series.Quantile8(sample, qs[0]), series.Quantile8(sample, qs[1])
	xs, ys, slope, icept := qqLineEnds(x1, y1, x2, y2, ts[0], ts[len(ts)-1], sample)
	return buildFrame(
		col(Vars.Theoretical, xs),
		col(Vars.Sample, ys),
		col(Vars.Slope, series.Fill(2, slope)),
		col(Vars.Intercept, series.Fill(2, icept)),
	)
}

// qqLineEnds returns the end points of the line through (x1, y1) and
// (x2, y2) over [xlo, xhi]. If x1 == x2 the line is undefined and the
// result is the identity line over the sorted sample.
func qqLineEnds(x1, y1, x2, y2, xlo, xhi float64, sample []float64) (xs, ys []float64, slope, icept float64) {
	if x1 == x2 || math.IsNaN(x2-x1) {
		lo, hi := sample[0], sample[len(sample)-1]
		return []float64{lo, hi}, []float64{lo, hi}, 1, 0
	}
	slope = (y2 - y1) / (x2 - x1)
	icept = y1 - slope*x1
	return []float64{xlo, xhi}, []float64{icept + slope*xlo, icept + slope*xhi}, slope, icept
}

// QQ2Line is the reference line of a QQ2 plot. The result has two
// rows of ..x.. and ..y.. plus constant ..slope.. and ..intercept...
type QQ2Line struct {
	Quantiles [2]float64
}

// NewQQ2Line validates q and returns it.
func NewQQ2Line(q QQ2Line) (*QQ2Line, error) {
	if err := checkQuantilePair("qq2line", q.Quantiles); err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QQ2Line) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y}
}

func (s *QQ2Line) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
}

var qq2LineOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.Slope, Vars.Intercept}

func (s *QQ2Line) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	xs, ys := sortedSample(data, frame.TX), sortedSample(data, frame.TY)
	if len(xs) == 0 || len(ys) == 0 {
		return emptyStatValues(nil, qq2LineOutputs...)
	}
	xs, ys = matchQuantiles(xs, ys)
	qs := lineQuantiles(s.Quantiles)
	x1, x2 := series.Quantile8(xs, qs[0]), series.Quantile8(xs, qs[1])
	y1, y2 := series.Quantile8(ys, qs[0]), series.Quantile8(ys, qs[1])
	lx, ly, slope, icept := qqLineEnds(x1, y1, x2, y2, xs[0], xs[len(xs)-1], ys)
	return buildFrame(
		col(Vars.X, lx),
		col(Vars.Y, ly),
		col(Vars.Slope, series.Fill(2, slope)),
		col(Vars.Intercept, series.Fill(2, icept)),
	)
}

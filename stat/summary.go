// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// An Aggregate reduces the sorted Y values at one X to a number.
type Aggregate int

const (
	AggNaN Aggregate = iota
	AggCount
	AggSum
	AggMean
	AggMedian
	AggMin
	AggMax
	// AggLQ, AggMQ and AggUQ are the quantiles given by
	// Summary.Quantiles.
	AggLQ
	AggMQ
	AggUQ
)

var aggregateNames = [][]string{
	AggNaN:    {"nan"},
	AggCount:  {"count"},
	AggSum:    {"sum"},
	AggMean:   {"mean"},
	AggMedian: {"median"},
	AggMin:    {"min"},
	AggMax:    {"max"},
	AggLQ:     {"lq"},
	AggMQ:     {"mq"},
	AggUQ:     {"uq"},
}

// ParseAggregate returns the aggregate named s.
func ParseAggregate(s string) (Aggregate, error) {
	i, err := parseOption("aggregate", s, aggregateNames)
	return Aggregate(i), err
}

func (a Aggregate) String() string {
	return aggregateNames[a][0]
}

// aggVars are the stat variables a context can request from Summary,
// by aggregate.
var aggVars = map[frame.Variable]Aggregate{
	Vars.Count:  AggCount,
	Vars.Sum:    AggSum,
	Vars.Mean:   AggMean,
	Vars.Median: AggMedian,
	Vars.Min:    AggMin,
	Vars.Max:    AggMax,
	Vars.LQ:     AggLQ,
	Vars.MQ:     AggMQ,
	Vars.UQ:     AggUQ,
}

// DefaultSummaryQuantiles are the lower, middle and upper quantiles
// of the lq, mq and uq aggregates.
var DefaultSummaryQuantiles = [3]float64{0.25, 0.5, 0.75}

// Summary aggregates the Y values at each distinct X of a group.
//
// The result has one row per distinct X with ..x.., ..y.. (the Y
// aggregate), ..ymin.. and ..ymax... Any other aggregate variable
// (Vars.Count, Vars.Mean, Vars.LQ, ...) that the context maps is
// added as well.
//
// The zero value computes the mean with min and max bounds.
type Summary struct {
	Y, YMin, YMax Aggregate

	// Quantiles are the lq, mq and uq quantiles. If zero, they
	// are DefaultSummaryQuantiles.
	Quantiles [3]float64
}

// NewSummary validates s and returns it with defaults filled in.
func NewSummary(s Summary) (*Summary, error) {
	s = s.withDefaults()
	for i, q := range s.Quantiles {
		if q < 0 || q > 1 {
			return nil, &ConfigError{"summary", fmt.Sprintf("Quantiles[%d]", i), fmt.Errorf("quantile %g not in [0, 1]", q)}
		}
	}
	return &s, nil
}

func (s Summary) withDefaults() Summary {
	if s.Y == AggNaN && s.YMin == AggNaN && s.YMax == AggNaN {
		s.Y, s.YMin, s.YMax = AggMean, AggMin, AggMax
	}
	if s.Quantiles == [3]float64{} {
		s.Quantiles = DefaultSummaryQuantiles
	}
	return s
}

func (s *Summary) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y}
}

func (s *Summary) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y, aes.YMin: Vars.YMin, aes.YMax: Vars.YMax}
}

// aggregate computes a over the sorted values ys.
func (s Summary) aggregate(a Aggregate, ys []float64) float64 {
	if len(ys) == 0 {
		if a == AggCount || a == AggSum {
			return 0
		}
		return math.NaN()
	}
	switch a {
	case AggCount:
		return float64(len(ys))
	case AggSum:
		return vec.Sum(ys)
	case AggMean:
		return vec.Sum(ys) / float64(len(ys))
	case AggMedian:
		return series.Quantile7(ys, 0.5)
	case AggMin:
		return ys[0]
	case AggMax:
		return ys[len(ys)-1]
	case AggLQ, AggMQ, AggUQ:
		return series.Quantile7(ys, s.Quantiles[a-AggLQ])
	}
	return math.NaN()
}

func (s *Summary) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	cfg := s.withDefaults()
	outputs := []frame.Variable{Vars.X, Vars.Y, Vars.YMin, Vars.YMax}
	aggs := []Aggregate{AggNaN, cfg.Y, cfg.YMin, cfg.YMax}
	for _, v := range ctx.MappedStatVariables() {
		if a, ok := aggVars[v]; ok {
			outputs = append(outputs, v)
			aggs = append(aggs, a)
		}
	}
	xs, ys, ok := boxXs(data)
	if !ok {
		return emptyStatValues(nil, outputs...)
	}

	groups := groupByX(xs, ys)
	cols := make([][]float64, len(outputs))
	for _, g := range groups {
		cols[0] = append(cols[0], g.x)
		for i := 1; i < len(outputs); i++ {
			cols[i] = append(cols[i], cfg.aggregate(aggs[i], g.ys))
		}
	}
	b := frame.NewBuilder()
	for i, v := range outputs {
		if !b.Has(v) {
			b.PutNumeric(v, cols[i])
		}
	}
	return b.Done()
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// A DotplotMethod chooses how a dot plot places its bins.
type DotplotMethod int

const (
	// DotDensity places bins adaptively: each bin starts at the
	// first value not covered by the previous bin (Wilkinson's
	// dot-density algorithm).
	DotDensity DotplotMethod = iota
	// HistoDot uses fixed-width histogram bins.
	HistoDot
)

var dotplotNames = [][]string{
	DotDensity: {"dotdensity"},
	HistoDot:   {"histodot"},
}

// ParseDotplotMethod returns the dot plot method named s.
func ParseDotplotMethod(s string) (DotplotMethod, error) {
	i, err := parseOption("dotplot method", s, dotplotNames)
	return DotplotMethod(i), err
}

// Dotplot bins the X values of a group for a dot plot. The result has
// one row per non-empty bin with ..x.., ..count.., ..density.. and
// ..binwidth...
type Dotplot struct {
	Method DotplotMethod
	Bins   BinOptions

	// AnchorKind and Anchor align HistoDot bins.
	AnchorKind Anchor
	Anchor     float64
}

// NewDotplot validates d and returns it with defaults filled in.
func NewDotplot(d Dotplot) (*Dotplot, error) {
	d.Bins = histogramBins(d.Bins)
	return &d, nil
}

func (s *Dotplot) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Weight}
}

func (s *Dotplot) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Count, aes.Binwidth: Vars.Binwidth}
}

var dotplotOutputs = []frame.Variable{Vars.X, Vars.Count, Vars.Density, Vars.Binwidth}

func (s *Dotplot) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	if !hasRequiredValues(data, frame.TX) {
		return emptyStatValues(nil, dotplotOutputs...)
	}
	xs, ws := series.FinitePairs(data.Numeric(frame.TX), weightsOr(data))
	r, ok := series.Range(xs)
	if !ok {
		return emptyStatValues(nil, dotplotOutputs...)
	}
	r = series.EnsureApplicableRange(r, true)
	bins := histogramBins(s.Bins)

	var centers, counts, density []float64
	var width float64
	switch s.Method {
	case DotDensity:
		sortByValue(xs, ws)
		_, width = binCountAndWidth(r.Length(), bins)
		centers, counts = dotDensityBins(xs, ws, width)
		total := vec.Sum(ws)
		for _, c := range counts {
			density = append(density, c/width/total)
		}
	case HistoDot:
		h := histogram(xs, ws, r, bins, s.AnchorKind, s.Anchor)
		width = h.width
		for i, c := range h.counts {
			if c == 0 {
				continue
			}
			centers = append(centers, h.centers[i])
			counts = append(counts, c)
			density = append(density, h.density[i])
		}
	}
	return buildFrame(
		col(Vars.X, centers),
		col(Vars.Count, counts),
		col(Vars.Density, density),
		col(Vars.Binwidth, series.Fill(len(centers), width)),
	)
}

// dotDensityBins groups the sorted values xs into bins of the given
// width, each starting at the first value past the previous bin. A
// bin's center is the midpoint of its smallest and largest values.
func dotDensityBins(xs, ws []float64, width float64) (centers, counts []float64) {
	if len(xs) == 0 {
		return nil, nil
	}
	lo, hi := xs[0], xs[0]
	end := xs[0] + width
	count := 0.0
	for i, x := range xs {
		if x >= end {
			centers = append(centers, (lo+hi)/2)
			counts = append(counts, count)
			lo, count = x, 0
			end = x + width
		}
		hi = x
		count += ws[i]
	}
	centers = append(centers, (lo+hi)/2)
	counts = append(counts, count)
	return centers, counts
}

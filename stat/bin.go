// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// DefaultBinCount is the number of bins a histogram uses when its
// BinOptions are zero.
const DefaultBinCount = 30

// An Anchor says how bins are aligned to Bin.Anchor.
type Anchor int

const (
	// AnchorNone centers the first bin on the smallest value.
	AnchorNone Anchor = iota
	// AnchorCenter puts a bin center at the anchor position.
	AnchorCenter
	// AnchorBoundary puts a bin boundary at the anchor position.
	AnchorBoundary
)

var anchorNames = [][]string{
	AnchorNone:     {"none"},
	AnchorCenter:   {"center", "centre"},
	AnchorBoundary: {"boundary"},
}

// ParseAnchor returns the bin anchor named s.
func ParseAnchor(s string) (Anchor, error) {
	i, err := parseOption("bin anchor", s, anchorNames)
	return Anchor(i), err
}

// Bin is a histogram of the X values of a group, optionally
// weighted. Bins are equal-width and span the context's overall X
// range, or the data's if there is none.
//
// The result has one row per bin with ..x.. (the bin center),
// ..count.., ..density.. (count / total / width), ..sumprop..
// (count / total) and ..binwidth...
type Bin struct {
	Bins BinOptions

	// AnchorKind and Anchor align the bins. The zero value
	// centers the first bin on the smallest value.
	AnchorKind Anchor
	Anchor     float64
}

// NewBin validates b and returns it with defaults filled in.
func NewBin(b Bin) (*Bin, error) {
	b.Bins = histogramBins(b.Bins)
	return &b, nil
}

func histogramBins(b BinOptions) BinOptions {
	if b.Count == 0 && !b.hasWidth() {
		b.Count = DefaultBinCount
	}
	if !b.hasWidth() && b.Count > MaxBinCount {
		Warning.Printf("bin count %d clamped to %d", b.Count, MaxBinCount)
	}
	return b
}

func (s *Bin) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Weight}
}

func (s *Bin) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Count, aes.Width: Vars.Binwidth}
}

var binOutputs = []frame.Variable{Vars.X, Vars.Count, Vars.Density, Vars.SumProp, Vars.Binwidth}

func (s *Bin) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	if !hasRequiredValues(data, frame.TX) {
		return emptyStatValues(nil, binOutputs...)
	}
	xs, ws := series.FinitePairs(data.Numeric(frame.TX), weightsOr(data))
	r, ok := ctx.OverallXRange()
	if !ok {
		r, ok = series.Range(xs)
	}
	if !ok {
		return emptyStatValues(nil, binOutputs...)
	}
	h := histogram(xs, ws, series.EnsureApplicableRange(r, true), histogramBins(s.Bins), s.AnchorKind, s.Anchor)
	return buildFrame(
		col(Vars.X, h.centers),
		col(Vars.Count, h.counts),
		col(Vars.Density, h.density),
		col(Vars.SumProp, h.sumProp),
		col(Vars.Binwidth, series.Fill(len(h.centers), h.width)),
	)
}

type histogramBinsData struct {
	width                             float64
	centers, counts, density, sumProp []float64
}

// histogram counts the weighted values xs into equal-width bins
// covering r.
func histogram(xs, ws []float64, r series.Span, opts BinOptions, kind Anchor, anchor float64) *histogramBinsData {
	_, width := binCountAndWidth(r.Length(), opts)
	var start float64
	switch kind {
	case AnchorNone:
		start = r.Lo - width/2
	case AnchorCenter:
		edge := anchor - width/2
		start = edge + math.Floor((r.Lo-edge)/width)*width
	case AnchorBoundary:
		start = anchor + math.Floor((r.Lo-anchor)/width)*width
	}
	count := int(math.Floor((r.Hi-start)/width)) + 1
	if count > MaxBinCount {
		count = MaxBinCount
	}

	h := &histogramBinsData{
		width:   width,
		centers: make([]float64, count),
		counts:  make([]float64, count),
		density: make([]float64, count),
		sumProp: make([]float64, count),
	}
	for i := range h.centers {
		h.centers[i] = start + width*(float64(i)+0.5)
	}
	for i, x := range xs {
		b := int(math.Floor((x - start) / width))
		if b < 0 {
			b = 0
		} else if b >= count {
			b = count - 1
		}
		h.counts[b] += ws[i]
	}
	total := vec.Sum(ws)
	for i, c := range h.counts {
		if total != 0 {
			h.sumProp[i] = c / total
			h.density[i] = c / total / width
		}
	}
	return h
}

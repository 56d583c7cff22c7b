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

// A ViolinScale says how violin widths are normalized across bins.
type ViolinScale int

const (
	// ScaleArea gives every violin the same area.
	ScaleArea ViolinScale = iota
	// ScaleCount scales areas by the number of observations.
	ScaleCount
	// ScaleWidth gives every violin the same maximum width.
	ScaleWidth
)

var violinScaleNames = [][]string{
	ScaleArea:  {"area"},
	ScaleCount: {"count"},
	ScaleWidth: {"width"},
}

// ParseViolinScale returns the violin scale named s.
func ParseViolinScale(s string) (ViolinScale, error) {
	i, err := parseOption("scale", s, violinScaleNames)
	return ViolinScale(i), err
}

// DefaultTailsCutoff is the number of bandwidths a trimmed binned
// density extends past the data.
const DefaultTailsCutoff = 3.0

// binnedColumns are the columns produced by binnedDensity, in order.
const (
	bcBin = iota
	bcValue
	bcDensity
	bcCount
	bcScaled
	bcQuantile
	numBinnedColumns
)

// binnedDensity estimates a density of values separately for each
// distinct value of bins, in order of first appearance. If trim is
// set, each density spans its data widened by cutoff bandwidths;
// otherwise it spans overall.
func (k KernelOptions) binnedDensity(bins, values, weights []float64, trim bool, cutoff float64, overall series.Span) [][]float64 {
	k = k.withDefaults()
	cols := make([][]float64, numBinnedColumns)
	forEachBin(bins, values, weights, func(bin float64, vs, ws []float64) {
		bw := k.bandwidth(vs)
		r := overall
		if trim {
			r, _ = series.Range(vs)
			r = r.Expanded(cutoff * bw)
		}
		grid := stepValues(r, k.N)
		kb := k
		kb.Bandwidth = bw
		count := vec.Map(kb.densityFunc(vs, ws), grid)
		density, scaled := normalizeCounts(count, vec.Sum(ws))

		cols[bcBin] = append(cols[bcBin], series.Fill(len(grid), bin)...)
		cols[bcValue] = append(cols[bcValue], grid...)
		cols[bcDensity] = append(cols[bcDensity], density...)
		cols[bcCount] = append(cols[bcCount], count...)
		cols[bcScaled] = append(cols[bcScaled], scaled...)
		cols[bcQuantile] = append(cols[bcQuantile], quantileMarkers(grid, density, k.Quantiles)...)
	})
	return expandByGroupEnds(cols, bcQuantile, bcBin)
}

// forEachBin calls f for each distinct finite bin value, in order of
// first appearance, with the finite (value, weight) pairs of that bin
// sorted by value.
func forEachBin(bins, values, weights []float64, f func(bin float64, vs, ws []float64)) {
	if len(bins) != len(values) || len(values) != len(weights) {
		panic("len(bins), len(values) and len(weights) differ")
	}
	var order []float64
	vsByBin := map[float64][]float64{}
	wsByBin := map[float64][]float64{}
	for i, b := range bins {
		if !series.IsFinite(b) || !series.IsFinite(values[i]) || !series.IsFinite(weights[i]) {
			continue
		}
		if _, ok := vsByBin[b]; !ok {
			order = append(order, b)
		}
		vsByBin[b] = append(vsByBin[b], values[i])
		wsByBin[b] = append(wsByBin[b], weights[i])
	}
	for _, b := range order {
		vs, ws := vsByBin[b], wsByBin[b]
		sortByValue(vs, ws)
		f(b, vs, ws)
	}
}

// YDensity is a violin: a density of the Y values for each distinct
// X value.
type YDensity struct {
	KernelOptions

	Scale ViolinScale

	// Trim limits each violin to its data widened by TailsCutoff
	// bandwidths. Otherwise violins span the overall Y range.
	Trim bool

	// TailsCutoff is in bandwidths. If 0, it is
	// DefaultTailsCutoff; a negative value means 0.
	TailsCutoff float64
}

// NewYDensity validates y and returns it with defaults filled in.
func NewYDensity(y YDensity) (*YDensity, error) {
	if err := y.check("ydensity"); err != nil {
		return nil, err
	}
	y.KernelOptions = y.withDefaults()
	return &y, nil
}

func tailsCutoff(c float64) float64 {
	switch {
	case c == 0:
		return DefaultTailsCutoff
	case c < 0:
		return 0
	}
	return c
}

func (s *YDensity) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *YDensity) DefaultMapping() aes.Mapping {
	return aes.Mapping{
		aes.X:           Vars.X,
		aes.Y:           Vars.Y,
		aes.ViolinWidth: Vars.ViolinWidth,
		aes.Quantile:    Vars.Quantile,
	}
}

var yDensityOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.Density, Vars.Count, Vars.Scaled, Vars.Quantile}

func (s *YDensity) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	cols, ok := violinColumns(data, ctx, s.KernelOptions, s.Trim, s.TailsCutoff)
	if !ok {
		return emptyStatValues(nil, yDensityOutputs...)
	}
	return violinFrame(cols)
}

// Normalize adds ..violinwidth.. scaled across all groups.
func (s *YDensity) Normalize(all *frame.Frame) *frame.Frame {
	if all.Len() == 0 {
		return all.Builder().PutNumeric(Vars.ViolinWidth, nil).Done()
	}
	return all.Builder().PutNumeric(Vars.ViolinWidth, violinWidths(s.Scale, all, all)).Done()
}

func violinColumns(data *frame.Frame, ctx frame.Context, k KernelOptions, trim bool, cutoff float64) ([][]float64, bool) {
	if !hasRequiredValues(data, frame.TY) {
		return nil, false
	}
	ys := data.Numeric(frame.TY)
	xs := data.NumericOr(frame.TX, 0)
	overall, ok := ctx.OverallYRange()
	if !ok {
		overall, _ = series.Range(ys)
		overall = overall.Expanded(DefaultTailsCutoff * k.withDefaults().bandwidth(series.Finite(ys)))
	}
	return k.binnedDensity(xs, ys, weightsOr(data), trim, tailsCutoff(cutoff), overall), true
}

func violinFrame(cols [][]float64) *frame.Frame {
	return buildFrame(
		col(Vars.X, cols[bcBin]),
		col(Vars.Y, cols[bcValue]),
		col(Vars.Density, cols[bcDensity]),
		col(Vars.Count, cols[bcCount]),
		col(Vars.Scaled, cols[bcScaled]),
		col(Vars.Quantile, cols[bcQuantile]),
	)
}

// violinWidths computes the violin widths of the rows of target,
// normalized against the density rows of ref.
func violinWidths(scale ViolinScale, ref, target *frame.Frame) []float64 {
	density := target.Numeric(Vars.Density)
	out := make([]float64, len(density))
	switch scale {
	case ScaleArea:
		max := series.Max(ref.Numeric(Vars.Density))
		for i, d := range density {
			out[i] = d / max
		}
	case ScaleCount:
		refDensity := ref.Numeric(Vars.Density)
		refCount := ref.Numeric(Vars.Count)
		// count/density is a bin's total weight.
		maxWeight := math.Inf(-1)
		for i, d := range refDensity {
			if d > 0 {
				maxWeight = math.Max(maxWeight, refCount[i]/d)
			}
		}
		norm := series.Max(refDensity) * maxWeight
		for i, c := range target.Numeric(Vars.Count) {
			out[i] = c / norm
		}
	case ScaleWidth:
		copy(out, target.Numeric(Vars.Scaled))
	}
	return out
}

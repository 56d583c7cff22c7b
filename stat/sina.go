// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// Sina computes, for every observation, the violin density at its Y
// value so a geom can spread observations within the violin outline.
//
// The result has one row per finite observation with ..x.., ..y..,
// ..density.., ..count.., ..scaled.., ..quantile.. and
// ..violinwidth...
type Sina struct {
	KernelOptions

	Scale       ViolinScale
	Trim        bool
	TailsCutoff float64
}

// NewSina validates s and returns it with defaults filled in.
func NewSina(s Sina) (*Sina, error) {
	if err := s.check("sina"); err != nil {
		return nil, err
	}
	s.KernelOptions = s.withDefaults()
	return &s, nil
}

func (s *Sina) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *Sina) DefaultMapping() aes.Mapping {
	return aes.Mapping{
		aes.X:           Vars.X,
		aes.Y:           Vars.Y,
		aes.ViolinWidth: Vars.ViolinWidth,
		aes.Quantile:    Vars.Quantile,
	}
}

// Apply returns the violin rows (..n.. = 0) followed by one row per
// observation (..n.. = 1). Normalize drops the violin rows.
func (s *Sina) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	cols, ok := violinColumns(data, ctx, s.KernelOptions, s.Trim, s.TailsCutoff)
	if !ok {
		return emptyStatValues(nil, append(yDensityOutputs, Vars.N)...)
	}
	out := make([][]float64, numBinnedColumns)
	var ns []float64
	xs := data.NumericOr(frame.TX, 0)
	forEachBin(xs, data.Numeric(frame.TY), weightsOr(data), func(bin float64, vs, ws []float64) {
		idx := series.MatchingIndices(cols[bcBin], func(b float64) bool { return b == bin })
		chain := make([][]float64, numBinnedColumns)
		for c := range chain {
			chain[c] = series.PickAtIndices(cols[c], idx)
		}
		for c := range out {
			out[c] = append(out[c], chain[c]...)
		}
		out[bcBin] = append(out[bcBin], series.Fill(len(vs), bin)...)
		out[bcValue] = append(out[bcValue], vs...)
		for _, c := range []int{bcDensity, bcCount, bcScaled} {
			out[c] = append(out[c], onChain(vs, chain[bcValue], chain[c], true)...)
		}
		out[bcQuantile] = append(out[bcQuantile], onChain(vs, chain[bcValue], chain[bcQuantile], false)...)
		ns = append(ns, series.Fill(len(idx), 0)...)
		ns = append(ns, series.Fill(len(vs), 1)...)
	})
	return violinFrame(out).Builder().PutNumeric(Vars.N, ns).Done()
}

// onChain maps each of the sorted values xs onto the polygonal chain
// (chainX[i], chainY[i]). If interp is false, it takes the value at
// the start of the segment instead of interpolating.
func onChain(xs, chainX, chainY []float64, interp bool) []float64 {
	out := make([]float64, len(xs))
	start := 0
	for k, x := range xs {
		i, j := neighbours(x, chainX, start)
		start = i
		if !interp || chainX[i] == chainX[j] {
			out[k] = chainY[i]
			continue
		}
		out[k] = chainY[i] + (x-chainX[i])*(chainY[j]-chainY[i])/(chainX[j]-chainX[i])
	}
	return out
}

// neighbours returns the indices of the segment of the sorted values
// that contains v, searching from start. Values outside the chain map
// to its last point.
func neighbours(v float64, values []float64, start int) (int, int) {
	last := len(values) - 1
	i := -1
	for k := last; k >= start; k-- {
		if values[k] <= v {
			i = k
			break
		}
	}
	if i < 0 {
		return last, last
	}
	for j := i; j <= last; j++ {
		if v < values[j] {
			return i, j
		}
	}
	return last, last
}

// Normalize keeps only the observation rows and computes their
// ..violinwidth.. against the violin rows of all groups.
func (s *Sina) Normalize(all *frame.Frame) *frame.Frame {
	if all.Len() == 0 {
		return all.Builder().Remove(Vars.N).PutNumeric(Vars.ViolinWidth, nil).Done()
	}
	n := all.Numeric(Vars.N)
	sina := all.Slice(series.MatchingIndices(n, func(v float64) bool { return v == 1 }))
	violin := all.Slice(series.MatchingIndices(n, func(v float64) bool { return v == 0 }))
	var widths []float64
	switch {
	case sina.Len() == 0:
	case violin.Len() == 0:
		widths = series.Fill(sina.Len(), 0)
	default:
		widths = violinWidths(s.Scale, violin, sina)
	}
	return sina.Builder().Remove(Vars.N).PutNumeric(Vars.ViolinWidth, widths).Done()
}

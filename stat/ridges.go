// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// DensityRidges estimates a density of the X values for each
// distinct Y value. ..height.. is the density scaled so the tallest
// ridge across all groups is 1.
type DensityRidges struct {
	KernelOptions

	// Trim limits each ridge to its data widened by TailsCutoff
	// bandwidths. Otherwise ridges span the overall X range.
	Trim        bool
	TailsCutoff float64
}

// NewDensityRidges validates r and returns it with defaults filled in.
func NewDensityRidges(r DensityRidges) (*DensityRidges, error) {
	if err := r.check("densityridges"); err != nil {
		return nil, err
	}
	r.KernelOptions = r.withDefaults()
	return &r, nil
}

func (s *DensityRidges) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *DensityRidges) DefaultMapping() aes.Mapping {
	return aes.Mapping{
		aes.X:        Vars.X,
		aes.Y:        Vars.Y,
		aes.Height:   Vars.Height,
		aes.Quantile: Vars.Quantile,
	}
}

func (s *DensityRidges) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	if !hasRequiredValues(data, frame.TX, frame.TY) {
		return emptyStatValues(nil, append(yDensityOutputs, Vars.Height)...)
	}
	xs := data.Numeric(frame.TX)
	overall, ok := ctx.OverallXRange()
	if !ok {
		overall, _ = series.Range(xs)
		overall = overall.Expanded(DefaultTailsCutoff * s.withDefaults().bandwidth(series.Finite(xs)))
	}
	cols := s.binnedDensity(data.Numeric(frame.TY), xs, weightsOr(data), s.Trim, tailsCutoff(s.TailsCutoff), overall)
	return buildFrame(
		col(Vars.X, cols[bcValue]),
		col(Vars.Y, cols[bcBin]),
		col(Vars.Density, cols[bcDensity]),
		col(Vars.Count, cols[bcCount]),
		col(Vars.Scaled, cols[bcScaled]),
		col(Vars.Quantile, cols[bcQuantile]),
		col(Vars.Height, cols[bcDensity]),
	)
}

// Normalize rescales ..height.. against the largest density of all
// groups.
func (s *DensityRidges) Normalize(all *frame.Frame) *frame.Frame {
	if all.Len() == 0 {
		return all
	}
	density := all.Numeric(Vars.Density)
	max := series.Max(density)
	for i := range density {
		density[i] /= max
	}
	return all.Builder().PutNumeric(Vars.Height, density).Done()
}

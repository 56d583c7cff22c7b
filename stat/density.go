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

// Limits on the evaluation grid of the density stats.
const (
	MaxDensityN   = 1024
	MaxDensity2DN = 999
)

// DefaultQuantiles are the quantile cut points a density marks when
// none are given.
var DefaultQuantiles = []float64{0.25, 0.5, 0.75}

// KernelOptions configure a 1D kernel density estimate. They are
// shared by Density, YDensity, Sina and DensityRidges.
//
// The zero value is a Gaussian estimate on 512 points with the NRD0
// bandwidth rule.
type KernelOptions struct {
	// Bandwidth is the kernel bandwidth. If 0, it is estimated by
	// BandwidthMethod.
	Bandwidth       float64
	BandwidthMethod BandwidthMethod

	// Adjust scales the bandwidth. If 0, it is 1.
	Adjust float64

	Kernel Kernel

	// N is the number of evaluation points. If 0, it is 512. It
	// must be at most MaxDensityN.
	N int

	// FullScanMax is the largest sample for which each point is
	// evaluated against the entire sample. Larger samples only
	// consider values within five bandwidths. If 0, it is 5000.
	FullScanMax int

	// Quantiles are the cut points tagged in the ..quantile..
	// output, in increasing order. If nil, DefaultQuantiles.
	Quantiles []float64
}

func (k KernelOptions) withDefaults() KernelOptions {
	if k.Adjust == 0 {
		k.Adjust = 1
	}
	if k.N == 0 {
		k.N = 512
	}
	if k.FullScanMax == 0 {
		k.FullScanMax = 5000
	}
	if k.Quantiles == nil {
		k.Quantiles = DefaultQuantiles
	}
	return k
}

func (k KernelOptions) check(stat string) error {
	return checkN(stat, "N", k.withDefaults().N, MaxDensityN)
}

// bandwidth returns the configured bandwidth or estimates one from xs.
func (k KernelOptions) bandwidth(xs []float64) float64 {
	if k.Bandwidth != 0 {
		return k.Bandwidth
	}
	return Bandwidth(k.BandwidthMethod, xs)
}

func (k KernelOptions) densityFunc(xs, ws []float64) func(float64) float64 {
	return densityFunc(xs, ws, k.Bandwidth, k.BandwidthMethod, k.Adjust, k.Kernel, k.FullScanMax)
}

// Density is a 1D kernel density estimate of the X values of a
// group, optionally weighted.
type Density struct {
	KernelOptions

	// Trim evaluates the density only over the range of the data.
	// Otherwise it is evaluated over the context's overall X range
	// or, if there is none, the data range widened by three
	// bandwidths on each side.
	Trim bool
}

// NewDensity validates d and returns it with defaults filled in.
func NewDensity(d Density) (*Density, error) {
	if err := d.check("density"); err != nil {
		return nil, err
	}
	d.KernelOptions = d.withDefaults()
	return &d, nil
}

func (d *Density) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Weight}
}

func (d *Density) DefaultMapping() aes.Mapping {
	return aes.Mapping{
		aes.X:        Vars.X,
		aes.Y:        Vars.Density,
		aes.Quantile: Vars.Quantile,
	}
}

var densityOutputs = []frame.Variable{Vars.X, Vars.Density, Vars.Count, Vars.Scaled, Vars.Quantile}

func (d *Density) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	o := d.withDefaults()
	if !hasRequiredValues(data, frame.TX) {
		return emptyStatValues(nil, densityOutputs...)
	}
	xs, ws := series.FinitePairs(data.Numeric(frame.TX), weightsOr(data))
	if len(xs) == 0 {
		return emptyStatValues(nil, densityOutputs...)
	}
	sortByValue(xs, ws)

	bw := o.bandwidth(xs)
	r, _ := series.Range(xs)
	if !d.Trim {
		if cr, ok := ctx.OverallXRange(); ok {
			r = cr
		} else {
			r = r.Expanded(3 * bw)
		}
	}

	grid := stepValues(r, o.N)
	o.Bandwidth = bw
	count := vec.Map(o.densityFunc(xs, ws), grid)
	density, scaled := normalizeCounts(count, vec.Sum(ws))
	quant := quantileMarkers(grid, density, o.Quantiles)

	cols := expandByGroupEnds([][]float64{grid, density, count, scaled, quant}, 4, -1)
	return buildFrame(
		col(Vars.X, cols[0]),
		col(Vars.Density, cols[1]),
		col(Vars.Count, cols[2]),
		col(Vars.Scaled, cols[3]),
		col(Vars.Quantile, cols[4]),
	)
}

// normalizeCounts returns count divided by total and by its maximum.
func normalizeCounts(count []float64, total float64) (density, scaled []float64) {
	max := series.Max(count)
	density = make([]float64, len(count))
	scaled = make([]float64, len(count))
	for i, c := range count {
		density[i] = c / total
		scaled[i] = c / max
	}
	return
}

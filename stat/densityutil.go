// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/series"
)

// A Kernel is a smoothing kernel for density estimation. The zero
// Kernel is Gaussian.
type Kernel int

const (
	KernelGaussian Kernel = iota
	KernelRectangular
	KernelTriangular
	KernelBiweight
	KernelEpanechnikov
	KernelOptCosine
	KernelCosine
)

var kernelNames = [][]string{
	KernelGaussian:     {"gaussian"},
	KernelRectangular:  {"rectangular", "uniform"},
	KernelTriangular:   {"triangular"},
	KernelBiweight:     {"biweight", "quartic"},
	KernelEpanechnikov: {"epanechikov", "epanechnikov", "parabolic"},
	KernelOptCosine:    {"optcosine"},
	KernelCosine:       {"cosine"},
}

// ParseKernel returns the kernel named s.
func ParseKernel(s string) (Kernel, error) {
	i, err := parseOption("kernel", s, kernelNames)
	return Kernel(i), err
}

func (k Kernel) String() string {
	if k < 0 || int(k) >= len(kernelNames) {
		return "Kernel(?)"
	}
	return kernelNames[k][0]
}

// F returns the kernel function. All kernels but the Gaussian have
// support [-1, 1].
func (k Kernel) F() func(float64) float64 {
	switch k {
	case KernelGaussian:
		return func(x float64) float64 {
			return 1 / math.Sqrt(2*math.Pi) * math.Exp(-0.5*x*x)
		}
	case KernelRectangular:
		return bounded(func(x float64) float64 { return 0.5 })
	case KernelTriangular:
		return bounded(func(x float64) float64 { return 1 - math.Abs(x) })
	case KernelBiweight:
		return bounded(func(x float64) float64 {
			u := 1 - x*x
			return .9375 * u * u
		})
	case KernelEpanechnikov:
		return bounded(func(x float64) float64 { return .75 * (1 - x*x) })
	case KernelOptCosine:
		return bounded(func(x float64) float64 { return math.Pi / 4 * math.Cos(math.Pi/2*x) })
	case KernelCosine:
		return bounded(func(x float64) float64 { return (math.Cos(math.Pi*x) + 1) / 2 })
	}
	panic("unknown kernel " + k.String())
}

func bounded(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		if math.Abs(x) > 1 {
			return 0
		}
		return f(x)
	}
}

// A BandwidthMethod is a rule of thumb for choosing a kernel
// bandwidth. The zero BandwidthMethod is NRD0.
type BandwidthMethod int

const (
	// BandwidthNRD0 is Silverman's rule of thumb.
	BandwidthNRD0 BandwidthMethod = iota
	// BandwidthNRD is Scott's variation.
	BandwidthNRD
)

var bandwidthNames = [][]string{
	BandwidthNRD0: {"nrd0"},
	BandwidthNRD:  {"nrd"},
}

// ParseBandwidthMethod returns the bandwidth method named s.
func ParseBandwidthMethod(s string) (BandwidthMethod, error) {
	i, err := parseOption("bandwidth method", s, bandwidthNames)
	return BandwidthMethod(i), err
}

func (m BandwidthMethod) String() string {
	if m < 0 || int(m) >= len(bandwidthNames) {
		return "BandwidthMethod(?)"
	}
	return bandwidthNames[m][0]
}

// Bandwidth estimates a kernel bandwidth for the finite values of xs.
// If the estimate degenerates to 0 (for example, a single value), it
// returns 1.
func Bandwidth(m BandwidthMethod, xs []float64) float64 {
	xs = series.Finite(xs)
	if len(xs) == 0 {
		return 1
	}
	iqr := series.FiveNumberSummary(xs).IQR()
	sd := stdDev(xs)
	factor := 0.9
	if m == BandwidthNRD {
		factor = 1.06
	}
	scale := math.Pow(float64(len(xs)), -0.2)
	switch {
	case iqr > 0:
		return factor * math.Min(sd, iqr/1.34) * scale
	case sd > 0:
		return factor * sd * scale
	}
	return 1
}

// stdDev returns the population standard deviation of xs.
func stdDev(xs []float64) float64 {
	mean := stats.Mean(xs)
	var sum float64
	for _, x := range xs {
		sum += (x - mean) * (x - mean)
	}
	return math.Sqrt(sum / float64(len(xs)))
}

// kde holds what the density functions need: a sorted sample, its
// weights, and the effective bandwidth h.
type kde struct {
	xs, ws []float64
	k      func(float64) float64
	h      float64
}

func newKDE(xs, ws []float64, k Kernel, bw, adjust float64) *kde {
	return &kde{xs, ws, k.F(), bw * adjust}
}

// full evaluates the density sum at x over the whole sample.
func (d *kde) full(x float64) float64 {
	var sum float64
	for i, xi := range d.xs {
		sum += d.k((x-xi)/d.h) * d.ws[i]
	}
	return sum / d.h
}

// fast evaluates the density sum at x over the samples within 5h of
// x. d.xs must be sorted.
func (d *kde) fast(x float64) float64 {
	cutoff := 5 * d.h
	from := sort.SearchFloat64s(d.xs, x-cutoff)
	to := sort.SearchFloat64s(d.xs, x+cutoff)
	var sum float64
	for i := from; i < to; i++ {
		sum += d.k((x-d.xs[i])/d.h) * d.ws[i]
	}
	return sum / d.h
}

// densityFunc returns the (unnormalized) density function of the
// sorted sample xs with weights ws. If bw is 0, it is estimated with
// method. Samples larger than fullScanMax use the windowed sum.
func densityFunc(xs, ws []float64, bw float64, method BandwidthMethod, adjust float64, k Kernel, fullScanMax int) func(float64) float64 {
	if bw == 0 {
		bw = Bandwidth(method, xs)
	}
	d := newKDE(xs, ws, k, bw, adjust)
	if len(xs) <= fullScanMax {
		return d.full
	}
	return d.fast
}

// stepValues returns n evenly spaced values spanning r. A zero-length
// r is widened by 0.5 on each side.
func stepValues(r series.Span, n int) []float64 {
	lo, hi := r.Lo, r.Hi
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	return vec.Linspace(lo, hi, n)
}

// sortByValue sorts xs and ws together by xs.
func sortByValue(xs, ws []float64) {
	sort.Sort(&pairSorter{xs, ws})
}

type pairSorter struct{ xs, ws []float64 }

func (p *pairSorter) Len() int           { return len(p.xs) }
func (p *pairSorter) Less(i, j int) bool { return p.xs[i] < p.xs[j] }
func (p *pairSorter) Swap(i, j int) {
	p.xs[i], p.xs[j] = p.xs[j], p.xs[i]
	p.ws[i], p.ws[j] = p.ws[j], p.ws[i]
}

// quantileMarkers tags each grid point in sample with the quantile
// band it falls in: the smallest requested quantile whose cut point,
// found by interpolating the cumulative density, is at or above the
// grid point. Points above the last cut point get 1.
func quantileMarkers(sample, density, quantiles []float64) []float64 {
	out := make([]float64, len(sample))
	if len(sample) == 0 {
		return out
	}
	if len(quantiles) == 0 {
		for i := range out {
			out[i] = 1
		}
		return out
	}
	total := vec.Sum(density)
	cum := make([]float64, len(density))
	var run float64
	for i, d := range density {
		run += d
		cum[i] = run / total
	}
	qi := 0
	q := quantiles[qi]
	for i, x := range sample {
		if qi < len(quantiles) && x <= interpLinear(cum, sample, q) {
			out[i] = q
			continue
		}
		qi++
		if qi < len(quantiles) {
			q = quantiles[qi]
		} else {
			q = 1
		}
		out[i] = q
	}
	return out
}

// interpLinear returns the piecewise linear interpolation at t of the
// function given by points (xs[i], ys[i]), clamped to the end values.
// xs must be non-decreasing.
func interpLinear(xs, ys []float64, t float64) float64 {
	i := sort.Search(len(xs), func(i int) bool { return xs[i] >= t })
	switch i {
	case 0:
		return ys[0]
	case len(xs):
		return ys[len(ys)-1]
	}
	a := (ys[i] - ys[i-1]) / (xs[i] - xs[i-1])
	b := ys[i-1] - a*xs[i-1]
	return a*t + b
}

// expandByGroupEnds duplicates rows where the value of group changes
// between neighbouring rows of the same bin, so each quantile band is
// a closed shape. The duplicate is the earlier row carrying the new
// group value. cols are all columns of the data; group and bin index
// into cols and bin is -1 if there is no bin column.
func expandByGroupEnds(cols [][]float64, group, bin int) [][]float64 {
	if len(cols) == 0 {
		return cols
	}
	n := len(cols[0])
	out := make([][]float64, len(cols))
	for i := 0; i < n; i++ {
		if i > 0 {
			sameBin := bin < 0 || cols[bin][i-1] == cols[bin][i]
			if sameBin && cols[group][i-1] != cols[group][i] {
				for c := range cols {
					if c == group {
						out[c] = append(out[c], cols[c][i])
					} else {
						out[c] = append(out[c], cols[c][i-1])
					}
				}
			}
		}
		for c := range cols {
			out[c] = append(out[c], cols[c][i])
		}
	}
	return out
}

// rawMatrix returns the kernel matrix m[row][col] =
// K((grid[row]-values[col])/a)·√w[col]/a of a 2D density, where
// a = bw·adjust.
func rawMatrix(values, grid []float64, k Kernel, bw, adjust float64, ws []float64) []float64 {
	a := bw * adjust
	kf := k.F()
	n := len(values)
	m := make([]float64, len(grid)*n)
	for row, g := range grid {
		for col, v := range values {
			m[row*n+col] = kf((g-v)/a) * math.Sqrt(ws[col]) / a
		}
	}
	return m
}

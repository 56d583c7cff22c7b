// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"math"
	"sort"
)

// Quantile7 returns the p-quantile of sorted using linear
// interpolation between order statistics (Hyndman and Fan type 7,
// the R default). It returns NaN if sorted is empty.
func Quantile7(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch {
	case n == 0:
		return math.NaN()
	case n == 1 || p <= 0:
		return sorted[0]
	case p >= 1:
		return sorted[n-1]
	}
	h := p * float64(n-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// FiveNumber is the five-number summary of a sample.
type FiveNumber struct {
	Min, Q1, Median, Q3, Max float64
}

// IQR returns the interquartile range Q3 - Q1.
func (f FiveNumber) IQR() float64 {
	return f.Q3 - f.Q1
}

// FiveNumberSummary computes the five-number summary of the finite
// values of xs. If xs has no finite values, every field is NaN.
func FiveNumberSummary(xs []float64) FiveNumber {
	fs := Finite(xs)
	if len(fs) == 0 {
		nan := math.NaN()
		return FiveNumber{nan, nan, nan, nan, nan}
	}
	if !sort.Float64sAreSorted(fs) {
		sort.Float64s(fs)
	}
	return FiveNumber{
		Min:    fs[0],
		Q1:     Quantile7(fs, 0.25),
		Median: Quantile7(fs, 0.5),
		Q3:     Quantile7(fs, 0.75),
		Max:    fs[len(fs)-1],
	}
}

// Quantile8 returns the p-quantile of sorted using the approximately
// median-unbiased estimate (Hyndman and Fan type 8). It returns NaN
// if sorted is empty.
func Quantile8(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	fn := float64(n)
	switch {
	case p < (2.0/3)/(fn+1.0/3):
		return sorted[0]
	case p >= (fn-1.0/3)/(fn+1.0/3):
		return sorted[n-1]
	}
	h := (fn+1.0/3)*p + 1.0/3
	lo := math.Floor(h)
	i := int(lo) - 1
	if i+1 >= n {
		return sorted[n-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

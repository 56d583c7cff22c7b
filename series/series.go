// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series provides helpers for numeric data series: filtering
// non-finite values, ranges, resolution, and simple aggregates.
//
// Series are []float64. A missing (null) value is represented as NaN
// and is treated like any other non-finite value.
package series

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// Tiny is the smallest span length that is considered non-empty.
const Tiny = 1e-50

// IsFinite returns true if x is neither NaN nor an infinity.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// AllFinite returns true if every value in xs is finite.
func AllFinite(xs []float64) bool {
	for _, x := range xs {
		if !IsFinite(x) {
			return false
		}
	}
	return true
}

// Finite returns the finite values of xs, in order.
func Finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if IsFinite(x) {
			out = append(out, x)
		}
	}
	return out
}

// FinitePairs returns the pairs (xs[i], ys[i]) where both values are
// finite.
func FinitePairs(xs, ys []float64) (fxs, fys []float64) {
	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}
	fxs, fys = make([]float64, 0, len(xs)), make([]float64, 0, len(ys))
	for i, x := range xs {
		if IsFinite(x) && IsFinite(ys[i]) {
			fxs = append(fxs, x)
			fys = append(fys, ys[i])
		}
	}
	return
}

// FiniteTriples is like FinitePairs for three parallel series.
func FiniteTriples(xs, ys, zs []float64) (fxs, fys, fzs []float64) {
	if len(xs) != len(ys) || len(xs) != len(zs) {
		panic("series must have equal length")
	}
	for i, x := range xs {
		if IsFinite(x) && IsFinite(ys[i]) && IsFinite(zs[i]) {
			fxs = append(fxs, x)
			fys = append(fys, ys[i])
			fzs = append(fzs, zs[i])
		}
	}
	return
}

// Range returns the span of the finite values in xs. ok is false if
// xs has no finite values.
func Range(xs []float64) (span Span, ok bool) {
	lo, hi := stats.Bounds(Finite(xs))
	if math.IsNaN(lo) {
		return Span{}, false
	}
	return Span{lo, hi}, true
}

// IsBeyondPrecision returns true if the span is too narrow relative
// to its magnitude to be subdivided meaningfully.
func IsBeyondPrecision(s Span) bool {
	if s.Length() < Tiny {
		return true
	}
	maxAbs := math.Max(math.Abs(s.Lo), math.Abs(s.Hi))
	return math.Log10(maxAbs)-math.Log10(s.Length()) > 12
}

// EnsureApplicableRange returns a span suitable for a scale domain.
// A missing span becomes [-0.5, 0.5] and a zero-length span is widened
// around its center.
func EnsureApplicableRange(s Span, ok bool) Span {
	if !ok {
		return Span{-0.5, 0.5}
	}
	if IsBeyondPrecision(s) {
		c := s.Center()
		d := 0.5
		if c != 0 {
			d = math.Abs(c) / 10
		}
		return Span{c - d, c + d}
	}
	return s
}

// Resolution returns the smallest positive gap between distinct
// finite values of xs, or fallback if there are fewer than two
// distinct values.
func Resolution(xs []float64, fallback float64) float64 {
	fs := SortedCopy(Finite(xs))
	res := math.Inf(1)
	for i := 1; i < len(fs); i++ {
		if d := fs[i] - fs[i-1]; d > 0 && d < res {
			res = d
		}
	}
	if math.IsInf(res, 1) {
		return fallback
	}
	return res
}

// Mean returns the mean of the finite values of xs, or fallback if
// there are none.
func Mean(xs []float64, fallback float64) float64 {
	fs := Finite(xs)
	if len(fs) == 0 {
		return fallback
	}
	return stats.Sample{Xs: fs}.Mean()
}

// WeightedMean returns the weighted mean of xs. Pairs with a
// non-finite member are ignored.
func WeightedMean(xs, ws []float64, fallback float64) float64 {
	fxs, fws := FinitePairs(xs, ws)
	s := stats.Sample{Xs: fxs, Weights: fws}
	if s.Weight() == 0 {
		return fallback
	}
	return s.Mean()
}

// Sum returns the sum of the finite values of xs.
func Sum(xs []float64) float64 {
	return vec.Sum(Finite(xs))
}

// SortedCopy returns a sorted copy of xs.
func SortedCopy(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)
	return out
}

// MatchingIndices returns the indices i for which pred(xs[i]) is true.
func MatchingIndices(xs []float64, pred func(float64) bool) []int {
	var out []int
	for i, x := range xs {
		if pred(x) {
			out = append(out, i)
		}
	}
	return out
}

// PickAtIndices returns xs[i] for each i in indices.
func PickAtIndices(xs []float64, indices []int) []float64 {
	out := make([]float64, len(indices))
	for j, i := range indices {
		out[j] = xs[i]
	}
	return out
}

// Fill returns a series of n copies of v.
func Fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Max returns the largest value of xs, or NaN if xs is empty.
func Max(xs []float64) float64 {
	m := math.NaN()
	for _, x := range xs {
		if x > m || math.IsNaN(m) {
			m = x
		}
	}
	return m
}

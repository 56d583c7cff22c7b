// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"math"

	"github.com/gonum/matrix/mat64"
)

// leastSquares is a linear least squares fit of the function
//
//	f(x) = Β₀terms₀(x) + Β₁terms₁(x) + ...
//
// to a set of weighted points.
type leastSquares struct {
	terms  []func(xs, termOut []float64)
	params []float64

	// cov is (𝐗ᵀ𝐖𝐗)⁻¹, or nil if it is singular.
	cov *mat64.Dense

	// sigma2 is the residual variance estimate and df its degrees
	// of freedom.
	sigma2 float64
	df     int
}

// fitLeastSquares computes the parameters Β₀, Β₁, ... that minimize
//
//	∑ weights[i] × (ys[i] - f(xs[i]))²
//
// If weights is nil, every point has weight 1. The function f is
// specified by one vectorized Go function per linear term: it is
// passed a slice of x values and must fill termOut with the value of
// the term for each.
func fitLeastSquares(xs, ys, weights []float64, terms ...func(xs, termOut []float64)) (*leastSquares, error) {
	// The optimal parameters are found by solving for Β̂ in the
	// "normal equations":
	//
	//    (𝐗ᵀ𝐖𝐗)Β̂ = 𝐗ᵀ𝐖𝐲
	//
	// where 𝐖 is a diagonal weight matrix (or the identity matrix
	// for the unweighted case).

	if len(xs) != len(ys) {
		panic("len(xs) != len(ys)")
	}
	if weights != nil && len(xs) != len(weights) {
		panic("len(xs) != len(weights)")
	}

	// Construct 𝐗ᵀ. This is the more convenient representation
	// for efficiently calling the term functions.
	xTVals := make([]float64, len(terms)*len(xs))
	for i, term := range terms {
		term(xs, xTVals[i*len(xs):i*len(xs)+len(xs)])
	}
	XT := mat64.NewDense(len(terms), len(xs), xTVals)
	X := XT.T()

	// Construct 𝐗ᵀ𝐖.
	var XTW *mat64.Dense
	if weights == nil {
		XTW = XT
	} else {
		// Since 𝐖 is a diagonal matrix, we do this directly.
		XTW = mat64.DenseCopyOf(XT)
		WDiag := mat64.NewVector(len(weights), weights)
		for row := 0; row < len(terms); row++ {
			rowView := XTW.RowView(row)
			rowView.MulElemVec(rowView, WDiag)
		}
	}

	y := mat64.NewVector(len(ys), ys)

	lhs := mat64.NewDense(len(terms), len(terms), nil)
	lhs.Mul(XTW, X)

	rhs := mat64.NewVector(len(terms), nil)
	rhs.MulVec(XTW, y)

	BVals := make([]float64, len(terms))
	B := mat64.NewVector(len(terms), BVals)
	if err := B.SolveVec(lhs, rhs); err != nil {
		return nil, fmt.Errorf("least squares: %v", err)
	}

	fit := &leastSquares{terms: terms, params: BVals}

	var cov mat64.Dense
	if err := cov.Inverse(lhs); err == nil {
		fit.cov = &cov
	}

	// Residual variance.
	fitted := fit.eval(xs)
	var rss float64
	for i, f := range fitted {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		rss += w * (ys[i] - f) * (ys[i] - f)
	}
	fit.df = len(xs) - len(terms)
	if fit.df > 0 {
		fit.sigma2 = rss / float64(fit.df)
	}
	return fit, nil
}

// termsAt returns the term values at each of xs, as rows.
func (l *leastSquares) termsAt(xs []float64) *mat64.Dense {
	vals := make([]float64, len(l.terms)*len(xs))
	for i, term := range l.terms {
		term(xs, vals[i*len(xs):i*len(xs)+len(xs)])
	}
	return mat64.NewDense(len(l.terms), len(xs), vals)
}

// eval returns f(x) for each of xs.
func (l *leastSquares) eval(xs []float64) []float64 {
	tv := l.termsAt(xs)
	out := make([]float64, len(xs))
	for j := range xs {
		for i, b := range l.params {
			out[j] += b * tv.At(i, j)
		}
	}
	return out
}

// stdErr returns the standard error of f(x) for each of xs. It is NaN
// if the fit has no residual degrees of freedom.
func (l *leastSquares) stdErr(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if l.cov == nil || l.df <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	tv := l.termsAt(xs)
	var v mat64.Dense
	v.Mul(l.cov, tv)
	for j := range xs {
		var q float64
		for i := range l.terms {
			q += tv.At(i, j) * v.At(i, j)
		}
		out[j] = math.Sqrt(l.sigma2 * q)
	}
	return out
}

// polynomialTerms returns the terms of a polynomial of the given
// degree.
func polynomialTerms(degree int) []func(xs, termOut []float64) {
	terms := make([]func(xs, termOut []float64), degree+1)
	terms[0] = func(xs, termsOut []float64) {
		for i := range termsOut {
			termsOut[i] = 1
		}
	}
	if degree >= 1 {
		terms[1] = func(xs, termOut []float64) {
			copy(termOut, xs)
		}
	}
	for d := 2; d < len(terms); d++ {
		terms[d] = func(xs, termOut []float64) {
			for i, x := range xs {
				termOut[i] = math.Pow(x, float64(d))
			}
		}
	}
	return terms
}

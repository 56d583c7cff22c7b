// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestVec(t *testing.T) {
	p, q := Vec{1, 2}, Vec{4, -2}
	test.T(t, p.Add(q), Vec{5, 0})
	test.T(t, p.Sub(q), Vec{-3, 4})
	test.T(t, p.Mul(2), Vec{2, 4})
	test.T(t, p.Flip(), Vec{2, 1})
	test.Float(t, p.Dist(q), 5)
	test.Float(t, p.Chebyshev(q), 4)
	test.T(t, p.Interpolate(q, 0.5), Vec{2.5, 0})
	test.That(t, !Vec{math.NaN(), 0}.IsFinite())
	test.That(t, !Vec{0, math.Inf(1)}.IsFinite())
}

func TestRect(t *testing.T) {
	r := RectFromPoints(Vec{3, 4}, Vec{1, 1})
	test.T(t, r, Rect{1, 1, 2, 3})
	test.T(t, r.Center(), Vec{2, 2.5})
	test.Float(t, r.Area(), 6)
	test.That(t, r.Contains(Vec{1, 4}), "border is inside")
	test.That(t, !r.Contains(Vec{0.5, 2}))
	test.T(t, r.Inflate(1), Rect{0, 0, 4, 5})
	test.T(t, r.Union(Rect{}), r)
	test.T(t, r.Union(Rect{5, 0, 1, 1}), Rect{1, 0, 5, 4})
	test.T(t, r.Corners()[2], Vec{3, 4})
}

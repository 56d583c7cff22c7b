// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"math"
	"testing"

	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/series"
	"github.com/tdewolff/test"
)

var client = geom.Rect{X: 10, Y: 20, W: 100, H: 50}

func TestCartesian(t *testing.T) {
	c := NewCartesian(series.Span{Lo: 0, Hi: 10}, series.Span{Lo: -1, Hi: 1}, client)
	test.That(t, c.IsLinear())
	test.That(t, !c.Flipped())

	v, ok := c.ToClient(geom.Vec{0, -1})
	test.That(t, ok)
	test.T(t, v, geom.Vec{10, 70}, "lower left of the data is lower left of the client")
	v, _ = c.ToClient(geom.Vec{5, 1})
	test.T(t, v, geom.Vec{60, 20})

	_, ok = c.ToClient(geom.Vec{math.NaN(), 0})
	test.That(t, !ok, "NaN has no position")
}

func TestCartesianDegenerate(t *testing.T) {
	c := NewCartesian(series.Span{Lo: 3, Hi: 3}, series.Span{Lo: 0, Hi: 1}, client)
	v, ok := c.ToClient(geom.Vec{3, 0})
	test.That(t, ok)
	test.Float(t, v.X, 60, "a single value is centered")
}

func TestFlipped(t *testing.T) {
	c := NewFlipped(series.Span{Lo: 0, Hi: 10}, series.Span{Lo: 0, Hi: 100}, client)
	test.That(t, c.Flipped())
	v, _ := c.ToClient(geom.Vec{10, 50})
	test.T(t, v, geom.Vec{60, 20}, "data x is vertical")
}

func TestLog10(t *testing.T) {
	l, err := NewLog10(series.Span{Lo: 1, Hi: 1000}, series.Span{Lo: 0, Hi: 1}, client, true, false)
	test.Error(t, err)
	test.That(t, !l.IsLinear())

	v, ok := l.ToClient(geom.Vec{10, 0})
	test.That(t, ok)
	test.Float(t, v.X, 10+100.0/3)

	for _, x := range []float64{0, -1} {
		_, ok := l.ToClient(geom.Vec{x, 0})
		test.That(t, !ok, "log10 of", x)
	}

	_, err = NewLog10(series.Span{Lo: 0, Hi: 1}, series.Span{Lo: 0, Hi: 1}, client, true, false)
	test.That(t, err != nil, "non-positive span")
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomutil

import (
	"image/color"
	"math"
	"testing"

	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/coord"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/locator"
	"github.com/aclements/go-plotcore/series"
	"github.com/tdewolff/test"
)

// unitHelper maps data [0, 100]² onto a 100×100 client square with
// client y pointing down.
func unitHelper() *Helper {
	span := series.Span{Lo: 0, Hi: 100}
	return NewHelper(nil, coord.NewCartesian(span, span, geom.Rect{W: 100, H: 100}))
}

func xyPoint(i, g int, x, y float64) *aes.Point {
	return aes.NewPoint(i, g).Set(aes.X, x).Set(aes.Y, y)
}

func TestReduce(t *testing.T) {
	pts := []geom.Vec{{0, 0}, {0.5, 0.2}, {1, 0}, {1.2, 0.1}, {3, 3}, {3.1, 3}}
	test.T(t, ReduceIndices(pts, ReduceTolerance), []int{0, 2, 4, 5})

	once := Reduce(pts, ReduceTolerance)
	test.T(t, Reduce(once, ReduceTolerance), once, "idempotent")
	test.T(t, once[0], pts[0])
	test.T(t, once[len(once)-1], pts[len(pts)-1])

	short := []geom.Vec{{0, 0}, {0.1, 0}}
	test.T(t, Reduce(short, ReduceTolerance), short, "endpoints are never dropped")
}

func TestSplitRings(t *testing.T) {
	a, b, c, d, e, f := geom.Vec{0, 0}, geom.Vec{1, 0}, geom.Vec{1, 1}, geom.Vec{5, 5}, geom.Vec{6, 5}, geom.Vec{9, 9}
	rings := SplitRings([]geom.Vec{a, b, c, a, d, e, d, f})
	test.T(t, len(rings), 3)
	test.T(t, rings[0], []geom.Vec{a, b, c, a})
	test.T(t, rings[1], []geom.Vec{d, e, d})
	test.T(t, rings[2], []geom.Vec{f})

	joined := InsertPathSeparators(rings[:2])
	test.T(t, len(joined), 8)
	test.That(t, IsSeparator(joined[4]))
	test.T(t, len(SplitAtSeparators(joined)), 2)
}

func TestToClientRect(t *testing.T) {
	h := unitHelper()
	p := aes.NewPoint(0, 0)
	r, ok := h.ToClientRect(geom.Rect{X: 10, Y: 20, W: 30, H: 0}, p)
	test.That(t, ok)
	test.Float(t, r.W, 30)
	test.Float(t, r.H, MinRectSize, "flat bars keep a visible height")
	test.Float(t, r.Center().Y, 80)

	_, ok = h.ToClientRect(geom.Rect{X: math.NaN(), W: 1, H: 1}, p)
	test.That(t, !ok)
}

func TestCreateLines(t *testing.T) {
	h := unitHelper()
	points := []aes.DataPoint{
		xyPoint(0, 1, 0, 0),
		xyPoint(1, 0, 10, 10),
		xyPoint(2, 1, 50, 50),
		xyPoint(3, 0, 20, math.NaN()),
		xyPoint(4, 0, 30, 30),
	}
	lines := h.CreateLines(points, AtXY)
	test.T(t, len(lines), 2)
	test.T(t, lines[0].Points, []geom.Vec{{10, 90}, {30, 70}}, "group 0 first, without its NaN point")
	test.T(t, lines[0].Rows, []int{1, 4})
	test.T(t, lines[1].Rows, []int{0, 2})
	test.That(t, !lines[0].Closed)
	test.T(t, lines[0].Stroke, aes.DefaultColor)
}

func TestCreatePolygons(t *testing.T) {
	h := unitHelper()
	var points []aes.DataPoint
	for i, v := range []geom.Vec{{0, 0}, {10, 0}, {10, 10}, {0, 0}, {50, 50}, {60, 50}, {60, 60}, {50, 50}} {
		points = append(points, xyPoint(i, 0, v.X, v.Y))
	}
	polys := h.CreatePolygons(points, AtXY)
	test.T(t, len(polys), 1)
	p := polys[0]
	test.That(t, p.Closed)
	test.T(t, len(p.Points), 9)
	test.That(t, IsSeparator(p.Points[4]))
	test.T(t, p.Rows[4], -1)
	test.T(t, p.Fill, aes.DefaultFill)
}

func TestCreateSteps(t *testing.T) {
	d := PathData{[]PathPoint{
		{aes.NewPoint(0, 0), geom.Vec{0, 0}},
		{aes.NewPoint(1, 0), geom.Vec{10, 5}},
	}}
	hv := CreateSteps([]PathData{d}, true)
	test.T(t, hv[0].Points, []geom.Vec{{0, 0}, {10, 0}, {10, 5}})
	vh := CreateSteps([]PathData{d}, false)
	test.T(t, vh[0].Points, []geom.Vec{{0, 0}, {0, 5}, {10, 5}})
}

func TestCreateBands(t *testing.T) {
	h := unitHelper()
	var points []aes.DataPoint
	for i, x := range []float64{0, 10, 20} {
		points = append(points, aes.NewPoint(i, 0).Set(aes.X, x).Set(aes.YMin, 0).Set(aes.YMax, 50))
	}
	bands := h.CreateBands(points, AtXYMax, AtXYMin, false)
	test.T(t, len(bands), 1)
	test.T(t, bands[0].Points, []geom.Vec{{0, 50}, {10, 50}, {20, 50}, {20, 100}, {10, 100}, {0, 100}})
	test.T(t, bands[0].Rows, []int{0, 1, 2, 2, 1, 0})

	simple := h.CreateBands(points, AtXYMax, AtXYMin, true)
	test.T(t, simple[0].Points, []geom.Vec{{0, 50}, {20, 50}, {20, 100}, {0, 100}}, "collinear border points are dropped")
}

func TestCreateVariadicLines(t *testing.T) {
	h := unitHelper()
	red := color.RGBA{0xff, 0, 0, 0xff}
	points := []aes.DataPoint{
		xyPoint(0, 0, 0, 0),
		xyPoint(1, 0, 10, 0),
		xyPoint(2, 0, 20, 0).SetColor(aes.Color, red),
		xyPoint(3, 0, 30, 0).SetColor(aes.Color, red),
	}
	lines := h.CreateVariadicLines(points, AtXY)
	test.T(t, len(lines), 2)
	test.T(t, lines[0].Points, []geom.Vec{{0, 100}, {10, 100}, {15, 100}})
	test.T(t, lines[1].Points, []geom.Vec{{15, 100}, {20, 100}, {30, 100}})
	test.T(t, lines[1].Stroke, red)
}

func TestTargetCollector(t *testing.T) {
	l := locator.New(locator.Spec{Space: locator.SpaceXY, Strategy: locator.Hover}, true)
	c := NewTargetCollector(l)

	clear := aes.NewPoint(0, 0).SetColor(aes.Fill, aes.Transparent).SetColor(aes.Color, aes.Transparent)
	c.AddRect(geom.Rect{X: 0, Y: 0, W: 10, H: 10}, clear)
	test.T(t, l.Len(), 0, "transparent rect is not indexed")
	_, ok := l.Search(geom.Vec{5, 5})
	test.That(t, !ok)

	c.AddPoint(geom.Vec{50, 50}, 0, aes.NewPoint(1, 0))
	test.T(t, l.Len(), 0, "zero radius point is not indexed")

	c.AddRect(geom.Rect{X: 0, Y: 0, W: 10, H: 10}, aes.NewPoint(2, 0))
	r, ok := l.Search(geom.Vec{5, 5})
	test.That(t, ok)
	test.T(t, r.Hits[0].Row, 2)
	test.T(t, r.Hits[0].Colors, []color.RGBA{aes.DefaultFill, aes.DefaultColor})
}

func TestTargetCollectorPath(t *testing.T) {
	h := unitHelper()
	l := locator.New(locator.Spec{Space: locator.SpaceX, Strategy: locator.Nearest}, false)
	c := NewTargetCollector(l)
	points := []aes.DataPoint{
		xyPoint(10, 0, 0, 0),
		xyPoint(11, 0, 0.2, 0),
		xyPoint(12, 0, 40, 0),
	}
	for _, lp := range h.CreateLines(points, AtXY) {
		c.AddPath(lp)
	}
	r, ok := l.Search(geom.Vec{35, 0})
	test.That(t, ok)
	test.T(t, r.Hits[0].Row, 12, "simplified positions resolve to data rows")
}

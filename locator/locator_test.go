// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locator

import (
	"testing"

	"github.com/aclements/go-plotcore/geom"
	"github.com/tdewolff/test"
)

func pointTargets(l *Locator, centers ...geom.Vec) {
	for i, c := range centers {
		l.Add(Target{Kind: KindPoint, Center: c, Radius: 1, LocalToGlobal: IndexMapper(i)})
	}
}

func rows(r *LookupResult) []int {
	var out []int
	for _, h := range r.Hits {
		out = append(out, h.Row)
	}
	return out
}

func TestPointHover(t *testing.T) {
	l := New(Spec{SpaceXY, Hover}, false)
	pointTargets(l, geom.Vec{10, 10}, geom.Vec{50, 50})

	r, ok := l.Search(geom.Vec{14, 12})
	test.That(t, ok, "within radius plus epsilon")
	test.T(t, rows(r), []int{0})
	test.Float(t, r.Distance, 0)

	_, ok = l.Search(geom.Vec{30, 30})
	test.That(t, !ok, "between points")
}

func TestPointNearest(t *testing.T) {
	l := New(Spec{SpaceXY, Nearest}, false)
	pointTargets(l, geom.Vec{10, 10}, geom.Vec{50, 50}, geom.Vec{40, 40})
	r, ok := l.Search(geom.Vec{38, 37})
	test.That(t, ok)
	test.T(t, rows(r), []int{2})
	test.Float(t, r.Distance, geom.Vec{38, 37}.Dist(geom.Vec{40, 40}))
}

func TestNearestX(t *testing.T) {
	l := New(Spec{SpaceX, Nearest}, false)
	pointTargets(l, geom.Vec{10, 0}, geom.Vec{20, 5}, geom.Vec{20, 90}, geom.Vec{30, 0})
	r, ok := l.Search(geom.Vec{19, 50})
	test.That(t, ok)
	test.T(t, rows(r), []int{1, 2}, "every point at the nearest x")
}

func TestSpaceNone(t *testing.T) {
	l := New(Spec{SpaceNone, Hover}, false)
	pointTargets(l, geom.Vec{10, 10})
	_, ok := l.Search(geom.Vec{10, 10})
	test.That(t, !ok)
}

func TestRect(t *testing.T) {
	l := New(Spec{SpaceXY, Hover}, true)
	l.Add(Target{Kind: KindRect, Rect: geom.Rect{X: 0, Y: 0, W: 10, H: 10}, LocalToGlobal: IndexMapper(3)})
	l.Add(Target{Kind: KindRect, Rect: geom.Rect{X: 5, Y: 5, W: 10, H: 10}, LocalToGlobal: IndexMapper(4)})

	r, ok := l.Search(geom.Vec{7, 7})
	test.That(t, ok)
	test.T(t, rows(r), []int{4}, "overlapping rects give one tooltip")
	_, ok = l.Search(geom.Vec{20, 20})
	test.That(t, !ok)

	lx := New(Spec{SpaceX, Nearest}, true)
	lx.Add(Target{Kind: KindRect, Rect: geom.Rect{X: 0, Y: 0, W: 10, H: 10}, LocalToGlobal: IndexMapper(0)})
	_, ok = lx.Search(geom.Vec{11, 100})
	test.That(t, ok, "within the x epsilon")
	_, ok = lx.Search(geom.Vec{13, 100})
	test.That(t, !ok, "beyond the x epsilon")
}

func TestPath(t *testing.T) {
	l := New(Spec{SpaceX, Hover}, false)
	pts := []geom.Vec{{0, 0}, {10, 5}, {20, 0}, {30, 5}}
	l.Add(Target{Kind: KindPath, Points: pts, LocalToGlobal: func(i int) int { return 100 + i }})

	r, ok := l.Search(geom.Vec{18, 40})
	test.That(t, ok)
	test.T(t, rows(r), []int{102})
	test.T(t, r.Hits[0].Coord, geom.Vec{20, 0})

	_, ok = l.Search(geom.Vec{31, 0})
	test.That(t, !ok, "past the end of the path")
}

func TestPolygon(t *testing.T) {
	outer := []geom.Vec{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	hole := []geom.Vec{{4, 4}, {6, 4}, {6, 6}, {4, 6}, {4, 4}}
	l := New(Spec{SpaceXY, Hover}, true)
	l.Add(Target{Kind: KindPolygon, Rings: [][]geom.Vec{outer, hole}, LocalToGlobal: IndexMapper(7)})

	r, ok := l.Search(geom.Vec{2, 2})
	test.That(t, ok)
	test.T(t, rows(r), []int{7})
	_, ok = l.Search(geom.Vec{5, 5})
	test.That(t, !ok, "inside the hole")
}

func TestParse(t *testing.T) {
	s, err := ParseSpace("xy")
	test.Error(t, err)
	test.T(t, s, SpaceXY)
	st, err := ParseStrategy("nearest")
	test.Error(t, err)
	test.T(t, st, Nearest)
	_, err = ParseStrategy("closest")
	test.That(t, err != nil)
}

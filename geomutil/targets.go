// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomutil

import (
	"image/color"
	"math"

	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/locator"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// TargetCollector registers drawn shapes with a locator. Shapes that
// cannot be seen are not registered: fully transparent shapes, points
// of zero radius and shapes of zero area.
type TargetCollector struct {
	L *locator.Locator
}

func NewTargetCollector(l *locator.Locator) *TargetCollector {
	return &TargetCollector{l}
}

// markerColors returns the tooltip marker colors of p. Filled shapes
// show their fill and, if it differs, their stroke.
func markerColors(p aes.DataPoint, filled bool) []color.RGBA {
	var out []color.RGBA
	if filled {
		if f := aes.FillOf(p); !aes.IsTransparent(f) {
			out = append(out, f)
		}
	}
	if s := aes.StrokeOf(p); !aes.IsTransparent(s) && (len(out) == 0 || out[0] != s) {
		out = append(out, s)
	}
	return out
}

func invisible(p aes.DataPoint, filled bool) bool {
	return len(markerColors(p, filled)) == 0
}

// AddPoint registers a point of the given client radius.
func (c *TargetCollector) AddPoint(center geom.Vec, radius float64, p aes.DataPoint) {
	if !(radius > 0) || invisible(p, true) {
		return
	}
	c.L.Add(locator.Target{
		Kind:          locator.KindPoint,
		Center:        center,
		Radius:        radius,
		LocalToGlobal: locator.IndexMapper(p.Index()),
		Colors:        markerColors(p, true),
	})
}

// AddRect registers a client rectangle.
func (c *TargetCollector) AddRect(r geom.Rect, p aes.DataPoint) {
	if !(r.Area() > 0) || invisible(p, true) {
		return
	}
	c.L.Add(locator.Target{
		Kind:          locator.KindRect,
		Rect:          r,
		LocalToGlobal: locator.IndexMapper(p.Index()),
		Colors:        markerColors(p, true),
	})
}

// AddPath registers an open path. Positions along the path resolve to
// the rows of its points.
func (c *TargetCollector) AddPath(lp LinePath) {
	if len(lp.Points) == 0 || aes.IsTransparent(lp.Stroke) {
		return
	}
	rows := lp.Rows
	c.L.Add(locator.Target{
		Kind:          locator.KindPath,
		Points:        lp.Points,
		LocalToGlobal: func(i int) int { return rows[i] },
		Colors:        markerColors(lp.Aes, false),
	})
}

// AddPolygon registers a closed path. The whole polygon resolves to
// the row of its first point.
func (c *TargetCollector) AddPolygon(lp LinePath) {
	if len(lp.Points) == 0 || (aes.IsTransparent(lp.Fill) && aes.IsTransparent(lp.Stroke)) {
		return
	}
	rings := SplitAtSeparators(lp.Points)
	if area(rings) == 0 {
		return
	}
	c.L.Add(locator.Target{
		Kind:          locator.KindPolygon,
		Rings:         rings,
		LocalToGlobal: locator.IndexMapper(lp.Rows[0]),
		Colors:        markerColors(lp.Aes, true),
	})
}

// area returns the total unsigned area of rings.
func area(rings [][]geom.Vec) float64 {
	var sum float64
	for _, r := range rings {
		ring := make(orb.Ring, len(r))
		for i, v := range r {
			ring[i] = orb.Point{v.X, v.Y}
		}
		sum += math.Abs(planar.Area(ring))
	}
	return sum
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomutil

import (
	"image/color"

	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/geom"
)

// A LinePath is a decorated client-space line or polygon.
type LinePath struct {
	// Points of the path. Polygon rings are joined with
	// Separator.
	Points []geom.Vec
	// Rows gives the data row of each point, or -1 for
	// separators.
	Rows []int
	// Closed is set for polygons.
	Closed bool

	Stroke, Fill color.RGBA
	Width        float64

	// Aes is the point the decoration was taken from.
	Aes aes.DataPoint
}

func newLinePath(pts []geom.Vec, rows []int, p aes.DataPoint, filled bool) LinePath {
	lp := LinePath{Points: pts, Rows: rows, Closed: filled, Aes: p}
	lp.Stroke = aes.StrokeOf(p)
	if filled {
		lp.Fill = aes.FillOf(p)
	}
	lp.Width = p.Numeric(aes.Size)
	return lp
}

// line builds a reduced open path from d.
func line(d PathData) LinePath {
	pts, rows := d.Coords(), d.Rows()
	keep := ReduceIndices(pts, ReduceTolerance)
	return newLinePath(pick(pts, keep), pick(rows, keep), d.Aes(), false)
}

// polygon builds a polygon from d, splitting it into rings and
// reducing each ring separately.
func polygon(d PathData) LinePath {
	pts, rows := d.Coords(), d.Rows()
	var outPts []geom.Vec
	var outRows []int
	for i, b := range ringBounds(pts) {
		if i > 0 {
			outPts = append(outPts, Separator)
			outRows = append(outRows, -1)
		}
		ring, rr := pts[b[0]:b[1]], rows[b[0]:b[1]]
		keep := ReduceIndices(ring, ReduceTolerance)
		outPts = append(outPts, pick(ring, keep)...)
		outRows = append(outRows, pick(rr, keep)...)
	}
	return newLinePath(outPts, outRows, d.Aes(), true)
}

// CreateLines draws one line per group of points.
func (h *Helper) CreateLines(points []aes.DataPoint, loc Location) []LinePath {
	var out []LinePath
	for _, d := range h.PathsByGroup(points, loc) {
		out = append(out, line(d))
	}
	return out
}

// CreatePolygons draws one polygon per group of points. A group may
// hold several rings, each closed by repeating its first point.
func (h *Helper) CreatePolygons(points []aes.DataPoint, loc Location) []LinePath {
	var out []LinePath
	for _, d := range h.PathsByGroup(points, loc) {
		out = append(out, polygon(d))
	}
	return out
}

// CreateSteps draws each path as a staircase. If hv is set, each step
// moves horizontally then vertically; otherwise vertically then
// horizontally.
func CreateSteps(paths []PathData, hv bool) []LinePath {
	var out []LinePath
	for _, d := range paths {
		if len(d.Points) == 0 {
			continue
		}
		var pts []geom.Vec
		var rows []int
		for i, p := range d.Points {
			if i > 0 {
				prev := d.Points[i-1].Coord
				corner := geom.Vec{prev.X, p.Coord.Y}
				if hv {
					corner = geom.Vec{p.Coord.X, prev.Y}
				}
				pts = append(pts, corner)
				rows = append(rows, d.Points[i-1].P.Index())
			}
			pts = append(pts, p.Coord)
			rows = append(rows, p.P.Index())
		}
		out = append(out, newLinePath(pts, rows, d.Aes(), false))
	}
	return out
}

// CreateBands draws one filled band per group between the upper and
// lower locations of its points. The polygon runs along the upper
// border, then back along the lower border. If simplify is set, both
// borders are simplified with BandSimplifyLimit.
func (h *Helper) CreateBands(points []aes.DataPoint, upper, lower Location, simplify bool) []LinePath {
	var out []LinePath
	for _, g := range groupPoints(points) {
		up := project(g, h.clientLocation(upper))
		rev := make([]aes.DataPoint, len(g))
		for i, p := range g {
			rev[len(g)-1-i] = p
		}
		down := project(rev, h.clientLocation(lower))
		var pts []geom.Vec
		var rows []int
		for _, border := range [][]PathPoint{up, down} {
			d := PathData{border}
			bp, br := d.Coords(), d.Rows()
			if simplify {
				keep := simplifyIndices(bp, BandSimplifyLimit)
				bp, br = pick(bp, keep), pick(br, keep)
			}
			pts = append(pts, bp...)
			rows = append(rows, br...)
		}
		if len(pts) == 0 {
			continue
		}
		// The band is filled but its side edges are not stroked.
		lp := newLinePath(pts, rows, g[0], true)
		lp.Stroke = aes.Transparent
		out = append(out, lp)
	}
	return out
}

// CreateVariadicLines draws one line per group, split into pieces
// wherever size or color changes along the line. Adjacent pieces meet
// at the midpoint between them.
func (h *Helper) CreateVariadicLines(points []aes.DataPoint, loc Location) []LinePath {
	var out []LinePath
	for _, d := range h.PathsByGroup(points, loc) {
		for _, piece := range JoinVariadic(SplitVariadic(d)) {
			out = append(out, line(piece))
		}
	}
	return out
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomutil

import (
	"image/color"
	"sort"

	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/geom"
)

// A PathPoint is a data point and its resolved position.
type PathPoint struct {
	P     aes.DataPoint
	Coord geom.Vec
}

// PathData is one drawable sub-path. Its first point supplies the
// decoration (color, fill, size) for the whole path.
type PathData struct {
	Points []PathPoint
}

// Aes returns the decoration point of the path.
func (d PathData) Aes() aes.DataPoint {
	return d.Points[0].P
}

// Coords returns the positions of the path's points.
func (d PathData) Coords() []geom.Vec {
	out := make([]geom.Vec, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.Coord
	}
	return out
}

// Rows returns the data rows of the path's points.
func (d PathData) Rows() []int {
	out := make([]int, len(d.Points))
	for i, p := range d.Points {
		out[i] = p.P.Index()
	}
	return out
}

// groupPoints splits points by group, preserving order within each
// group. Groups are returned in increasing order.
func groupPoints(points []aes.DataPoint) [][]aes.DataPoint {
	byGroup := map[int][]aes.DataPoint{}
	var keys []int
	for _, p := range points {
		g := p.Group()
		if _, ok := byGroup[g]; !ok {
			keys = append(keys, g)
		}
		byGroup[g] = append(byGroup[g], p)
	}
	sort.Ints(keys)
	out := make([][]aes.DataPoint, len(keys))
	for i, k := range keys {
		out[i] = byGroup[k]
	}
	return out
}

// project locates each of points with loc, skipping points without
// a location.
func project(points []aes.DataPoint, loc Location) []PathPoint {
	var out []PathPoint
	for _, p := range points {
		if v, ok := loc(p); ok {
			out = append(out, PathPoint{p, v})
		}
	}
	return out
}

// PathsByGroup returns one client-space path per group of points.
// Groups with no located points are omitted.
func (h *Helper) PathsByGroup(points []aes.DataPoint, loc Location) []PathData {
	cl := h.clientLocation(loc)
	var out []PathData
	for _, g := range groupPoints(points) {
		if pts := project(g, cl); len(pts) > 0 {
			out = append(out, PathData{pts})
		}
	}
	return out
}

type variant struct {
	size  float64
	color color.RGBA
}

func variantOf(p aes.DataPoint) variant {
	return variant{p.Numeric(aes.Size), p.Color(aes.Color)}
}

// SplitVariadic splits d wherever the size or color of consecutive
// points changes.
func SplitVariadic(d PathData) []PathData {
	var out []PathData
	start := 0
	for i := 1; i <= len(d.Points); i++ {
		if i == len(d.Points) || variantOf(d.Points[i].P) != variantOf(d.Points[start].P) {
			out = append(out, PathData{d.Points[start:i]})
			start = i
		}
	}
	return out
}

// JoinVariadic connects adjacent pieces of a split path by extending
// each to the midpoint between it and its neighbors. The added points
// take the aesthetics of the piece's own end point.
func JoinVariadic(pieces []PathData) []PathData {
	if len(pieces) <= 1 {
		return pieces
	}
	joints := make([]geom.Vec, len(pieces)-1)
	for i := range joints {
		a := pieces[i].Points[len(pieces[i].Points)-1].Coord
		b := pieces[i+1].Points[0].Coord
		joints[i] = a.Interpolate(b, 0.5)
	}
	out := make([]PathData, len(pieces))
	for i, piece := range pieces {
		var pts []PathPoint
		if i > 0 {
			pts = append(pts, PathPoint{piece.Points[0].P, joints[i-1]})
		}
		pts = append(pts, piece.Points...)
		if i < len(joints) {
			pts = append(pts, PathPoint{piece.Points[len(piece.Points)-1].P, joints[i]})
		}
		out[i] = PathData{pts}
	}
	return out
}

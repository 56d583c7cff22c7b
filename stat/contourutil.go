// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"fmt"
	"math"

	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/series"
)

// GridShape returns the number of columns and rows of a regular grid
// given its X values in row-major order. The row length is the number
// of values before the first X repeats.
func GridShape(xs []float64) (cols, rows int, err error) {
	for i, x := range xs {
		if i > 0 && x == xs[0] {
			break
		}
		cols++
	}
	if cols <= 1 {
		return 0, 0, fmt.Errorf("%w: must be at least 2 columns wide (was %d)", ErrGridShape, cols)
	}
	rows = len(xs) / cols
	if rows <= 1 {
		return 0, 0, fmt.Errorf("%w: must be at least 2 rows tall (was %d)", ErrGridShape, rows)
	}
	return cols, rows, nil
}

// ContourLevels returns the iso-levels for a field spanning z: one
// level in the middle of each bin of z. It returns nil if z cannot be
// divided, for example if it has zero length.
func ContourLevels(z series.Span, bins BinOptions) []float64 {
	if series.IsBeyondPrecision(z) {
		return nil
	}
	count, width := binCountAndWidth(z.Length(), bins)
	levels := make([]float64, count)
	for i := range levels {
		levels[i] = z.Lo + float64(i)*width + width/2
	}
	return levels
}

// A gridVertex is a corner of a grid cell or, if center is set, the
// middle of the cell whose lower left corner is (x, y).
type gridVertex struct {
	x, y   int
	center bool
}

func (v gridVertex) pos() geom.Vec {
	if v.center {
		return geom.Vec{float64(v.x) + 0.5, float64(v.y) + 0.5}
	}
	return geom.Vec{float64(v.x), float64(v.y)}
}

type fieldPoint struct {
	gridVertex
	z float64
}

func (p fieldPoint) above(level float64) int {
	if p.z >= level {
		return 1
	}
	return 0
}

// A gridEdge is a triangle side crossed by an iso-line. Edges are
// undirected: key is the same for (a, b) and (b, a).
type gridEdge struct {
	a, b fieldPoint
}

type edgeKey struct {
	a, b gridVertex
}

func (e gridEdge) key() edgeKey {
	a, b := e.a.gridVertex, e.b.gridVertex
	if b.y < a.y || (b.y == a.y && (b.x < a.x || (b.x == a.x && !b.center && a.center))) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// intersect returns the point on e, in grid units, where the field
// crosses level.
func (e gridEdge) intersect(level float64) geom.Vec {
	z0, z1 := e.a.z, e.b.z
	if level == z0 {
		return e.a.pos()
	}
	if level == z1 {
		return e.b.pos()
	}
	ratio := (z1 - z0) / (level - z0)
	p0, p1 := e.a.pos(), e.b.pos()
	return geom.Vec{p0.X + (p1.X-p0.X)/ratio, p0.Y + (p1.Y-p0.Y)/ratio}
}

type segment struct {
	start, end gridEdge
}

// Corner offsets of a cell, counterclockwise from the lower left,
// then the center.
var (
	cellX = [5]int{0, 1, 1, 0, 0}
	cellY = [5]int{0, 0, 1, 1, 0}
)

// contourSegments traces the iso-line segments of level through the
// cols×rows field z. Each cell is split into four triangles around
// its center value.
func contourSegments(cols, rows int, z []float64, level float64) []segment {
	var segs []segment
	for row := 0; row < rows-1; row++ {
		for col := 0; col < cols-1; col++ {
			var v [5]float64
			v[0] = z[row*cols+col]
			v[1] = z[row*cols+col+1]
			v[2] = z[(row+1)*cols+col+1]
			v[3] = z[(row+1)*cols+col]
			if !finiteCell(v[:4]) {
				continue
			}
			min, max := v[0], v[0]
			for _, x := range v[1:4] {
				if x < min {
					min = x
				}
				if x > max {
					max = x
				}
			}
			if min == max {
				continue
			}
			v[4] = (v[0] + v[1] + v[2] + v[3] - min - max) / 2
			if !(level > min && level <= max) {
				continue
			}

			var pts [5]fieldPoint
			for i := range pts {
				pts[i] = fieldPoint{gridVertex{col + cellX[i], row + cellY[i], i == 4}, v[i]}
			}
			for i := 0; i < 4; i++ {
				if s, ok := triangleSegment(pts[i], pts[(i+1)%4], pts[4], level); ok {
					segs = append(segs, s)
				}
			}
		}
	}
	return segs
}

// finiteCell reports whether every corner of a cell has a value.
func finiteCell(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// triangleSegment returns the iso-line segment of level through the
// counterclockwise triangle (p0, p1, p2), oriented so the higher side
// is on its right.
func triangleSegment(p0, p1, p2 fieldPoint, level float64) (segment, bool) {
	switch p0.above(level)*100 + p1.above(level)*10 + p2.above(level) {
	case 100:
		return segment{gridEdge{p2, p0}, gridEdge{p0, p1}}, true
	case 10:
		return segment{gridEdge{p0, p1}, gridEdge{p1, p2}}, true
	case 1:
		return segment{gridEdge{p1, p2}, gridEdge{p2, p0}}, true
	case 110:
		return segment{gridEdge{p0, p2}, gridEdge{p2, p1}}, true
	case 101:
		return segment{gridEdge{p2, p1}, gridEdge{p1, p0}}, true
	case 11:
		return segment{gridEdge{p1, p0}, gridEdge{p0, p2}}, true
	}
	return segment{}, false
}

type edgePath struct {
	edges []gridEdge
	dead  bool
}

func (p *edgePath) first() edgeKey { return p.edges[0].key() }
func (p *edgePath) last() edgeKey  { return p.edges[len(p.edges)-1].key() }

// joinSegments chains segments that share an edge into paths. Closed
// paths come first, in the order they closed, followed by open paths
// in the order they were started.
func joinSegments(segs []segment) [][]gridEdge {
	var closed [][]gridEdge
	var all []*edgePath
	byEnd := map[edgeKey]*edgePath{}
	unlink := func(p *edgePath) {
		if p != nil {
			delete(byEnd, p.first())
			delete(byEnd, p.last())
		}
	}
	for _, s := range segs {
		k0, k1 := s.start.key(), s.end.key()
		path0, path1 := byEnd[k0], byEnd[k1]
		if path0 == nil && path1 == nil {
			p := &edgePath{edges: []gridEdge{s.start, s.end}}
			all = append(all, p)
			byEnd[k0], byEnd[k1] = p, p
			continue
		}
		unlink(path0)
		unlink(path1)
		var long *edgePath
		switch {
		case path0 == path1:
			path0.edges = append(path0.edges, s.end)
			path0.dead = true
			closed = append(closed, path0.edges)
			continue
		case path0 != nil && path1 != nil:
			long = path0
			long.edges = append(long.edges, path1.edges...)
			path1.dead = true
		case path0 == nil:
			long = path1
			long.edges = append([]gridEdge{s.start}, long.edges...)
		default:
			long = path0
			long.edges = append(long.edges, s.end)
		}
		byEnd[long.first()] = long
		byEnd[long.last()] = long
	}
	for _, p := range all {
		if !p.dead {
			closed = append(closed, p.edges)
		}
	}
	return closed
}

// convertPaths maps edge paths to data coordinates. Consecutive
// duplicate points are dropped and paths of fewer than two points are
// discarded.
func convertPaths(paths [][]gridEdge, step, origin geom.Vec, level float64) [][]geom.Vec {
	var out [][]geom.Vec
	for _, path := range paths {
		var pts []geom.Vec
		for i, e := range path {
			g := e.intersect(level)
			p := geom.Vec{step.X * g.X, step.Y * g.Y}.Add(origin)
			if i > 0 && p == pts[len(pts)-1] {
				continue
			}
			pts = append(pts, p)
		}
		// Close rings that rounding left open.
		if path[0].key() == path[len(path)-1].key() && pts[0] != pts[len(pts)-1] {
			pts[len(pts)-1] = pts[0]
		}
		if len(pts) > 1 {
			out = append(out, pts)
		}
	}
	return out
}

type vecPath struct {
	pts  []geom.Vec
	dead bool
}

func (p *vecPath) first() geom.Vec { return p.pts[0] }
func (p *vecPath) last() geom.Vec  { return p.pts[len(p.pts)-1] }

// confirmPaths joins paths that share end points and splits paths
// that pass through their own start point.
func confirmPaths(paths [][]geom.Vec) [][]geom.Vec {
	joined, _ := joinVecPaths(paths)
	var out [][]geom.Vec
	for _, p := range joined {
		out = append(out, splitAtStart(p)...)
	}
	return out
}

// joinVecPaths joins paths on shared end points. Closed paths come
// first, then any paths that remain open, which are also returned
// separately.
func joinVecPaths(paths [][]geom.Vec) (all [][]geom.Vec, open [][]geom.Vec) {
	var created []*vecPath
	byEnd := map[geom.Vec]*vecPath{}
	unlink := func(p *vecPath) {
		if p != nil {
			delete(byEnd, p.first())
			delete(byEnd, p.last())
		}
	}
	for _, path := range paths {
		p0, p1 := path[0], path[len(path)-1]
		if p0 == p1 {
			all = append(all, path)
			continue
		}
		path0, path1 := byEnd[p0], byEnd[p1]
		if path0 == nil && path1 == nil {
			p := &vecPath{pts: path}
			created = append(created, p)
			byEnd[p0], byEnd[p1] = p, p
			continue
		}
		unlink(path0)
		unlink(path1)
		long := &vecPath{}
		switch {
		case path0 == path1:
			ring := append(append([]geom.Vec(nil), path0.pts...), path[1:]...)
			path0.dead = true
			all = append(all, ring)
			continue
		case path0 != nil && path1 != nil:
			long.pts = append(append(append([]geom.Vec(nil), path0.pts...), path[1:len(path)-1]...), path1.pts...)
			path0.dead, path1.dead = true, true
		case path0 == nil:
			long.pts = append(append([]geom.Vec(nil), path[:len(path)-1]...), path1.pts...)
			path1.dead = true
		default:
			long.pts = append(append([]geom.Vec(nil), path0.pts...), path[1:]...)
			path0.dead = true
		}
		created = append(created, long)
		byEnd[long.first()] = long
		byEnd[long.last()] = long
	}
	for _, p := range created {
		if !p.dead {
			all = append(all, p.pts)
			open = append(open, p.pts)
		}
	}
	return
}

// splitAtStart splits path wherever it returns to its current start
// point, so degenerate rings become separate rings.
func splitAtStart(path []geom.Vec) [][]geom.Vec {
	var out [][]geom.Vec
	start := 0
	for next := 1; next < len(path)-1; next++ {
		if path[start] == path[next] {
			out = append(out, path[start:next+1])
			start = next
		}
	}
	if start == 0 {
		return [][]geom.Vec{path}
	}
	return append(out, path[start:])
}

// Contours traces the iso-lines of a cols×rows field z, row-major,
// spanning x and y. It returns the paths of each level, in data
// coordinates.
func Contours(x, y series.Span, cols, rows int, z []float64, levels []float64) [][][]geom.Vec {
	step := geom.Vec{x.Length() / float64(cols-1), y.Length() / float64(rows-1)}
	origin := geom.Vec{x.Lo, y.Lo}
	out := make([][][]geom.Vec, len(levels))
	for i, level := range levels {
		paths := joinSegments(contourSegments(cols, rows, z, level))
		out[i] = confirmPaths(convertPaths(paths, step, origin, level))
	}
	return out
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geomutil

import (
	"math"

	"github.com/aclements/go-plotcore/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// ReduceTolerance is the distance in client units below which
// consecutive points of a path are merged.
const ReduceTolerance = 0.999

// BandSimplifyLimit is the Douglas-Peucker threshold in client units
// for band borders.
const BandSimplifyLimit = 0.25

// Reduce drops the points of pts that are within tol of the last kept
// point, measured as the largest per-axis difference. The first and
// last points are always kept.
func Reduce(pts []geom.Vec, tol float64) []geom.Vec {
	return pick(pts, ReduceIndices(pts, tol))
}

// ReduceIndices is like Reduce, but returns the indexes of the kept
// points.
func ReduceIndices(pts []geom.Vec, tol float64) []int {
	n := len(pts)
	if n <= 2 {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	keep := []int{0}
	last := pts[0]
	for i := 1; i < n-1; i++ {
		if pts[i].Chebyshev(last) >= tol {
			keep = append(keep, i)
			last = pts[i]
		}
	}
	return append(keep, n-1)
}

func pick[T any](xs []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = xs[j]
	}
	return out
}

// SplitRings splits pts into rings. A ring ends at the first point
// equal to its start. Trailing points that never close are returned
// as a final, open ring.
func SplitRings(pts []geom.Vec) [][]geom.Vec {
	var out [][]geom.Vec
	for _, r := range ringBounds(pts) {
		out = append(out, pts[r[0]:r[1]])
	}
	return out
}

// ringBounds returns the [lo, hi) index ranges of the rings of pts.
func ringBounds(pts []geom.Vec) [][2]int {
	var out [][2]int
	start := 0
	for i := 1; i < len(pts); i++ {
		if pts[i] == pts[start] {
			out = append(out, [2]int{start, i + 1})
			start = i + 1
			i++
		}
	}
	if start < len(pts) {
		out = append(out, [2]int{start, len(pts)})
	}
	return out
}

// Separator marks the end of a sub-path in a point list.
var Separator = geom.Vec{math.NaN(), math.NaN()}

// IsSeparator returns true if v is a sub-path separator.
func IsSeparator(v geom.Vec) bool {
	return math.IsNaN(v.X) && math.IsNaN(v.Y)
}

// InsertPathSeparators joins rings into one point list with a
// Separator between consecutive rings.
func InsertPathSeparators(rings [][]geom.Vec) []geom.Vec {
	var out []geom.Vec
	for i, r := range rings {
		if i > 0 {
			out = append(out, Separator)
		}
		out = append(out, r...)
	}
	return out
}

// SplitAtSeparators is the inverse of InsertPathSeparators.
func SplitAtSeparators(pts []geom.Vec) [][]geom.Vec {
	var out [][]geom.Vec
	start := 0
	for i, v := range pts {
		if IsSeparator(v) {
			out = append(out, pts[start:i])
			start = i + 1
		}
	}
	if start < len(pts) {
		out = append(out, pts[start:])
	}
	return out
}

// simplifyIndices returns the indexes of pts kept by Douglas-Peucker
// simplification with the given threshold.
func simplifyIndices(pts []geom.Vec, threshold float64) []int {
	if len(pts) <= 2 {
		return ReduceIndices(pts, 0)
	}
	ls := make(orb.LineString, len(pts))
	byPoint := make(map[orb.Point][]int, len(pts))
	for i, v := range pts {
		ls[i] = orb.Point{v.X, v.Y}
		byPoint[ls[i]] = append(byPoint[ls[i]], i)
	}
	kept := simplify.DouglasPeucker(threshold).LineString(ls)
	// Recover each kept point's index, in order.
	out := make([]int, 0, len(kept))
	next := 0
	for _, p := range kept {
		for _, i := range byPoint[p] {
			if i >= next {
				out = append(out, i)
				next = i + 1
				break
			}
		}
	}
	return out
}

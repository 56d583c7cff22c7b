// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"errors"
	"sort"

	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/series"
)

// FillLevels returns the value each band between iso-levels is
// filled with: the field minimum, the midpoints between levels, and
// the field maximum.
func FillLevels(z series.Span, levels []float64) []float64 {
	out := []float64{z.Lo}
	for i := 0; i+1 < len(levels); i++ {
		out = append(out, (levels[i]+levels[i+1])/2)
	}
	return append(out, z.Hi)
}

// bandFiller closes iso-band polygons against the bounding box of a
// field.
type bandFiller struct {
	ll, lr, ul, ur geom.Vec
}

func newBandFiller(x, y series.Span) *bandFiller {
	return &bandFiller{
		ll: geom.Vec{x.Lo, y.Lo},
		lr: geom.Vec{x.Hi, y.Lo},
		ul: geom.Vec{x.Lo, y.Hi},
		ur: geom.Vec{x.Hi, y.Hi},
	}
}

// Bands returns, for each of the len(levels)+1 bands of the field,
// the closed rings bounding it, concatenated. paths[i] are the
// iso-lines of levels[i], oriented with the higher side on the right.
// Band i lies above levels[i-1] and below levels[i].
func Bands(x, y series.Span, paths [][][]geom.Vec) ([][]geom.Vec, error) {
	f := newBandFiller(x, y)
	var all [][]geom.Vec
	for _, p := range paths {
		all = append(all, p...)
	}
	outer, corners := f.outerMap(all)

	n := len(paths)
	out := make([][]geom.Vec, n+1)
	for i := 0; i <= n; i++ {
		var pieces [][]geom.Vec
		if i > 0 {
			for _, p := range paths[i-1] {
				pieces = append(pieces, reversed(p))
			}
		}
		if i < n {
			pieces = append(pieces, paths[i]...)
		}
		rings, err := closePieces(pieces, outer, corners)
		if err != nil {
			return nil, err
		}
		for _, r := range rings {
			out[i] = append(out[i], r...)
		}
	}
	return out, nil
}

func reversed(p []geom.Vec) []geom.Vec {
	out := make([]geom.Vec, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

var errUnclosed = errors.New("contour band polygons are not closed")

// closePieces closes each open piece by walking the border from its
// end, then joins pieces into rings.
func closePieces(pieces [][]geom.Vec, outer map[geom.Vec]geom.Vec, corners map[geom.Vec]bool) ([][]geom.Vec, error) {
	var rings, walked [][]geom.Vec
	for _, piece := range pieces {
		p := append([]geom.Vec(nil), piece...)
		if p[0] == p[len(p)-1] {
			rings = append(rings, p)
			continue
		}
		end := p[len(p)-1]
		for {
			next, ok := outer[end]
			if !ok {
				return nil, errUnclosed
			}
			p = append(p, next)
			end = next
			if !corners[end] {
				break
			}
		}
		walked = append(walked, p)
	}
	joined, open := joinVecPaths(walked)
	if len(open) != 0 {
		return nil, errUnclosed
	}
	rings = append(rings, joined...)
	for _, r := range rings {
		if r[0] != r[len(r)-1] {
			return nil, errUnclosed
		}
	}
	return rings, nil
}

type borderSide int

const (
	sideDown borderSide = iota
	sideRight
	sideUp
	sideLeft
)

// side classifies a border point by which of the triangles formed by
// the box diagonals it falls in.
func (f *bandFiller) side(p geom.Vec) borderSide {
	a := belowOrOnLine(f.ll, f.ur, p)
	b := belowOrOnLine(f.ul, f.lr, p)
	switch {
	case a && b:
		return sideDown
	case a:
		return sideRight
	case !b:
		return sideUp
	}
	return sideLeft
}

func belowOrOnLine(a, b, p geom.Vec) bool {
	v := p.Sub(a)
	s := b.Sub(a)
	return s.Y*v.X-v.Y*s.X >= 0
}

// outerMap links the open ends of paths, and the box corners, in
// counterclockwise order around the border. It also returns the
// corners it inserted.
func (f *bandFiller) outerMap(paths [][]geom.Vec) (map[geom.Vec]geom.Vec, map[geom.Vec]bool) {
	var sides [4][]geom.Vec
	for _, p := range paths {
		if p[0] == p[len(p)-1] {
			continue
		}
		for _, v := range []geom.Vec{p[0], p[len(p)-1]} {
			s := f.side(v)
			sides[s] = append(sides[s], v)
		}
	}
	sort.SliceStable(sides[sideDown], func(i, j int) bool { return sides[sideDown][i].X < sides[sideDown][j].X })
	sort.SliceStable(sides[sideRight], func(i, j int) bool { return sides[sideRight][i].Y < sides[sideRight][j].Y })
	sort.SliceStable(sides[sideUp], func(i, j int) bool { return sides[sideUp][i].X > sides[sideUp][j].X })
	sort.SliceStable(sides[sideLeft], func(i, j int) bool { return sides[sideLeft][i].Y > sides[sideLeft][j].Y })

	corners := map[geom.Vec]bool{}
	var ring []geom.Vec
	addCorner := func(c geom.Vec, side []geom.Vec) {
		if !containsVec(side, c) {
			ring = append(ring, c)
			corners[c] = true
		}
	}
	// The lower corners classify as DOWN, the upper right as RIGHT
	// and the upper left as LEFT.
	addCorner(f.ll, sides[sideDown])
	ring = append(ring, sides[sideDown]...)
	addCorner(f.lr, sides[sideDown])
	ring = append(ring, sides[sideRight]...)
	addCorner(f.ur, sides[sideRight])
	ring = append(ring, sides[sideUp]...)
	addCorner(f.ul, sides[sideLeft])
	ring = append(ring, sides[sideLeft]...)
	ring = append(ring, ring[0])

	m := make(map[geom.Vec]geom.Vec, len(ring))
	for i := 0; i+1 < len(ring); i++ {
		m[ring[i]] = ring[i+1]
	}
	return m, corners
}

func containsVec(vs []geom.Vec, v geom.Vec) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

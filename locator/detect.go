// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package locator

import (
	"math"

	"github.com/aclements/go-plotcore/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// detector tests targets against a cursor for one lookup spec.
type detector struct {
	Spec
}

func (d detector) checkPoint(c geom.Vec, t *projected, cl *closest) bool {
	if d.Strategy == StrategyNone {
		return false
	}
	eps := t.Radius + PointAreaEpsilon
	switch d.Space {
	case SpaceX:
		if d.Strategy == Hover {
			return math.Abs(t.Center.X-c.X) <= eps
		}
		return cl.check(geom.Vec{t.Center.X, 0})
	case SpaceY:
		if d.Strategy == Hover {
			return math.Abs(t.Center.Y-c.Y) <= eps
		}
		return cl.check(geom.Vec{0, t.Center.Y})
	case SpaceXY:
		if d.Strategy == Hover {
			return t.Center.Dist(c) <= eps
		}
		return cl.check(t.Center)
	}
	return false
}

func (d detector) checkRect(c geom.Vec, t *projected, cl *closest) bool {
	r := t.Rect
	switch d.Space {
	case SpaceX:
		return d.rangeLookup(c, cl, r.X, r.X+r.W)
	case SpaceY:
		return d.rangeLookup(c, cl, r.Y, r.Y+r.H)
	case SpaceXY:
		switch d.Strategy {
		case Hover:
			return r.Contains(c)
		case Nearest:
			if r.Contains(c) {
				return cl.check(c)
			}
			// Clamp the cursor to the rectangle.
			p := geom.Vec{
				X: math.Max(r.X, math.Min(r.X+r.W, c.X)),
				Y: math.Max(r.Y, math.Min(r.Y+r.H, c.Y)),
			}
			return cl.check(p)
		}
	}
	return false
}

func (d detector) checkPolygon(c geom.Vec, t *projected, cl *closest) bool {
	switch d.Space {
	case SpaceX, SpaceY:
		return d.rangeLookup(c, cl, t.lo, t.hi)
	case SpaceXY:
		if d.Strategy == StrategyNone {
			return false
		}
		// Nearest is answered like hover: a polygon is only found
		// under the cursor.
		pt := orb.Point{c.X, c.Y}
		n := 0
		for _, r := range t.Rings {
			if planar.RingContains(toRing(r), pt) {
				n++
			}
		}
		return n%2 != 0
	}
	return false
}

func toRing(vs []geom.Vec) orb.Ring {
	r := make(orb.Ring, len(vs))
	for i, v := range vs {
		r[i] = orb.Point{v.X, v.Y}
	}
	return r
}

// rangeLookup tests the cursor against the span [lo, hi] of a shape
// along the lookup axis.
func (d detector) rangeLookup(c geom.Vec, cl *closest, lo, hi float64) bool {
	v := axis(c, d.Space)
	in := func(x float64) bool { return lo <= x && x <= hi }
	switch d.Strategy {
	case Hover:
		return in(v)
	case Nearest:
		if !in(v-RangeNearestEpsilon) && !in(v+RangeNearestEpsilon) && !in(v) {
			return false
		}
		mid := lo + (hi-lo)/2
		p := geom.Vec{mid, 0}
		if d.Space == SpaceY {
			p = geom.Vec{0, mid}
		}
		return cl.compare(p) != newFarther
	}
	return false
}

func (d detector) checkPath(c geom.Vec, t *projected, cl *closest) (pathPoint, bool) {
	pts := t.path
	if len(pts) == 0 || d.Strategy == StrategyNone {
		return pathPoint{}, false
	}
	switch d.Space {
	case SpaceX, SpaceY:
		v := axis(c, d.Space)
		if d.Strategy == Hover && (v < axis(pts[0].coord, d.Space) || v > axis(pts[len(pts)-1].coord, d.Space)) {
			return pathPoint{}, false
		}
		return searchNearest(v, pts, d.Space), true
	case SpaceXY:
		var best pathPoint
		found := false
		for _, p := range pts {
			if d.Strategy == Hover && p.coord.Dist(c) > PointAreaEpsilon {
				continue
			}
			if cl.check(p.coord) {
				best, found = p, true
			}
		}
		return best, found
	}
	return pathPoint{}, false
}

// searchNearest returns the point of pts, sorted along space, whose
// coordinate is nearest v. Ties go to the later point.
func searchNearest(v float64, pts []pathPoint, space Space) pathPoint {
	at := func(i int) float64 { return axis(pts[i].coord, space) }
	if v <= at(0) {
		return pts[0]
	}
	if v >= at(len(pts)-1) {
		return pts[len(pts)-1]
	}
	// at(lo-1) < v <= at(lo)
	lo, hi := 0, len(pts)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if at(mid) < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if v-at(lo-1) < at(lo)-v {
		return pts[lo-1]
	}
	return pts[lo]
}

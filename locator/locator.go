// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locator maps client coordinates back to the data points
// drawn there, for tooltips.
//
// A Locator holds the hit regions of one layer. Search finds the
// targets under or nearest to a cursor according to the layer's
// lookup space and strategy.
package locator

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/aclements/go-plotcore/geom"
)

// A Space is the set of axes a lookup measures distance along.
type Space int

const (
	SpaceNone Space = iota
	SpaceX
	SpaceY
	SpaceXY
)

var spaceNames = []string{"none", "x", "y", "xy"}

func (s Space) String() string {
	if s < 0 || int(s) >= len(spaceNames) {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceNames[s]
}

// Univariate returns true if s measures along a single axis.
func (s Space) Univariate() bool { return s == SpaceX || s == SpaceY }

// A Strategy decides which targets a cursor finds.
type Strategy int

const (
	// StrategyNone finds nothing.
	StrategyNone Strategy = iota
	// Hover finds targets under the cursor.
	Hover
	// Nearest finds the targets closest to the cursor.
	Nearest
)

var strategyNames = []string{"none", "hover", "nearest"}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseSpace and ParseStrategy parse the names above.
func ParseSpace(s string) (Space, error) {
	for i, n := range spaceNames {
		if n == s {
			return Space(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lookup space %q; use one of: none, x, y, xy", s)
}

func ParseStrategy(s string) (Strategy, error) {
	for i, n := range strategyNames {
		if n == s {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("unknown lookup strategy %q; use one of: none, hover, nearest", s)
}

// Spec is how a layer answers lookups.
type Spec struct {
	Space    Space
	Strategy Strategy
}

// A Collect strategy decides how hits found during one search are
// accumulated.
type Collect int

const (
	// Append keeps every hit.
	Append Collect = iota
	// Replace keeps only the last hit.
	Replace
	// AppendIfEqual keeps every hit at the closest distance seen so
	// far.
	AppendIfEqual
	// Ignore keeps nothing.
	Ignore
)

// DefaultCollect returns the collect strategy for a layer with lookup
// spec s. simple is set for layers of rectangles or polygons, whose
// overlapping shapes should produce only one tooltip.
func DefaultCollect(s Spec, simple bool) Collect {
	switch {
	case simple:
		return Replace
	case s.Space.Univariate() && s.Strategy == Nearest:
		return AppendIfEqual
	case s.Space.Univariate():
		return Append
	case s.Strategy == Hover:
		return Append
	case s.Strategy == StrategyNone || s.Space == SpaceNone:
		return Ignore
	}
	return Replace
}

// Distances, in client units.
const (
	// PointAreaEpsilon is added to a point's radius for hover.
	PointAreaEpsilon = 5.1
	// RangeNearestEpsilon is how far outside a range a nearest
	// lookup still finds it.
	RangeNearestEpsilon = 2.0
)

// A Kind is the shape of a hit region.
type Kind int

const (
	KindPoint Kind = iota
	KindRect
	KindPath
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindRect:
		return "rect"
	case KindPath:
		return "path"
	case KindPolygon:
		return "polygon"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Target is a hit region. Which fields are used depends on Kind.
type Target struct {
	Kind Kind

	// Point center and radius, for KindPoint.
	Center geom.Vec
	Radius float64

	// Rect, for KindRect.
	Rect geom.Rect

	// Points of a path, for KindPath.
	Points []geom.Vec

	// Rings of a polygon, for KindPolygon. A point inside an odd
	// number of rings is inside the polygon.
	Rings [][]geom.Vec

	// LocalToGlobal maps the position of a path point in Points to
	// its row in the layer's data. Other kinds are resolved with
	// LocalToGlobal(0).
	LocalToGlobal func(i int) int

	// Colors are the marker colors for the target's tooltip.
	Colors []color.RGBA
}

// IndexMapper returns a LocalToGlobal function for a single data row.
func IndexMapper(row int) func(int) int {
	return func(int) int { return row }
}

// A Hit is one target found by a search.
type Hit struct {
	Kind Kind
	// Row is the data row of the target.
	Row int
	// Coord is the tooltip anchor in client space.
	Coord geom.Vec
	// Radius is the half-size of the target along the lookup space.
	Radius float64
	Colors []color.RGBA
}

// LookupResult is the closest group of hits for a search.
type LookupResult struct {
	Hits []Hit
	// Distance from the cursor. Direct hits have distance 0.
	Distance float64
}

// Locator is the search index of one layer's hit regions.
type Locator struct {
	Spec    Spec
	Collect Collect

	targets []projected
}

// New returns an empty locator. simple is as for DefaultCollect.
func New(spec Spec, simple bool) *Locator {
	return &Locator{Spec: spec, Collect: DefaultCollect(spec, simple)}
}

// Add adds t to the index. It panics if t has a nil LocalToGlobal.
func (l *Locator) Add(t Target) {
	if t.LocalToGlobal == nil {
		panic("locator: target has no index mapper")
	}
	l.targets = append(l.targets, project(t, l.Spec.Space))
}

// Len returns the number of targets in l.
func (l *Locator) Len() int {
	return len(l.targets)
}

// Search returns the targets found at client coordinate c, if any.
func (l *Locator) Search(c geom.Vec) (*LookupResult, bool) {
	if len(l.targets) == 0 {
		return nil, false
	}
	d := detector{l.Spec}
	var (
		rects    = newCollector(c, l.Collect, l.Spec.Space)
		points   = newCollector(c, l.Collect, l.Spec.Space)
		paths    = newCollector(c, l.Collect, l.Spec.Space)
		polygons = newCollector(c, Replace, l.Spec.Space)
	)
	for i := range l.targets {
		t := &l.targets[i]
		switch t.Kind {
		case KindRect:
			if d.checkRect(c, t, rects.checker) {
				r := t.Rect
				var radius float64
				switch l.Spec.Space {
				case SpaceX:
					radius = r.W / 2
				case SpaceY:
					radius = r.H / 2
				}
				anchor := geom.Vec{r.X + r.W/2, r.Y}
				if l.Spec.Space == SpaceY {
					anchor.Y += r.H / 2
				}
				rects.collect(t.hit(0, anchor, radius))
			}
		case KindPoint:
			if d.checkPoint(c, t, points.checker) {
				points.collect(t.hit(0, t.Center, t.Radius))
			}
		case KindPath:
			checker := paths.checker
			if l.Collect == Append {
				checker = newClosest(paths.checker.target)
			}
			if pp, ok := d.checkPath(c, t, checker); ok {
				paths.collect(t.hit(pp.index, pp.coord, 0))
			}
		case KindPolygon:
			if d.checkPolygon(c, t, polygons.checker) {
				polygons.collect(t.hit(0, c, 0))
			}
		}
	}

	var best *LookupResult
	for _, col := range []*collector{paths, rects, points, polygons} {
		if len(col.hits) == 0 {
			continue
		}
		r := &LookupResult{col.hits, math.Max(0, col.checker.dist)}
		if best == nil || r.Distance < best.Distance {
			best = r
		}
	}
	return best, best != nil
}

// A pathPoint is a path vertex with its position in the original
// path.
type pathPoint struct {
	coord geom.Vec
	index int
}

// projected is a target prepared for a lookup space.
type projected struct {
	Target

	// path points, sorted along the lookup axis if the space is
	// univariate.
	path []pathPoint
	// span of a polygon along the lookup axis.
	lo, hi float64
}

func project(t Target, space Space) projected {
	p := projected{Target: t}
	switch t.Kind {
	case KindPath:
		for i, v := range t.Points {
			p.path = append(p.path, pathPoint{v, i})
		}
		if space.Univariate() {
			sort.SliceStable(p.path, func(i, j int) bool {
				return axis(p.path[i].coord, space) < axis(p.path[j].coord, space)
			})
		}
	case KindPolygon:
		p.lo, p.hi = math.Inf(1), math.Inf(-1)
		for _, r := range t.Rings {
			for _, v := range r {
				a := axis(v, space)
				p.lo, p.hi = math.Min(p.lo, a), math.Max(p.hi, a)
			}
		}
	}
	return p
}

func (t *projected) hit(local int, coord geom.Vec, radius float64) Hit {
	return Hit{Kind: t.Kind, Row: t.LocalToGlobal(local), Coord: coord, Radius: radius, Colors: t.Colors}
}

// axis returns the coordinate of v along a univariate space.
func axis(v geom.Vec, space Space) float64 {
	if space == SpaceY {
		return v.Y
	}
	return v.X
}

// closest tracks the point nearest a target seen so far. A negative
// distance means no point has been checked.
type closest struct {
	target geom.Vec
	dist   float64
}

func newClosest(target geom.Vec) *closest {
	return &closest{target, -1}
}

type comparison int

const (
	newCloser comparison = iota
	newAtSameDistance
	newFarther
)

// compare compares v against the closest point so far and records it
// if it is not farther.
func (c *closest) compare(v geom.Vec) comparison {
	d := c.target.Dist(v)
	switch {
	case c.dist < 0 || d < c.dist:
		c.dist = d
		return newCloser
	case d == c.dist:
		return newAtSameDistance
	}
	return newFarther
}

// check returns true if v is at least as close as any point so far.
func (c *closest) check(v geom.Vec) bool {
	return c.compare(v) != newFarther
}

type collector struct {
	strategy Collect
	checker  *closest
	hits     []Hit
	lastDist float64
}

func newCollector(cursor geom.Vec, strategy Collect, space Space) *collector {
	target := cursor
	switch space {
	case SpaceX:
		target = geom.Vec{cursor.X, 0}
	case SpaceY:
		target = geom.Vec{0, cursor.Y}
	}
	return &collector{strategy: strategy, checker: newClosest(target), lastDist: -1}
}

func (c *collector) collect(h Hit) {
	switch c.strategy {
	case Append:
		c.hits = append(c.hits, h)
	case Replace:
		c.hits = append(c.hits[:0], h)
	case AppendIfEqual:
		if c.lastDist == c.checker.dist {
			c.hits = append(c.hits, h)
		} else {
			c.hits = append(c.hits[:0], h)
		}
	case Ignore:
		return
	}
	c.lastDist = c.checker.dist
}

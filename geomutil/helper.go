// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geomutil turns data points into client-space drawing
// primitives and registers what it draws for tooltip lookup.
package geomutil

import (
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/coord"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/pos"
)

// MinRectSize is the smallest width or height of a client rectangle.
const MinRectSize = 0.1

// Helper maps data-space positions of a layer to client space: first
// through the layer's position adjustment, then through its
// coordinate system.
type Helper struct {
	Pos   pos.Adjustment
	Coord coord.System
}

// NewHelper returns a helper. A nil adjustment is the identity.
func NewHelper(adj pos.Adjustment, cs coord.System) *Helper {
	if adj == nil {
		adj = pos.Identity{}
	}
	return &Helper{adj, cs}
}

// ToClient maps position v of point p to client space. It returns
// false if v has no client position, in which case the caller should
// skip it.
func (h *Helper) ToClient(v geom.Vec, p aes.DataPoint) (geom.Vec, bool) {
	return h.Coord.ToClient(h.Pos.Translate(v, p))
}

// ToClientRect maps data rectangle r of point p to client space. The
// result always has a width and height of at least MinRectSize, so
// degenerate bars remain visible.
func (h *Helper) ToClientRect(r geom.Rect, p aes.DataPoint) (geom.Rect, bool) {
	a, ok1 := h.ToClient(r.Origin(), p)
	b, ok2 := h.ToClient(r.Max(), p)
	if !ok1 || !ok2 {
		return geom.Rect{}, false
	}
	cr := geom.RectFromPoints(a, b)
	if cr.W < MinRectSize {
		cr.X -= (MinRectSize - cr.W) / 2
		cr.W = MinRectSize
	}
	if cr.H < MinRectSize {
		cr.Y -= (MinRectSize - cr.H) / 2
		cr.H = MinRectSize
	}
	return cr, true
}

// A Location extracts a data-space position from a point. It returns
// false if the point has no position.
type Location func(p aes.DataPoint) (geom.Vec, bool)

// At returns the location given by aesthetics x and y.
func At(x, y aes.Aes) Location {
	return func(p aes.DataPoint) (geom.Vec, bool) {
		v := geom.Vec{p.Numeric(x), p.Numeric(y)}
		return v, v.IsFinite()
	}
}

// Common locations.
var (
	AtXY    = At(aes.X, aes.Y)
	AtXYMin = At(aes.X, aes.YMin)
	AtXYMax = At(aes.X, aes.YMax)
)

// clientLocation composes loc with h's mapping to client space.
func (h *Helper) clientLocation(loc Location) Location {
	return func(p aes.DataPoint) (geom.Vec, bool) {
		v, ok := loc(p)
		if !ok {
			return geom.Vec{}, false
		}
		return h.ToClient(v, p)
	}
}

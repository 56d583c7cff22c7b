// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle with origin (X, Y) and size
// (W, H). A normalized Rect has non-negative W and H.
type Rect struct {
	X, Y, W, H float64
}

// RectFromPoints returns the normalized rectangle spanning a and b.
func RectFromPoints(a, b Vec) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Origin returns the corner with the smallest coordinates.
func (r Rect) Origin() Vec {
	return Vec{r.X, r.Y}
}

// Dim returns the size of r.
func (r Rect) Dim() Vec {
	return Vec{r.W, r.H}
}

// Max returns the corner opposite the origin.
func (r Rect) Max() Vec {
	return Vec{r.X + r.W, r.Y + r.H}
}

// Center returns the center of r.
func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Area returns the area of r.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Move translates r by p.
func (r Rect) Move(p Vec) Rect {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Contains returns true if p lies within r, inclusive of its border.
func (r Rect) Contains(p Vec) bool {
	return r.X <= p.X && p.X <= r.X+r.W && r.Y <= p.Y && p.Y <= r.Y+r.H
}

// Inflate grows r by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{r.X - d, r.Y - d, r.W + 2*d, r.H + 2*d}
}

// Union returns the smallest rectangle containing r and q. An empty
// rectangle does not contribute.
func (r Rect) Union(q Rect) Rect {
	if q.W == 0 && q.H == 0 {
		return r
	} else if r.W == 0 && r.H == 0 {
		return q
	}
	x0 := math.Min(r.X, q.X)
	y0 := math.Min(r.Y, q.Y)
	x1 := math.Max(r.X+r.W, q.X+q.W)
	y1 := math.Max(r.Y+r.H, q.Y+q.H)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Corners returns the corners of r counterclockwise from the origin.
func (r Rect) Corners() [4]Vec {
	return [4]Vec{{r.X, r.Y}, {r.X + r.W, r.Y}, {r.X + r.W, r.Y + r.H}, {r.X, r.Y + r.H}}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X, r.Y, r.X+r.W, r.Y+r.H)
}

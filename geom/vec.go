// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the 2D primitives shared by the stats, the
// coordinate systems and the geometry helpers.
package geom

import (
	"fmt"
	"math"
)

// Vec is a point or displacement in 2D space.
type Vec struct {
	X, Y float64
}

// Add adds q to p.
func (p Vec) Add(q Vec) Vec {
	return Vec{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts q from p.
func (p Vec) Sub(q Vec) Vec {
	return Vec{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Vec) Mul(f float64) Vec {
	return Vec{f * p.X, f * p.Y}
}

// Neg negates x and y.
func (p Vec) Neg() Vec {
	return Vec{-p.X, -p.Y}
}

// Flip exchanges x and y.
func (p Vec) Flip() Vec {
	return Vec{p.Y, p.X}
}

// Dot returns the dot product of p and q.
func (p Vec) Dot(q Vec) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the Euclidean length of p.
func (p Vec) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist returns the Euclidean distance between p and q.
func (p Vec) Dist(q Vec) float64 {
	return p.Sub(q).Length()
}

// Chebyshev returns the larger of the axis distances between p and q.
func (p Vec) Chebyshev(q Vec) float64 {
	return math.Max(math.Abs(p.X-q.X), math.Abs(p.Y-q.Y))
}

// IsFinite returns true if both coordinates are finite.
func (p Vec) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Interpolate returns the point a fraction t of the way from p to q.
func (p Vec) Interpolate(q Vec, t float64) Vec {
	return Vec{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Vec) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

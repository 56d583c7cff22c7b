// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"image/color"
	"math"
)

// Transparent is the fully transparent color.
var Transparent = color.RGBA{}

// WithAlpha returns c with its alpha channel scaled by alpha in
// [0, 1]. A NaN alpha leaves c unchanged.
func WithAlpha(c color.RGBA, alpha float64) color.RGBA {
	if math.IsNaN(alpha) {
		return c
	}
	alpha = math.Max(0, math.Min(1, alpha))
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(float64(c.R)*alpha + 0.5),
		G: uint8(float64(c.G)*alpha + 0.5),
		B: uint8(float64(c.B)*alpha + 0.5),
		A: uint8(float64(c.A)*alpha + 0.5),
	}
}

// FillOf returns the effective fill of p, with its alpha applied.
func FillOf(p DataPoint) color.RGBA {
	return WithAlpha(p.Color(Fill), p.Numeric(Alpha))
}

// StrokeOf returns the effective stroke color of p, with its alpha
// applied.
func StrokeOf(p DataPoint) color.RGBA {
	return WithAlpha(p.Color(Color), p.Numeric(Alpha))
}

// IsTransparent returns true if c has zero alpha.
func IsTransparent(c color.RGBA) bool {
	return c.A == 0
}

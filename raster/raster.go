// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster draws client-space geometry into an image, for
// previews without an SVG renderer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/aclements/go-gg/palette"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/geomutil"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"golang.org/x/image/vector"
)

// Heat is the palette for scalar fields, from dark purple through
// green to yellow.
var Heat palette.Continuous = palette.RGBGradient{
	Colors: []color.RGBA{
		{0x44, 0x01, 0x54, 0xff},
		{0x3b, 0x52, 0x8b, 0xff},
		{0x21, 0x90, 0x8d, 0xff},
		{0x5d, 0xc8, 0x63, 0xff},
		{0xfd, 0xe7, 0x25, 0xff},
	},
}

// A Canvas is an RGBA image with a white background.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

func New(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &Canvas{img, vector.NewRasterizer(w, h)}
}

// Client returns the client rectangle covered by c.
func (c *Canvas) Client() geom.Rect {
	b := c.img.Bounds()
	return geom.Rect{W: float64(b.Dx()), H: float64(b.Dy())}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes c as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) reset() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func (c *Canvas) draw(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

func (c *Canvas) poly(pts []geom.Vec) {
	if len(pts) < 3 {
		return
	}
	c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
}

// FillRect fills r with col.
func (c *Canvas) FillRect(r geom.Rect, col color.Color) {
	c.reset()
	cs := r.Corners()
	c.poly(cs[:])
	c.draw(col)
}

// FillRings fills the polygon bounded by rings with col. A point is
// inside if it lies inside an odd number of rings.
func (c *Canvas) FillRings(rings [][]geom.Vec, col color.Color) {
	c.reset()
	for i, r := range rings {
		if len(r) < 3 {
			continue
		}
		depth := 0
		for j, o := range rings {
			if j != i && len(o) >= 3 && planar.RingContains(toRing(o), orb.Point{r[0].X, r[0].Y}) {
				depth++
			}
		}
		// The rasterizer sums signed coverage, so holes must wind
		// opposite to the rings around them.
		if (signedArea(r) > 0) != (depth%2 == 0) {
			r = reversed(r)
		}
		c.poly(r)
	}
	c.draw(col)
}

// StrokePath strokes the open path pts with a line of the given
// width. Joins are not rounded.
func (c *Canvas) StrokePath(pts []geom.Vec, width float64, col color.Color) {
	c.reset()
	hw := math.Max(width, 1) / 2
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		d := b.Sub(a)
		l := d.Length()
		if l == 0 {
			continue
		}
		n := geom.Vec{-d.Y, d.X}.Mul(hw / l)
		c.poly([]geom.Vec{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	c.draw(col)
}

// DrawLinePath fills and strokes lp according to its decoration.
func (c *Canvas) DrawLinePath(lp geomutil.LinePath) {
	if lp.Closed {
		rings := geomutil.SplitAtSeparators(lp.Points)
		if lp.Fill.A != 0 {
			c.FillRings(rings, lp.Fill)
		}
		if lp.Stroke.A != 0 {
			for _, r := range rings {
				c.StrokePath(r, lp.Width, lp.Stroke)
			}
		}
		return
	}
	if lp.Stroke.A != 0 {
		c.StrokePath(lp.Points, lp.Width, lp.Stroke)
	}
}

func toRing(vs []geom.Vec) orb.Ring {
	r := make(orb.Ring, len(vs))
	for i, v := range vs {
		r[i] = orb.Point{v.X, v.Y}
	}
	return r
}

// signedArea returns the shoelace area of r, positive for
// counterclockwise rings in a y-up frame.
func signedArea(r []geom.Vec) float64 {
	var s float64
	for i := range r {
		a, b := r[i], r[(i+1)%len(r)]
		s += a.X*b.Y - b.X*a.Y
	}
	return s / 2
}

func reversed(r []geom.Vec) []geom.Vec {
	out := make([]geom.Vec, len(r))
	for i, v := range r {
		out[len(r)-1-i] = v
	}
	return out
}

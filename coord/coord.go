// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord implements coordinate systems, which map data space
// to client space.
//
// Client space has its origin at the top left, so data Y increases
// upward while client Y increases downward.
package coord

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/series"
)

// A System maps data coordinates to client coordinates.
type System interface {
	// ToClient maps v to client space. It returns false if v has
	// no client position, for example because it is not finite or
	// outside the domain of a non-linear axis.
	ToClient(v geom.Vec) (geom.Vec, bool)

	// IsLinear returns true if straight lines in data space are
	// straight in client space.
	IsLinear() bool

	// Flipped returns true if data X is drawn vertically.
	Flipped() bool
}

// Cartesian is a rectilinear coordinate system. X and Y map the
// horizontal and vertical axes of the client rectangle.
type Cartesian struct {
	X, Y   scale.Linear
	Client geom.Rect

	flip bool
}

// NewCartesian returns a system mapping the data rectangle x × y onto
// client.
func NewCartesian(x, y series.Span, client geom.Rect) *Cartesian {
	return &Cartesian{X: linear(x), Y: linear(y), Client: client}
}

// NewFlipped returns a system that draws data X vertically and data
// Y horizontally.
func NewFlipped(x, y series.Span, client geom.Rect) *Cartesian {
	return &Cartesian{X: linear(y), Y: linear(x), Client: client, flip: true}
}

// linear returns a scale for s. A zero-length span is mapped as if
// it were one unit wide, centered on its value.
func linear(s series.Span) scale.Linear {
	if series.IsBeyondPrecision(s) {
		c := s.Center()
		return scale.Linear{Min: c - 0.5, Max: c + 0.5}
	}
	return scale.Linear{Min: s.Lo, Max: s.Hi}
}

func (c *Cartesian) ToClient(v geom.Vec) (geom.Vec, bool) {
	if !v.IsFinite() {
		return geom.Vec{}, false
	}
	if c.flip {
		v = v.Flip()
	}
	r := c.Client
	return geom.Vec{
		X: r.X + c.X.Map(v.X)*r.W,
		Y: r.Y + r.H - c.Y.Map(v.Y)*r.H,
	}, true
}

func (c *Cartesian) IsLinear() bool { return true }

func (c *Cartesian) Flipped() bool { return c.flip }

// Log10 wraps a Cartesian system in base 10 logarithmic axes. Data
// values at or below zero on a logarithmic axis have no position.
type Log10 struct {
	Inner      *Cartesian
	LogX, LogY bool
}

// NewLog10 returns a system with logarithmic X and/or Y axes over the
// data rectangle x × y. Spans of logarithmic axes must be positive.
func NewLog10(x, y series.Span, client geom.Rect, logX, logY bool) (*Log10, error) {
	var err error
	if logX {
		if x, err = logSpan("x", x); err != nil {
			return nil, err
		}
	}
	if logY {
		if y, err = logSpan("y", y); err != nil {
			return nil, err
		}
	}
	return &Log10{NewCartesian(x, y, client), logX, logY}, nil
}

func logSpan(axis string, s series.Span) (series.Span, error) {
	if !(s.Lo > 0) {
		return s, fmt.Errorf("log10 %s axis: span %v is not positive", axis, s)
	}
	return series.Span{Lo: math.Log10(s.Lo), Hi: math.Log10(s.Hi)}, nil
}

func (l *Log10) ToClient(v geom.Vec) (geom.Vec, bool) {
	if l.LogX {
		if !(v.X > 0) {
			return geom.Vec{}, false
		}
		v.X = math.Log10(v.X)
	}
	if l.LogY {
		if !(v.Y > 0) {
			return geom.Vec{}, false
		}
		v.Y = math.Log10(v.Y)
	}
	return l.Inner.ToClient(v)
}

func (l *Log10) IsLinear() bool { return !l.LogX && !l.LogY }

func (l *Log10) Flipped() bool { return l.Inner.Flipped() }

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-plotcore/frame"
)

// A DataPoint gives access to the aesthetic values of one data point.
type DataPoint interface {
	// Index is the row of the point in its layer's data.
	Index() int
	// Group is the point's group. Paths are split by group.
	Group() int
	// Numeric returns the value of a numeric aesthetic, NaN if it
	// is missing. It panics if a is not numeric.
	Numeric(a Aes) float64
	// Color returns the value of a color aesthetic. It panics if a
	// is not a color aesthetic.
	Color(a Aes) color.RGBA
}

// Point is a concrete DataPoint.
type Point struct {
	Row, GroupID int

	num [numAes]float64
	col [numAes]color.RGBA
}

// Defaults for aesthetics a Point has not been given.
var (
	DefaultColor = color.RGBA{0x47, 0x47, 0x47, 0xff}
	DefaultFill  = color.RGBA{0x11, 0x8e, 0xd8, 0xff}
	DefaultSize  = 0.5
	DefaultAlpha = 1.0
)

// NewPoint returns a point for row i of group g with default values.
func NewPoint(i, g int) *Point {
	p := &Point{Row: i, GroupID: g}
	for a := range p.num {
		p.num[a] = math.NaN()
	}
	p.num[Size] = DefaultSize
	p.num[Alpha] = DefaultAlpha
	p.num[Weight] = 1
	p.col[Color] = DefaultColor
	p.col[Fill] = DefaultFill
	return p
}

// numericAccessors and colorAccessors are the typed accessor tables.
// Adding an aesthetic means adding its extraction function here.
var numericAccessors = map[Aes]func(p *Point) float64{}
var colorAccessors = map[Aes]func(p *Point) color.RGBA{}

func init() {
	for _, a := range All() {
		a := a
		switch a.Kind() {
		case Numeric:
			numericAccessors[a] = func(p *Point) float64 { return p.num[a] }
		case ColorKind:
			colorAccessors[a] = func(p *Point) color.RGBA { return p.col[a] }
		}
	}
}

func (p *Point) Index() int { return p.Row }
func (p *Point) Group() int { return p.GroupID }

func (p *Point) Numeric(a Aes) float64 {
	f, ok := numericAccessors[a]
	if !ok {
		panic(fmt.Sprintf("aesthetic %v is not numeric", a))
	}
	return f(p)
}

func (p *Point) Color(a Aes) color.RGBA {
	f, ok := colorAccessors[a]
	if !ok {
		panic(fmt.Sprintf("aesthetic %v is not a color", a))
	}
	return f(p)
}

// Set sets numeric aesthetic a to v and returns p.
func (p *Point) Set(a Aes, v float64) *Point {
	if a.Kind() != Numeric {
		panic(fmt.Sprintf("aesthetic %v is not numeric", a))
	}
	p.num[a] = v
	return p
}

// SetColor sets color aesthetic a to c and returns p.
func (p *Point) SetColor(a Aes, c color.RGBA) *Point {
	if a.Kind() != ColorKind {
		panic(fmt.Sprintf("aesthetic %v is not a color", a))
	}
	p.col[a] = c
	return p
}

// Mapping binds aesthetics to frame variables.
type Mapping map[Aes]frame.Variable

// FromFrame builds one Point per row of f, reading each numeric
// aesthetic in m from its variable. Groups come from the group
// variable if f has one.
func FromFrame(f *frame.Frame, m Mapping, groupVar frame.Variable) []*Point {
	n := f.Len()
	pts := make([]*Point, n)
	var groups []float64
	if f.Has(groupVar) {
		groups = f.Numeric(groupVar)
	}
	for i := range pts {
		g := 0
		if groups != nil && !math.IsNaN(groups[i]) {
			g = int(groups[i])
		}
		pts[i] = NewPoint(i, g)
	}
	for a, v := range m {
		if a.Kind() != Numeric || !f.Has(v) {
			continue
		}
		for i, x := range f.Numeric(v) {
			pts[i].num[a] = x
		}
	}
	return pts
}

// YOriented exchanges the X and Y aesthetics of a data point when
// Flip is set. Geoms that lay out along Y (horizontal boxplots, for
// example) use it to share code with their X-oriented forms.
type YOriented struct {
	P    DataPoint
	Flip bool
}

func (y YOriented) key(a Aes) Aes {
	if y.Flip {
		return a.Flip()
	}
	return a
}

func (y YOriented) Index() int             { return y.P.Index() }
func (y YOriented) Group() int             { return y.P.Group() }
func (y YOriented) Numeric(a Aes) float64  { return y.P.Numeric(y.key(a)) }
func (y YOriented) Color(a Aes) color.RGBA { return y.P.Color(y.key(a)) }

// Orient wraps p in a YOriented if flip is set. Orienting an already
// oriented point toggles the flag instead of adding a layer.
func Orient(p DataPoint, flip bool) DataPoint {
	if !flip {
		return p
	}
	if y, ok := p.(YOriented); ok {
		y.Flip = !y.Flip
		if !y.Flip {
			return y.P
		}
		return y
	}
	return YOriented{p, true}
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pos implements position adjustments, which move data
// points before they are mapped to client space.
package pos

import (
	"math"
	"math/rand"

	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/geom"
)

// An Adjustment moves a data-space position belonging to point p.
//
// A geom may translate several positions of one point (the corners
// of a bar, say). Adjustments must move all of them by the same
// offset.
type Adjustment interface {
	Translate(v geom.Vec, p aes.DataPoint) geom.Vec
}

// Identity leaves positions where they are.
type Identity struct{}

func (Identity) Translate(v geom.Vec, p aes.DataPoint) geom.Vec { return v }

// Nudge moves every position by a fixed offset.
type Nudge struct {
	X, Y float64
}

func (n Nudge) Translate(v geom.Vec, p aes.DataPoint) geom.Vec {
	return v.Add(geom.Vec{n.X, n.Y})
}

// Dodge places the groups at one x side by side. Width is the total
// width shared by the N groups; it defaults to 0.9 of a unit.
type Dodge struct {
	Width float64
	N     int
}

func (d Dodge) Translate(v geom.Vec, p aes.DataPoint) geom.Vec {
	if d.N <= 1 {
		return v
	}
	w := d.Width
	if w == 0 {
		w = 0.9
	}
	g := p.Group() % d.N
	if g < 0 {
		g += d.N
	}
	slot := w / float64(d.N)
	v.X += -w/2 + (float64(g)+0.5)*slot
	return v
}

// Jitter moves each point by a random amount up to Width/2
// horizontally and Height/2 vertically. The offset of a point depends
// only on Seed and the point's index, so repeated translations of the
// same point agree.
type Jitter struct {
	Width, Height float64
	Seed          int64
}

func (j Jitter) Translate(v geom.Vec, p aes.DataPoint) geom.Vec {
	r := rand.New(rand.NewSource(j.Seed ^ int64(p.Index())*0x5bd1e995))
	dx := (r.Float64() - 0.5) * j.Width
	dy := (r.Float64() - 0.5) * j.Height
	return v.Add(geom.Vec{dx, dy})
}

// Stack piles up the points at each x in the order they are first
// translated. Each point is raised by the sum of the ..y.. values of
// the points stacked before it.
type Stack struct {
	tops  map[float64]float64
	bases map[int]float64
}

func NewStack() *Stack {
	return &Stack{tops: map[float64]float64{}, bases: map[int]float64{}}
}

func (s *Stack) Translate(v geom.Vec, p aes.DataPoint) geom.Vec {
	base, ok := s.bases[p.Index()]
	if !ok {
		x := p.Numeric(aes.X)
		base = s.tops[x]
		if h := p.Numeric(aes.Y); !math.IsNaN(h) {
			s.tops[x] = base + h
		}
		s.bases[p.Index()] = base
	}
	v.Y += base
	return v
}

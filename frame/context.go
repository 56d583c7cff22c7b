// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import "github.com/aclements/go-plotcore/series"

// A Context gives a stat the information it needs beyond its own
// group's data: the overall positional ranges of the panel before any
// stat was applied, and the stat variables the consuming layer maps.
type Context interface {
	// OverallXRange and OverallYRange return the range of the
	// transformed X and Y data across all layers of a panel.
	OverallXRange() (series.Span, bool)
	OverallYRange() (series.Span, bool)

	// MappedStatVariables returns the stat variables the layer
	// maps to aesthetics. Stats with optional outputs compute only
	// these.
	MappedStatVariables() []Variable
}

// SimpleContext is a Context derived from a single data frame.
type SimpleContext struct {
	data   *Frame
	mapped []Variable
}

// NewContext returns a Context whose overall ranges are the ranges
// of TX and TY in data.
func NewContext(data *Frame, mapped ...Variable) *SimpleContext {
	return &SimpleContext{data, mapped}
}

func (c *SimpleContext) OverallXRange() (series.Span, bool) {
	return c.data.Range(TX)
}

func (c *SimpleContext) OverallYRange() (series.Span, bool) {
	return c.data.Range(TY)
}

func (c *SimpleContext) MappedStatVariables() []Variable {
	return c.mapped
}

// Ranges is a Context with explicitly given ranges. A nil range is
// unknown.
type Ranges struct {
	X, Y   *series.Span
	Mapped []Variable
}

func (r Ranges) OverallXRange() (series.Span, bool) {
	if r.X == nil {
		return series.Span{}, false
	}
	return *r.X, true
}

func (r Ranges) OverallYRange() (series.Span, bool) {
	if r.Y == nil {
		return series.Span{}, false
	}
	return *r.Y, true
}

func (r Ranges) MappedStatVariables() []Variable {
	return r.Mapped
}

// EmptyContext has no ranges and no mapped variables.
var EmptyContext Context = Ranges{}

// IsMapped returns true if ctx maps v.
func IsMapped(ctx Context, v Variable) bool {
	for _, m := range ctx.MappedStatVariables() {
		if m.Name == v.Name {
			return true
		}
	}
	return false
}

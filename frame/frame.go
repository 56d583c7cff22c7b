// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame implements the column store that flows between
// stats and geoms.
//
// A Frame maps Variables to equal-length columns. It is a thin,
// Variable-keyed layer over a go-gg table.Table: numeric columns are
// []float64 and a missing value is NaN. Frames are immutable once
// built; use a Builder to derive new frames.
package frame

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotcore/series"
)

// A Frame is an immutable set of equal-length columns.
type Frame struct {
	t    *table.Table
	vars []Variable
}

// Empty is the frame with no columns and no rows.
var Empty = &Frame{t: new(table.Table)}

// FromTable wraps t as a Frame. Every column of t becomes an Origin
// variable.
func FromTable(t *table.Table) *Frame {
	f := &Frame{t: t}
	for _, col := range t.Columns() {
		f.vars = append(f.vars, NewVar(col))
	}
	return f
}

// Table returns the underlying table.
func (f *Frame) Table() *table.Table {
	return f.t
}

// Len returns the number of rows in f.
func (f *Frame) Len() int {
	return f.t.Len()
}

// Variables returns the variables of f in column order.
func (f *Frame) Variables() []Variable {
	return append([]Variable(nil), f.vars...)
}

// Has returns true if f has a column for v.
func (f *Frame) Has(v Variable) bool {
	return f.t.Column(v.Name) != nil
}

// HasNonNull returns true if f has a column for v with at least one
// finite value.
func (f *Frame) HasNonNull(v Variable) bool {
	if !f.Has(v) {
		return false
	}
	_, ok := f.Range(v)
	return ok
}

// Variable returns the variable of f named name.
func (f *Frame) Variable(name string) (Variable, bool) {
	for _, v := range f.vars {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}

// Column returns the raw column for v, or nil if there is none.
func (f *Frame) Column(v Variable) table.Slice {
	return f.t.Column(v.Name)
}

// Numeric returns a copy of column v converted to []float64. It
// panics if f has no column v or if the column is not numeric.
func (f *Frame) Numeric(v Variable) []float64 {
	col := f.t.Column(v.Name)
	if col == nil {
		panic(fmt.Sprintf("unknown variable %q", v.Name))
	}
	if xs, ok := col.([]float64); ok {
		return append([]float64(nil), xs...)
	}
	var xs []float64
	slice.Convert(&xs, col)
	return xs
}

// NumericOr returns column v, or a column filled with def if f has
// no column v.
func (f *Frame) NumericOr(v Variable, def float64) []float64 {
	if !f.Has(v) {
		return series.Fill(f.Len(), def)
	}
	return f.Numeric(v)
}

// Range returns the span of the finite values of column v.
func (f *Frame) Range(v Variable) (series.Span, bool) {
	if !f.Has(v) {
		return series.Span{}, false
	}
	return series.Range(f.Numeric(v))
}

// Slice returns a frame with the rows of f at indices, in order.
func (f *Frame) Slice(indices []int) *Frame {
	b := table.NewBuilder(nil)
	for _, v := range f.vars {
		b.Add(v.Name, slice.Select(f.t.Column(v.Name), indices))
	}
	return &Frame{t: b.Done(), vars: f.Variables()}
}

// Builder returns a Builder initialized with the columns of f.
func (f *Frame) Builder() *Builder {
	return &Builder{b: table.NewBuilder(f.t), vars: f.Variables()}
}

// Rebind returns a frame over t that keeps the variable metadata of f
// for the columns they share. t is typically a group of f's table.
func (f *Frame) Rebind(t *table.Table) *Frame {
	nf := &Frame{t: t}
	for _, name := range t.Columns() {
		v, ok := f.Variable(name)
		if !ok {
			v = NewVar(name)
		}
		nf.vars = append(nf.vars, v)
	}
	return nf
}

// Concat returns the rows of fs, in order, as one frame. The result
// has the union of the variables of fs; a frame missing a variable
// contributes NaNs. All columns must be numeric.
func Concat(fs ...*Frame) *Frame {
	switch len(fs) {
	case 0:
		return Empty
	case 1:
		return fs[0]
	}
	var vars []Variable
	seen := map[string]bool{}
	for _, f := range fs {
		for _, v := range f.vars {
			if !seen[v.Name] {
				seen[v.Name] = true
				vars = append(vars, v)
			}
		}
	}
	b := NewBuilder()
	for _, v := range vars {
		var xs []float64
		for _, f := range fs {
			xs = append(xs, f.NumericOr(v, math.NaN())...)
		}
		b.PutNumeric(v, xs)
	}
	return b.Done()
}

func (f *Frame) String() string {
	return fmt.Sprintf("Frame%v[%d]", f.vars, f.Len())
}

// A Builder constructs a Frame.
//
// All columns added to a Builder must have the same length; adding a
// column of a different length panics.
type Builder struct {
	b    *table.Builder
	vars []Variable
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{b: table.NewBuilder(nil)}
}

// PutNumeric sets column v to xs, replacing any existing column v.
func (b *Builder) PutNumeric(v Variable, xs []float64) *Builder {
	if xs == nil {
		xs = []float64{}
	}
	return b.Put(v, xs)
}

// Put sets column v to an arbitrary slice.
func (b *Builder) Put(v Variable, col table.Slice) *Builder {
	b.b.Add(v.Name, col)
	for i, ov := range b.vars {
		if ov.Name == v.Name {
			b.vars[i] = v
			return b
		}
	}
	b.vars = append(b.vars, v)
	return b
}

// Remove deletes column v.
func (b *Builder) Remove(v Variable) *Builder {
	b.b.Add(v.Name, nil)
	for i, ov := range b.vars {
		if ov.Name == v.Name {
			b.vars = append(b.vars[:i:i], b.vars[i+1:]...)
			break
		}
	}
	return b
}

// Has returns true if the builder has a column for v.
func (b *Builder) Has(v Variable) bool {
	return b.b.Has(v.Name)
}

// Done returns the constructed Frame.
func (b *Builder) Done() *Frame {
	return &Frame{t: b.b.Done(), vars: append([]Variable(nil), b.vars...)}
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stat implements statistical transforms ("stats") that turn
// a layer's mapped data into derived data for geoms to draw: kernel
// density estimates, contours, bins, box plot summaries, QQ pairs,
// and so on.
//
// A Stat transforms the data of one group. Apply runs a stat over
// every group of a frame and concatenates the results. All stats are
// pure: they hold only their immutable configuration and may be
// applied any number of times.
//
// Stats read their inputs from the transform variables of package
// frame (frame.TX, frame.TY, frame.TWeight, ...) and write stat
// variables (Vars.X, Vars.Density, ...). An empty input, after
// dropping non-finite values, yields a frame with all of the stat's
// columns and no rows. Configuration problems are reported by the
// New* constructors.
package stat

import (
	"log"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// Warning is a logger for conditions that don't prevent a stat from
// producing a result, such as a clamped bin count.
var Warning = log.New(os.Stderr, "[stat] ", log.Lshortfile)

// A Stat is a statistical transform of one group of data.
type Stat interface {
	// Apply computes the stat for data, which holds a single
	// group.
	Apply(data *frame.Frame, ctx frame.Context) *frame.Frame

	// Consumes returns the aesthetics the stat reads.
	Consumes() []aes.Aes

	// DefaultMapping returns the aesthetic mapping a layer uses
	// for this stat's output unless it overrides it.
	DefaultMapping() aes.Mapping
}

// A Normalizer is a Stat that must post-process the combined result
// of all groups, for example to scale widths across groups.
type Normalizer interface {
	Stat
	Normalize(all *frame.Frame) *frame.Frame
}

// Apply applies s to each group of data and concatenates the results.
// Groups are given by groupVar; if data has no such column, all of
// data is one group. Each output row carries its group in groupVar.
func Apply(s Stat, data *frame.Frame, ctx frame.Context, groupVar frame.Variable) *frame.Frame {
	var out *frame.Frame
	if !data.Has(groupVar) {
		out = s.Apply(data, ctx)
	} else {
		g := table.GroupBy(data.Table(), groupVar.Name)
		var parts []*frame.Frame
		for _, gid := range g.Tables() {
			part := s.Apply(data.Rebind(g.Table(gid)), ctx)
			if val, ok := gid.Label().(float64); ok {
				part = part.Builder().PutNumeric(groupVar, series.Fill(part.Len(), val)).Done()
			}
			parts = append(parts, part)
		}
		out = frame.Concat(parts...)
	}
	if n, ok := s.(Normalizer); ok {
		out = n.Normalize(out)
	}
	return out
}

// hasRequiredValues returns true if data has at least one finite
// value for each of vars.
func hasRequiredValues(data *frame.Frame, vars ...frame.Variable) bool {
	for _, v := range vars {
		if !data.HasNonNull(v) {
			return false
		}
	}
	return true
}

// emptyStatValues returns a frame with an empty column for each of
// the stat variables in m.
func emptyStatValues(m aes.Mapping, extra ...frame.Variable) *frame.Frame {
	b := frame.NewBuilder()
	for _, a := range aes.All() {
		if v, ok := m[a]; ok && v.IsStat() && !b.Has(v) {
			b.PutNumeric(v, []float64{})
		}
	}
	for _, v := range extra {
		if !b.Has(v) {
			b.PutNumeric(v, []float64{})
		}
	}
	return b.Done()
}

// buildFrame returns a frame with the given columns, in order.
func buildFrame(cols ...column) *frame.Frame {
	b := frame.NewBuilder()
	for _, c := range cols {
		b.PutNumeric(c.v, c.xs)
	}
	return b.Done()
}

type column struct {
	v  frame.Variable
	xs []float64
}

func col(v frame.Variable, xs []float64) column {
	return column{v, xs}
}

// weightsOr returns the weight column of data, or all ones.
func weightsOr(data *frame.Frame) []float64 {
	return data.NumericOr(frame.TWeight, 1)
}

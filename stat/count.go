// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// Count counts the (weighted) rows of a group at each distinct X.
//
// The result has one row per distinct X, in increasing order, with
// ..x.., ..count.., ..prop.. (count over the group's total) and
// ..sumprop.. (count over the total of every group at the same X).
type Count struct{}

func (Count) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Weight}
}

func (Count) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Count}
}

var countOutputs = []frame.Variable{Vars.X, Vars.Count, Vars.Prop, Vars.SumProp}

func (Count) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	if !hasRequiredValues(data, frame.TX) {
		return emptyStatValues(nil, countOutputs...)
	}
	xs, ws := series.FinitePairs(data.Numeric(frame.TX), weightsOr(data))
	var order []float64
	counts := map[float64]float64{}
	for i, x := range xs {
		if _, ok := counts[x]; !ok {
			order = append(order, x)
		}
		counts[x] += ws[i]
	}
	sort.Float64s(order)

	total := vec.Sum(ws)
	cs := make([]float64, len(order))
	prop := make([]float64, len(order))
	for i, x := range order {
		cs[i] = counts[x]
		if total != 0 {
			prop[i] = cs[i] / total
		}
	}
	return buildFrame(
		col(Vars.X, order),
		col(Vars.Count, cs),
		col(Vars.Prop, prop),
		col(Vars.SumProp, prop),
	)
}

// Normalize recomputes ..sumprop.. across groups.
func (Count) Normalize(all *frame.Frame) *frame.Frame {
	if all.Len() == 0 {
		return all
	}
	xs, cs := all.Numeric(Vars.X), all.Numeric(Vars.Count)
	totals := map[float64]float64{}
	for i, x := range xs {
		totals[x] += cs[i]
	}
	sumProp := make([]float64, len(xs))
	for i, x := range xs {
		if t := totals[x]; t != 0 {
			sumProp[i] = cs[i] / t
		}
	}
	return all.Builder().PutNumeric(Vars.SumProp, sumProp).Done()
}

// xGroup is the Y values at one distinct X.
type xGroup struct {
	x  float64
	ys []float64
}

// groupByX collects the Y values of each distinct X. Groups are in
// increasing X order and each group's Y values are sorted.
func groupByX(xs, ys []float64) []xGroup {
	var groups []xGroup
	index := map[float64]int{}
	for i, x := range xs {
		g, ok := index[x]
		if !ok {
			g = len(groups)
			index[x] = g
			groups = append(groups, xGroup{x: x})
		}
		groups[g].ys = append(groups[g].ys, ys[i])
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].x < groups[j].x })
	for _, g := range groups {
		sort.Float64s(g.ys)
	}
	return groups
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// ECDF is the empirical cumulative distribution of the X values of a
// group, optionally weighted.
//
// The result has one row per distinct X with ..x.., ..y.. (the
// cumulative density) and ..count.. (the cumulative weight). Unless
// Widen is 1, a 0 row and a 1 row pad the domain at either end.
type ECDF struct {
	// Widen is the factor by which to pad the domain of the
	// result. If 0, it is 1.1. Values below 1 are treated as 1.
	Widen float64
}

func (s *ECDF) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Weight}
}

func (s *ECDF) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
}

var ecdfOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.Count}

func (s *ECDF) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	if !hasRequiredValues(data, frame.TX) {
		return emptyStatValues(nil, ecdfOutputs...)
	}
	xs, ws := series.FinitePairs(data.Numeric(frame.TX), weightsOr(data))
	if len(xs) == 0 {
		return emptyStatValues(nil, ecdfOutputs...)
	}
	in := table.NewBuilder(nil).Add("x", xs).Add("w", ws).Done()
	widen := s.Widen
	if widen != 0 && widen < 1 {
		widen = 1
	}
	g := ggstat.ECDF{X: "x", W: "w", Domain: ggstat.DomainData{Widen: widen}}.F(in)
	t := g.Table(g.Tables()[0])

	var ox, oy, oc []float64
	slice.Convert(&ox, t.MustColumn("x"))
	slice.Convert(&oy, t.MustColumn("cumulative density"))
	slice.Convert(&oc, t.MustColumn("cumulative weight"))
	return buildFrame(col(Vars.X, ox), col(Vars.Y, oy), col(Vars.Count, oc))
}

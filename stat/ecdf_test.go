// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"testing"

	"github.com/aclements/go-plotcore/frame"
	"github.com/google/go-cmp/cmp"
)

func TestECDF(t *testing.T) {
	data := xyFrame([]float64{3, 1, 2, 2}, nil)

	out := (&ECDF{Widen: 1}).Apply(data, frame.EmptyContext)
	if d := cmp.Diff([]float64{1, 2, 3}, out.Numeric(Vars.X)); d != "" {
		t.Errorf("x (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0.25, 0.75, 1}, out.Numeric(Vars.Y), approx); d != "" {
		t.Errorf("y (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{1, 3, 4}, out.Numeric(Vars.Count), approx); d != "" {
		t.Errorf("count (-want +got):\n%s", d)
	}

	// The default pads the domain by 5% of the data range on
	// each side with a 0 row and a 1 row.
	out = (&ECDF{}).Apply(data, frame.EmptyContext)
	if d := cmp.Diff([]float64{0.9, 1, 2, 3, 3.1}, out.Numeric(Vars.X), approx); d != "" {
		t.Errorf("padded x (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0, 0.25, 0.75, 1, 1}, out.Numeric(Vars.Y), approx); d != "" {
		t.Errorf("padded y (-want +got):\n%s", d)
	}
}

func TestECDFWeighted(t *testing.T) {
	data := frame.NewBuilder().
		PutNumeric(frame.TX, []float64{1, 2}).
		PutNumeric(frame.TWeight, []float64{3, 1}).
		Done()
	out := (&ECDF{Widen: 1}).Apply(data, frame.EmptyContext)
	if d := cmp.Diff([]float64{0.75, 1}, out.Numeric(Vars.Y), approx); d != "" {
		t.Errorf("y (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{3, 4}, out.Numeric(Vars.Count), approx); d != "" {
		t.Errorf("count (-want +got):\n%s", d)
	}
}

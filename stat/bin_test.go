// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"
	"testing"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/frame"
	"github.com/google/go-cmp/cmp"
)

func TestBinCountAndWidth(t *testing.T) {
	for _, tc := range []struct {
		len   float64
		opts  BinOptions
		count int
		width float64
	}{
		{10, BinOptions{Count: 5}, 5, 2},
		{10, BinOptions{Width: 3}, 4, 3},
		{10, BinOptions{Count: 5, Width: 4}, 3, 4},
		{0, BinOptions{Count: 5}, 5, 1},
		{1000, BinOptions{Width: 1}, MaxBinCount, 1},
		{10, BinOptions{Count: 10000}, MaxBinCount, 10.0 / MaxBinCount},
	} {
		count, width := binCountAndWidth(tc.len, tc.opts)
		if count != tc.count || math.Abs(width-tc.width) > 1e-12 {
			t.Errorf("binCountAndWidth(%v, %+v) = %d, %v; want %d, %v", tc.len, tc.opts, count, width, tc.count, tc.width)
		}
	}
}

func TestBinCounts(t *testing.T) {
	xs := []float64{1, 2, 2, 3, math.NaN(), 4, 7, math.Inf(1), 9, 10}
	for _, bins := range []BinOptions{{}, {Count: 3}, {Width: 0.7}, {Count: 1}} {
		for _, anchor := range []Anchor{AnchorNone, AnchorCenter, AnchorBoundary} {
			s := &Bin{Bins: bins, AnchorKind: anchor, Anchor: 0.3}
			out := s.Apply(xyFrame(xs, nil), frame.EmptyContext)
			if got := vec.Sum(out.Numeric(Vars.Count)); got != 8 {
				t.Errorf("%+v anchor %v: counts sum to %v, want 8", bins, anchor, got)
			}
			if got := vec.Sum(out.Numeric(Vars.SumProp)); math.Abs(got-1) > 1e-9 {
				t.Errorf("%+v anchor %v: sumprop sums to %v, want 1", bins, anchor, got)
			}
		}
	}
}

func TestBinWeighted(t *testing.T) {
	data := frame.NewBuilder().
		PutNumeric(frame.TX, []float64{0, 0, 1}).
		PutNumeric(frame.TWeight, []float64{2, 3, 5}).
		Done()
	out := (&Bin{Bins: BinOptions{Count: 2}}).Apply(data, frame.EmptyContext)
	if d := cmp.Diff(5.0, out.Numeric(Vars.Count)[0]); d != "" {
		t.Errorf("first bin (-want +got):\n%s", d)
	}
	w := out.Numeric(Vars.Binwidth)[0]
	if got := vec.Sum(out.Numeric(Vars.Density)) * w; math.Abs(got-1) > 1e-9 {
		t.Errorf("density area %v, want 1", got)
	}
}

func TestDotDensity(t *testing.T) {
	xs := []float64{1, 1.2, 1.5, 3, 3.1, 8}
	centers, counts := dotDensityBins(xs, []float64{1, 1, 1, 1, 1, 1}, 1)
	if d := cmp.Diff([]float64{1.25, 3.05, 8}, centers, approx); d != "" {
		t.Errorf("centers (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{3, 2, 1}, counts); d != "" {
		t.Errorf("counts (-want +got):\n%s", d)
	}
}

func TestDotplot(t *testing.T) {
	xs := []float64{5, 1, 2, 2, 9}
	for _, m := range []DotplotMethod{DotDensity, HistoDot} {
		out := (&Dotplot{Method: m, Bins: BinOptions{Width: 1}}).Apply(xyFrame(xs, nil), frame.EmptyContext)
		if got := vec.Sum(out.Numeric(Vars.Count)); got != 5 {
			t.Errorf("%v: counts sum to %v, want 5", m, got)
		}
		for _, c := range out.Numeric(Vars.Count) {
			if c == 0 {
				t.Errorf("%v: dot plots have no empty bins", m)
			}
		}
	}
}

func TestBinHex(t *testing.T) {
	xs := []float64{0, 0.1, 5, 5, 10, 10}
	ys := []float64{0, 0.1, 5, 5, 10, 10}
	s := &BinHex{BinsX: BinOptions{Count: 5}, BinsY: BinOptions{Count: 5}}
	out := s.Apply(xyFrame(xs, ys), frame.EmptyContext)
	if got := vec.Sum(out.Numeric(Vars.Count)); got != 6 {
		t.Errorf("counts sum to %v, want 6", got)
	}
	if d := cmp.Diff([]float64{2, 2, 2}, out.Numeric(Vars.Count)); d != "" {
		t.Errorf("counts (-want +got):\n%s", d)
	}
	w, h := out.Numeric(Vars.Width)[0], out.Numeric(Vars.Height)[0]
	if math.Abs(w-2) > 1e-12 || math.Abs(h-2*binHeightToHeight) > 1e-12 {
		t.Errorf("hexagon size %v×%v, want 2×%v", w, h, 2*binHeightToHeight)
	}

	s.KeepEmpty = true
	all := s.Apply(xyFrame(xs, ys), frame.EmptyContext)
	if all.Len() <= out.Len() {
		t.Errorf("KeepEmpty: want more than %d hexagons, got %d", out.Len(), all.Len())
	}
}

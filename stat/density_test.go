// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"
	"testing"

	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
	"github.com/google/go-cmp/cmp"
)

func TestDensityIntegral(t *testing.T) {
	xs := []float64{1, 2, 2.5, 3, 4, 7, 8}
	for _, k := range []Kernel{KernelGaussian, KernelBiweight, KernelEpanechnikov, KernelCosine} {
		s := &Density{KernelOptions: KernelOptions{Kernel: k}}
		out := s.Apply(xyFrame(xs, nil), frame.EmptyContext)
		// Duplicated quantile boundary rows have zero width, so
		// they don't affect the integral.
		got := trapezoid(out.Numeric(Vars.X), out.Numeric(Vars.Density))
		if math.Abs(got-1) > 0.01 {
			t.Errorf("%v: density integrates to %v, want 1", k, got)
		}
	}
}

func TestDensitySinglePoint(t *testing.T) {
	s, err := NewDensity(Density{KernelOptions: KernelOptions{N: 512}})
	if err != nil {
		t.Fatal(err)
	}
	out := s.Apply(xyFrame([]float64{1.0}, nil), frame.EmptyContext)
	xs, ds := out.Numeric(Vars.X), out.Numeric(Vars.Density)
	best := 0
	for i, d := range ds {
		if d > ds[best] {
			best = i
		}
	}
	if step := 6.0 / 511; math.Abs(xs[best]-1) > step {
		t.Errorf("peak at %v, want within %v of 1", xs[best], step)
	}
	for i, c := range out.Numeric(Vars.Count) {
		if math.Abs(c-ds[i]) > 1e-12 {
			t.Fatalf("count %v != density %v for a single unit weight", c, ds[i])
		}
	}
}

func TestDensityFastMatchesFull(t *testing.T) {
	var xs []float64
	for i := 0; i < 200; i++ {
		xs = append(xs, math.Sin(float64(i))*10)
	}
	ws := series.Fill(len(xs), 1)
	sortByValue(xs, ws)
	d := newKDE(xs, ws, KernelGaussian, Bandwidth(BandwidthNRD0, xs), 1)
	for _, x := range []float64{-12, -3, 0, 0.5, 9.9} {
		if full, fast := d.full(x), d.fast(x); math.Abs(full-fast) > 1e-5 {
			t.Errorf("at %v: full %v, fast %v", x, full, fast)
		}
	}
}

func TestBandwidth(t *testing.T) {
	if bw := Bandwidth(BandwidthNRD0, []float64{3}); bw != 1 {
		t.Errorf("single value: want fallback 1, got %v", bw)
	}
	xs := []float64{1, 2, 3, 4, 5}
	nrd0, nrd := Bandwidth(BandwidthNRD0, xs), Bandwidth(BandwidthNRD, xs)
	if math.Abs(nrd/nrd0-1.06/0.9) > 1e-12 {
		t.Errorf("NRD/NRD0 = %v, want %v", nrd/nrd0, 1.06/0.9)
	}
}

func TestDensityTrim(t *testing.T) {
	s := &Density{Trim: true}
	out := s.Apply(xyFrame([]float64{2, 3, 5}, nil), frame.EmptyContext)
	r, _ := out.Range(Vars.X)
	if r != (series.Span{Lo: 2, Hi: 5}) {
		t.Errorf("trimmed range: want [2, 5], got %v", r)
	}

	ctx := frame.Ranges{X: &series.Span{Lo: 0, Hi: 10}}
	out = (&Density{}).Apply(xyFrame([]float64{2, 3, 5}, nil), ctx)
	r, _ = out.Range(Vars.X)
	if r != (series.Span{Lo: 0, Hi: 10}) {
		t.Errorf("context range: want [0, 10], got %v", r)
	}
}

func TestDensityQuantiles(t *testing.T) {
	out := (&Density{}).Apply(xyFrame([]float64{1, 2, 3, 4, 5}, nil), frame.EmptyContext)
	seen := map[float64]bool{}
	for _, q := range out.Numeric(Vars.Quantile) {
		seen[q] = true
	}
	want := map[float64]bool{0.25: true, 0.5: true, 0.75: true, 1: true}
	if d := cmp.Diff(want, seen); d != "" {
		t.Errorf("quantile bands (-want +got):\n%s", d)
	}
}

func TestYDensityWidths(t *testing.T) {
	data := xyFrame([]float64{0, 0, 0, 1, 1}, []float64{1, 2, 3, 1, 5})
	ctx := frame.Ranges{Y: &series.Span{Lo: 0, Hi: 6}}
	for _, scale := range []ViolinScale{ScaleArea, ScaleCount, ScaleWidth} {
		out := Apply(&YDensity{Scale: scale}, data, ctx, frame.TGroup)
		ws := out.Numeric(Vars.ViolinWidth)
		if m := series.Max(ws); math.Abs(m-1) > 1e-9 {
			t.Errorf("%v: max violin width %v, want 1", scale, m)
		}
	}
}

func TestYDensityDataRange(t *testing.T) {
	data := xyFrame([]float64{0, 0, 0, 0, 0, 0}, []float64{100, 101, 102, 103, 104, 105})
	out := Apply(&YDensity{}, data, frame.EmptyContext, frame.TGroup)
	yr, ok := series.Range(out.Numeric(Vars.Y))
	if !ok || yr.Lo >= 100 || yr.Hi <= 105 {
		t.Errorf("y range %v, want the data range widened", yr)
	}
	if m := series.Max(out.Numeric(Vars.Density)); !(m > 0) {
		t.Errorf("max density %v, want > 0", m)
	}
	for i, w := range out.Numeric(Vars.ViolinWidth) {
		if math.IsNaN(w) {
			t.Fatalf("violin width %d is NaN", i)
		}
	}
}

func TestDensityRidgesHeight(t *testing.T) {
	data := xyFrame([]float64{1, 2, 3, 1, 5}, []float64{0, 0, 0, 1, 1})
	out := Apply(&DensityRidges{}, data, frame.EmptyContext, frame.TGroup)
	if m := series.Max(out.Numeric(Vars.Height)); math.Abs(m-1) > 1e-9 {
		t.Errorf("max height %v, want 1", m)
	}
	ys := map[float64]bool{}
	for _, y := range out.Numeric(Vars.Y) {
		ys[y] = true
	}
	if len(ys) != 2 {
		t.Errorf("want 2 ridges, got %v", ys)
	}
}

func TestSinaRows(t *testing.T) {
	data := xyFrame([]float64{0, 0, 0, 1}, []float64{1, 2, 3, 4})
	out := Apply(&Sina{}, data, frame.EmptyContext, frame.TGroup)
	if out.Len() != 4 {
		t.Fatalf("want one row per observation, got %d", out.Len())
	}
	if out.Has(Vars.N) {
		t.Errorf("Sina output should not carry the internal row flag")
	}
	if d := cmp.Diff([]float64{1, 2, 3, 4}, out.Numeric(Vars.Y)); d != "" {
		t.Errorf("y (-want +got):\n%s", d)
	}
}

func TestDensity2D(t *testing.T) {
	data := xyFrame([]float64{0, 1, 0, 1, 0.5}, []float64{0, 0, 1, 1, 0.5})
	s, err := NewDensity2D(Density2D{Kernel2DOptions: Kernel2DOptions{NX: 40, NY: 30}})
	if err != nil {
		t.Fatal(err)
	}
	out := s.Apply(data, frame.EmptyContext)
	if out.Len() != 40*30 {
		t.Fatalf("want %d grid points, got %d", 40*30, out.Len())
	}
	if m := series.Max(out.Numeric(Vars.Scaled)); math.Abs(m-1) > 1e-12 {
		t.Errorf("max scaled %v, want 1", m)
	}
	for _, v := range []frame.Variable{Vars.X, Vars.Y, Vars.Density, Vars.Count, Vars.Scaled} {
		if !out.Has(v) {
			t.Errorf("raw grid: want column %v", v)
		}
	}
	if out.Has(Vars.Level) {
		t.Errorf("raw grid: unexpected level column")
	}

	s.Contour = true
	out = s.Apply(data, frame.EmptyContext)
	if out.Len() == 0 || !out.Has(Vars.Level) {
		t.Errorf("contour mode: want iso-lines, got %v", out)
	}
}

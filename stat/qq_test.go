// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"
	"testing"

	"github.com/aclements/go-plotcore/frame"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestQQ(t *testing.T) {
	s, err := NewQQ(QQOptions{})
	if err != nil {
		t.Fatal(err)
	}
	out := s.Apply(xyFrame([]float64{0, 0, 0}, []float64{3, 1, 2}), frame.EmptyContext)
	if d := cmp.Diff([]float64{1, 2, 3}, out.Numeric(Vars.Sample)); d != "" {
		t.Errorf("sample (-want +got):\n%s", d)
	}
	th := out.Numeric(Vars.Theoretical)
	if math.Abs(th[1]) > 1e-12 || math.Abs(th[0]+th[2]) > 1e-12 || th[0] >= 0 {
		t.Errorf("normal quantiles at (i+0.5)/3 should be symmetric about 0; got %v", th)
	}
}

func TestQuantilers(t *testing.T) {
	for _, tc := range []struct {
		d      Distribution
		params []float64
		p      float64
		want   float64
	}{
		{DistUniform, []float64{2, 4}, 0.25, 2.5},
		{DistExp, nil, 0.5, math.Ln2},
		{DistNormal, []float64{10}, 0.5, 10},
		{DistChi2, []float64{2}, 0.5, 2 * math.Ln2},
	} {
		q, err := tc.d.Quantiler(tc.params...)
		if err != nil {
			t.Errorf("%v%v: %v", tc.d, tc.params, err)
			continue
		}
		if got := q.Quantile(tc.p); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%v%v.Quantile(%v) = %v, want %v", tc.d, tc.params, tc.p, got, tc.want)
		}
	}
	if _, err := NewQQ(QQOptions{Distribution: DistT, Params: []float64{1, 2}}); err == nil {
		t.Errorf("t with two parameters: want error")
	}
}

func TestQQ2(t *testing.T) {
	data := xyFrame([]float64{5, 4, 3, 2, 1}, []float64{7, 8, 9, math.NaN(), math.NaN()})
	out := QQ2{}.Apply(data, frame.EmptyContext)
	xs := out.Numeric(Vars.X)
	if len(xs) != 3 {
		t.Fatalf("want the smaller sample's size 3, got %d", len(xs))
	}
	if math.Abs(xs[1]-3) > 1e-9 {
		t.Errorf("middle quantile of [1..5]: want 3, got %v", xs[1])
	}
	if d := cmp.Diff([]float64{7, 8, 9}, out.Numeric(Vars.Y)); d != "" {
		t.Errorf("y (-want +got):\n%s", d)
	}
}

func TestQQLine(t *testing.T) {
	const n = 9
	var sample []float64
	for _, p := range ppoints(n) {
		sample = append(sample, 2*distuv.UnitNormal.Quantile(p)+1)
	}
	s, err := NewQQLine(QQOptions{}, [2]float64{})
	if err != nil {
		t.Fatal(err)
	}
	out := s.Apply(xyFrame(make([]float64, n), sample), frame.EmptyContext)
	if d := cmp.Diff([]float64{2, 2}, out.Numeric(Vars.Slope), approx); d != "" {
		t.Errorf("slope (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{1, 1}, out.Numeric(Vars.Intercept), approx); d != "" {
		t.Errorf("intercept (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{sample[0], sample[n-1]}, out.Numeric(Vars.Sample), approx); d != "" {
		t.Errorf("line ends (-want +got):\n%s", d)
	}
}

func TestQQ2LineDegenerate(t *testing.T) {
	data := xyFrame([]float64{3, 3, 3}, []float64{2, 1, 3})
	out := (&QQ2Line{}).Apply(data, frame.EmptyContext)
	if d := cmp.Diff([]float64{1, 3}, out.Numeric(Vars.X)); d != "" {
		t.Errorf("x (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{1, 3}, out.Numeric(Vars.Y)); d != "" {
		t.Errorf("y (-want +got):\n%s", d)
	}
	if _, err := NewQQ2Line(QQ2Line{Quantiles: [2]float64{0.8, 0.2}}); err == nil {
		t.Errorf("decreasing quantiles: want error")
	}
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-plotcore/frame"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// xyFrame returns a frame with transform columns x and, if ys is
// non-nil, y.
func xyFrame(xs, ys []float64) *frame.Frame {
	b := frame.NewBuilder().PutNumeric(frame.TX, xs)
	if ys != nil {
		b.PutNumeric(frame.TY, ys)
	}
	return b.Done()
}

// trapezoid integrates the piecewise linear function (xs, ys).
func trapezoid(xs, ys []float64) float64 {
	var sum float64
	for i := 1; i < len(xs); i++ {
		sum += (xs[i] - xs[i-1]) * (ys[i] + ys[i-1]) / 2
	}
	return sum
}

func TestApplyGroups(t *testing.T) {
	data := frame.NewBuilder().
		PutNumeric(frame.TX, []float64{1, 1, 2, 1, 3}).
		PutNumeric(frame.TGroup, []float64{0, 0, 0, 1, 1}).
		Done()
	out := Apply(Count{}, data, frame.EmptyContext, frame.TGroup)

	if d := cmp.Diff([]float64{1, 2, 1, 3}, out.Numeric(Vars.X)); d != "" {
		t.Errorf("x (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{2, 1, 1, 1}, out.Numeric(Vars.Count)); d != "" {
		t.Errorf("count (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0, 0, 1, 1}, out.Numeric(frame.TGroup)); d != "" {
		t.Errorf("group (-want +got):\n%s", d)
	}
	// Within a group, prop sums to 1.
	if d := cmp.Diff([]float64{2.0 / 3, 1.0 / 3, 0.5, 0.5}, out.Numeric(Vars.Prop), approx); d != "" {
		t.Errorf("prop (-want +got):\n%s", d)
	}
	// Across groups at x=1, sumprop sums to 1.
	if d := cmp.Diff([]float64{2.0 / 3, 1, 1.0 / 3, 1}, out.Numeric(Vars.SumProp), approx); d != "" {
		t.Errorf("sumprop (-want +got):\n%s", d)
	}
}

func TestApplyUngrouped(t *testing.T) {
	out := Apply(Count{}, xyFrame([]float64{2, 2}, nil), frame.EmptyContext, frame.TGroup)
	if out.Has(frame.TGroup) {
		t.Errorf("ungrouped result should have no group column")
	}
	if d := cmp.Diff([]float64{2}, out.Numeric(Vars.Count)); d != "" {
		t.Errorf("count (-want +got):\n%s", d)
	}
}

func TestParseOptions(t *testing.T) {
	if k, err := ParseKernel("Quartic"); err != nil || k != KernelBiweight {
		t.Errorf("ParseKernel(Quartic) = %v, %v", k, err)
	}
	if m, err := ParsePointDensityMethod("neighbors"); err != nil || m != Neighbours {
		t.Errorf("ParsePointDensityMethod(neighbors) = %v, %v", m, err)
	}
	if a, err := ParseAnchor("centre"); err != nil || a != AnchorCenter {
		t.Errorf("ParseAnchor(centre) = %v, %v", a, err)
	}

	_, err := ParseKernel("gauss")
	var uerr *UnknownOptionError
	if !errors.As(err, &uerr) {
		t.Fatalf("ParseKernel(gauss): want *UnknownOptionError, got %v", err)
	}
	if uerr.Value != "gauss" || uerr.Options[0] != "gaussian" {
		t.Errorf("unexpected error %+v", uerr)
	}
	if _, err := ParseDistribution("cauchy"); err == nil {
		t.Errorf("ParseDistribution(cauchy): want error")
	}
}

func TestConfigErrors(t *testing.T) {
	_, err := NewDensity(Density{KernelOptions: KernelOptions{N: MaxDensityN + 1}})
	if !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("N=%d: want ErrTooManyPoints, got %v", MaxDensityN+1, err)
	}
	var cerr *ConfigError
	if !errors.As(err, &cerr) || cerr.Stat != "density" || cerr.Field != "N" {
		t.Errorf("want density N ConfigError, got %v", err)
	}
	if _, err := NewDensity2D(Density2D{Kernel2DOptions: Kernel2DOptions{NY: 1000}}); !errors.Is(err, ErrTooManyPoints) {
		t.Errorf("NY=1000: want ErrTooManyPoints, got %v", err)
	}
	if _, err := NewDensity(Density{}); err != nil {
		t.Errorf("zero Density: %v", err)
	}
	if _, err := NewBoxplot(Boxplot{Coef: -1}); err == nil {
		t.Errorf("negative coef: want error")
	}
}

// Every stat returns its columns, with no rows, for empty input.
func TestEmptyInput(t *testing.T) {
	empty := xyFrame([]float64{math.NaN()}, []float64{math.NaN()})
	for _, s := range []Stat{
		&Density{}, &Density2D{}, &Density2DF{}, &YDensity{}, &Sina{},
		&DensityRidges{}, &Bin{}, &Dotplot{}, &BinHex{}, Count{},
		&Boxplot{}, &BoxplotOutlier{}, &Summary{}, &QQ{}, QQ2{},
		&QQLine{}, &QQ2Line{}, &ECDF{}, &Smooth{}, &PointDensity{},
		&Contour{}, &ContourFill{},
	} {
		for _, data := range []*frame.Frame{frame.Empty, empty} {
			out := s.Apply(data, frame.EmptyContext)
			if out.Len() != 0 {
				t.Errorf("%T: want no rows, got %d", s, out.Len())
			}
			if len(out.Variables()) == 0 {
				t.Errorf("%T: want stat columns, got none", s)
			}
		}
	}
}

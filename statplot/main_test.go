// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/stat"
)

func TestParseOptions(t *testing.T) {
	o, err := parseOptions(`bw=0.5 'kernel=epanechnikov' trim=true quantiles=0.25,0.75`)
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Float("bw", 0); got != 0.5 {
		t.Errorf("bw = %v, want 0.5", got)
	}
	if got := o.String("kernel", ""); got != "epanechnikov" {
		t.Errorf("kernel = %q", got)
	}
	if !o.Bool("trim", false) {
		t.Errorf("trim = false, want true")
	}
	if got := o.Floats("quantiles"); !reflect.DeepEqual(got, []float64{0.25, 0.75}) {
		t.Errorf("quantiles = %v", got)
	}
	if got := o.Int("n", 42); got != 42 {
		t.Errorf("default n = %v, want 42", got)
	}
	if err := o.Err(); err != nil {
		t.Errorf("unexpected error %v", err)
	}

	for _, bad := range []string{"novalue", "=1", "a=1 a=2", `a='unterminated`} {
		if _, err := parseOptions(bad); err == nil {
			t.Errorf("parseOptions(%q) succeeded", bad)
		}
	}
}

func TestOptionsErr(t *testing.T) {
	o, _ := parseOptions("n=many extra=1")
	o.Int("n", 0)
	if err := o.Err(); err == nil || !strings.Contains(err.Error(), "option n") {
		t.Errorf("want parse error for n, got %v", err)
	}

	o, _ = parseOptions("zeta=1 alpha=2")
	if err := o.Err(); err == nil || !strings.Contains(err.Error(), "alpha, zeta") {
		t.Errorf("want unknown options alpha, zeta, got %v", err)
	}
}

func TestBuildStat(t *testing.T) {
	build := func(name, opt string) (stat.Stat, error) {
		o, err := parseOptions(opt)
		if err != nil {
			t.Fatal(err)
		}
		s, _, err := buildStat(name, o)
		return s, err
	}

	s, err := build("density", "bw=0.5 kernel=epanechnikov")
	if err != nil {
		t.Fatal(err)
	}
	d := s.(*stat.Density)
	if d.Bandwidth != 0.5 || d.Kernel != stat.KernelEpanechnikov {
		t.Errorf("got %+v", d.KernelOptions)
	}

	for name := range stats {
		if _, err := build(name, ""); err != nil {
			t.Errorf("stat %s with no options: %v", name, err)
		}
	}

	for _, c := range []struct{ name, opt string }{
		{"nosuchstat", ""},
		{"density", "kernel=nosuchkernel"},
		{"density", "bins=10"},
		{"density", "n=100000"},
		{"qqline", "quantiles=0.1"},
		{"summary", "quantiles=0.1,0.5"},
	} {
		if _, err := build(c.name, c.opt); err == nil {
			t.Errorf("stat %s with %q succeeded", c.name, c.opt)
		}
	}
}

func TestInput(t *testing.T) {
	src, err := readCSV(strings.NewReader("g,x,y\nb,1,10\na,2,20\nb,3,30\n"))
	if err != nil {
		t.Fatal(err)
	}
	data, err := roles{x: "x", group: "g"}.input(src, []string{"y"})
	if err != nil {
		t.Fatal(err)
	}
	if got := data.Numeric(frame.TX); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("x = %v", got)
	}
	if got := data.Numeric(frame.TY); !reflect.DeepEqual(got, []float64{10, 20, 30}) {
		t.Errorf("y defaults to the next column, got %v", got)
	}
	if got := data.Numeric(frame.TGroup); !reflect.DeepEqual(got, []float64{1, 0, 1}) {
		t.Errorf("group = %v, want sorted level indices", got)
	}

	// A column named by a later role is skipped by earlier defaults.
	data, err = roles{group: "g"}.input(src, []string{"y"})
	if err != nil {
		t.Fatal(err)
	}
	if got := data.Numeric(frame.TX); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("x skips the group column, got %v", got)
	}
	if got := data.Numeric(frame.TY); !reflect.DeepEqual(got, []float64{10, 20, 30}) {
		t.Errorf("y skips the group and x columns, got %v", got)
	}

	if _, err := (roles{x: "nope"}).input(src, nil); err == nil {
		t.Errorf("missing column succeeded")
	}
	if _, err := (roles{}).input(src, []string{"y", "z"}); err != nil {
		t.Errorf("three columns for x, y, z: %v", err)
	}
}

func TestRasterizeHit(t *testing.T) {
	data := frame.NewBuilder().PutNumeric(frame.TX, []float64{1, 1, 2}).Done()
	s := stat.Count{}
	res := stat.Apply(s, data, frame.NewContext(data), frame.TGroup)
	r := newRenderer("count", s, shapePoints, res, 100, 100)

	var rows []int
	c, err := r.rasterize(pngOptions{hit: geom.Vec{10, 10}, report: func(r []int) { rows = r }})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rows, []int{0}) {
		t.Errorf("hit rows %v, want [0]", rows)
	}
	if px := c.Image().RGBAAt(10, 10); px.R == 0xff && px.G == 0xff && px.B == 0xff {
		t.Errorf("point at (10, 10) was not drawn")
	}
}

func TestGonumFormat(t *testing.T) {
	for in, want := range map[string]string{"": "svg", "out.PNG": "png", "x/y.pdf": "pdf"} {
		if got := gonumFormat(in); got != want {
			t.Errorf("gonumFormat(%q) = %q, want %q", in, got, want)
		}
	}
}

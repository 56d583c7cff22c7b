// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package aes

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/aclements/go-plotcore/frame"
)

func TestParse(t *testing.T) {
	for _, name := range []string{"x", "Y", "fill", "colour", "violinwidth"} {
		if _, err := Parse(name); err != nil {
			t.Errorf("Parse(%q): %v", name, err)
		}
	}
	if a, _ := Parse("colour"); a != Color {
		t.Errorf("colour should parse as color, got %v", a)
	}
	_, err := Parse("sparkle")
	if err == nil || !strings.Contains(err.Error(), "use one of: x, y") {
		t.Errorf("want error listing aesthetics; got %v", err)
	}
}

func TestAccessors(t *testing.T) {
	p := NewPoint(3, 1).Set(X, 2).Set(Y, 5).SetColor(Fill, color.RGBA{1, 2, 3, 255})
	if p.Numeric(X) != 2 || p.Numeric(Y) != 5 {
		t.Errorf("got x=%v y=%v", p.Numeric(X), p.Numeric(Y))
	}
	if !math.IsNaN(p.Numeric(Z)) {
		t.Errorf("unset aesthetic should be NaN")
	}
	if p.Color(Fill) != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("fill: got %v", p.Color(Fill))
	}
	if p.Index() != 3 || p.Group() != 1 {
		t.Errorf("index/group: got %d/%d", p.Index(), p.Group())
	}

	defer func() {
		if recover() == nil {
			t.Errorf("Color(X) should panic")
		}
	}()
	p.Color(X)
}

func TestYOriented(t *testing.T) {
	p := NewPoint(0, 0).Set(X, 1).Set(Y, 2).Set(YMin, 3).Set(Width, 4)
	o := Orient(p, true)
	if o.Numeric(X) != 2 || o.Numeric(Y) != 1 {
		t.Errorf("flipped x/y: got %v/%v", o.Numeric(X), o.Numeric(Y))
	}
	if o.Numeric(XMin) != 3 || o.Numeric(Height) != 4 {
		t.Errorf("flipped xmin/height: got %v/%v", o.Numeric(XMin), o.Numeric(Height))
	}
	// Flipping twice restores the original point, without wrapping.
	if back := Orient(o, true); back != DataPoint(p) {
		t.Errorf("double flip should return the original point; got %#v", back)
	}
	if Orient(p, false) != DataPoint(p) {
		t.Errorf("no flip should return p")
	}
}

func TestFromFrame(t *testing.T) {
	vx, vg := frame.NewVar("a"), frame.NewVar("g")
	f := frame.NewBuilder().PutNumeric(vx, []float64{1, 2}).PutNumeric(vg, []float64{0, 7}).Done()
	pts := FromFrame(f, Mapping{X: vx}, vg)
	if len(pts) != 2 || pts[1].Numeric(X) != 2 || pts[1].Group() != 7 {
		t.Fatalf("unexpected points %+v", pts)
	}
}

func TestWithAlpha(t *testing.T) {
	if c := WithAlpha(color.RGBA{200, 100, 50, 255}, 0); !IsTransparent(c) {
		t.Errorf("alpha 0 should be transparent; got %v", c)
	}
	if c := WithAlpha(color.RGBA{200, 100, 50, 255}, math.NaN()); c.A != 255 {
		t.Errorf("NaN alpha should leave color unchanged; got %v", c)
	}
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"testing"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotcore/series"
)

func shouldPanic(t *testing.T, re string, f func()) {
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

var (
	vx = NewVar("x")
	vy = NewVar("y")
)

func TestBuilder(t *testing.T) {
	f := NewBuilder().PutNumeric(vx, []float64{1, 2, 3}).PutNumeric(vy, []float64{4, math.NaN(), 6}).Done()
	if f.Len() != 3 {
		t.Fatalf("want 3 rows, got %d", f.Len())
	}
	if !f.Has(vx) || !f.Has(vy) || f.Has(TX) {
		t.Fatalf("unexpected columns %v", f.Variables())
	}
	if got := f.Numeric(vx); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("Numeric(x): got %v", got)
	}
	if s, ok := f.Range(vy); !ok || s != (series.Span{Lo: 4, Hi: 6}) {
		t.Errorf("Range(y): got %v, %v", s, ok)
	}

	shouldPanic(t, `unknown variable "transform.x"`, func() {
		f.Numeric(TX)
	})
	shouldPanic(t, `column "z".* with 1 .* 3 rows`, func() {
		f.Builder().PutNumeric(NewVar("z"), []float64{1})
	})
}

func TestNumericIsCopy(t *testing.T) {
	f := NewBuilder().PutNumeric(vx, []float64{1, 2}).Done()
	xs := f.Numeric(vx)
	xs[0] = 100
	if f.Numeric(vx)[0] != 1 {
		t.Fatalf("modifying Numeric result changed the frame")
	}
}

func TestRemoveAndSlice(t *testing.T) {
	f := NewBuilder().PutNumeric(vx, []float64{1, 2, 3}).PutNumeric(vy, []float64{4, 5, 6}).Done()
	g := f.Builder().Remove(vx).Done()
	if g.Has(vx) || !g.Has(vy) {
		t.Fatalf("Remove: got columns %v", g.Variables())
	}
	if !f.Has(vx) {
		t.Fatalf("Remove modified the source frame")
	}

	s := f.Slice([]int{2, 0})
	if got := s.Numeric(vy); !reflect.DeepEqual(got, []float64{6, 4}) {
		t.Errorf("Slice: got %v", got)
	}
}

func TestFromTable(t *testing.T) {
	tab := new(table.Builder).Add("a", []int{1, 2}).Add("b", []string{"p", "q"}).Done()
	f := FromTable(tab)
	if got := f.Numeric(NewVar("a")); !reflect.DeepEqual(got, []float64{1, 2}) {
		t.Errorf("int column: got %v", got)
	}
	if _, ok := f.Variable("b"); !ok {
		t.Errorf("missing variable b")
	}
	if got := f.NumericOr(NewVar("c"), 7); !reflect.DeepEqual(got, []float64{7, 7}) {
		t.Errorf("NumericOr: got %v", got)
	}
}

func TestContext(t *testing.T) {
	f := NewBuilder().PutNumeric(TX, []float64{1, 5}).Done()
	ctx := NewContext(f, StatVar("count"))
	if s, ok := ctx.OverallXRange(); !ok || s != (series.Span{Lo: 1, Hi: 5}) {
		t.Errorf("OverallXRange: got %v, %v", s, ok)
	}
	if _, ok := ctx.OverallYRange(); ok {
		t.Errorf("OverallYRange should be unknown")
	}
	if !IsMapped(ctx, StatVar("count")) || IsMapped(ctx, StatVar("density")) {
		t.Errorf("IsMapped: wrong result for %v", ctx.MappedStatVariables())
	}
	if _, ok := EmptyContext.OverallXRange(); ok {
		t.Errorf("EmptyContext should have no X range")
	}
}

func TestConcat(t *testing.T) {
	a := NewBuilder().PutNumeric(vx, []float64{1, 2}).Done()
	b := NewBuilder().PutNumeric(vx, []float64{3}).PutNumeric(vy, []float64{4}).Done()
	c := Concat(a, b)
	if got := c.Numeric(vx); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("x: got %v", got)
	}
	ys := c.Numeric(vy)
	if len(ys) != 3 || !math.IsNaN(ys[0]) || !math.IsNaN(ys[1]) || ys[2] != 4 {
		t.Errorf("y: want [NaN NaN 4], got %v", ys)
	}
	if Concat(a) != a {
		t.Errorf("Concat of one frame should return it")
	}
	if Concat().Len() != 0 {
		t.Errorf("Concat of no frames should be empty")
	}
}

func TestRebind(t *testing.T) {
	sv := StatVar("count")
	f := NewBuilder().PutNumeric(sv, []float64{1, 2}).PutNumeric(vx, []float64{3, 4}).Done()
	nt := table.NewBuilder(f.Table()).Add("extra", []float64{5, 6}).Done()
	r := f.Rebind(nt)
	v, ok := r.Variable(sv.Name)
	if !ok || v != sv {
		t.Errorf("Rebind lost variable %v; got %v", sv, v)
	}
	if v, ok := r.Variable("extra"); !ok || v != NewVar("extra") {
		t.Errorf("Rebind of new column: got %v, %v", v, ok)
	}
}

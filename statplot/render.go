// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/coord"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/geomutil"
	"github.com/aclements/go-plotcore/locator"
	"github.com/aclements/go-plotcore/pos"
	"github.com/aclements/go-plotcore/raster"
	"github.com/aclements/go-plotcore/series"
	"github.com/aclements/go-plotcore/stat"
	"golang.org/x/crypto/ssh/terminal"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// pathVar identifies the path each output row belongs to. Rows of
// one path share both their group and their contour piece.
var pathVar = frame.StatVar("path")

// pointRadius is the client radius of drawn points.
const pointRadius = 2

type renderer struct {
	name   string
	stat   stat.Stat
	shape  shape
	res    *frame.Frame
	width  int
	height int
}

func newRenderer(name string, s stat.Stat, sh shape, res *frame.Frame, width, height int) *renderer {
	groups := res.NumericOr(frame.TGroup, -1)
	pieces := res.NumericOr(stat.Vars.Piece, -1)
	ids := make([]float64, res.Len())
	index := map[[2]float64]int{}
	for i := range ids {
		key := [2]float64{groups[i], pieces[i]}
		for j, k := range key {
			if math.IsNaN(k) {
				key[j] = -1
			}
		}
		id, ok := index[key]
		if !ok {
			id = len(index)
			index[key] = id
		}
		ids[i] = float64(id)
	}
	res = res.Builder().PutNumeric(pathVar, ids).Done()
	return &renderer{name, s, sh, res, width, height}
}

// axes returns the variables drawn horizontally and vertically.
func (r *renderer) axes() (x, y frame.Variable, err error) {
	m := r.stat.DefaultMapping()
	x, ok := m[aes.X]
	if !ok || !r.res.Has(x) {
		return x, y, fmt.Errorf("stat %s has no x output", r.name)
	}
	for _, a := range []aes.Aes{aes.Y, aes.Middle, aes.Upper, aes.YMax} {
		if v, ok := m[a]; ok && r.res.Has(v) {
			return x, v, nil
		}
	}
	return x, y, fmt.Errorf("stat %s has no y output", r.name)
}

// paths returns the row indices of each path, in order.
func (r *renderer) paths() [][]int {
	var out [][]int
	for i, id := range r.res.Numeric(pathVar) {
		j := int(id)
		for len(out) <= j {
			out = append(out, nil)
		}
		out[j] = append(out[j], i)
	}
	return out
}

// fillVar returns the variable that colors polygons, if any.
func (r *renderer) fillVar() (frame.Variable, bool) {
	if r.res.HasNonNull(stat.Vars.Level) {
		return stat.Vars.Level, true
	}
	v, ok := r.stat.DefaultMapping()[aes.Fill]
	return v, ok && r.res.HasNonNull(v)
}

func (r *renderer) svg(w io.Writer) error {
	x, y, err := r.axes()
	if err != nil {
		return err
	}
	tab, names := labeled(r.res)
	p := gg.NewPlot(table.GroupBy(tab, names[pathVar.Name]))
	switch r.shape {
	case shapePoints:
		p.Add(gg.LayerPoints{X: names[x.Name], Y: names[y.Name]})
	case shapePolygon:
		l := gg.LayerPaths{X: names[x.Name], Y: names[y.Name]}
		if fv, ok := r.fillVar(); ok {
			l.Fill = names[fv.Name]
		}
		p.Add(l)
	default:
		p.Add(gg.LayerPaths{X: names[x.Name], Y: names[y.Name]})
	}
	p.Add(gg.Title(r.name))
	return p.WriteSVG(w, r.width, r.height)
}

type pngOptions struct {
	logX, logY, flip bool

	// jitter is the largest data-space displacement of a point.
	jitter float64

	// report, if not nil, is called with the rows under client
	// position hit.
	hit    geom.Vec
	report func(rows []int)
}

func (r *renderer) png(w io.Writer, o pngOptions) error {
	c, err := r.rasterize(o)
	if err != nil {
		return err
	}
	return c.EncodePNG(w)
}

// rasterize draws the stat output into a new canvas.
func (r *renderer) rasterize(o pngOptions) (*raster.Canvas, error) {
	xv, yv, err := r.axes()
	if err != nil {
		return nil, err
	}
	xr, okx := r.res.Range(xv)
	yr, oky := r.res.Range(yv)
	if !okx || !oky {
		return nil, fmt.Errorf("stat %s produced no finite output", r.name)
	}
	c := raster.New(r.width, r.height)
	client := c.Client()
	client = geom.Rect{X: client.X + 10, Y: client.Y + 10, W: client.W - 20, H: client.H - 20}

	var cs coord.System
	switch {
	case o.logX || o.logY:
		if cs, err = coord.NewLog10(xr, yr, client, o.logX, o.logY); err != nil {
			return nil, err
		}
	case o.flip:
		cs = coord.NewFlipped(xr, yr, client)
	default:
		cs = coord.NewCartesian(xr, yr, client)
	}
	var adj pos.Adjustment
	if o.jitter > 0 && r.shape == shapePoints {
		adj = pos.Jitter{Width: o.jitter, Height: o.jitter}
	}
	h := geomutil.NewHelper(adj, cs)

	m := aes.Mapping{aes.X: xv, aes.Y: yv}
	pts := aes.FromFrame(r.res, m, pathVar)
	if fv, ok := r.fillVar(); ok {
		heatColor(pts, r.res.Numeric(fv), aes.Fill)
	}
	if cv, ok := r.stat.DefaultMapping()[aes.Color]; ok && r.res.HasNonNull(cv) {
		heatColor(pts, r.res.Numeric(cv), aes.Color)
	}
	points := make([]aes.DataPoint, len(pts))
	for i, p := range pts {
		points[i] = p
	}

	spec := locator.Spec{Space: locator.SpaceXY, Strategy: locator.Hover}
	if r.shape == shapePath {
		spec = locator.Spec{Space: locator.SpaceX, Strategy: locator.Nearest}
	}
	l := locator.New(spec, false)
	tc := geomutil.NewTargetCollector(l)

	switch r.shape {
	case shapePoints:
		for _, p := range points {
			v, ok := geomutil.AtXY(p)
			if !ok {
				continue
			}
			cv, ok := h.ToClient(v, p)
			if !ok {
				continue
			}
			box := geom.Rect{X: cv.X - pointRadius, Y: cv.Y - pointRadius, W: 2 * pointRadius, H: 2 * pointRadius}
			c.FillRect(box, aes.StrokeOf(p))
			tc.AddPoint(cv, pointRadius, p)
		}
	case shapePolygon:
		for _, lp := range h.CreatePolygons(points, geomutil.AtXY) {
			c.DrawLinePath(lp)
			tc.AddPolygon(lp)
		}
	default:
		for _, lp := range h.CreateVariadicLines(points, geomutil.AtXY) {
			c.DrawLinePath(lp)
			tc.AddPath(lp)
		}
	}

	if o.report != nil {
		var rows []int
		if res, ok := l.Search(o.hit); ok {
			for _, hit := range res.Hits {
				rows = append(rows, hit.Row)
			}
		}
		o.report(rows)
	}
	return c, nil
}

// heatColor sets aesthetic a of each point from its value in vals,
// scaled over the range of vals.
func heatColor(pts []*aes.Point, vals []float64, a aes.Aes) {
	span, ok := series.Range(vals)
	if !ok {
		return
	}
	for i, p := range pts {
		t := 0.5
		if span.Length() > 0 {
			t = (vals[i] - span.Lo) / span.Length()
		}
		if math.IsNaN(t) {
			continue
		}
		p.SetColor(a, color.RGBAModel.Convert(raster.Heat.Map(t)).(color.RGBA))
	}
}

func (r *renderer) gonum(w io.Writer, format string) error {
	xv, yv, err := r.axes()
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = r.name
	p.X.Label.Text = xv.Label
	p.Y.Label.Text = yv.Label
	xs, ys := r.res.Numeric(xv), r.res.Numeric(yv)
	for _, rows := range r.paths() {
		xys := make(plotter.XYs, 0, len(rows))
		for _, i := range rows {
			if (geom.Vec{xs[i], ys[i]}).IsFinite() {
				xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
			}
		}
		if len(xys) == 0 {
			continue
		}
		if r.shape == shapePoints {
			s, err := plotter.NewScatter(xys)
			if err != nil {
				return err
			}
			p.Add(s)
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		p.Add(line)
	}
	wt, err := p.WriterTo(vg.Points(float64(r.width)), vg.Points(float64(r.height)), format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// gonumFormat returns the gonum/plot format for output file name,
// which defaults to SVG.
func gonumFormat(name string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return "svg"
	}
	return ext
}

func isTerminal(f *os.File) bool {
	return terminal.IsTerminal(int(f.Fd()))
}

// parseVec parses a client position "x,y".
func parseVec(s string) (geom.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Vec{}, fmt.Errorf("position %q is not x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Vec{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Vec{}, err
	}
	return geom.Vec{x, y}, nil
}

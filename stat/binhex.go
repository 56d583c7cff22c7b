// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/series"
)

// binHeightToHeight converts the vertical distance between hexagon
// rows to the height of a regular hexagon's inscribed circle.
var binHeightToHeight = 2 * math.Sqrt(3) / 3

// BinHex counts (X, Y) points into a tiling of hexagons. Hexagon rows
// are BinsY.Width apart (after conversion from hexagon height) and
// every other row is offset by half a hexagon.
//
// The result has one row per hexagon with ..x.., ..y.. (its center),
// ..count.., ..density.., ..width.. and ..height...
type BinHex struct {
	BinsX, BinsY BinOptions

	// KeepEmpty includes hexagons with no points.
	KeepEmpty bool
}

// NewBinHex validates b and returns it with defaults filled in.
func NewBinHex(b BinHex) (*BinHex, error) {
	b.BinsX = histogramBins(b.BinsX)
	b.BinsY = histogramBins(b.BinsY)
	return &b, nil
}

func (s *BinHex) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Weight}
}

func (s *BinHex) DefaultMapping() aes.Mapping {
	return aes.Mapping{
		aes.X:      Vars.X,
		aes.Y:      Vars.Y,
		aes.Width:  Vars.Width,
		aes.Height: Vars.Height,
	}
}

var binHexOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.Count, Vars.Density, Vars.Width, Vars.Height}

type hexIndex struct{ i, j int }

func (s *BinHex) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	xs, ys, ws, xr, yr, ok := read2D(data, ctx)
	if !ok {
		return emptyStatValues(nil, binHexOutputs...)
	}
	xr = series.EnsureApplicableRange(xr, true)
	yr = series.EnsureApplicableRange(yr, true)
	binsY := histogramBins(s.BinsY)
	if binsY.hasWidth() {
		binsY.Width /= binHeightToHeight
	}
	_, w := binCountAndWidth(xr.Length(), histogramBins(s.BinsX))
	_, hy := binCountAndWidth(yr.Length(), binsY)
	cols := int(math.Ceil(xr.Length()/w)) + 1
	rows := int(math.Ceil(yr.Length()/hy)) + 1

	// Work in units where the hexagons are regular, so the
	// nearest center is the containing hexagon.
	ratio := w / (hy * binHeightToHeight)
	counts := map[hexIndex]float64{}
	for k, x := range xs {
		y := (ys[k] - yr.Lo) * ratio
		x -= xr.Lo
		best, bestD := hexIndex{}, math.Inf(1)
		j0 := int(math.Floor((ys[k] - yr.Lo) / hy))
		for j := j0; j <= j0+1; j++ {
			off := 0.0
			if j%2 != 0 {
				off = w / 2
			}
			i := int(math.Round((x - off) / w))
			cx, cy := off+float64(i)*w, float64(j)*hy*ratio
			if d := (x-cx)*(x-cx) + (y-cy)*(y-cy); d < bestD {
				best, bestD = hexIndex{i, j}, d
			}
		}
		counts[best] += ws[k]
	}

	var keys []hexIndex
	if s.KeepEmpty {
		for j := 0; j < rows; j++ {
			for i := 0; i < cols; i++ {
				keys = append(keys, hexIndex{i, j})
			}
		}
		for k := range counts {
			if k.i < 0 || k.i >= cols || k.j < 0 || k.j >= rows {
				keys = append(keys, k)
			}
		}
	} else {
		for k := range counts {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a].j != keys[b].j {
			return keys[a].j < keys[b].j
		}
		return keys[a].i < keys[b].i
	})

	total := vec.Sum(ws)
	var ox, oy, oc, od []float64
	for _, k := range keys {
		off := 0.0
		if k.j%2 != 0 {
			off = w / 2
		}
		c := counts[k]
		ox = append(ox, xr.Lo+off+float64(k.i)*w)
		oy = append(oy, yr.Lo+float64(k.j)*hy)
		oc = append(oc, c)
		od = append(od, c/total/(w*hy))
	}
	return buildFrame(
		col(Vars.X, ox),
		col(Vars.Y, oy),
		col(Vars.Count, oc),
		col(Vars.Density, od),
		col(Vars.Width, series.Fill(len(ox), w)),
		col(Vars.Height, series.Fill(len(ox), hy*binHeightToHeight)),
	)
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import (
	"github.com/aclements/go-plotcore/aes"
	"github.com/aclements/go-plotcore/frame"
	"github.com/aclements/go-plotcore/geom"
	"github.com/aclements/go-plotcore/series"
)

// DefaultContourBins is the number of iso-levels a contour uses when
// its BinOptions are zero.
const DefaultContourBins = 10

// Contour traces iso-lines through a field given as a regular grid
// of (X, Y, Z) values in row-major order: X varies fastest.
//
// The result has ..x.., ..y.., ..level.. and ..piece.., which
// identifies each path.
type Contour struct {
	Bins BinOptions
}

// ContourFill fills the bands between the iso-lines of a field. Each
// band is one polygon, possibly of several rings, with ..level.. set
// to the band's fill level.
type ContourFill struct {
	Bins BinOptions
}

func contourBins(b BinOptions) BinOptions {
	if b.Count == 0 && !b.hasWidth() {
		b.Count = DefaultContourBins
	}
	if b.Count > MaxBinCount {
		Warning.Printf("contour: bin count %d clamped to %d", b.Count, MaxBinCount)
	}
	return b
}

func (s *Contour) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Z}
}

func (s *Contour) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
}

var contourOutputs = []frame.Variable{Vars.X, Vars.Y, Vars.Level, Vars.Piece}

func (s *Contour) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	g, ok := readGrid(data)
	if !ok {
		return emptyStatValues(nil, contourOutputs...)
	}
	return g.contourFrame(contourBins(s.Bins), false)
}

func (s *ContourFill) Consumes() []aes.Aes {
	return []aes.Aes{aes.X, aes.Y, aes.Z}
}

func (s *ContourFill) DefaultMapping() aes.Mapping {
	return aes.Mapping{aes.X: Vars.X, aes.Y: Vars.Y}
}

func (s *ContourFill) Apply(data *frame.Frame, ctx frame.Context) *frame.Frame {
	g, ok := readGrid(data)
	if !ok {
		return emptyStatValues(nil, contourOutputs...)
	}
	return g.contourFrame(contourBins(s.Bins), true)
}

// A field is a scalar field sampled on a regular grid.
type field struct {
	x, y       series.Span
	cols, rows int
	z          []float64
}

func readGrid(data *frame.Frame) (*field, bool) {
	if !hasRequiredValues(data, frame.TX, frame.TY, frame.TZ) {
		return nil, false
	}
	xs := data.Numeric(frame.TX)
	cols, rows, err := GridShape(xs)
	if err != nil {
		Warning.Print("contour: ", err)
		return nil, false
	}
	xr, _ := data.Range(frame.TX)
	yr, _ := data.Range(frame.TY)
	return &field{xr, yr, cols, rows, data.Numeric(frame.TZ)}, true
}

func (f *field) zRange() (series.Span, bool) {
	return series.Range(f.z)
}

func (f *field) contourFrame(bins BinOptions, fill bool) *frame.Frame {
	zr, ok := f.zRange()
	var levels []float64
	if ok {
		levels = ContourLevels(zr, bins)
	}
	if levels == nil {
		return emptyStatValues(nil, contourOutputs...)
	}
	paths := Contours(f.x, f.y, f.cols, f.rows, f.z, levels)

	var xs, ys, ls, ps []float64
	add := func(pts []geom.Vec, level float64, piece int) {
		for _, p := range pts {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			ls = append(ls, level)
			ps = append(ps, float64(piece))
		}
	}
	piece := 0
	if !fill {
		for i, lp := range paths {
			for _, p := range lp {
				add(p, levels[i], piece)
				piece++
			}
		}
	} else {
		bands, err := Bands(f.x, f.y, paths)
		if err != nil {
			Warning.Print("contour fill: ", err)
			return emptyStatValues(nil, contourOutputs...)
		}
		fills := FillLevels(zr, levels)
		for i, b := range bands {
			if len(b) == 0 {
				continue
			}
			add(b, fills[i], piece)
			piece++
		}
	}
	return buildFrame(col(Vars.X, xs), col(Vars.Y, ys), col(Vars.Level, ls), col(Vars.Piece, ps))
}

// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aclements/go-plotcore/stat"
)

// A shape is how statplot draws a stat's output.
type shape int

const (
	shapePath shape = iota
	shapePoints
	// shapePolygon rows are closed rings grouped by ..piece..
	shapePolygon
)

type statDef struct {
	// needs lists the input columns the stat reads, besides x.
	needs []string
	shape shape
	build func(o *options) (stat.Stat, error)
}

var stats = map[string]statDef{
	"bin": {nil, shapePath, func(o *options) (stat.Stat, error) {
		b := stat.Bin{Bins: binOptions(o), Anchor: o.Float("anchor", 0)}
		o.Enum("anchorkind", func(s string) (err error) {
			b.AnchorKind, err = stat.ParseAnchor(s)
			return
		})
		return stat.NewBin(b)
	}},
	"binhex": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		return stat.NewBinHex(stat.BinHex{
			BinsX:     stat.BinOptions{Count: o.Int("binsx", 0), Width: o.Float("widthx", 0)},
			BinsY:     stat.BinOptions{Count: o.Int("binsy", 0), Width: o.Float("widthy", 0)},
			KeepEmpty: o.Bool("keepempty", false),
		})
	}},
	"boxplot": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		return stat.NewBoxplot(stat.Boxplot{Coef: o.Float("coef", 0), VarWidth: o.Bool("varwidth", false)})
	}},
	"outliers": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		return &stat.BoxplotOutlier{Coef: o.Float("coef", 0)}, nil
	}},
	"contour": {[]string{"y", "z"}, shapePath, func(o *options) (stat.Stat, error) {
		return &stat.Contour{Bins: binOptions(o)}, nil
	}},
	"contourfill": {[]string{"y", "z"}, shapePolygon, func(o *options) (stat.Stat, error) {
		return &stat.ContourFill{Bins: binOptions(o)}, nil
	}},
	"count": {nil, shapePoints, func(o *options) (stat.Stat, error) {
		return stat.Count{}, nil
	}},
	"density": {nil, shapePath, func(o *options) (stat.Stat, error) {
		return stat.NewDensity(stat.Density{KernelOptions: kernelOptions(o), Trim: o.Bool("trim", false)})
	}},
	"density2d": {[]string{"y"}, shapePath, func(o *options) (stat.Stat, error) {
		contour := o.Bool("contour", true)
		return stat.NewDensity2D(stat.Density2D{Kernel2DOptions: kernel2DOptions(o), Contour: contour, Bins: binOptions(o)})
	}},
	"density2df": {[]string{"y"}, shapePolygon, func(o *options) (stat.Stat, error) {
		return stat.NewDensity2DF(stat.Density2DF{Kernel2DOptions: kernel2DOptions(o), Bins: binOptions(o)})
	}},
	"dotplot": {nil, shapePoints, func(o *options) (stat.Stat, error) {
		d := stat.Dotplot{Bins: binOptions(o), Anchor: o.Float("anchor", 0)}
		o.Enum("method", func(s string) (err error) {
			d.Method, err = stat.ParseDotplotMethod(s)
			return
		})
		o.Enum("anchorkind", func(s string) (err error) {
			d.AnchorKind, err = stat.ParseAnchor(s)
			return
		})
		return stat.NewDotplot(d)
	}},
	"ecdf": {nil, shapePath, func(o *options) (stat.Stat, error) {
		return &stat.ECDF{Widen: o.Float("widen", 0)}, nil
	}},
	"pointdensity": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		p := stat.PointDensity{Kernel2DOptions: kernel2DOptions(o)}
		o.Enum("method", func(s string) (err error) {
			p.Method, err = stat.ParsePointDensityMethod(s)
			return
		})
		return stat.NewPointDensity(p)
	}},
	"qq": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		return stat.NewQQ(qqOptions(o))
	}},
	"qqline": {[]string{"y"}, shapePath, func(o *options) (stat.Stat, error) {
		return stat.NewQQLine(qqOptions(o), quantilePair(o))
	}},
	"qq2": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		return stat.QQ2{}, nil
	}},
	"qq2line": {[]string{"y"}, shapePath, func(o *options) (stat.Stat, error) {
		return stat.NewQQ2Line(stat.QQ2Line{Quantiles: quantilePair(o)})
	}},
	"ridges": {[]string{"y"}, shapePath, func(o *options) (stat.Stat, error) {
		return stat.NewDensityRidges(stat.DensityRidges{
			KernelOptions: kernelOptions(o),
			Trim:          o.Bool("trim", false),
			TailsCutoff:   o.Float("tailscutoff", 0),
		})
	}},
	"sina": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		s := stat.Sina{
			KernelOptions: kernelOptions(o),
			Trim:          o.Bool("trim", false),
			TailsCutoff:   o.Float("tailscutoff", 0),
		}
		o.Enum("scale", func(v string) (err error) {
			s.Scale, err = stat.ParseViolinScale(v)
			return
		})
		return stat.NewSina(s)
	}},
	"smooth": {[]string{"y"}, shapePath, func(o *options) (stat.Stat, error) {
		s := stat.Smooth{
			N:      o.Int("n", 0),
			Degree: o.Int("degree", 0),
			Span:   o.Float("span", 0),
			Level:  o.Float("level", 0),
		}
		o.Enum("method", func(v string) (err error) {
			s.Method, err = stat.ParseSmoothMethod(v)
			return
		})
		return stat.NewSmooth(s)
	}},
	"summary": {[]string{"y"}, shapePoints, func(o *options) (stat.Stat, error) {
		var s stat.Summary
		for key, a := range map[string]*stat.Aggregate{"fun": &s.Y, "funmin": &s.YMin, "funmax": &s.YMax} {
			a := a
			o.Enum(key, func(v string) (err error) {
				*a, err = stat.ParseAggregate(v)
				return
			})
		}
		if qs := o.Floats("quantiles"); qs != nil {
			if len(qs) != 3 {
				return nil, fmt.Errorf("summary quantiles must have 3 values, got %d", len(qs))
			}
			copy(s.Quantiles[:], qs)
		}
		return stat.NewSummary(s)
	}},
	"ydensity": {[]string{"y"}, shapePath, func(o *options) (stat.Stat, error) {
		y := stat.YDensity{
			KernelOptions: kernelOptions(o),
			Trim:          o.Bool("trim", false),
			TailsCutoff:   o.Float("tailscutoff", 0),
		}
		o.Enum("scale", func(v string) (err error) {
			y.Scale, err = stat.ParseViolinScale(v)
			return
		})
		return stat.NewYDensity(y)
	}},
}

func statNames() []string {
	var names []string
	for name := range stats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// buildStat constructs the stat called name from o. Every option in o
// must be used by the stat.
func buildStat(name string, o *options) (stat.Stat, statDef, error) {
	def, ok := stats[strings.ToLower(name)]
	if !ok {
		return nil, def, fmt.Errorf("unknown stat %q; use one of: %s", name, strings.Join(statNames(), ", "))
	}
	s, err := def.build(o)
	if err == nil {
		err = o.Err()
	}
	if err != nil {
		return nil, def, err
	}
	return s, def, nil
}

func binOptions(o *options) stat.BinOptions {
	return stat.BinOptions{Count: o.Int("bins", 0), Width: o.Float("binwidth", 0)}
}

func kernelOptions(o *options) stat.KernelOptions {
	k := stat.KernelOptions{
		Bandwidth: o.Float("bw", 0),
		Adjust:    o.Float("adjust", 0),
		N:         o.Int("n", 0),
		Quantiles: o.Floats("quantiles"),
	}
	o.Enum("kernel", func(s string) (err error) {
		k.Kernel, err = stat.ParseKernel(s)
		return
	})
	o.Enum("bwmethod", func(s string) (err error) {
		k.BandwidthMethod, err = stat.ParseBandwidthMethod(s)
		return
	})
	return k
}

func kernel2DOptions(o *options) stat.Kernel2DOptions {
	k := stat.Kernel2DOptions{
		BandwidthX: o.Float("bwx", 0),
		BandwidthY: o.Float("bwy", 0),
		Adjust:     o.Float("adjust", 0),
		NX:         o.Int("nx", 0),
		NY:         o.Int("ny", 0),
	}
	o.Enum("kernel", func(s string) (err error) {
		k.Kernel, err = stat.ParseKernel(s)
		return
	})
	o.Enum("bwmethod", func(s string) (err error) {
		k.BandwidthMethod, err = stat.ParseBandwidthMethod(s)
		return
	})
	return k
}

func qqOptions(o *options) stat.QQOptions {
	q := stat.QQOptions{Params: o.Floats("params")}
	o.Enum("dist", func(s string) (err error) {
		q.Distribution, err = stat.ParseDistribution(s)
		return
	})
	return q
}

func quantilePair(o *options) [2]float64 {
	var qs [2]float64
	if fs := o.Floats("quantiles"); fs != nil {
		if len(fs) != 2 {
			o.fail("quantiles", fmt.Errorf("need 2 values, got %d", len(fs)))
			return qs
		}
		copy(qs[:], fs)
	}
	return qs
}

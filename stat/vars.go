// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import "github.com/aclements/go-plotcore/frame"

// Vars are the variables stats produce.
var Vars = struct {
	X, Y, Z frame.Variable

	Count, Density, Scaled, NDensity frame.Variable
	Quantile, Level, Piece           frame.Variable

	YMin, YMax, XMin, XMax frame.Variable

	Lower, Middle, Upper frame.Variable
	Width, Height        frame.Variable

	SE          frame.Variable
	Theoretical frame.Variable
	Sample      frame.Variable
	ViolinWidth frame.Variable
	Binwidth    frame.Variable
	SumProp     frame.Variable
	Prop        frame.Variable
	N           frame.Variable
	Flag        frame.Variable
	Slope       frame.Variable
	Intercept   frame.Variable

	// Summary aggregates.
	Sum, Mean, Median, Min, Max frame.Variable
	LQ, MQ, UQ                  frame.Variable
}{
	X: frame.StatVar("x"),
	Y: frame.StatVar("y"),
	Z: frame.StatVar("z"),

	Count:    frame.StatVar("count"),
	Density:  frame.StatVar("density"),
	Scaled:   frame.StatVar("scaled"),
	NDensity: frame.StatVar("ndensity"),
	Quantile: frame.StatVar("quantile"),
	Level:    frame.StatVar("level"),
	Piece:    frame.StatVar("piece"),

	YMin: frame.StatVar("ymin"),
	YMax: frame.StatVar("ymax"),
	XMin: frame.StatVar("xmin"),
	XMax: frame.StatVar("xmax"),

	Lower:  frame.StatVar("lower"),
	Middle: frame.StatVar("middle"),
	Upper:  frame.StatVar("upper"),
	Width:  frame.StatVar("width"),
	Height: frame.StatVar("height"),

	SE:          frame.StatVar("se"),
	Theoretical: frame.StatVar("theoretical"),
	Sample:      frame.StatVar("sample"),
	ViolinWidth: frame.StatVar("violinwidth"),
	Binwidth:    frame.StatVar("binwidth"),
	SumProp:     frame.StatVar("sumprop"),
	Prop:        frame.StatVar("prop"),
	N:           frame.StatVar("n"),
	Flag:        frame.StatVar("flag"),
	Slope:       frame.StatVar("slope"),
	Intercept:   frame.StatVar("intercept"),

	Sum:    frame.StatVar("sum"),
	Mean:   frame.StatVar("mean"),
	Median: frame.StatVar("median"),
	Min:    frame.StatVar("min"),
	Max:    frame.StatVar("max"),
	LQ:     frame.StatVar("lq"),
	MQ:     frame.StatVar("mq"),
	UQ:     frame.StatVar("uq"),
}

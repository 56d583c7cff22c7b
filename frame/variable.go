// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frame

// Source records where a Variable's values come from.
type Source int

const (
	// Origin variables are columns of the user's input data.
	Origin Source = iota
	// Transform variables hold input values after aesthetic
	// mapping and scale transformation. Stats read these.
	Transform
	// Stat variables are computed by a stat.
	Stat
)

func (s Source) String() string {
	switch s {
	case Origin:
		return "origin"
	case Transform:
		return "transform"
	case Stat:
		return "stat"
	}
	return "Source(?)"
}

// A Variable identifies a column of a Frame. Two variables are the
// same column if they have the same Name.
type Variable struct {
	Name   string
	Label  string
	Source Source
}

// NewVar returns an Origin variable whose label is its name.
func NewVar(name string) Variable {
	return Variable{Name: name, Label: name, Source: Origin}
}

// StatVar returns a Stat variable. Stat variable names follow the
// "..name.." convention so they cannot collide with input columns.
func StatVar(name string) Variable {
	return Variable{Name: ".." + name + "..", Label: name, Source: Stat}
}

// TransformVar returns the Transform variable for an aesthetic name.
func TransformVar(aesName string) Variable {
	return Variable{Name: "transform." + aesName, Label: aesName, Source: Transform}
}

func (v Variable) String() string {
	return v.Name
}

// IsStat returns true if v was produced by a stat.
func (v Variable) IsStat() bool {
	return v.Source == Stat
}

// Transform variables for the positional and weighting aesthetics.
// Stats read their inputs from these columns.
var (
	TX      = TransformVar("x")
	TY      = TransformVar("y")
	TZ      = TransformVar("z")
	TWeight = TransformVar("weight")
	TGroup  = TransformVar("group")
)

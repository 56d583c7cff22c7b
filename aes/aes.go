// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package aes defines aesthetics, the visual channels data can be
// mapped to, and per-point access to aesthetic values.
//
// The set of aesthetics is closed. Each aesthetic has a fixed value
// kind (numeric or color), and values are read through a typed
// accessor table rather than by reflection.
package aes

import (
	"fmt"
	"strings"
)

// An Aes is a visual channel.
type Aes int

const (
	X Aes = iota
	Y
	Z
	XMin
	XMax
	YMin
	YMax
	Lower
	Middle
	Upper
	Width
	Height
	Size
	Alpha
	Weight
	Quantile
	ViolinWidth
	Binwidth
	Slope
	Intercept
	Color
	Fill

	numAes
)

// A Kind is the kind of value an aesthetic carries.
type Kind int

const (
	Numeric Kind = iota
	ColorKind
)

var info = [numAes]struct {
	name string
	kind Kind
}{
	X:           {"x", Numeric},
	Y:           {"y", Numeric},
	Z:           {"z", Numeric},
	XMin:        {"xmin", Numeric},
	XMax:        {"xmax", Numeric},
	YMin:        {"ymin", Numeric},
	YMax:        {"ymax", Numeric},
	Lower:       {"lower", Numeric},
	Middle:      {"middle", Numeric},
	Upper:       {"upper", Numeric},
	Width:       {"width", Numeric},
	Height:      {"height", Numeric},
	Size:        {"size", Numeric},
	Alpha:       {"alpha", Numeric},
	Weight:      {"weight", Numeric},
	Quantile:    {"quantile", Numeric},
	ViolinWidth: {"violinwidth", Numeric},
	Binwidth:    {"binwidth", Numeric},
	Slope:       {"slope", Numeric},
	Intercept:   {"intercept", Numeric},
	Color:       {"color", ColorKind},
	Fill:        {"fill", ColorKind},
}

// All returns every aesthetic in declaration order.
func All() []Aes {
	out := make([]Aes, numAes)
	for i := range out {
		out[i] = Aes(i)
	}
	return out
}

func (a Aes) String() string {
	if a < 0 || a >= numAes {
		return fmt.Sprintf("Aes(%d)", int(a))
	}
	return info[a].name
}

// Kind returns the kind of value a carries.
func (a Aes) Kind() Kind {
	return info[a].kind
}

// IsPositionalX returns true for the horizontal position aesthetics.
func (a Aes) IsPositionalX() bool {
	return a == X || a == XMin || a == XMax
}

// IsPositionalY returns true for the vertical position aesthetics.
func (a Aes) IsPositionalY() bool {
	switch a {
	case Y, YMin, YMax, Lower, Middle, Upper:
		return true
	}
	return false
}

// Flip returns the aesthetic a maps to when the X and Y axes are
// exchanged.
func (a Aes) Flip() Aes {
	switch a {
	case X:
		return Y
	case Y:
		return X
	case XMin:
		return YMin
	case YMin:
		return XMin
	case XMax:
		return YMax
	case YMax:
		return XMax
	case Width:
		return Height
	case Height:
		return Width
	}
	return a
}

// Parse returns the aesthetic named name. Names are case-insensitive
// and "colour" is accepted for "color".
func Parse(name string) (Aes, error) {
	name = strings.ToLower(name)
	if name == "colour" {
		name = "color"
	}
	for i, in := range info {
		if in.name == name {
			return Aes(i), nil
		}
	}
	names := make([]string, numAes)
	for i, in := range info {
		names[i] = in.name
	}
	return 0, fmt.Errorf("unknown aesthetic %q; use one of: %s", name, strings.Join(names, ", "))
}

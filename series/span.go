// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"fmt"
	"math"
)

// Span is a closed interval [Lo, Hi] with Lo <= Hi.
type Span struct {
	Lo, Hi float64
}

// NewSpan returns the span between a and b in either order.
func NewSpan(a, b float64) Span {
	if a > b {
		a, b = b, a
	}
	return Span{a, b}
}

func (s Span) String() string {
	return fmt.Sprintf("[%g, %g]", s.Lo, s.Hi)
}

func (s Span) Length() float64 {
	return s.Hi - s.Lo
}

func (s Span) Center() float64 {
	return (s.Lo + s.Hi) / 2
}

func (s Span) Contains(x float64) bool {
	return s.Lo <= x && x <= s.Hi
}

// Expanded returns s widened by d on both ends.
func (s Span) Expanded(d float64) Span {
	return NewSpan(s.Lo-d, s.Hi+d)
}

// Union returns the smallest span containing s and o.
func (s Span) Union(o Span) Span {
	return Span{math.Min(s.Lo, o.Lo), math.Max(s.Hi, o.Hi)}
}

// Include returns the smallest span containing s and x.
func (s Span) Include(x float64) Span {
	return Span{math.Min(s.Lo, x), math.Max(s.Hi, x)}
}

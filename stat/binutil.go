// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stat

import "math"

// MaxBinCount is the largest number of bins any binning stat
// produces.
const MaxBinCount = 500

// BinOptions choose the granularity of a binning. If Width is
// positive, it determines the count; otherwise Count bins span the
// range. Count is clamped to [1, MaxBinCount].
type BinOptions struct {
	Count int
	Width float64
}

func (b BinOptions) hasWidth() bool {
	return b.Width > 0
}

func (b BinOptions) count() int {
	switch {
	case b.Count < 1:
		return 1
	case b.Count > MaxBinCount:
		return MaxBinCount
	}
	return b.Count
}

// binCountAndWidth returns the number and width of bins covering a
// range of length rangeLen.
func binCountAndWidth(rangeLen float64, b BinOptions) (int, float64) {
	if b.hasWidth() {
		count := int(math.Ceil(math.Min(MaxBinCount, rangeLen/b.Width)))
		if count < 1 {
			count = 1
		}
		return count, b.Width
	}
	count := b.count()
	width := rangeLen / float64(count)
	if width == 0 {
		width = 1
	}
	return count, width
}

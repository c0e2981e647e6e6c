// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package interval

import (
	"cmp"
	"fmt"
)

// An Interval is a half-open range [Left, Right) over an ordered key
// type. Two intervals which merely touch, i.e. where the Right bound
// of one equals the Left bound of the other, do not overlap.
type Interval[K cmp.Ordered] struct {
	Left  K
	Right K
}

// Overlaps reports whether i and j share at least one point.
func (i Interval[K]) Overlaps(j Interval[K]) bool {
	return j.Right > i.Left && j.Left < i.Right
}

// Union returns the smallest interval containing both i and j.
func (i Interval[K]) Union(j Interval[K]) Interval[K] {
	return Interval[K]{
		Left:  min(i.Left, j.Left),
		Right: max(i.Right, j.Right),
	}
}

// String returns a string representation of the interval.
func (i Interval[K]) String() string {
	return fmt.Sprintf("[%v,%v)", i.Left, i.Right)
}

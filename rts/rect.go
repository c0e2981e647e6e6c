// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rts

import (
	"fmt"

	"github.com/gogama/overlap/interval"
)

// An Axis is one of the two coordinate axes of the plane.
type Axis uint8

const (
	// X is the horizontal axis.
	X Axis = iota
	// Y is the vertical axis.
	Y
)

// Transpose returns the other axis.
func (a Axis) Transpose() Axis {
	return a ^ 1
}

// String returns "X" or "Y".
func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	default:
		return fmt.Sprintf("Axis(%d)", uint8(a))
	}
}

// A Rect is an axis-aligned rectangle in corner form. The rectangle
// covers the half-open region [X1, X2) × [Y1, Y2), so two rectangles
// which only share an edge or a corner do not intersect.
//
// Corners are 64-bit so that any rectangle with 32-bit signed minimum
// corner and 32-bit unsigned size has an exact maximum corner.
type Rect struct {
	X1, Y1 int64
	X2, Y2 int64
}

// Span returns the extent of the rectangle along an axis.
func (r *Rect) Span(a Axis) interval.Interval[int64] {
	if a == X {
		return interval.Interval[int64]{Left: r.X1, Right: r.X2}
	}
	return interval.Interval[int64]{Left: r.Y1, Right: r.Y2}
}

func (r *Rect) left(a Axis) int64 {
	if a == X {
		return r.X1
	}
	return r.Y1
}

func (r *Rect) right(a Axis) int64 {
	if a == X {
		return r.X2
	}
	return r.Y2
}

// Intersects reports whether r and s share a region of positive area.
func (r *Rect) Intersects(s *Rect) bool {
	return s.X2 > r.X1 && s.X1 < r.X2 && s.Y2 > r.Y1 && s.Y1 < r.Y2
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.X1, r.Y1, r.X2, r.Y2)
}

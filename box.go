// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package overlap

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/gogama/overlap/rts"
	"github.com/shopspring/decimal"
)

// IoUPrecision is the number of decimal places IoU rounds to.
const IoUPrecision = 16

// A Box is an axis-aligned rectangle given by its minimum corner and
// its size. Width and Height must be positive.
type Box struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// Rect returns the box in corner form. The maximum corner is exact for
// every Box, since it is computed in 64 bits.
func (b Box) Rect() rts.Rect {
	return rts.Rect{
		X1: int64(b.X),
		Y1: int64(b.Y),
		X2: int64(b.X) + int64(b.Width),
		Y2: int64(b.Y) + int64(b.Height),
	}
}

// String returns a string representation of the box in the form
// [X,Y,Width,Height].
func (b Box) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", b.X, b.Y, b.Width, b.Height)
}

func rects(boxes []Box) []rts.Rect {
	r := make([]rts.Rect, len(boxes))
	for i := range boxes {
		r[i] = boxes[i].Rect()
	}
	return r
}

// Intersects reports whether two boxes share a region of positive
// area.
func Intersects(a, b Box) bool {
	ra, rb := a.Rect(), b.Rect()
	return ra.Intersects(&rb)
}

// Area returns the area of a box.
func Area(b Box) uint64 {
	return uint64(b.Width) * uint64(b.Height)
}

// IntersectArea returns the area of the intersection of two boxes,
// which is zero if they do not intersect.
func IntersectArea(a, b Box) uint64 {
	ra, rb := a.Rect(), b.Rect()
	w := min(ra.X2, rb.X2) - max(ra.X1, rb.X1)
	h := min(ra.Y2, rb.Y2) - max(ra.Y1, rb.Y1)
	if w <= 0 || h <= 0 {
		return 0
	}
	return uint64(w) * uint64(h)
}

// UnionArea returns the area covered by either of two boxes. The result
// saturates at math.MaxUint64.
func UnionArea(a, b Box) uint64 {
	u, carry := bits.Add64(Area(a)-IntersectArea(a, b), Area(b), 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return u
}

// IoU returns the intersection over union of two boxes, rounded to
// IoUPrecision decimal places. The result is zero for disjoint boxes
// and one for identical boxes.
func IoU(a, b Box) decimal.Decimal {
	i := IntersectArea(a, b)
	if i == 0 {
		return decimal.Zero
	}
	di := decimalFromUint64(i)
	du := decimalFromUint64(Area(a)).Add(decimalFromUint64(Area(b))).Sub(di)
	return di.DivRound(du, IoUPrecision)
}

func decimalFromUint64(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

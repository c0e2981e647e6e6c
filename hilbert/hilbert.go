// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package hilbert orders boxes along a Hilbert curve, so that boxes
// which are close in the plane tend to be close in the ordering.
package hilbert

import (
	"sort"

	"github.com/gogama/overlap"
)

const (
	// Order is the order of the Hilbert curve used by Sort.
	Order = 16
	// maxCoord is the maximum X- or Y-coordinate accepted by Index.
	//
	// In a Hilbert curve of order N, X- and Y- coordinates range from
	// zero to 2^N-1.
	maxCoord = (1 << Order) - 1
)

// sortable is an implementation of sort.Interface which allows us to
// use the reflection-free sort.Sort function instead of sort.Slice.
// The Hilbert index of every box is computed once, up front.
type sortable struct {
	boxes []overlap.Box
	keys  []uint32
}

func (s *sortable) Len() int {
	return len(s.boxes)
}

func (s *sortable) Less(i, j int) bool {
	return s.keys[i] < s.keys[j]
}

func (s *sortable) Swap(i, j int) {
	s.boxes[i], s.boxes[j] = s.boxes[j], s.boxes[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

// Sort sorts boxes by the Hilbert index of their centers, scaled to the
// bounding box of all the centers.
//
// The sort is not stable, so the relative position of two boxes with
// the same Hilbert index may change as a result of the sort.
func Sort(boxes []overlap.Box) {
	if len(boxes) < 2 {
		return
	}

	x1, y1 := center2(&boxes[0])
	x2, y2 := x1, y1
	for i := 1; i < len(boxes); i++ {
		cx, cy := center2(&boxes[i])
		x1, y1 = min(x1, cx), min(y1, cy)
		x2, y2 = max(x2, cx), max(y2, cy)
	}

	s := sortable{
		boxes: boxes,
		keys:  make([]uint32, len(boxes)),
	}
	for i := range boxes {
		cx, cy := center2(&boxes[i])
		s.keys[i] = Index(scale(cx, x1, x2), scale(cy, y1, y2))
	}
	sort.Sort(&s)
}

// center2 returns twice the center of a box, which is always integral.
func center2(b *overlap.Box) (int64, int64) {
	return 2*int64(b.X) + int64(b.Width), 2*int64(b.Y) + int64(b.Height)
}

// scale maps v from [lo, hi] onto [0, maxCoord].
func scale(v, lo, hi int64) uint32 {
	if hi == lo {
		return 0
	}
	return uint32((v - lo) * maxCoord / (hi - lo))
}

// Index calculates the Hilbert curve index of a two-dimensional
// coordinate. Both coordinates must be at most 2^Order-1.
//
// Based on https://github.com/rawrunprotected/hilbert_curves, which is
// in the public domain.
func Index(x, y uint32) uint32 {
	a := x ^ y
	b := 0xFFFF ^ a
	c := 0xFFFF ^ (x | y)
	d := x & (y ^ 0xFFFF)

	A := a | (b >> 1)
	B := (a >> 1) ^ a
	C := ((c >> 1) ^ (b & (d >> 1))) ^ c
	D := ((a & (c >> 1)) ^ (d >> 1)) ^ d

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 2)) ^ (b & (b >> 2))
	B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))
	C ^= (a & (c >> 2)) ^ (b & (d >> 2))
	D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))

	a = A
	b = B
	c = C
	d = D
	A = (a & (a >> 4)) ^ (b & (b >> 4))
	B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))
	C ^= (a & (c >> 4)) ^ (b & (d >> 4))
	D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))

	a = A
	b = B
	c = C
	d = D
	C ^= (a & (c >> 8)) ^ (b & (d >> 8))
	D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))

	a = C ^ (C >> 1)
	b = D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	i0 = (i0 | (i0 << 8)) & 0x00FF00FF
	i0 = (i0 | (i0 << 4)) & 0x0F0F0F0F
	i0 = (i0 | (i0 << 2)) & 0x33333333
	i0 = (i0 | (i0 << 1)) & 0x55555555

	i1 = (i1 | (i1 << 8)) & 0x00FF00FF
	i1 = (i1 | (i1 << 4)) & 0x0F0F0F0F
	i1 = (i1 | (i1 << 2)) & 0x33333333
	i1 = (i1 | (i1 << 1)) & 0x55555555

	return (i1 << 1) | i0
}

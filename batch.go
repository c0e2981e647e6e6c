// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package overlap

import (
	"cmp"
	"slices"
)

// An adjacency result has one list per input box. The order within
// each list is not defined and callers should compare lists as sets.
func newAdjacency(n int) [][]uint32 {
	adj := make([][]uint32, n)
	for i := range adj {
		adj[i] = make([]uint32, 0)
	}
	return adj
}

// BruteForce returns, for every box, the indices of the other boxes it
// intersects. Every pair of boxes is compared exactly once, so the
// running time is quadratic in the number of boxes.
func BruteForce(boxes []Box) [][]uint32 {
	adj := newAdjacency(len(boxes))
	r := rects(boxes)
	for i := range r {
		for j := i + 1; j < len(r); j++ {
			if r[i].Intersects(&r[j]) {
				adj[i] = append(adj[i], uint32(j))
				adj[j] = append(adj[j], uint32(i))
			}
		}
	}
	return adj
}

// LineSweep returns the same result as BruteForce by sweeping a
// vertical line across the boxes in order of their left edge, only
// comparing each box against the boxes still open at its left edge.
func LineSweep(boxes []Box) [][]uint32 {
	adj := newAdjacency(len(boxes))
	r := rects(boxes)
	order := make([]uint32, len(r))
	for i := range order {
		order[i] = uint32(i)
	}
	slices.SortFunc(order, func(i, j uint32) int {
		return cmp.Compare(r[i].X1, r[j].X1)
	})

	active := make([]uint32, 0)
	for _, i := range order {
		live := active[:0]
		for _, j := range active {
			if r[j].X2 <= r[i].X1 {
				continue // Closed before i opens.
			}
			live = append(live, j)
			if r[j].Intersects(&r[i]) {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
		active = append(live, i)
	}
	return adj
}

// FindAll returns the same result as BruteForce by building one Index
// over the boxes and querying it once per box.
func FindAll(boxes []Box) [][]uint32 {
	adj := newAdjacency(len(boxes))
	if len(boxes) == 0 {
		return adj
	}
	index := NewIndex(boxes)
	for i := range boxes {
		self := uint32(i)
		index.Search(boxes[i], func(j uint32) {
			if j != self {
				adj[i] = append(adj[i], j)
			}
		})
	}
	return adj
}

// FindAllBetween returns, for every box in src, the indices of the
// boxes in dst it intersects. An Index is built over dst only.
func FindAllBetween(src, dst []Box) [][]uint32 {
	adj := newAdjacency(len(src))
	if len(dst) == 0 {
		return adj
	}
	index := NewIndex(dst)
	for i := range src {
		index.Search(src[i], func(j uint32) {
			adj[i] = append(adj[i], j)
		})
	}
	return adj
}

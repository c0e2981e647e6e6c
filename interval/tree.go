// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package interval

import (
	"cmp"
	"fmt"
	"slices"
)

// B is the branching factor of a Tree: every non-leaf node covers up to
// B nodes of the next finer level.
const B = 8

// A Pair associates a payload Value with the Interval under which it is
// stored in a Tree.
type Pair[K cmp.Ordered, V any] struct {
	Interval Interval[K]
	Value    V
}

// Tree is a static layered range tree over half-open intervals.
//
// The zero value is an empty tree, and searching it visits nothing.
type Tree[K cmp.Ordered, V any] struct {
	// data holds one payload per stored interval, in ascending order of
	// Interval.Left.
	data []V
	// levels holds the node intervals of each tree level. Level 0 is
	// the root level and contains exactly one interval. The last level
	// is the leaf level and is parallel to data.
	//
	// Node j of level d covers nodes [j*B, j*B+B) of level d+1, and its
	// interval is the union of the intervals it covers.
	levels [][]Interval[K]
}

// New builds a Tree from a list of interval/payload pairs.
//
// The pairs are sorted by ascending Left bound before the tree is
// built. The sort is not stable, so the relative order of two pairs
// with equal Left bounds is not defined. The input slice is not
// modified.
func New[K cmp.Ordered, V any](pairs []Pair[K, V]) *Tree[K, V] {
	if len(pairs) == 0 {
		return &Tree[K, V]{}
	}

	// Sort a copy of the input.
	sorted := make([]Pair[K, V], len(pairs))
	copy(sorted, pairs)
	slices.SortFunc(sorted, func(a, b Pair[K, V]) int {
		return cmp.Compare(a.Interval.Left, b.Interval.Left)
	})

	// The finest level is the sorted intervals themselves.
	leaves := make([]Interval[K], len(sorted))
	data := make([]V, len(sorted))
	for i := range sorted {
		leaves[i] = sorted[i].Interval
		data[i] = sorted[i].Value
	}

	// Generate the coarser levels, finest first.
	levels := [][]Interval[K]{leaves}
	level := leaves
	for len(level) > 1 {
		parents := make([]Interval[K], (len(level)+B-1)/B)
		for p := range parents {
			start := p * B
			end := min(start+B, len(level))
			parents[p] = level[start]
			for _, child := range level[start+1 : end] {
				parents[p] = parents[p].Union(child)
			}
		}
		levels = append(levels, parents)
		level = parents
	}

	// Put the root level first.
	slices.Reverse(levels)

	return &Tree[K, V]{
		data:   data,
		levels: levels,
	}
}

// NewFunc builds a Tree from a list of payloads, deriving the interval
// of each payload with a caller-supplied bounds function.
func NewFunc[K cmp.Ordered, V any](items []V, bounds func(*V) Interval[K]) *Tree[K, V] {
	pairs := make([]Pair[K, V], len(items))
	for i := range items {
		pairs[i] = Pair[K, V]{Interval: bounds(&items[i]), Value: items[i]}
	}
	return New(pairs)
}

// Len returns the number of intervals stored in the tree.
func (t *Tree[K, V]) Len() int {
	return len(t.data)
}

// Depth returns the number of levels in the tree, including the leaf
// level. An empty tree has depth zero and a single-interval tree has
// depth one.
func (t *Tree[K, V]) Depth() int {
	return len(t.levels)
}

// Bounds returns the interval covering every interval in the tree. The
// second return value is false if the tree is empty.
func (t *Tree[K, V]) Bounds() (Interval[K], bool) {
	if len(t.levels) == 0 {
		return Interval[K]{}, false
	}
	return t.levels[0][0], true
}

// String returns a summary description of the tree.
func (t *Tree[K, V]) String() string {
	b, ok := t.Bounds()
	if !ok {
		return "Tree{Len:0}"
	}
	return fmt.Sprintf("Tree{Bounds:%s,Len:%d,Depth:%d}", b, t.Len(), t.Depth())
}

// Search calls visit once for every stored payload whose interval
// overlaps the query interval q.
//
// Payloads are visited in ascending order of their interval's Left
// bound. The pointer passed to visit refers to the tree's own copy of
// the payload, which must not be modified.
func (t *Tree[K, V]) Search(q Interval[K], visit func(*V)) {
	if len(t.levels) == 0 {
		return
	}
	t.search(q, 0, 0, visit)
}

// search searches the subtree rooted at node i of the given level.
func (t *Tree[K, V]) search(q Interval[K], depth, i int, visit func(*V)) {
	if !t.levels[depth][i].Overlaps(q) {
		return
	}

	leafDepth := len(t.levels) - 1
	if depth == leafDepth {
		visit(&t.data[i])
		return
	}

	next := t.levels[depth+1]
	start := i * B
	end := min(start+B, len(next))
	if depth+1 == leafDepth {
		// Children are leaves: scan them without recursing.
		for j := start; j < end; j++ {
			if next[j].Overlaps(q) {
				visit(&t.data[j])
			}
		}
		return
	}

	for j := start; j < end; j++ {
		t.search(q, depth+1, j, visit)
	}
}

// Each calls visit once for every stored payload, in ascending order of
// their interval's Left bound.
func (t *Tree[K, V]) Each(visit func(*V)) {
	for i := range t.data {
		visit(&t.data[i])
	}
}

// Overlapping returns a copy of every stored payload whose interval
// overlaps the query interval q, in the same order Search visits them.
func (t *Tree[K, V]) Overlapping(q Interval[K]) []V {
	r := make([]V, 0)
	t.Search(q, func(v *V) {
		r = append(r, *v)
	})
	return r
}

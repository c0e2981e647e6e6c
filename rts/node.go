// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rts

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/gogama/overlap/interval"
)

// MinBinSize is the largest number of rectangles a node stores as a
// flat leaf without attempting to split them.
const MinBinSize = 8

// An Item is a single rectangle stored in a leaf Node, together with
// its position in the list of rectangles passed to New.
type Item struct {
	Rect Rect
	// Index is the rectangle's index in the list passed to New.
	Index uint32
}

// A Node is a node of a spatial partition tree. A non-leaf node holds
// an interval.Tree of child nodes keyed on their extent along the
// node's split axis. A leaf node holds a list of items.
//
// The root node returned by New splits along X. The nodes at each
// subsequent depth split along the transpose of their parent's axis.
//
// A Node is immutable, so any number of goroutines may search the same
// Node concurrently.
type Node struct {
	// bounds is the extent of the node's rectangles along the axis
	// transverse to the node's split axis, i.e. the axis the parent
	// node indexes its children by.
	bounds interval.Interval[int64]
	// children is the index of child nodes. It is nil in a leaf node.
	children *interval.Tree[int64, Node]
	// items is the list of rectangles stored in a leaf node. It is
	// empty in a non-leaf node.
	items []Item
}

// New builds a spatial partition tree over a non-empty list of
// rectangles and returns the root node. Panics if the list is empty or
// if it has more rectangles than can be indexed by a uint32.
//
// The input slice is copied and not retained.
func New(rects []Rect) *Node {
	if len(rects) < 1 {
		textPanic("empty tree not allowed (num rects must be > 0)")
	} else if uint64(len(rects)) > math.MaxUint32 {
		fmtPanic("num rects overflows uint32 (%d > %d)", len(rects), uint64(math.MaxUint32))
	}

	items := make([]Item, len(rects))
	for i := range rects {
		items[i] = Item{Rect: rects[i], Index: uint32(i)}
	}

	root := build(items, X)
	return &root
}

// build recursively builds the node for a non-empty list of items
// whose split axis is a. The items slice is reordered in place and
// retained by the returned node's leaves.
func build(items []Item, a Axis) Node {
	n := Node{bounds: extent(items, a.Transpose())}

	if len(items) <= MinBinSize {
		n.items = items
		return n
	}

	bounds := split(items, a)
	if len(bounds) < 3 {
		// No useful partition exists, e.g. because all the items
		// overlap one another along a.
		n.items = items
		return n
	}

	pairs := make([]interval.Pair[int64, Node], len(bounds)-1)
	for i := range pairs {
		child := build(items[bounds[i]:bounds[i+1]], a.Transpose())
		pairs[i] = interval.Pair[int64, Node]{Interval: child.bounds, Value: child}
	}
	n.children = interval.New(pairs)
	return n
}

// extent returns the extent of a non-empty list of items along axis a.
func extent(items []Item, a Axis) interval.Interval[int64] {
	e := items[0].Rect.Span(a)
	for i := 1; i < len(items); i++ {
		e = e.Union(items[i].Rect.Span(a))
	}
	return e
}

// split sorts items by their left edge along axis a and returns the
// partition boundaries chosen by a greedy sweep. The result is a list
// of ascending item indices beginning with 0 and ending with
// len(items), where each consecutive pair is the [start, end) range of
// one partition.
//
// The sweep visits items in order of their left edge, counting the
// items that are still open (inner) and the items that have closed
// since the last boundary (past), i.e. whose right edge is not after
// the current left edge. A boundary is placed before the current item
// as soon as the closed items outnumber the open ones by more than two
// to one and there are more than MinBinSize of them. The last boundary
// found is dropped, because nothing is known about the size of the tail
// partition it would create.
func split(items []Item, a Axis) []int {
	slices.SortFunc(items, func(p, q Item) int {
		return cmp.Compare(p.Rect.left(a), q.Rect.left(a))
	})

	rights := make([]int64, len(items))
	for i := range items {
		rights[i] = items[i].Rect.right(a)
	}
	slices.Sort(rights)

	bounds := []int{0}
	var inner, past, cursor int
	for i := range items {
		left := items[i].Rect.left(a)
		for cursor < len(rights) && rights[cursor] <= left {
			cursor++
			past++
			inner--
		}
		if past > 2*inner && past > MinBinSize {
			bounds = append(bounds, i)
			past = 0
		}
		inner++
	}

	if len(bounds) > 1 {
		bounds = bounds[:len(bounds)-1]
	}
	return append(bounds, len(items))
}

// IsLeaf reports whether the node is a leaf node.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Len returns the number of rectangles stored in the subtree rooted at
// the node.
func (n *Node) Len() int {
	if n.IsLeaf() {
		return len(n.items)
	}
	var m int
	n.children.Each(func(child *Node) {
		m += child.Len()
	})
	return m
}

// String returns a summary description of the node.
func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("Node{Bounds:%s,Items:%d}", n.bounds, len(n.items))
	}
	return fmt.Sprintf("Node{Bounds:%s,Children:%d}", n.bounds, n.children.Len())
}

// Search calls visit with the index of every rectangle in the tree
// rooted at n which intersects the query rectangle q. The node must be
// a root node returned by New. The order of the visits is not defined.
func (n *Node) Search(q Rect, visit func(index uint32)) {
	n.search(&q, X, visit)
}

// search searches the subtree rooted at n, whose split axis is a.
func (n *Node) search(q *Rect, a Axis, visit func(uint32)) {
	if n.IsLeaf() {
		for i := range n.items {
			if n.items[i].Rect.Intersects(q) {
				visit(n.items[i].Index)
			}
		}
		return
	}

	n.children.Search(q.Span(a), func(child *Node) {
		child.search(q, a.Transpose(), visit)
	})
}

// FindIntersections returns the index of every rectangle in the tree
// rooted at n which intersects the query rectangle q. The node must be
// a root node returned by New. The order of the result is not defined.
func (n *Node) FindIntersections(q Rect) []uint32 {
	r := make([]uint32, 0)
	n.Search(q, func(index uint32) {
		r = append(r, index)
	})
	return r
}

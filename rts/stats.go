// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rts

import "fmt"

// Stats describes the shape of a spatial partition tree.
type Stats struct {
	// Depth is the number of node levels on the longest root-to-leaf
	// path. A tree consisting of a single leaf has depth 1.
	Depth int
	// Internal is the number of non-leaf nodes.
	Internal int
	// LeafSizes contains the item count of every leaf, in depth-first
	// order.
	LeafSizes []int
}

// Leaves returns the number of leaf nodes.
func (s *Stats) Leaves() int {
	return len(s.LeafSizes)
}

// String returns a summary description of the stats.
func (s Stats) String() string {
	return fmt.Sprintf("Stats{Depth:%d,Internal:%d,Leaves:%d}", s.Depth, s.Internal, s.Leaves())
}

// Stats walks the tree rooted at n and returns its shape.
func (n *Node) Stats() Stats {
	var s Stats
	n.stats(&s, 1)
	return s
}

func (n *Node) stats(s *Stats, depth int) {
	s.Depth = max(s.Depth, depth)
	if n.IsLeaf() {
		s.LeafSizes = append(s.LeafSizes, len(n.items))
		return
	}
	s.Internal++
	n.children.Each(func(child *Node) {
		child.stats(s, depth+1)
	})
}

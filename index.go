// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package overlap

import (
	"fmt"

	"github.com/gogama/overlap/rts"
)

// An Index is a reusable query handle over a fixed batch of boxes.
// Building an Index costs O(n log n), after which each query is
// expected to cost time logarithmic in the batch size plus linear in
// the number of results.
//
// An Index is immutable, so it may be searched by any number of
// goroutines concurrently.
type Index struct {
	root *rts.Node
	n    int
}

// NewIndex builds an Index over a non-empty batch of boxes. Panics if
// boxes is empty or has more boxes than can be indexed by a uint32.
//
// The boxes are copied, so the caller may reuse the slice.
func NewIndex(boxes []Box) *Index {
	if len(boxes) < 1 {
		textPanic("empty index not allowed (num boxes must be > 0)")
	}
	return &Index{
		root: rts.New(rects(boxes)),
		n:    len(boxes),
	}
}

// Len returns the number of boxes in the index.
func (index *Index) Len() int {
	return index.n
}

// Stats returns the shape of the index's underlying partition tree.
func (index *Index) Stats() rts.Stats {
	return index.root.Stats()
}

// String returns a summary description of the index.
func (index *Index) String() string {
	return fmt.Sprintf("Index{Len:%d}", index.n)
}

// Search calls visit with the index of every box in the index that
// intersects the query box q. The order of the visits is not defined.
func (index *Index) Search(q Box, visit func(uint32)) {
	index.root.Search(q.Rect(), visit)
}

// FindIntersections returns the indices of the boxes in the index that
// intersect the query box q. The order of the result is not defined.
func (index *Index) FindIntersections(q Box) []uint32 {
	return index.root.FindIntersections(q.Rect())
}

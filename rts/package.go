// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rts provides a static, recursively built, axis-alternating
// spatial partition of axis-aligned rectangles, and the pruning search
// algorithm used to find the rectangles intersecting a query rectangle.
//
// Each level of the partition splits its rectangles into runs along
// one axis, X at the root, then Y, then X again, and so on. The runs
// are indexed by an interval.Tree keyed on their extent along the
// split axis, so that a search only descends into runs the query
// rectangle can reach. Runs that are small, or that cannot be usefully
// split, are stored as flat leaves and searched by brute force.
package rts

// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package overlap finds intersections among batches of axis-aligned
// integer rectangles.
//
// Index wraps a spatial partition tree (see package rts) built once
// over a fixed batch of boxes and answers repeated single-box
// intersection queries. The batch functions BruteForce, LineSweep,
// FindAll, and FindAllBetween compute the full adjacency lists of a
// batch, and Area, IntersectArea, UnionArea, and IoU measure pairs of
// boxes.
//
// Boxes are half-open: a box covers [X, X+Width) × [Y, Y+Height), so
// boxes which merely share an edge or a corner never intersect.
package overlap

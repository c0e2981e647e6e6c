// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package interval provides a static, bottom-up built, layered range
// tree over one-dimensional half-open intervals.
//
// A Tree is built once from a batch of intervals and their payloads,
// and thereafter answers "which stored intervals overlap this query
// interval" with a logarithmic descent plus time linear in the number
// of matches. A Tree is immutable after construction, so any number of
// goroutines may search it concurrently.
package interval

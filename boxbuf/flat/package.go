// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package flat contains the FlatBuffers accessors and builders for the
// boxbuf schema in box_batch.fbs. The accessors follow the layout the
// FlatBuffers compiler, flatc, produces for Go.
package flat

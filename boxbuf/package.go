// Copyright 2023 The overlap (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package boxbuf reads and writes batches of boxes in a compact binary
file format built on FlatBuffers.

A boxbuf file consists of an 8-byte magic number, which identifies the
file and the format version, followed by a single size-prefixed
FlatBuffers table holding the vector of boxes. Each box is stored as a
fixed-size 16-byte struct, so a batch of n boxes occupies roughly
16n bytes on disk.

Use Write to encode a batch and Read to decode one. Read validates the
magic number, bounds the size of the table it is willing to allocate,
and rejects boxes with zero width or height, so that the boxes it
returns may be passed directly to overlap.NewIndex and friends.
*/
package boxbuf
